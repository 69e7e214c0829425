package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "data/agenda.json", cfg.DataFile)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.Equal(t, "barba123", cfg.AdminUsername)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ADMIN_USERNAME", "gerente")
	t.Setenv("TIMEZONE", "America/Bahia")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "gerente", cfg.AdminUsername)
	assert.Equal(t, "America/Bahia", cfg.Timezone)
	assert.Equal(t, ":9090", cfg.Addr())
}

func TestLoad_InvalidTimezoneFallsBack(t *testing.T) {
	t.Setenv("TIMEZONE", "Lua/Base")

	cfg := Load()

	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
}
