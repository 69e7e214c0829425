package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/barbeariaclassica/agenda-api/internal/timezone"
)

type Config struct {
	DataFile   string
	ServerPort string
	JWTSecret  string
	Timezone   string

	// Credencial única de administração. Comparação em texto claro, de
	// propósito: não é uma fronteira de segurança.
	AdminUsername string
	AdminPassword string
}

func Load() *Config {
	// .env é opcional; variáveis de ambiente têm precedência.
	_ = godotenv.Load()

	cfg := &Config{
		DataFile:      getEnv("DATA_FILE", "data/agenda.json"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		Timezone:      getEnv("TIMEZONE", timezone.DefaultTimezone),
		AdminUsername: getEnv("ADMIN_USERNAME", "barba123"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "barba123"),
	}

	if !timezone.IsValid(cfg.Timezone) {
		cfg.Timezone = timezone.DefaultTimezone
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
