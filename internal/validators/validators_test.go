package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"maria@example.com", true},
		{"maria.souza+promo@sub.example.com.br", true},
		{"a@b.c", true},
		{"maria@example", false},
		{"maria@@example.com", false},
		{"maria example@teste.com", false},
		{"maria@exa mple.com", false},
		{"@example.com", false},
		{"maria@", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidEmail(tc.email))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"(11) 99999-9999", true},
		{"(11) 9999-9999", true},
		{"11999999999", false},
		{"(11)99999-9999", false},
		{"(1) 99999-9999", false},
		{"(11) 999999-9999", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidPhone(tc.phone))
		})
	}
}
