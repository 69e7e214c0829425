package validators

import "regexp"

// emailRegex aceita qualquer coisa sem espaço e sem '@' antes do '@',
// depois o domínio com um '.' literal e ao menos um caractere final.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
