package validators

import "regexp"

// phoneRegex cobre o formato brasileiro "(11) 99999-9999". A validação de
// telefone é apenas orientativa: nunca bloqueia um agendamento.
var phoneRegex = regexp.MustCompile(`^\(\d{2}\)\s\d{4,5}-\d{4}$`)

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
