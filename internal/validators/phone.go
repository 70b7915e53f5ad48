package validators

import "strings"

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// NormalizePhone mantém apenas os dígitos; é a chave de deduplicação do cliente.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsPhoneValid(normalized string) bool {
	n := len(normalized)
	return n >= minPhoneDigits && n <= maxPhoneDigits
}
