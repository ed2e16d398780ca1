package phone

import (
	"strings"
	"unicode"
)

// Digits remove tudo que não for dígito.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeE164 converte um telefone digitado livremente para a forma
// E.164 usada no banco e na Cloud API, assumindo countryCode (DDI) quando
// o número não traz código de país. Idempotente: aplicar duas vezes dá o
// mesmo resultado.
//
// Regras, na ordem:
//   - já começa com "+": mantém só o "+" e os dígitos;
//   - "00CC..." vira "+CC...";
//   - já começa com o DDI e tem tamanho compatível (DDI + 10..11): mantém;
//   - número local de 10..11 dígitos: recebe o DDI;
//   - resto: só prefixa "+".
func NormalizeE164(raw, countryCode string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if strings.HasPrefix(raw, "+") {
		return "+" + Digits(raw)
	}

	digits := Digits(raw)
	if digits == "" {
		return ""
	}

	if strings.HasPrefix(digits, "00") {
		return "+" + digits[2:]
	}

	ccLen := len(countryCode)
	if countryCode != "" &&
		strings.HasPrefix(digits, countryCode) &&
		len(digits) >= ccLen+10 && len(digits) <= ccLen+11 {
		return "+" + digits
	}

	if len(digits) >= 10 && len(digits) <= 11 {
		return "+" + countryCode + digits
	}

	return "+" + digits
}
