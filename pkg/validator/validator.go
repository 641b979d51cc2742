package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	telefoneRegex = regexp.MustCompile(`^\+?[0-9]{10,14}$`)
	horaRegex     = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidateTelefone(telefone string) bool {
	limpo := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '+' {
			return r
		}
		return -1
	}, telefone)

	return telefoneRegex.MatchString(limpo)
}

func ValidateHora(hora string) bool {
	return horaRegex.MatchString(hora)
}

// FormatTelefone normaliza para o formato E.164 brasileiro (+55...).
// Números sem DDI recebem o prefixo +55.
func FormatTelefone(telefone string) string {
	limpo := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '+' {
			return r
		}
		return -1
	}, telefone)

	if strings.HasPrefix(limpo, "+") {
		return limpo
	}

	if strings.HasPrefix(limpo, "55") && len(limpo) >= 12 {
		return "+" + limpo
	}

	return "+55" + limpo
}

func FormatNome(nome string) string {
	if len(nome) == 0 {
		return ""
	}

	parts := strings.Fields(nome)
	for i, part := range parts {
		runes := []rune(part)
		if len(runes) > 0 {
			parts[i] = strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
		}
	}

	return strings.Join(parts, " ")
}

func SanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '<' || r == '>' || r == '&' || r == '"' || r == '\'' || r == '`' || r == ';' {
			return -1
		}
		return r
	}, s)
}
