// Package validation holds the pure input validators and sanitizers for the
// lead form. Validators never return an error value; the verdict is the
// Result itself.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// Result is the validation verdict for a single field.
type Result struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}

const (
	nameMinLen  = 2
	nameMaxLen  = 100
	emailMaxLen = 254

	phoneMinDigits = 7
	phoneMaxDigits = 15
)

var (
	// emailRe follows the HTML5 address pattern.
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

	countryCodeRe = regexp.MustCompile(`^\+[0-9]{1,3}$`)

	digitRe = regexp.MustCompile(`[0-9]`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
)

func valid() Result {
	return Result{IsValid: true}
}

func invalid(message string) Result {
	return Result{IsValid: false, Message: message}
}

// ValidateFullName checks the lead name field. Digits and "@" are rejected
// outright as a heuristic for users pasting their email into the name field.
func ValidateFullName(raw string) Result {
	name := strings.TrimSpace(raw)

	if name == "" {
		return invalid("Por favor, insira o seu nome.")
	}

	if strings.ContainsRune(name, '@') || digitRe.MatchString(name) {
		return invalid("O nome não pode conter números nem '@'. Parece um email — confirme o campo.")
	}

	if len([]rune(name)) < nameMinLen || len([]rune(name)) > nameMaxLen {
		return invalid("O nome deve ter entre 2 e 100 caracteres.")
	}

	for _, r := range name {
		if !isNameRune(r) {
			return invalid("O nome só pode conter letras, espaços, hífens e apóstrofos.")
		}
	}

	return valid()
}

// ValidateEmail checks the lead email field.
func ValidateEmail(raw string) Result {
	email := strings.TrimSpace(raw)

	if email == "" {
		return invalid("Por favor, insira o seu email.")
	}

	if len(email) > emailMaxLen || !emailRe.MatchString(email) {
		return invalid("Por favor, insira um email válido.")
	}

	return valid()
}

// ValidatePhone checks the country code prefix and the local number by digit
// count after stripping common separators.
func ValidatePhone(countryCode, raw string) Result {
	if !countryCodeRe.MatchString(strings.TrimSpace(countryCode)) {
		return invalid("Por favor, selecione o indicativo do país.")
	}

	number := phoneSeparators.Replace(strings.TrimSpace(raw))

	if number == "" {
		return invalid("Por favor, insira o seu telemóvel.")
	}

	for _, r := range number {
		if r < '0' || r > '9' {
			return invalid("O telemóvel só pode conter dígitos e separadores.")
		}
	}

	if len(number) < phoneMinDigits || len(number) > phoneMaxDigits {
		return invalid("O telemóvel deve ter entre 7 e 15 dígitos.")
	}

	return valid()
}

// SanitizeFullName strips characters the name field disallows. Idempotent.
func SanitizeFullName(raw string) string {
	var b strings.Builder

	for _, r := range raw {
		if isNameRune(r) {
			b.WriteRune(r)
		}
	}

	return collapseSpaces(b.String())
}

// SanitizeEmail trims surrounding whitespace and lowercases the address.
// Idempotent.
func SanitizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// SanitizePhone strips separators, keeping digits only. Idempotent.
func SanitizePhone(raw string) string {
	var b strings.Builder

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\''
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
