package auth

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const minPasswordLength = 8

// ValidPassword reports whether p is a single line of at least eight characters
// including a digit, a lowercase ASCII letter and an uppercase ASCII letter.
func ValidPassword(p string) bool {
	if utf8.RuneCountInString(p) < minPasswordLength {
		return false
	}

	var digit, lower, upper bool
	for _, r := range p {
		switch {
		case r == '\n':
			return false
		case unicode.IsDigit(r):
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		}
	}
	return digit && lower && upper
}

// NormalizeEmail trims and lowercases the domain part.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}
