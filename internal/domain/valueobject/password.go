package valueobject

import (
	"strings"
	"unicode"

	"blogforge/internal/domain/domainerr"
)

// specialCharacters is the fixed set accepted by the strength rules.
const specialCharacters = "!@#$%^&*()-_=+[]{}|;:'\",.<>?/`~"

// Password wraps a password hash. The wrapper performs no validation;
// plaintext strength is checked separately via ValidatePasswordStrength
// before hashing, so a Password value always holds a hash at rest.
type Password struct {
	hash string
}

func NewPassword(hash string) Password {
	return Password{hash: hash}
}

func (p Password) Hash() string { return p.hash }

// ValidatePasswordStrength enforces the plaintext rules, failing on the
// first violation: empty, length, digit, uppercase, lowercase, special.
func ValidatePasswordStrength(plain string) error {
	if plain == "" {
		return domainerr.InvalidData("Password cannot be empty.")
	}
	if len(plain) < 8 {
		return domainerr.InvalidData("Password must be at least 8 characters long.")
	}
	if !containsFunc(plain, unicode.IsDigit) {
		return domainerr.InvalidData("Password must contain at least one digit.")
	}
	if !containsFunc(plain, unicode.IsUpper) {
		return domainerr.InvalidData("Password must contain at least one uppercase letter.")
	}
	if !containsFunc(plain, unicode.IsLower) {
		return domainerr.InvalidData("Password must contain at least one lowercase letter.")
	}
	if !strings.ContainsAny(plain, specialCharacters) {
		return domainerr.InvalidData("Password must contain at least one special character.")
	}
	return nil
}

func containsFunc(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if fn(r) {
			return true
		}
	}
	return false
}
