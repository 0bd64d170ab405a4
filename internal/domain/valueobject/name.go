// Package valueobject holds the self-validating wrappers around primitive
// fields. A value object either constructs successfully or the field is
// invalid; entities never hold an unchecked value.
package valueobject

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"blogforge/internal/domain/domainerr"
)

// Name is a length-bounded string field. The label parameterizes the error
// messages so FirstName, LastName and Username share one implementation.
type Name struct {
	value string
}

// NewName validates in priority order: empty, too short, too long.
// Lengths are counted in runes; the stored value is trimmed.
func NewName(value, label string, minLen, maxLen int) (Name, error) {
	if strings.TrimSpace(value) == "" {
		return Name{}, domainerr.InvalidData(fmt.Sprintf("%s cannot be empty.", label))
	}
	if utf8.RuneCountInString(value) < minLen {
		return Name{}, domainerr.InvalidData(fmt.Sprintf("%s must be at least %d characters long.", label, minLen))
	}
	if utf8.RuneCountInString(value) > maxLen {
		return Name{}, domainerr.InvalidData(fmt.Sprintf("%s cannot exceed %d characters.", label, maxLen))
	}
	return Name{value: strings.TrimSpace(value)}, nil
}

func NewFirstName(value string) (Name, error) {
	return NewName(value, "First Name", 2, 30)
}

func NewLastName(value string) (Name, error) {
	return NewName(value, "Last Name", 2, 30)
}

func NewUsername(value string) (Name, error) {
	return NewName(value, "Username", 3, 20)
}

func (n Name) String() string { return n.value }
