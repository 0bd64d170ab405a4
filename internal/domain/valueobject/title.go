package valueobject

import (
	"strings"
	"unicode/utf8"

	"blogforge/internal/domain/domainerr"
)

// Title is a blog title, 5 to 100 characters after the empty check.
type Title struct {
	value string
}

func NewTitle(value string) (Title, error) {
	if strings.TrimSpace(value) == "" {
		return Title{}, domainerr.InvalidData("Title cannot be empty.")
	}
	if utf8.RuneCountInString(value) < 5 {
		return Title{}, domainerr.InvalidData("Title must be at least 5 characters long.")
	}
	if utf8.RuneCountInString(value) > 100 {
		return Title{}, domainerr.InvalidData("Title cannot exceed 100 characters.")
	}
	return Title{value: strings.TrimSpace(value)}, nil
}

func (t Title) String() string { return t.value }
