package valueobject

import (
	"strings"

	"blogforge/internal/domain/domainerr"
)

// Content is a blog body. Only emptiness is checked; there is no upper bound.
type Content struct {
	value string
}

func NewContent(value string) (Content, error) {
	if strings.TrimSpace(value) == "" {
		return Content{}, domainerr.InvalidData("Content cannot be empty.")
	}
	return Content{value: strings.TrimSpace(value)}, nil
}

func (c Content) String() string { return c.value }
