// Package domainerr defines the failure kinds raised by the domain and
// application layers. Handlers at the HTTP boundary translate each kind
// into a transport status; nothing in between recovers or retries.
package domainerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidData signals a field or business-rule violation.
	ErrInvalidData = errors.New("invalid data")

	// ErrNotFound signals an entity lookup miss.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized signals a missing or mismatched identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict signals a duplicate resource, e.g. a taken username.
	ErrConflict = errors.New("conflict")
)

// Error couples a failure kind with a stable, human-readable message.
// Error messages are part of the contract; tests assert on them.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the kind for errors.Is checks.
func (e *Error) Unwrap() error { return e.Kind }

// InvalidData builds a validation error with the given message.
func InvalidData(message string) *Error {
	return &Error{Kind: ErrInvalidData, Message: message}
}

// NotFound builds a lookup-miss error for the named entity and identifier.
func NotFound(entity, identifier string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("%s with identifier '%s' was not found.", entity, identifier),
	}
}

// Unauthorized builds an identity error with the given message.
func Unauthorized(message string) *Error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

// UsernameExists builds the conflict raised when registering a taken username.
func UsernameExists(username string) *Error {
	return &Error{
		Kind:    ErrConflict,
		Message: fmt.Sprintf("The username '%s' is already taken.", username),
	}
}

func IsInvalidData(err error) bool { return errors.Is(err, ErrInvalidData) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
