package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports a single rejected field before any write is
// attempted. Writes are all-or-nothing: a validation failure means nothing
// was persisted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a field-level validation error.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
