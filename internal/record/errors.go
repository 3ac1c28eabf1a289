package record

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed field in a submitted Entry.
// Nothing is stored when a ValidationError is returned.
type ValidationError struct {
	// Field is the entry field that failed ("subject", "temperature", ...).
	Field string

	// Value is the rejected input as submitted.
	Value string

	// Message is a human-readable reason.
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// IsValidationError returns true if err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(field, value, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)}
}
