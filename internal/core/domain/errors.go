package domain

import (
	"errors"
	"fmt"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrSupervisorNotFound = errors.New("supervisor not found")

// ErrUniqueViolation marks every duplicate-key rejection coming back from the
// store. The store enforces uniqueness atomically; a violated write leaves
// the store unchanged.
var ErrUniqueViolation = errors.New("unique constraint violation")

var ErrUsernameTaken = fmt.Errorf("username already in use: %w", ErrUniqueViolation)
var ErrEmailTaken = fmt.Errorf("email already in use: %w", ErrUniqueViolation)

// ValidationError reports a field that failed a declared constraint before
// any write was attempted. The reason is meant to be shown to the caller
// verbatim so they can re-prompt.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for field with reason.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
