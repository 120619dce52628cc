package signup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotSubmitting is returned by CompleteSubmission when no submission is in flight
var ErrNotSubmitting = errors.New("no submission in progress")

// FieldValidationError reports that one field failed validation
type FieldValidationError struct {
	Field   Field  // Failing field
	Message string // Human-readable message shown under the input
}

// Error implements the error interface
func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field Field, message string) *FieldValidationError {
	return &FieldValidationError{
		Field:   field,
		Message: message,
	}
}

// ValidationErrors is the aggregate returned by FieldErrors.Err
type ValidationErrors []*FieldValidationError

// Error joins the individual messages
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes the individual errors to errors.Is/As
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, e := range v {
		errs = append(errs, e)
	}
	return errs
}

// IsValidationError checks if an error is (or wraps) a field validation error
func IsValidationError(err error) bool {
	var fieldErr *FieldValidationError
	if errors.As(err, &fieldErr) {
		return true
	}
	var aggregate ValidationErrors
	return errors.As(err, &aggregate)
}
