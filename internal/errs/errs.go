// Package errs holds the error types returned by the service layer.
//
// Each error type wraps a sentinel so callers can classify failures with
// errors.Is and still reach the details with errors.As:
//   - ValidationError wraps ErrValidation (payload rejected, maps to 400)
//   - NotFoundError wraps ErrNotFound (unknown id, maps to 404)
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("object not found")
)

// ValidationError reports a rejected field or payload. Field is empty when
// the failure concerns the payload as a whole. Code optionally narrows the
// API error code.
type ValidationError struct {
	Field   string
	Message string
	Code    string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewRequiredError is the ValidationError for a missing field.
func NewRequiredError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "This field is required."}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports an id that does not resolve to a visible row.
type NotFoundError struct {
	Resource string
	ID       any
}

func NewNotFoundError(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
