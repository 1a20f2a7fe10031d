package services

import (
	"errors"
	"fmt"
)

// ErrNotFound maps to 404 at the API layer.
var ErrNotFound = errors.New("entity not found")

// ErrNotCancellable is returned when the engagement is in progress on a
// different replica: only the pod whose executor holds the run can signal
// its context. The API layer answers 409.
var ErrNotCancellable = errors.New("engagement is not cancellable from this replica")

// ValidationError rejects a request over one bad field; rendered as a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
