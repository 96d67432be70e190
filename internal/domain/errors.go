package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by services and delivery.
var (
	ErrNotFound      = errors.New("not found")
	ErrNotConfigured = errors.New("storage not configured")
)

// Validation error codes surfaced to API clients.
const (
	CodeInvalidRequest = "invalid_request"
	CodeInvalidCursor  = "invalid_cursor"
)

// ValidationError is a client-caused failure. Details is optional and safe to return to the caller.
type ValidationError struct {
	Code    string
	Message string
	Details map[string]any
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError returns an invalid_request error, optionally naming the offending field.
func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{Code: CodeInvalidRequest, Message: message}
	if field != "" {
		e.Details = map[string]any{"field": field}
	}
	return e
}

// NotPublicError is returned when a record outside the publishable statuses is projected.
// Delivery maps it to not found so the hidden status never leaks.
type NotPublicError struct {
	ID     string
	Status EventStatus
}

func (e *NotPublicError) Error() string {
	return fmt.Sprintf("event %s is not public (status %q)", e.ID, e.Status)
}
