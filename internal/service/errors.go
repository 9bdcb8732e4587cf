package service

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable is returned when the service was started without
	// a database.
	ErrStoreUnavailable = errors.New("progress store unavailable")

	// ErrInvalidAttempt is returned for attempts missing a word ID.
	ErrInvalidAttempt = errors.New("invalid attempt")
)

// ServiceError is a custom error type for service errors.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Operation: operation, Message: message, Err: err}
}
