package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	// ErrUnauthenticated: no verified subject identifier on the request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUserNotFound: a resolved owner id whose user row no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrUnauthorized: the record exists but belongs to another owner.
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrValidation       = errors.New("validation error")
	ErrAlreadyExists    = errors.New("already exists")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ReferenceError reports a foreign reference that is missing or owned by
// someone else. The two cases are deliberately indistinguishable.
type ReferenceError struct {
	Field string
	Kind  EntityType
	ID    uuid.UUID
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("invalid reference: %s does not point to an owned %s (%s)", e.Field, e.Kind, e.ID)
}

func (e *ReferenceError) Unwrap() error { return ErrInvalidReference }
