package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound              = errors.New("not found")
	ErrAlreadyExists         = errors.New("already exists")
	ErrValidation            = errors.New("validation error")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
	ErrExhausted             = errors.New("no copies available")
	ErrExpired               = errors.New("expired")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// Conflicts: the requested transition is not allowed from the current state.
var (
	ErrAlreadyHeld      = fmt.Errorf("book already held by member: %w", ErrConflict)
	ErrAlreadyReturned  = fmt.Errorf("loan already returned: %w", ErrConflict)
	ErrAlreadyRenewed   = fmt.Errorf("loan already renewed: %w", ErrConflict)
	ErrAlreadyUsed      = fmt.Errorf("token already used: %w", ErrConflict)
	ErrDuplicatePending = fmt.Errorf("pending verification already exists: %w", ErrConflict)
	ErrNotPending       = fmt.Errorf("submission is not pending: %w", ErrConflict)
)

// Invalid input that is not tied to a single request field.
var (
	ErrInvalidToken     = fmt.Errorf("unknown verification token: %w", ErrValidation)
	ErrWrongSubjectKind = fmt.Errorf("wrong token subject kind: %w", ErrValidation)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
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
