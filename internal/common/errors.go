// Package common defines shared constants and sentinel errors used across
// the storeadmin layers. Callers should use errors.Is / errors.As to match
// these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Credential verification errors. The last two wrap ErrorUnauthorized.
	ErrMissingCredentials = errors.New("missing credentials")
	ErrAccountNotFound    = fmt.Errorf("account not found: %w", ErrorUnauthorized)
	ErrWrongPassword      = fmt.Errorf("wrong password: %w", ErrorUnauthorized)

	// Validation / user-specific errors. The Err*Field values below all
	// satisfy errors.Is(err, ErrValidation).
	ErrValidation        = errors.New("validation error")
	ErrMissingUserFields = NewValidationError("name, email and password are required")
	ErrPasswordTooShort  = NewValidationError("password must be at least 6 characters")
	ErrPasswordTooLong   = NewValidationError("password must be at most 72 bytes")
	ErrInvalidRole       = NewValidationError("invalid role")
	ErrInvalidStoreLimit = NewValidationError("store limit must not be negative")
	ErrEmailTaken        = errors.New("email already registered")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// ValidationError carries a user-facing message for rejected input.
// It matches ErrValidation via errors.Is.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
