// Package common defines shared constants and sentinel errors used across
// the passkeeper core and its transport. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Startup errors. The process must refuse to run when these occur.
	ErrConfiguration = errors.New("configuration error")

	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors, user-correctable.
	ErrInvalidOptions  = errors.New("invalid generation options")
	ErrInvalidCategory = errors.New("invalid category")
	ErrValidation      = errors.New("validation error")

	// Credential-specific errors.
	ErrDuplicateTitle = errors.New("title already exists")
	ErrDecryption     = errors.New("decryption failed")

	// Account-specific errors.
	ErrEmailTaken = errors.New("email already registered")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
