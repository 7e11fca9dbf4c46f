// Package common defines shared sentinel errors used across garagevault
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors.
	ErrorInvalidEmailFormat = errors.New("invalid email format")
	ErrorPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrorEmptyTitle         = errors.New("title is required")
	ErrorEmptyDescription   = errors.New("description is required")
	ErrorTagsRequired       = errors.New("at least one tag is required")

	// Registration errors.
	ErrorEmailExists = errors.New("email already registered")

	// Auth errors (invalid or malformed token).
	ErrorMissingToken = errors.New("missing token")
	ErrInvalidToken   = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Unknown email and wrong password map to the same value so callers
	// cannot probe which emails are registered.
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// ErrorUserNotFound is returned when a syntactically valid token points
	// at a user that no longer resolves.
	ErrorUserNotFound = errors.New("user not found")
)
