// Package common defines sentinel errors shared by the tracker layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors for user-supplied values.
	ErrValidation = errors.New("validation error")

	// Identity errors (missing, invalid or malformed session).
	ErrNoIdentity   = errors.New("no user identity")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
