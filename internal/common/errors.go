// Package common defines shared constants and sentinel errors used across
// the client and server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Service-level errors.
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrorInternal   = errors.New("internal error")

	// Token errors. Every verification failure is ErrInvalidToken; expiry
	// additionally matches ErrTokenExpired.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
