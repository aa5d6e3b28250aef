// Package common defines shared constants and sentinel errors used across
// client and server layers of credvault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrDuplicateUser = errors.New("user already exists")

	// Service-level errors. These are the only failures the credential
	// service reports to its callers.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrStoreUnavailable   = errors.New("store unavailable")
	ErrorValidation       = errors.New("validation error")

	// Generic internal failure, used by transport layers for anything unclassified.
	ErrorInternal = errors.New("internal error")

	// Token errors (malformed, forged or expired session tokens).
	ErrInvalidToken = errors.New("invalid token")

	// Client-side transport error: the server could not be reached.
	ErrUnavailable = errors.New("server unavailable")
)
