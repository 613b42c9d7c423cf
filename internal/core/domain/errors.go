package domain

import "errors"

// Authentication errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrHashCorrupt        = errors.New("stored password hash is corrupt")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrInvalidRole        = errors.New("invalid role")
)

// Infrastructure errors.
var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrConfigMissing    = errors.New("required configuration missing")
)

// Gateway errors.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource already exists")
	ErrInvalidReference = errors.New("referenced resource does not exist")
	ErrForbidden        = errors.New("access forbidden")
)
