package ports

import "context"

// LoginThrottle counts failed logins per identifier.
type LoginThrottle interface {
	// Locked reports whether the identifier has exhausted its failures.
	Locked(ctx context.Context, identifier string) (bool, error)
	RecordFailure(ctx context.Context, identifier string) error
	Reset(ctx context.Context, identifier string) error
}
