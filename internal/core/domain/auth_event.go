package domain

import "time"

// LoginOutcome labels the result of a login attempt for auditing and metrics.
type LoginOutcome string

const (
	OutcomeSuccess            LoginOutcome = "success"
	OutcomeInvalidCredentials LoginOutcome = "invalid_credentials"
	OutcomeHashCorrupt        LoginOutcome = "hash_corrupt"
	OutcomeStoreUnavailable   LoginOutcome = "store_unavailable"
	OutcomeThrottled          LoginOutcome = "throttled"
)

// AuthEvent is one entry of the login audit trail.
type AuthEvent struct {
	ID         string
	Identifier string
	Username   string // empty unless the identifier resolved
	Role       string
	Outcome    LoginOutcome
	RemoteIP   string
	OccurredAt time.Time
}
