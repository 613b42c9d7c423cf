package ports

import "github.com/medcore/hospital-admin/internal/core/domain"

// AuthEventRecorder accepts audit events without blocking the caller.
type AuthEventRecorder interface {
	Record(event domain.AuthEvent)
}
