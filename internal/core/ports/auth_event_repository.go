package ports

import (
	"context"

	"github.com/medcore/hospital-admin/internal/core/domain"
)

// AuthEventRepository persists the login audit trail.
type AuthEventRepository interface {
	InsertAuthEvent(ctx context.Context, event *domain.AuthEvent) error
}
