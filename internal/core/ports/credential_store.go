package ports

import (
	"context"

	"github.com/medcore/hospital-admin/internal/core/domain"
)

// CredentialStore reads accounts and role profiles for authentication.
// Every lookup ignores soft-deleted rows. Lookups that match nothing return
// domain.ErrAccountNotFound; connection or timeout failures return
// domain.ErrStoreUnavailable.
type CredentialStore interface {
	FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error)
	// FindAccountByProfileEmail matches the email of the given role's profile
	// table and returns the linked, non-deleted account.
	FindAccountByProfileEmail(ctx context.Context, role domain.Role, email string) (*domain.Account, error)
	FindProfileAttributes(ctx context.Context, role domain.Role, accountID int64) (*domain.ProfileAttributes, error)
}
