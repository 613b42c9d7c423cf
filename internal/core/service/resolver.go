package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

// AccountResolver maps a login identifier to exactly one account.
type AccountResolver struct {
	store ports.CredentialStore
}

func NewAccountResolver(store ports.CredentialStore) *AccountResolver {
	return &AccountResolver{store: store}
}

// Resolve tries the identifier as a username first, then as a profile email
// in domain.ProfileRoles order. The first profile match wins. A profile
// linked to an account of a different role never matches, so admin accounts
// resolve by username only.
func (r *AccountResolver) Resolve(ctx context.Context, identifier string) (*domain.Account, error) {
	acc, err := r.store.FindAccountByUsername(ctx, identifier)
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("resolve username: %w", err)
	}

	if !strings.Contains(identifier, "@") {
		return nil, domain.ErrAccountNotFound
	}

	for _, role := range domain.ProfileRoles {
		acc, err := r.store.FindAccountByProfileEmail(ctx, role, identifier)
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			continue
		case err != nil:
			return nil, fmt.Errorf("resolve %s email: %w", role, err)
		case acc.Role != role:
			continue
		}
		return acc, nil
	}

	return nil, domain.ErrAccountNotFound
}
