package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

// profileTables maps each profile role to the table holding its profiles.
var profileTables = map[domain.Role]string{
	domain.RolePatient:      "patients",
	domain.RoleDoctor:       "doctors",
	domain.RoleAdmissionist: "admissionists",
}

const accountCols = `u.id_user, u.username, u.password_hash, u.role`

// CredentialStore implements ports.CredentialStore over the shared pool.
type CredentialStore struct {
	db      DB
	timeout time.Duration
}

func NewCredentialStore(db DB, timeout time.Duration) ports.CredentialStore {
	return &CredentialStore{db: db, timeout: timeout}
}

func (s *CredentialStore) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	row := s.db.QueryRow(ctx, `
		SELECT `+accountCols+`
		FROM users u
		WHERE u.username = $1 AND u.deleted_at IS NULL`, username)
	return scanAccount(row)
}

func (s *CredentialStore) FindAccountByProfileEmail(ctx context.Context, role domain.Role, email string) (*domain.Account, error) {
	table, ok := profileTables[role]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	row := s.db.QueryRow(ctx, `
		SELECT `+accountCols+`
		FROM `+table+` p
		JOIN users u ON u.id_user = p.id_user
		WHERE lower(p.email) = lower($1)
		  AND p.deleted_at IS NULL
		  AND u.deleted_at IS NULL
		ORDER BY p.created_at
		LIMIT 1`, email)
	return scanAccount(row)
}

func (s *CredentialStore) FindProfileAttributes(ctx context.Context, role domain.Role, accountID int64) (*domain.ProfileAttributes, error) {
	table, ok := profileTables[role]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var attrs domain.ProfileAttributes
	err := s.db.QueryRow(ctx, `
		SELECT first_name, first_lastname, email, phone
		FROM `+table+`
		WHERE id_user = $1 AND deleted_at IS NULL
		LIMIT 1`, accountID).
		Scan(&attrs.FirstName, &attrs.LastName, &attrs.Email, &attrs.Phone)
	if err != nil {
		return nil, translateAccount(err)
	}
	return &attrs, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		acc  domain.Account
		role string
	)
	if err := row.Scan(&acc.ID, &acc.Username, &acc.PasswordHash, &role); err != nil {
		return nil, translateAccount(err)
	}

	parsed, err := domain.ParseRole(role)
	if err != nil {
		// The users.role CHECK constraint makes this unreachable in practice.
		return nil, fmt.Errorf("%w: account %d: %w", domain.ErrAccountNotFound, acc.ID, err)
	}
	acc.Role = parsed
	return &acc, nil
}

func translateAccount(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrAccountNotFound
	}
	return translate(err)
}
