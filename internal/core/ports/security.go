package ports

import "github.com/medcore/hospital-admin/internal/core/domain"

// PasswordVerifier compares a plaintext password with a stored hash.
// Verify returns nil on match, domain.ErrInvalidCredentials on mismatch and
// domain.ErrHashCorrupt when the stored hash is unreadable.
type PasswordVerifier interface {
	Verify(hash, password string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

// TokenCodec issues and validates signed session tokens.
type TokenCodec interface {
	Issue(subject string, role domain.Role) (string, domain.SessionClaims, error)
	Verify(token string) (domain.SessionClaims, error)
}
