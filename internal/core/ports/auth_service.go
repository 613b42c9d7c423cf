package ports

import (
	"context"

	"github.com/medcore/hospital-admin/internal/core/domain"
)

// LoginInput is the DTO passed from the transport layer to AuthService.
type LoginInput struct {
	Identifier string // username or profile email
	Password   string
	RemoteIP   string // audit only
}

// TokenVerifier validates session tokens presented by clients.
type TokenVerifier interface {
	VerifyToken(token string) (domain.SessionClaims, error)
}

type AuthService interface {
	TokenVerifier
	Login(ctx context.Context, in LoginInput) (string, *domain.AuthenticatedProfile, error)
}
