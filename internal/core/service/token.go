package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/medcore/hospital-admin/internal/core/domain"
)

// DefaultTokenTTL is the session lifetime when none is configured.
const DefaultTokenTTL = 60 * time.Minute

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTCodec issues and validates HS256 session tokens carrying {sub, role, exp}.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type CodecOption func(*JWTCodec)

// WithClock overrides the time source used for issuance and expiry checks.
func WithClock(now func() time.Time) CodecOption {
	return func(c *JWTCodec) { c.now = now }
}

// NewJWTCodec fails with domain.ErrConfigMissing when secret is empty.
func NewJWTCodec(secret string, ttl time.Duration, opts ...CodecOption) (*JWTCodec, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET", domain.ErrConfigMissing)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	c := &JWTCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Issue signs a token expiring ttl after the current second.
func (c *JWTCodec) Issue(subject string, role domain.Role) (string, domain.SessionClaims, error) {
	if !role.Valid() {
		return "", domain.SessionClaims{}, fmt.Errorf("issue token: %w", domain.ErrInvalidRole)
	}

	exp := jwt.NewNumericDate(c.now().Truncate(time.Second).Add(c.ttl))
	claims := sessionClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: exp,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", domain.SessionClaims{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, domain.SessionClaims{Subject: subject, Role: role, ExpiresAt: exp.Time}, nil
}

// Verify checks signature, algorithm and expiry. A token is expired from
// its exp instant onwards.
func (c *JWTCodec) Verify(token string) (domain.SessionClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.SessionClaims{}, domain.ErrTokenExpired
		}
		return domain.SessionClaims{}, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil || claims.Subject == "" {
		return domain.SessionClaims{}, fmt.Errorf("%w: incomplete claims", domain.ErrTokenInvalid)
	}

	return domain.SessionClaims{
		Subject:   claims.Subject,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
