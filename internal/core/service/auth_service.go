package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

// AuthService implements login and token verification.
type AuthService struct {
	resolver  *AccountResolver
	store     ports.CredentialStore
	passwords ports.PasswordVerifier
	tokens    ports.TokenCodec
	throttle  ports.LoginThrottle
	audit     ports.AuthEventRecorder
	log       zerolog.Logger
	now       func() time.Time
}

type AuthOption func(*AuthService)

// WithLoginThrottle enables per-identifier failure counting.
func WithLoginThrottle(t ports.LoginThrottle) AuthOption {
	return func(s *AuthService) { s.throttle = t }
}

// WithAuditRecorder sends every login outcome to r.
func WithAuditRecorder(r ports.AuthEventRecorder) AuthOption {
	return func(s *AuthService) { s.audit = r }
}

func NewAuthService(
	store ports.CredentialStore,
	passwords ports.PasswordVerifier,
	tokens ports.TokenCodec,
	log zerolog.Logger,
	opts ...AuthOption,
) *AuthService {
	s := &AuthService{
		resolver:  NewAccountResolver(store),
		store:     store,
		passwords: passwords,
		tokens:    tokens,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login resolves the identifier, verifies the password, loads the profile
// attributes and issues a token, in that order. Unknown identifiers, wrong
// passwords and corrupt hashes all fail with domain.ErrInvalidCredentials;
// a corrupt hash additionally matches domain.ErrHashCorrupt.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (string, *domain.AuthenticatedProfile, error) {
	if in.Identifier == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.locked(ctx, in.Identifier) {
		s.record(in, nil, domain.OutcomeThrottled)
		return "", nil, domain.ErrTooManyAttempts
	}

	// 1. Resolve.
	acc, err := s.resolver.Resolve(ctx, in.Identifier)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.fail(ctx, in, nil, domain.OutcomeInvalidCredentials)
			return "", nil, domain.ErrInvalidCredentials
		}
		s.record(in, nil, domain.OutcomeStoreUnavailable)
		return "", nil, fmt.Errorf("login: %w", err)
	}

	// An email login shares the lockout budget of the account's username.
	if !strings.EqualFold(in.Identifier, acc.Username) && s.locked(ctx, acc.Username) {
		s.record(in, acc, domain.OutcomeThrottled)
		return "", nil, domain.ErrTooManyAttempts
	}

	// 2. Verify.
	if err := s.passwords.Verify(acc.PasswordHash, in.Password); err != nil {
		if errors.Is(err, domain.ErrHashCorrupt) {
			s.log.Error().Err(err).
				Int64("account_id", acc.ID).
				Str("username", acc.Username).
				Msg("stored password hash is unreadable")
			s.record(in, acc, domain.OutcomeHashCorrupt)
			return "", nil, fmt.Errorf("%w: %w", domain.ErrInvalidCredentials, err)
		}
		s.fail(ctx, in, acc, domain.OutcomeInvalidCredentials)
		return "", nil, domain.ErrInvalidCredentials
	}

	// 3. Profile attributes; admin has none.
	var attrs domain.ProfileAttributes
	if acc.Role.HasProfile() {
		p, err := s.store.FindProfileAttributes(ctx, acc.Role, acc.ID)
		switch {
		case err == nil:
			attrs = *p
		case errors.Is(err, domain.ErrAccountNotFound):
			s.log.Warn().Str("username", acc.Username).Str("role", acc.Role.String()).Msg("account has no linked profile")
		default:
			s.record(in, acc, domain.OutcomeStoreUnavailable)
			return "", nil, fmt.Errorf("login: load profile: %w", err)
		}
	}

	// 4. Issue.
	token, _, err := s.tokens.Issue(acc.Username, acc.Role)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if s.throttle != nil {
		for _, key := range throttleKeys(in.Identifier, acc) {
			if err := s.throttle.Reset(ctx, key); err != nil {
				s.log.Warn().Err(err).Str("identifier", key).Msg("failed to reset login failures")
			}
		}
	}
	s.record(in, acc, domain.OutcomeSuccess)

	s.log.Info().Str("username", acc.Username).Str("role", acc.Role.String()).Msg("login succeeded")

	profile := domain.NewAuthenticatedProfile(*acc, attrs)
	return token, &profile, nil
}

// VerifyToken returns the claims of a valid token, or domain.ErrTokenInvalid
// or domain.ErrTokenExpired.
func (s *AuthService) VerifyToken(token string) (domain.SessionClaims, error) {
	return s.tokens.Verify(token)
}

// locked fails open: a throttle that cannot be reached never blocks a login.
func (s *AuthService) locked(ctx context.Context, identifier string) bool {
	if s.throttle == nil {
		return false
	}
	locked, err := s.throttle.Locked(ctx, identifier)
	if err != nil {
		s.log.Warn().Err(err).Str("identifier", identifier).Msg("login throttle check failed, continuing")
		return false
	}
	return locked
}

func (s *AuthService) fail(ctx context.Context, in ports.LoginInput, acc *domain.Account, outcome domain.LoginOutcome) {
	if s.throttle != nil {
		for _, key := range throttleKeys(in.Identifier, acc) {
			if err := s.throttle.RecordFailure(ctx, key); err != nil {
				s.log.Warn().Err(err).Str("identifier", key).Msg("failed to record login failure")
			}
		}
	}
	s.record(in, acc, outcome)
}

// throttleKeys lists the counters a login attempt touches: the identifier as
// typed and, once resolved, the account's username.
func throttleKeys(identifier string, acc *domain.Account) []string {
	if acc == nil || strings.EqualFold(identifier, acc.Username) {
		return []string{identifier}
	}
	return []string{identifier, acc.Username}
}

func (s *AuthService) record(in ports.LoginInput, acc *domain.Account, outcome domain.LoginOutcome) {
	if s.audit == nil {
		return
	}
	event := domain.AuthEvent{
		ID:         uuid.NewString(),
		Identifier: in.Identifier,
		Outcome:    outcome,
		RemoteIP:   in.RemoteIP,
		OccurredAt: s.now().UTC(),
	}
	if acc != nil {
		event.Username = acc.Username
		event.Role = acc.Role.String()
	}
	s.audit.Record(event)
}
