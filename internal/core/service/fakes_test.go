package service

import (
	"context"
	"strings"
	"sync"

	"github.com/medcore/hospital-admin/internal/core/domain"
)

// fakeCredentialStore is an in-memory ports.CredentialStore.
type fakeCredentialStore struct {
	accounts map[string]domain.Account         // by username
	emails   map[domain.Role]map[string]string // role -> lower(email) -> username
	profiles map[domain.Role]map[int64]domain.ProfileAttributes

	usernameErr error
	emailErr    error
	profileErr  error

	probes []domain.Role
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{
		accounts: make(map[string]domain.Account),
		emails:   make(map[domain.Role]map[string]string),
		profiles: make(map[domain.Role]map[int64]domain.ProfileAttributes),
	}
}

func (f *fakeCredentialStore) addAccount(acc domain.Account) {
	f.accounts[acc.Username] = acc
}

// addProfile links a profile of role to the named account.
func (f *fakeCredentialStore) addProfile(role domain.Role, username, email string, attrs domain.ProfileAttributes) {
	if f.emails[role] == nil {
		f.emails[role] = make(map[string]string)
		f.profiles[role] = make(map[int64]domain.ProfileAttributes)
	}
	f.emails[role][strings.ToLower(email)] = username
	f.profiles[role][f.accounts[username].ID] = attrs
}

func (f *fakeCredentialStore) FindAccountByUsername(_ context.Context, username string) (*domain.Account, error) {
	if f.usernameErr != nil {
		return nil, f.usernameErr
	}
	acc, ok := f.accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &acc, nil
}

func (f *fakeCredentialStore) FindAccountByProfileEmail(_ context.Context, role domain.Role, email string) (*domain.Account, error) {
	f.probes = append(f.probes, role)
	if f.emailErr != nil {
		return nil, f.emailErr
	}
	username, ok := f.emails[role][strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	acc := f.accounts[username]
	return &acc, nil
}

func (f *fakeCredentialStore) FindProfileAttributes(_ context.Context, role domain.Role, accountID int64) (*domain.ProfileAttributes, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	attrs, ok := f.profiles[role][accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &attrs, nil
}

type fakeThrottle struct {
	failures map[string]int
	max      int
	err      error
	resets   int
}

func newFakeThrottle(max int) *fakeThrottle {
	return &fakeThrottle{failures: make(map[string]int), max: max}
}

func (f *fakeThrottle) Locked(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.failures[id] >= f.max, nil
}

func (f *fakeThrottle) RecordFailure(_ context.Context, id string) error {
	f.failures[id]++
	return f.err
}

func (f *fakeThrottle) Reset(_ context.Context, id string) error {
	delete(f.failures, id)
	f.resets++
	return f.err
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (f *fakeRecorder) Record(e domain.AuthEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
}

func (f *fakeRecorder) outcomes() []domain.LoginOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.LoginOutcome, len(f.events))
	for i, e := range f.events {
		out[i] = e.Outcome
	}
	return out
}

func strPtr(s string) *string { return &s }
