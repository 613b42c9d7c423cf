package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

type fakeUserGateway struct {
	created *domain.UserInput
	patched *domain.UserPatch
	err     error
}

func (f *fakeUserGateway) List(context.Context, ports.Page) ([]domain.User, int, error) {
	return []domain.User{{ID: 1}}, 1, f.err
}

func (f *fakeUserGateway) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.User{ID: id}, nil
}

func (f *fakeUserGateway) Create(_ context.Context, in domain.UserInput) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = &in
	return &domain.User{ID: 10, Username: in.Username, Role: in.Role}, nil
}

func (f *fakeUserGateway) Update(_ context.Context, id int64, in domain.UserPatch) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.patched = &in
	return &domain.User{ID: id}, nil
}

func (f *fakeUserGateway) SoftDelete(_ context.Context, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.User{ID: id}, nil
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("entropy exhausted") }

func TestUserService_CreateHashesPassword(t *testing.T) {
	gw := &fakeUserGateway{}
	hasher := NewBcryptVerifier(bcrypt.MinCost)
	svc := NewUserService(gw, hasher, zerolog.Nop())

	_, err := svc.Create(context.Background(), domain.UserInput{Username: "drsmith", Password: "stethoscope", Role: domain.RoleDoctor})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if gw.created.Password != "" {
		t.Fatal("plaintext must not reach the gateway")
	}
	if err := hasher.Verify(gw.created.PasswordHash, "stethoscope"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestUserService_UpdateHashesOnlyWhenPasswordPresent(t *testing.T) {
	gw := &fakeUserGateway{}
	svc := NewUserService(gw, NewBcryptVerifier(bcrypt.MinCost), zerolog.Nop())

	username := "dr.smith"
	if _, err := svc.Update(context.Background(), 1, domain.UserPatch{Username: &username}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if gw.patched.PasswordHash != nil {
		t.Fatal("no hash expected without a password")
	}

	pw := "new-password"
	if _, err := svc.Update(context.Background(), 1, domain.UserPatch{Password: &pw}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if gw.patched.Password != nil || gw.patched.PasswordHash == nil {
		t.Fatalf("expected hashed password only, got %+v", gw.patched)
	}
}

func TestUserService_HashFailureStopsCreate(t *testing.T) {
	gw := &fakeUserGateway{}
	svc := NewUserService(gw, failingHasher{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), domain.UserInput{Username: "x", Password: "y", Role: domain.RoleAdmin}); err == nil {
		t.Fatal("expected error")
	}
	if gw.created != nil {
		t.Fatal("gateway must not be called")
	}
}

func TestEntityService_PassesErrorsThrough(t *testing.T) {
	gw := &fakeUserGateway{err: domain.ErrNotFound}
	svc := NewEntityService[domain.User, domain.UserInput, domain.UserPatch]("user", gw, zerolog.Nop())

	if _, err := svc.GetByID(context.Background(), 4); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.SoftDelete(context.Background(), 4); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
