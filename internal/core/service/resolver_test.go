package service

import (
	"context"
	"errors"
	"testing"

	"github.com/medcore/hospital-admin/internal/core/domain"
)

func TestAccountResolver_UsernameFirst(t *testing.T) {
	store := newFakeCredentialStore()
	store.addAccount(domain.Account{ID: 1, Username: "drsmith", Role: domain.RoleDoctor})

	acc, err := NewAccountResolver(store).Resolve(context.Background(), "drsmith")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if acc.ID != 1 {
		t.Fatalf("unexpected account: %+v", acc)
	}
	if len(store.probes) != 0 {
		t.Fatalf("username hit must not probe emails, probed %v", store.probes)
	}
}

func TestAccountResolver_EmailProbeOrder(t *testing.T) {
	store := newFakeCredentialStore()
	store.addAccount(domain.Account{ID: 5, Username: "recepcion", Role: domain.RoleAdmissionist})
	store.addProfile(domain.RoleAdmissionist, "recepcion", "front@hospital.org", domain.ProfileAttributes{})

	acc, err := NewAccountResolver(store).Resolve(context.Background(), "front@hospital.org")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if acc.Role != domain.RoleAdmissionist {
		t.Fatalf("unexpected account: %+v", acc)
	}
	want := []domain.Role{domain.RolePatient, domain.RoleDoctor, domain.RoleAdmissionist}
	if len(store.probes) != len(want) {
		t.Fatalf("expected probes %v, got %v", want, store.probes)
	}
	for i := range want {
		if store.probes[i] != want[i] {
			t.Fatalf("expected probes %v, got %v", want, store.probes)
		}
	}
}

func TestAccountResolver_FirstProfileMatchWins(t *testing.T) {
	store := newFakeCredentialStore()
	store.addAccount(domain.Account{ID: 1, Username: "ana", Role: domain.RolePatient})
	store.addAccount(domain.Account{ID: 2, Username: "dra.ana", Role: domain.RoleDoctor})
	store.addProfile(domain.RolePatient, "ana", "ana@example.com", domain.ProfileAttributes{})
	store.addProfile(domain.RoleDoctor, "dra.ana", "ana@example.com", domain.ProfileAttributes{})

	acc, err := NewAccountResolver(store).Resolve(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if acc.Role != domain.RolePatient {
		t.Fatalf("patient profile should win, got %+v", acc)
	}
}

func TestAccountResolver_SkipsProfileLinkedToOtherRole(t *testing.T) {
	store := newFakeCredentialStore()
	store.addAccount(domain.Account{ID: 9, Username: "root", Role: domain.RoleAdmin})
	store.addProfile(domain.RolePatient, "root", "root@hospital.org", domain.ProfileAttributes{})

	_, err := NewAccountResolver(store).Resolve(context.Background(), "root@hospital.org")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountResolver_NotFound(t *testing.T) {
	store := newFakeCredentialStore()

	for _, id := range []string{"ghost", "ghost@example.com"} {
		if _, err := NewAccountResolver(store).Resolve(context.Background(), id); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Errorf("%s: expected ErrAccountNotFound, got %v", id, err)
		}
	}
}

func TestAccountResolver_NoEmailProbeWithoutAt(t *testing.T) {
	store := newFakeCredentialStore()
	_, _ = NewAccountResolver(store).Resolve(context.Background(), "drsmith")
	if len(store.probes) != 0 {
		t.Fatalf("expected no probes, got %v", store.probes)
	}
}

func TestAccountResolver_PropagatesStoreErrors(t *testing.T) {
	store := newFakeCredentialStore()
	store.usernameErr = domain.ErrStoreUnavailable
	if _, err := NewAccountResolver(store).Resolve(context.Background(), "x"); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}

	store = newFakeCredentialStore()
	store.emailErr = domain.ErrStoreUnavailable
	if _, err := NewAccountResolver(store).Resolve(context.Background(), "x@y.z"); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable from email probe, got %v", err)
	}
}
