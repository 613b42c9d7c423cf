package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/medcore/hospital-admin/internal/core/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.Auth.TokenTTL != 60*time.Minute {
		t.Errorf("expected 60m token ttl, got %s", cfg.Auth.TokenTTL)
	}
	if !cfg.Auth.CookieSecure {
		t.Error("expected secure cookies by default")
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("expected bcrypt cost 10, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Postgres.QueryTimeout != 3*time.Second {
		t.Errorf("expected 3s query timeout, got %s", cfg.Postgres.QueryTimeout)
	}
	if cfg.Audit.Workers != 4 {
		t.Errorf("expected 4 audit workers, got %d", cfg.Audit.Workers)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if !errors.Is(err, domain.ErrConfigMissing) {
		t.Fatalf("expected ErrConfigMissing, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":         "s3cret",
		"PORT":               "9090",
		"TOKEN_TTL":          "15m",
		"COOKIE_SECURE":      "false",
		"LOGIN_MAX_FAILURES": "3",
		"REDIS_DB":           "2",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.Auth.TokenTTL != 15*time.Minute {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Auth.CookieSecure {
		t.Error("expected COOKIE_SECURE=false to disable secure cookies")
	}
	if cfg.Auth.MaxFailures != 3 || cfg.Redis.DB != 2 {
		t.Errorf("unexpected auth/redis config: %+v %+v", cfg.Auth, cfg.Redis)
	}
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
		"TOKEN_TTL":  "0s",
	}))
	if err == nil {
		t.Fatal("expected error for zero ttl")
	}
}

func TestLoad_ProductionRequiresSecureCookies(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":    "s3cret",
		"ENV":           "production",
		"COOKIE_SECURE": "false",
	}))
	if err == nil {
		t.Fatal("expected insecure cookies to be rejected in production")
	}

	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":    "s3cret",
		"ENV":           "development",
		"COOKIE_SECURE": "false",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IsProduction() || cfg.Auth.CookieSecure {
		t.Errorf("unexpected config: env=%q secure=%v", cfg.Env, cfg.Auth.CookieSecure)
	}
}

func TestLoad_MaxFailures(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":         "s3cret",
		"LOGIN_MAX_FAILURES": "0",
	}))
	if err != nil {
		t.Fatalf("zero must be accepted as disabled: %v", err)
	}
	if cfg.Auth.MaxFailures != 0 {
		t.Errorf("expected 0, got %d", cfg.Auth.MaxFailures)
	}

	if _, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":         "s3cret",
		"LOGIN_MAX_FAILURES": "-1",
	})); err == nil {
		t.Fatal("expected negative LOGIN_MAX_FAILURES to be rejected")
	}
}
