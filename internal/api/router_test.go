package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

type fakeAuth struct{}

func (fakeAuth) Login(context.Context, ports.LoginInput) (string, *domain.AuthenticatedProfile, error) {
	return "", nil, domain.ErrInvalidCredentials
}

// VerifyToken accepts tokens of the form "as-<role>".
func (fakeAuth) VerifyToken(token string) (domain.SessionClaims, error) {
	role, err := domain.ParseRole(strings.TrimPrefix(token, "as-"))
	if err != nil {
		return domain.SessionClaims{}, domain.ErrTokenInvalid
	}
	return domain.SessionClaims{Subject: "tester", Role: role}, nil
}

type memGateway[T, C, U any] struct{}

func (memGateway[T, C, U]) List(context.Context, ports.Page) ([]T, int, error) { return nil, 0, nil }
func (memGateway[T, C, U]) GetByID(context.Context, int64) (*T, error)         { return new(T), nil }
func (memGateway[T, C, U]) Create(context.Context, C) (*T, error)              { return new(T), nil }
func (memGateway[T, C, U]) Update(context.Context, int64, U) (*T, error)       { return new(T), nil }
func (memGateway[T, C, U]) SoftDelete(context.Context, int64) (*T, error) {
	return nil, errors.New("boom")
}

// The HTTP metrics middleware registers its collectors globally, so the router
// is built once per test binary.
var testRouter = sync.OnceValue(func() http.Handler {
	return NewRouter(Deps{
		Log:            zerolog.Nop(),
		Auth:           fakeAuth{},
		Hospitals:      memGateway[domain.Hospital, domain.HospitalInput, domain.HospitalPatch]{},
		Users:          memGateway[domain.User, domain.UserInput, domain.UserPatch]{},
		Appointments:   memGateway[domain.Appointment, domain.AppointmentInput, domain.AppointmentPatch]{},
		MedicalHistory: memGateway[domain.MedicalHistory, domain.MedicalHistoryInput, domain.MedicalHistoryPatch]{},
	})
})

func request(h http.Handler, method, path, token, body string) int {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRouter_RBACMatrix(t *testing.T) {
	h := testRouter()

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		want   int
	}{
		{"no token", http.MethodGet, "/api/v1/hospitals", "", "", http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/api/v1/hospitals", "forged", "", http.StatusUnauthorized},
		{"patient reads hospitals", http.MethodGet, "/api/v1/hospitals", "as-patient", "", http.StatusOK},
		{"patient creates hospital", http.MethodPost, "/api/v1/hospitals", "as-patient", `{"name":"X1","address":"Y"}`, http.StatusForbidden},
		{"admin creates hospital", http.MethodPost, "/api/v1/hospitals", "as-admin", `{"name":"X1","address":"Y"}`, http.StatusCreated},
		{"doctor lists users", http.MethodGet, "/api/v1/users", "as-doctor", "", http.StatusForbidden},
		{"admin lists users", http.MethodGet, "/api/v1/users", "as-admin", "", http.StatusOK},
		{"doctor updates appointment", http.MethodPatch, "/api/v1/appointments/1", "as-doctor", `{}`, http.StatusOK},
		{"doctor deletes appointment", http.MethodDelete, "/api/v1/appointments/1", "as-doctor", "", http.StatusForbidden},
		{"patient reads appointments", http.MethodGet, "/api/v1/appointments", "as-patient", "", http.StatusForbidden},
		{"admissionist reads history", http.MethodGet, "/api/v1/medical-history/1", "as-admissionist", "", http.StatusForbidden},
		{"doctor reads history", http.MethodGet, "/api/v1/medical-history/1", "as-doctor", "", http.StatusOK},
		{"gateway failure is 500", http.MethodDelete, "/api/v1/hospitals/1", "as-admin", "", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := request(h, tc.method, tc.path, tc.token, tc.body); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	h := testRouter()

	if got := request(h, http.MethodGet, "/health", "", ""); got != http.StatusOK {
		t.Errorf("/health: expected 200, got %d", got)
	}
	if got := request(h, http.MethodGet, "/metrics", "", ""); got != http.StatusOK {
		t.Errorf("/metrics: expected 200, got %d", got)
	}
	if got := request(h, http.MethodPost, "/auth/logout", "", ""); got != http.StatusOK {
		t.Errorf("/auth/logout: expected 200, got %d", got)
	}
	if got := request(h, http.MethodPost, "/auth/login", "", `{"username":"x","password":"y"}`); got != http.StatusUnauthorized {
		t.Errorf("/auth/login: expected 401, got %d", got)
	}
}
