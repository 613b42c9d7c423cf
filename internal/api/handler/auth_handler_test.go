package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, in ports.LoginInput) (string, *domain.AuthenticatedProfile, error)
	verifyFn func(token string) (domain.SessionClaims, error)
}

func (s *stubAuthService) Login(ctx context.Context, in ports.LoginInput) (string, *domain.AuthenticatedProfile, error) {
	return s.loginFn(ctx, in)
}

func (s *stubAuthService) VerifyToken(token string) (domain.SessionClaims, error) {
	return s.verifyFn(token)
}

func doLogin(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie in %v", SessionCookie, rec.Header().Values("Set-Cookie"))
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, in ports.LoginInput) (string, *domain.AuthenticatedProfile, error) {
			if in.Identifier != "drsmith" || in.Password != "correct-horse" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "signed.jwt.token", &domain.AuthenticatedProfile{ID: 7, Username: "drsmith", Role: domain.RoleDoctor}, nil
		},
	}

	rec := doLogin(t, NewAuthHandler(stub, true), `{"username":"drsmith","password":"correct-horse"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["success"] != true || resp["token"] != "signed.jwt.token" || resp["message"] == "" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["role"] != "doctor" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}

	cookie := sessionCookieFrom(t, rec)
	if cookie.Value != "signed.jwt.token" {
		t.Errorf("cookie value = %q", cookie.Value)
	}
	if !cookie.HttpOnly || !cookie.Secure || cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("missing cookie flags: %+v", cookie)
	}
	if cookie.Path != "/" || cookie.MaxAge != 3600 {
		t.Errorf("unexpected cookie scope: path=%q max-age=%d", cookie.Path, cookie.MaxAge)
	}
}

func TestAuthHandler_Login_InsecureCookieForLocalDev(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, ports.LoginInput) (string, *domain.AuthenticatedProfile, error) {
			return "tok", &domain.AuthenticatedProfile{}, nil
		},
	}
	rec := doLogin(t, NewAuthHandler(stub, false), `{"username":"a","password":"b"}`)
	if sessionCookieFrom(t, rec).Secure {
		t.Error("expected Secure to be off")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	for name, err := range map[string]error{
		"wrong password": domain.ErrInvalidCredentials,
		"hash corrupt":   fmt.Errorf("%w: %w", domain.ErrInvalidCredentials, domain.ErrHashCorrupt),
	} {
		t.Run(name, func(t *testing.T) {
			stub := &stubAuthService{
				loginFn: func(context.Context, ports.LoginInput) (string, *domain.AuthenticatedProfile, error) {
					return "", nil, err
				},
			}
			rec := doLogin(t, NewAuthHandler(stub, true), `{"username":"ghost","password":"x"}`)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			resp := decodeEnvelope(t, rec)
			token, present := resp["token"]
			if !present || token != nil {
				t.Fatalf("expected explicit null token, got %+v", resp)
			}
			if resp["success"] != false {
				t.Fatalf("expected success=false, got %+v", resp)
			}
			if strings.Contains(rec.Body.String(), "hash") {
				t.Fatalf("response leaks internal detail: %s", rec.Body.String())
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Fatal("no cookie may be set on failure")
			}
		})
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, ports.LoginInput) (string, *domain.AuthenticatedProfile, error) {
			return "", nil, domain.ErrTooManyAttempts
		},
	}
	rec := doLogin(t, NewAuthHandler(stub, true), `{"username":"drsmith","password":"x"}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_StoreUnavailable(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, ports.LoginInput) (string, *domain.AuthenticatedProfile, error) {
			return "", nil, fmt.Errorf("login: %w: connection refused", domain.ErrStoreUnavailable)
		},
	}
	rec := doLogin(t, NewAuthHandler(stub, true), `{"username":"drsmith","password":"x"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "refused") {
		t.Fatalf("response leaks internal detail: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_BadPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, ports.LoginInput) (string, *domain.AuthenticatedProfile, error) {
			t.Fatal("service must not be called")
			return "", nil, nil
		},
	}
	rec := doLogin(t, NewAuthHandler(stub, true), `{"username":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_IsIdempotent(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, true)
	e := echo.New()

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		if i > 0 {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
		}
		rec := httptest.NewRecorder()
		if err := h.Logout(e.NewContext(req, rec)); err != nil {
			t.Fatalf("logout %d returned error: %v", i, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("logout %d: expected 200, got %d", i, rec.Code)
		}
		header := rec.Header().Get(echo.HeaderSetCookie)
		if !strings.Contains(header, "auth_token=;") || !strings.Contains(header, "Max-Age=0") {
			t.Fatalf("cookie not cleared: %q", header)
		}
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/me", nil), rec)
	exp := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.Set(ClaimsKey, domain.SessionClaims{Subject: "ana", Role: domain.RolePatient, ExpiresAt: exp})

	if err := NewAuthHandler(&stubAuthService{}, true).Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeEnvelope(t, rec)
	if resp["username"] != "ana" || resp["role"] != "patient" || resp["expires_at"] != "2026-01-01T12:00:00Z" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Me_WithoutClaims(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/me", nil), httptest.NewRecorder())

	err := NewAuthHandler(&stubAuthService{}, true).Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
