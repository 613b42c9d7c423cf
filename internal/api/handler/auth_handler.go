package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medcore/hospital-admin/internal/api/metrics"
	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

const (
	// SessionCookie carries the session token for browser clients.
	SessionCookie = "auth_token"
	sessionMaxAge = 3600
)

type AuthHandler struct {
	authService  ports.AuthService
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the login/logout envelope. Token is null on failure.
type loginResponse struct {
	Message string                       `json:"message"`
	Success bool                         `json:"success"`
	Token   *string                      `json:"token"`
	User    *domain.AuthenticatedProfile `json:"user,omitempty"`
}

type sessionResponse struct {
	Username  string      `json:"username"`
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Login authenticates by username or profile email and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Username (or profile email) and password"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  loginResponse
// @Failure      401   {object}  loginResponse
// @Failure      429   {object}  loginResponse
// @Failure      500   {object}  loginResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	start := time.Now()
	outcome := "error"
	defer func() {
		metrics.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
		metrics.LoginDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		outcome = "bad_request"
		return c.JSON(http.StatusBadRequest, loginResponse{Message: "invalid payload"})
	}

	token, profile, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Identifier: req.Username,
		Password:   req.Password,
		RemoteIP:   c.RealIP(),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			outcome = "invalid_credentials"
			return c.JSON(http.StatusUnauthorized, loginResponse{Message: "invalid credentials"})
		case errors.Is(err, domain.ErrTooManyAttempts):
			outcome = "throttled"
			return c.JSON(http.StatusTooManyRequests, loginResponse{Message: "too many failed attempts, try again later"})
		}
		return c.JSON(http.StatusInternalServerError, loginResponse{Message: "internal error"})
	}

	c.SetCookie(h.sessionCookie(token, sessionMaxAge))
	outcome = "success"
	return c.JSON(http.StatusOK, loginResponse{
		Message: "login successful",
		Success: true,
		Token:   &token,
		User:    profile,
	})
}

// Logout clears the session cookie. The token itself stays valid until it expires.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  loginResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// negative MaxAge is written as Max-Age=0
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, loginResponse{Message: "logout successful", Success: true})
}

// Me returns the claims of the presented session token.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Username:  claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.UTC(),
	})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}
