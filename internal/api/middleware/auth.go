package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medcore/hospital-admin/internal/api/handler"
	"github.com/medcore/hospital-admin/internal/api/metrics"
	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

// Auth verifies the session token and injects its claims into the context.
// The token is read from the Authorization bearer header, falling back to the
// session cookie set at login.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := extractToken(c)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return err
			}

			claims, err := verifier.VerifyToken(raw)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()

			c.Set(handler.ClaimsKey, claims)
			c.Set("username", claims.Subject)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}
		return parts[1], nil
	}

	if cookie, err := c.Cookie(handler.SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
}
