package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcore/hospital-admin/internal/core/domain"
)

// ClaimsKey is the echo context key under which the Auth middleware stores
// the verified domain.SessionClaims.
const ClaimsKey = "claims"

// ctxClaims extracts the session claims injected by the Auth middleware.
// A missing or role-less value means the route was mounted without it.
func ctxClaims(c echo.Context) (domain.SessionClaims, error) {
	claims, ok := c.Get(ClaimsKey).(domain.SessionClaims)
	if !ok || !claims.Role.Valid() {
		return domain.SessionClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
