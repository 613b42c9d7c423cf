package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcore/hospital-admin/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// AnyRole lets every authenticated role through.
func AnyRole() echo.MiddlewareFunc {
	return RBAC(domain.RolePatient, domain.RoleDoctor, domain.RoleAdmissionist, domain.RoleAdmin)
}
