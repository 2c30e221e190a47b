package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/braizerecords/label-api/internal/api/metrics"
	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

// RBAC enforces role-based access control. Superadmin implicitly passes
// every check; see IdentityService.HasPermission.
func RBAC(identity ports.IdentityService, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if !identity.HasPermission(role, allowedRoles...) {
				metrics.AuthDeniedTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
