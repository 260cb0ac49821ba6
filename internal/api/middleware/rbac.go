package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/northmart/commerce-system/internal/core/domain"
)

// Principal returns the authenticated user attached by Auth, or nil when
// the middleware has not run on this request.
func Principal(c echo.Context) *domain.User {
	user, _ := c.Get(PrincipalKey).(*domain.User)
	return user
}

// RBAC enforces role-based access control. Must run after Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := Principal(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "please login to access this resource")
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "role is not allowed to access this resource")
			}
			return next(c)
		}
	}
}
