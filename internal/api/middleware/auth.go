package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/northmart/commerce-system/internal/core/ports"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// PrincipalKey is the echo context key under which Auth stores the
// resolved *domain.User.
const PrincipalKey = "principal"

// Auth extracts the session token from the request (cookie first, then
// Authorization bearer header), verifies it, resolves the referenced user
// and attaches it as the request's authenticated principal.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "please login to access this resource")
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "please login to access this resource")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "please login to access this resource")
			}

			c.Set(PrincipalKey, user)
			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
