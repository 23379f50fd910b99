package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management-api/internal/api/metrics"
	"github.com/userhub/user-management-api/internal/core/ports"
)

// RequireRoles authenticates the request and then enforces role-based access
// control. Admission is any-match: the token needs at least one of the
// required roles, not all of them. An authenticated request without a
// matching role gets 403, never 401.
func RequireRoles(tokens ports.TokenService, requiredRoles ...string) echo.MiddlewareFunc {
	required := make(map[string]struct{}, len(requiredRoles))
	for _, r := range requiredRoles {
		required[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodOptions {
				return next(c)
			}

			claims, err := authenticate(c, tokens)
			if err != nil {
				return err
			}

			if !anyMatch(claims.Roles, required) {
				metrics.GuardDenialsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRoles, claims.Roles)

			return next(c)
		}
	}
}

func anyMatch(roles []string, required map[string]struct{}) bool {
	for _, r := range roles {
		if _, ok := required[r]; ok {
			return true
		}
	}
	return false
}
