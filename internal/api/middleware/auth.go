package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management-api/internal/api/metrics"
	"github.com/userhub/user-management-api/internal/core/ports"
)

// Context keys set by the guards for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxRoles  = "roles"
)

// Auth admits any request carrying a valid token and injects the decoded
// identity into the echo context. CORS pre-flight requests pass through
// untouched. Missing, malformed and failed-verification tokens all fail
// closed with 401.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodOptions {
				return next(c)
			}

			claims, err := authenticate(c, tokens)
			if err != nil {
				return err
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRoles, claims.Roles)

			return next(c)
		}
	}
}

func authenticate(c echo.Context, tokens ports.TokenService) (*ports.TokenClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		metrics.GuardDenialsTotal.WithLabelValues("missing_header").Inc()
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		metrics.GuardDenialsTotal.WithLabelValues("malformed_header").Inc()
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims, err := tokens.Verify(parts[1])
	if err != nil {
		metrics.GuardDenialsTotal.WithLabelValues("invalid_token").Inc()
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	return claims, nil
}
