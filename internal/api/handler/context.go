package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// bearerToken extracts the raw token from the Authorization header. The Auth
// guard has already verified it by the time a handler runs; handlers that
// need the token itself (rather than the decoded claims) re-read it here.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
