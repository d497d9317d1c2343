package middleware

import (
	"net/http"
	"strings"

	"github.com/flarehaven/venue-booking/internal/auth"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AdminGuard rejects requests without a valid admin session token.
func AdminGuard(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			subject, err := tokens.Parse(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set("admin", subject)
			return next(c)
		}
	}
}
