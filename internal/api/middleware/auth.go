package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arleti/materials-system/internal/core/domain"
	"github.com/arleti/materials-system/internal/core/ports"
)

// Auth authenticates the request with HTTP Basic credentials resolved through
// the account service on every request. The system issues no session tokens;
// login semantics (pending gate, indistinguishable failures) apply here too.
// On success the sanitized account, its email and role are stored in context.
func Auth(accounts ports.AccountService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, password, ok := c.Request().BasicAuth()
			if !ok {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="materials"`)
				return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
			}

			account, err := accounts.Login(c.Request().Context(), email, password)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidCredentials) {
					c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="materials"`)
				}
				return err
			}

			c.Set("account", account)
			c.Set("email", account.Email)
			c.Set("role", account.Role)

			return next(c)
		}
	}
}
