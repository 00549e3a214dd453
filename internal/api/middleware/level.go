package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireLevel rejects the request with 403 unless the resolved identity is
// an admin with nivel >= minimum. It must run after RequireAdmin.
func RequireLevel(minimum int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := Identity(c)
			if !ident.IsAdmin() || ident.AdminNivel < minimum {
				return echo.NewHTTPError(http.StatusForbidden, "Nível de permissão insuficiente")
			}
			return next(c)
		}
	}
}
