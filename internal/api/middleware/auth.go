// Package middleware contains the principal resolvers and authorization
// guards. A resolver extracts the bearer token, verifies it through the
// token codec, and attaches an immutable domain.Identity to the request
// context; guards and handlers read that Identity and never touch the raw
// token again.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/revenda/api-vendas/internal/core/domain"
	"github.com/revenda/api-vendas/internal/core/token"
)

const identityKey = "identity"

// Identity returns the Identity attached by a resolver. The zero value
// (anonymous) is returned when no resolver ran or no token was presented.
func Identity(c echo.Context) domain.Identity {
	ident, _ := c.Get(identityKey).(domain.Identity)
	return ident
}

// RequireAdmin rejects the request with 401 unless it carries a valid
// admin token.
func RequireAdmin(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims, err := codec.VerifyAdmin(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, authMessage(err))
			}

			c.Set(identityKey, domain.AdminIdentity(claims.AdminID, claims.AdminNome, claims.AdminNivel))
			return next(c)
		}
	}
}

// RequireCliente rejects the request with 401 unless it carries a valid
// cliente token.
func RequireCliente(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims, err := codec.VerifyCliente(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, authMessage(err))
			}

			c.Set(identityKey, domain.ClienteIdentity(claims.ClienteID, claims.ClienteNome))
			return next(c)
		}
	}
}

// OptionalAuth never fails the request. When a bearer token is present it is
// decoded as an admin token first and as a cliente token second; a token
// valid under both interpretations always resolves as admin. Downstream
// authorization assumes "admin present means full access", so this order is
// a contract, not an implementation detail.
func OptionalAuth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				c.Set(identityKey, domain.Identity{})
				return next(c)
			}

			if claims, err := codec.VerifyAdmin(raw); err == nil {
				c.Set(identityKey, domain.AdminIdentity(claims.AdminID, claims.AdminNome, claims.AdminNivel))
				return next(c)
			}
			if claims, err := codec.VerifyCliente(raw); err == nil {
				c.Set(identityKey, domain.ClienteIdentity(claims.ClienteID, claims.ClienteNome))
				return next(c)
			}

			c.Set(identityKey, domain.Identity{})
			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header. The missing
// header and the malformed scheme cases carry distinct messages.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Token não informado")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Token mal formatado")
	}
	return parts[1], nil
}

func authMessage(err error) string {
	if errors.Is(err, domain.ErrTokenExpired) {
		return domain.ErrTokenExpired.Error()
	}
	return domain.ErrTokenInvalid.Error()
}
