package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/revenda/api-vendas/internal/api/middleware"
	"github.com/revenda/api-vendas/internal/core/domain"
)

// requireIdentity returns the resolved Identity, failing with 401 when the
// request is anonymous. Used on routes behind OptionalAuth that still need
// some principal (the resolver itself never rejects).
func requireIdentity(c echo.Context) (domain.Identity, error) {
	ident := middleware.Identity(c)
	if ident.IsAnonymous() {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Token não informado")
	}
	return ident, nil
}

// pageParams reads the page/limit query parameters. Bounds are enforced by
// the service layer; unparsable values fall back to zero.
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("pagina"))
	limit, _ = strconv.Atoi(c.QueryParam("limite"))
	return page, limit
}
