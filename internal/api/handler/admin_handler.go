package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/revenda/api-vendas/internal/api/middleware"
	"github.com/revenda/api-vendas/internal/core/ports"
)

// AdminHandler handles HTTP requests for administrator accounts.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Create registers an administrator. The route runs under OptionalAuth: an
// authenticated admin always may create one; an anonymous call only succeeds
// while no admin exists (bootstrap).
//
// @Summary      Cadastrar administrador
// @Tags         administradores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAdminRequest  true  "Dados do administrador"
// @Success      201   {object}  adminResponse
// @Failure      400   {object}  erroResponse
// @Failure      500   {object}  erroResponse
// @Router       /administradores [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, err := h.service.Create(c.Request().Context(), ports.CreateAdminInput{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
		Nivel: req.Nivel,
	}, middleware.Identity(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAdminResponse(admin))
}

// Login authenticates an administrator and returns a JWT token.
//
// @Summary      Login de administrador
// @Tags         administradores
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credenciais"
// @Success      200   {object}  adminLoginResponse
// @Failure      401   {object}  erroResponse
// @Router       /administradores/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	signed, admin, err := h.service.Login(c.Request().Context(), req.Email, req.Senha)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminLoginResponse{
		Token:         signed,
		Administrador: toAdminResponse(admin),
	})
}

// Get returns one administrator (admin only).
//
// @Summary      Consultar administrador
// @Tags         administradores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID do administrador"
// @Success      200  {object}  adminResponse
// @Failure      404  {object}  erroResponse
// @Router       /administradores/{id} [get]
func (h *AdminHandler) Get(c echo.Context) error {
	admin, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdminResponse(admin))
}

// Update mutates an administrator account.
//
// @Summary      Atualizar administrador
// @Tags         administradores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "ID do administrador"
// @Param        body  body      updateAdminRequest  true  "Campos a atualizar"
// @Success      200   {object}  adminResponse
// @Failure      403   {object}  erroResponse
// @Router       /administradores/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	var req updateAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateAdminInput{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
		Nivel: req.Nivel,
	}, middleware.Identity(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAdminResponse(admin))
}

// Delete removes an administrator (nivel 5 only; never oneself).
//
// @Summary      Remover administrador
// @Tags         administradores
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do administrador"
// @Success      204
// @Failure      403  {object}  erroResponse
// @Router       /administradores/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), middleware.Identity(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns a page of administradores (admin only).
//
// @Summary      Listar administradores
// @Tags         administradores
// @Produce      json
// @Security     BearerAuth
// @Param        pagina  query     int  false  "Página (1-based)"
// @Param        limite  query     int  false  "Itens por página"
// @Success      200     {object}  listAdminsResponse
// @Router       /administradores [get]
func (h *AdminHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	admins, total, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	data := make([]adminResponse, 0, len(admins))
	for _, admin := range admins {
		data = append(data, toAdminResponse(admin))
	}
	return c.JSON(http.StatusOK, listAdminsResponse{Data: data, Paginacao: paginacao(total, page, limit)})
}
