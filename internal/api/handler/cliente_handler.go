package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/revenda/api-vendas/internal/api/middleware"
	"github.com/revenda/api-vendas/internal/core/ports"
)

// ClienteHandler handles HTTP requests for cliente accounts.
type ClienteHandler struct {
	service ports.ClienteService
}

func NewClienteHandler(service ports.ClienteService) *ClienteHandler {
	return &ClienteHandler{service: service}
}

// Register creates a cliente account.
//
// @Summary      Cadastrar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body      registerClienteRequest  true  "Dados do cliente"
// @Success      201   {object}  clienteResponse
// @Failure      400   {object}  erroResponse
// @Failure      500   {object}  erroResponse
// @Router       /clientes [post]
func (h *ClienteHandler) Register(c echo.Context) error {
	var req registerClienteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cliente, err := h.service.Register(c.Request().Context(), ports.RegisterClienteInput{
		Nome:   req.Nome,
		Email:  req.Email,
		Senha:  req.Senha,
		Cidade: req.Cidade,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toClienteResponse(cliente))
}

// Login authenticates a cliente and returns a JWT token.
//
// @Summary      Login de cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credenciais"
// @Success      200   {object}  clienteLoginResponse
// @Failure      401   {object}  erroResponse
// @Router       /clientes/login [post]
func (h *ClienteHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	signed, cliente, err := h.service.Login(c.Request().Context(), req.Email, req.Senha)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, clienteLoginResponse{
		Token:   signed,
		Cliente: toClienteResponse(cliente),
	})
}

// Get returns one cliente: any admin, or the cliente itself.
//
// @Summary      Consultar cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID do cliente"
// @Success      200  {object}  clienteResponse
// @Failure      401  {object}  erroResponse
// @Failure      403  {object}  erroResponse
// @Failure      404  {object}  erroResponse
// @Router       /clientes/{id} [get]
func (h *ClienteHandler) Get(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	cliente, err := h.service.Get(c.Request().Context(), c.Param("id"), ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClienteResponse(cliente))
}

// Update mutates the caller's own profile.
//
// @Summary      Atualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "ID do cliente"
// @Param        body  body      updateClienteRequest  true  "Campos a atualizar"
// @Success      200   {object}  clienteResponse
// @Failure      403   {object}  erroResponse
// @Router       /clientes/{id} [put]
func (h *ClienteHandler) Update(c echo.Context) error {
	var req updateClienteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cliente, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateClienteInput{
		Nome:   req.Nome,
		Email:  req.Email,
		Senha:  req.Senha,
		Cidade: req.Cidade,
	}, middleware.Identity(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toClienteResponse(cliente))
}

// Delete removes a cliente account: any admin, or the cliente itself.
//
// @Summary      Remover cliente
// @Tags         clientes
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do cliente"
// @Success      204
// @Failure      401  {object}  erroResponse
// @Failure      403  {object}  erroResponse
// @Router       /clientes/{id} [delete]
func (h *ClienteHandler) Delete(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), ident); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns a page of clientes (admin only).
//
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        pagina  query     int  false  "Página (1-based)"
// @Param        limite  query     int  false  "Itens por página"
// @Success      200     {object}  listClientesResponse
// @Failure      401     {object}  erroResponse
// @Router       /clientes [get]
func (h *ClienteHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	clientes, total, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	data := make([]clienteResponse, 0, len(clientes))
	for _, cliente := range clientes {
		data = append(data, toClienteResponse(cliente))
	}
	return c.JSON(http.StatusOK, listClientesResponse{Data: data, Paginacao: paginacao(total, page, limit)})
}
