package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/revenda/api-vendas/internal/api/middleware"
	"github.com/revenda/api-vendas/internal/core/domain"
	"github.com/revenda/api-vendas/internal/core/ports"
)

// PropostaHandler handles HTTP requests for purchase proposals.
type PropostaHandler struct {
	service ports.PropostaService
}

func NewPropostaHandler(service ports.PropostaService) *PropostaHandler {
	return &PropostaHandler{service: service}
}

type createPropostaRequest struct {
	ProdutoID  string `json:"produto_id" validate:"required"`
	Quantidade int    `json:"quantidade" validate:"required,gt=0"`
	Mensagem   string `json:"mensagem"   validate:"omitempty,max=500"`
}

type updatePropostaStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=aceita recusada"`
}

type propostaResponse struct {
	ID         string    `json:"id"`
	ClienteID  string    `json:"cliente_id"`
	ProdutoID  string    `json:"produto_id"`
	Quantidade int       `json:"quantidade"`
	Mensagem   string    `json:"mensagem,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type listPropostasResponse struct {
	Data      []propostaResponse `json:"data"`
	Paginacao paginacaoResponse  `json:"paginacao"`
}

func toPropostaResponse(p *domain.Proposta) propostaResponse {
	return propostaResponse{
		ID:         p.ID,
		ClienteID:  p.ClienteID,
		ProdutoID:  p.ProdutoID,
		Quantidade: p.Quantidade,
		Mensagem:   p.Mensagem,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
	}
}

// Create submits a purchase proposal (cliente only).
//
// @Summary      Criar proposta de compra
// @Tags         propostas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropostaRequest  true  "Dados da proposta"
// @Success      201   {object}  propostaResponse
// @Failure      400   {object}  erroResponse
// @Failure      404   {object}  erroResponse
// @Router       /propostas [post]
func (h *PropostaHandler) Create(c echo.Context) error {
	var req createPropostaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	proposta, err := h.service.Create(c.Request().Context(), ports.CreatePropostaInput{
		ProdutoID:  req.ProdutoID,
		Quantidade: req.Quantidade,
		Mensagem:   req.Mensagem,
	}, middleware.Identity(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPropostaResponse(proposta))
}

// Get returns one proposal: its owner or any admin.
//
// @Summary      Consultar proposta
// @Tags         propostas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da proposta"
// @Success      200  {object}  propostaResponse
// @Failure      401  {object}  erroResponse
// @Failure      403  {object}  erroResponse
// @Failure      404  {object}  erroResponse
// @Router       /propostas/{id} [get]
func (h *PropostaHandler) Get(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	proposta, err := h.service.Get(c.Request().Context(), c.Param("id"), ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropostaResponse(proposta))
}

// Delete removes a proposal: its owner or any admin.
//
// @Summary      Remover proposta
// @Tags         propostas
// @Security     BearerAuth
// @Param        id  path  string  true  "ID da proposta"
// @Success      204
// @Failure      401  {object}  erroResponse
// @Failure      403  {object}  erroResponse
// @Router       /propostas/{id} [delete]
func (h *PropostaHandler) Delete(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), ident); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns proposals: all of them for admins, own ones for clientes.
//
// @Summary      Listar propostas
// @Tags         propostas
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filtrar por status"
// @Param        pagina  query     int     false  "Página (1-based)"
// @Param        limite  query     int     false  "Itens por página"
// @Success      200     {object}  listPropostasResponse
// @Failure      401     {object}  erroResponse
// @Router       /propostas [get]
func (h *PropostaHandler) List(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	page, limit := pageParams(c)
	propostas, total, err := h.service.List(c.Request().Context(), ports.ListPropostasFilter{
		ClienteID: c.QueryParam("cliente_id"),
		Status:    c.QueryParam("status"),
		Page:      page,
		Limit:     limit,
	}, ident)
	if err != nil {
		return err
	}

	data := make([]propostaResponse, 0, len(propostas))
	for _, proposta := range propostas {
		data = append(data, toPropostaResponse(proposta))
	}
	return c.JSON(http.StatusOK, listPropostasResponse{Data: data, Paginacao: paginacao(total, page, limit)})
}

// UpdateStatus decides a pending proposal (admin only).
//
// @Summary      Decidir proposta
// @Tags         propostas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                       true  "ID da proposta"
// @Param        body  body      updatePropostaStatusRequest  true  "Novo status"
// @Success      200   {object}  propostaResponse
// @Failure      404   {object}  erroResponse
// @Failure      422   {object}  erroResponse
// @Router       /propostas/{id}/status [put]
func (h *PropostaHandler) UpdateStatus(c echo.Context) error {
	var req updatePropostaStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	proposta, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.PropostaStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropostaResponse(proposta))
}
