package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/revenda/api-vendas/internal/core/domain"
	"github.com/revenda/api-vendas/internal/core/ports"
)

// CategoriaHandler handles HTTP requests for catalog categories.
type CategoriaHandler struct {
	service ports.CategoriaService
}

func NewCategoriaHandler(service ports.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{service: service}
}

type categoriaRequest struct {
	Nome      string `json:"nome"      validate:"required"`
	Descricao string `json:"descricao" validate:"omitempty"`
}

type categoriaResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Descricao string    `json:"descricao,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type listCategoriasResponse struct {
	Data      []categoriaResponse `json:"data"`
	Paginacao paginacaoResponse   `json:"paginacao"`
}

func toCategoriaResponse(c *domain.Categoria) categoriaResponse {
	return categoriaResponse{ID: c.ID, Nome: c.Nome, Descricao: c.Descricao, CreatedAt: c.CreatedAt}
}

// Create adds a categoria (admin only).
//
// @Summary      Cadastrar categoria
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoriaRequest  true  "Dados da categoria"
// @Success      201   {object}  categoriaResponse
// @Failure      400   {object}  erroResponse
// @Router       /categorias [post]
func (h *CategoriaHandler) Create(c echo.Context) error {
	var req categoriaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	categoria, err := h.service.Create(c.Request().Context(), ports.CategoriaInput{Nome: req.Nome, Descricao: req.Descricao})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCategoriaResponse(categoria))
}

// Get returns one categoria.
//
// @Summary      Consultar categoria
// @Tags         categorias
// @Produce      json
// @Param        id   path      string  true  "ID da categoria"
// @Success      200  {object}  categoriaResponse
// @Failure      404  {object}  erroResponse
// @Router       /categorias/{id} [get]
func (h *CategoriaHandler) Get(c echo.Context) error {
	categoria, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoriaResponse(categoria))
}

// Update mutates a categoria (admin only).
//
// @Summary      Atualizar categoria
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "ID da categoria"
// @Param        body  body      categoriaRequest  true  "Campos a atualizar"
// @Success      200   {object}  categoriaResponse
// @Failure      404   {object}  erroResponse
// @Router       /categorias/{id} [put]
func (h *CategoriaHandler) Update(c echo.Context) error {
	var req categoriaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	categoria, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.CategoriaInput{Nome: req.Nome, Descricao: req.Descricao})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoriaResponse(categoria))
}

// Delete removes a categoria (admin nivel 3+).
//
// @Summary      Remover categoria
// @Tags         categorias
// @Security     BearerAuth
// @Param        id  path  string  true  "ID da categoria"
// @Success      204
// @Failure      404  {object}  erroResponse
// @Router       /categorias/{id} [delete]
func (h *CategoriaHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns a page of categorias (public).
//
// @Summary      Listar categorias
// @Tags         categorias
// @Produce      json
// @Param        pagina  query     int  false  "Página (1-based)"
// @Param        limite  query     int  false  "Itens por página"
// @Success      200     {object}  listCategoriasResponse
// @Router       /categorias [get]
func (h *CategoriaHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	categorias, total, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	data := make([]categoriaResponse, 0, len(categorias))
	for _, categoria := range categorias {
		data = append(data, toCategoriaResponse(categoria))
	}
	return c.JSON(http.StatusOK, listCategoriasResponse{Data: data, Paginacao: paginacao(total, page, limit)})
}
