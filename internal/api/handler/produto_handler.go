package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/revenda/api-vendas/internal/api/middleware"
	"github.com/revenda/api-vendas/internal/core/ports"
)

// ProdutoHandler handles HTTP requests for the catalog.
type ProdutoHandler struct {
	service ports.ProdutoService
}

func NewProdutoHandler(service ports.ProdutoService) *ProdutoHandler {
	return &ProdutoHandler{service: service}
}

// Create adds a produto to the catalog (admin only).
//
// @Summary      Cadastrar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  produtoResponse
// @Failure      400   {object}  erroResponse
// @Failure      404   {object}  erroResponse
// @Router       /produtos [post]
func (h *ProdutoHandler) Create(c echo.Context) error {
	var req createProdutoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	produto, err := h.service.Create(c.Request().Context(), ports.CreateProdutoInput{
		Nome:        req.Nome,
		Descricao:   req.Descricao,
		PrecoVenda:  req.PrecoVenda,
		PrecoCusto:  req.PrecoCusto,
		CategoriaID: req.CategoriaID,
		Estoque:     req.Estoque,
		Ativo:       ativo,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toProdutoResponse(produto, true))
}

// Get returns one produto. Admins see inactive items and the cost price.
//
// @Summary      Consultar produto
// @Tags         produtos
// @Produce      json
// @Param        id   path      string  true  "ID do produto"
// @Success      200  {object}  produtoResponse
// @Failure      404  {object}  erroResponse
// @Router       /produtos/{id} [get]
func (h *ProdutoHandler) Get(c echo.Context) error {
	ident := middleware.Identity(c)
	produto, err := h.service.Get(c.Request().Context(), c.Param("id"), ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProdutoResponse(produto, ident.IsAdmin()))
}

// Update mutates a produto (admin only).
//
// @Summary      Atualizar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "ID do produto"
// @Param        body  body      updateProdutoRequest  true  "Campos a atualizar"
// @Success      200   {object}  produtoResponse
// @Failure      404   {object}  erroResponse
// @Router       /produtos/{id} [put]
func (h *ProdutoHandler) Update(c echo.Context) error {
	var req updateProdutoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	produto, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProdutoInput{
		Nome:        req.Nome,
		Descricao:   req.Descricao,
		PrecoVenda:  req.PrecoVenda,
		PrecoCusto:  req.PrecoCusto,
		CategoriaID: req.CategoriaID,
		Estoque:     req.Estoque,
		Ativo:       req.Ativo,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProdutoResponse(produto, true))
}

// Delete removes a produto (admin nivel 3+).
//
// @Summary      Remover produto
// @Tags         produtos
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do produto"
// @Success      204
// @Failure      404  {object}  erroResponse
// @Router       /produtos/{id} [delete]
func (h *ProdutoHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns a catalog page. Anonymous and cliente callers only see
// active produtos; admins see everything including cost prices.
//
// @Summary      Listar produtos
// @Tags         produtos
// @Produce      json
// @Param        categoria_id  query     string  false  "Filtrar por categoria"
// @Param        pagina        query     int     false  "Página (1-based)"
// @Param        limite        query     int     false  "Itens por página"
// @Success      200           {object}  listProdutosResponse
// @Router       /produtos [get]
func (h *ProdutoHandler) List(c echo.Context) error {
	ident := middleware.Identity(c)
	page, limit := pageParams(c)

	produtos, total, err := h.service.List(c.Request().Context(), ports.ListProdutosFilter{
		CategoriaID: c.QueryParam("categoria_id"),
		Page:        page,
		Limit:       limit,
	}, ident)
	if err != nil {
		return err
	}

	data := make([]produtoResponse, 0, len(produtos))
	for _, produto := range produtos {
		data = append(data, toProdutoResponse(produto, ident.IsAdmin()))
	}
	return c.JSON(http.StatusOK, listProdutosResponse{Data: data, Paginacao: paginacao(total, page, limit)})
}
