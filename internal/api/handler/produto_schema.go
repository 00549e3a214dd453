package handler

import (
	"time"

	"github.com/revenda/api-vendas/internal/core/domain"
)

type createProdutoRequest struct {
	Nome        string  `json:"nome"         validate:"required"`
	Descricao   string  `json:"descricao"    validate:"omitempty"`
	PrecoVenda  float64 `json:"preco_venda"  validate:"required,gt=0"`
	PrecoCusto  float64 `json:"preco_custo"  validate:"omitempty,gte=0"`
	CategoriaID string  `json:"categoria_id" validate:"required"`
	Estoque     int     `json:"estoque"      validate:"omitempty,gte=0"`
	Ativo       *bool   `json:"ativo"`
}

type updateProdutoRequest struct {
	Nome        *string  `json:"nome"`
	Descricao   *string  `json:"descricao"`
	PrecoVenda  *float64 `json:"preco_venda"  validate:"omitempty,gt=0"`
	PrecoCusto  *float64 `json:"preco_custo"  validate:"omitempty,gte=0"`
	CategoriaID *string  `json:"categoria_id"`
	Estoque     *int     `json:"estoque"      validate:"omitempty,gte=0"`
	Ativo       *bool    `json:"ativo"`
}

// produtoResponse is the public catalog shape. The admin view adds the cost
// price and the active flag, which are stripped for everyone else.
type produtoResponse struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Descricao   string    `json:"descricao,omitempty"`
	PrecoVenda  float64   `json:"preco_venda"`
	PrecoCusto  *float64  `json:"preco_custo,omitempty"`
	CategoriaID string    `json:"categoria_id"`
	Estoque     int       `json:"estoque"`
	Ativo       *bool     `json:"ativo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type listProdutosResponse struct {
	Data      []produtoResponse `json:"data"`
	Paginacao paginacaoResponse `json:"paginacao"`
}

func toProdutoResponse(p *domain.Produto, admin bool) produtoResponse {
	resp := produtoResponse{
		ID:          p.ID,
		Nome:        p.Nome,
		Descricao:   p.Descricao,
		PrecoVenda:  p.PrecoVenda,
		CategoriaID: p.CategoriaID,
		Estoque:     p.Estoque,
		CreatedAt:   p.CreatedAt,
	}
	if admin {
		precoCusto := p.PrecoCusto
		ativo := p.Ativo
		resp.PrecoCusto = &precoCusto
		resp.Ativo = &ativo
	}
	return resp
}
