package ports

import (
	"context"

	"github.com/revenda/api-vendas/internal/core/domain"
)

// CreateProdutoInput carries the fields for a new catalog item.
type CreateProdutoInput struct {
	Nome        string
	Descricao   string
	PrecoVenda  float64
	PrecoCusto  float64
	CategoriaID string
	Estoque     int
	Ativo       bool
}

// UpdateProdutoInput is a partial update; nil pointers are skipped so a
// caller can deactivate a produto without resending every field.
type UpdateProdutoInput struct {
	Nome        *string
	Descricao   *string
	PrecoVenda  *float64
	PrecoCusto  *float64
	CategoriaID *string
	Estoque     *int
	Ativo       *bool
}

type ProdutoService interface {
	Create(ctx context.Context, input CreateProdutoInput) (*domain.Produto, error)
	// Get hides inactive produtos from non-admin callers.
	Get(ctx context.Context, id string, ident domain.Identity) (*domain.Produto, error)
	Update(ctx context.Context, id string, input UpdateProdutoInput) (*domain.Produto, error)
	Delete(ctx context.Context, id string) error
	// List scopes the catalog by identity: non-admin callers only see active
	// produtos, and their listings are served through the catalog cache.
	List(ctx context.Context, filter ListProdutosFilter, ident domain.Identity) ([]*domain.Produto, int64, error)
}
