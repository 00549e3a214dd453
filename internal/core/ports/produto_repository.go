package ports

import (
	"context"

	"github.com/revenda/api-vendas/internal/core/domain"
)

// ListProdutosFilter carries catalog query parameters. ApenasAtivos is
// forced on by the service layer for non-admin callers.
type ListProdutosFilter struct {
	CategoriaID  string
	ApenasAtivos bool
	Page         int
	Limit        int
}

// ProdutoRepository defines persistence operations for catalog items.
type ProdutoRepository interface {
	Create(ctx context.Context, produto *domain.Produto) (*domain.Produto, error)
	FindByID(ctx context.Context, id string) (*domain.Produto, error)
	Update(ctx context.Context, produto *domain.Produto) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListProdutosFilter) ([]*domain.Produto, int64, error)
}
