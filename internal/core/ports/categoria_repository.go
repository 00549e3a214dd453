package ports

import (
	"context"

	"github.com/revenda/api-vendas/internal/core/domain"
)

// CategoriaRepository defines persistence operations for catalog categories.
type CategoriaRepository interface {
	Create(ctx context.Context, categoria *domain.Categoria) (*domain.Categoria, error)
	FindByID(ctx context.Context, id string) (*domain.Categoria, error)
	Update(ctx context.Context, categoria *domain.Categoria) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, limit int) ([]*domain.Categoria, int64, error)
}
