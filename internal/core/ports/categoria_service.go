package ports

import (
	"context"

	"github.com/revenda/api-vendas/internal/core/domain"
)

// CategoriaInput carries the fields for creating or updating a categoria.
type CategoriaInput struct {
	Nome      string
	Descricao string
}

type CategoriaService interface {
	Create(ctx context.Context, input CategoriaInput) (*domain.Categoria, error)
	Get(ctx context.Context, id string) (*domain.Categoria, error)
	Update(ctx context.Context, id string, input CategoriaInput) (*domain.Categoria, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, limit int) ([]*domain.Categoria, int64, error)
}
