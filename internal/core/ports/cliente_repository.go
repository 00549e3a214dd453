package ports

import (
	"context"

	"github.com/revenda/api-vendas/internal/core/domain"
)

// ClienteRepository defines persistence operations for cliente accounts.
type ClienteRepository interface {
	Create(ctx context.Context, cliente *domain.Cliente) (*domain.Cliente, error)
	FindByEmail(ctx context.Context, email string) (*domain.Cliente, error)
	FindByID(ctx context.Context, id string) (*domain.Cliente, error)
	Update(ctx context.Context, cliente *domain.Cliente) error
	Delete(ctx context.Context, id string) error
	// List returns a page of clientes and the total count.
	List(ctx context.Context, page, limit int) ([]*domain.Cliente, int64, error)
}
