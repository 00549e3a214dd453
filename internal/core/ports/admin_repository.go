package ports

import (
	"context"

	"github.com/revenda/api-vendas/internal/core/domain"
)

// AdminRepository defines persistence operations for administrator accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	Update(ctx context.Context, admin *domain.Admin) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, limit int) ([]*domain.Admin, int64, error)
	// Count returns the number of registered admins; the bootstrap rule
	// hinges on this being zero.
	Count(ctx context.Context) (int64, error)
}
