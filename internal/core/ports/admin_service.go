package ports

import (
	"context"

	"github.com/revenda/api-vendas/internal/core/domain"
)

// CreateAdminInput carries the fields for creating an administrator.
// Nivel zero means "not provided"; the bootstrap flow defaults it to 5.
type CreateAdminInput struct {
	Nome  string
	Email string
	Senha string
	Nivel int
}

// UpdateAdminInput carries a partial admin update; zero fields are skipped.
type UpdateAdminInput struct {
	Nome  string
	Email string
	Senha string
	Nivel int
}

type AdminService interface {
	// Create registers a new admin. Unauthenticated callers succeed only
	// while zero admins exist (bootstrap); authenticated admins always may.
	Create(ctx context.Context, input CreateAdminInput, ident domain.Identity) (*domain.Admin, error)
	Login(ctx context.Context, email, senha string) (string, *domain.Admin, error)
	Get(ctx context.Context, id string) (*domain.Admin, error)
	Update(ctx context.Context, id string, input UpdateAdminInput, ident domain.Identity) (*domain.Admin, error)
	Delete(ctx context.Context, id string, ident domain.Identity) error
	List(ctx context.Context, page, limit int) ([]*domain.Admin, int64, error)
}
