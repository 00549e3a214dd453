package ports

import (
	"context"

	"github.com/revenda/api-vendas/internal/core/domain"
)

// RegisterClienteInput carries the fields of a public self-registration.
type RegisterClienteInput struct {
	Nome   string
	Email  string
	Senha  string
	Cidade string
}

// UpdateClienteInput carries a partial profile update; empty fields are
// left untouched.
type UpdateClienteInput struct {
	Nome   string
	Email  string
	Senha  string
	Cidade string
}

type ClienteService interface {
	Register(ctx context.Context, input RegisterClienteInput) (*domain.Cliente, error)
	// Login returns a signed token and the cliente's public profile. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, senha string) (string, *domain.Cliente, error)
	Get(ctx context.Context, id string, ident domain.Identity) (*domain.Cliente, error)
	Update(ctx context.Context, id string, input UpdateClienteInput, ident domain.Identity) (*domain.Cliente, error)
	Delete(ctx context.Context, id string, ident domain.Identity) error
	List(ctx context.Context, page, limit int) ([]*domain.Cliente, int64, error)
}
