package ports

import (
	"context"

	"github.com/revenda/api-vendas/internal/core/domain"
)

// CreatePropostaInput carries a new purchase proposal. The owner is always
// the authenticated cliente, never a request field.
type CreatePropostaInput struct {
	ProdutoID  string
	Quantidade int
	Mensagem   string
}

type PropostaService interface {
	Create(ctx context.Context, input CreatePropostaInput, ident domain.Identity) (*domain.Proposta, error)
	Get(ctx context.Context, id string, ident domain.Identity) (*domain.Proposta, error)
	Delete(ctx context.Context, id string, ident domain.Identity) error
	// List returns every proposal for admins and only the caller's own
	// proposals for clientes.
	List(ctx context.Context, filter ListPropostasFilter, ident domain.Identity) ([]*domain.Proposta, int64, error)
	// UpdateStatus decides a pending proposal (aceita or recusada).
	UpdateStatus(ctx context.Context, id string, status domain.PropostaStatus) (*domain.Proposta, error)
}
