package ports

import (
	"context"

	"github.com/revenda/api-vendas/internal/core/domain"
)

// ListPropostasFilter carries proposal query parameters. A non-empty
// ClienteID scopes the listing to that owner (enforced by the service for
// cliente callers).
type ListPropostasFilter struct {
	ClienteID string
	Status    string
	Page      int
	Limit     int
}

// PropostaRepository defines persistence operations for purchase proposals.
type PropostaRepository interface {
	Create(ctx context.Context, proposta *domain.Proposta) (*domain.Proposta, error)
	FindByID(ctx context.Context, id string) (*domain.Proposta, error)
	Update(ctx context.Context, proposta *domain.Proposta) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListPropostasFilter) ([]*domain.Proposta, int64, error)
}
