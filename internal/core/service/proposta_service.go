package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/revenda/api-vendas/internal/api/metrics"
	"github.com/revenda/api-vendas/internal/core/domain"
	"github.com/revenda/api-vendas/internal/core/ports"
)

// PropostaService implements purchase proposal management. Ownership checks
// run here so every transport shares the same policy.
type PropostaService struct {
	repo     ports.PropostaRepository
	produtos ports.ProdutoRepository
	log      zerolog.Logger
}

func NewPropostaService(repo ports.PropostaRepository, produtos ports.ProdutoRepository, log zerolog.Logger) *PropostaService {
	return &PropostaService{repo: repo, produtos: produtos, log: log}
}

// Create submits a proposal owned by the authenticated cliente. The produto
// must exist and be active.
func (s *PropostaService) Create(ctx context.Context, input ports.CreatePropostaInput, ident domain.Identity) (*domain.Proposta, error) {
	if !ident.IsCliente() {
		return nil, domain.ErrForbidden
	}

	produto, err := s.produtos.FindByID(ctx, input.ProdutoID)
	if err != nil {
		return nil, err
	}
	if !produto.Ativo {
		return nil, domain.ErrProdutoNotFound
	}

	now := time.Now().UTC()
	proposta, err := s.repo.Create(ctx, &domain.Proposta{
		ClienteID:  ident.ClienteID,
		ProdutoID:  input.ProdutoID,
		Quantidade: input.Quantidade,
		Mensagem:   input.Mensagem,
		Status:     domain.PropostaPendente,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	metrics.PropostasCriadasTotal.Inc()
	s.log.Info().Str("proposta_id", proposta.ID).Str("cliente_id", ident.ClienteID).Msg("proposta criada")
	return proposta, nil
}

// Get returns a proposal to its owner or to any admin.
func (s *PropostaService) Get(ctx context.Context, id string, ident domain.Identity) (*domain.Proposta, error) {
	proposta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ident.CanAccess(proposta.ClienteID) {
		return nil, domain.ErrForbidden
	}
	return proposta, nil
}

// Delete removes a proposal: allowed for its owner or for any admin.
func (s *PropostaService) Delete(ctx context.Context, id string, ident domain.Identity) error {
	proposta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !ident.CanAccess(proposta.ClienteID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// List returns every proposal for admins; clientes only see their own.
func (s *PropostaService) List(ctx context.Context, filter ports.ListPropostasFilter, ident domain.Identity) ([]*domain.Proposta, int64, error) {
	switch {
	case ident.IsAdmin():
		// admins may scope by any cliente via the filter
	case ident.IsCliente():
		filter.ClienteID = ident.ClienteID
	default:
		return nil, 0, domain.ErrForbidden
	}

	filter.Page = normalizePage(filter.Page)
	filter.Limit = normalizeLimit(filter.Limit)
	return s.repo.List(ctx, filter)
}

// UpdateStatus decides a pending proposal. Pendente is the only state that
// admits a transition.
func (s *PropostaService) UpdateStatus(ctx context.Context, id string, status domain.PropostaStatus) (*domain.Proposta, error) {
	proposta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !proposta.Status.CanTransitionTo(status) {
		return nil, domain.ErrTransicaoInvalida
	}

	proposta.Status = status
	proposta.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, proposta); err != nil {
		return nil, err
	}

	s.log.Info().Str("proposta_id", id).Str("status", string(status)).Msg("proposta decidida")
	return proposta, nil
}
