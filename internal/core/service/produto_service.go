package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/revenda/api-vendas/internal/api/metrics"
	"github.com/revenda/api-vendas/internal/core/domain"
	"github.com/revenda/api-vendas/internal/core/ports"
)

// CatalogCache abstracts the public catalog listing cache (Redis).
type CatalogCache interface {
	// Get returns the cached payload for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	Set(ctx context.Context, key string, payload []byte) error
	// Invalidate drops every cached listing; called after catalog writes.
	Invalidate(ctx context.Context) error
}

// ProdutoService implements catalog item management. Public listings are
// served through the catalog cache; cache failures are logged and the
// request falls through to the repository.
type ProdutoService struct {
	repo       ports.ProdutoRepository
	categorias ports.CategoriaRepository
	cache      CatalogCache
	log        zerolog.Logger
}

func NewProdutoService(repo ports.ProdutoRepository, categorias ports.CategoriaRepository, cache CatalogCache, log zerolog.Logger) *ProdutoService {
	return &ProdutoService{repo: repo, categorias: categorias, cache: cache, log: log}
}

// cachedListing is the payload stored per listing key.
type cachedListing struct {
	Produtos []*domain.Produto `json:"produtos"`
	Total    int64             `json:"total"`
}

func (s *ProdutoService) Create(ctx context.Context, input ports.CreateProdutoInput) (*domain.Produto, error) {
	if _, err := s.categorias.FindByID(ctx, input.CategoriaID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	produto, err := s.repo.Create(ctx, &domain.Produto{
		Nome:        input.Nome,
		Descricao:   input.Descricao,
		PrecoVenda:  input.PrecoVenda,
		PrecoCusto:  input.PrecoCusto,
		CategoriaID: input.CategoriaID,
		Estoque:     input.Estoque,
		Ativo:       input.Ativo,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return produto, nil
}

// Get returns a produto. Inactive produtos are hidden from non-admin callers
// as if they did not exist.
func (s *ProdutoService) Get(ctx context.Context, id string, ident domain.Identity) (*domain.Produto, error) {
	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !produto.Ativo && !ident.IsAdmin() {
		return nil, domain.ErrProdutoNotFound
	}
	return produto, nil
}

func (s *ProdutoService) Update(ctx context.Context, id string, input ports.UpdateProdutoInput) (*domain.Produto, error) {
	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CategoriaID != nil && *input.CategoriaID != produto.CategoriaID {
		if _, err := s.categorias.FindByID(ctx, *input.CategoriaID); err != nil {
			return nil, err
		}
		produto.CategoriaID = *input.CategoriaID
	}
	if input.Nome != nil {
		produto.Nome = *input.Nome
	}
	if input.Descricao != nil {
		produto.Descricao = *input.Descricao
	}
	if input.PrecoVenda != nil {
		produto.PrecoVenda = *input.PrecoVenda
	}
	if input.PrecoCusto != nil {
		produto.PrecoCusto = *input.PrecoCusto
	}
	if input.Estoque != nil {
		produto.Estoque = *input.Estoque
	}
	if input.Ativo != nil {
		produto.Ativo = *input.Ativo
	}
	produto.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, produto); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return produto, nil
}

func (s *ProdutoService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// List returns a catalog page. Non-admin callers only see active produtos,
// and their listings go through the cache.
func (s *ProdutoService) List(ctx context.Context, filter ports.ListProdutosFilter, ident domain.Identity) ([]*domain.Produto, int64, error) {
	filter.Page = normalizePage(filter.Page)
	filter.Limit = normalizeLimit(filter.Limit)

	if ident.IsAdmin() {
		return s.repo.List(ctx, filter)
	}

	filter.ApenasAtivos = true
	key := listingKey(filter)

	if payload, ok, err := s.cache.Get(ctx, key); err != nil {
		metrics.CatalogoCacheTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Msg("catalog cache lookup failed")
	} else if ok {
		var cached cachedListing
		if uerr := json.Unmarshal(payload, &cached); uerr != nil {
			s.log.Warn().Err(uerr).Msg("catalog cache payload corrupt, dropping")
		} else {
			metrics.CatalogoCacheTotal.WithLabelValues("hit").Inc()
			return cached.Produtos, cached.Total, nil
		}
	} else {
		metrics.CatalogoCacheTotal.WithLabelValues("miss").Inc()
	}

	produtos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	if payload, err := json.Marshal(cachedListing{Produtos: produtos, Total: total}); err == nil {
		if err := s.cache.Set(ctx, key, payload); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache store failed")
		}
	}

	return produtos, total, nil
}

func (s *ProdutoService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

func listingKey(filter ports.ListProdutosFilter) string {
	return fmt.Sprintf("%s:%d:%d", filter.CategoriaID, filter.Page, filter.Limit)
}
