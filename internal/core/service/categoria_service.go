package service

import (
	"context"
	"time"

	"github.com/revenda/api-vendas/internal/core/domain"
	"github.com/revenda/api-vendas/internal/core/ports"
)

// CategoriaService implements catalog category management.
type CategoriaService struct {
	repo ports.CategoriaRepository
}

func NewCategoriaService(repo ports.CategoriaRepository) *CategoriaService {
	return &CategoriaService{repo: repo}
}

func (s *CategoriaService) Create(ctx context.Context, input ports.CategoriaInput) (*domain.Categoria, error) {
	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Categoria{
		Nome:      input.Nome,
		Descricao: input.Descricao,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *CategoriaService) Get(ctx context.Context, id string) (*domain.Categoria, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoriaService) Update(ctx context.Context, id string, input ports.CategoriaInput) (*domain.Categoria, error) {
	categoria, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Nome != "" {
		categoria.Nome = input.Nome
	}
	if input.Descricao != "" {
		categoria.Descricao = input.Descricao
	}
	categoria.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

func (s *CategoriaService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *CategoriaService) List(ctx context.Context, page, limit int) ([]*domain.Categoria, int64, error) {
	return s.repo.List(ctx, normalizePage(page), normalizeLimit(limit))
}
