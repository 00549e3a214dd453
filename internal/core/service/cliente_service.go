package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/revenda/api-vendas/internal/api/metrics"
	"github.com/revenda/api-vendas/internal/core/domain"
	"github.com/revenda/api-vendas/internal/core/ports"
	"github.com/revenda/api-vendas/internal/core/token"
)

// ClienteService implements registration, login and profile management for
// cliente accounts.
type ClienteService struct {
	repo  ports.ClienteRepository
	codec *token.Codec
}

func NewClienteService(repo ports.ClienteRepository, codec *token.Codec) *ClienteService {
	return &ClienteService{repo: repo, codec: codec}
}

// Register creates a cliente account. The email existence check followed by
// the insert is not atomic; the repository maps the store's duplicate-key
// error to the same domain error, so concurrent registrations with one email
// leave a single survivor.
func (s *ClienteService) Register(ctx context.Context, input ports.RegisterClienteInput) (*domain.Cliente, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrClienteNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Cliente{
		Nome:      input.Nome,
		Email:     input.Email,
		SenhaHash: string(hash),
		Cidade:    input.Cidade,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Login verifies the submitted senha and mints a token. Unknown email and
// wrong senha both surface as ErrInvalidCredentials so callers cannot
// enumerate accounts.
func (s *ClienteService) Login(ctx context.Context, email, senha string) (string, *domain.Cliente, error) {
	cliente, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrClienteNotFound) {
			metrics.LoginsTotal.WithLabelValues("cliente", "failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(cliente.SenhaHash), []byte(senha)) != nil {
		metrics.LoginsTotal.WithLabelValues("cliente", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.codec.SignCliente(cliente)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("cliente", "success").Inc()
	return signed, cliente, nil
}

// Get returns a cliente. Admins may read any cliente; a cliente only itself.
func (s *ClienteService) Get(ctx context.Context, id string, ident domain.Identity) (*domain.Cliente, error) {
	if !ident.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

// Update mutates a profile. Only the owning cliente may update itself.
func (s *ClienteService) Update(ctx context.Context, id string, input ports.UpdateClienteInput, ident domain.Identity) (*domain.Cliente, error) {
	if !ident.IsOwnerOrSelf(id) {
		return nil, domain.ErrForbidden
	}

	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != cliente.Email {
		if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
			return nil, domain.ErrEmailTaken
		} else if !errors.Is(err, domain.ErrClienteNotFound) {
			return nil, err
		}
		cliente.Email = input.Email
	}
	if input.Nome != "" {
		cliente.Nome = input.Nome
	}
	if input.Cidade != "" {
		cliente.Cidade = input.Cidade
	}
	if input.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		cliente.SenhaHash = string(hash)
	}
	cliente.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

// Delete removes an account. Admins may delete any cliente; a cliente only
// itself.
func (s *ClienteService) Delete(ctx context.Context, id string, ident domain.Identity) error {
	if !ident.CanAccess(id) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func (s *ClienteService) List(ctx context.Context, page, limit int) ([]*domain.Cliente, int64, error) {
	return s.repo.List(ctx, normalizePage(page), normalizeLimit(limit))
}
