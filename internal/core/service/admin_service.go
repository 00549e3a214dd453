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

// AdminService implements administrator account management and login.
type AdminService struct {
	repo  ports.AdminRepository
	codec *token.Codec
}

func NewAdminService(repo ports.AdminRepository, codec *token.Codec) *AdminService {
	return &AdminService{repo: repo, codec: codec}
}

// Create registers a new admin. An authenticated admin always may create
// one; an unauthenticated call is the bootstrap path and succeeds only while
// zero admins exist, with nivel defaulting to the maximum.
func (s *AdminService) Create(ctx context.Context, input ports.CreateAdminInput, ident domain.Identity) (*domain.Admin, error) {
	nivel := input.Nivel
	if !ident.IsAdmin() {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, domain.ErrAdminExists
		}
		if nivel == 0 {
			nivel = domain.NivelMax
		}
	}
	if nivel < domain.NivelMin || nivel > domain.NivelMax {
		return nil, domain.ErrNivelInvalido
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAdminNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Admin{
		Nome:      input.Nome,
		Email:     input.Email,
		SenhaHash: string(hash),
		Nivel:     nivel,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Login verifies the submitted senha and mints an admin token. Failures are
// indistinguishable between unknown email and wrong senha.
func (s *AdminService) Login(ctx context.Context, email, senha string) (string, *domain.Admin, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			metrics.LoginsTotal.WithLabelValues("admin", "failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.SenhaHash), []byte(senha)) != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.codec.SignAdmin(admin)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("admin", "success").Inc()
	return signed, admin, nil
}

func (s *AdminService) Get(ctx context.Context, id string) (*domain.Admin, error) {
	return s.repo.FindByID(ctx, id)
}

// Update mutates an admin account: allowed for the account itself or for a
// nivel-5 admin. Nivel changes require nivel 5.
func (s *AdminService) Update(ctx context.Context, id string, input ports.UpdateAdminInput, ident domain.Identity) (*domain.Admin, error) {
	if !ident.IsOwnerOrSelf(id) && ident.AdminNivel != domain.NivelMax {
		return nil, domain.ErrForbidden
	}

	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != admin.Email {
		if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
			return nil, domain.ErrEmailTaken
		} else if !errors.Is(err, domain.ErrAdminNotFound) {
			return nil, err
		}
		admin.Email = input.Email
	}
	if input.Nome != "" {
		admin.Nome = input.Nome
	}
	if input.Nivel != 0 {
		if ident.AdminNivel != domain.NivelMax {
			return nil, domain.ErrForbidden
		}
		if input.Nivel < domain.NivelMin || input.Nivel > domain.NivelMax {
			return nil, domain.ErrNivelInvalido
		}
		admin.Nivel = input.Nivel
	}
	if input.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin.SenhaHash = string(hash)
	}
	admin.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Delete removes an admin account. Self-deletion is refused.
func (s *AdminService) Delete(ctx context.Context, id string, ident domain.Identity) error {
	if ident.AdminID == id {
		return domain.ErrForbidden
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *AdminService) List(ctx context.Context, page, limit int) ([]*domain.Admin, int64, error) {
	return s.repo.List(ctx, normalizePage(page), normalizeLimit(limit))
}
