package handler

import (
	"time"

	"github.com/revenda/api-vendas/internal/core/domain"
)

type createAdminRequest struct {
	Nome  string `json:"nome"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
	Nivel int    `json:"nivel" validate:"omitempty,min=1,max=5"`
}

type updateAdminRequest struct {
	Nome  string `json:"nome"  validate:"omitempty"`
	Email string `json:"email" validate:"omitempty,email"`
	Senha string `json:"senha" validate:"omitempty,min=6"`
	Nivel int    `json:"nivel" validate:"omitempty,min=1,max=5"`
}

type adminResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Nivel     int       `json:"nivel"`
	CreatedAt time.Time `json:"created_at"`
}

type adminLoginResponse struct {
	Token         string        `json:"token"`
	Administrador adminResponse `json:"administrador"`
}

type listAdminsResponse struct {
	Data      []adminResponse   `json:"data"`
	Paginacao paginacaoResponse `json:"paginacao"`
}

func toAdminResponse(a *domain.Admin) adminResponse {
	return adminResponse{
		ID:        a.ID,
		Nome:      a.Nome,
		Email:     a.Email,
		Nivel:     a.Nivel,
		CreatedAt: a.CreatedAt,
	}
}
