package handler

import (
	"time"

	"github.com/revenda/api-vendas/internal/core/domain"
)

type registerClienteRequest struct {
	Nome   string `json:"nome"   validate:"required"`
	Email  string `json:"email"  validate:"required,email"`
	Senha  string `json:"senha"  validate:"required,min=6"`
	Cidade string `json:"cidade" validate:"required"`
}

type updateClienteRequest struct {
	Nome   string `json:"nome"   validate:"omitempty"`
	Email  string `json:"email"  validate:"omitempty,email"`
	Senha  string `json:"senha"  validate:"omitempty,min=6"`
	Cidade string `json:"cidade" validate:"omitempty"`
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// clienteResponse is the public profile shape: the senha hash never leaves
// the service.
type clienteResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Cidade    string    `json:"cidade"`
	CreatedAt time.Time `json:"created_at"`
}

type clienteLoginResponse struct {
	Token   string          `json:"token"`
	Cliente clienteResponse `json:"cliente"`
}

type listClientesResponse struct {
	Data      []clienteResponse `json:"data"`
	Paginacao paginacaoResponse `json:"paginacao"`
}

func toClienteResponse(c *domain.Cliente) clienteResponse {
	return clienteResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		Email:     c.Email,
		Cidade:    c.Cidade,
		CreatedAt: c.CreatedAt,
	}
}
