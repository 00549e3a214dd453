package domain

import "time"

// Produto is a catalog item. PrecoCusto is visible to admins only; the
// transport layer strips it from public responses.
type Produto struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Descricao   string    `json:"descricao"`
	PrecoVenda  float64   `json:"preco_venda"`
	PrecoCusto  float64   `json:"preco_custo"`
	CategoriaID string    `json:"categoria_id"`
	Estoque     int       `json:"estoque"`
	Ativo       bool      `json:"ativo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
