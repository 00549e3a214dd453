package domain

import "time"

// PropostaStatus is the review state of a purchase proposal.
type PropostaStatus string

const (
	PropostaPendente PropostaStatus = "pendente"
	PropostaAceita   PropostaStatus = "aceita"
	PropostaRecusada PropostaStatus = "recusada"
)

// validTransitions: a proposal is decided exactly once.
var propostaTransitions = map[PropostaStatus][]PropostaStatus{
	PropostaPendente: {PropostaAceita, PropostaRecusada},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s PropostaStatus) CanTransitionTo(next PropostaStatus) bool {
	for _, allowed := range propostaTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Proposta is a purchase proposal submitted by a cliente for a produto.
// ClienteID is the ownership edge used by authorization checks.
type Proposta struct {
	ID         string         `json:"id"`
	ClienteID  string         `json:"cliente_id"`
	ProdutoID  string         `json:"produto_id"`
	Quantidade int            `json:"quantidade"`
	Mensagem   string         `json:"mensagem,omitempty"`
	Status     PropostaStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
