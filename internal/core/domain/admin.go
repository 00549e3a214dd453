package domain

import "time"

// Admin permission levels. NivelMax grants management over other admins.
const (
	NivelMin = 1
	NivelMax = 5
)

// Admin is an administrator account with a permission level between
// NivelMin and NivelMax.
type Admin struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	SenhaHash string    `json:"-"`
	Nivel     int       `json:"nivel"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
