// Package token signs and verifies the JWTs issued to administrators and
// clientes. Both principal types share the same signing secret; the claim
// shape decides which kind of principal a token encodes.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/revenda/api-vendas/internal/core/domain"
)

// DefaultTTL is the lifetime of an issued token.
const DefaultTTL = time.Hour

// AdminClaims is the payload of an administrator token.
type AdminClaims struct {
	AdminID    string `json:"admin_id"`
	AdminNome  string `json:"admin_nome"`
	AdminNivel int    `json:"admin_nivel"`
	jwt.RegisteredClaims
}

// ClienteClaims is the payload of a cliente token.
type ClienteClaims struct {
	ClienteID   string `json:"cliente_id"`
	ClienteNome string `json:"cliente_nome"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with a process-wide HS256 secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// SignAdmin mints a token carrying the admin's identity fields.
func (c *Codec) SignAdmin(a *domain.Admin) (string, error) {
	claims := AdminClaims{
		AdminID:          a.ID,
		AdminNome:        a.Nome,
		AdminNivel:       a.Nivel,
		RegisteredClaims: c.registered(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// SignCliente mints a token carrying the cliente's identity fields.
func (c *Codec) SignCliente(cl *domain.Cliente) (string, error) {
	claims := ClienteClaims{
		ClienteID:        cl.ID,
		ClienteNome:      cl.Nome,
		RegisteredClaims: c.registered(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// VerifyAdmin decodes raw as an admin token. A structurally valid token that
// does not carry an admin identifier fails with ErrTokenInvalid, so cliente
// tokens never pass admin verification.
func (c *Codec) VerifyAdmin(raw string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	if err := c.parse(raw, claims); err != nil {
		return nil, err
	}
	if claims.AdminID == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// VerifyCliente decodes raw as a cliente token.
func (c *Codec) VerifyCliente(raw string) (*ClienteClaims, error) {
	claims := &ClienteClaims{}
	if err := c.parse(raw, claims); err != nil {
		return nil, err
	}
	if claims.ClienteID == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

func (c *Codec) registered() jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
}

func (c *Codec) parse(raw string, claims jwt.Claims) error {
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.ErrTokenExpired
		}
		return domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return domain.ErrTokenInvalid
	}
	return nil
}
