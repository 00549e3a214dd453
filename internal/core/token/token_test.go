package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/revenda/api-vendas/internal/core/domain"
)

func TestCodec_AdminRoundTrip(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	admin := &domain.Admin{ID: "adm_1", Nome: "Ana", Nivel: 5}

	raw, err := codec.SignAdmin(admin)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := codec.VerifyAdmin(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.AdminID != "adm_1" || claims.AdminNome != "Ana" || claims.AdminNivel != 5 {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatalf("expected issued-at and expires-at to be set")
	}
}

func TestCodec_ClienteRoundTrip(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	cliente := &domain.Cliente{ID: "cli_1", Nome: "Bruno"}

	raw, err := codec.SignCliente(cliente)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := codec.VerifyCliente(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.ClienteID != "cli_1" || claims.ClienteNome != "Bruno" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestCodec_Expired(t *testing.T) {
	codec := NewCodec("secret", -time.Minute)

	raw, err := codec.SignAdmin(&domain.Admin{ID: "adm_1", Nome: "Ana", Nivel: 3})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.VerifyAdmin(raw); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	signer := NewCodec("secret-a", time.Hour)
	verifier := NewCodec("secret-b", time.Hour)

	raw, err := signer.SignCliente(&domain.Cliente{ID: "cli_1", Nome: "Bruno"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := verifier.VerifyCliente(raw); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestCodec_Garbage(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	if _, err := codec.VerifyAdmin("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestCodec_ClienteTokenIsNotAdmin(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	raw, err := codec.SignCliente(&domain.Cliente{ID: "cli_1", Nome: "Bruno"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.VerifyAdmin(raw); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for cliente token, got %v", err)
	}
}

func TestCodec_RejectsUnsignedAlg(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"admin_id": "adm_1",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.VerifyAdmin(raw); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for alg=none, got %v", err)
	}
}
