package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/revenda/api-vendas/internal/core/domain"
	"github.com/revenda/api-vendas/internal/core/token"
)

func newTestCodec(ttl time.Duration) *token.Codec {
	return token.NewCodec("secret", ttl)
}

func adminToken(t *testing.T, codec *token.Codec) string {
	t.Helper()
	signed, err := codec.SignAdmin(&domain.Admin{ID: "adm_1", Nome: "Ana", Nivel: 4})
	if err != nil {
		t.Fatalf("sign admin: %v", err)
	}
	return signed
}

func clienteToken(t *testing.T, codec *token.Codec) string {
	t.Helper()
	signed, err := codec.SignCliente(&domain.Cliente{ID: "cli_1", Nome: "Bruno"})
	if err != nil {
		t.Fatalf("sign cliente: %v", err)
	}
	return signed
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, domain.Identity, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		ident  domain.Identity
		called bool
	)
	handler := mw(func(c echo.Context) error {
		called = true
		ident = Identity(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, ident, called
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	codec := newTestCodec(time.Hour)
	rec, ident, called := invoke(t, RequireAdmin(codec), "Bearer "+adminToken(t, codec))

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !ident.IsAdmin() || ident.AdminID != "adm_1" || ident.AdminNivel != 4 {
		t.Fatalf("unexpected identity: %+v", ident)
	}
}

func TestRequireAdmin_MissingHeader(t *testing.T) {
	rec, _, called := invoke(t, RequireAdmin(newTestCodec(time.Hour)), "")
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_MalformedScheme(t *testing.T) {
	codec := newTestCodec(time.Hour)
	for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
		rec, _, called := invoke(t, RequireAdmin(codec), header)
		if called {
			t.Fatalf("header %q: next should not be called", header)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestRequireAdmin_ExpiredToken(t *testing.T) {
	expired := newTestCodec(-time.Minute)
	live := newTestCodec(time.Hour)

	rec, _, called := invoke(t, RequireAdmin(live), "Bearer "+adminToken(t, expired))
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_RejectsClienteToken(t *testing.T) {
	codec := newTestCodec(time.Hour)
	rec, _, called := invoke(t, RequireAdmin(codec), "Bearer "+clienteToken(t, codec))
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireCliente_ValidToken(t *testing.T) {
	codec := newTestCodec(time.Hour)
	rec, ident, called := invoke(t, RequireCliente(codec), "Bearer "+clienteToken(t, codec))

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected success, called=%v code=%d", called, rec.Code)
	}
	if !ident.IsCliente() || ident.ClienteID != "cli_1" {
		t.Fatalf("unexpected identity: %+v", ident)
	}
}

func TestRequireCliente_RejectsAdminToken(t *testing.T) {
	codec := newTestCodec(time.Hour)
	rec, _, called := invoke(t, RequireCliente(codec), "Bearer "+adminToken(t, codec))
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestOptionalAuth_AdminFirstPrecedence(t *testing.T) {
	codec := newTestCodec(time.Hour)

	_, ident, called := invoke(t, OptionalAuth(codec), "Bearer "+adminToken(t, codec))
	if !called {
		t.Fatalf("next not called")
	}
	if !ident.IsAdmin() {
		t.Fatalf("valid admin token must resolve as admin, got %+v", ident)
	}

	_, ident, called = invoke(t, OptionalAuth(codec), "Bearer "+clienteToken(t, codec))
	if !called {
		t.Fatalf("next not called")
	}
	if !ident.IsCliente() {
		t.Fatalf("valid cliente token must resolve as cliente, got %+v", ident)
	}
}

func TestOptionalAuth_NeverFails(t *testing.T) {
	codec := newTestCodec(time.Hour)
	cases := map[string]string{
		"no header":        "",
		"malformed scheme": "Token abc",
		"garbage token":    "Bearer not-a-token",
		"expired token":    "Bearer " + adminToken(t, newTestCodec(-time.Minute)),
	}

	for name, header := range cases {
		rec, ident, called := invoke(t, OptionalAuth(codec), header)
		if !called {
			t.Fatalf("%s: next not called", name)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", name, rec.Code)
		}
		if !ident.IsAnonymous() {
			t.Fatalf("%s: expected anonymous identity, got %+v", name, ident)
		}
	}
}
