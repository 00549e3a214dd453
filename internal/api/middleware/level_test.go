package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/revenda/api-vendas/internal/core/domain"
)

func invokeWithIdentity(t *testing.T, mw echo.MiddlewareFunc, ident domain.Identity) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(identityKey, ident)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRequireLevel_Allows(t *testing.T) {
	rec, called := invokeWithIdentity(t, RequireLevel(3), domain.AdminIdentity("adm_1", "Ana", 3))
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected success, called=%v code=%d", called, rec.Code)
	}
}

func TestRequireLevel_ForbidsLowLevel(t *testing.T) {
	rec, called := invokeWithIdentity(t, RequireLevel(3), domain.AdminIdentity("adm_1", "Ana", 2))
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireLevel_ForbidsNonAdmin(t *testing.T) {
	for name, ident := range map[string]domain.Identity{
		"cliente":   domain.ClienteIdentity("cli_1", "Bruno"),
		"anonymous": {},
	} {
		rec, called := invokeWithIdentity(t, RequireLevel(1), ident)
		if called {
			t.Fatalf("%s: next should not be called", name)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d", name, rec.Code)
		}
	}
}
