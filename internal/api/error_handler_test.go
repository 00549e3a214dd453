package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/revenda/api-vendas/internal/api/handler"
	"github.com/revenda/api-vendas/internal/core/domain"
	"github.com/revenda/api-vendas/internal/core/ports"
)

type stubClienteService struct {
	registerFn func(ctx context.Context, input ports.RegisterClienteInput) (*domain.Cliente, error)
	loginFn    func(ctx context.Context, email, senha string) (string, *domain.Cliente, error)
}

func (s *stubClienteService) Register(ctx context.Context, input ports.RegisterClienteInput) (*domain.Cliente, error) {
	return s.registerFn(ctx, input)
}

func (s *stubClienteService) Login(ctx context.Context, email, senha string) (string, *domain.Cliente, error) {
	return s.loginFn(ctx, email, senha)
}

func (s *stubClienteService) Get(ctx context.Context, id string, ident domain.Identity) (*domain.Cliente, error) {
	return nil, domain.ErrClienteNotFound
}

func (s *stubClienteService) Update(ctx context.Context, id string, input ports.UpdateClienteInput, ident domain.Identity) (*domain.Cliente, error) {
	return nil, domain.ErrClienteNotFound
}

func (s *stubClienteService) Delete(ctx context.Context, id string, ident domain.Identity) error {
	return domain.ErrClienteNotFound
}

func (s *stubClienteService) List(ctx context.Context, page, limit int) ([]*domain.Cliente, int64, error) {
	return nil, 0, nil
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeErro(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	erro, ok := resp["erro"]
	if !ok {
		t.Fatalf("expected erro envelope, got %s", rec.Body.String())
	}
	return erro
}

func TestErrorHandler_DuplicateEmail(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubClienteService{
		registerFn: func(ctx context.Context, input ports.RegisterClienteInput) (*domain.Cliente, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	e.POST("/clientes", handler.NewClienteHandler(stub).Register)

	rec := postJSON(e, "/clientes", `{"nome":"Maria","email":"maria@example.com","senha":"segredo1","cidade":"Recife"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if erro := decodeErro(t, rec); erro != "E-mail já cadastrado" {
		t.Fatalf("unexpected erro: %v", erro)
	}
}

func TestErrorHandler_LoginFailureIsGeneric(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubClienteService{
		loginFn: func(ctx context.Context, email, senha string) (string, *domain.Cliente, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	e.POST("/clientes/login", handler.NewClienteHandler(stub).Login)

	// Unknown email and wrong password take the same service path, so both
	// bodies must be identical.
	for _, body := range []string{
		`{"email":"ghost@example.com","senha":"qualquer1"}`,
		`{"email":"maria@example.com","senha":"errada12"}`,
	} {
		rec := postJSON(e, "/clientes/login", body)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if erro := decodeErro(t, rec); erro != "Login ou senha incorretos" {
			t.Fatalf("unexpected erro: %v", erro)
		}
	}
}

func TestErrorHandler_ValidationErrorsList(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubClienteService{
		registerFn: func(ctx context.Context, input ports.RegisterClienteInput) (*domain.Cliente, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	e.POST("/clientes", handler.NewClienteHandler(stub).Register)

	rec := postJSON(e, "/clientes", `{"email":"not-an-email"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	msgs, ok := decodeErro(t, rec).([]any)
	if !ok || len(msgs) == 0 {
		t.Fatalf("expected a list of messages, got %s", rec.Body.String())
	}
}

func TestResolveError_SentinelMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrClienteNotFound, http.StatusNotFound},
		{domain.ErrAdminNotFound, http.StatusNotFound},
		{domain.ErrProdutoNotFound, http.StatusNotFound},
		{domain.ErrCategoriaNotFound, http.StatusNotFound},
		{domain.ErrPropostaNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusBadRequest},
		{domain.ErrAdminExists, http.StatusBadRequest},
		{domain.ErrNivelInvalido, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrTokenExpired, http.StatusUnauthorized},
		{domain.ErrTokenInvalid, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrTransicaoInvalida, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		code, msg := resolveError(tc.err, zerolog.Nop(), c)
		if code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if code == http.StatusInternalServerError {
			if msg != "Erro interno do servidor" {
				t.Errorf("internal error must not leak cause, got %q", msg)
			}
		} else if msg != tc.err.Error() {
			t.Errorf("%v: expected message passthrough, got %q", tc.err, msg)
		}
	}
}
