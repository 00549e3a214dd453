package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/revenda/api-vendas/internal/core/domain"
	"github.com/revenda/api-vendas/internal/core/ports"
	"github.com/revenda/api-vendas/internal/core/token"
)

type stubClienteRepo struct {
	clientes map[string]*domain.Cliente // keyed by ID
	seq      int
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[string]*domain.Cliente)}
}

func cloneCliente(c *domain.Cliente) *domain.Cliente {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubClienteRepo) Create(_ context.Context, cliente *domain.Cliente) (*domain.Cliente, error) {
	for _, c := range r.clientes {
		if c.Email == cliente.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	copy := cloneCliente(cliente)
	copy.ID = "cli_" + strconv.Itoa(r.seq)
	r.clientes[copy.ID] = cloneCliente(copy)
	return copy, nil
}

func (r *stubClienteRepo) FindByEmail(_ context.Context, email string) (*domain.Cliente, error) {
	for _, c := range r.clientes {
		if c.Email == email {
			return cloneCliente(c), nil
		}
	}
	return nil, domain.ErrClienteNotFound
}

func (r *stubClienteRepo) FindByID(_ context.Context, id string) (*domain.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, domain.ErrClienteNotFound
	}
	return cloneCliente(c), nil
}

func (r *stubClienteRepo) Update(_ context.Context, cliente *domain.Cliente) error {
	if _, ok := r.clientes[cliente.ID]; !ok {
		return domain.ErrClienteNotFound
	}
	r.clientes[cliente.ID] = cloneCliente(cliente)
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.clientes[id]; !ok {
		return domain.ErrClienteNotFound
	}
	delete(r.clientes, id)
	return nil
}

func (r *stubClienteRepo) List(_ context.Context, page, limit int) ([]*domain.Cliente, int64, error) {
	out := make([]*domain.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, cloneCliente(c))
	}
	return out, int64(len(out)), nil
}

func newClienteService() (*ClienteService, *stubClienteRepo, *token.Codec) {
	repo := newStubClienteRepo()
	codec := token.NewCodec("secret", time.Hour)
	return NewClienteService(repo, codec), repo, codec
}

func TestClienteService_Register_HashesSenha(t *testing.T) {
	svc, _, _ := newClienteService()

	cliente, err := svc.Register(context.Background(), ports.RegisterClienteInput{
		Nome: "Bruno", Email: "bruno@x.com", Senha: "s3gredo", Cidade: "Recife",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if cliente.SenhaHash == "s3gredo" {
		t.Fatalf("senha stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cliente.SenhaHash), []byte("s3gredo")); err != nil {
		t.Fatalf("stored hash does not match senha: %v", err)
	}
}

func TestClienteService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newClienteService()

	if _, err := svc.Register(context.Background(), ports.RegisterClienteInput{Nome: "A", Email: "a@x.com", Senha: "123456", Cidade: "SP"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterClienteInput{Nome: "B", Email: "a@x.com", Senha: "654321", Cidade: "RJ"}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestClienteService_Login_Success(t *testing.T) {
	svc, _, codec := newClienteService()

	created, err := svc.Register(context.Background(), ports.RegisterClienteInput{Nome: "Bruno", Email: "bruno@x.com", Senha: "s3gredo", Cidade: "Recife"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	signed, cliente, err := svc.Login(context.Background(), "bruno@x.com", "s3gredo")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if cliente.ID != created.ID {
		t.Fatalf("unexpected cliente: %+v", cliente)
	}

	claims, err := codec.VerifyCliente(signed)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.ClienteID != created.ID || claims.ClienteNome != "Bruno" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestClienteService_Login_GenericFailure(t *testing.T) {
	svc, _, _ := newClienteService()

	if _, err := svc.Register(context.Background(), ports.RegisterClienteInput{Nome: "Bruno", Email: "bruno@x.com", Senha: "s3gredo", Cidade: "Recife"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, wrongSenha := svc.Login(context.Background(), "bruno@x.com", "errada")
	_, _, unknownEmail := svc.Login(context.Background(), "ninguem@x.com", "s3gredo")

	if !errors.Is(wrongSenha, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong senha: expected ErrInvalidCredentials, got %v", wrongSenha)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongSenha.Error() != unknownEmail.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongSenha, unknownEmail)
	}
}

func TestClienteService_Update_OwnerOnly(t *testing.T) {
	svc, _, _ := newClienteService()

	created, err := svc.Register(context.Background(), ports.RegisterClienteInput{Nome: "Bruno", Email: "bruno@x.com", Senha: "s3gredo", Cidade: "Recife"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	other := domain.ClienteIdentity("cli_999", "Outro")
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateClienteInput{Cidade: "SP"}, other); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other cliente, got %v", err)
	}

	admin := domain.AdminIdentity("adm_1", "Ana", 5)
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateClienteInput{Cidade: "SP"}, admin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for admin (profile mutation is owner-only), got %v", err)
	}

	owner := domain.ClienteIdentity(created.ID, "Bruno")
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateClienteInput{Cidade: "SP"}, owner)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Cidade != "SP" {
		t.Fatalf("cidade not updated: %+v", updated)
	}
}

func TestClienteService_Delete_AdminBypass(t *testing.T) {
	svc, repo, _ := newClienteService()

	created, err := svc.Register(context.Background(), ports.RegisterClienteInput{Nome: "Bruno", Email: "bruno@x.com", Senha: "s3gredo", Cidade: "Recife"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, domain.ClienteIdentity("cli_999", "Outro")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, domain.AdminIdentity("adm_1", "Ana", 1)); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, ok := repo.clientes[created.ID]; ok {
		t.Fatalf("cliente not removed")
	}
}
