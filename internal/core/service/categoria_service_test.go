package service

import (
	"context"
	"errors"
	"testing"

	"github.com/revenda/api-vendas/internal/core/domain"
	"github.com/revenda/api-vendas/internal/core/ports"
)

func TestCategoriaService_CreateAndGet(t *testing.T) {
	svc := NewCategoriaService(newStubCategoriaRepo())

	created, err := svc.Create(context.Background(), ports.CategoriaInput{Nome: "Eletrônicos", Descricao: "Aparelhos"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected populated categoria, got %+v", created)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Nome != "Eletrônicos" {
		t.Fatalf("unexpected nome: %q", got.Nome)
	}
}

func TestCategoriaService_UpdatePartial(t *testing.T) {
	svc := NewCategoriaService(newStubCategoriaRepo())
	created, err := svc.Create(context.Background(), ports.CategoriaInput{Nome: "Livros", Descricao: "Papelaria"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.CategoriaInput{Nome: "Livros e Revistas"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Nome != "Livros e Revistas" {
		t.Fatalf("unexpected nome: %q", updated.Nome)
	}
	if updated.Descricao != "Papelaria" {
		t.Fatalf("empty field must not overwrite, got %q", updated.Descricao)
	}
}

func TestCategoriaService_DeleteMissing(t *testing.T) {
	svc := NewCategoriaService(newStubCategoriaRepo())
	if err := svc.Delete(context.Background(), "cat_inexistente"); !errors.Is(err, domain.ErrCategoriaNotFound) {
		t.Fatalf("expected ErrCategoriaNotFound, got %v", err)
	}
}
