package repository_test

import (
	"context"
	"testing"

	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

func runCompanyRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Company().Create(ctx, &model.Company{
			Name: "Metalurgica Silva",
			CNPJ: "12.345.678/0001-90",
			CNAE: "25.11-0",
		})
		if err != nil {
			t.Fatalf("failed to create company: %v", err)
		}

		if created.ID == "" {
			t.Error("expected non-empty ID")
		}
		if created.Name != "Metalurgica Silva" {
			t.Errorf("expected name=Metalurgica Silva, got %s", created.Name)
		}
		if created.CreatedAt.IsZero() {
			t.Error("expected non-zero CreatedAt")
		}
		if created.UpdatedAt.IsZero() {
			t.Error("expected non-zero UpdatedAt")
		}
	})

	t.Run("Create keeps caller-provided ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Company().Create(ctx, &model.Company{
			ID:   types.CompanyID("legacy"),
			Name: "Importado",
		})
		if err != nil {
			t.Fatalf("failed to create company: %v", err)
		}
		if created.ID != "legacy" {
			t.Errorf("expected ID=legacy, got %s", created.ID)
		}
	})

	t.Run("Get retrieves existing company", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Company().Create(ctx, &model.Company{
			Name: "Quimica Norte",
			CNAE: "20.11-8",
		})
		if err != nil {
			t.Fatalf("failed to create company: %v", err)
		}

		retrieved, err := repo.Company().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get company: %v", err)
		}
		if retrieved.ID != created.ID {
			t.Errorf("expected ID=%s, got %s", created.ID, retrieved.ID)
		}
		if retrieved.Name != created.Name {
			t.Errorf("expected name=%s, got %s", created.Name, retrieved.Name)
		}
		if retrieved.CNAE != created.CNAE {
			t.Errorf("expected cnae=%s, got %s", created.CNAE, retrieved.CNAE)
		}
	})

	t.Run("Get returns ErrNotFound for missing company", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Company().Get(ctx, types.CompanyID("no-such-company"))
		if err == nil {
			t.Fatal("expected error for missing company")
		}
		if !isNotFound(err) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List returns all companies", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		companies, err := repo.Company().List(ctx)
		if err != nil {
			t.Fatalf("failed to list companies: %v", err)
		}
		if len(companies) != 0 {
			t.Errorf("expected empty list, got %d companies", len(companies))
		}

		for _, name := range []string{"Empresa A", "Empresa B"} {
			if _, err := repo.Company().Create(ctx, &model.Company{Name: name}); err != nil {
				t.Fatalf("failed to create company: %v", err)
			}
		}

		companies, err = repo.Company().List(ctx)
		if err != nil {
			t.Fatalf("failed to list companies: %v", err)
		}
		if len(companies) != 2 {
			t.Errorf("expected 2 companies, got %d", len(companies))
		}
	})
}

func TestMemoryCompanyRepository(t *testing.T) {
	runCompanyRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreCompanyRepository(t *testing.T) {
	runCompanyRepositoryTest(t, newFirestoreRepository)
}
