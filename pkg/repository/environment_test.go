package repository_test

import (
	"context"
	"testing"

	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

func runEnvironmentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get round-trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Environment().Create(ctx, &model.Environment{
			CompanyID: "company-1",
			Unit:      "Matriz",
			Sector:    "Producao",
			Name:      "Linha de solda",
			Type:      "industrial",
			Status:    types.EnvironmentDraft,
		})
		if err != nil {
			t.Fatalf("failed to create environment: %v", err)
		}
		if created.ID == "" {
			t.Error("expected non-empty ID")
		}

		retrieved, err := repo.Environment().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get environment: %v", err)
		}
		if retrieved.Sector != "Producao" {
			t.Errorf("expected sector=Producao, got %s", retrieved.Sector)
		}
		if retrieved.Status != types.EnvironmentDraft {
			t.Errorf("expected status=%s, got %s", types.EnvironmentDraft, retrieved.Status)
		}
	})

	t.Run("Get returns ErrNotFound for missing environment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Environment().Get(ctx, types.EnvironmentID("no-such-env"))
		if err == nil {
			t.Fatal("expected error for missing environment")
		}
		if !isNotFound(err) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListByCompany filters by owner", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, companyID := range []types.CompanyID{"company-1", "company-1", "company-2"} {
			if _, err := repo.Environment().Create(ctx, &model.Environment{
				CompanyID: companyID,
				Status:    types.EnvironmentDraft,
			}); err != nil {
				t.Fatalf("failed to create environment: %v", err)
			}
		}

		envs, err := repo.Environment().ListByCompany(ctx, "company-1")
		if err != nil {
			t.Fatalf("failed to list environments: %v", err)
		}
		if len(envs) != 2 {
			t.Errorf("expected 2 environments, got %d", len(envs))
		}
	})

	t.Run("Update persists status transition", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Environment().Create(ctx, &model.Environment{
			CompanyID: "company-1",
			Status:    types.EnvironmentDraft,
		})
		if err != nil {
			t.Fatalf("failed to create environment: %v", err)
		}

		created.Status = types.EnvironmentFinalized
		updated, err := repo.Environment().Update(ctx, created)
		if err != nil {
			t.Fatalf("failed to update environment: %v", err)
		}
		if updated.Status != types.EnvironmentFinalized {
			t.Errorf("expected status=%s, got %s", types.EnvironmentFinalized, updated.Status)
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("expected createdAt preserved, got %v", updated.CreatedAt)
		}

		retrieved, err := repo.Environment().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get environment: %v", err)
		}
		if !retrieved.Finalized() {
			t.Error("expected environment to be finalized after update")
		}
	})

	t.Run("Update of missing environment fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Environment().Update(ctx, &model.Environment{
			ID:     types.EnvironmentID("no-such-env"),
			Status: types.EnvironmentFinalized,
		})
		if err == nil {
			t.Fatal("expected error for missing environment")
		}
		if !isNotFound(err) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func runRoleRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and ListByEnvironment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, envID := range []types.EnvironmentID{"env-1", "env-1", "env-2"} {
			if _, err := repo.Role().Create(ctx, &model.Role{
				EnvironmentID: envID,
				Name:          "Operador",
			}); err != nil {
				t.Fatalf("failed to create role: %v", err)
			}
		}

		roles, err := repo.Role().ListByEnvironment(ctx, "env-1")
		if err != nil {
			t.Fatalf("failed to list roles: %v", err)
		}
		if len(roles) != 2 {
			t.Errorf("expected 2 roles, got %d", len(roles))
		}
		for _, role := range roles {
			if role.ID == "" {
				t.Error("expected non-empty role ID")
			}
		}
	})
}

func runActivityRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get round-trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Activity().Create(ctx, &model.Activity{
			EnvironmentID: "env-1",
			Name:          "Solda MIG",
			Role:          "Soldador",
			MacroProcess:  "fabricacao",
			Frequency:     "diaria",
		})
		if err != nil {
			t.Fatalf("failed to create activity: %v", err)
		}

		retrieved, err := repo.Activity().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get activity: %v", err)
		}
		if retrieved.Name != "Solda MIG" {
			t.Errorf("expected name=Solda MIG, got %s", retrieved.Name)
		}
		if retrieved.MacroProcess != "fabricacao" {
			t.Errorf("expected macroProcess=fabricacao, got %s", retrieved.MacroProcess)
		}
	})

	t.Run("Get returns ErrNotFound for missing activity", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Activity().Get(ctx, types.ActivityID("no-such-activity"))
		if err == nil {
			t.Fatal("expected error for missing activity")
		}
		if !isNotFound(err) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListByEnvironment filters by owner", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, envID := range []types.EnvironmentID{"env-1", "env-2", "env-2"} {
			if _, err := repo.Activity().Create(ctx, &model.Activity{
				EnvironmentID: envID,
			}); err != nil {
				t.Fatalf("failed to create activity: %v", err)
			}
		}

		activities, err := repo.Activity().ListByEnvironment(ctx, "env-2")
		if err != nil {
			t.Fatalf("failed to list activities: %v", err)
		}
		if len(activities) != 2 {
			t.Errorf("expected 2 activities, got %d", len(activities))
		}
	})
}

func TestMemoryEnvironmentRepository(t *testing.T) {
	runEnvironmentRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreEnvironmentRepository(t *testing.T) {
	runEnvironmentRepositoryTest(t, newFirestoreRepository)
}

func TestMemoryRoleRepository(t *testing.T) {
	runRoleRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreRoleRepository(t *testing.T) {
	runRoleRepositoryTest(t, newFirestoreRepository)
}

func TestMemoryActivityRepository(t *testing.T) {
	runActivityRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreActivityRepository(t *testing.T) {
	runActivityRepositoryTest(t, newFirestoreRepository)
}
