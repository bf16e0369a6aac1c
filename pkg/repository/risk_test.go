package repository_test

import (
	"context"
	"testing"

	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

func runRiskRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get round-trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, &model.Risk{
			ActivityID:       "activity-1",
			Hazard:           "Ruido continuo",
			HazardousEvent:   "Exposicao sem protecao",
			PotentialDamage:  "Perda auditiva",
			AgentCategory:    types.AgentFisico,
			Condition:        "habitual",
			ExposedCount:     8,
			ExistingControls: "Protetor auricular",
		})
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}
		if created.ID == "" {
			t.Error("expected non-empty ID")
		}
		if created.CreatedAt.IsZero() {
			t.Error("expected non-zero CreatedAt")
		}

		retrieved, err := repo.Risk().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get risk: %v", err)
		}
		if retrieved.Hazard != created.Hazard {
			t.Errorf("expected hazard=%s, got %s", created.Hazard, retrieved.Hazard)
		}
		if retrieved.AgentCategory != types.AgentFisico {
			t.Errorf("expected category=%s, got %s", types.AgentFisico, retrieved.AgentCategory)
		}
		if retrieved.ExposedCount != 8 {
			t.Errorf("expected exposedCount=8, got %d", retrieved.ExposedCount)
		}
	})

	t.Run("Get returns ErrNotFound for missing risk", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Risk().Get(ctx, types.RiskID("no-such-risk"))
		if err == nil {
			t.Fatal("expected error for missing risk")
		}
		if !isNotFound(err) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListByActivity filters by parent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, activityID := range []types.ActivityID{"activity-1", "activity-1", "activity-2"} {
			if _, err := repo.Risk().Create(ctx, &model.Risk{
				ActivityID:    activityID,
				AgentCategory: types.AgentAcidente,
			}); err != nil {
				t.Fatalf("failed to create risk: %v", err)
			}
		}

		risks, err := repo.Risk().ListByActivity(ctx, "activity-1")
		if err != nil {
			t.Fatalf("failed to list risks: %v", err)
		}
		if len(risks) != 2 {
			t.Errorf("expected 2 risks, got %d", len(risks))
		}
	})

	t.Run("Delete removes the risk", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, &model.Risk{
			ActivityID:    "activity-1",
			AgentCategory: types.AgentQuimico,
		})
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		if err := repo.Risk().Delete(ctx, created.ID); err != nil {
			t.Fatalf("failed to delete risk: %v", err)
		}

		_, err = repo.Risk().Get(ctx, created.ID)
		if !isNotFound(err) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("Delete of missing risk fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		err := repo.Risk().Delete(ctx, types.RiskID("no-such-risk"))
		if !isNotFound(err) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func runAssessmentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Upsert creates then replaces in place", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Assessment().Upsert(ctx, &model.RiskAssessment{
			RiskID:         "risk-1",
			Probability:    2,
			Severity:       3,
			Classification: types.BandMedium,
		})
		if err != nil {
			t.Fatalf("failed to upsert assessment: %v", err)
		}
		if first.ID == "" {
			t.Error("expected non-empty ID")
		}

		second, err := repo.Assessment().Upsert(ctx, &model.RiskAssessment{
			RiskID:                "risk-1",
			Probability:           5,
			Severity:              5,
			Classification:        types.BandCritical,
			RequiresJustification: true,
		})
		if err != nil {
			t.Fatalf("failed to upsert assessment: %v", err)
		}

		// The second upsert replaces the scoring but keeps the record
		// identity of the first.
		if second.ID != first.ID {
			t.Errorf("expected ID=%s preserved across upserts, got %s", first.ID, second.ID)
		}
		if !second.CreatedAt.Equal(first.CreatedAt) {
			t.Errorf("expected createdAt=%v preserved, got %v", first.CreatedAt, second.CreatedAt)
		}

		retrieved, err := repo.Assessment().GetByRisk(ctx, "risk-1")
		if err != nil {
			t.Fatalf("failed to get assessment: %v", err)
		}
		if retrieved.Probability != 5 || retrieved.Severity != 5 {
			t.Errorf("expected 5x5, got %dx%d", retrieved.Probability, retrieved.Severity)
		}
		if retrieved.Classification != types.BandCritical {
			t.Errorf("expected classification=%s, got %s", types.BandCritical, retrieved.Classification)
		}
		if !retrieved.RequiresJustification {
			t.Error("expected requiresJustification=true")
		}
	})

	t.Run("GetByRisk returns ErrNotFound when never assessed", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Assessment().GetByRisk(ctx, types.RiskID("never-assessed"))
		if err == nil {
			t.Fatal("expected error for missing assessment")
		}
		if !isNotFound(err) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Upserts for different risks stay independent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, riskID := range []types.RiskID{"risk-a", "risk-b"} {
			if _, err := repo.Assessment().Upsert(ctx, &model.RiskAssessment{
				RiskID:      riskID,
				Probability: 1,
				Severity:    1,
			}); err != nil {
				t.Fatalf("failed to upsert assessment: %v", err)
			}
		}

		a, err := repo.Assessment().GetByRisk(ctx, "risk-a")
		if err != nil {
			t.Fatalf("failed to get assessment: %v", err)
		}
		b, err := repo.Assessment().GetByRisk(ctx, "risk-b")
		if err != nil {
			t.Fatalf("failed to get assessment: %v", err)
		}
		if a.ID == b.ID {
			t.Error("expected distinct assessment IDs per risk")
		}
	})
}

func runMeasurementRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get round-trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Measurement().Create(ctx, &model.RiskMeasurement{
			RiskID:          "risk-1",
			Type:            "ruido",
			MeasuredValue:   87.5,
			Unit:            "dB(A)",
			ExposureTime:    "8h",
			Method:          "NHO-01",
			Instrument:      "dosimetro",
			MeasurementDate: "2024-03-15",
			Comparison:      types.ComparisonAbove,
		})
		if err != nil {
			t.Fatalf("failed to create measurement: %v", err)
		}

		retrieved, err := repo.Measurement().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get measurement: %v", err)
		}
		if retrieved.MeasuredValue != 87.5 {
			t.Errorf("expected value=87.5, got %v", retrieved.MeasuredValue)
		}
		if retrieved.Comparison != types.ComparisonAbove {
			t.Errorf("expected comparison=%s, got %s", types.ComparisonAbove, retrieved.Comparison)
		}
	})

	t.Run("ListByRisk filters by parent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, riskID := range []types.RiskID{"risk-1", "risk-1", "risk-2"} {
			if _, err := repo.Measurement().Create(ctx, &model.RiskMeasurement{
				RiskID: riskID,
				Type:   "ruido",
			}); err != nil {
				t.Fatalf("failed to create measurement: %v", err)
			}
		}

		measurements, err := repo.Measurement().ListByRisk(ctx, "risk-1")
		if err != nil {
			t.Fatalf("failed to list measurements: %v", err)
		}
		if len(measurements) != 2 {
			t.Errorf("expected 2 measurements, got %d", len(measurements))
		}
	})

	t.Run("Delete removes the measurement", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Measurement().Create(ctx, &model.RiskMeasurement{
			RiskID: "risk-1",
			Type:   "vibracao",
		})
		if err != nil {
			t.Fatalf("failed to create measurement: %v", err)
		}

		if err := repo.Measurement().Delete(ctx, created.ID); err != nil {
			t.Fatalf("failed to delete measurement: %v", err)
		}

		_, err = repo.Measurement().Get(ctx, created.ID)
		if !isNotFound(err) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestMemoryRiskRepository(t *testing.T) {
	runRiskRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreRiskRepository(t *testing.T) {
	runRiskRepositoryTest(t, newFirestoreRepository)
}

func TestMemoryAssessmentRepository(t *testing.T) {
	runAssessmentRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreAssessmentRepository(t *testing.T) {
	runAssessmentRepositoryTest(t, newFirestoreRepository)
}

func TestMemoryMeasurementRepository(t *testing.T) {
	runMeasurementRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreMeasurementRepository(t *testing.T) {
	runMeasurementRepositoryTest(t, newFirestoreRepository)
}
