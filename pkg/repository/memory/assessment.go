package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// assessmentRepository stores at most one assessment per risk, keyed by
// the risk ID to enforce upsert semantics.
type assessmentRepository struct {
	mu          sync.RWMutex
	assessments map[types.RiskID]*model.RiskAssessment
}

func newAssessmentRepository() *assessmentRepository {
	return &assessmentRepository{
		assessments: make(map[types.RiskID]*model.RiskAssessment),
	}
}

func cloneAssessment(a *model.RiskAssessment) *model.RiskAssessment {
	copied := *a
	return &copied
}

func (r *assessmentRepository) Upsert(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	stored := cloneAssessment(assessment)

	if existing, exists := r.assessments[assessment.RiskID]; exists {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else {
		if stored.ID == "" {
			stored.ID = types.NewAssessmentID()
		}
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	r.assessments[stored.RiskID] = stored
	return cloneAssessment(stored), nil
}

func (r *assessmentRepository) GetByRisk(ctx context.Context, riskID types.RiskID) (*model.RiskAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessment, exists := r.assessments[riskID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("risk_id", riskID))
	}

	return cloneAssessment(assessment), nil
}
