package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type riskRepository struct {
	mu    sync.RWMutex
	risks map[types.RiskID]*model.Risk
}

func newRiskRepository() *riskRepository {
	return &riskRepository{
		risks: make(map[types.RiskID]*model.Risk),
	}
}

func cloneRisk(risk *model.Risk) *model.Risk {
	copied := *risk
	return &copied
}

func (r *riskRepository) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := cloneRisk(risk)
	if created.ID == "" {
		created.ID = types.NewRiskID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.risks[created.ID] = created
	return cloneRisk(created), nil
}

func (r *riskRepository) Get(ctx context.Context, id types.RiskID) (*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risk, exists := r.risks[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
	}

	return cloneRisk(risk), nil
}

func (r *riskRepository) ListByActivity(ctx context.Context, activityID types.ActivityID) ([]*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var risks []*model.Risk
	for _, risk := range r.risks {
		if risk.ActivityID == activityID {
			risks = append(risks, cloneRisk(risk))
		}
	}

	return risks, nil
}

func (r *riskRepository) Delete(ctx context.Context, id types.RiskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.risks[id]; !exists {
		return goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
	}

	delete(r.risks, id)
	return nil
}
