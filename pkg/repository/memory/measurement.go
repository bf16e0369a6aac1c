package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type measurementRepository struct {
	mu           sync.RWMutex
	measurements map[types.MeasurementID]*model.RiskMeasurement
}

func newMeasurementRepository() *measurementRepository {
	return &measurementRepository{
		measurements: make(map[types.MeasurementID]*model.RiskMeasurement),
	}
}

func cloneMeasurement(m *model.RiskMeasurement) *model.RiskMeasurement {
	copied := *m
	return &copied
}

func (r *measurementRepository) Create(ctx context.Context, m *model.RiskMeasurement) (*model.RiskMeasurement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := cloneMeasurement(m)
	if created.ID == "" {
		created.ID = types.NewMeasurementID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.measurements[created.ID] = created
	return cloneMeasurement(created), nil
}

func (r *measurementRepository) Get(ctx context.Context, id types.MeasurementID) (*model.RiskMeasurement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.measurements[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "measurement not found", goerr.V("id", id))
	}

	return cloneMeasurement(m), nil
}

func (r *measurementRepository) ListByRisk(ctx context.Context, riskID types.RiskID) ([]*model.RiskMeasurement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var measurements []*model.RiskMeasurement
	for _, m := range r.measurements {
		if m.RiskID == riskID {
			measurements = append(measurements, cloneMeasurement(m))
		}
	}

	return measurements, nil
}

func (r *measurementRepository) Delete(ctx context.Context, id types.MeasurementID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.measurements[id]; !exists {
		return goerr.Wrap(ErrNotFound, "measurement not found", goerr.V("id", id))
	}

	delete(r.measurements, id)
	return nil
}
