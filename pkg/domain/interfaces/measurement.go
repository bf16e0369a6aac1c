package interfaces

import (
	"context"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// MeasurementRepository manages risk measurements
type MeasurementRepository interface {
	Create(ctx context.Context, m *model.RiskMeasurement) (*model.RiskMeasurement, error)
	Get(ctx context.Context, id types.MeasurementID) (*model.RiskMeasurement, error)
	ListByRisk(ctx context.Context, riskID types.RiskID) ([]*model.RiskMeasurement, error)
	Delete(ctx context.Context, id types.MeasurementID) error
}
