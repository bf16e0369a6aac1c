package interfaces

import (
	"context"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// RiskRepository manages risk records
type RiskRepository interface {
	Create(ctx context.Context, risk *model.Risk) (*model.Risk, error)
	Get(ctx context.Context, id types.RiskID) (*model.Risk, error)
	ListByActivity(ctx context.Context, activityID types.ActivityID) ([]*model.Risk, error)
	Delete(ctx context.Context, id types.RiskID) error
}
