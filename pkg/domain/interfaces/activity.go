package interfaces

import (
	"context"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// ActivityRepository manages activity records
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) (*model.Activity, error)
	Get(ctx context.Context, id types.ActivityID) (*model.Activity, error)
	ListByEnvironment(ctx context.Context, envID types.EnvironmentID) ([]*model.Activity, error)
}
