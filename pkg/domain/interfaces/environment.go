package interfaces

import (
	"context"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// EnvironmentRepository manages work environment records
type EnvironmentRepository interface {
	Create(ctx context.Context, env *model.Environment) (*model.Environment, error)
	Get(ctx context.Context, id types.EnvironmentID) (*model.Environment, error)
	ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Environment, error)
	Update(ctx context.Context, env *model.Environment) (*model.Environment, error)
}
