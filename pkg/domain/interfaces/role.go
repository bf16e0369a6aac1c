package interfaces

import (
	"context"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// RoleRepository manages role (cargo) records
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) (*model.Role, error)
	ListByEnvironment(ctx context.Context, envID types.EnvironmentID) ([]*model.Role, error)
}
