package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type roleRepository struct {
	mu    sync.RWMutex
	roles map[types.RoleID]*model.Role
}

func newRoleRepository() *roleRepository {
	return &roleRepository{
		roles: make(map[types.RoleID]*model.Role),
	}
}

func cloneRole(role *model.Role) *model.Role {
	copied := *role
	return &copied
}

func (r *roleRepository) Create(ctx context.Context, role *model.Role) (*model.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := cloneRole(role)
	if created.ID == "" {
		created.ID = types.NewRoleID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.roles[created.ID] = created
	return cloneRole(created), nil
}

func (r *roleRepository) ListByEnvironment(ctx context.Context, envID types.EnvironmentID) ([]*model.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var roles []*model.Role
	for _, role := range r.roles {
		if role.EnvironmentID == envID {
			roles = append(roles, cloneRole(role))
		}
	}

	return roles, nil
}
