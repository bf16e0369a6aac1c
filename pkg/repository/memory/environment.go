package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type environmentRepository struct {
	mu           sync.RWMutex
	environments map[types.EnvironmentID]*model.Environment
}

func newEnvironmentRepository() *environmentRepository {
	return &environmentRepository{
		environments: make(map[types.EnvironmentID]*model.Environment),
	}
}

func cloneEnvironment(e *model.Environment) *model.Environment {
	copied := *e
	return &copied
}

func (r *environmentRepository) Create(ctx context.Context, env *model.Environment) (*model.Environment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := cloneEnvironment(env)
	if created.ID == "" {
		created.ID = types.NewEnvironmentID()
	}
	if created.Status == "" {
		created.Status = types.EnvironmentDraft
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.environments[created.ID] = created
	return cloneEnvironment(created), nil
}

func (r *environmentRepository) Get(ctx context.Context, id types.EnvironmentID) (*model.Environment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	env, exists := r.environments[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "environment not found", goerr.V("id", id))
	}

	return cloneEnvironment(env), nil
}

func (r *environmentRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Environment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var envs []*model.Environment
	for _, env := range r.environments {
		if env.CompanyID == companyID {
			envs = append(envs, cloneEnvironment(env))
		}
	}

	return envs, nil
}

func (r *environmentRepository) Update(ctx context.Context, env *model.Environment) (*model.Environment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.environments[env.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "environment not found", goerr.V("id", env.ID))
	}

	updated := cloneEnvironment(env)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.environments[updated.ID] = updated
	return cloneEnvironment(updated), nil
}
