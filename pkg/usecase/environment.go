package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
	"github.com/sesmt-lab/sentinela/pkg/utils/logging"
)

type EnvironmentUseCase struct {
	repo interfaces.Repository
}

func NewEnvironmentUseCase(repo interfaces.Repository) *EnvironmentUseCase {
	return &EnvironmentUseCase{repo: repo}
}

func (uc *EnvironmentUseCase) Create(ctx context.Context, env *model.Environment) (*model.Environment, error) {
	if _, err := uc.repo.Company().Get(ctx, env.CompanyID); err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "company not found", goerr.V("company_id", env.CompanyID))
		}
		return nil, err
	}

	env.Status = types.EnvironmentDraft
	return uc.repo.Environment().Create(ctx, env)
}

func (uc *EnvironmentUseCase) Get(ctx context.Context, id types.EnvironmentID) (*model.Environment, error) {
	env, err := uc.repo.Environment().Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "environment not found", goerr.V(model.EnvironmentIDKey, id))
		}
		return nil, err
	}
	return env, nil
}

func (uc *EnvironmentUseCase) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Environment, error) {
	return uc.repo.Environment().ListByCompany(ctx, companyID)
}

// Finalize locks the environment against further mutation. Finalizing
// an already finalized environment is a no-op.
func (uc *EnvironmentUseCase) Finalize(ctx context.Context, id types.EnvironmentID) (*model.Environment, error) {
	env, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if env.Finalized() {
		return env, nil
	}

	env.Status = types.EnvironmentFinalized
	updated, err := uc.repo.Environment().Update(ctx, env)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("environment finalized", model.EnvironmentIDKey, id)
	return updated, nil
}

// ensureEditable fetches the environment and rejects the operation when
// it has been finalized.
func (uc *EnvironmentUseCase) ensureEditable(ctx context.Context, id types.EnvironmentID) (*model.Environment, error) {
	env, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if env.Finalized() {
		return nil, goerr.Wrap(model.ErrEnvironmentFinalized, "environment is locked",
			goerr.V(model.EnvironmentIDKey, id))
	}
	return env, nil
}

func (uc *EnvironmentUseCase) AddRole(ctx context.Context, role *model.Role) (*model.Role, error) {
	if _, err := uc.ensureEditable(ctx, role.EnvironmentID); err != nil {
		return nil, err
	}
	return uc.repo.Role().Create(ctx, role)
}

func (uc *EnvironmentUseCase) ListRoles(ctx context.Context, envID types.EnvironmentID) ([]*model.Role, error) {
	return uc.repo.Role().ListByEnvironment(ctx, envID)
}

func (uc *EnvironmentUseCase) AddActivity(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	if _, err := uc.ensureEditable(ctx, activity.EnvironmentID); err != nil {
		return nil, err
	}
	return uc.repo.Activity().Create(ctx, activity)
}

func (uc *EnvironmentUseCase) ListActivities(ctx context.Context, envID types.EnvironmentID) ([]*model.Activity, error) {
	return uc.repo.Activity().ListByEnvironment(ctx, envID)
}
