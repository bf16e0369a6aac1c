package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
	"github.com/sesmt-lab/sentinela/pkg/utils/logging"
)

type RiskUseCase struct {
	repo interfaces.Repository
}

func NewRiskUseCase(repo interfaces.Repository) *RiskUseCase {
	return &RiskUseCase{repo: repo}
}

// activityEnvironment resolves the environment an activity belongs to.
func (uc *RiskUseCase) activityEnvironment(ctx context.Context, activityID types.ActivityID) (*model.Environment, error) {
	activity, err := uc.repo.Activity().Get(ctx, activityID)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(model.ErrActivityRequired, "activity does not exist",
				goerr.V(model.ActivityIDKey, activityID))
		}
		return nil, err
	}

	env, err := uc.repo.Environment().Get(ctx, activity.EnvironmentID)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "environment not found",
				goerr.V(model.EnvironmentIDKey, activity.EnvironmentID))
		}
		return nil, err
	}
	return env, nil
}

// guardRisk resolves the risk and enforces the finalized-environment
// gate for mutations of the risk or its children.
func (uc *RiskUseCase) guardRisk(ctx context.Context, id types.RiskID) (*model.Risk, error) {
	risk, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	env, err := uc.activityEnvironment(ctx, risk.ActivityID)
	if err != nil {
		return nil, err
	}
	if env.Finalized() {
		return nil, goerr.Wrap(model.ErrEnvironmentFinalized, "environment is locked",
			goerr.V(model.EnvironmentIDKey, env.ID), goerr.V(model.RiskIDKey, id))
	}
	return risk, nil
}

func (uc *RiskUseCase) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	if err := EnsureRiskCanBeCreated(risk); err != nil {
		return nil, err
	}

	// Unknown categories degrade to the accident default, the same
	// fallback the legacy migrator applies.
	if !risk.AgentCategory.IsValid() {
		logging.From(ctx).Warn("unknown agent category, defaulting to acidente",
			model.AgentCategoryKey, risk.AgentCategory)
		risk.AgentCategory = types.AgentAcidente
	}

	env, err := uc.activityEnvironment(ctx, risk.ActivityID)
	if err != nil {
		return nil, err
	}
	if env.Finalized() {
		return nil, goerr.Wrap(model.ErrEnvironmentFinalized, "environment is locked",
			goerr.V(model.EnvironmentIDKey, env.ID))
	}

	return uc.repo.Risk().Create(ctx, risk)
}

func (uc *RiskUseCase) Get(ctx context.Context, id types.RiskID) (*model.Risk, error) {
	risk, err := uc.repo.Risk().Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V(model.RiskIDKey, id))
		}
		return nil, err
	}
	return risk, nil
}

func (uc *RiskUseCase) ListByActivity(ctx context.Context, activityID types.ActivityID) ([]*model.Risk, error) {
	return uc.repo.Risk().ListByActivity(ctx, activityID)
}

func (uc *RiskUseCase) Delete(ctx context.Context, id types.RiskID) error {
	if _, err := uc.guardRisk(ctx, id); err != nil {
		return err
	}
	return uc.repo.Risk().Delete(ctx, id)
}
