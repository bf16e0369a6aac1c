package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
	"github.com/sesmt-lab/sentinela/pkg/service/reflimit"
	"github.com/sesmt-lab/sentinela/pkg/utils/logging"
)

type MeasurementUseCase struct {
	repo       interfaces.Repository
	comparator reflimit.Comparator
}

func NewMeasurementUseCase(repo interfaces.Repository, comparator reflimit.Comparator) *MeasurementUseCase {
	return &MeasurementUseCase{repo: repo, comparator: comparator}
}

// Record attaches quantitative exposure data to a risk. The qualitative
// gate and the category gate are enforced in that order, and the
// measured value is classified against the configured reference limit
// when one exists.
func (uc *MeasurementUseCase) Record(ctx context.Context, m *model.RiskMeasurement) (*model.RiskMeasurement, error) {
	risk, err := uc.repo.Risk().Get(ctx, m.RiskID)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V(model.RiskIDKey, m.RiskID))
		}
		return nil, err
	}

	if err := uc.ensureRiskEditable(ctx, risk); err != nil {
		return nil, err
	}

	hasQualitative := true
	if _, err := uc.repo.Assessment().GetByRisk(ctx, risk.ID); err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		hasQualitative = false
	}

	if err := EnsureQuantitativeAllowed(QuantitativeContext{
		HasQualitative: hasQualitative,
		Category:       risk.AgentCategory,
	}); err != nil {
		return nil, goerr.Wrap(err, "measurement rejected", goerr.V(model.RiskIDKey, risk.ID))
	}

	m.Comparison = ""
	if uc.comparator != nil {
		comparison, err := uc.comparator.Compare(m.Type, m.MeasuredValue, m.Unit)
		switch {
		case err == nil:
			m.Comparison = comparison
		case errors.Is(err, reflimit.ErrNoReference):
			logging.From(ctx).Warn("no reference limit for measurement",
				"type", m.Type, "unit", m.Unit)
		default:
			return nil, err
		}
	}

	return uc.repo.Measurement().Create(ctx, m)
}

func (uc *MeasurementUseCase) ListByRisk(ctx context.Context, riskID types.RiskID) ([]*model.RiskMeasurement, error) {
	return uc.repo.Measurement().ListByRisk(ctx, riskID)
}

func (uc *MeasurementUseCase) Delete(ctx context.Context, id types.MeasurementID) error {
	m, err := uc.repo.Measurement().Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return goerr.Wrap(ErrNotFound, "measurement not found", goerr.V("measurement_id", id))
		}
		return err
	}

	risk, err := uc.repo.Risk().Get(ctx, m.RiskID)
	if err != nil {
		if isNotFound(err) {
			return goerr.Wrap(ErrNotFound, "risk not found", goerr.V(model.RiskIDKey, m.RiskID))
		}
		return err
	}

	if err := uc.ensureRiskEditable(ctx, risk); err != nil {
		return err
	}

	return uc.repo.Measurement().Delete(ctx, id)
}

func (uc *MeasurementUseCase) ensureRiskEditable(ctx context.Context, risk *model.Risk) error {
	activity, err := uc.repo.Activity().Get(ctx, risk.ActivityID)
	if err != nil {
		if isNotFound(err) {
			return goerr.Wrap(ErrNotFound, "activity not found", goerr.V(model.ActivityIDKey, risk.ActivityID))
		}
		return err
	}

	env, err := uc.repo.Environment().Get(ctx, activity.EnvironmentID)
	if err != nil {
		if isNotFound(err) {
			return goerr.Wrap(ErrNotFound, "environment not found", goerr.V(model.EnvironmentIDKey, activity.EnvironmentID))
		}
		return err
	}

	if env.Finalized() {
		return goerr.Wrap(model.ErrEnvironmentFinalized, "environment is locked",
			goerr.V(model.EnvironmentIDKey, env.ID), goerr.V(model.RiskIDKey, risk.ID))
	}
	return nil
}
