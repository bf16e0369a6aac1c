package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/model/config"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
	"github.com/sesmt-lab/sentinela/pkg/service/matrix"
	"github.com/sesmt-lab/sentinela/pkg/utils/logging"
)

type AssessmentUseCase struct {
	repo   interfaces.Repository
	matrix *config.MatrixConfig
}

func NewAssessmentUseCase(repo interfaces.Repository, matrixConfig *config.MatrixConfig) *AssessmentUseCase {
	return &AssessmentUseCase{repo: repo, matrix: matrixConfig}
}

func validScale(v int) bool {
	return v >= 1 && v <= 5
}

// Upsert records or replaces the qualitative assessment of a risk. The
// classification band and the justification-required flag are always
// recomputed from probability x severity; callers cannot set them.
func (uc *AssessmentUseCase) Upsert(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error) {
	if !validScale(assessment.Probability) || !validScale(assessment.Severity) {
		return nil, goerr.Wrap(ErrScaleOutOfRange, "invalid matrix scale",
			goerr.V("probability", assessment.Probability),
			goerr.V("severity", assessment.Severity))
	}

	risk, err := uc.repo.Risk().Get(ctx, assessment.RiskID)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V(model.RiskIDKey, assessment.RiskID))
		}
		return nil, err
	}

	if err := uc.ensureRiskEditable(ctx, risk); err != nil {
		return nil, err
	}

	bands := uc.matrix.BandsOrDefault()
	score := float64(assessment.Score())
	assessment.Classification = matrix.Classify(score, bands)
	assessment.RequiresJustification = matrix.RequiresJustification(score, bands)

	stored, err := uc.repo.Assessment().Upsert(ctx, assessment)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("assessment recorded",
		model.RiskIDKey, stored.RiskID,
		"score", stored.Score(),
		"classification", stored.Classification,
	)

	return stored, nil
}

func (uc *AssessmentUseCase) GetByRisk(ctx context.Context, riskID types.RiskID) (*model.RiskAssessment, error) {
	assessment, err := uc.repo.Assessment().GetByRisk(ctx, riskID)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V(model.RiskIDKey, riskID))
		}
		return nil, err
	}
	return assessment, nil
}

func (uc *AssessmentUseCase) ensureRiskEditable(ctx context.Context, risk *model.Risk) error {
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
