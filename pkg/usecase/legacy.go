package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
	"github.com/sesmt-lab/sentinela/pkg/service/legacy"
	"github.com/sesmt-lab/sentinela/pkg/utils/logging"
)

type LegacyUseCase struct {
	repo interfaces.Repository
}

func NewLegacyUseCase(repo interfaces.Repository) *LegacyUseCase {
	return &LegacyUseCase{repo: repo}
}

// ImportResult summarizes a legacy import run.
type ImportResult struct {
	Imported int
	RiskIDs  []types.RiskID
}

// ImportRecords migrates legacy flat records into the current
// hierarchy. Migration itself never fails; only persistence can, and a
// persistence failure aborts the run with the partial count attached.
func (uc *LegacyUseCase) ImportRecords(ctx context.Context, records []legacy.Record) (*ImportResult, error) {
	result := &ImportResult{}

	for i, rec := range records {
		bundle := legacy.Migrate(rec)

		if _, err := uc.repo.Environment().Create(ctx, bundle.Environment); err != nil {
			return nil, goerr.Wrap(err, "failed to store migrated environment",
				goerr.V("record", i), goerr.V("imported", result.Imported))
		}
		if _, err := uc.repo.Activity().Create(ctx, bundle.Activity); err != nil {
			return nil, goerr.Wrap(err, "failed to store migrated activity",
				goerr.V("record", i), goerr.V("imported", result.Imported))
		}
		if _, err := uc.repo.Risk().Create(ctx, bundle.Risk); err != nil {
			return nil, goerr.Wrap(err, "failed to store migrated risk",
				goerr.V("record", i), goerr.V("imported", result.Imported))
		}

		result.Imported++
		result.RiskIDs = append(result.RiskIDs, bundle.Risk.ID)
	}

	logging.From(ctx).Info("legacy import finished", "imported", result.Imported)
	return result, nil
}
