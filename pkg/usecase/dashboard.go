package usecase

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
	"github.com/sesmt-lab/sentinela/pkg/service/compliance"
)

type DashboardUseCase struct {
	repo           interfaces.Repository
	attentionLimit int
}

func NewDashboardUseCase(repo interfaces.Repository, attentionLimit int) *DashboardUseCase {
	if attentionLimit <= 0 {
		attentionLimit = defaultAttentionLimit
	}
	return &DashboardUseCase{repo: repo, attentionLimit: attentionLimit}
}

// CompanyCompliance assembles the compliance dashboard for a company:
// per-checklist metrics from the latest valid inspections, the company
// rollup, and the bounded attention list. topN overrides the configured
// attention list size when positive.
func (uc *DashboardUseCase) CompanyCompliance(ctx context.Context, companyID types.CompanyID, topN int) (*model.CompanyCompliance, error) {
	if _, err := uc.repo.Company().Get(ctx, companyID); err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "company not found", goerr.V("company_id", companyID))
		}
		return nil, err
	}

	var checklists []*model.Checklist
	var inspections []*model.Inspection

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		checklists, err = uc.repo.Checklist().ListByCompany(egCtx, companyID)
		return err
	})
	eg.Go(func() error {
		var err error
		inspections, err = uc.repo.Inspection().ListByCompany(egCtx, companyID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to load compliance data", goerr.V("company_id", companyID))
	}

	// Deterministic order regardless of backend iteration order.
	sort.Slice(checklists, func(i, j int) bool {
		if checklists[i].Category != checklists[j].Category {
			return checklists[i].Category < checklists[j].Category
		}
		return checklists[i].ID < checklists[j].ID
	})

	latest := compliance.LatestByChecklist(inspections)

	metrics := make([]model.ChecklistMetrics, 0, len(checklists))
	for _, checklist := range checklists {
		metrics = append(metrics, compliance.ComputeChecklistMetrics(checklist, latest[checklist.ID]))
	}

	limit := uc.attentionLimit
	if topN > 0 {
		limit = topN
	}

	return &model.CompanyCompliance{
		CompanyID:  companyID,
		Summary:    compliance.ComputeCompanySummary(metrics),
		Checklists: metrics,
		Attention:  compliance.RankByPriority(metrics, limit),
	}, nil
}
