package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type InspectionUseCase struct {
	repo interfaces.Repository
}

func NewInspectionUseCase(repo interfaces.Repository) *InspectionUseCase {
	return &InspectionUseCase{repo: repo}
}

// Record appends an inspection to the checklist's history. Inspections
// are immutable once recorded; corrections are made by recording a new
// inspection with a later date.
func (uc *InspectionUseCase) Record(ctx context.Context, inspection *model.Inspection) (*model.Inspection, error) {
	checklist, err := uc.repo.Checklist().Get(ctx, inspection.ChecklistID)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "checklist not found",
				goerr.V("checklist_id", inspection.ChecklistID))
		}
		return nil, err
	}

	if inspection.CompanyID == "" {
		inspection.CompanyID = checklist.CompanyID
	}

	return uc.repo.Inspection().Create(ctx, inspection)
}

func (uc *InspectionUseCase) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Inspection, error) {
	return uc.repo.Inspection().ListByCompany(ctx, companyID)
}
