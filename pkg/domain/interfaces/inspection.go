package interfaces

import (
	"context"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// InspectionRepository manages inspection records. Inspections are
// append-only; there is no update or delete.
type InspectionRepository interface {
	Create(ctx context.Context, inspection *model.Inspection) (*model.Inspection, error)
	ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Inspection, error)
}
