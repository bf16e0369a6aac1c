package interfaces

import (
	"context"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// ChecklistRepository manages company checklists
type ChecklistRepository interface {
	Create(ctx context.Context, checklist *model.Checklist) (*model.Checklist, error)
	Get(ctx context.Context, id types.ChecklistID) (*model.Checklist, error)
	ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Checklist, error)
}
