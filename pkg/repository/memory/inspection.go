package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type inspectionRepository struct {
	mu          sync.RWMutex
	inspections map[types.InspectionID]*model.Inspection
}

func newInspectionRepository() *inspectionRepository {
	return &inspectionRepository{
		inspections: make(map[types.InspectionID]*model.Inspection),
	}
}

func cloneInspection(i *model.Inspection) *model.Inspection {
	copied := *i
	copied.Items = make([]model.InspectionAnswer, len(i.Items))
	copy(copied.Items, i.Items)
	return &copied
}

func (r *inspectionRepository) Create(ctx context.Context, inspection *model.Inspection) (*model.Inspection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := cloneInspection(inspection)
	if created.ID == "" {
		created.ID = types.NewInspectionID()
	}
	created.CreatedAt = time.Now().UTC()

	r.inspections[created.ID] = created
	return cloneInspection(created), nil
}

func (r *inspectionRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Inspection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var inspections []*model.Inspection
	for _, inspection := range r.inspections {
		if inspection.CompanyID == companyID {
			inspections = append(inspections, cloneInspection(inspection))
		}
	}

	return inspections, nil
}
