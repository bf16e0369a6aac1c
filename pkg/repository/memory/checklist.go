package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type checklistRepository struct {
	mu         sync.RWMutex
	checklists map[types.ChecklistID]*model.Checklist
}

func newChecklistRepository() *checklistRepository {
	return &checklistRepository{
		checklists: make(map[types.ChecklistID]*model.Checklist),
	}
}

func cloneChecklist(c *model.Checklist) *model.Checklist {
	copied := *c
	copied.Items = make([]model.ChecklistItem, len(c.Items))
	copy(copied.Items, c.Items)
	return &copied
}

func (r *checklistRepository) Create(ctx context.Context, checklist *model.Checklist) (*model.Checklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := cloneChecklist(checklist)
	if created.ID == "" {
		created.ID = types.NewChecklistID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.checklists[created.ID] = created
	return cloneChecklist(created), nil
}

func (r *checklistRepository) Get(ctx context.Context, id types.ChecklistID) (*model.Checklist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	checklist, exists := r.checklists[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "checklist not found", goerr.V("id", id))
	}

	return cloneChecklist(checklist), nil
}

func (r *checklistRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Checklist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var checklists []*model.Checklist
	for _, checklist := range r.checklists {
		if checklist.CompanyID == companyID {
			checklists = append(checklists, cloneChecklist(checklist))
		}
	}

	return checklists, nil
}
