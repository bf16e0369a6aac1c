package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type companyRepository struct {
	mu        sync.RWMutex
	companies map[types.CompanyID]*model.Company
}

func newCompanyRepository() *companyRepository {
	return &companyRepository{
		companies: make(map[types.CompanyID]*model.Company),
	}
}

func cloneCompany(c *model.Company) *model.Company {
	copied := *c
	return &copied
}

func (r *companyRepository) Create(ctx context.Context, company *model.Company) (*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := cloneCompany(company)
	if created.ID == "" {
		created.ID = types.NewCompanyID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.companies[created.ID] = created
	return cloneCompany(created), nil
}

func (r *companyRepository) Get(ctx context.Context, id types.CompanyID) (*model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	company, exists := r.companies[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "company not found", goerr.V("id", id))
	}

	return cloneCompany(company), nil
}

func (r *companyRepository) List(ctx context.Context) ([]*model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	companies := make([]*model.Company, 0, len(r.companies))
	for _, company := range r.companies {
		companies = append(companies, cloneCompany(company))
	}

	return companies, nil
}
