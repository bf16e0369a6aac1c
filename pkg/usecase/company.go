package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
	"github.com/sesmt-lab/sentinela/pkg/service/template"
	"github.com/sesmt-lab/sentinela/pkg/utils/logging"
)

type CompanyUseCase struct {
	repo      interfaces.Repository
	templates *template.Registry
}

func NewCompanyUseCase(repo interfaces.Repository, templates *template.Registry) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, templates: templates}
}

// Create registers a company and provisions the regulatory checklists
// its CNAE classification maps to. A CNAE with no mapping yields a
// company without checklists; that is not an error.
func (uc *CompanyUseCase) Create(ctx context.Context, company *model.Company) (*model.Company, error) {
	created, err := uc.repo.Company().Create(ctx, company)
	if err != nil {
		return nil, err
	}

	if uc.templates == nil {
		return created, nil
	}

	checklists := uc.templates.ChecklistsFor(created)
	for _, checklist := range checklists {
		if _, err := uc.repo.Checklist().Create(ctx, checklist); err != nil {
			return nil, goerr.Wrap(err, "failed to provision checklist",
				goerr.V("company_id", created.ID), goerr.V("category", checklist.Category))
		}
	}

	logging.From(ctx).Info("company created",
		"company_id", created.ID,
		"cnae", created.CNAE,
		"checklists", len(checklists),
	)

	return created, nil
}

func (uc *CompanyUseCase) Get(ctx context.Context, id types.CompanyID) (*model.Company, error) {
	company, err := uc.repo.Company().Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "company not found", goerr.V("company_id", id))
		}
		return nil, err
	}
	return company, nil
}

func (uc *CompanyUseCase) List(ctx context.Context) ([]*model.Company, error) {
	return uc.repo.Company().List(ctx)
}

// Checklists returns the company's provisioned checklists.
func (uc *CompanyUseCase) Checklists(ctx context.Context, id types.CompanyID) ([]*model.Checklist, error) {
	if _, err := uc.Get(ctx, id); err != nil {
		return nil, err
	}
	return uc.repo.Checklist().ListByCompany(ctx, id)
}
