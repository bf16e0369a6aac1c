package interfaces

import (
	"context"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// CompanyRepository manages company records
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) (*model.Company, error)
	Get(ctx context.Context, id types.CompanyID) (*model.Company, error)
	List(ctx context.Context) ([]*model.Company, error)
}
