package model

import (
	"time"

	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// Company is the tenant owning environments, checklists and inspections.
type Company struct {
	ID        types.CompanyID
	Name      string
	CNPJ      string
	CNAE      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
