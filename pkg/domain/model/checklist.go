package model

import (
	"time"

	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// ChecklistItem is a single question of a regulatory checklist.
type ChecklistItem struct {
	ID       string
	Question string
	Weight   int
}

// Checklist is a company-scoped instance of a regulatory (NR) checklist
// template. Items are sourced from static templates keyed by the
// company's CNAE classification.
type Checklist struct {
	ID        types.ChecklistID
	CompanyID types.CompanyID
	Category  string
	Items     []ChecklistItem
	CreatedAt time.Time
	UpdatedAt time.Time
}
