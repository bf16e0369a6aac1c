package model

import (
	"time"

	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// Environment is a work environment owned by the risk survey of a company.
// Once finalized, none of its child entities may be created or mutated.
type Environment struct {
	ID        types.EnvironmentID
	CompanyID types.CompanyID
	Unit      string
	Sector    string
	Name      string
	Type      string
	Status    types.EnvironmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Finalized reports whether the environment has been locked.
func (e *Environment) Finalized() bool {
	return e.Status == types.EnvironmentFinalized
}
