package model

import (
	"time"

	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// Risk belongs to exactly one activity. A risk cannot exist without a
// parent activity.
type Risk struct {
	ID               types.RiskID
	ActivityID       types.ActivityID
	Hazard           string
	HazardousEvent   string
	PotentialDamage  string
	AgentCategory    types.AgentCategory
	Condition        string
	ExposedCount     int
	ExistingControls string
	LegacyMigrated   bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
