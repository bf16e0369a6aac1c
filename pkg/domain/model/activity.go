package model

import (
	"time"

	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// Activity belongs to exactly one environment.
type Activity struct {
	ID                   types.ActivityID
	EnvironmentID        types.EnvironmentID
	Name                 string
	Role                 string
	MacroProcess         string
	TechnicalDescription string
	TaskDescription      string
	Frequency            string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
