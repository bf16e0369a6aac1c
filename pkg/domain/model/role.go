package model

import (
	"time"

	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// Role (cargo) belongs to exactly one environment.
type Role struct {
	ID            types.RoleID
	EnvironmentID types.EnvironmentID
	Name          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
