package model

import (
	"time"

	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// RiskAssessment is the qualitative probability x severity scoring of a
// risk. At most one assessment is active per risk (upsert semantics).
// Score is always recomputed from probability and severity, never stored
// independently of its inputs.
type RiskAssessment struct {
	ID                     types.AssessmentID
	RiskID                 types.RiskID
	Probability            int
	Severity               int
	ConfidenceLevel        string
	TechnicalJustification string
	Classification         types.Band
	RequiresJustification  bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Score returns the probability x severity product.
func (a *RiskAssessment) Score() int {
	return a.Probability * a.Severity
}
