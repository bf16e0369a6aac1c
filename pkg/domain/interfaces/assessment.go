package interfaces

import (
	"context"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// AssessmentRepository manages risk assessments. At most one assessment
// is active per risk; Upsert replaces any existing one.
type AssessmentRepository interface {
	Upsert(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error)
	GetByRisk(ctx context.Context, riskID types.RiskID) (*model.RiskAssessment, error)
}
