package usecase

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// EnsureRiskCanBeCreated enforces the risk creation gate: a risk must
// point at a parent activity. The gate only ever signals
// ErrActivityRequired; category normalization is the caller's concern.
func EnsureRiskCanBeCreated(risk *model.Risk) error {
	if risk.ActivityID == "" {
		return goerr.Wrap(model.ErrActivityRequired, "missing activity reference")
	}
	return nil
}

// QuantitativeContext carries the state needed to decide whether
// quantitative measurement data may be attached to a risk.
type QuantitativeContext struct {
	HasQualitative bool
	Category       types.AgentCategory
}

// EnsureQuantitativeAllowed enforces the measurement gates. The
// qualitative-assessment gate is checked before the category gate, so a
// risk failing both reports the missing assessment.
func EnsureQuantitativeAllowed(qc QuantitativeContext) error {
	if !qc.HasQualitative {
		return goerr.Wrap(model.ErrQualitativeRequired, "no qualitative assessment recorded")
	}
	if !qc.Category.AllowsQuantitative() {
		return goerr.Wrap(model.ErrQuantitativeNotAllowed, "category has no measurable agent",
			goerr.V(model.AgentCategoryKey, qc.Category))
	}
	return nil
}
