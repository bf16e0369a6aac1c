package model

import (
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// ChecklistMetrics is the per-checklist compliance rollup computed from
// the latest valid inspection.
type ChecklistMetrics struct {
	ChecklistID   types.ChecklistID
	Category      string
	Total         int
	OK            int
	NonConforming int
	Pending       int
	Unknown       int

	OKPct      float64
	NonPct     float64
	PendingPct float64
	UnknownPct float64

	CompliancePct int
	ActionsNeeded int
	Severity      types.Severity

	HasInspection  bool
	InspectionDate string
}

// CompanySummary is the company-wide compliance and coverage rollup.
type CompanySummary struct {
	Applicable    int
	Inspected     int
	NoInspection  int
	CoveragePct   int
	CompliancePct int
	ActionsNeeded int
}

// CompanyCompliance bundles the dashboard payload: the summary, every
// checklist's metrics, and the bounded attention list.
type CompanyCompliance struct {
	CompanyID  types.CompanyID
	Summary    CompanySummary
	Checklists []ChecklistMetrics
	Attention  []ChecklistMetrics
}
