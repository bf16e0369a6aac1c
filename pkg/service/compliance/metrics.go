package compliance

import (
	"math"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func pct(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return clampPct(float64(count) / float64(total) * 100)
}

// ComputeChecklistMetrics turns per-item states of the latest inspection
// into the checklist's compliance rollup. latest may be nil when the
// checklist was never inspected; that degrades to unknown items and the
// no_data severity rather than an error.
func ComputeChecklistMetrics(checklist *model.Checklist, latest *model.Inspection) model.ChecklistMetrics {
	m := model.ChecklistMetrics{
		ChecklistID:   checklist.ID,
		Category:      checklist.Category,
		Total:         len(checklist.Items),
		HasInspection: latest != nil,
	}
	if latest != nil {
		m.InspectionDate = latest.Date
	}

	for _, result := range ClassifyItems(checklist, latest) {
		switch result.State {
		case types.ItemOK:
			m.OK++
		case types.ItemNonConforming:
			m.NonConforming++
		case types.ItemPending:
			m.Pending++
		case types.ItemUnknown:
			m.Unknown++
		}
	}

	m.OKPct = pct(m.OK, m.Total)
	m.NonPct = pct(m.NonConforming, m.Total)
	m.PendingPct = pct(m.Pending, m.Total)
	m.UnknownPct = pct(m.Unknown, m.Total)
	m.CompliancePct = int(math.Round(m.OKPct))

	m.ActionsNeeded = m.NonConforming + m.Pending
	if !m.HasInspection {
		m.ActionsNeeded++
	}

	m.Severity = severityOf(m)

	return m
}

// severityOf applies the severity ladder; first match wins.
func severityOf(m model.ChecklistMetrics) types.Severity {
	switch {
	case !m.HasInspection:
		return types.SeverityNoData
	case m.Pending > 0:
		return types.SeverityPending
	case m.NonConforming == 0 && m.CompliancePct == 100:
		return types.SeverityOK
	case m.CompliancePct >= 80:
		return types.SeverityWarning
	default:
		return types.SeverityDanger
	}
}

// ComputeCompanySummary rolls checklist metrics up to company level.
// Checklists without any inspection count toward coverage and the
// actions-needed penalty but are excluded from the compliance ratio.
func ComputeCompanySummary(all []model.ChecklistMetrics) model.CompanySummary {
	s := model.CompanySummary{
		Applicable: len(all),
	}

	var okSum, totalSum int
	for _, m := range all {
		if m.HasInspection {
			s.Inspected++
			okSum += m.OK
			totalSum += m.Total
		} else {
			s.NoInspection++
		}
		s.ActionsNeeded += m.NonConforming + m.Pending
	}
	s.ActionsNeeded += s.NoInspection

	if s.Applicable > 0 {
		s.CoveragePct = int(math.Round(float64(s.Inspected) / float64(s.Applicable) * 100))
	}
	if totalSum > 0 {
		s.CompliancePct = int(math.Round(float64(okSum) / float64(totalSum) * 100))
	}

	return s
}
