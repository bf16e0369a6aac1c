package compliance

import (
	"sort"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
)

// RankByPriority orders checklists by remediation urgency: actions
// needed descending, ties broken by compliance ascending (worse
// compliance first). The sort is stable so re-running on unchanged
// input yields the same order. topN bounds the result; topN <= 0
// returns the full ranking.
func RankByPriority(all []model.ChecklistMetrics, topN int) []model.ChecklistMetrics {
	ranked := make([]model.ChecklistMetrics, len(all))
	copy(ranked, all)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].ActionsNeeded != ranked[j].ActionsNeeded {
			return ranked[i].ActionsNeeded > ranked[j].ActionsNeeded
		}
		return ranked[i].CompliancePct < ranked[j].CompliancePct
	})

	if topN > 0 && topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}
