// Package compliance aggregates checklist inspections into company-level
// compliance and coverage metrics.
package compliance

import (
	"time"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// parseDate parses the loose date string of an inspection record.
func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type candidate struct {
	inspection *model.Inspection
	date       time.Time
	valid      bool
}

// LatestByChecklist selects, for each distinct checklist, the inspection
// with the latest valid date. An inspection with an unparsable date is
// kept only while no valid-dated candidate exists for that checklist; a
// valid-dated candidate always supersedes an invalid one. Equal dates
// keep the first-seen inspection.
func LatestByChecklist(inspections []*model.Inspection) map[types.ChecklistID]*model.Inspection {
	best := make(map[types.ChecklistID]candidate)

	for _, insp := range inspections {
		if insp == nil {
			continue
		}

		date, valid := parseDate(insp.Date)
		cur, ok := best[insp.ChecklistID]
		switch {
		case !ok:
			best[insp.ChecklistID] = candidate{inspection: insp, date: date, valid: valid}
		case valid && !cur.valid:
			best[insp.ChecklistID] = candidate{inspection: insp, date: date, valid: valid}
		case valid && cur.valid && date.After(cur.date):
			best[insp.ChecklistID] = candidate{inspection: insp, date: date, valid: valid}
		}
	}

	latest := make(map[types.ChecklistID]*model.Inspection, len(best))
	for id, c := range best {
		latest[id] = c.inspection
	}
	return latest
}
