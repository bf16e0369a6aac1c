package model

import (
	"time"

	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// InspectionAnswer is a single item answer. Answer is nil when the item
// was left unanswered.
type InspectionAnswer struct {
	ItemID string
	Answer *bool
}

// Inspection is an immutable, append-only record of a checklist walk,
// keyed by (checklist, company, date). Date is kept as the raw string
// supplied by the source system; historical records may carry unparsable
// dates.
type Inspection struct {
	ID          types.InspectionID
	ChecklistID types.ChecklistID
	CompanyID   types.CompanyID
	Date        string
	Items       []InspectionAnswer
	CreatedAt   time.Time
}
