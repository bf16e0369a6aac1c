package compliance

import (
	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

// ItemResult pairs a checklist item with its classified state.
type ItemResult struct {
	ItemID string
	State  types.ItemState
}

// ClassifyItems assigns each checklist item a state from the inspection's
// answers. It is total over {unknown, ok, non_conforming, pending}:
//   - no inspection at all        -> unknown
//   - answered true               -> ok
//   - answered false              -> non_conforming
//   - answer missing or nil       -> pending
func ClassifyItems(checklist *model.Checklist, inspection *model.Inspection) []ItemResult {
	results := make([]ItemResult, 0, len(checklist.Items))

	if inspection == nil {
		for _, item := range checklist.Items {
			results = append(results, ItemResult{ItemID: item.ID, State: types.ItemUnknown})
		}
		return results
	}

	answers := make(map[string]*bool, len(inspection.Items))
	for _, ans := range inspection.Items {
		answers[ans.ItemID] = ans.Answer
	}

	for _, item := range checklist.Items {
		answer, answered := answers[item.ID]
		var state types.ItemState
		switch {
		case !answered || answer == nil:
			state = types.ItemPending
		case *answer:
			state = types.ItemOK
		default:
			state = types.ItemNonConforming
		}
		results = append(results, ItemResult{ItemID: item.ID, State: state})
	}

	return results
}
