package compliance_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
	"github.com/sesmt-lab/sentinela/pkg/service/compliance"
)

func metric(id string, actions, compliance int) model.ChecklistMetrics {
	return model.ChecklistMetrics{
		ChecklistID:   types.ChecklistID(id),
		ActionsNeeded: actions,
		CompliancePct: compliance,
	}
}

func ids(ranked []model.ChecklistMetrics) []string {
	out := make([]string, 0, len(ranked))
	for _, m := range ranked {
		out = append(out, m.ChecklistID.String())
	}
	return out
}

func TestRankByPriority(t *testing.T) {
	t.Run("more actions first, worse compliance breaks ties", func(t *testing.T) {
		ranked := compliance.RankByPriority([]model.ChecklistMetrics{
			metric("a", 2, 80),
			metric("b", 5, 50),
			metric("c", 5, 30),
			metric("d", 1, 90),
		}, 0)

		gt.Value(t, ids(ranked)).Equal([]string{"c", "b", "a", "d"})
	})

	t.Run("full ties keep input order", func(t *testing.T) {
		ranked := compliance.RankByPriority([]model.ChecklistMetrics{
			metric("x", 3, 60),
			metric("y", 3, 60),
		}, 0)

		gt.Value(t, ids(ranked)).Equal([]string{"x", "y"})
	})

	t.Run("topN bounds the result", func(t *testing.T) {
		ranked := compliance.RankByPriority([]model.ChecklistMetrics{
			metric("a", 1, 90),
			metric("b", 2, 80),
			metric("c", 3, 70),
		}, 2)

		gt.Value(t, ids(ranked)).Equal([]string{"c", "b"})
	})

	t.Run("topN larger than input returns everything", func(t *testing.T) {
		ranked := compliance.RankByPriority([]model.ChecklistMetrics{
			metric("a", 1, 90),
		}, 8)

		gt.Array(t, ranked).Length(1)
	})

	t.Run("ranking is idempotent", func(t *testing.T) {
		input := []model.ChecklistMetrics{
			metric("a", 2, 80),
			metric("b", 5, 50),
			metric("c", 5, 50),
		}

		first := compliance.RankByPriority(input, 0)
		second := compliance.RankByPriority(first, 0)

		gt.Value(t, ids(second)).Equal(ids(first))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		input := []model.ChecklistMetrics{
			metric("a", 1, 90),
			metric("b", 5, 50),
		}

		_ = compliance.RankByPriority(input, 0)

		gt.Value(t, input[0].ChecklistID).Equal(types.ChecklistID("a"))
		gt.Value(t, input[1].ChecklistID).Equal(types.ChecklistID("b"))
	})
}
