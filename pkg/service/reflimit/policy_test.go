package reflimit_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/sesmt-lab/sentinela/pkg/domain/types"
	"github.com/sesmt-lab/sentinela/pkg/service/reflimit"
)

func noiseTable() *reflimit.StaticTable {
	return reflimit.NewStaticTable([]reflimit.Reference{
		{Type: "ruido", Unit: "dB(A)", ActionLevel: 80, Limit: 85},
	})
}

func TestStaticTableCompare(t *testing.T) {
	table := noiseTable()

	t.Run("below action level", func(t *testing.T) {
		c, err := table.Compare("ruido", 75, "dB(A)")
		gt.NoError(t, err).Required()
		gt.Value(t, c).Equal(types.ComparisonBelow)
	})

	t.Run("at action level is near", func(t *testing.T) {
		c, err := table.Compare("ruido", 80, "dB(A)")
		gt.NoError(t, err).Required()
		gt.Value(t, c).Equal(types.ComparisonNear)
	})

	t.Run("at limit is near", func(t *testing.T) {
		c, err := table.Compare("ruido", 85, "dB(A)")
		gt.NoError(t, err).Required()
		gt.Value(t, c).Equal(types.ComparisonNear)
	})

	t.Run("above limit", func(t *testing.T) {
		c, err := table.Compare("ruido", 90, "dB(A)")
		gt.NoError(t, err).Required()
		gt.Value(t, c).Equal(types.ComparisonAbove)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := table.Compare("poeira", 1, "mg/m3")
		gt.Bool(t, errors.Is(err, reflimit.ErrNoReference)).True()
	})

	t.Run("same type different unit is unknown", func(t *testing.T) {
		_, err := table.Compare("ruido", 80, "dB(C)")
		gt.Bool(t, errors.Is(err, reflimit.ErrNoReference)).True()
	})
}

func TestStaticTableReplace(t *testing.T) {
	table := noiseTable()
	gt.Value(t, table.Len()).Equal(1)

	table.Replace([]reflimit.Reference{
		{Type: "ruido", Unit: "dB(A)", ActionLevel: 78, Limit: 83},
		{Type: "poeira", Unit: "mg/m3", ActionLevel: 1.5, Limit: 3},
	})
	gt.Value(t, table.Len()).Equal(2)

	c, err := table.Compare("ruido", 84, "dB(A)")
	gt.NoError(t, err).Required()
	gt.Value(t, c).Equal(types.ComparisonAbove)
}

func writeTempTOML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reflimit.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadTable(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeTempTOML(t, `
[[reference]]
type = "ruido"
unit = "dB(A)"
action_level = 80.0
limit = 85.0

[[reference]]
type = "poeira"
unit = "mg/m3"
action_level = 1.5
limit = 3.0
`)
		refs, err := reflimit.LoadTable(path)
		gt.NoError(t, err).Required()
		gt.Array(t, refs).Length(2)
	})

	t.Run("non-positive limit is rejected", func(t *testing.T) {
		path := writeTempTOML(t, `
[[reference]]
type = "ruido"
unit = "dB(A)"
action_level = 0.0
limit = 0.0
`)
		_, err := reflimit.LoadTable(path)
		gt.Error(t, err)
	})

	t.Run("action level above limit is rejected", func(t *testing.T) {
		path := writeTempTOML(t, `
[[reference]]
type = "ruido"
unit = "dB(A)"
action_level = 90.0
limit = 85.0
`)
		_, err := reflimit.LoadTable(path)
		gt.Error(t, err)
	})

	t.Run("duplicate type and unit is rejected", func(t *testing.T) {
		path := writeTempTOML(t, `
[[reference]]
type = "ruido"
unit = "dB(A)"
action_level = 80.0
limit = 85.0

[[reference]]
type = "ruido"
unit = "dB(A)"
action_level = 78.0
limit = 83.0
`)
		_, err := reflimit.LoadTable(path)
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := reflimit.LoadTable(filepath.Join(t.TempDir(), "missing.toml"))
		gt.Error(t, err)
	})
}
