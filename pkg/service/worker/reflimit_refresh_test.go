package worker_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/sesmt-lab/sentinela/pkg/service/reflimit"
	"github.com/sesmt-lab/sentinela/pkg/service/worker"
)

func writeReflimitFile(t *testing.T, path, content string) {
	t.Helper()
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
}

func TestRefLimitRefreshWorker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reflimit.toml")
	writeReflimitFile(t, path, `
[[reference]]
type = "ruido"
unit = "dB(A)"
action_level = 80.0
limit = 85.0
`)

	refs, err := reflimit.LoadTable(path)
	gt.NoError(t, err).Required()
	table := reflimit.NewStaticTable(refs)
	gt.Value(t, table.Len()).Equal(1)

	w := worker.NewRefLimitRefreshWorker(table, path, 10*time.Millisecond)
	gt.NoError(t, w.Start(context.Background())).Required()
	defer w.Stop()

	writeReflimitFile(t, path, `
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

	deadline := time.Now().Add(3 * time.Second)
	for table.Len() != 2 {
		if time.Now().After(deadline) {
			t.Fatalf("table was not refreshed, len=%d", table.Len())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRefLimitRefreshWorkerKeepsTableOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reflimit.toml")
	writeReflimitFile(t, path, `
[[reference]]
type = "ruido"
unit = "dB(A)"
action_level = 80.0
limit = 85.0
`)

	refs, err := reflimit.LoadTable(path)
	gt.NoError(t, err).Required()
	table := reflimit.NewStaticTable(refs)

	w := worker.NewRefLimitRefreshWorker(table, path, 10*time.Millisecond)
	gt.NoError(t, w.Start(context.Background())).Required()

	// Break the file; the worker must keep serving the last good table.
	writeReflimitFile(t, path, "[[reference")
	time.Sleep(50 * time.Millisecond)

	w.Stop()
	gt.Value(t, table.Len()).Equal(1)
}
