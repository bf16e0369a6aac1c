package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/service/reflimit"
	"github.com/sesmt-lab/sentinela/pkg/utils/logging"
)

// RefLimitRefreshWorker reloads the reference-limit table from its
// source file on an interval, so updated regulatory limits are picked up
// without a restart.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
type RefLimitRefreshWorker struct {
	table    *reflimit.StaticTable
	path     string
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewRefLimitRefreshWorker creates a worker refreshing the given table
// from the TOML file at path.
func NewRefLimitRefreshWorker(table *reflimit.StaticTable, path string, interval time.Duration) *RefLimitRefreshWorker {
	return &RefLimitRefreshWorker{
		table:    table,
		path:     path,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background refresh loop. It does not block server
// startup.
func (w *RefLimitRefreshWorker) Start(ctx context.Context) error {
	logging.Default().Info("Reference limit refresh worker starting",
		"path", w.path,
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion.
func (w *RefLimitRefreshWorker) Stop() {
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Reference limit refresh worker stopped")
}

func (w *RefLimitRefreshWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.refresh(ctx); err != nil {
				// Keep the previous table on failure; retry next interval
				logging.Default().Error("Reference limit refresh failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("Reference limit refresh worker context cancelled")
			return
		}
	}
}

func (w *RefLimitRefreshWorker) refresh(ctx context.Context) error {
	startTime := time.Now()

	refs, err := reflimit.LoadTable(w.path)
	if err != nil {
		return goerr.Wrap(err, "failed to reload reference limits", goerr.V("path", w.path))
	}

	w.table.Replace(refs)

	logging.From(ctx).Info("Reference limit refresh completed",
		"count", len(refs),
		"duration", time.Since(startTime).String())

	return nil
}
