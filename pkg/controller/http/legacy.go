package http

import (
	"context"
	"net/http"

	"github.com/sesmt-lab/sentinela/pkg/service/legacy"
	"github.com/sesmt-lab/sentinela/pkg/utils/async"
	"github.com/sesmt-lab/sentinela/pkg/utils/errutil"
)

type legacyImportResponse struct {
	Accepted int `json:"accepted"`
}

// importLegacy accepts a batch of legacy records and migrates them in
// the background. The response only acknowledges receipt; progress is
// reported through logs.
func (s *Server) importLegacy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var records []legacy.Record
	if err := decodeJSON(r, &records); err != nil {
		respondBadRequest(ctx, w, err)
		return
	}

	uc := s.uc.Legacy
	async.Dispatch(ctx, func(ctx context.Context) error {
		if _, err := uc.ImportRecords(ctx, records); err != nil {
			return errutil.Handle(ctx, err, "legacy import failed")
		}
		return nil
	})

	respondJSON(ctx, w, http.StatusAccepted, legacyImportResponse{Accepted: len(records)})
}
