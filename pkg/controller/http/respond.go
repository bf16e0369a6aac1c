package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/usecase"
	"github.com/sesmt-lab/sentinela/pkg/utils/errutil"
	"github.com/sesmt-lab/sentinela/pkg/utils/logging"
	"github.com/sesmt-lab/sentinela/pkg/utils/safe"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// errorStatus maps domain and usecase sentinels onto HTTP status codes
// and stable machine-readable codes.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrActivityRequired):
		return http.StatusBadRequest, "activity_required"
	case errors.Is(err, model.ErrQualitativeRequired):
		return http.StatusBadRequest, "qualitative_required"
	case errors.Is(err, model.ErrQuantitativeNotAllowed):
		return http.StatusBadRequest, "quantitative_not_allowed"
	case errors.Is(err, usecase.ErrScaleOutOfRange):
		return http.StatusBadRequest, "scale_out_of_range"
	case errors.Is(err, model.ErrEnvironmentFinalized):
		return http.StatusConflict, "environment_finalized"
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status, code := errorStatus(err)

	if status >= http.StatusInternalServerError {
		errutil.HandleHTTP(ctx, w, err, status)
		return
	}

	logging.From(ctx).Warn("request rejected",
		"status", status,
		"code", code,
		"error", err.Error(),
	)
	respondJSON(ctx, w, status, errorResponse{Error: err.Error(), Code: code})
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(err, "failed to decode request body")
	}
	return nil
}

func respondBadRequest(ctx context.Context, w http.ResponseWriter, err error) {
	logging.From(ctx).Warn("malformed request", "error", err.Error())
	respondJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "bad_request"})
}
