package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/football-explorer/internal/usecase"
)

const maxReloadBodyBytes = 4 << 10

// ReloadDataset accepts an optional JSON body with a free-form reason that is
// only recorded in the log.
func (h *Handler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReloadDataset")
	defer span.End()

	var req reloadDatasetRequest
	if r.Body != nil && r.ContentLength != 0 {
		decoder := jsoniter.NewDecoder(io.LimitReader(r.Body, maxReloadBodyBytes))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
			return
		}
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.explorer.ReloadDataset(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reload dataset failed", "reason", req.Reason, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "dataset reload requested", "reason", req.Reason, "matches", summary.Matches, "goals", summary.Goals)
	writeSuccess(ctx, w, http.StatusOK, datasetSummaryDTO{Matches: summary.Matches, Goals: summary.Goals})
}
