package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/football-explorer/internal/domain/insight"
)

func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFilters")
	defer span.End()

	options, err := h.explorer.Options(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get filter options failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, filterOptionsToDTO(options))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := r.URL.Query()
	page, err := h.bindPageQuery(ctx, query)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := insight.MatchFilter{
		Country:    strings.TrimSpace(query.Get("country")),
		City:       strings.TrimSpace(query.Get("city")),
		Tournament: strings.TrimSpace(query.Get("tournament")),
		Offset:     intOrZero(page.Offset),
		Limit:      intOrZero(page.Limit),
	}
	result, err := h.explorer.ListMatches(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "country", filter.Country, "city", filter.City, "tournament", filter.Tournament, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pageDTO[matchDTO]{
		Items: mapSlice(result.Items, matchToDTO),
		Total: result.Total,
	})
}

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGoals")
	defer span.End()

	query := r.URL.Query()
	page, err := h.bindPageQuery(ctx, query)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := insight.GoalFilter{
		Team:   strings.TrimSpace(query.Get("team")),
		Scorer: strings.TrimSpace(query.Get("scorer")),
		Offset: intOrZero(page.Offset),
		Limit:  intOrZero(page.Limit),
	}
	result, err := h.explorer.ListGoals(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list goals failed", "team", filter.Team, "scorer", filter.Scorer, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pageDTO[goalEventDTO]{
		Items: mapSlice(result.Items, goalEventToDTO),
		Total: result.Total,
	})
}

func (h *Handler) ListFastestScoringTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFastestScoringTeams")
	defer span.End()

	topN, err := queryInt(r.URL.Query(), "top_n")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, topNQuery{TopN: topN}); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.explorer.FastestScoringTeams(ctx, intOrZero(topN))
	if err != nil {
		h.logger.WarnContext(ctx, "list fastest scoring teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, teamAverageMinuteToDTO))
}
