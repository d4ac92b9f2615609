package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-explorer/internal/domain/insight"
	"github.com/riskibarqy/football-explorer/internal/usecase"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	req, err := h.bindCountryQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dashboard, err := h.explorer.Dashboard(ctx, usecase.DashboardInput{
		Country:      req.Country,
		TopN:         intOrZero(req.TopN),
		ScorerFormat: insight.ScorerFormat(req.ScorerFormat),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "country", req.Country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(ctx, dashboard))
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	req, err := h.bindCountryQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.explorer.Competitions(ctx, req.Country)
	if err != nil {
		h.logger.WarnContext(ctx, "list competitions failed", "country", req.Country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stringsOrEmpty(items))
}

func (h *Handler) ListWins(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWins")
	defer span.End()

	req, err := h.bindCountryQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.explorer.Wins(ctx, req.Country)
	if err != nil {
		h.logger.WarnContext(ctx, "list wins failed", "country", req.Country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, matchToDTO))
}

func (h *Handler) ListWinScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWinScorers")
	defer span.End()

	req, err := h.bindCountryQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.explorer.WinScorers(ctx, req.Country, insight.ScorerFormat(req.ScorerFormat))
	if err != nil {
		h.logger.WarnContext(ctx, "list win scorers failed", "country", req.Country, "format", req.ScorerFormat, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, scorerLineToDTO))
}

func (h *Handler) GetCityReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCityReport")
	defer span.End()

	req, err := h.bindCountryQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.explorer.Cities(ctx, req.Country)
	if err != nil {
		h.logger.WarnContext(ctx, "get city report failed", "country", req.Country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cityReportToDTO(report.WinsByCity, report.TopScorers, report.Summaries))
}

func (h *Handler) GetYearReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetYearReport")
	defer span.End()

	req, err := h.bindCountryQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.explorer.Years(ctx, req.Country)
	if err != nil {
		h.logger.WarnContext(ctx, "get year report failed", "country", req.Country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, yearReportToDTO(report.Wins, report.TopScorers))
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	req, err := h.bindCountryQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.explorer.TopScorers(ctx, req.Country, intOrZero(req.TopN))
	if err != nil {
		h.logger.WarnContext(ctx, "list top scorers failed", "country", req.Country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, scorerTotalToDTO))
}

func (h *Handler) ListHomeTeamTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHomeTeamTopScorers")
	defer span.End()

	req, err := h.bindCountryQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.explorer.HomeTeamTopScorers(ctx, req.Country, intOrZero(req.TopN))
	if err != nil {
		h.logger.WarnContext(ctx, "list home team top scorers failed", "country", req.Country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, homeTeamTopScorerToDTO))
}

func (h *Handler) ListCompetitionGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitionGoals")
	defer span.End()

	req, err := h.bindCountryQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.explorer.CompetitionGoals(ctx, req.Country, intOrZero(req.TopN))
	if err != nil {
		h.logger.WarnContext(ctx, "list competition goals failed", "country", req.Country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, competitionGoalsToDTO))
}

func (h *Handler) ListCompetitionResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitionResults")
	defer span.End()

	req, err := h.bindCountryQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.explorer.CompetitionResults(ctx, req.Country)
	if err != nil {
		h.logger.WarnContext(ctx, "list competition results failed", "country", req.Country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, competitionResultsToDTO))
}

func (h *Handler) GetCountryStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCountryStats")
	defer span.End()

	req, err := h.bindCountryQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.explorer.Stats(ctx, req.Country)
	if err != nil {
		h.logger.WarnContext(ctx, "get country stats failed", "country", req.Country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, countryStatsToDTO(stats))
}
