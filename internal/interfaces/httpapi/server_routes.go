package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerBrowseRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/filters", handler.GetFilters)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/goals", handler.ListGoals)
	mux.HandleFunc("GET /v1/teams/fastest-scoring", handler.ListFastestScoringTeams)
}

func registerCountryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/countries/{country}/dashboard", handler.GetDashboard)
	mux.HandleFunc("GET /v1/countries/{country}/competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /v1/countries/{country}/competitions/goals", handler.ListCompetitionGoals)
	mux.HandleFunc("GET /v1/countries/{country}/competitions/results", handler.ListCompetitionResults)
	mux.HandleFunc("GET /v1/countries/{country}/wins", handler.ListWins)
	mux.HandleFunc("GET /v1/countries/{country}/wins/scorers", handler.ListWinScorers)
	mux.HandleFunc("GET /v1/countries/{country}/wins/cities", handler.GetCityReport)
	mux.HandleFunc("GET /v1/countries/{country}/wins/years", handler.GetYearReport)
	mux.HandleFunc("GET /v1/countries/{country}/scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/countries/{country}/scorers/home-teams", handler.ListHomeTeamTopScorers)
	mux.HandleFunc("GET /v1/countries/{country}/stats", handler.GetCountryStats)
}

func registerDatasetRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/dataset/reload", handler.ReloadDataset)
}
