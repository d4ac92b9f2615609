package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-explorer/internal/domain/football"
	"github.com/riskibarqy/football-explorer/internal/domain/insight"
	"github.com/sourcegraph/conc/panics"
)

type DashboardInput struct {
	Country      string
	TopN         int
	ScorerFormat insight.ScorerFormat
}

// Dashboard holds every table shown for one country. A section that failed
// stays at its zero value and is listed in Failures.
type Dashboard struct {
	Country             string
	TopN                int
	Competitions        []string
	Wins                []football.Match
	ScorerLines         []insight.ScorerLine
	WinsByCity          []insight.CityWins
	TopScorerByCity     []insight.CityTopScorer
	CityWinSummaries    []insight.CityWinSummary
	TopScorerByHomeTeam []insight.HomeTeamTopScorer
	FastestScoringTeams []insight.TeamAverageMinute
	WinsPerYear         []insight.YearWins
	TopScorerPerYear    []insight.YearTopScorer
	GoalsPerCompetition []insight.CompetitionGoals
	ResultBreakdown     []insight.CompetitionResults
	Stats               insight.CountryStats
	TopScorers          []insight.ScorerTotal
	Failures            []SectionFailure
}

type SectionFailure struct {
	Section string
	Message string
}

type dashboardSection struct {
	name string
	fill func(ds football.Dataset, in DashboardInput, out *Dashboard)
}

var dashboardSections = []dashboardSection{
	{name: "competitions", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.Competitions = insight.CompetitionsFor(ds.Matches, in.Country)
	}},
	{name: "wins", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.Wins = insight.WinsFor(ds.Matches, in.Country)
	}},
	{name: "scorer_lines", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.ScorerLines = insight.MatchesWithScorers(ds, in.Country, in.ScorerFormat)
	}},
	{name: "wins_by_city", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.WinsByCity = insight.WinsByCity(ds.Matches, in.Country)
	}},
	{name: "top_scorer_by_city", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.TopScorerByCity = insight.TopScorerByCity(ds, in.Country)
	}},
	{name: "city_win_summaries", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.CityWinSummaries = insight.CityWinSummaries(ds, in.Country)
	}},
	{name: "top_scorer_by_home_team", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.TopScorerByHomeTeam = insight.TopScorerByHomeTeam(ds, in.Country, in.TopN)
	}},
	{name: "fastest_scoring_teams", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.FastestScoringTeams = insight.FastestAverageScoringTeams(ds.Goals, in.TopN)
	}},
	{name: "wins_per_year", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.WinsPerYear = insight.WinsPerYear(ds.Matches, in.Country)
	}},
	{name: "top_scorer_per_year", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.TopScorerPerYear = insight.TopScorerPerYear(ds.Goals, in.Country)
	}},
	{name: "goals_per_competition", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.GoalsPerCompetition = insight.GoalsPerCompetition(ds.Matches, in.Country, in.TopN)
	}},
	{name: "result_breakdown", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.ResultBreakdown = insight.ResultBreakdownPerCompetition(ds.Matches, in.Country)
	}},
	{name: "stats", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.Stats = insight.CountryStatsFor(ds, in.Country)
	}},
	{name: "top_scorers", fill: func(ds football.Dataset, in DashboardInput, out *Dashboard) {
		out.TopScorers = insight.TopScorersOverall(ds.Goals, in.Country, in.TopN)
	}},
}

// Dashboard computes every table for one country. Only input validation and
// dataset loading can fail the whole call.
func (s *ExplorerService) Dashboard(ctx context.Context, in DashboardInput) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExplorerService.Dashboard", countryAttr(in.Country))
	defer span.End()

	topN, err := s.resolveTopN(in.TopN)
	if err != nil {
		return Dashboard{}, err
	}
	format, err := parseScorerFormat(in.ScorerFormat)
	if err != nil {
		return Dashboard{}, err
	}
	country, ds, err := s.loadForCountry(ctx, in.Country)
	if err != nil {
		return Dashboard{}, err
	}

	in = DashboardInput{Country: country, TopN: topN, ScorerFormat: format}
	return s.buildDashboard(ctx, ds, in, dashboardSections), nil
}

func (s *ExplorerService) buildDashboard(ctx context.Context, ds football.Dataset, in DashboardInput, sections []dashboardSection) Dashboard {
	out := Dashboard{
		Country:  in.Country,
		TopN:     in.TopN,
		Failures: make([]SectionFailure, 0),
	}

	for _, section := range sections {
		var catcher panics.Catcher
		catcher.Try(func() {
			section.fill(ds, in, &out)
		})
		if recovered := catcher.Recovered(); recovered != nil {
			s.logger.ErrorContext(ctx, "dashboard section failed",
				"section", section.name,
				"country", in.Country,
				"error", recovered.AsError(),
			)
			out.Failures = append(out.Failures, SectionFailure{
				Section: section.name,
				Message: fmt.Sprint(recovered.Value),
			})
		}
	}

	return out
}
