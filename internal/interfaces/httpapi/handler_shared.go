package httpapi

import (
	"context"

	"github.com/riskibarqy/football-explorer/internal/domain/football"
	"github.com/riskibarqy/football-explorer/internal/domain/insight"
	"github.com/riskibarqy/football-explorer/internal/usecase"
)

type countryQuery struct {
	Country      string `validate:"required,max=100"`
	TopN         *int   `validate:"omitempty,min=1,max=50"`
	ScorerFormat string `validate:"omitempty,oneof=per_event aggregated"`
}

type pageQuery struct {
	Offset *int `validate:"omitempty,min=0"`
	Limit  *int `validate:"omitempty,min=1,max=500"`
}

type topNQuery struct {
	TopN *int `validate:"omitempty,min=1,max=50"`
}

type reloadDatasetRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=200"`
}

type filterOptionsDTO struct {
	Countries   []string `json:"countries"`
	Cities      []string `json:"cities"`
	Tournaments []string `json:"tournaments"`
	Scorers     []string `json:"scorers"`
}

type matchDTO struct {
	Date       string `json:"date"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
	Tournament string `json:"tournament"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Neutral    bool   `json:"neutral"`
}

type goalEventDTO struct {
	Date     string `json:"date"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Team     string `json:"team"`
	Scorer   string `json:"scorer,omitempty"`
	Minute   *int   `json:"minute,omitempty"`
	OwnGoal  bool   `json:"own_goal"`
	Penalty  bool   `json:"penalty"`
}

type pageDTO[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

type scorerLineDTO struct {
	Date      string `json:"date"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	City      string `json:"city"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Scorers   string `json:"scorers"`
}

type cityWinsDTO struct {
	City string `json:"city"`
	Wins int    `json:"wins"`
}

type cityTopScorerDTO struct {
	City   string `json:"city"`
	Scorer string `json:"scorer"`
	Goals  int    `json:"goals"`
}

type cityWinSummaryDTO struct {
	City      string `json:"city"`
	Wins      int    `json:"wins"`
	TopScorer string `json:"top_scorer"`
}

type cityReportDTO struct {
	WinsByCity []cityWinsDTO       `json:"wins_by_city"`
	TopScorers []cityTopScorerDTO  `json:"top_scorers"`
	Summaries  []cityWinSummaryDTO `json:"summaries"`
}

type homeTeamTopScorerDTO struct {
	HomeTeam string `json:"home_team"`
	Scorer   string `json:"scorer"`
	Goals    int    `json:"goals"`
}

type teamAverageMinuteDTO struct {
	Team          string  `json:"team"`
	AverageMinute float64 `json:"average_minute"`
	Goals         int     `json:"goals"`
}

type yearWinsDTO struct {
	Year string `json:"year"`
	Wins int    `json:"wins"`
}

type yearTopScorerDTO struct {
	Year   string `json:"year"`
	Scorer string `json:"scorer"`
	Goals  int    `json:"goals"`
}

type yearReportDTO struct {
	Wins       []yearWinsDTO      `json:"wins"`
	TopScorers []yearTopScorerDTO `json:"top_scorers"`
}

type competitionGoalsDTO struct {
	Tournament string `json:"tournament"`
	HomeGoals  int    `json:"home_goals"`
	AwayGoals  int    `json:"away_goals"`
	TotalGoals int    `json:"total_goals"`
}

type competitionResultsDTO struct {
	Tournament string  `json:"tournament"`
	Wins       int     `json:"wins"`
	Draws      int     `json:"draws"`
	Losses     int     `json:"losses"`
	Total      int     `json:"total"`
	WinPct     float64 `json:"win_pct"`
	DrawPct    float64 `json:"draw_pct"`
	LossPct    float64 `json:"loss_pct"`
}

type countryStatsDTO struct {
	Matches       int `json:"matches"`
	TotalGoals    int `json:"total_goals"`
	Wins          int `json:"wins"`
	Draws         int `json:"draws"`
	Losses        int `json:"losses"`
	PenaltyGoals  int `json:"penalty_goals"`
	OwnGoals      int `json:"own_goals"`
	GoalsConceded int `json:"goals_conceded"`
}

type scorerTotalDTO struct {
	Scorer string `json:"scorer"`
	Goals  int    `json:"goals"`
}

type sectionFailureDTO struct {
	Section string `json:"section"`
	Message string `json:"message"`
}

type dashboardDTO struct {
	Country             string                  `json:"country"`
	TopN                int                     `json:"top_n"`
	Stats               countryStatsDTO         `json:"stats"`
	Competitions        []string                `json:"competitions"`
	Wins                []matchDTO              `json:"wins"`
	ScorerLines         []scorerLineDTO         `json:"scorer_lines"`
	Cities              cityReportDTO           `json:"cities"`
	TopScorerByHomeTeam []homeTeamTopScorerDTO  `json:"top_scorer_by_home_team"`
	FastestScoringTeams []teamAverageMinuteDTO  `json:"fastest_scoring_teams"`
	Years               yearReportDTO           `json:"years"`
	GoalsPerCompetition []competitionGoalsDTO   `json:"goals_per_competition"`
	ResultBreakdown     []competitionResultsDTO `json:"result_breakdown"`
	TopScorers          []scorerTotalDTO        `json:"top_scorers"`
	Failures            []sectionFailureDTO     `json:"failures,omitempty"`
}

type datasetSummaryDTO struct {
	Matches int `json:"matches"`
	Goals   int `json:"goals"`
}

// mapSlice always returns a non-nil slice so empty tables encode as [].
func mapSlice[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func stringsOrEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func filterOptionsToDTO(v insight.FilterOptions) filterOptionsDTO {
	return filterOptionsDTO{
		Countries:   stringsOrEmpty(v.Countries),
		Cities:      stringsOrEmpty(v.Cities),
		Tournaments: stringsOrEmpty(v.Tournaments),
		Scorers:     stringsOrEmpty(v.Scorers),
	}
}

func matchToDTO(v football.Match) matchDTO {
	return matchDTO{
		Date:       v.Date,
		HomeTeam:   v.HomeTeam,
		AwayTeam:   v.AwayTeam,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
		Tournament: v.Tournament,
		City:       v.City,
		Country:    v.Country,
		Neutral:    v.Neutral,
	}
}

func goalEventToDTO(v football.GoalEvent) goalEventDTO {
	return goalEventDTO{
		Date:     v.Date,
		HomeTeam: v.HomeTeam,
		AwayTeam: v.AwayTeam,
		Team:     v.Team,
		Scorer:   v.Scorer,
		Minute:   v.Minute,
		OwnGoal:  v.OwnGoal,
		Penalty:  v.Penalty,
	}
}

func scorerLineToDTO(v insight.ScorerLine) scorerLineDTO {
	return scorerLineDTO{
		Date:      v.Date,
		HomeTeam:  v.HomeTeam,
		AwayTeam:  v.AwayTeam,
		City:      v.City,
		HomeScore: v.HomeScore,
		AwayScore: v.AwayScore,
		Scorers:   v.Scorers,
	}
}

func cityReportToDTO(wins []insight.CityWins, scorers []insight.CityTopScorer, summaries []insight.CityWinSummary) cityReportDTO {
	return cityReportDTO{
		WinsByCity: mapSlice(wins, func(v insight.CityWins) cityWinsDTO {
			return cityWinsDTO{City: v.City, Wins: v.Wins}
		}),
		TopScorers: mapSlice(scorers, func(v insight.CityTopScorer) cityTopScorerDTO {
			return cityTopScorerDTO{City: v.City, Scorer: v.Scorer, Goals: v.Goals}
		}),
		Summaries: mapSlice(summaries, func(v insight.CityWinSummary) cityWinSummaryDTO {
			return cityWinSummaryDTO{City: v.City, Wins: v.Wins, TopScorer: v.TopScorer}
		}),
	}
}

func yearReportToDTO(wins []insight.YearWins, scorers []insight.YearTopScorer) yearReportDTO {
	return yearReportDTO{
		Wins: mapSlice(wins, func(v insight.YearWins) yearWinsDTO {
			return yearWinsDTO{Year: v.Year, Wins: v.Wins}
		}),
		TopScorers: mapSlice(scorers, func(v insight.YearTopScorer) yearTopScorerDTO {
			return yearTopScorerDTO{Year: v.Year, Scorer: v.Scorer, Goals: v.Goals}
		}),
	}
}

func homeTeamTopScorerToDTO(v insight.HomeTeamTopScorer) homeTeamTopScorerDTO {
	return homeTeamTopScorerDTO{HomeTeam: v.HomeTeam, Scorer: v.Scorer, Goals: v.Goals}
}

func teamAverageMinuteToDTO(v insight.TeamAverageMinute) teamAverageMinuteDTO {
	return teamAverageMinuteDTO{Team: v.Team, AverageMinute: v.AverageMinute, Goals: v.Goals}
}

func competitionGoalsToDTO(v insight.CompetitionGoals) competitionGoalsDTO {
	return competitionGoalsDTO{
		Tournament: v.Tournament,
		HomeGoals:  v.HomeGoals,
		AwayGoals:  v.AwayGoals,
		TotalGoals: v.TotalGoals,
	}
}

func competitionResultsToDTO(v insight.CompetitionResults) competitionResultsDTO {
	return competitionResultsDTO{
		Tournament: v.Tournament,
		Wins:       v.Wins,
		Draws:      v.Draws,
		Losses:     v.Losses,
		Total:      v.Total,
		WinPct:     v.WinPct,
		DrawPct:    v.DrawPct,
		LossPct:    v.LossPct,
	}
}

func countryStatsToDTO(v insight.CountryStats) countryStatsDTO {
	return countryStatsDTO{
		Matches:       v.Matches,
		TotalGoals:    v.TotalGoals,
		Wins:          v.Wins,
		Draws:         v.Draws,
		Losses:        v.Losses,
		PenaltyGoals:  v.PenaltyGoals,
		OwnGoals:      v.OwnGoals,
		GoalsConceded: v.GoalsConceded,
	}
}

func scorerTotalToDTO(v insight.ScorerTotal) scorerTotalDTO {
	return scorerTotalDTO{Scorer: v.Scorer, Goals: v.Goals}
}

func dashboardToDTO(ctx context.Context, v usecase.Dashboard) dashboardDTO {
	_, span := startSpan(ctx, "httpapi.dashboardToDTO")
	defer span.End()

	out := dashboardDTO{
		Country:             v.Country,
		TopN:                v.TopN,
		Stats:               countryStatsToDTO(v.Stats),
		Competitions:        stringsOrEmpty(v.Competitions),
		Wins:                mapSlice(v.Wins, matchToDTO),
		ScorerLines:         mapSlice(v.ScorerLines, scorerLineToDTO),
		Cities:              cityReportToDTO(v.WinsByCity, v.TopScorerByCity, v.CityWinSummaries),
		TopScorerByHomeTeam: mapSlice(v.TopScorerByHomeTeam, homeTeamTopScorerToDTO),
		FastestScoringTeams: mapSlice(v.FastestScoringTeams, teamAverageMinuteToDTO),
		Years:               yearReportToDTO(v.WinsPerYear, v.TopScorerPerYear),
		GoalsPerCompetition: mapSlice(v.GoalsPerCompetition, competitionGoalsToDTO),
		ResultBreakdown:     mapSlice(v.ResultBreakdown, competitionResultsToDTO),
		TopScorers:          mapSlice(v.TopScorers, scorerTotalToDTO),
	}
	for _, failure := range v.Failures {
		out.Failures = append(out.Failures, sectionFailureDTO{Section: failure.Section, Message: failure.Message})
	}
	return out
}
