// Package insight derives the explorer tables from the raw match and goal
// tables. Every function is pure: the same dataset and filters always give the
// same rows, and an empty selection gives an empty table rather than an error.
package insight

import "github.com/riskibarqy/football-explorer/internal/domain/football"

// MaxCityRows caps the wins-by-city tables.
const MaxCityRows = 20

// ScorerFormat selects how a match's scorers are summarized.
type ScorerFormat string

const (
	// ScorerFormatPerEvent renders every goal event as its own "(1 gol)" entry,
	// so a brace shows up as "P1 (1 gol), P1 (1 gol)".
	ScorerFormatPerEvent ScorerFormat = "per_event"
	// ScorerFormatAggregated folds a player's goals in the match into one entry.
	ScorerFormatAggregated ScorerFormat = "aggregated"
)

func (f ScorerFormat) Normalize() ScorerFormat {
	if f == ScorerFormatAggregated {
		return f
	}
	return ScorerFormatPerEvent
}

// ScorerLine is one won match with its formatted scorer summary.
type ScorerLine struct {
	Date      string
	HomeTeam  string
	AwayTeam  string
	City      string
	HomeScore int
	AwayScore int
	Scorers   string
}

type CityWins struct {
	City string
	Wins int
}

type CityTopScorer struct {
	City   string
	Scorer string
	Goals  int
}

type CityWinSummary struct {
	City      string
	Wins      int
	TopScorer string
}

type HomeTeamTopScorer struct {
	HomeTeam string
	Scorer   string
	Goals    int
}

type TeamAverageMinute struct {
	Team          string
	AverageMinute float64
	Goals         int
}

type YearWins struct {
	Year string
	Wins int
}

type YearTopScorer struct {
	Year   string
	Scorer string
	Goals  int
}

type CompetitionGoals struct {
	Tournament string
	HomeGoals  int
	AwayGoals  int
	TotalGoals int
}

type CompetitionResults struct {
	Tournament string
	Wins       int
	Draws      int
	Losses     int
	Total      int
	WinPct     float64
	DrawPct    float64
	LossPct    float64
}

// CountryStats aggregates a country's record over every match it played.
// OwnGoals counts own goals credited to the country, that is goals an
// opponent put into its own net. Own goals the country conceded are not
// included.
type CountryStats struct {
	Matches       int
	TotalGoals    int
	Wins          int
	Draws         int
	Losses        int
	PenaltyGoals  int
	OwnGoals      int
	GoalsConceded int
}

type ScorerTotal struct {
	Scorer string
	Goals  int
}

// FilterOptions lists the values a caller can pick from.
type FilterOptions struct {
	Countries   []string
	Cities      []string
	Tournaments []string
	Scorers     []string
}

type MatchFilter struct {
	Country    string
	City       string
	Tournament string
	Offset     int
	Limit      int
}

type GoalFilter struct {
	Team   string
	Scorer string
	Offset int
	Limit  int
}

// Page is a window over a filtered raw table. Total counts every matching row.
type Page[T any] struct {
	Items []T
	Total int
}

type joinedGoal struct {
	match football.Match
	goal  football.GoalEvent
}
