package football

import (
	"fmt"
	"strings"
)

// Outcome is the result of a match from one team's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeDraw Outcome = "DRAW"
	OutcomeLoss Outcome = "LOSS"
)

// Match is one completed international fixture.
type Match struct {
	Date       string
	HomeTeam   string
	AwayTeam   string
	HomeScore  int
	AwayScore  int
	Tournament string
	City       string
	Country    string
	Neutral    bool
}

// MatchKey joins goal events to their match.
type MatchKey struct {
	Date     string
	HomeTeam string
	AwayTeam string
}

func (m Match) Key() MatchKey {
	return MatchKey{Date: m.Date, HomeTeam: m.HomeTeam, AwayTeam: m.AwayTeam}
}

// Year returns the first four characters of the match date.
func (m Match) Year() string {
	return yearOf(m.Date)
}

func (m Match) Involves(team string) bool {
	return m.HomeTeam == team || m.AwayTeam == team
}

// OutcomeFor reports the result for team. The second value is false when the
// team did not play the match.
func (m Match) OutcomeFor(team string) (Outcome, bool) {
	scored, conceded, ok := m.ScoreFor(team)
	if !ok {
		return "", false
	}
	switch {
	case scored > conceded:
		return OutcomeWin, true
	case scored < conceded:
		return OutcomeLoss, true
	default:
		return OutcomeDraw, true
	}
}

// ScoreFor returns goals scored and conceded by team.
func (m Match) ScoreFor(team string) (scored, conceded int, ok bool) {
	switch team {
	case m.HomeTeam:
		return m.HomeScore, m.AwayScore, true
	case m.AwayTeam:
		return m.AwayScore, m.HomeScore, true
	default:
		return 0, 0, false
	}
}

func (m Match) IsWinFor(team string) bool {
	return (m.HomeTeam == team && m.HomeScore > m.AwayScore) ||
		(m.AwayTeam == team && m.AwayScore > m.HomeScore)
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.Date) == "" {
		return fmt.Errorf("match date is required")
	}
	if strings.TrimSpace(m.HomeTeam) == "" || strings.TrimSpace(m.AwayTeam) == "" {
		return fmt.Errorf("match teams are required")
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("match scores must be >= 0")
	}

	return nil
}

// GoalEvent is one goal scored in a match. Scorer is empty and Minute is nil
// when the source does not know them.
type GoalEvent struct {
	Date     string
	HomeTeam string
	AwayTeam string
	Team     string
	Scorer   string
	Minute   *int
	OwnGoal  bool
	Penalty  bool
}

func (g GoalEvent) Key() MatchKey {
	return MatchKey{Date: g.Date, HomeTeam: g.HomeTeam, AwayTeam: g.AwayTeam}
}

func (g GoalEvent) Year() string {
	return yearOf(g.Date)
}

func (g GoalEvent) HasScorer() bool {
	return strings.TrimSpace(g.Scorer) != ""
}

func (g GoalEvent) Validate() error {
	if strings.TrimSpace(g.Date) == "" {
		return fmt.Errorf("goal date is required")
	}
	if strings.TrimSpace(g.Team) == "" {
		return fmt.Errorf("goal team is required")
	}
	if g.Minute != nil && *g.Minute < 0 {
		return fmt.Errorf("goal minute must be >= 0")
	}

	return nil
}

// Dataset is the pair of raw tables every derived table is computed from.
// It is never mutated after load.
type Dataset struct {
	Matches []Match
	Goals   []GoalEvent
}

func (d Dataset) IsEmpty() bool {
	return len(d.Matches) == 0 && len(d.Goals) == 0
}

func yearOf(date string) string {
	if len(date) < 4 {
		return date
	}
	return date[:4]
}
