package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/football-explorer/internal/domain/football"
)

const (
	matchesTable    = "matches"
	goalEventsTable = "goal_events"
	dateLayout      = "2006-01-02"
)

// Row numbers keep the file order, which the derived tables depend on for
// their tie-breaks.
type matchTableModel struct {
	RowNo      int64     `db:"row_no"`
	MatchDate  time.Time `db:"match_date"`
	HomeTeam   string    `db:"home_team"`
	AwayTeam   string    `db:"away_team"`
	HomeScore  int       `db:"home_score"`
	AwayScore  int       `db:"away_score"`
	Tournament string    `db:"tournament"`
	City       string    `db:"city"`
	Country    string    `db:"country"`
	Neutral    bool      `db:"neutral"`
}

type goalEventTableModel struct {
	RowNo     int64          `db:"row_no"`
	MatchDate time.Time      `db:"match_date"`
	HomeTeam  string         `db:"home_team"`
	AwayTeam  string         `db:"away_team"`
	Team      string         `db:"team"`
	Scorer    sql.NullString `db:"scorer"`
	Minute    sql.NullInt32  `db:"minute"`
	OwnGoal   bool           `db:"own_goal"`
	Penalty   bool           `db:"penalty"`
}

func (m matchTableModel) toDomain() football.Match {
	return football.Match{
		Date:       m.MatchDate.Format(dateLayout),
		HomeTeam:   m.HomeTeam,
		AwayTeam:   m.AwayTeam,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		Tournament: m.Tournament,
		City:       m.City,
		Country:    m.Country,
		Neutral:    m.Neutral,
	}
}

func (m goalEventTableModel) toDomain() football.GoalEvent {
	return football.GoalEvent{
		Date:     m.MatchDate.Format(dateLayout),
		HomeTeam: m.HomeTeam,
		AwayTeam: m.AwayTeam,
		Team:     m.Team,
		Scorer:   m.Scorer.String,
		Minute:   nullInt32ToPtr(m.Minute),
		OwnGoal:  m.OwnGoal,
		Penalty:  m.Penalty,
	}
}

func newMatchTableModel(rowNo int64, m football.Match) (matchTableModel, error) {
	date, err := parseDate(m.Date)
	if err != nil {
		return matchTableModel{}, err
	}
	return matchTableModel{
		RowNo:      rowNo,
		MatchDate:  date,
		HomeTeam:   m.HomeTeam,
		AwayTeam:   m.AwayTeam,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		Tournament: m.Tournament,
		City:       m.City,
		Country:    m.Country,
		Neutral:    m.Neutral,
	}, nil
}

func newGoalEventTableModel(rowNo int64, g football.GoalEvent) (goalEventTableModel, error) {
	date, err := parseDate(g.Date)
	if err != nil {
		return goalEventTableModel{}, err
	}
	return goalEventTableModel{
		RowNo:     rowNo,
		MatchDate: date,
		HomeTeam:  g.HomeTeam,
		AwayTeam:  g.AwayTeam,
		Team:      g.Team,
		Scorer:    stringToNullString(g.Scorer),
		Minute:    ptrToNullInt32(g.Minute),
		OwnGoal:   g.OwnGoal,
		Penalty:   g.Penalty,
	}, nil
}
