// Package csvfile reads the results and goalscorers CSV files into the
// football domain model.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-explorer/internal/domain/football"
)

const (
	ResultsFile     = "results.csv"
	GoalscorersFile = "goalscorers.csv"
)

const unknownValue = "NA"

var (
	matchRequiredColumns = []string{"date", "home_team", "away_team", "home_score", "away_score", "tournament", "city"}
	goalRequiredColumns  = []string{"date", "home_team", "away_team", "team", "scorer"}
)

// Report counts what a decode kept and skipped.
type Report struct {
	Matches        int
	SkippedMatches int
	Goals          int
	SkippedGoals   int
}

// Decode reads both tables. Match rows without integer scores (fixtures not
// played yet) and goal rows without a date or team are skipped and counted.
func Decode(results, goalscorers io.Reader) (football.Dataset, Report, error) {
	matches, skippedMatches, err := DecodeMatches(results)
	if err != nil {
		return football.Dataset{}, Report{}, fmt.Errorf("decode %s: %w", ResultsFile, err)
	}
	goals, skippedGoals, err := DecodeGoals(goalscorers)
	if err != nil {
		return football.Dataset{}, Report{}, fmt.Errorf("decode %s: %w", GoalscorersFile, err)
	}

	return football.Dataset{Matches: matches, Goals: goals}, Report{
		Matches:        len(matches),
		SkippedMatches: skippedMatches,
		Goals:          len(goals),
		SkippedGoals:   skippedGoals,
	}, nil
}

func DecodeMatches(r io.Reader) ([]football.Match, int, error) {
	out := make([]football.Match, 0)
	skipped := 0
	err := readRows(r, matchRequiredColumns, func(row rowReader) {
		homeScore, homeOK := parseScore(row.get("home_score"))
		awayScore, awayOK := parseScore(row.get("away_score"))
		if !homeOK || !awayOK {
			skipped++
			return
		}

		m := football.Match{
			Date:       row.get("date"),
			HomeTeam:   row.get("home_team"),
			AwayTeam:   row.get("away_team"),
			HomeScore:  homeScore,
			AwayScore:  awayScore,
			Tournament: row.get("tournament"),
			City:       row.get("city"),
			Country:    row.get("country"),
			Neutral:    parseBool(row.get("neutral")),
		}
		if m.Validate() != nil {
			skipped++
			return
		}
		out = append(out, m)
	})
	if err != nil {
		return nil, 0, err
	}
	return out, skipped, nil
}

func DecodeGoals(r io.Reader) ([]football.GoalEvent, int, error) {
	out := make([]football.GoalEvent, 0)
	skipped := 0
	err := readRows(r, goalRequiredColumns, func(row rowReader) {
		g := football.GoalEvent{
			Date:     row.get("date"),
			HomeTeam: row.get("home_team"),
			AwayTeam: row.get("away_team"),
			Team:     row.get("team"),
			Scorer:   optional(row.get("scorer")),
			Minute:   parseMinute(row.get("minute")),
			OwnGoal:  parseBool(row.get("own_goal")),
			Penalty:  parseBool(row.get("penalty")),
		}
		if g.Validate() != nil {
			skipped++
			return
		}
		out = append(out, g)
	})
	if err != nil {
		return nil, 0, err
	}
	return out, skipped, nil
}

type rowReader struct {
	columns map[string]int
	record  []string
}

func (r rowReader) get(column string) string {
	idx, ok := r.columns[column]
	if !ok || idx >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[idx])
}

func readRows(r io.Reader, required []string, fn func(rowReader)) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("missing header row")
		}
		return fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		columns[name] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return fmt.Errorf("missing required column %q", name)
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		fn(rowReader{columns: columns, record: record})
	}
}

func optional(value string) string {
	if strings.EqualFold(value, unknownValue) {
		return ""
	}
	return value
}

func parseScore(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseMinute accepts "44" and "44.0"; anything else is unknown.
func parseMinute(value string) *int {
	value = optional(value)
	if value == "" {
		return nil
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 0 {
		return &n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil && f >= 0 {
		n := int(f)
		return &n
	}
	return nil
}

func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "yes", "t":
		return true
	default:
		return false
	}
}
