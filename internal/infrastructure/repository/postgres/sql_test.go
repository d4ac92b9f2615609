package postgres

import (
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/riskibarqy/football-explorer/internal/domain/football"
	qb "github.com/riskibarqy/football-explorer/internal/platform/querybuilder"
)

func TestIsUndefinedTable(t *testing.T) {
	t.Run("matches pq error code", func(t *testing.T) {
		err := &pq.Error{Code: "42P01", Message: `relation "matches" does not exist`}
		if !isUndefinedTable(err) {
			t.Fatalf("expected true for undefined table error")
		}
	})

	t.Run("matches code in message", func(t *testing.T) {
		err := fakeErr(`pq: relation "goal_events" does not exist (42P01)`)
		if !isUndefinedTable(err) {
			t.Fatalf("expected true for undefined table message")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isUndefinedTable(fakeErr("pq: connection refused")) {
			t.Fatalf("expected false for unrelated error")
		}
		if isUndefinedTable(nil) {
			t.Fatalf("expected false for nil error")
		}
	})
}

func TestNullConversions(t *testing.T) {
	if got := nullInt32ToPtr(sql.NullInt32{}); got != nil {
		t.Fatalf("expected nil minute, got %v", *got)
	}
	minute := 44
	if got := ptrToNullInt32(&minute); !got.Valid || got.Int32 != 44 {
		t.Fatalf("unexpected null int: %+v", got)
	}
	if got := stringToNullString("  "); got.Valid {
		t.Fatalf("blank scorer must be stored as NULL")
	}
}

func TestGoalEventModelRoundTrip(t *testing.T) {
	minute := 90
	in := football.GoalEvent{
		Date:     "2022-12-18",
		HomeTeam: "Argentina",
		AwayTeam: "France",
		Team:     "France",
		Scorer:   "Kylian Mbappé",
		Minute:   &minute,
		Penalty:  true,
	}

	row, err := newGoalEventTableModel(3, in)
	if err != nil {
		t.Fatalf("build goal row: %v", err)
	}
	if row.RowNo != 3 || !row.Scorer.Valid {
		t.Fatalf("unexpected row: %+v", row)
	}

	out := row.toDomain()
	if out.Date != in.Date || out.Scorer != in.Scorer || out.Minute == nil || *out.Minute != 90 || !out.Penalty {
		t.Fatalf("unexpected goal event: %+v", out)
	}
}

func TestMatchModelRejectsBadDate(t *testing.T) {
	if _, err := newMatchTableModel(1, football.Match{Date: "18/12/2022"}); err == nil {
		t.Fatalf("expected date parse error")
	}
}

func TestModelColumnsMatchMigration(t *testing.T) {
	cols, err := qb.Columns(matchTableModel{})
	if err != nil {
		t.Fatalf("match columns: %v", err)
	}
	want := []string{"row_no", "match_date", "home_team", "away_team", "home_score", "away_score", "tournament", "city", "country", "neutral"}
	if len(cols) != len(want) {
		t.Fatalf("unexpected match columns: %v", cols)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("unexpected match column %d: got=%s want=%s", i, cols[i], want[i])
		}
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
