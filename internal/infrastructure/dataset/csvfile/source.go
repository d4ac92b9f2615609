package csvfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/riskibarqy/football-explorer/internal/domain/football"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
)

// Source loads results.csv and goalscorers.csv from a local directory.
type Source struct {
	dir    string
	logger *logging.Logger
}

func NewSource(dir string, logger *logging.Logger) *Source {
	if logger == nil {
		logger = logging.Default()
	}
	return &Source{dir: dir, logger: logger}
}

func (s *Source) Load(ctx context.Context) (football.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return football.Dataset{}, err
	}

	results, err := os.Open(filepath.Join(s.dir, ResultsFile))
	if err != nil {
		return football.Dataset{}, fmt.Errorf("open results file: %w", err)
	}
	defer results.Close()

	goalscorers, err := os.Open(filepath.Join(s.dir, GoalscorersFile))
	if err != nil {
		return football.Dataset{}, fmt.Errorf("open goalscorers file: %w", err)
	}
	defer goalscorers.Close()

	ds, report, err := Decode(results, goalscorers)
	if err != nil {
		return football.Dataset{}, err
	}

	s.logger.InfoContext(ctx, "dataset loaded from directory",
		"dir", s.dir,
		"matches", report.Matches,
		"skipped_matches", report.SkippedMatches,
		"goals", report.Goals,
		"skipped_goals", report.SkippedGoals,
	)
	return ds, nil
}
