package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/football-explorer/internal/config"
	"github.com/riskibarqy/football-explorer/internal/infrastructure/dataset/csvfile"
	"github.com/riskibarqy/football-explorer/internal/infrastructure/dataset/remote"
	"github.com/riskibarqy/football-explorer/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	results := "date,home_team,away_team,home_score,away_score,tournament,city,country,neutral\n" +
		"1950-07-16,Uruguay,Brazil,2,1,FIFA World Cup,Rio de Janeiro,Brazil,TRUE\n"
	goals := "date,home_team,away_team,team,scorer,minute,own_goal,penalty\n" +
		"1950-07-16,Uruguay,Brazil,Uruguay,Alcides Ghiggia,79,FALSE,FALSE\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, csvfile.ResultsFile), []byte(results), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, csvfile.GoalscorersFile), []byte(goals), 0o600))
	return dir
}

func TestNewFileSource(t *testing.T) {
	src, err := NewFileSource(config.Config{DatasetSource: config.DatasetSourceCSV, DatasetDir: "./data"}, logging.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &csvfile.Source{}, src)

	src, err = NewFileSource(config.Config{
		DatasetSource:  config.DatasetSourceHTTP,
		DatasetBaseURL: "https://example.com/data",
	}, logging.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &remote.Source{}, src)

	_, err = NewFileSource(config.Config{DatasetSource: config.DatasetSourceHTTP}, logging.NewNop())
	require.Error(t, err)
}

func TestNewDatasetStack_CacheWrapsSource(t *testing.T) {
	cfg := config.Config{
		DatasetSource: config.DatasetSourceCSV,
		DatasetDir:    writeDataset(t),
		CacheEnabled:  true,
		CacheTTL:      time.Minute,
	}

	stack, err := newDatasetStack(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &cache.DatasetRepository{}, stack.repo)
	require.NotNil(t, stack.invalidator)
	require.NoError(t, stack.close())

	ds, err := stack.repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Matches, 1)
	assert.Equal(t, "Uruguay", ds.Matches[0].HomeTeam)
}

func TestNewHTTPServer_ServesDashboard(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:      ":0",
		DatasetSource: config.DatasetSourceCSV,
		DatasetDir:    writeDataset(t),
		DefaultTopN:   10,
	}

	server, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/countries/Uruguay/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"wins":1`)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	_, _, err := NewHTTPServer(context.Background(), config.Config{}, logging.NewNop())
	require.Error(t, err)
}
