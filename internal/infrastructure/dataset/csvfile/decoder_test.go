package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsCSV = "\ufeffdate,home_team,away_team,home_score,away_score,tournament,city,country,neutral\n" +
	"1872-11-30,Scotland,England,0,0,Friendly,Glasgow,Scotland,FALSE\n" +
	"2004-06-12,Portugal,Greece,1,2,UEFA Euro,Porto,Portugal,FALSE\n" +
	"2030-06-14,Spain,Morocco,NA,NA,FIFA World Cup,Madrid,Spain,TRUE\n"

const goalscorersCSV = "date,home_team,away_team,team,scorer,minute,own_goal,penalty\n" +
	"2004-06-12,Portugal,Greece,Greece,Giorgos Karagounis,7,FALSE,FALSE\n" +
	"2004-06-12,Portugal,Greece,Greece,Angelos Basinas,51,FALSE,TRUE\n" +
	"2004-06-12,Portugal,Greece,Portugal,Cristiano Ronaldo,NA,FALSE,FALSE\n" +
	"1950-07-16,Uruguay,Brazil,Uruguay,NA,79.0,FALSE,FALSE\n" +
	",Uruguay,Brazil,Uruguay,Ghiggia,79,FALSE,FALSE\n"

func TestDecode(t *testing.T) {
	t.Parallel()

	ds, report, err := Decode(strings.NewReader(resultsCSV), strings.NewReader(goalscorersCSV))
	require.NoError(t, err)

	assert.Equal(t, Report{Matches: 2, SkippedMatches: 1, Goals: 4, SkippedGoals: 1}, report)

	require.Len(t, ds.Matches, 2)
	assert.Equal(t, "1872-11-30", ds.Matches[0].Date)
	assert.Equal(t, "Greece", ds.Matches[1].AwayTeam)
	assert.Equal(t, 2, ds.Matches[1].AwayScore)
	assert.Equal(t, "Porto", ds.Matches[1].City)
	assert.False(t, ds.Matches[1].Neutral)

	require.Len(t, ds.Goals, 4)
	require.NotNil(t, ds.Goals[0].Minute)
	assert.Equal(t, 7, *ds.Goals[0].Minute)
	assert.True(t, ds.Goals[1].Penalty)
	assert.Nil(t, ds.Goals[2].Minute)
	assert.Equal(t, "", ds.Goals[3].Scorer)
	require.NotNil(t, ds.Goals[3].Minute)
	assert.Equal(t, 79, *ds.Goals[3].Minute)
}

func TestDecodeMatches_MissingColumn(t *testing.T) {
	t.Parallel()

	_, _, err := DecodeMatches(strings.NewReader("date,home_team,away_team\n2000-01-01,A,B\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "home_score")
}

func TestDecodeGoals_EmptyInput(t *testing.T) {
	t.Parallel()

	_, _, err := DecodeGoals(strings.NewReader(""))
	require.Error(t, err)
}

func TestSource_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ResultsFile), []byte(resultsCSV), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, GoalscorersFile), []byte(goalscorersCSV), 0o600))

	ds, err := NewSource(dir, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Matches, 2)
	assert.Len(t, ds.Goals, 4)
}

func TestSource_LoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewSource(t.TempDir(), nil).Load(context.Background())
	require.Error(t, err)
}
