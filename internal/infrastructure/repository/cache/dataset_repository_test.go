package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/football-explorer/internal/domain/football"
	footballmock "github.com/riskibarqy/football-explorer/internal/mocks/domain/football"
	basecache "github.com/riskibarqy/football-explorer/internal/platform/cache"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleDataset() football.Dataset {
	return football.Dataset{
		Matches: []football.Match{{Date: "1998-07-12", HomeTeam: "Brazil", AwayTeam: "France", AwayScore: 3, Tournament: "FIFA World Cup"}},
	}
}

func TestDatasetRepository_ConcurrentLoadsHitSourceOnce(t *testing.T) {
	next := footballmock.NewRepository(t)
	next.On("Load", mock.Anything).
		Run(func(mock.Arguments) { time.Sleep(20 * time.Millisecond) }).
		Return(sampleDataset(), nil).
		Once()

	repo := NewDatasetRepository(next, basecache.NewStore[football.Dataset](time.Minute))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ds, err := repo.Load(context.Background())
			if err != nil {
				t.Errorf("load: %v", err)
				return
			}
			if len(ds.Matches) != 1 {
				t.Errorf("expected 1 match, got %d", len(ds.Matches))
			}
		}()
	}
	wg.Wait()
}

func TestDatasetRepository_InvalidateForcesReload(t *testing.T) {
	next := footballmock.NewRepository(t)
	next.On("Load", mock.Anything).Return(sampleDataset(), nil).Twice()

	repo := NewDatasetRepository(next, basecache.NewStore[football.Dataset](time.Minute))
	ctx := context.Background()

	_, err := repo.Load(ctx)
	require.NoError(t, err)
	_, err = repo.Load(ctx)
	require.NoError(t, err)

	repo.Invalidate(ctx)
	_, err = repo.Load(ctx)
	require.NoError(t, err)
}

func TestDatasetRepository_ErrorsAreNotCached(t *testing.T) {
	next := footballmock.NewRepository(t)
	next.On("Load", mock.Anything).Return(football.Dataset{}, errors.New("source down")).Once()
	next.On("Load", mock.Anything).Return(sampleDataset(), nil).Once()

	repo := NewDatasetRepository(next, basecache.NewStore[football.Dataset](time.Minute))

	_, err := repo.Load(context.Background())
	require.Error(t, err)

	ds, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Matches, 1)
}
