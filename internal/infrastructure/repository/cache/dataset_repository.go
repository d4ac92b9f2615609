package cache

import (
	"context"

	"github.com/riskibarqy/football-explorer/internal/domain/football"
	basecache "github.com/riskibarqy/football-explorer/internal/platform/cache"
)

const datasetKey = "dataset"

// DatasetRepository keeps the last loaded dataset until its TTL expires or
// Invalidate is called. Concurrent misses share one load.
type DatasetRepository struct {
	next  football.Repository
	cache *basecache.Store[football.Dataset]
}

func NewDatasetRepository(next football.Repository, cache *basecache.Store[football.Dataset]) *DatasetRepository {
	return &DatasetRepository{next: next, cache: cache}
}

func (r *DatasetRepository) Load(ctx context.Context) (football.Dataset, error) {
	ds, err := r.cache.GetOrLoad(ctx, datasetKey, r.next.Load)
	if err != nil {
		return football.Dataset{}, err
	}
	return ds, nil
}

func (r *DatasetRepository) Invalidate(ctx context.Context) {
	r.cache.Delete(ctx, datasetKey)
}
