package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-explorer/internal/config"
	"github.com/riskibarqy/football-explorer/internal/domain/football"
	"github.com/riskibarqy/football-explorer/internal/infrastructure/dataset/csvfile"
	"github.com/riskibarqy/football-explorer/internal/infrastructure/dataset/remote"
	"github.com/riskibarqy/football-explorer/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-explorer/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/football-explorer/internal/platform/cache"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
	"github.com/riskibarqy/football-explorer/internal/platform/resilience"
	"github.com/riskibarqy/football-explorer/internal/usecase"
)

type datasetStack struct {
	repo        football.Repository
	invalidator usecase.DatasetInvalidator
	close       func() error
}

// NewFileSource builds the CSV reader selected by cfg: a local directory for
// the csv source and an HTTP download otherwise.
func NewFileSource(cfg config.Config, logger *logging.Logger) (football.Repository, error) {
	logger = logger.Named("dataset")
	if cfg.DatasetSource == config.DatasetSourceCSV {
		return csvfile.NewSource(cfg.DatasetDir, logger), nil
	}

	source, err := remote.NewSource(remote.Config{
		BaseURL:    cfg.DatasetBaseURL,
		Timeout:    cfg.DatasetFetchTimeout,
		MaxRetries: cfg.DatasetFetchRetries,
		Workers:    cfg.DatasetFetchWorkers,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.DatasetCircuitEnabled,
			FailureThreshold: cfg.DatasetCircuitFailureCount,
			OpenTimeout:      cfg.DatasetCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DatasetCircuitHalfOpenMaxReq,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build remote dataset source: %w", err)
	}
	return source, nil
}

func newDatasetStack(ctx context.Context, cfg config.Config, logger *logging.Logger) (datasetStack, error) {
	stack := datasetStack{close: func() error { return nil }}

	switch cfg.DatasetSource {
	case config.DatasetSourcePostgres:
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return datasetStack{}, err
		}
		stack.repo = postgres.NewDatasetRepository(db)
		stack.close = db.Close
	default:
		source, err := NewFileSource(cfg, logger)
		if err != nil {
			return datasetStack{}, err
		}
		stack.repo = source
	}

	if cfg.CacheEnabled {
		cached := cache.NewDatasetRepository(stack.repo, basecache.NewStore[football.Dataset](cfg.CacheTTL))
		stack.repo = cached
		stack.invalidator = cached
	}

	logger.Info("dataset repository ready",
		"source", cfg.DatasetSource,
		"cache_enabled", cfg.CacheEnabled,
		"cache_ttl", cfg.CacheTTL,
	)
	return stack, nil
}
