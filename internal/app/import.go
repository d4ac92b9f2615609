package app

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-explorer/internal/config"
	"github.com/riskibarqy/football-explorer/internal/domain/football"
	"github.com/riskibarqy/football-explorer/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-explorer/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
)

// ImportOptions tunes ImportDataset.
type ImportOptions struct {
	// DryRun stages the dataset in memory and leaves Postgres untouched.
	DryRun bool
}

// ImportDataset reads the CSV files from source and replaces the Postgres
// tables with them in a single transaction.
func ImportDataset(ctx context.Context, cfg config.Config, opts ImportOptions, logger *logging.Logger) (football.Dataset, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.DatasetSource == config.DatasetSourcePostgres {
		return football.Dataset{}, fmt.Errorf("import source must be %s or %s", config.DatasetSourceCSV, config.DatasetSourceHTTP)
	}

	source, err := NewFileSource(cfg, logger)
	if err != nil {
		return football.Dataset{}, err
	}
	return importFrom(ctx, cfg, source, opts, logger)
}

func importFrom(ctx context.Context, cfg config.Config, source football.Repository, opts ImportOptions, logger *logging.Logger) (football.Dataset, error) {
	started := time.Now()
	ds, err := source.Load(ctx)
	if err != nil {
		return football.Dataset{}, fmt.Errorf("load dataset: %w", err)
	}
	if ds.IsEmpty() {
		return football.Dataset{}, fmt.Errorf("refusing to import an empty dataset")
	}

	if opts.DryRun {
		staged := memory.NewDatasetRepository(football.Dataset{})
		if err := replaceDataset(ctx, staged, ds); err != nil {
			return football.Dataset{}, err
		}
		if ds, err = staged.Load(ctx); err != nil {
			return football.Dataset{}, fmt.Errorf("load staged dataset: %w", err)
		}
	} else {
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return football.Dataset{}, err
		}
		defer func() {
			if closeErr := db.Close(); closeErr != nil {
				logger.Warn("close postgres failed", "error", closeErr)
			}
		}()

		if err := replaceDataset(ctx, postgres.NewDatasetRepository(db), ds); err != nil {
			return football.Dataset{}, err
		}
	}

	logger.InfoContext(ctx, "dataset imported",
		"source", cfg.DatasetSource,
		"dry_run", opts.DryRun,
		"matches", len(ds.Matches),
		"goals", len(ds.Goals),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return ds, nil
}

func replaceDataset(ctx context.Context, writer football.Writer, ds football.Dataset) error {
	if err := writer.Replace(ctx, ds); err != nil {
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}
