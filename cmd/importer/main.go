package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/riskibarqy/football-explorer/internal/app"
	"github.com/riskibarqy/football-explorer/internal/config"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
)

func main() {
	from := flag.String("from", "", "csv or http; defaults to DATASET_SOURCE, or http when that is postgres")
	dir := flag.String("dir", "", "directory holding results.csv and goalscorers.csv; defaults to DATASET_DIR")
	baseURL := flag.String("url", "", "base URL serving results.csv and goalscorers.csv; defaults to DATASET_BASE_URL")
	dryRun := flag.Bool("dry-run", false, "parse and stage the dataset in memory without writing to Postgres")
	flag.Parse()

	override, err := importOverrides(*from, *dir, *baseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(override)
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("command", "importer")
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := app.ImportDataset(ctx, cfg, app.ImportOptions{DryRun: *dryRun}, logger); err != nil {
		logger.Error("import failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

// importOverrides applies the command-line flags on top of the environment.
// Empty flags keep the configured values.
func importOverrides(from, dir, baseURL string) (config.Option, error) {
	source := strings.ToLower(strings.TrimSpace(from))
	switch source {
	case "", config.DatasetSourceCSV, config.DatasetSourceHTTP:
	default:
		return nil, fmt.Errorf("invalid -from %q: valid values are %s, %s", from, config.DatasetSourceCSV, config.DatasetSourceHTTP)
	}

	return func(cfg *config.Config) {
		switch {
		case source != "":
			cfg.DatasetSource = source
		case cfg.DatasetSource == config.DatasetSourcePostgres:
			cfg.DatasetSource = config.DatasetSourceHTTP
		}
		if strings.TrimSpace(dir) != "" {
			cfg.DatasetDir = dir
		}
		if strings.TrimSpace(baseURL) != "" {
			cfg.DatasetBaseURL = baseURL
		}
	}, nil
}
