package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/riskibarqy/football-explorer/internal/app"
	"github.com/riskibarqy/football-explorer/internal/config"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("command", "migration")
	defer func() { _ = logger.Sync() }()

	if err := app.RunMigration(cfg, logger, os.Args[1:]); err != nil {
		if errors.Is(err, app.ErrMigrationUsage) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, app.MigrationUsage)
			os.Exit(2)
		}
		logger.Error("migration failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
