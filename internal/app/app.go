package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-explorer/internal/config"
	"github.com/riskibarqy/football-explorer/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
	"github.com/riskibarqy/football-explorer/internal/usecase"
)

// NewHTTPServer wires the dataset repository, the explorer service and the
// router. The returned cleanup releases the dataset backend.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	stack, err := newDatasetStack(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	explorer := usecase.NewExplorerService(
		stack.repo,
		stack.invalidator,
		usecase.ExplorerConfig{DefaultTopN: cfg.DefaultTopN},
		logger,
	)
	handler := httpapi.NewHandler(explorer, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, stack.close, nil
}
