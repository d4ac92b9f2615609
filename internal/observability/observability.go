// Package observability starts the process-wide telemetry: uptrace tracing,
// pyroscope continuous profiling and a private pprof listener. Each part is
// switched on by config and is a no-op otherwise.
package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-explorer/internal/config"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
)

type Stack struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprof           *http.Server
}

// Start brings up every enabled component. On error the components started so
// far are stopped again.
func Start(cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("observability")

	s := &Stack{
		logger:          logger,
		shutdownTracing: initTracing(cfg, logger),
		stopProfiler:    func() error { return nil },
	}

	stopProfiler, err := startProfiler(cfg, logger)
	if err != nil {
		_ = s.Shutdown(context.Background())
		return nil, err
	}
	s.stopProfiler = stopProfiler

	srv, err := startPprof(cfg, logger)
	if err != nil {
		_ = s.Shutdown(context.Background())
		return nil, fmt.Errorf("start pprof: %w", err)
	}
	s.pprof = srv

	return s, nil
}

// Shutdown stops the components in reverse start order and joins their errors.
// Tracing goes last so spans from the shutdown itself are flushed.
func (s *Stack) Shutdown(ctx context.Context) error {
	var errs []error
	if err := stopPprof(ctx, s.pprof); err != nil {
		errs = append(errs, fmt.Errorf("stop pprof: %w", err))
	}
	if err := s.stopProfiler(); err != nil {
		errs = append(errs, fmt.Errorf("stop pyroscope: %w", err))
	}
	if err := s.shutdownTracing(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown uptrace: %w", err))
	}

	err := errors.Join(errs...)
	if err == nil {
		s.logger.Info("observability stopped")
	}
	return err
}
