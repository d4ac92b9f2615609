package observability

import (
	"fmt"
	"strings"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/football-explorer/internal/config"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
)

func startProfiler(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	pcfg := pyroscopeConfig(cfg)
	profiler, err := pyroscope.Start(pcfg)
	if err != nil {
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}
	logger.Info("pyroscope enabled", "server_address", pcfg.ServerAddress, "application", pcfg.ApplicationName)

	return profiler.Stop, nil
}

// The aggregator is allocation heavy and CPU bound; mutex and block profiles
// are left out.
func pyroscopeConfig(cfg config.Config) pyroscope.Config {
	appName := strings.TrimSpace(cfg.PyroscopeAppName)
	if appName == "" {
		appName = cfg.ServiceName
	}

	return pyroscope.Config{
		ApplicationName:   appName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags: map[string]string{
			"env":            cfg.AppEnv,
			"service":        cfg.ServiceName,
			"version":        cfg.ServiceVersion,
			"dataset_source": cfg.DatasetSource,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	}
}
