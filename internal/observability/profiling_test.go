package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/football-explorer/internal/config"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPyroscopeConfig(t *testing.T) {
	cfg := config.Config{
		AppEnv:         config.EnvStage,
		ServiceName:    "football-explorer-api",
		ServiceVersion: "1.2.3",
		DatasetSource:  config.DatasetSourceHTTP,
	}

	got := pyroscopeConfig(cfg)
	assert.Equal(t, "football-explorer-api", got.ApplicationName, "application name falls back to the service name")
	assert.Equal(t, "1.2.3", got.Tags["version"])
	assert.Equal(t, config.DatasetSourceHTTP, got.Tags["dataset_source"])

	cfg.PyroscopeAppName = "explorer.profiles"
	assert.Equal(t, "explorer.profiles", pyroscopeConfig(cfg).ApplicationName)
}

func TestPprofMux_ServesIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStart_AllDisabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{name: "all flags off", cfg: config.Config{UptraceDSN: "https://token@api.uptrace.dev?grpc=4317"}},
		{name: "uptrace without dsn", cfg: config.Config{UptraceEnabled: true, UptraceDSN: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.ServiceName = "football-explorer-api"
			tt.cfg.AppEnv = config.EnvDev

			stack, err := Start(tt.cfg, logging.NewNop())
			require.NoError(t, err)
			assert.Nil(t, stack.pprof)
			require.NoError(t, stack.Shutdown(context.Background()))
		})
	}
}

func TestStart_PprofListener(t *testing.T) {
	stack, err := Start(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	require.NoError(t, err)
	require.NotNil(t, stack.pprof)

	require.NoError(t, stack.Shutdown(context.Background()))
}

func TestStart_PprofAddrInUse(t *testing.T) {
	first, err := Start(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	_, err = Start(config.Config{PprofEnabled: true, PprofAddr: first.pprof.Addr}, logging.NewNop())
	require.Error(t, err)
}
