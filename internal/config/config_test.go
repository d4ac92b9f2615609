package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_ENV_FILE", "")
	t.Setenv("DATASET_SOURCE", "")
	t.Setenv("DEFAULT_TOP_N", "")
	t.Setenv("CACHE_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DatasetSource != DatasetSourceCSV {
		t.Fatalf("unexpected dataset source: %q", cfg.DatasetSource)
	}
	if cfg.DefaultTopN != 10 {
		t.Fatalf("unexpected default top n: %d", cfg.DefaultTopN)
	}
	if cfg.CacheTTL != time.Hour {
		t.Fatalf("unexpected cache ttl: %s", cfg.CacheTTL)
	}
	if cfg.ServiceName != "football-explorer-api" {
		t.Fatalf("unexpected service name: %q", cfg.ServiceName)
	}
}

func TestLoad_DatasetSourceValidation(t *testing.T) {
	t.Run("rejects unknown source", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("DATASET_SOURCE", "ftp")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown DATASET_SOURCE")
		}
	})

	t.Run("postgres requires db url", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("DATASET_SOURCE", "postgres")
		t.Setenv("DB_URL", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error when DATASET_SOURCE=postgres without DB_URL")
		}
	})

	t.Run("http trims trailing slash", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("DATASET_SOURCE", "HTTP")
		t.Setenv("DATASET_BASE_URL", "https://example.org/results/")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DatasetSource != DatasetSourceHTTP {
			t.Fatalf("unexpected dataset source: %q", cfg.DatasetSource)
		}
		if cfg.DatasetBaseURL != "https://example.org/results" {
			t.Fatalf("unexpected base url: %q", cfg.DatasetBaseURL)
		}
	})
}

func TestLoad_OptionsApplyBeforeDatasetValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_ENV_FILE", "")
	t.Setenv("DATASET_SOURCE", "postgres")
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DATASET_SOURCE=postgres without DB_URL")
	}

	cfg, err := Load(func(c *Config) {
		c.DatasetSource = "HTTP"
		c.DatasetBaseURL = "https://example.org/mirror/"
	})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DatasetSource != DatasetSourceHTTP {
		t.Fatalf("unexpected dataset source: %q", cfg.DatasetSource)
	}
	if cfg.DatasetBaseURL != "https://example.org/mirror" {
		t.Fatalf("unexpected base url: %q", cfg.DatasetBaseURL)
	}

	if _, err := Load(func(c *Config) {
		c.DatasetSource = DatasetSourceCSV
		c.DatasetDir = " "
	}); err == nil {
		t.Fatalf("expected error when an option clears DATASET_DIR for csv")
	}
}

func TestLoad_DefaultTopNRange(t *testing.T) {
	for _, value := range []string{"0", "51", "ten"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("DEFAULT_TOP_N", value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for DEFAULT_TOP_N=%s", value)
			}
		})
	}
}

func TestLoad_RejectsNonPositiveDurations(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_TTL", "0s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for CACHE_TTL=0s")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_ReadsDotEnvWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "DEFAULT_TOP_N=25\nAPP_HTTP_ADDR=:9999\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_ENV_FILE", path)
	t.Setenv("APP_HTTP_ADDR", ":7000")
	t.Setenv("DEFAULT_TOP_N", "")
	os.Unsetenv("DEFAULT_TOP_N")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DefaultTopN != 25 {
		t.Fatalf("expected DEFAULT_TOP_N from env file, got %d", cfg.DefaultTopN)
	}
	if cfg.HTTPAddr != ":7000" {
		t.Fatalf("process env must win over env file, got %q", cfg.HTTPAddr)
	}
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	if _, err := Load(); err != nil {
		t.Fatalf("missing env file must not fail: %v", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"WARNING": "warn",
		"error":   "error",
		"":        "info",
		"verbose": "info",
	}
	for in, want := range cases {
		if got := parseLogLevel(in).String(); got != want {
			t.Fatalf("parseLogLevel(%q): got=%s want=%s", in, got, want)
		}
	}
}
