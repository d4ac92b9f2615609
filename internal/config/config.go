package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	DatasetSourceCSV      = "csv"
	DatasetSourceHTTP     = "http"
	DatasetSourcePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                       string
	ServiceName                  string
	ServiceVersion               string
	HTTPAddr                     string
	ReadTimeout                  time.Duration
	WriteTimeout                 time.Duration
	LogLevel                     logging.Level
	CORSAllowedOrigins           []string
	DatasetSource                string
	DatasetDir                   string
	DatasetBaseURL               string
	DatasetFetchTimeout          time.Duration
	DatasetFetchRetries          int
	DatasetFetchWorkers          int
	DatasetCircuitEnabled        bool
	DatasetCircuitFailureCount   int
	DatasetCircuitOpenTimeout    time.Duration
	DatasetCircuitHalfOpenMaxReq int
	DBURL                        string
	DBDisablePreparedBinary      bool
	CacheEnabled                 bool
	CacheTTL                     time.Duration
	DefaultTopN                  int
	PprofEnabled                 bool
	PprofAddr                    string
	UptraceEnabled               bool
	UptraceDSN                   string
	PyroscopeEnabled             bool
	PyroscopeServerAddress       string
	PyroscopeAppName             string
	PyroscopeAuthToken           string
	PyroscopeBasicAuthUser       string
	PyroscopeBasicAuthPassword   string
	PyroscopeUploadRate          time.Duration
}

// Option adjusts a Config after the environment is read and before the
// dataset settings are validated.
type Option func(*Config)

// Load reads the environment, after merging a local .env file when one exists.
// Variables already set in the process win over the file.
func Load(opts ...Option) (Config, error) {
	if err := loadDotEnv(getEnv("APP_ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}

	datasetSource, err := parseDatasetSource(getEnv("DATASET_SOURCE", DatasetSourceCSV))
	if err != nil {
		return Config{}, err
	}
	datasetDir := getEnv("DATASET_DIR", "./data")
	datasetBaseURL := getEnv("DATASET_BASE_URL", "https://raw.githubusercontent.com/martj42/international_results/master")

	datasetFetchTimeout, err := getEnvAsDuration("DATASET_FETCH_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	datasetFetchRetries, err := getEnvAsInt("DATASET_FETCH_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse DATASET_FETCH_RETRIES: %w", err)
	}
	if datasetFetchRetries < 0 {
		return Config{}, fmt.Errorf("DATASET_FETCH_RETRIES must be >= 0")
	}
	datasetFetchWorkers, err := getEnvAsInt("DATASET_FETCH_WORKERS", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse DATASET_FETCH_WORKERS: %w", err)
	}
	if datasetFetchWorkers < 1 {
		return Config{}, fmt.Errorf("DATASET_FETCH_WORKERS must be >= 1")
	}

	datasetCircuitEnabled, err := strconv.ParseBool(getEnv("DATASET_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DATASET_CIRCUIT_ENABLED: %w", err)
	}
	datasetCircuitFailureCount, err := getEnvAsInt("DATASET_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse DATASET_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if datasetCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("DATASET_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	datasetCircuitOpenTimeout, err := getEnvAsDuration("DATASET_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	datasetCircuitHalfOpenMaxReq, err := getEnvAsInt("DATASET_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse DATASET_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if datasetCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("DATASET_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := getEnvAsDuration("CACHE_TTL", "1h")
	if err != nil {
		return Config{}, err
	}

	defaultTopN, err := getEnvAsInt("DEFAULT_TOP_N", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse DEFAULT_TOP_N: %w", err)
	}
	if defaultTopN < 1 || defaultTopN > 50 {
		return Config{}, fmt.Errorf("DEFAULT_TOP_N must be between 1 and 50")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                       appEnv,
		ServiceName:                  getEnv("APP_SERVICE_NAME", "football-explorer-api"),
		ServiceVersion:               getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                     getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                  readTimeout,
		WriteTimeout:                 writeTimeout,
		LogLevel:                     parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins:           splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DatasetSource:                datasetSource,
		DatasetDir:                   datasetDir,
		DatasetBaseURL:               datasetBaseURL,
		DatasetFetchTimeout:          datasetFetchTimeout,
		DatasetFetchRetries:          datasetFetchRetries,
		DatasetFetchWorkers:          datasetFetchWorkers,
		DatasetCircuitEnabled:        datasetCircuitEnabled,
		DatasetCircuitFailureCount:   datasetCircuitFailureCount,
		DatasetCircuitOpenTimeout:    datasetCircuitOpenTimeout,
		DatasetCircuitHalfOpenMaxReq: datasetCircuitHalfOpenMaxReq,
		DBURL:                        dbURL,
		DBDisablePreparedBinary:      dbDisablePreparedBinary,
		CacheEnabled:                 cacheEnabled,
		CacheTTL:                     cacheTTL,
		DefaultTopN:                  defaultTopN,
		PprofEnabled:                 pprofEnabled,
		PprofAddr:                    pprofAddr,
		UptraceEnabled:               uptraceEnabled,
		UptraceDSN:                   uptraceDSN,
		PyroscopeEnabled:             pyroscopeEnabled,
		PyroscopeServerAddress:       pyroscopeServerAddress,
		PyroscopeAuthToken:           strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:       strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:   strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:          pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validateDataset(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) validateDataset() error {
	source, err := parseDatasetSource(c.DatasetSource)
	if err != nil {
		return err
	}
	c.DatasetSource = source
	c.DatasetDir = strings.TrimSpace(c.DatasetDir)
	c.DatasetBaseURL = strings.TrimRight(strings.TrimSpace(c.DatasetBaseURL), "/")

	switch {
	case source == DatasetSourceCSV && c.DatasetDir == "":
		return fmt.Errorf("DATASET_DIR is required when DATASET_SOURCE=%s", DatasetSourceCSV)
	case source == DatasetSourceHTTP && c.DatasetBaseURL == "":
		return fmt.Errorf("DATASET_BASE_URL is required when DATASET_SOURCE=%s", DatasetSourceHTTP)
	case source == DatasetSourcePostgres && c.DBURL == "":
		return fmt.Errorf("DB_URL is required when DATASET_SOURCE=%s", DatasetSourcePostgres)
	}
	return nil
}

func loadDotEnv(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseDatasetSource(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case DatasetSourceCSV, DatasetSourceHTTP, DatasetSourcePostgres:
		return value, nil
	default:
		return "", fmt.Errorf("invalid DATASET_SOURCE %q: valid values are %s, %s, %s", v, DatasetSourceCSV, DatasetSourceHTTP, DatasetSourcePostgres)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

// getEnvAsDuration rejects zero and negative durations.
func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}
