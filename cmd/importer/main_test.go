package main

import (
	"testing"

	"github.com/riskibarqy/football-explorer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportOverrides_RejectsUnknownSource(t *testing.T) {
	_, err := importOverrides("postgres", "", "")
	require.Error(t, err)
}

func TestImportOverrides_FlagsApplyBeforeValidation(t *testing.T) {
	t.Setenv("APP_ENV", config.EnvDev)
	t.Setenv("APP_ENV_FILE", "")
	t.Setenv("DATASET_SOURCE", "postgres")
	t.Setenv("DB_URL", "")

	override, err := importOverrides("http", "", "https://mirror.example.org/results/")
	require.NoError(t, err)

	cfg, err := config.Load(override)
	require.NoError(t, err)
	assert.Equal(t, config.DatasetSourceHTTP, cfg.DatasetSource)
	assert.Equal(t, "https://mirror.example.org/results", cfg.DatasetBaseURL)
}

func TestImportOverrides_PostgresFallsBackToHTTP(t *testing.T) {
	t.Setenv("APP_ENV", config.EnvDev)
	t.Setenv("APP_ENV_FILE", "")
	t.Setenv("DATASET_SOURCE", "postgres")
	t.Setenv("DB_URL", "postgres://localhost/football")

	override, err := importOverrides("", "", "")
	require.NoError(t, err)

	cfg, err := config.Load(override)
	require.NoError(t, err)
	assert.Equal(t, config.DatasetSourceHTTP, cfg.DatasetSource)
	assert.Equal(t, "postgres://localhost/football", cfg.DBURL)
}

func TestImportOverrides_DirFlagWins(t *testing.T) {
	t.Setenv("APP_ENV", config.EnvDev)
	t.Setenv("APP_ENV_FILE", "")
	t.Setenv("DATASET_SOURCE", "http")
	t.Setenv("DATASET_DIR", "/etc/football")

	override, err := importOverrides("csv", " ./fixtures ", "")
	require.NoError(t, err)

	cfg, err := config.Load(override)
	require.NoError(t, err)
	assert.Equal(t, config.DatasetSourceCSV, cfg.DatasetSource)
	assert.Equal(t, "./fixtures", cfg.DatasetDir)
}
