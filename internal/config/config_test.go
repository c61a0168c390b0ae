package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "google-FlowerStore-2025-12-25.csv", cfg.Paths.RawCSV)
	assert.Equal(t, "data/flowerstores.cleaned.csv", cfg.Paths.CleanedCSV)
	assert.Equal(t, "google-FlowerStore-2025-12-25-tagged.csv", cfg.Paths.TaggedCSV)
	assert.Equal(t, "district-counts.json", cfg.Paths.CountsJSON)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.Equal(t, "data/flowerstores.db", cfg.Store.Path)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Rules.File)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
paths:
  cleaned_csv: out/cleaned.csv
rules:
  file: rules/districts.yaml
log:
  level: debug
  format: console
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "out/cleaned.csv", cfg.Paths.CleanedCSV)
	assert.Equal(t, "rules/districts.yaml", cfg.Rules.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	// Defaults still apply for unset values
	assert.Equal(t, "district-counts.json", cfg.Paths.CountsJSON)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("FLORIST_LOG_LEVEL", "warn")
	t.Setenv("FLORIST_PIPELINE_WORKERS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Pipeline.Workers)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Paths: PathsConfig{
				RawCSV:     "raw.csv",
				CleanedCSV: "cleaned.csv",
				TaggedCSV:  "tagged.csv",
				CountsJSON: "counts.json",
			},
			Pipeline: PipelineConfig{Workers: 4},
			Store:    StoreConfig{Path: "store.db"},
			Server:   ServerConfig{Port: 8080},
		}
	}

	t.Run("valid for all modes", func(t *testing.T) {
		for _, mode := range []string{"clean", "tag", "load", "serve"} {
			assert.NoError(t, valid().Validate(mode), mode)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		err := valid().Validate("unknown")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown mode")
	})

	t.Run("workers out of bounds", func(t *testing.T) {
		cfg := valid()
		cfg.Pipeline.Workers = 0
		err := cfg.Validate("tag")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "pipeline.workers must be between 1 and 32")

		cfg.Pipeline.Workers = 33
		assert.Error(t, cfg.Validate("tag"))
	})

	t.Run("tag requires paths", func(t *testing.T) {
		cfg := valid()
		cfg.Paths.CleanedCSV = ""
		cfg.Paths.CountsJSON = ""
		err := cfg.Validate("tag")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "paths.cleaned_csv is required")
		assert.Contains(t, err.Error(), "paths.counts_json is required")
	})

	t.Run("serve requires port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = 0
		err := cfg.Validate("serve")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "server.port must be > 0")
	})

	t.Run("load requires store path", func(t *testing.T) {
		cfg := valid()
		cfg.Store.Path = ""
		err := cfg.Validate("load")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "store.path is required")
	})
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
