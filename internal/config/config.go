// Package config loads application configuration and initializes logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths" mapstructure:"paths"`
	Rules    RulesConfig    `yaml:"rules" mapstructure:"rules"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// PathsConfig holds the well-known input and output file paths.
type PathsConfig struct {
	RawCSV     string `yaml:"raw_csv" mapstructure:"raw_csv"`
	CleanedCSV string `yaml:"cleaned_csv" mapstructure:"cleaned_csv"`
	TaggedCSV  string `yaml:"tagged_csv" mapstructure:"tagged_csv"`
	CountsJSON string `yaml:"counts_json" mapstructure:"counts_json"`
}

// RulesConfig points at an optional YAML rule-set override.
type RulesConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// PipelineConfig configures record classification.
type PipelineConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// StoreConfig configures the local SQLite store.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the classification API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FLORIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("paths.raw_csv", "google-FlowerStore-2025-12-25.csv")
	v.SetDefault("paths.cleaned_csv", "data/flowerstores.cleaned.csv")
	v.SetDefault("paths.tagged_csv", "google-FlowerStore-2025-12-25-tagged.csv")
	v.SetDefault("paths.counts_json", "district-counts.json")
	v.SetDefault("pipeline.workers", 4)
	v.SetDefault("store.path", "data/flowerstores.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that configuration required by the given command mode is
// present and within bounds.
func (c *Config) Validate(mode string) error {
	var errs []string

	if c.Pipeline.Workers < 1 || c.Pipeline.Workers > 32 {
		errs = append(errs, "pipeline.workers must be between 1 and 32")
	}

	switch mode {
	case "clean":
		if c.Paths.RawCSV == "" {
			errs = append(errs, "paths.raw_csv is required")
		}
		if c.Paths.CleanedCSV == "" {
			errs = append(errs, "paths.cleaned_csv is required")
		}
	case "tag":
		if c.Paths.CleanedCSV == "" {
			errs = append(errs, "paths.cleaned_csv is required")
		}
		if c.Paths.TaggedCSV == "" {
			errs = append(errs, "paths.tagged_csv is required")
		}
		if c.Paths.CountsJSON == "" {
			errs = append(errs, "paths.counts_json is required")
		}
	case "load":
		if c.Store.Path == "" {
			errs = append(errs, "store.path is required")
		}
	case "serve":
		if c.Server.Port <= 0 {
			errs = append(errs, "server.port must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(errs) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
