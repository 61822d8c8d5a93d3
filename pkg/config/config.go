// Package config loads and validates wordindex configuration from an optional
// YAML file with environment-variable overrides. Command-line flags are
// applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/Adithya-Monish-Kumar-K/wordindex/pkg/errors"
)

const envPrefix = "WI_"

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Indexer   IndexerConfig   `yaml:"indexer"`
	StopWords StopWordsConfig `yaml:"stopwords"`
	Report    ReportConfig    `yaml:"report"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// IndexerConfig bounds the line reader used while building the index.
type IndexerConfig struct {
	MaxLineBytes int `yaml:"maxLineBytes"`
}

// StopWordsConfig lists stop-word files and how many are read at once.
type StopWordsConfig struct {
	Paths       []string `yaml:"paths"`
	MaxParallel int      `yaml:"maxParallel"`
}

// ReportConfig selects the rendering mode and the number of ranked words.
// A nil Top means every word is reported.
type ReportConfig struct {
	Mode string `yaml:"mode"`
	Top  *int   `yaml:"top"`
}

// MetricsConfig names the Prometheus textfile written after a run. Empty
// disables the export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", apperrors.InputNotFound(path, err))
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path,
				apperrors.InvalidArgument("%v", err))
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Indexer: IndexerConfig{
			MaxLineBytes: 1 << 20,
		},
		StopWords: StopWordsConfig{
			MaxParallel: 4,
		},
		Report: ReportConfig{
			Mode: "detailed",
		},
	}
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "text", "json":
	default:
		return apperrors.InvalidArgument("logging.format must be text or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.InvalidArgument("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	if c.Indexer.MaxLineBytes <= 0 {
		return apperrors.InvalidArgument("indexer.maxLineBytes must be positive, got %d", c.Indexer.MaxLineBytes)
	}
	if c.StopWords.MaxParallel <= 0 {
		return apperrors.InvalidArgument("stopwords.maxParallel must be positive, got %d", c.StopWords.MaxParallel)
	}
	switch c.Report.Mode {
	case "detailed", "short":
	default:
		return apperrors.InvalidArgument("report.mode must be detailed or short, got %q", c.Report.Mode)
	}
	return nil
}

// applyEnvOverrides reads WI_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(envPrefix + "LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(envPrefix + "LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(envPrefix + "INDEXER_MAX_LINE_BYTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return apperrors.InvalidArgument("%sINDEXER_MAX_LINE_BYTES: %v", envPrefix, err)
		}
		cfg.Indexer.MaxLineBytes = n
	}
	if v := os.Getenv(envPrefix + "STOPWORDS"); v != "" {
		cfg.StopWords.Paths = strings.Split(v, ",")
	}
	if v := os.Getenv(envPrefix + "STOPWORDS_MAX_PARALLEL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return apperrors.InvalidArgument("%sSTOPWORDS_MAX_PARALLEL: %v", envPrefix, err)
		}
		cfg.StopWords.MaxParallel = n
	}
	if v := os.Getenv(envPrefix + "REPORT_MODE"); v != "" {
		cfg.Report.Mode = v
	}
	if v := os.Getenv(envPrefix + "REPORT_TOP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return apperrors.InvalidArgument("%sREPORT_TOP: %v", envPrefix, err)
		}
		cfg.Report.Top = &n
	}
	if v := os.Getenv(envPrefix + "METRICS_TEXTFILE"); v != "" {
		cfg.Metrics.Textfile = v
	}
	return nil
}
