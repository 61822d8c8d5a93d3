package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Adithya-Monish-Kumar-K/wordindex/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 1<<20, cfg.Indexer.MaxLineBytes)
	assert.Equal(t, "detailed", cfg.Report.Mode)
	assert.Nil(t, cfg.Report.Top)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordindex.yaml")
	data := `
logging:
  level: debug
  format: json
stopwords:
  paths: [english.txt, extra.txt]
report:
  mode: short
  top: 3
metrics:
  textfile: /tmp/wordindex.prom
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"english.txt", "extra.txt"}, cfg.StopWords.Paths)
	assert.Equal(t, 4, cfg.StopWords.MaxParallel)
	assert.Equal(t, "short", cfg.Report.Mode)
	require.NotNil(t, cfg.Report.Top)
	assert.Equal(t, 3, *cfg.Report.Top)
	assert.Equal(t, "/tmp/wordindex.prom", cfg.Metrics.Textfile)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInputNotFound)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report: [unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WI_LOGGING_LEVEL", "info")
	t.Setenv("WI_STOPWORDS", "a.txt,b.txt")
	t.Setenv("WI_REPORT_TOP", "7")
	t.Setenv("WI_INDEXER_MAX_LINE_BYTES", "4096")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.StopWords.Paths)
	require.NotNil(t, cfg.Report.Top)
	assert.Equal(t, 7, *cfg.Report.Top)
	assert.Equal(t, 4096, cfg.Indexer.MaxLineBytes)
}

func TestEnvOverrideNotANumber(t *testing.T) {
	t.Setenv("WI_REPORT_TOP", "many")
	_, err := Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"format", func(c *Config) { c.Logging.Format = "xml" }},
		{"level", func(c *Config) { c.Logging.Level = "loud" }},
		{"max line bytes", func(c *Config) { c.Indexer.MaxLineBytes = 0 }},
		{"max parallel", func(c *Config) { c.StopWords.MaxParallel = -1 }},
		{"mode", func(c *Config) { c.Report.Mode = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
			assert.Equal(t, apperrors.ExitUsage, apperrors.ExitCode(err))
		})
	}
}
