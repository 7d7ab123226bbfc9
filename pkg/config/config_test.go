package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "files", cfg.Input.Source)
	assert.Equal(t, 1e8, cfg.Input.MarketCapScale)
	assert.Equal(t, []string{"csv"}, cfg.Output.Sinks)
	assert.Greater(t, cfg.Batch.Parallelism, 0)
	assert.False(t, cfg.UsesPostgres())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.yaml")
	body := `
input:
  source: postgres
output:
  dir: out
  sinks: [csv, xlsx, postgres]
logging:
  level: debug
batch:
  entities: ["002508", "600519"]
  parallelism: 2
  schedule: "0 18 * * 1-5"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Input.Source)
	assert.Equal(t, 1e8, cfg.Input.MarketCapScale)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"002508", "600519"}, cfg.Batch.Entities)
	assert.Equal(t, 2, cfg.Batch.Parallelism)
	assert.Equal(t, 0.01, cfg.Validation.BalanceTolerance)
	assert.True(t, cfg.UsesPostgres())
}

func TestLoadRejectsUnknownSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  sinks: [parquet]\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
