package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fin_metrics/pkg/config"
)

func TestNew_Console(t *testing.T) {
	logger := New(config.LoggingConfig{})
	require.NotNil(t, logger)
	logger.Info().Str("component", "test").Msg("console logger ready")
}

func TestNew_FileWriterCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "metrics.log")
	logger := New(config.LoggingConfig{Level: "debug", Output: []string{"file", "console"}, File: path})
	require.NotNil(t, logger)
	logger.Debug().Str("file", path).Msg("file logger ready")

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
