// Package logging builds the arbor logger shared by the commands.
package logging

import (
	"os"
	"path/filepath"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"

	"fin_metrics/pkg/config"
)

const timeFormat = "15:04:05"

// New configures an arbor logger from cfg. Console output is used when no output is named.
func New(cfg config.LoggingConfig) arbor.ILogger {
	logger := arbor.NewLogger()

	console := len(cfg.Output) == 0
	for _, out := range cfg.Output {
		switch out {
		case "console", "stdout":
			console = true
		case "file":
			if cfg.File == "" {
				continue
			}
			if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
				console = true
				continue
			}
			logger = logger.WithFileWriter(models.WriterConfiguration{
				Type:       models.LogWriterTypeFile,
				FileName:   cfg.File,
				TimeFormat: timeFormat,
				MaxSize:    100 * 1024 * 1024,
				MaxBackups: 3,
				OutputType: models.OutputFormatLogfmt,
			})
		}
	}
	if console {
		logger = logger.WithConsoleWriter(models.WriterConfiguration{
			Type:       models.LogWriterTypeConsole,
			TimeFormat: timeFormat,
		})
	}

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	return logger.WithLevelFromString(level)
}
