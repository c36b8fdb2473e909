// Package logging builds the service's structured logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/divscout/divscout-api/internal/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates a logger from cfg writing to stdout and, when a file path is
// configured, to a rotating log file.
func New(cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter is New with an explicit primary writer.
func NewWithWriter(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	var writers []io.Writer

	if cfg.Format == "json" {
		writers = append(writers, out)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}

	var fileErr error
	if cfg.FilePath != "" {
		if fileErr = os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); fileErr == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   true,
			})
		}
	}

	var writer io.Writer = writers[0]
	if len(writers) > 1 {
		writer = zerolog.MultiLevelWriter(writers...)
	}

	base := zerolog.New(writer).
		With().
		Timestamp().
		Str("service", "divscout-api").
		Logger()

	// Reported regardless of the configured level.
	if fileErr != nil {
		base.Warn().Err(fileErr).Str("file_path", cfg.FilePath).Msg("log file disabled")
	}
	return base.Level(ParseLevel(cfg.Level))
}

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithOperation adds an operation name to the logger context.
func WithOperation(logger zerolog.Logger, operation string) zerolog.Logger {
	return logger.With().Str("operation", operation).Logger()
}
