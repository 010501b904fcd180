// Package logger builds the service's zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"estatehub/app/config"

	"github.com/rs/zerolog"
)

// New builds the base logger from cfg, writing to stdout.
func New(cfg config.LoggingConfig, env string) zerolog.Logger {
	return NewWithWriter(cfg, env, os.Stdout)
}

// NewWithWriter builds the base logger writing to w. The console format
// is human readable, anything else is JSON.
func NewWithWriter(cfg config.LoggingConfig, env string, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "estatehub").
		Str("env", env).
		Logger()
}
