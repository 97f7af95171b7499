package config

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns a structured logger writing to w. The level comes from
// ASTEROIDFALL_LOG_LEVEL, falling back to level when unset or unknown.
func NewLogger(w io.Writer, prefix string, level log.Level) *log.Logger {
	if parsed, err := log.ParseLevel(GetEnv(EnvLogLevel, "")); err == nil {
		level = parsed
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}
