package app

import (
	"io"
	"log/slog"
)

// newLogger builds the logger an App instance owns, from its validated
// config. The process-wide default logger is never touched, so parallel App
// instances (the test harness runs many) log independently.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
