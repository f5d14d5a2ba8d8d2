package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/assistant-core/internal/config"
)

// NewLogger builds the process logger, tags every record with the binary
// name as "component" and installs it as the slog default.
//
// Format "json" is meant for production; anything else selects the text
// handler with source locations. Output goes to stderr.
func NewLogger(cfg config.LogConfig, component string) *slog.Logger {
	logger := newLogger(os.Stderr, cfg).With(slog.String("component", component))
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	jsonFormat := strings.EqualFold(strings.TrimSpace(cfg.Format), "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !jsonFormat,
	}

	if jsonFormat {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLevel falls back to info for anything it does not recognise.
func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
