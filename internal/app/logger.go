package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/library-backend/internal/config"
)

// NewLogger builds the process logger from LogConfig, writes to stderr and
// installs it as the slog default. Every record carries service=library-backend
// so the API, the notifier and libraryctl can share one log stream.
//
// "json" is the production format; "text" adds source locations for local
// work. Level is debug, info, warn (or warning) or error; anything else is info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	format := strings.ToLower(strings.TrimSpace(cfg.Format))

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: format == "text",
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service", serviceName))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
