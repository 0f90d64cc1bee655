package common

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewLogger builds the run logger. Every record carries run_id so the lines of one
// batch can be told apart in a shared log.
func NewLogger(w io.Writer, cfg LogConfig, runID uuid.UUID) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("run_id", runID.String())
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
