// Package logging constructs the single *slog.Logger threaded through
// relalg's entrypoints, grounded on the teacher's internal/lsp/server.go
// and internal/testutil/logger.go logger-construction patterns.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New builds a *slog.Logger writing to w. format selects "json" or
// "text" (the default for any other value); level is parsed
// case-insensitively from "debug", "info", "warn"/"warning" or "error",
// defaulting to info.
func New(w io.Writer, format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
