package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup sets slog's default logger. format is "json" (default) or "text".
func Setup(level slog.Level, format string) *slog.Logger {
	logger := New(os.Stdout, level, format)
	slog.SetDefault(logger)

	return logger
}

func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}
