// Package logging builds the structured loggers handed to components.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New creates a text logger writing to w at the named level
// (debug, info, warn, error). An empty level disables logging.
func New(w io.Writer, level string) (*slog.Logger, error) {
	if level == "" || level == "off" {
		return Discard(), nil
	}

	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithComponent tags every record of log with the component name
func WithComponent(log *slog.Logger, name string) *slog.Logger {
	return log.With("component", name)
}
