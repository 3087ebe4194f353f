// Package logging builds the slog logger the CLI and long-running
// watch mode log through. Rendering itself stays quiet; the logger
// carries parse-degradation warnings and watcher activity.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format is the log output format.
type Format string

const (
	// FormatText outputs human-readable key=value logs.
	FormatText Format = "text"
	// FormatJSON outputs one JSON object per line.
	FormatJSON Format = "json"
)

// Config selects the logger's level and output format.
type Config struct {
	// Level is the minimum level: "debug", "info", "warn" or "error".
	Level string

	// Format is "text" or "json".
	Format Format
}

// New creates a slog logger writing to w.
func New(w io.Writer, cfg Config) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	switch cfg.Format {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case FormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("unknown log format %q", cfg.Format)
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
