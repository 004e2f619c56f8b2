// Package logging builds the structured logger used by the demo binary.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	regerrors "github.com/KirkDiggler/eventregistry/internal/errors"
)

// Setup creates a configured slog.Logger.
// format: "json" or "text" (defaults to "text" if empty)
// If w is nil, writes to os.Stderr.
func Setup(service, version, format string, level slog.Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("service", service),
		slog.String("version", version),
	)
}

// ParseLevel maps debug, info, warn and error onto slog levels
func ParseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, regerrors.InvalidArgumentf("unknown log level %q", value).
			WithMeta("level", value)
	}
}
