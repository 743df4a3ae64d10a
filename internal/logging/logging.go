// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
)

// Init installs a JSON slog handler writing to w as the default logger
// and returns it. Level controls verbosity; the library itself never
// logs, so this only affects the CLI.
func Init(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				a.Key = "timestamp"
			case slog.MessageKey:
				a.Key = "message"
			}
			return a
		},
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
