// Package logging builds the service's slog loggers.
//
// Every logger from New redacts credentials and client content (see
// redact.go) and appends the attributes carried by the context passed
// to the *Context logging methods:
//
//	ctx = logging.AppendAttrs(ctx, slog.String("request_id", id))
//	logger.InfoContext(ctx, "scoring project", slog.Int64("project_id", 12))
//
// Error logs name the operation and entity and attach the full chain with
// slog.Any("error", err).
package logging

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error (any case; unknown values mean info). format "text" selects the
// logfmt-style text handler and anything else JSON. Debug loggers include
// the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if format == "text" {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(contextHandler{h})
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
