package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/logging"
)

// Logging logs one line when a request starts and one when it completes. The
// request and correlation IDs are added to the context with
// logging.AppendAttrs, so any logger from logging.New that is given the
// request context includes them; logger itself is stored with
// logging.WithLogger. Completion lines name the chi route and, on project
// routes, the project ID.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	logger = logging.Contextual(logger)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := logging.AppendAttrs(r.Context(),
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)
			ctx = logging.WithLogger(ctx, logger)
			r = r.WithContext(ctx)

			logger.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.DebugContext(ctx, "request headers", headerArgs(r.Header)...)
			}

			ww := wrap(w, r)
			next.ServeHTTP(ww, r)

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("route", routeOf(r)),
				slog.Int("status", statusOf(ww)),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			}
			if id := projectIDOf(r); id != "" {
				attrs = append(attrs, slog.String("project_id", id))
			}
			logger.InfoContext(ctx, "request completed", attrs...)
		})
	}
}

// headerArgs renders headers as slog attributes with the values of
// logging.SensitiveHeaders replaced by "[REDACTED]". Multiple values are
// comma-joined.
func headerArgs(h http.Header) []any {
	args := make([]any, 0, len(h))
	for name, vals := range h {
		val := strings.Join(vals, ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			val = "[REDACTED]"
		}
		args = append(args, slog.String(name, val))
	}
	return args
}
