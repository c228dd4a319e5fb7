package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/dto"
)

// errInternalServer is all a client sees of a recovered panic.
var errInternalServer = errors.New("internal server error")

// Recovery turns a handler panic into an RFC 9457 500 response and logs the
// panic value with its stack. Nothing is written when the handler had already
// started the response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := wrap(w, r)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("route", routeOf(r)),
				)
				if ww.Status() == 0 {
					dto.WriteErrorResponse(ww, r, errInternalServer)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
