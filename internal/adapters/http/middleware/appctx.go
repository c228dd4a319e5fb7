package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/discovery-dashboard/internal/app/context"
)

// AppContext attaches an empty per-request memo. Services use it to read
// the stored settings once per request, however many projects they score.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			memo := appctx.New()
			next.ServeHTTP(w, r.WithContext(appctx.With(r.Context(), memo)))
		}
		return http.HandlerFunc(fn)
	}
}
