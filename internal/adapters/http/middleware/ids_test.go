package middleware_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/middleware"
)

func TestRequestID_GeneratesUUIDWhenMissing(t *testing.T) {
	t.Parallel()

	var seen string
	h := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	rec := serve(h, http.MethodGet, "/api/v1/projects")

	_, err := uuid.Parse(seen)
	require.NoError(t, err, "generated request ID %q is not a UUID", seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	t.Parallel()

	var seen string
	h := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	rec := serve(h, http.MethodGet, "/api/v1/projects", "X-Request-ID", "req-123")

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	h := middleware.RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	first := serve(h, http.MethodGet, "/").Header().Get("X-Request-ID")
	second := serve(h, http.MethodGet, "/").Header().Get("X-Request-ID")

	assert.NotEqual(t, first, second)
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers []string
		want    string
	}{
		{
			name:    "incoming correlation ID wins",
			headers: []string{"X-Request-ID", "req-1", "X-Correlation-ID", "corr-1"},
			want:    "corr-1",
		},
		{
			name:    "falls back to request ID",
			headers: []string{"X-Request-ID", "req-2"},
			want:    "req-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := middleware.RequestID()(middleware.CorrelationID()(
				http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					seen = middleware.CorrelationIDFromContext(r.Context())
				}),
			))

			rec := serve(h, http.MethodGet, "/", tt.headers...)

			assert.Equal(t, tt.want, seen)
			assert.Equal(t, tt.want, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestIDsFromContext_EmptyWithoutMiddleware(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	assert.Empty(t, middleware.RequestIDFromContext(ctx))
	assert.Empty(t, middleware.CorrelationIDFromContext(ctx))
}
