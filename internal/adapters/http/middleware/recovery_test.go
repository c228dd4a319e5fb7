package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/middleware"
)

func TestRecovery_PassesThrough(t *testing.T) {
	t.Parallel()

	h := projectRoute(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"percentage":77}`))
	}, middleware.Recovery(discardLogger()))

	rec := serve(h, http.MethodGet, "/api/v1/projects/3/completion")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"percentage":77}`, rec.Body.String())
}

func TestRecovery_WritesProblemOnPanic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{"string", "breakdown missing"},
		{"error", assert.AnError},
		{"int", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := projectRoute(func(http.ResponseWriter, *http.Request) {
				panic(tt.value)
			}, middleware.Recovery(discardLogger()))

			rec := serve(h, http.MethodGet, "/api/v1/projects/3/completion")

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var problem dto.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&problem))
			assert.Equal(t, "Internal Server Error", problem.Title)
			assert.Equal(t, "internal server error", problem.Detail, "panic value must not leak")
		})
	}
}

func TestRecovery_LogsPanicWithRouteAndStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := projectRoute(func(http.ResponseWriter, *http.Request) {
		panic("nil breakdown")
	}, middleware.Recovery(testLogger(&buf)))

	serve(h, http.MethodGet, "/api/v1/projects/3/completion")

	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "nil breakdown")
	assert.Contains(t, out, "route=/api/v1/projects/{id}/completion")
	assert.Contains(t, out, "goroutine")
}

func TestRecovery_KeepsStartedResponse(t *testing.T) {
	t.Parallel()

	h := projectRoute(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("partial"))
		panic("late panic")
	}, middleware.Recovery(discardLogger()))

	rec := serve(h, http.MethodGet, "/api/v1/projects/3/completion")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestRecovery_AbortHandlerIsRepanicked(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(h, http.MethodGet, "/")
	})
}
