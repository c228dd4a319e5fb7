package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/logging"
)

// lines decodes each JSON log line written to buf.
func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &rec), "line %q", raw)
		out = append(out, rec)
	}
	return out
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		emitted   []slog.Level
		suppressed []slog.Level
	}{
		{"debug", []slog.Level{slog.LevelDebug, slog.LevelInfo}, nil},
		{"DEBUG", []slog.Level{slog.LevelDebug}, nil},
		{"info", []slog.Level{slog.LevelInfo, slog.LevelWarn}, []slog.Level{slog.LevelDebug}},
		{"warn", []slog.Level{slog.LevelWarn, slog.LevelError}, []slog.Level{slog.LevelInfo}},
		{"error", []slog.Level{slog.LevelError}, []slog.Level{slog.LevelWarn}},
		{"verbose", []slog.Level{slog.LevelInfo}, []slog.Level{slog.LevelDebug}},
		{"", []slog.Level{slog.LevelInfo}, []slog.Level{slog.LevelDebug}},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(tt.level, "json", new(bytes.Buffer))
			for _, l := range tt.emitted {
				assert.True(t, logger.Enabled(t.Context(), l), "%s should be enabled", l)
			}
			for _, l := range tt.suppressed {
				assert.False(t, logger.Enabled(t.Context(), l), "%s should be suppressed", l)
			}
		})
	}
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logging.New("info", "json", &buf).Info("projects listed", slog.Int("count", 4))

		recs := lines(t, &buf)
		require.Len(t, recs, 1)
		assert.Equal(t, "INFO", recs[0]["level"])
		assert.Equal(t, "projects listed", recs[0]["msg"])
		assert.InDelta(t, 4, recs[0]["count"], 0)
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logging.New("info", "text", &buf).Info("projects listed", slog.Int("count", 4))

		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "count=4")
	})

	t.Run("unknown falls back to json", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logging.New("info", "xml", &buf).Info("hello")

		require.Len(t, lines(t, &buf), 1)
	})
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("x")
	logging.New("info", "json", &infoBuf).Info("x")

	assert.Contains(t, lines(t, &debugBuf)[0], "source")
	assert.NotContains(t, lines(t, &infoBuf)[0], "source")
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), logging.FromContext(t.Context()))

	first := logging.New("info", "json", new(bytes.Buffer))
	second := logging.New("debug", "json", new(bytes.Buffer))
	ctx := logging.WithLogger(t.Context(), first)
	assert.Same(t, first, logging.FromContext(ctx))

	ctx = logging.WithLogger(ctx, second)
	assert.Same(t, second, logging.FromContext(ctx))
}

func TestAppendAttrs_AddedToContextRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	ctx := logging.AppendAttrs(t.Context(), slog.String("request_id", "req-1"))
	ctx = logging.AppendAttrs(ctx, slog.String("correlation_id", "corr-1"))

	logger.InfoContext(ctx, "scoring project", slog.Int64("project_id", 12))
	logger.Info("no context")

	recs := lines(t, &buf)
	require.Len(t, recs, 2)
	assert.Equal(t, "req-1", recs[0]["request_id"])
	assert.Equal(t, "corr-1", recs[0]["correlation_id"])
	assert.InDelta(t, 12, recs[0]["project_id"], 0)
	assert.NotContains(t, recs[1], "request_id")
}

func TestAppendAttrs_SurvivesWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf).With(slog.String("component", "discovery"))

	ctx := logging.AppendAttrs(t.Context(), slog.String("request_id", "req-2"))
	logger.WithGroup("acl").InfoContext(ctx, "fetched")

	recs := lines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "discovery", recs[0]["component"])
	assert.Equal(t, map[string]any{"request_id": "req-2"}, recs[0]["acl"])
}

func TestContextual(t *testing.T) {
	t.Parallel()

	fromNew := logging.New("info", "json", new(bytes.Buffer))
	assert.Same(t, fromNew, logging.Contextual(fromNew))

	var buf bytes.Buffer
	plain := slog.New(slog.NewTextHandler(&buf, nil))
	wrapped := logging.Contextual(plain)
	require.NotSame(t, plain, wrapped)

	wrapped.InfoContext(logging.AppendAttrs(t.Context(), slog.String("request_id", "req-3")), "hi")
	assert.Contains(t, buf.String(), "request_id=req-3")
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization header", slog.String("authorization", "Bearer supersecret-token"), "supersecret-token"},
		{"password", slog.String("password", "hunter2"), "hunter2"},
		{"secret prefix", slog.String("secret_key", "s3cr3t-value"), "s3cr3t-value"},
		{"transcript text", slog.String("transcript_text", "Client confirmed the budget is 1.2M"), "budget is 1.2M"},
		{"answer text", slog.String("answer_text", "We deploy on Fridays"), "deploy on Fridays"},
		{"bearer inside other field", slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
		{"inline api key", slog.String("note", "retry with api_key=abc123xyz"), "abc123xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr, slog.Int64("project_id", 42))

			out := buf.String()
			assert.NotContains(t, out, tt.secret)
			assert.Contains(t, out, "[REDACTED]")
			assert.Contains(t, out, `"project_id":42`)
		})
	}
}

func TestNew_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("event",
		slog.String("route", "/api/v1/projects/{id}/completion"),
		slog.String("status", "active"),
	)

	rec := lines(t, &buf)[0]
	assert.Equal(t, "/api/v1/projects/{id}/completion", rec["route"])
	assert.Equal(t, "active", rec["status"])
}
