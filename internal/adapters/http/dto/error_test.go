package dto_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/logging"
)

func TestStatusOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.Invalid("theme", "unknown"), http.StatusBadRequest},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("project 7: %w", domain.ErrNotFound), http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"backend unavailable", fmt.Errorf("fetching progress: %w", domain.ErrUnavailable), http.StatusBadGateway},
		{"deadline", fmt.Errorf("fetching progress: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"joined keeps first match", errors.Join(domain.ErrNotFound, domain.ErrUnavailable), http.StatusNotFound},
		{"unknown", errors.New("nil map write"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dto.StatusOf(tt.err))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/projects/42/report?format=md", nil)
	err := fmt.Errorf("project 42: %w", domain.ErrNotFound)

	got := dto.NewErrorResponse(r, err)

	assert.Equal(t, dto.ErrorResponse{
		Type:     "about:blank",
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   "project 42: not found",
		Instance: "/api/v1/projects/42/report?format=md",
	}, got)
}

func TestNewErrorResponse_HidesInternalCause(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	got := dto.NewErrorResponse(r, errors.New("dial tcp 10.0.0.7:5432: secret-host"))

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, "internal server error", got.Detail)
}

func TestNewErrorResponse_ValidationLocations(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"path.id":                    "must be a valid integer",
		"query.partial_weight":       "must be a number",
		"completion.answered_weight": "must be between 0 and 1, got 2",
		"body":                       "invalid JSON",
	}}
	r := httptest.NewRequest(http.MethodPost, "/api/v1/projects/x/transcripts", nil)

	got := dto.NewErrorResponse(r, fmt.Errorf("decoding: %w", verr))

	assert.Equal(t, []dto.ErrorDetail{
		{Location: "body", Message: "invalid JSON"},
		{Location: "body.completion.answered_weight", Message: "must be between 0 and 1, got 2"},
		{Location: "path.id", Message: "must be a valid integer"},
		{Location: "query.partial_weight", Message: "must be a number"},
	}, got.Errors)
}

func TestNewErrorResponse_NoDetailsForOtherErrors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/projects/1/report", nil)
	assert.Nil(t, dto.NewErrorResponse(r, domain.ErrConflict).Errors)
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/projects/42/transcripts", nil)

	dto.WriteErrorResponse(w, r, domain.Invalid("transcript_text", domain.MsgRequired))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Bad Request", resp.Title)
	assert.Equal(t, []dto.ErrorDetail{{Location: "body.transcript_text", Message: "is required"}}, resp.Errors)
}

func TestWriteErrorResponse_LogsServerErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantLog bool
	}{
		{"client error is not logged", domain.ErrNotFound, false},
		{"backend failure is logged", domain.ErrUnavailable, true},
		{"internal failure is logged", errors.New("boom"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			r := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
			r = r.WithContext(logging.WithLogger(r.Context(), logger))

			dto.WriteErrorResponse(httptest.NewRecorder(), r, tt.err)

			if tt.wantLog {
				assert.Contains(t, buf.String(), "request failed")
				assert.Contains(t, buf.String(), tt.err.Error())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
