package acl

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
)

func response(status int, contentType, body string) *http.Response {
	resp := &http.Response{StatusCode: status, Header: http.Header{}, Body: http.NoBody}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	if body != "" {
		resp.Body = io.NopCloser(strings.NewReader(body))
	}
	return resp
}

func TestTranslateHTTPError_Sentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, domain.ErrValidation},
		{http.StatusUnprocessableEntity, domain.ErrValidation},
		{http.StatusUnauthorized, domain.ErrForbidden},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusTooManyRequests, domain.ErrUnavailable},
		{http.StatusInternalServerError, domain.ErrUnavailable},
		{http.StatusBadGateway, domain.ErrUnavailable},
		{http.StatusServiceUnavailable, domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()
			err := TranslateHTTPError(response(tt.status, "", ""))
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), http.StatusText(tt.status))
		})
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError(response(http.StatusTeapot, "", ""))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 418")
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrValidation, domain.ErrUnavailable} {
		assert.NotErrorIs(t, err, sentinel)
	}
}

func TestTranslateHTTPError_Detail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		want        string
	}{
		{
			"problem document", http.StatusNotFound, "application/problem+json",
			`{"type":"about:blank","title":"Not Found","status":404,"detail":"project 42 not found"}`,
			"project 42 not found: not found",
		},
		{
			"framework string detail", http.StatusNotFound, "application/json; charset=utf-8",
			`{"detail":"Project with ID 7 not found"}`,
			"Project with ID 7 not found: not found",
		},
		{"plain text body", http.StatusNotFound, "text/plain", "no such project", "Not Found: not found"},
		{"invalid json", http.StatusConflict, "application/json", `{"detail":`, "Conflict: conflict"},
		{"empty body", http.StatusConflict, "application/json", "", "Conflict: conflict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := TranslateHTTPError(response(tt.status, tt.contentType, tt.body))
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestTranslateHTTPError_NilBody(t *testing.T) {
	t.Parallel()

	resp := response(http.StatusNotFound, "application/json", "")
	resp.Body = nil

	assert.ErrorIs(t, TranslateHTTPError(resp), domain.ErrNotFound)
}

func TestTranslateHTTPError_ValidationFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{
			name: "problem errors lose the body prefix",
			body: `{"detail":"validation failed","errors":[
				{"location":"body.transcript_text","message":"is required"},
				{"location":"body.project_id","message":"is required"}]}`,
			want: map[string]string{"transcript_text": "is required", "project_id": "is required"},
		},
		{
			name: "framework validation list",
			body: `{"detail":[
				{"loc":["body","project_id"],"msg":"field required","type":"value_error.missing"},
				{"loc":["query","status"],"msg":"invalid status"},
				{"loc":["body","answers",0],"msg":"not a string"},
				{"loc":["body"],"msg":"malformed"}]}`,
			want: map[string]string{
				"project_id": "field required",
				"status":     "invalid status",
				"answers.0":  "not a string",
				"request":    "malformed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := TranslateHTTPError(response(http.StatusUnprocessableEntity, "application/json", tt.body))

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Fields)
		})
	}
}

func TestTranslateEnvelopeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message string
		want    error
		wantMsg string
	}{
		{"Project with ID 3 not found", domain.ErrNotFound, "Project with ID 3 not found"},
		{"NOT FOUND: transcript", domain.ErrNotFound, "NOT FOUND"},
		{"database is locked", domain.ErrUnavailable, "database is locked"},
		{"", domain.ErrUnavailable, "backend reported an error"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			t.Parallel()
			err := TranslateEnvelopeError(tt.message)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
