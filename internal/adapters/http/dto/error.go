package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/logging"
)

const problemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail names one invalid input. Location is prefixed with where the
// input came from: path., query. or body.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// statusBySentinel is checked in order; the first match wins.
var statusBySentinel = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// StatusOf returns the HTTP status for err. Errors outside the domain
// vocabulary are 500s.
func StatusOf(err error) int {
	for _, m := range statusBySentinel {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse describes err as a problem for the request r. The detail
// of a 500 is generic; the cause is for the logs only.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusOf(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.URL.RequestURI(),
	}
	if status == http.StatusInternalServerError {
		resp.Detail = "internal server error"
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = make([]ErrorDetail, 0, len(verr.Fields))
		for field, msg := range verr.Fields {
			resp.Errors = append(resp.Errors, ErrorDetail{Location: location(field), Message: msg})
		}
		slices.SortFunc(resp.Errors, func(a, b ErrorDetail) int {
			return strings.Compare(a.Location, b.Location)
		})
	}
	return resp
}

// WriteErrorResponse writes err as an application/problem+json response.
// Server-side failures are logged with the request's logger.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	if resp.Status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
	WriteProblem(w, r, resp)
}

// WriteProblem writes resp with its own status.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response", slog.Any("error", err))
	}
}

// location qualifies a validation field. Bare names are body fields.
func location(field string) string {
	switch {
	case field == "body",
		strings.HasPrefix(field, "path."),
		strings.HasPrefix(field, "query."),
		strings.HasPrefix(field, "body."):
		return field
	}
	return "body." + field
}
