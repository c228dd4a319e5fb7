// Package acl is the anti-corruption layer between the dashboard and the
// discovery backend. The subpackages (progress, question, project) translate
// wire shapes into domain types; this package owns the client and maps
// backend failures onto the domain error vocabulary.
package acl

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
)

const maxErrorBodySize = 1 << 20

// problem is what could be read from an error body. The backend emits two
// shapes: RFC 7807 documents with a string detail and an errors list, and
// the framework default where detail is either a string or a list of
// {loc, msg} validation items.
type problem struct {
	detail string
	fields map[string]string
}

type problemBody struct {
	Detail json.RawMessage `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

type validationItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// TranslateHTTPError maps a non-2xx backend response to a domain error.
// Validation statuses that name fields become a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)
	detail := cmp.Or(p.detail, http.StatusText(resp.StatusCode))

	code := resp.StatusCode
	var sentinel error
	switch {
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		if len(p.fields) > 0 {
			return &domain.ValidationError{Fields: p.fields}
		}
		sentinel = domain.ErrValidation
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case code == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case code == http.StatusConflict:
		sentinel = domain.ErrConflict
	case code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		sentinel = domain.ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d from discovery backend: %s", code, detail)
	}
	return fmt.Errorf("%s: %w", detail, sentinel)
}

// TranslateEnvelopeError maps the message of a {"status":"error"} envelope,
// which the backend sends with a 200. A message about a missing entity is
// ErrNotFound; anything else is a backend failure.
func TranslateEnvelopeError(message string) error {
	message = cmp.Or(message, "backend reported an error")
	if strings.Contains(strings.ToLower(message), "not found") {
		return fmt.Errorf("%s: %w", message, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", message, domain.ErrUnavailable)
}

// readProblem returns the zero problem for bodies that are missing, not
// JSON, or not one of the known shapes.
func readProblem(resp *http.Response) problem {
	if resp.Body == nil {
		return problem{}
	}
	mt, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mt != "application/json" && mt != "application/problem+json" {
		return problem{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problem{}
	}
	var body problemBody
	if json.Unmarshal(raw, &body) != nil {
		return problem{}
	}

	var p problem
	for _, e := range body.Errors {
		if p.fields == nil {
			p.fields = make(map[string]string, len(body.Errors))
		}
		p.fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
	}

	var items []validationItem
	switch {
	case len(body.Detail) == 0:
	case json.Unmarshal(body.Detail, &p.detail) == nil:
	case json.Unmarshal(body.Detail, &items) == nil && len(items) > 0:
		if p.fields == nil {
			p.fields = make(map[string]string, len(items))
		}
		for _, it := range items {
			p.fields[locField(it.Loc)] = it.Msg
		}
		p.detail = "request validation failed"
	}
	return p
}

// locField turns ["body","answers",0] into "answers.0". The leading element
// naming the request part is dropped.
func locField(loc []any) string {
	parts := make([]string, 0, len(loc))
	for i, part := range loc {
		s := fmt.Sprint(part)
		if i == 0 && (s == "body" || s == "query" || s == "path") {
			continue
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "request"
	}
	return strings.Join(parts, ".")
}
