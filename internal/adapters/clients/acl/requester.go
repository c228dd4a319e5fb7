package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/httpclient"
)

// envelope is the status/message pair the backend adds to most bodies. A
// 2xx response whose status is "error" still reports a failure.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Requester speaks JSON to the discovery backend through an
// httpclient.Client and turns every failure into a domain error:
//
//   - non-2xx statuses go through TranslateHTTPError
//   - 2xx bodies carrying an error envelope go through TranslateEnvelopeError
//   - transport failures wrap domain.ErrUnavailable, except context
//     cancellation and deadlines, which are returned as they are
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester returns a Requester sending through client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Get fetches path and decodes the JSON response into out.
func (r *Requester) Get(ctx context.Context, path string, out any) error {
	return r.do(ctx, http.MethodGet, path, nil, out)
}

// Post sends in as JSON to path and decodes the response into out.
func (r *Requester) Post(ctx context.Context, path string, in, out any) error {
	return r.do(ctx, http.MethodPost, path, in, out)
}

func (r *Requester) do(ctx context.Context, method, path string, in, out any) error {
	req, err := r.newRequest(ctx, method, path, in)
	if err != nil {
		return err
	}

	// httpclient returns the final response alongside the error when the
	// retries run out on a retryable status, so resp is checked first.
	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()
	}
	switch {
	case resp != nil && (resp.StatusCode < 200 || resp.StatusCode > 299):
		return r.fail(ctx, req, TranslateHTTPError(resp))
	case err != nil:
		return r.fail(ctx, req, transportError(req, err))
	case out == nil:
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return r.fail(ctx, req, fmt.Errorf("reading %s %s: %w: %w", method, path, domain.ErrUnavailable, err))
	}
	var env envelope
	if json.Unmarshal(raw, &env) == nil && env.Status == "error" {
		return r.fail(ctx, req, TranslateEnvelopeError(env.Message))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}

func (r *Requester) newRequest(ctx context.Context, method, path string, in any) (*http.Request, error) {
	body := io.Reader(http.NoBody)
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// fail logs err against the request and returns it.
func (r *Requester) fail(ctx context.Context, req *http.Request, err error) error {
	r.logger.WarnContext(ctx, "discovery backend call failed",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Any("error", err),
	)
	return err
}

func transportError(req *http.Request, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
}
