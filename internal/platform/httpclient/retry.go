package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/logging"
)

// retryJitter spreads each delay over ±25% of its nominal value.
const retryJitter = 0.25

// retryPolicy is the retry section of config.ClientConfig.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// backOff returns a fresh exponential schedule. ExponentialBackOff is not
// safe for concurrent use, so each request gets its own.
func (p retryPolicy) backOff() *backoff.ExponentialBackOff {
	return &backoff.ExponentialBackOff{
		InitialInterval:     p.initialInterval,
		RandomizationFactor: retryJitter,
		Multiplier:          p.multiplier,
		MaxInterval:         p.maxInterval,
	}
}

// StatusError reports a retryable status (429 or 5xx) that was still being
// returned when the attempts ran out.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.Service)
}

// doWithRetry sends req up to maxAttempts times. Transport errors other than
// cancellation are retried, as are 429 and 5xx responses; a Retry-After
// header, capped at the policy's maxInterval, replaces the computed delay.
// The body is buffered so that it can be replayed.
//
// When the final attempt still gets a retryable status, its response is
// returned unread together with a *StatusError, and the caller must close
// it. Bodies of earlier attempts are drained and closed here.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.maxAttempts < 1 {
		return nil, fmt.Errorf("httpclient: retry max attempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return nil, err
	}

	attempt := 0
	send := func() (*http.Response, error) {
		attempt++
		resetRequestBody(req, body)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}

		statusErr := &StatusError{Service: c.serviceName, StatusCode: resp.StatusCode}
		if attempt == c.retry.maxAttempts {
			return resp, statusErr
		}

		wait := retryAfter(resp, c.retry.maxInterval)
		drainResponseBody(resp)
		if wait > 0 {
			return nil, errors.Join(statusErr, &backoff.RetryAfterError{Duration: wait})
		}
		return nil, statusErr
	}

	logger := logging.FromContext(ctx)
	return backoff.Retry(ctx, send,
		backoff.WithBackOff(c.retry.backOff()),
		backoff.WithMaxTries(uint(c.retry.maxAttempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, delay time.Duration) {
			logger.WarnContext(ctx, "retrying HTTP request",
				slog.String("operation", "httpclient.Do"),
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.String("peer_service", c.serviceName),
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", c.retry.maxAttempts),
				slog.Duration("backoff", delay),
				slog.Any("error", err),
			)
		}),
	)
}

// retryAfter returns the delay requested by a Retry-After header, in seconds
// or as an HTTP date, capped at limit. It is zero when the header is absent,
// malformed or in the past.
func retryAfter(resp *http.Response, limit time.Duration) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}

	var d time.Duration
	if secs, err := strconv.Atoi(v); err == nil {
		d = time.Duration(secs) * time.Second
	} else if at, err := http.ParseTime(v); err == nil {
		d = time.Until(at)
	}
	if d <= 0 {
		return 0
	}
	return min(d, limit)
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func resetRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody lets the connection be reused by the next attempt.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// isRetryable reports whether a transport error is worth another attempt.
// Only cancellation and deadline expiry are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
