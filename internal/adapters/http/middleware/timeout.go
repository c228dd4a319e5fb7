package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler runs on its own goroutine
// against a buffered writer with a context carrying the deadline; if it has
// not returned when the deadline passes, the buffer is discarded and an RFC
// 9457 504 response is written instead. A handler panic is re-raised on the
// serving goroutine.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			buf := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)
			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
						return
					}
					close(done)
				}()
				next.ServeHTTP(buf, r)
			}()

			select {
			case v := <-panicked:
				// Re-raised here so Recovery, which runs on this goroutine, sees it.
				panic(v)
			case <-done:
				buf.copyTo(w)
			case <-ctx.Done():
				if buf.abandon() {
					dto.WriteErrorResponse(w, r, ctx.Err())
				}
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether it
// is delivered. Writes after abandon are dropped.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	status    int
	body      []byte
	abandoned bool
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 && !b.abandoned {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

// abandon marks the buffer as discarded and reports whether it was still
// open. It is false only when copyTo already ran.
func (b *bufferedWriter) abandon() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return false
	}
	b.abandoned = true
	return true
}

func (b *bufferedWriter) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.abandoned = true

	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
