// Package health runs the readiness checks of the service's dependencies.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single check when New is given no timeout.
const DefaultCheckTimeout = 2 * time.Second

// Registry holds the checkers registered at startup and runs them all
// concurrently on each probe, each under its own timeout. It is safe for
// concurrent use.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	order    []string
	checkers map[string]ports.HealthChecker
}

// New returns an empty Registry whose checks are each cut off after timeout;
// a non-positive timeout means DefaultCheckTimeout.
func New(timeout time.Duration) *Registry {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return &Registry{timeout: timeout, checkers: make(map[string]ports.HealthChecker)}
}

// Register adds checker. A checker with the same name replaces the earlier one.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := checker.Name()
	if _, dup := r.checkers[name]; !dup {
		r.order = append(r.order, name)
	}
	r.checkers[name] = checker
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// CheckAll runs every checker and returns each result under its name. A check
// that panics or outlives the timeout is reported as failed.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	names := append([]string(nil), r.order...)
	checkers := make([]ports.HealthChecker, len(names))
	for i, name := range names {
		checkers[i] = r.checkers[name]
	}
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			errs[i] = r.run(ctx, names[i], c)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(names))
	for i, name := range names {
		results[name] = errs[i]
	}
	return results
}

func (r *Registry) run(ctx context.Context, name string, c ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if v := recover(); v != nil {
				done <- fmt.Errorf("%s: health check panicked: %v", name, v)
			}
		}()
		done <- c.HealthCheck(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: health check: %w", name, ctx.Err())
	}
}
