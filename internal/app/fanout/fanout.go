// Package fanout runs one function over a slice of items with a bounded number
// of goroutines and collects a result per item in input order. A failing item
// does not stop the others.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome for a single item. Err is non-nil when fn failed
// or the item was never started because ctx was done.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item with at most maxWorkers calls in flight and
// blocks until all of them return. Results keep the order of items.
//
// Items that have not started when ctx is done are recorded with ctx.Err()
// and fn is not called for them. A maxWorkers below 1 is treated as 1. An
// empty items slice returns an empty, non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	// Per-item errors live in results; the group itself never fails.
	_ = g.Wait()
	return results
}
