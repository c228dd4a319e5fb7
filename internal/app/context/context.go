// Package appctx memoizes reads within a single request. The AppContext
// middleware puts a fresh Memo in every request context; services then read
// shared inputs, such as the stored settings, through Memoize so a request
// that scores many projects loads them once.
//
//	ctx = appctx.With(ctx, appctx.New())
//	s, err := appctx.Memoize(ctx, "settings", store.Load)
//
// Without a Memo in the context, Memoize just calls the fetch function.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTypeMismatch means one key was memoized under two different types.
var ErrTypeMismatch = errors.New("appctx: memoized value has a different type")

// Memo is a per-request cache of fetch results, errors included. It is safe
// for concurrent use; concurrent fetches of one key call the fetch function
// once.
type Memo struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	once  sync.Once
	value any
	err   error
}

// New returns an empty Memo.
func New() *Memo {
	return &Memo{entries: make(map[string]*entry)}
}

type memoKey struct{}

// With returns a copy of ctx carrying m.
func With(ctx context.Context, m *Memo) context.Context {
	return context.WithValue(ctx, memoKey{}, m)
}

// FromContext returns the Memo carried by ctx, or nil.
func FromContext(ctx context.Context) *Memo {
	m, _ := ctx.Value(memoKey{}).(*Memo)
	return m
}

// Memoize returns the result memoized for key in ctx's Memo, calling fetch
// with ctx on the first use. A fetch cut short by ctx is not memoized, so a
// later caller with a live context fetches again.
func Memoize[T any](ctx context.Context, key string, fetch func(context.Context) (T, error)) (T, error) {
	m := FromContext(ctx)
	if m == nil {
		return fetch(ctx)
	}

	e := m.entry(key)
	e.once.Do(func() { e.value, e.err = fetch(ctx) })

	var zero T
	if e.err != nil {
		if errors.Is(e.err, context.Canceled) || errors.Is(e.err, context.DeadlineExceeded) {
			m.drop(key, e)
		}
		return zero, e.err
	}
	v, ok := e.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T, not %T", ErrTypeMismatch, key, e.value, zero)
	}
	return v, nil
}

// Invalidate forgets key, typically after the request wrote what it had read.
func (m *Memo) Invalidate(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

func (m *Memo) entry(key string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		e = &entry{}
		m.entries[key] = e
	}
	return e
}

// drop removes e only if it is still the entry for key.
func (m *Memo) drop(key string, e *entry) {
	m.mu.Lock()
	if m.entries[key] == e {
		delete(m.entries, key)
	}
	m.mu.Unlock()
}
