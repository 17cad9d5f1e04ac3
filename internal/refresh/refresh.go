// Package refresh runs a periodic fetch bound to the lifetime of a context.
package refresh

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidInterval is returned for non-positive intervals.
var ErrInvalidInterval = errors.New("refresh interval must be positive")

// Func performs one refresh.
type Func func(ctx context.Context) error

// Option configures Run.
type Option func(*runner)

type runner struct {
	onError func(error)
}

// WithErrorHandler receives errors returned by the refresh function.
func WithErrorHandler(fn func(error)) Option {
	return func(r *runner) { r.onError = fn }
}

// Run calls fn immediately and then once per interval until ctx is done.
// Calls never overlap: ticks that fire while fn is running are dropped.
// Errors from fn do not stop the schedule. Run returns ctx.Err().
func Run(ctx context.Context, interval time.Duration, fn Func, opts ...Option) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}
	r := &runner{}
	for _, opt := range opts {
		opt(r)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(ctx); err != nil && r.onError != nil && ctx.Err() == nil {
			r.onError(err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
