package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunCallsImmediatelyAndOnTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, 10*time.Millisecond, func(context.Context) error {
			if calls.Add(1) == 3 {
				cancel()
			}
			return nil
		})
	}()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop")
	}
	require.Equal(t, int32(3), calls.Load())
}

func TestRunFirstCallIsImmediate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	called := make(chan struct{}, 1)
	go func() {
		_ = Run(ctx, time.Hour, func(context.Context) error {
			called <- struct{}{}
			return nil
		})
	}()

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("refresh was not invoked immediately")
	}
}

func TestRunReportsErrorsAndContinues(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	var reported atomic.Int32
	boom := errors.New("boom")

	err := Run(ctx, time.Millisecond, func(context.Context) error {
		if calls.Add(1) == 2 {
			cancel()
			return nil
		}
		return boom
	}, WithErrorHandler(func(err error) {
		require.ErrorIs(t, err, boom)
		reported.Add(1)
	}))

	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, int32(2), calls.Load())
	require.Equal(t, int32(1), reported.Load())
}

func TestRunNeverOverlaps(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var running, overlaps, calls atomic.Int32
	err := Run(ctx, time.Millisecond, func(context.Context) error {
		if running.Add(1) > 1 {
			overlaps.Add(1)
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		if calls.Add(1) == 4 {
			cancel()
		}
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, overlaps.Load())
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := Run(ctx, time.Second, func(context.Context) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}

func TestRunRejectsInvalidInterval(t *testing.T) {
	err := Run(context.Background(), 0, func(context.Context) error { return nil })
	require.ErrorIs(t, err, ErrInvalidInterval)
}
