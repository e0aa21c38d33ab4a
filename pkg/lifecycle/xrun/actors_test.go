package xrun

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicker(t *testing.T) {
	stop := errors.New("stop")
	var count atomic.Int32

	err := Ticker(5*time.Millisecond, true, func(context.Context) error {
		if count.Add(1) == 3 {
			return stop
		}
		return nil
	})(context.Background())

	require.ErrorIs(t, err, stop)
	assert.Equal(t, int32(3), count.Load())
}

func TestTicker_Invalid(t *testing.T) {
	ctx := context.Background()
	require.ErrorIs(t, Ticker(0, false, func(context.Context) error { return nil })(ctx), ErrInvalidInterval)
	require.ErrorIs(t, Ticker(time.Second, false, nil)(ctx), ErrNilFunc)
}

func TestTicker_CanceledBeforeImmediate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := Ticker(time.Second, true, func(context.Context) error {
		called = true
		return nil
	})(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestTicker_NoCallAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var count atomic.Int32
	err := Ticker(time.Millisecond, false, func(context.Context) error {
		count.Add(1)
		cancel()
		return nil
	})(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), count.Load())
}

func TestTimer(t *testing.T) {
	done := errors.New("done")
	err := Timer(5*time.Millisecond, func(context.Context) error { return done })(context.Background())
	require.ErrorIs(t, err, done)

	err = Timer(0, func(context.Context) error { return done })(context.Background())
	require.ErrorIs(t, err, done)
}

func TestTimer_Invalid(t *testing.T) {
	ctx := context.Background()
	require.ErrorIs(t, Timer(-time.Second, func(context.Context) error { return nil })(ctx), ErrInvalidDelay)
	require.ErrorIs(t, Timer(time.Second, nil)(ctx), ErrNilFunc)
}

func TestTimer_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	fn := func(context.Context) error {
		called = true
		return nil
	}
	require.ErrorIs(t, Timer(time.Hour, fn)(ctx), context.Canceled)
	require.ErrorIs(t, Timer(0, fn)(ctx), context.Canceled)
	assert.False(t, called)
}

func TestWaitForDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, WaitForDone()(ctx), context.Canceled)
}
