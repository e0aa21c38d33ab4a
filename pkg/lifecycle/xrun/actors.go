package xrun

import (
	"context"
	"time"
)

// await 阻塞到 c 可读或 ctx 取消。c 为 nil 时只等待 ctx。
func await(ctx context.Context, c <-chan time.Time) error {
	select {
	case <-c:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// invoke 在 ctx 未取消时调用 fn。
func invoke(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

// Ticker 返回每隔 interval 执行一次 fn 的服务函数，immediate 为 true 时启动后先执行一次。
// fn 返回错误时服务以该错误退出；ctx 取消时返回 ctx.Err()，取消之后不再调用 fn。
func Ticker(interval time.Duration, immediate bool, fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		switch {
		case interval <= 0:
			return ErrInvalidInterval
		case fn == nil:
			return ErrNilFunc
		}

		ticks := time.NewTicker(interval)
		defer ticks.Stop()

		if !immediate {
			if err := await(ctx, ticks.C); err != nil {
				return err
			}
		}
		for {
			if err := invoke(ctx, fn); err != nil {
				return err
			}
			if err := await(ctx, ticks.C); err != nil {
				return err
			}
		}
	}
}

// Timer 返回在 delay 之后执行一次 fn 的服务函数，delay 为 0 时立即执行。
func Timer(delay time.Duration, fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		switch {
		case delay < 0:
			return ErrInvalidDelay
		case fn == nil:
			return ErrNilFunc
		}

		if delay > 0 {
			t := time.NewTimer(delay)
			defer t.Stop()
			if err := await(ctx, t.C); err != nil {
				return err
			}
		}
		return invoke(ctx, fn)
	}
}

// WaitForDone 返回阻塞到 ctx 取消的占位服务。
func WaitForDone() func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return await(ctx, nil)
	}
}
