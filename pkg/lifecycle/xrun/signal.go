package xrun

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// DefaultSignals 返回默认监听的信号：SIGHUP、SIGINT、SIGTERM、SIGQUIT。
// 每次调用返回新切片。
func DefaultSignals() []os.Signal {
	return []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}
}

// injectedSignalsKey 让测试通过 context 投递信号，而不必向测试进程发送真实信号。
type injectedSignalsKey struct{}

func withTestSigChan(ctx context.Context, c <-chan os.Signal) context.Context {
	return context.WithValue(ctx, injectedSignalsKey{}, c)
}

func injectedSignals(ctx context.Context) <-chan os.Signal {
	c, _ := ctx.Value(injectedSignalsKey{}).(<-chan os.Signal)
	return c
}

// watchSignals 阻塞到收到 signals 之一或 ctx 取消。
// 收到信号时以 *SignalError 取消 Group 并返回 nil，由 Wait 返回该原因。
func (g *Group) watchSignals(ctx context.Context, signals []os.Signal) error {
	notified := make(chan os.Signal, 1)
	signal.Notify(notified, signals...)
	defer signal.Stop(notified)

	var sig os.Signal
	select {
	case <-ctx.Done():
		return ctx.Err()
	case sig = <-notified:
	case sig = <-injectedSignals(ctx):
	}

	g.cfg.groupLogger().Info("received signal", slog.String("signal", sig.String()))
	g.cancel(&SignalError{Signal: sig})
	return nil
}
