// Package xrun 提供基于 errgroup + context 的进程生命周期管理。
//
// 多个服务在同一个 [Group] 中并发运行：任一服务返回错误、收到终止信号
// 或调用 [Group.Cancel] 时，共享的 context 被取消，所有服务应监听 ctx.Done() 退出。
//
//	err := xrun.RunWithOptions(ctx, []xrun.Option{xrun.WithName("hold")},
//	    xrun.WaitForDone(),
//	    xrun.Timer(time.Minute, func(ctx context.Context) error { return errDone }),
//	)
//	var sigErr *xrun.SignalError
//	if errors.As(err, &sigErr) {
//	    log.Printf("received signal: %v", sigErr.Signal)
//	}
//
// # 错误语义
//
//   - 服务返回的第一个非 context.Canceled 错误原样返回
//   - Group 被取消且带有显式原因（如 [SignalError]）时返回该原因
//   - Group 被取消且无显式原因时返回 nil
//   - 服务内部产生的 context.Canceled（Group 未被取消）不过滤
//
// [Run]、[RunWithOptions]、[RunServices] 默认监听 [DefaultSignals]，
// 可用 [WithSignals] 替换或 [WithoutSignalHandler] 关闭。直接使用 [NewGroup] 不监听信号。
package xrun
