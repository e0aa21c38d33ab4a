// Package xlog 基于 log/slog 的结构化日志库。
//
// # 创建 Logger
//
// 使用 Builder 模式配置，遇到第一个配置错误后后续 Set 操作被跳过，错误由 [Builder.Build] 返回：
//
//	logger, cleanup, err := xlog.New().
//	    SetLevelString("debug").
//	    SetFormat("json").
//	    SetRotation("/var/log/app.log", xlog.RotateOptions{MaxSizeMB: 100}).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
// [Builder.SetRotation] 通过 lumberjack 按文件大小轮转。
//
// # 调用约定
//
// 所有日志方法以 context.Context 为第一个参数，属性只接受 slog.Attr。
// 常用属性见 [Err]、[Duration]、[Component]、[Operation]、[Title]、[PID]。
//
// # 全局 Logger
//
// 适用于命令行工具等简单场景：[Default]、[SetDefault]、[ResetDefault]，
// 以及 [Debug]、[Info]、[Warn]、[Error] 便利函数。
//
// # 与 *slog.Logger 互通
//
// 只接受 *slog.Logger 的组件（如 xrun）可通过 [Slog] 复用同一输出与级别。
package xlog
