package xlog

import (
	"log/slog"
	"time"
)

// 常用属性 key。
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyComponent = "component"
	KeyOperation = "operation"
	KeyTitle     = "title"
	KeyPID       = "pid"
)

// Err 创建错误属性。err 为 nil 时返回空属性（slog 会忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性，输出人类可读格式（如 "1m30s"）。
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Component 创建组件名属性。
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名属性。
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Title 创建进程标题属性。
func Title(title string) slog.Attr {
	return slog.String(KeyTitle, title)
}

// PID 创建进程 ID 属性。
func PID(pid int) slog.Attr {
	return slog.Int(KeyPID, pid)
}
