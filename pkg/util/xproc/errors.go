package xproc

import "errors"

var (
	// ErrUnsupportedPlatform 表示当前平台不支持修改进程标题。
	ErrUnsupportedPlatform = errors.New("xproc: unsupported platform")

	// ErrEmptyTitle 表示进程标题为空或只包含空白字符。
	ErrEmptyTitle = errors.New("xproc: empty process title")

	// ErrInvalidTitle 表示进程标题包含 NUL 字节。
	ErrInvalidTitle = errors.New("xproc: process title contains NUL byte")

	// ErrTitleTruncated 表示参数区容纳不下完整标题，只写入了前缀。
	// 此时 [Title] 仍返回完整标题。
	ErrTitleTruncated = errors.New("xproc: process title truncated")

	// ErrKernelName 表示内核短名称设置失败。此时参数区中的标题已经更新。
	ErrKernelName = errors.New("xproc: set kernel name")

	// ErrEmptyName 表示要查找的进程名为空。
	ErrEmptyName = errors.New("xproc: empty process name")

	// ErrInvalidPID 表示进程 ID 无效。
	ErrInvalidPID = errors.New("xproc: pid must be greater than 0")

	// ErrProcessNotFound 表示目标进程不存在或已退出。
	ErrProcessNotFound = errors.New("xproc: process not found")
)
