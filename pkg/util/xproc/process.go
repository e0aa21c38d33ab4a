package xproc

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// osExecutable 是 os.Executable 的包级变量，支持测试中 mock。
var osExecutable = os.Executable

// processName 缓存进程名称，避免每次调用都执行 readlink 系统调用。
var (
	processNameOnce  sync.Once
	processNameValue string
)

// invocationName 是包初始化时 os.Args[0] 的基础文件名。
// 必须先于 title.go 的 init 求值：init 之后参数区可能已被改写。
var invocationName = resolveInvocationName(os.Args)

// ProcessID 返回当前进程 ID。
func ProcessID() int {
	return os.Getpid()
}

// baseName 提取路径的基础文件名。
// 对 [filepath.Base] 返回的特殊值（"."、".."、路径分隔符）返回空字符串。
func baseName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

// resolveInvocationName 返回 args[0] 的基础文件名副本。
// 副本不与原始参数区共享内存。
func resolveInvocationName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return ""
	}
	return strings.Clone(baseName(args[0]))
}

// resolveProcessName 执行实际的进程名称解析。
func resolveProcessName() string {
	if exe, err := osExecutable(); err == nil && exe != "" {
		if name := baseName(exe); name != "" {
			return name
		}
	}
	if len(os.Args) == 0 || os.Args[0] == "" {
		return ""
	}
	return baseName(os.Args[0])
}

// ProcessName 返回当前可执行文件名称（不含路径）。
// 结果在首次调用时缓存（包括空字符串）。
//
// 优先使用 [os.Executable]，失败时回退到 os.Args[0]。
// ProcessName 与进程标题无关：[Rename] 不会改变它的返回值。
func ProcessName() string {
	processNameOnce.Do(func() {
		processNameValue = resolveProcessName()
	})
	return processNameValue
}

// InvocationName 返回进程启动时 argv[0] 的基础文件名，即 [Reset] 恢复的默认标题。
//
// 值在包初始化时确定，之后不受 [Rename] 或对 os.Args 的修改影响。
// argv[0] 为空时返回空字符串。
func InvocationName() string {
	return invocationName
}
