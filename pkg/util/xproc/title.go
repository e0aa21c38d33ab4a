package xproc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"
)

// titleArea 是进程启动参数区，nil 表示当前平台或进程不支持改写标题。
// titleValue 是最近一次 Rename 请求的完整标题，参数区容纳不下时两者不同。
// titleMu 保护以上两者。
var (
	titleMu    sync.Mutex
	titleArea  []byte
	titleValue string
)

func init() {
	titleArea = platformArea(os.Args)
	if titleArea != nil {
		os.Args = cloneArgs(os.Args)
	}
}

// cloneArgs 返回不与参数区共享内存的参数副本。
func cloneArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = strings.Clone(a)
	}
	return out
}

// Supported 报告当前进程能否修改进程标题。
// 结果在包初始化时确定。
func Supported() bool {
	return titleArea != nil
}

// CheckSupport 在不支持修改进程标题时返回 [ErrUnsupportedPlatform]，否则返回 nil。
func CheckSupport() error {
	if !Supported() {
		return ErrUnsupportedPlatform
	}
	return nil
}

// Capacity 返回可写入进程标题的最大字节数，不支持时返回 0。
func Capacity() int {
	return len(titleArea)
}

// validateTitle 校验标题。跨平台共享。
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if strings.IndexByte(title, 0) >= 0 {
		return ErrInvalidTitle
	}
	return nil
}

// Rename 将进程标题设置为 title。
//
// 重复设置相同标题结果不变。之后 [Title] 总是返回完整的 title。
// title 超过 [Capacity] 时参数区中只写入按 UTF-8 边界截断的前缀，
// 返回包装 [ErrTitleTruncated] 的错误。
// 不支持的平台返回 [ErrUnsupportedPlatform]，进程状态不变。
// Linux 上同时设置内核短名称；短名称设置失败时参数区已更新，返回包装 [ErrKernelName] 的错误。
//
// 注意：os.Args 在包初始化时已替换为副本，但在此之前取得的参数字符串
// （如 flag.CommandLine.Name()、runtime 内部保存的参数）仍引用参数区，
// 其内容会随标题一起改变。
func Rename(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if !Supported() {
		return ErrUnsupportedPlatform
	}

	titleMu.Lock()
	defer titleMu.Unlock()

	var truncErr error
	if n := writeArea(titleArea, title); n < len(title) {
		truncErr = fmt.Errorf("%w: wrote %d of %d bytes", ErrTitleTruncated, n, len(title))
	}
	titleValue = title
	return errors.Join(truncErr, setKernelName(title))
}

// Reset 将进程标题恢复为 [InvocationName]。
func Reset() error {
	return Rename(InvocationName())
}

// Title 返回当前进程标题：最近一次 [Rename] 请求的完整标题。
// 尚未调用 [Rename] 时返回参数区中的第一个参数。
func Title() (string, error) {
	if !Supported() {
		return "", ErrUnsupportedPlatform
	}

	titleMu.Lock()
	defer titleMu.Unlock()

	if titleValue != "" {
		return titleValue, nil
	}
	return readArea(titleArea), nil
}

// writeArea 写入标题并以 NUL 填充剩余空间，返回写入的字节数。
func writeArea(area []byte, title string) int {
	n := copy(area, truncateUTF8(title, len(area)))
	clear(area[n:])
	return n
}

// readArea 返回第一个 NUL 之前的内容。
func readArea(area []byte) string {
	if i := bytes.IndexByte(area, 0); i >= 0 {
		return string(area[:i])
	}
	return string(area)
}

// truncateUTF8 将 s 截断到不超过 limit 字节，且不拆分多字节字符。
func truncateUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if limit <= 0 {
		return ""
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
