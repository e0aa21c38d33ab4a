//go:build linux

package xproc

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// 系统调用与 procfs 访问的包级变量，支持测试中 mock 替换以覆盖错误路径。
// 注意：mock 测试不可使用 t.Parallel()。
var (
	commPath = "/proc/self/comm"
	prctl    = unix.Prctl
)

func platformArea(args []string) []byte {
	return argvArea(args)
}

// setKernelName 设置主线程的内核短名称（ps -o comm、top 默认列）。
//
// /proc/self/comm 始终指向线程组 leader，与调用 goroutine 所在线程无关；
// prctl(PR_SET_NAME) 只作用于当前线程，仅作回退。
func setKernelName(title string) error {
	name := truncateUTF8(title, commMaxLen)

	werr := writeComm(name)
	if werr == nil {
		return nil
	}

	buf := make([]byte, commMaxLen+1)
	copy(buf, name)
	if perr := prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0); perr != nil {
		return fmt.Errorf("%w: %w", ErrKernelName, errors.Join(werr, perr))
	}
	return nil
}

func writeComm(name string) error {
	f, err := os.OpenFile(commPath, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	_, err = f.Write([]byte(name))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
