//go:build darwin

package xproc

func platformArea(args []string) []byte {
	return argvArea(args)
}

// setKernelName 在 macOS 上无操作：内核进程名来自可执行文件，不可修改。
func setKernelName(string) error {
	return nil
}
