//go:build linux || darwin

package xproc

import "unsafe"

// argvArea 返回 args 所在的连续参数区。
//
// Go 运行时构造的 os.Args 字符串直接指向进程启动时的 argv 内存，
// 各参数以 NUL 分隔、首尾相接。区域从 args[0] 起始，延伸到最后一个
// 相邻参数的末尾（不含其结尾 NUL）。遇到不相邻的参数即停止。
// args 为空或 args[0] 为空时返回 nil。
func argvArea(args []string) []byte {
	if len(args) == 0 || args[0] == "" {
		return nil
	}

	start := unsafe.StringData(args[0])
	end := uintptr(unsafe.Pointer(start)) + uintptr(len(args[0]))

	for _, a := range args[1:] {
		p := unsafe.StringData(a)
		if p == nil || uintptr(unsafe.Pointer(p)) != end+1 {
			break
		}
		end += 1 + uintptr(len(a))
	}

	n := int(end - uintptr(unsafe.Pointer(start)))
	return unsafe.Slice(start, n)
}
