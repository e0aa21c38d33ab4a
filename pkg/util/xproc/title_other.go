//go:build !linux && !darwin

package xproc

// platformArea 在不支持的平台上返回 nil，使 [Supported] 为 false。
func platformArea([]string) []byte {
	return nil
}

func setKernelName(string) error {
	return nil
}
