package xfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDirPerm 是 [EnsureDir] 创建目录时使用的权限。
const DefaultDirPerm = 0o750

// SanitizePath 校验并规范化文件路径。
//
// 绝对路径中的 ".." 由 filepath.Clean 正常解析；规范化后仍含 ".." 段的相对路径
// 返回 [ErrPathTraversal]。'/' 与 '\' 都视为分隔符。
func SanitizePath(filename string) (string, error) {
	if filename == "" {
		return "", ErrEmptyPath
	}
	if strings.IndexByte(filename, 0) >= 0 {
		return "", ErrNullByte
	}
	// Clean 会去掉尾部分隔符，需先检查
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, `\`) {
		return "", fmt.Errorf("%w: %q is a directory", ErrInvalidPath, filename)
	}

	cleaned := filepath.Clean(filename)
	if hasDotDotSegment(cleaned) {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, filename)
	}
	if base := filepath.Base(cleaned); base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q has no file name", ErrInvalidPath, filename)
	}
	return cleaned, nil
}

// hasDotDotSegment 报告 path 是否包含恰好为 ".." 的路径段。
// "app..2024.log" 这类文件名不算。
func hasDotDotSegment(path string) bool {
	for seg := range strings.FieldsFuncSeq(path, isSeparator) {
		if seg == ".." {
			return true
		}
	}
	return false
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// EnsureDir 以 [DefaultDirPerm] 创建 filename 的父目录，目录已存在时不做任何修改。
// os.MkdirAll 会跟随路径中的符号链接。
func EnsureDir(filename string) error {
	if filename == "" {
		return ErrEmptyPath
	}
	if strings.IndexByte(filename, 0) >= 0 {
		return ErrNullByte
	}
	dir := filepath.Dir(filename)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, DefaultDirPerm)
}
