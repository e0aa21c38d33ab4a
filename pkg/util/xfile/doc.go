// Package xfile 提供文件路径校验与目录准备。
//
// [SanitizePath] 规范化用户传入的文件路径，拒绝空路径、空字节、目录路径和相对路径穿越；
// [EnsureDir] 为文件创建父目录。日志轮转文件在打开前依次经过这两步。
package xfile
