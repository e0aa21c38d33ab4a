// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 文件路径校验与父目录创建
//   - xproc: 进程信息查询与进程标题管理（改名、恢复、读取、跨进程查看）
package util
