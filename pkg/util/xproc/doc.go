// Package xproc 提供进程信息查询与进程标题管理。
//
// # 功能概览
//
//   - [ProcessID]、[ProcessName]: 当前进程 PID 与可执行文件名
//   - [Rename]: 将进程标题（ps、top 中显示的命令行）设置为指定字符串
//   - [Reset]: 将进程标题恢复为启动名称 [InvocationName]
//   - [Title]: 读取当前进程标题
//   - [Supported]、[CheckSupport]: 能力探测，调用方可据此提前跳过
//   - [Inspect]、[FindByName]: 以外部观察者视角读取任意进程的名称与命令行
//
// # 平台支持
//
// 进程标题写入进程启动时的参数区（argv 所在内存），可用长度由 [Capacity] 给出。
// 超出时参数区只保存按 UTF-8 边界截断的前缀，[Rename] 返回 [ErrTitleTruncated]，
// [Title] 仍返回完整标题。
//
//   - Linux: 改写参数区，并同步内核短名称（/proc/self/comm，最长 15 字节），
//     procfs 不可写时回退到 prctl(PR_SET_NAME)
//   - macOS: 改写参数区
//   - 其他平台: [Rename]、[Reset]、[Title] 返回 [ErrUnsupportedPlatform]，不修改任何状态
//
// [Inspect]、[FindByName] 基于 gopsutil，不受上述限制。
//
// 参数校验（空标题、NUL 字节）在所有平台上行为一致，且先于平台检查执行。
//
// # os.Args
//
// 包初始化时 os.Args 被替换为独立副本，[Rename] 之后读取 os.Args 仍得到原始参数。
// 在本包初始化之前保存的 os.Args 字符串（如 flag.CommandLine 的名称）仍指向参数区，
// 会随标题一起变化。
package xproc
