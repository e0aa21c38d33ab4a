package xproc

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"slices"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// commMaxLen 是内核短名称的最大长度（TASK_COMM_LEN - 1）。
const commMaxLen = 15

// Info 是外部观察者看到的进程名称信息。
type Info struct {
	// PID 进程 ID。
	PID int

	// Comm 进程名。Linux 上为内核短名称，最长 15 字节；
	// 短名称被截断且命令行首项与之同前缀时，为命令行首项的 basename。
	Comm string

	// Args 命令行参数，已去除参数区 NUL 填充产生的末尾空项。
	Args []string

	// Title 以空格连接 Args，与 ps 的 COMMAND 列一致。
	Title string
}

// procHandle 是读取单个进程信息所需的最小接口，生产实现包装 gopsutil 的 *process.Process。
type procHandle interface {
	PID() int
	Name() (string, error)
	CmdlineSlice() ([]string, error)
}

type gopsProcess struct {
	*process.Process
}

func (p gopsProcess) PID() int { return int(p.Pid) }

// 进程枚举的包级变量，支持测试中 mock 替换。
// 注意：mock 测试不可使用 t.Parallel()。
var (
	openProcess = func(pid int32) (procHandle, error) {
		p, err := process.NewProcess(pid)
		if err != nil {
			return nil, err
		}
		return gopsProcess{p}, nil
	}

	listProcesses = func() ([]procHandle, error) {
		ps, err := process.Processes()
		if err != nil {
			return nil, err
		}
		out := make([]procHandle, len(ps))
		for i, p := range ps {
			out[i] = gopsProcess{p}
		}
		return out, nil
	}
)

// Inspect 读取 pid 进程的名称与命令行。
// 进程不存在时返回 [ErrProcessNotFound]。
func Inspect(pid int) (*Info, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return nil, ErrInvalidPID
	}

	p, err := openProcess(int32(pid))
	if err != nil {
		return nil, inspectError(pid, err)
	}
	name, err := p.Name()
	if err != nil {
		return nil, inspectError(pid, err)
	}
	args, err := p.CmdlineSlice()
	if err != nil {
		return nil, inspectError(pid, err)
	}
	return newInfo(pid, name, args), nil
}

// FindByName 返回进程名与 name 匹配的所有进程 PID（升序）。
//
// 内核只保存名称的前 15 字节，且可能从多字节字符中间截断。
// 因此 name 超过 15 字节时，与 name 的前 15 个原始字节或按 UTF-8 边界截断的前缀相等也算匹配。
// 无法读取的进程（已退出或无权限）被跳过。
func FindByName(name string) ([]int, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	procs, err := listProcesses()
	if err != nil {
		return nil, fmt.Errorf("xproc: list processes: %w", err)
	}

	var pids []int
	for _, p := range procs {
		got, err := p.Name()
		if err != nil {
			continue
		}
		if matchName(got, name) {
			pids = append(pids, p.PID())
		}
	}
	slices.Sort(pids)
	return pids, nil
}

// matchName 报告进程名 got 是否对应期望名称 want。
func matchName(got, want string) bool {
	if got == want {
		return true
	}
	if len(want) <= commMaxLen {
		return false
	}
	return got == want[:commMaxLen] || got == truncateUTF8(want, commMaxLen)
}

// trimArgs 去除参数区 NUL 填充产生的末尾空项。
func trimArgs(args []string) []string {
	end := len(args)
	for end > 0 && args[end-1] == "" {
		end--
	}
	if end == 0 {
		return nil
	}
	return args[:end]
}

func newInfo(pid int, name string, args []string) *Info {
	args = trimArgs(args)
	return &Info{
		PID:   pid,
		Comm:  strings.TrimSpace(name),
		Args:  args,
		Title: strings.Join(args, " "),
	}
}

func inspectError(pid int, err error) error {
	if errors.Is(err, process.ErrorProcessNotRunning) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: pid %d", ErrProcessNotFound, pid)
	}
	return fmt.Errorf("xproc: inspect pid %d: %w", pid, err)
}
