package xproc

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/shirou/gopsutil/v3/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcess struct {
	pid     int
	name    string
	args    []string
	nameErr error
	argsErr error
}

func (p fakeProcess) PID() int                        { return p.pid }
func (p fakeProcess) Name() (string, error)           { return p.name, p.nameErr }
func (p fakeProcess) CmdlineSlice() ([]string, error) { return p.args, p.argsErr }

// useFakeProcesses 以 procs 替换进程枚举。
// 不可 t.Parallel()。
func useFakeProcesses(t *testing.T, procs ...fakeProcess) {
	t.Helper()
	origOpen, origList := openProcess, listProcesses

	openProcess = func(pid int32) (procHandle, error) {
		for _, p := range procs {
			if p.pid == int(pid) {
				return p, nil
			}
		}
		return nil, process.ErrorProcessNotRunning
	}
	listProcesses = func() ([]procHandle, error) {
		out := make([]procHandle, len(procs))
		for i, p := range procs {
			out[i] = p
		}
		return out, nil
	}

	t.Cleanup(func() { openProcess, listProcesses = origOpen, origList })
}

func TestInspect_Self(t *testing.T) {
	info, err := Inspect(os.Getpid())
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), info.PID)
	assert.NotEmpty(t, info.Comm)
	assert.NotEmpty(t, info.Args)
}

func TestInspect_InvalidPID(t *testing.T) {
	for _, pid := range []int{0, -1} {
		_, err := Inspect(pid)
		require.ErrorIs(t, err, ErrInvalidPID, "pid %d", pid)
	}
}

// 不可 t.Parallel()：替换包级进程枚举。
func TestInspect_Fake(t *testing.T) {
	useFakeProcesses(t,
		fakeProcess{pid: 42, name: "rename-test", args: []string{"rename-test", "", "", ""}},
		fakeProcess{pid: 43, name: "nginx", args: []string{"nginx: worker process"}},
		fakeProcess{pid: 44, name: "bash\n", args: []string{"/bin/bash", "-l"}},
	)

	info, err := Inspect(42)
	require.NoError(t, err)
	assert.Equal(t, &Info{PID: 42, Comm: "rename-test", Args: []string{"rename-test"}, Title: "rename-test"}, info)

	info, err = Inspect(43)
	require.NoError(t, err)
	assert.Equal(t, "nginx: worker process", info.Title)

	info, err = Inspect(44)
	require.NoError(t, err)
	assert.Equal(t, "bash", info.Comm)
	assert.Equal(t, []string{"/bin/bash", "-l"}, info.Args)
	assert.Equal(t, "/bin/bash -l", info.Title)
}

// 不可 t.Parallel()：替换包级进程枚举。
func TestInspect_NotFound(t *testing.T) {
	useFakeProcesses(t)

	_, err := Inspect(99999)
	require.ErrorIs(t, err, ErrProcessNotFound)
}

// 不可 t.Parallel()：替换包级进程枚举。
func TestInspect_ReadErrors(t *testing.T) {
	denied := errors.New("permission denied")
	useFakeProcesses(t,
		fakeProcess{pid: 1, nameErr: fs.ErrNotExist},
		fakeProcess{pid: 2, name: "worker", argsErr: denied},
	)

	// 读取期间进程退出
	_, err := Inspect(1)
	require.ErrorIs(t, err, ErrProcessNotFound)

	_, err = Inspect(2)
	require.ErrorIs(t, err, denied)
	assert.NotErrorIs(t, err, ErrProcessNotFound)
}

// 不可 t.Parallel()：替换包级进程枚举。
func TestFindByName(t *testing.T) {
	useFakeProcesses(t,
		fakeProcess{pid: 100, name: "worker"},
		fakeProcess{pid: 7, name: "worker"},
		fakeProcess{pid: 12, name: "nginx"},
		fakeProcess{pid: 13, name: "a-very-long-pro"},
		fakeProcess{pid: 14, name: "gone", nameErr: process.ErrorProcessNotRunning},
	)

	pids, err := FindByName("worker")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 100}, pids)

	pids, err = FindByName("missing")
	require.NoError(t, err)
	assert.Empty(t, pids)

	// 超过 15 字节的名称与内核保存的前缀比较
	pids, err = FindByName("a-very-long-process-title")
	require.NoError(t, err)
	assert.Equal(t, []int{13}, pids)

	// 不足 15 字节时不做前缀匹配
	pids, err = FindByName("work")
	require.NoError(t, err)
	assert.Empty(t, pids)
}

// 不可 t.Parallel()：替换包级进程枚举。
func TestFindByName_MultibyteSplit(t *testing.T) {
	const name = "a进程标题管理"
	raw := name[:commMaxLen] // 内核按字节截断，最后一个字符被拆开
	useFakeProcesses(t,
		fakeProcess{pid: 21, name: raw},
		fakeProcess{pid: 22, name: truncateUTF8(name, commMaxLen)},
	)

	pids, err := FindByName(name)
	require.NoError(t, err)
	assert.Equal(t, []int{21, 22}, pids)
}

func TestFindByName_Empty(t *testing.T) {
	_, err := FindByName("")
	require.ErrorIs(t, err, ErrEmptyName)
}

// 不可 t.Parallel()：替换包级进程枚举。
func TestFindByName_ListFails(t *testing.T) {
	orig := listProcesses
	listProcesses = func() ([]procHandle, error) { return nil, fs.ErrPermission }
	defer func() { listProcesses = orig }()

	_, err := FindByName("worker")
	require.ErrorIs(t, err, fs.ErrPermission)
}

func TestMatchName(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
		ok   bool
	}{
		{"exact", "worker", "worker", true},
		{"different", "worker", "nginx", false},
		{"short_no_prefix", "work", "worker", false},
		{"long_raw_prefix", "0123456789abcde", "0123456789abcdef", true},
		{"long_extended", "0123456789abcdef", "0123456789abcdef", true},
		{"long_mismatch", "0123456789abcdX", "0123456789abcdef", false},
		{"rune_split", "a进程标题\xe7\xae", "a进程标题管理", true},
		{"rune_boundary", "a进程标题", "a进程标题管理", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, matchName(tt.got, tt.want))
		})
	}
}

func TestTrimArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"nil", nil, nil},
		{"only_empty", []string{"", ""}, nil},
		{"single", []string{"app"}, []string{"app"}},
		{"padded", []string{"rename-test", "", ""}, []string{"rename-test"}},
		{"args", []string{"/bin/app", "-v"}, []string{"/bin/app", "-v"}},
		{"inner_empty", []string{"app", "", "-v"}, []string{"app", "", "-v"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trimArgs(tt.args))
		})
	}
}
