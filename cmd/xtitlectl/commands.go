package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/omeyang/xproctitle/pkg/observability/xlog"
	"github.com/omeyang/xproctitle/pkg/util/xproc"
	"github.com/urfave/cli/v3"
)

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示命令行参数错误，退出码为 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// isCLIUsageError 判断 urfave/cli 产生的参数错误。
func isCLIUsageError(err error) bool {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return true
	}
	msg := err.Error()
	for _, prefix := range []string{
		"flag provided but not defined",
		"invalid value",
		"Required flag",
		"Required flags",
	} {
		if strings.Contains(msg, prefix) {
			return true
		}
	}
	return false
}

func createCommands(out, errOut io.Writer) []*cli.Command {
	return []*cli.Command{
		createCheckCommand(out),
		createShowCommand(out),
		createHoldCommand(out, errOut),
	}
}

func createCheckCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "检查当前平台能否修改进程标题",
		Action: func(_ context.Context, _ *cli.Command) error {
			return cmdCheck(out)
		},
	}
}

func createShowCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "查看进程的内核短名称与命令行（默认当前进程）",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "pid",
				Aliases: []string{"p"},
				Usage:   "目标进程 PID",
			},
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "目标进程名称（匹配 /proc/*/comm）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdShow(out, cmd.Int("pid"), cmd.String("name"), cmd.IsSet("pid"))
		},
	}
}

func createHoldCommand(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "hold",
		Usage: "将自身改名后保持运行，退出前恢复原名",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "进程标题，优先于配置文件中的 title",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML/JSON 配置文件，文件变更时重新应用其中的 title",
			},
			&cli.DurationFlag{
				Name:    "duration",
				Aliases: []string{"d"},
				Usage:   "保持时间，0 表示直到收到信号",
			},
			&cli.DurationFlag{
				Name:  "refresh",
				Usage: "周期性重新写入标题的间隔，0 表示不刷新",
			},
			&cli.BoolFlag{
				Name:  "keep",
				Usage: "退出时保留标题，不恢复原名",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger, cleanup, err := newLogger(cmd, errOut)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			return cmdHold(ctx, out, logger, holdOptions{
				title:      cmd.String("title"),
				configPath: cmd.String("config"),
				duration:   cmd.Duration("duration"),
				refresh:    cmd.Duration("refresh"),
				keep:       cmd.Bool("keep"),
			})
		},
	}
}

// newLogger 按全局日志选项构建 Logger。
func newLogger(cmd *cli.Command, errOut io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(errOut).
		SetLevelString(cmd.String("log-level")).
		SetFormat(cmd.String("log-format"))
	if file := cmd.String("log-file"); file != "" {
		b.SetRotation(file, xlog.RotateOptions{})
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return nil, nil, &usageError{msg: err.Error()}
	}
	return logger, cleanup, nil
}

// cmdCheck 输出标题能力探测结果，不支持时退出码为 1。
func cmdCheck(out io.Writer) error {
	if err := xproc.CheckSupport(); err != nil {
		fmt.Fprintf(out, "supported:  false\nreason:     %v\n", err)
		return &exitError{code: 1}
	}
	title, err := xproc.Title()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "supported:  true\ncapacity:   %d\nexecutable: %s\ninvocation: %s\ntitle:      %s\n",
		xproc.Capacity(), xproc.ProcessName(), xproc.InvocationName(), title)
	return nil
}

// cmdShow 输出目标进程信息。按 --pid、--name、当前进程的优先级选择目标。
func cmdShow(out io.Writer, pid int, name string, pidSet bool) error {
	if pidSet && name != "" {
		return usagef("--pid 与 --name 不能同时使用")
	}
	if pidSet && pid <= 0 {
		return usagef("无效 PID: %d", pid)
	}

	var pids []int
	switch {
	case pidSet:
		pids = []int{pid}
	case name != "":
		found, err := xproc.FindByName(name)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return fmt.Errorf("未找到名为 %q 的进程: %w", name, xproc.ErrProcessNotFound)
		}
		pids = found
	default:
		pids = []int{xproc.ProcessID()}
	}

	for i, p := range pids {
		info, err := xproc.Inspect(p)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		printInfo(out, info)
	}
	return nil
}

func printInfo(out io.Writer, info *xproc.Info) {
	fmt.Fprintf(out, "pid:   %d\ncomm:  %s\ntitle: %s\n", info.PID, info.Comm, info.Title)
}
