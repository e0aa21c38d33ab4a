// xtitlectl 是进程标题工具的命令行入口。
//
// 用法:
//
//	xtitlectl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	--log-level    日志级别 debug/info/warn/error (默认: info)
//	--log-format   日志格式 text/json (默认: text)
//	--log-file     日志文件路径，按大小轮转 (默认: 输出到 stderr)
//
// 命令:
//
//	check          检查当前平台能否修改进程标题
//	show           查看进程的内核短名称与命令行
//	hold           将自身改名后保持运行，退出前恢复原名
//
// 退出码:
//
//	0: 执行成功
//	1: 执行失败（check 命令: 当前平台不支持）
//	2: 参数错误（无效 PID、缺少标题、未知命令等）
//
// 示例:
//
//	xtitlectl check
//	xtitlectl show --name myapp
//	xtitlectl hold --title "myapp: idle" --duration 1m
//	xtitlectl hold --config title.yaml --refresh 10s
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// createApp 创建 CLI 应用，命令输出写入 out，诊断信息与日志写入 errOut。
func createApp(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xtitlectl",
		Usage:     "进程标题查看与修改工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件路径，按大小轮转",
			},
		},
		Commands:       createCommands(out, errOut),
		DefaultCommand: "help",
		Authors: []any{
			"omeyang",
		},
		// 由 run() 统一映射退出码，urfave/cli 不直接退出进程。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(errOut, err)
			}
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return &usageError{msg: err.Error()}
		},
	}
}

func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	app := createApp(out, errOut)

	if err := app.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(errOut, "参数错误: %v\n", usageErr)
			return 2
		}
		// 未知命令等框架错误已由 ExitErrHandler 输出
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(errOut, "错误: %v\n", err)
		return 1
	}
	return 0
}
