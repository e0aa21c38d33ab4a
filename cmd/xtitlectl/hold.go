package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/omeyang/xproctitle/pkg/config/xconf"
	"github.com/omeyang/xproctitle/pkg/lifecycle/xrun"
	"github.com/omeyang/xproctitle/pkg/observability/xlog"
	"github.com/omeyang/xproctitle/pkg/util/xproc"
)

// errHoldElapsed 表示 --duration 到期，属于正常退出。
var errHoldElapsed = errors.New("hold duration elapsed")

// holdRunOptions 附加到 hold 的 xrun 选项，测试中用于关闭信号监听。
var holdRunOptions []xrun.Option

type holdOptions struct {
	title      string
	configPath string
	duration   time.Duration
	refresh    time.Duration
	keep       bool
}

// titleFile 是 --config 文件的结构。
type titleFile struct {
	Title string `koanf:"title"`
}

// titleKeeper 记录当前期望的标题，供配置重载与周期刷新共同使用。
// 日志写入全局 Logger。
type titleKeeper struct {
	mu    sync.Mutex
	title string
}

// partialRename 报告 Rename 的错误是否只表示标题未能完整展示（参数区截断或内核短名称失败）。
func partialRename(err error) bool {
	return errors.Is(err, xproc.ErrTitleTruncated) || errors.Is(err, xproc.ErrKernelName)
}

// apply 设置并记录标题。标题只被部分展示时记录告警并视为成功。
func (k *titleKeeper) apply(ctx context.Context, title string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	err := xproc.Rename(title)
	if err != nil && !partialRename(err) {
		return err
	}
	if err != nil {
		xlog.Warn(ctx, "title partially applied", xlog.Operation("rename"), xlog.Title(title), xlog.Err(err))
	}
	k.title = title
	return nil
}

func (k *titleKeeper) current() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.title
}

// reapply 重新写入当前标题。
func (k *titleKeeper) reapply(ctx context.Context) error {
	title := k.current()
	xlog.Debug(ctx, "title refreshed", xlog.Operation("refresh"), xlog.Title(title))
	return k.apply(ctx, title)
}

func (o holdOptions) validate() error {
	if o.title == "" && o.configPath == "" {
		return usagef("hold 需要 --title 或 --config")
	}
	if o.duration < 0 {
		return usagef("无效 --duration: %s", o.duration)
	}
	if o.refresh < 0 {
		return usagef("无效 --refresh: %s", o.refresh)
	}
	return nil
}

// loadTitleFile 读取配置文件中的 title。
func loadTitleFile(path string) (xconf.Config, string, error) {
	cfg, err := xconf.New(path)
	if err != nil {
		return nil, "", err
	}
	var tf titleFile
	if err := cfg.Unmarshal("", &tf); err != nil {
		return nil, "", err
	}
	return cfg, tf.Title, nil
}

// cmdHold 将当前进程改名为目标标题，保持运行直到信号或 --duration 到期，
// 退出前恢复启动名称（--keep 时保留）。
//
// 执行期间 logger 作为全局 Logger，返回前清除。
func cmdHold(ctx context.Context, out io.Writer, logger xlog.LoggerWithLevel, opts holdOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if err := xproc.CheckSupport(); err != nil {
		return err
	}

	xlog.SetDefault(logger)
	defer xlog.ResetDefault()

	var (
		cfg   xconf.Config
		title = opts.title
	)
	if opts.configPath != "" {
		c, fileTitle, err := loadTitleFile(opts.configPath)
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}
		cfg = c
		if title == "" {
			title = fileTitle
		}
	}

	keeper := &titleKeeper{}
	services := []func(context.Context) error{xrun.WaitForDone()}
	if opts.duration > 0 {
		services = append(services, xrun.Timer(opts.duration, func(context.Context) error {
			return errHoldElapsed
		}))
	}
	if opts.refresh > 0 {
		services = append(services, xrun.Ticker(opts.refresh, false, keeper.reapply))
	}
	if cfg != nil {
		w, err := xconf.Watch(cfg, func(c xconf.Config, err error) {
			onConfigChange(ctx, keeper, c, err)
		})
		if err != nil {
			return err
		}
		defer func() { _ = w.Close() }()
		services = append(services, w.Run)
	}

	if err := keeper.apply(ctx, title); err != nil {
		if errors.Is(err, xproc.ErrEmptyTitle) || errors.Is(err, xproc.ErrInvalidTitle) {
			return &usageError{msg: err.Error()}
		}
		return err
	}
	xlog.Info(ctx, "title set", xlog.Title(title), xlog.PID(xproc.ProcessID()))
	fmt.Fprintf(out, "pid %d: %s\n", xproc.ProcessID(), title)

	runOpts := append([]xrun.Option{
		xrun.WithName("hold"),
		xrun.WithLogger(xlog.Slog(logger.With(xlog.Component("xrun")))),
	}, holdRunOptions...)
	start := time.Now()
	err := xrun.RunWithOptions(ctx, runOpts, services...)

	switch {
	case err == nil, errors.Is(err, errHoldElapsed), errors.Is(err, xrun.ErrSignal):
		xlog.Info(ctx, "hold finished", xlog.Duration(time.Since(start)), xlog.Err(err))
		err = nil
	default:
		xlog.Error(ctx, "hold failed", xlog.Duration(time.Since(start)), xlog.Err(err))
	}

	if opts.keep {
		return err
	}
	if rerr := xproc.Reset(); rerr != nil && !partialRename(rerr) {
		return errors.Join(err, fmt.Errorf("恢复进程标题失败: %w", rerr))
	}
	xlog.Info(ctx, "title reset", xlog.Operation("reset"), xlog.Title(xproc.InvocationName()))
	return err
}

// onConfigChange 在配置文件变更后应用新的 title。空 title 或读取失败时保持当前标题。
func onConfigChange(ctx context.Context, keeper *titleKeeper, cfg xconf.Config, err error) {
	op := xlog.Operation("reload")
	if err != nil {
		xlog.Warn(ctx, "config reload failed", op, xlog.Err(err))
		return
	}
	var tf titleFile
	if err := cfg.Unmarshal("", &tf); err != nil {
		xlog.Warn(ctx, "config unmarshal failed", op, xlog.Err(err))
		return
	}
	if tf.Title == "" || tf.Title == keeper.current() {
		return
	}
	if err := keeper.apply(ctx, tf.Title); err != nil {
		xlog.Warn(ctx, "title from config rejected", op, xlog.Title(tf.Title), xlog.Err(err))
		return
	}
	xlog.Info(ctx, "title reloaded", op, xlog.Title(tf.Title))
}
