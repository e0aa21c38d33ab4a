package xrun

import (
	"log/slog"
	"os"
	"slices"
)

// Option 调整 Group 的运行设置。
type Option func(*settings)

// settings 由 newSettings 创建，之后只读。
type settings struct {
	name          string
	log           *slog.Logger
	signals       []os.Signal
	handleSignals bool
}

func newSettings(opts []Option) *settings {
	s := &settings{
		name:          "xrun",
		log:           slog.Default(),
		handleSignals: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// watched 返回 Run 系列函数要监听的信号，关闭信号处理时返回 nil。
func (s *settings) watched() []os.Signal {
	if !s.handleSignals {
		return nil
	}
	// signal.Notify 不带信号时订阅全部信号，空列表必须替换为默认值
	if len(s.signals) == 0 {
		return DefaultSignals()
	}
	return s.signals
}

func (s *settings) groupLogger() *slog.Logger {
	return s.log.With(slog.String("group", s.name))
}

func (s *settings) serviceLogger(service string) *slog.Logger {
	return s.groupLogger().With(slog.String("service", service))
}

// WithLogger 设置记录服务启停与信号的日志记录器，默认 slog.Default()。nil 被忽略。
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.log = logger
		}
	}
}

// WithName 设置 Group 名称，日志中以 group 属性输出。默认 "xrun"，空字符串被忽略。
func WithName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.name = name
		}
	}
}

// WithSignals 替换监听的信号。空列表等同于 [DefaultSignals]。
// signals 在调用时被复制。
func WithSignals(signals []os.Signal) Option {
	own := slices.Clone(signals)
	return func(s *settings) { s.signals = own }
}

// WithoutSignalHandler 关闭信号监听，Group 只因服务出错或 Cancel 而退出。
func WithoutSignalHandler() Option {
	return func(s *settings) { s.handleSignals = false }
}
