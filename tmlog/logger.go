// Package tmlog defines the minimal structured logging interface used
// throughout the Toolman compiler, along with a no-op default and a
// log/slog adapter.
//
// The interface is deliberately small — four levels plus With — so it can
// be backed by log/slog, zap, or zerolog with a thin adapter, following the
// same convention as the teacher library's parser.Logger.
package tmlog

import "log/slog"

// Logger is the interface the compiler, walkers, and module cache log
// through. Keys in attrs should be strings; values may be any serializable
// type, mirroring log/slog's variadic key-value convention.
type Logger interface {
	// Debug logs fine-grained diagnostic detail: module cache hits, builder
	// state transitions, import resolution steps.
	Debug(msg string, attrs ...any)

	// Info logs coarse-grained operational events: a compile starting or
	// finishing.
	Info(msg string, attrs ...any)

	// Warn logs recoverable semantic problems as they are turned into
	// diagnostics.
	Warn(msg string, attrs ...any)

	// Error logs operational failures that abort compilation.
	Error(msg string, attrs ...any)

	// With returns a Logger with attrs prepended to every subsequent call.
	With(attrs ...any) Logger
}

// NopLogger discards everything. It is the default when no logger is
// configured.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
func (n NopLogger) With(...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger. If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)
