package nodeimg

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with renders.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for nodeimg and its sub-packages.
// By default nodeimg produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by nodeimg:
//   - [slog.LevelDebug]: fonts loaded, layout timings, frame counts
//   - [slog.LevelWarn]: images that failed to fetch or decode
//
// Global contexts created before the call log through the new logger too.
//
// Example:
//
//	nodeimg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by nodeimg.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// sharedHandler forwards every record to the handler of the logger
// installed at the time of the call. Components that hold a *slog.Logger
// for their lifetime are given one built on it.
type sharedHandler struct {
	ops []func(slog.Handler) slog.Handler
}

func (h sharedHandler) current() slog.Handler {
	out := Logger().Handler()
	for _, op := range h.ops {
		out = op(out)
	}
	return out
}

func (h sharedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return Logger().Handler().Enabled(ctx, level)
}

func (h sharedHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.current().Handle(ctx, r)
}

func (h sharedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.with(func(next slog.Handler) slog.Handler { return next.WithAttrs(attrs) })
}

func (h sharedHandler) WithGroup(name string) slog.Handler {
	return h.with(func(next slog.Handler) slog.Handler { return next.WithGroup(name) })
}

func (h sharedHandler) with(op func(slog.Handler) slog.Handler) sharedHandler {
	ops := make([]func(slog.Handler) slog.Handler, len(h.ops), len(h.ops)+1)
	copy(ops, h.ops)
	return sharedHandler{ops: append(ops, op)}
}

// componentLogger returns a logger that follows SetLogger.
func componentLogger() *slog.Logger { return slog.New(sharedHandler{}) }
