package modeler

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled is false at all levels, so the
// renderer thread never formats per-event attributes when logging is off.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discard{})

// shared is read by the control thread and every renderer thread. A nil
// value means silent.
var shared atomic.Pointer[slog.Logger]

// SetLogger sets the logger used by the bridge, the renderer threads and
// the backends. Nothing is logged until it is called; nil turns logging
// off again. It may be called while a renderer thread is running.
//
// Levels:
//   - [slog.LevelDebug]: every drained event, appear and disappear
//   - [slog.LevelInfo]: run start and stop with the run id and stats
//   - [slog.LevelWarn]: transient renderer errors, the run continues
//   - [slog.LevelError]: fatal renderer errors and start failures
//
// A headless host typically logs to stderr:
//
//	modeler.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	shared.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	if l := shared.Load(); l != nil {
		return l
	}
	return silent
}
