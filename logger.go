package ggcv

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent drops every record. Enabled reports false, so the frame loop pays
// nothing for the Debug calls it makes per event.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (silent) WithAttrs([]slog.Attr) slog.Handler        { return silent{} }
func (silent) WithGroup(string) slog.Handler             { return silent{} }

var discard = slog.New(silent{})

// current is swapped by SetLogger while the window goroutine may be logging
// mouse events.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(discard)
}

// SetLogger installs l for the drawing functions and the render, input,
// window and capture packages. A nil l silences them again, which is also
// the state before the first call.
//
// Levels: Debug for ignored mouse events and capture recovery, Info for
// loop lifecycle, Warn for keys and draw commands the loop skips. The demo
// binary installs a text handler on stderr at the level read from the
// [log] section of its config file.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
