package paint

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(nopLogger)
}

// SetLogger installs l for the editor packages and for the gg renderer
// underneath them, so rasterizer diagnostics land in the same stream as
// session events. nil restores silence. Safe for concurrent use.
//
// Levels:
//   - Debug: drag transitions, commits, compositor calls, cache hits
//   - Warn: rejected edits and storage failures (via the session notifier)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = nopLogger
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// ComponentLogger returns Logger tagged with component=name. Sub-packages
// use it so a single handler can filter session, compositor and storage
// events apart.
func ComponentLogger(name string) *slog.Logger {
	return Logger().With("component", name)
}
