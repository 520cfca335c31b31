// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package session

import (
	"context"
	"log/slog"

	paint "github.com/gogpu/ggpaint"
)

// Notice is a user-visible message about a rejected or failed action.
type Notice struct {
	Level   slog.Level
	Op      string // "composite", "save", "load", "draw"
	Message string
	Err     error
}

// Notifier receives notices. It is called without the session lock held and
// may call back into the Session.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts an ordinary function to the Notifier interface.
type NotifierFunc func(n Notice)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

// logNotifier writes notices to the package logger.
type logNotifier struct{}

func (logNotifier) Notify(n Notice) {
	paint.ComponentLogger("session").Log(context.Background(), n.Level, n.Message, "op", n.Op, "error", n.Err)
}
