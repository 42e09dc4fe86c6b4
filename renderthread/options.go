// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderthread

import "log/slog"

// Option configures a Thread.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	frames    bool
	lockOS    bool
	onExit    func(*Handle)
	frameHook func(*Handle)
}

func defaultOptions() options {
	return options{
		frames: true,
		lockOS: true,
	}
}

// WithLogger sets the logger for this thread. By default the thread logs
// through modeler.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFrames controls whether the drain loop renders a frame each time
// the queue runs empty. Frames are rendered by default; a host that
// presents on its own schedule can disable them.
func WithFrames(enabled bool) Option {
	return func(o *options) {
		o.frames = enabled
	}
}

// WithOSThreadLock controls whether a run locks its goroutine to an OS
// thread. Graphics contexts are bound to the thread that created them, so
// the lock is on by default.
func WithOSThreadLock(enabled bool) Option {
	return func(o *options) {
		o.lockOS = enabled
	}
}

// WithExitHook registers fn to run on the renderer thread after a run has
// released its renderer and before its Handle is marked done.
func WithExitHook(fn func(*Handle)) Option {
	return func(o *options) {
		o.onExit = fn
	}
}

// WithFrameHook registers fn to run on the renderer thread after every
// frame rendered without error.
func WithFrameHook(fn func(*Handle)) Option {
	return func(o *options) {
		o.frameHook = fn
	}
}
