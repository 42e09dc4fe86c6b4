// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bridge

import (
	"os"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/modeler/renderthread"
)

// Option configures a Bridge.
type Option func(*options)

type options struct {
	dispatcher   Dispatcher
	presenter    Presenter
	exit         func(code int)
	resourcePath string
	provider     gpucontext.DeviceProvider
	threadOpts   []renderthread.Option
}

func defaultOptions() options {
	return options{
		dispatcher: Inline,
		presenter:  LogPresenter{},
		exit:       os.Exit,
	}
}

// WithDispatcher sets the dispatcher that runs the failure handler on the
// control thread. The default is Inline, which runs it on the watcher
// goroutine instead; hosts with a UI thread pass their own dispatcher or
// a Loop.
func WithDispatcher(d Dispatcher) Option {
	return func(o *options) {
		o.dispatcher = d
	}
}

// WithPresenter sets how fatal errors are shown. The default is
// LogPresenter.
func WithPresenter(p Presenter) Option {
	return func(o *options) {
		o.presenter = p
	}
}

// WithExit replaces os.Exit as the process exit after a fatal error.
func WithExit(exit func(code int)) Option {
	return func(o *options) {
		o.exit = exit
	}
}

// WithResourcePath sets the renderer asset directory passed to Start.
func WithResourcePath(path string) Option {
	return func(o *options) {
		o.resourcePath = path
	}
}

// WithProvider shares the host's GPU context with the renderer.
func WithProvider(p gpucontext.DeviceProvider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithThreadOptions passes options to the renderer thread.
func WithThreadOptions(opts ...renderthread.Option) Option {
	return func(o *options) {
		o.threadOpts = append(o.threadOpts, opts...)
	}
}
