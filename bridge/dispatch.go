// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bridge

import (
	"context"
	"runtime"
	"sync"
)

// Dispatcher runs functions on the control thread.
type Dispatcher interface {
	// Post schedules fn. It must not block on fn.
	Post(fn func())
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(fn func())

// Post calls f(fn).
func (f DispatcherFunc) Post(fn func()) {
	f(fn)
}

// Inline runs posted functions immediately on the posting goroutine.
// A Bridge using it handles renderer failures on its watcher goroutine
// rather than on the control thread, so it only suits tests and hosts
// without thread affinity.
var Inline Dispatcher = DispatcherFunc(func(fn func()) { fn() })

// Loop is a Dispatcher that runs posted functions on the goroutine that
// calls Run, locked to its OS thread.
type Loop struct {
	mu    sync.Mutex
	funcs []func()
	wake  chan struct{}

	quit     chan struct{}
	quitOnce sync.Once
}

// NewLoop creates a loop. Functions posted before Run are kept.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
	}
}

// Post implements Dispatcher. A nil fn is ignored.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.funcs = append(l.funcs, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Quit makes Run return after the functions already posted have run.
func (l *Loop) Quit() {
	l.quitOnce.Do(func() { close(l.quit) })
}

// Run executes posted functions in order until ctx is done or Quit is
// called. It returns ctx.Err() on cancellation and nil after Quit.
func (l *Loop) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			l.flush()
		case <-l.quit:
			l.flush()
			return nil
		}
	}
}

func (l *Loop) flush() {
	for {
		l.mu.Lock()
		funcs := l.funcs
		l.funcs = nil
		l.mu.Unlock()

		if len(funcs) == 0 {
			return
		}
		for _, fn := range funcs {
			fn()
		}
	}
}
