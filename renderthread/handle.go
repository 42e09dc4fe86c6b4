// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderthread

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

// Stats counts what a run has done.
type Stats struct {
	// Events is the number of events applied.
	Events uint64

	// Frames is the number of frames rendered.
	Frames uint64

	// TransientErrors is the number of non-fatal renderer errors.
	TransientErrors uint64

	// FPS is the renderer's frame rate estimate, if it reports one.
	FPS float64
}

// String formats the stats for logs.
func (s Stats) String() string {
	return fmt.Sprintf("events=%d frames=%d transient_errors=%d fps=%.1f",
		s.Events, s.Frames, s.TransientErrors, s.FPS)
}

// Handle identifies one renderer run. It is returned by Thread.Start and
// passed to Thread.Terminate.
type Handle struct {
	id   uint64
	done chan struct{}

	mu  sync.Mutex
	err error

	events    atomic.Uint64
	frames    atomic.Uint64
	transient atomic.Uint64
	fpsBits   atomic.Uint64
}

func newHandle(id uint64) *Handle {
	return &Handle{id: id, done: make(chan struct{})}
}

// ID returns the run number. IDs grow by one with every Start on a Thread.
func (h *Handle) ID() uint64 {
	return h.id
}

// Done returns a channel closed when the run has exited and released the
// renderer.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the run has exited.
func (h *Handle) Wait() {
	<-h.done
}

// Err returns the fatal error that ended the run, or nil if the run is
// still going or was stopped by Terminate.
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Stats returns a snapshot of the run counters.
func (h *Handle) Stats() Stats {
	return Stats{
		Events:          h.events.Load(),
		Frames:          h.frames.Load(),
		TransientErrors: h.transient.Load(),
		FPS:             math.Float64frombits(h.fpsBits.Load()),
	}
}

// String returns "run#<id>".
func (h *Handle) String() string {
	if h == nil {
		return "run#none"
	}
	return fmt.Sprintf("run#%d", h.id)
}

func (h *Handle) fail(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err == nil {
		h.err = err
	}
}

func (h *Handle) setFPS(fps float64) {
	h.fpsBits.Store(math.Float64bits(fps))
}

func (h *Handle) finished() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}
