// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderthread

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gogpu/modeler"
	"github.com/gogpu/modeler/render"
)

// Errors returned by Thread.Start.
var (
	// ErrAlreadyRunning is returned when Start is called while a run is live.
	ErrAlreadyRunning = errors.New("renderthread: already running")

	// ErrNilQueue is returned when Start is called without a queue.
	ErrNilQueue = errors.New("renderthread: nil queue")

	// ErrNilSlot is returned when Start is called without an error slot.
	ErrNilSlot = errors.New("renderthread: nil error slot")

	// ErrNilBackend is returned when the thread has no backend.
	ErrNilBackend = errors.New("renderthread: nil backend")
)

// Thread runs a render.Backend on a dedicated renderer thread.
//
// Start and Terminate are serialized: Terminate waits for the run to exit
// before another Start can begin, so two runs never share a surface.
// A Thread can be started again after Terminate, with the same Queue.
type Thread struct {
	backend render.Backend
	opts    options

	mu    sync.Mutex
	runs  uint64
	live  *Handle
	state atomic.Int32
}

// New creates an idle Thread that opens renderers from backend.
func New(backend render.Backend, opts ...Option) *Thread {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Thread{backend: backend, opts: o}
}

// State returns the current lifecycle state.
func (t *Thread) State() State {
	return State(t.state.Load())
}

func (t *Thread) setState(s State) {
	t.state.Store(int32(s))
}

func (t *Thread) logger() *slog.Logger {
	if t.opts.logger != nil {
		return t.opts.logger
	}
	return modeler.Logger()
}

// Start opens the backend on a new renderer thread and starts draining q.
//
// Start returns once the backend has validated the surface and created its
// graphics context. On failure the returned Handle is nil, the message is
// published to slot and the state returns to Idle. The slot is reset at
// the beginning of every Start.
func (t *Thread) Start(cfg render.Config, q *Queue, slot *ErrorSlot) (*Handle, error) {
	if slot == nil {
		return nil, ErrNilSlot
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.live != nil && !t.live.finished() {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyRunning, t.live)
	}
	t.live = nil
	slot.Reset()

	fail := func(err error) (*Handle, error) {
		slot.Publish(err.Error())
		t.setState(Idle)
		t.logger().Error("renderthread: start failed", "err", err)
		return nil, err
	}
	switch {
	case q == nil:
		return fail(ErrNilQueue)
	case t.backend == nil:
		return fail(ErrNilBackend)
	}
	if err := cfg.Validate(); err != nil {
		return fail(err)
	}

	t.setState(Initializing)
	t.runs++
	h := newHandle(t.runs)
	opened := make(chan error, 1)
	go t.run(cfg, q, slot, h, opened)

	if err := <-opened; err != nil {
		<-h.done
		return fail(fmt.Errorf("renderthread: open %s backend: %w", t.backend.Name(), err))
	}

	t.live = h
	t.logger().Info("renderthread: started",
		"run", h.id, "backend", t.backend.Name(), "surface", cfg.Surface,
		"width", cfg.Width, "height", cfg.Height, "scale", cfg.Scale)
	return h, nil
}

// Terminate stops the run identified by h and waits for it to exit.
//
// Events pushed before Terminate are applied first. Events pushed after it
// stay in q for the next run. Terminate is a no-op for a nil handle or a
// run that has already exited. It panics if q is nil while the run is
// live, since the run could never be stopped.
func (t *Thread) Terminate(q *Queue, h *Handle) {
	if h == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !h.finished() {
		if q == nil {
			panic(fmt.Sprintf("renderthread: Terminate %v with nil queue", h))
		}
		q.pushTerminate(h.id)
		<-h.done
	}
	if t.live == h {
		t.live = nil
	}
	t.logger().Info("renderthread: terminated", "run", h.id, "stats", h.Stats())
}

// run is the body of the renderer thread.
func (t *Thread) run(cfg render.Config, q *Queue, slot *ErrorSlot, h *Handle, opened chan<- error) {
	if t.opts.lockOS {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}
	defer close(h.done)

	r, err := t.backend.Open(cfg)
	if err != nil {
		opened <- err
		return
	}
	t.setState(Running)
	opened <- nil

	t.drain(r, q, slot, h)

	if err := r.Close(); err != nil {
		t.logger().Warn("renderthread: close renderer", "run", h.id, "err", err)
	}
	if t.opts.onExit != nil {
		t.opts.onExit(h)
	}
	t.setState(Terminated)
}

// drain applies events until the terminate marker for h or a fatal error.
// A frame is rendered whenever the queue runs empty.
func (t *Thread) drain(r render.Renderer, q *Queue, slot *ErrorSlot, h *Handle) {
	log := t.logger()
	fps, _ := r.(render.FPSReporter)

	frame := func() error {
		if !t.opts.frames {
			return nil
		}
		if err := r.Frame(); err != nil {
			return err
		}
		h.frames.Add(1)
		if fps != nil {
			h.setFPS(fps.FPS())
		}
		if t.opts.frameHook != nil {
			t.opts.frameHook(h)
		}
		return nil
	}

	// fatal reports whether err ends the run.
	fatal := func(err error, ev any) bool {
		if err == nil {
			return false
		}
		if !render.IsFatal(err) {
			h.transient.Add(1)
			log.Warn("renderthread: renderer error", "run", h.id, "event", ev, "err", err)
			return false
		}
		h.fail(err)
		slot.Publish(err.Error())
		t.setState(Draining)
		log.Error("renderthread: fatal renderer error", "run", h.id, "event", ev, "err", err)
		return true
	}

	if fatal(frame(), "initial frame") {
		return
	}
	for {
		ev, ok := q.next(h.id)
		if !ok {
			t.setState(Draining)
			log.Debug("renderthread: terminate received", "run", h.id)
			return
		}
		log.Debug("renderthread: event", "run", h.id, "event", ev)

		err := r.Apply(ev)
		h.events.Add(1)
		if fatal(err, ev) {
			return
		}
		if q.Len() == 0 && fatal(frame(), ev) {
			return
		}
	}
}
