// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bridge

import (
	"errors"
	"sync"

	"github.com/gogpu/modeler"
	"github.com/gogpu/modeler/input"
	"github.com/gogpu/modeler/render"
	"github.com/gogpu/modeler/renderthread"
	"github.com/gogpu/modeler/surface"
)

// exitFailure is the process exit code after a renderer failure.
const exitFailure = 1

// ErrRendererFailed is returned by Appear when the previous run ended with
// a fatal error that had not been handled yet. The failure is handled
// instead of starting a new run.
var ErrRendererFailed = errors.New("bridge: renderer failed")

// View is the host view geometry in logical points.
type View struct {
	Width, Height float64

	// Scale is the number of backing pixels per point.
	Scale float32

	// Insets are the safe-area margins.
	Insets input.Insets

	Orientation input.Orientation
	Fullscreen  bool

	// FlipY is set when the host's origin is at the bottom-left.
	FlipY bool
}

func (v View) converter() input.Converter {
	return input.Converter{Scale: v.Scale, ViewHeight: v.Height, FlipY: v.FlipY}
}

func (v View) dimensions() input.WindowDimensions {
	d := v.converter().Dimensions(v.Width, v.Height, v.Insets, v.Orientation)
	d.Fullscreen = v.Fullscreen
	return d
}

// Bridge drives one renderer thread from a host view.
//
// All methods are meant to be called from the control thread. Appear and
// Disappear serialize start and terminate, so a new run never begins
// before the previous one has exited.
//
// A fatal renderer error is handled on the thread the Dispatcher runs
// functions on. With the default Inline dispatcher that is the renderer
// error watcher goroutine, not the control thread; hosts with a UI thread
// must pass WithDispatcher.
type Bridge struct {
	opts   options
	queue  *renderthread.Queue
	slot   *renderthread.ErrorSlot
	thread *renderthread.Thread

	mu     sync.Mutex
	view   View
	conv   input.Converter
	handle *renderthread.Handle
	stop   chan struct{}
}

// New creates a bridge whose renderer thread opens backend.
func New(backend render.Backend, opts ...Option) *Bridge {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Bridge{
		opts:   o,
		queue:  renderthread.NewQueue(),
		slot:   renderthread.NewErrorSlot(),
		thread: renderthread.New(backend, o.threadOpts...),
	}
}

// Queue returns the bridge's event queue.
func (b *Bridge) Queue() *renderthread.Queue {
	return b.queue
}

// State returns the renderer thread state.
func (b *Bridge) State() renderthread.State {
	return b.thread.State()
}

// View returns the last view geometry reported by the host.
func (b *Bridge) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.view
}

// Handle returns the live run, or nil.
func (b *Bridge) Handle() *renderthread.Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handle
}

// Appear starts the renderer thread for surface s.
//
// A run that is still live is terminated first. If the previous run failed
// and its failure was not handled yet, it is handled now and Appear
// returns ErrRendererFailed without starting. Resize and ExtentChange
// events queued while the view was hidden are dropped, since s and v
// replace them. If the view's active area, orientation or fullscreen
// state differ from a plain surface, an ExtentChange is queued. A start
// failure is handled synchronously: the message is presented and the
// process exits.
func (b *Bridge) Appear(s surface.Handle, v View) error {
	if b.halt() {
		return ErrRendererFailed
	}

	dims := v.dimensions()
	cfg := render.Config{
		Surface:      s,
		Width:        clampDim(dims.SurfaceArea.Width),
		Height:       clampDim(dims.SurfaceArea.Height),
		Scale:        dims.Scale,
		ResourcePath: b.opts.resourcePath,
		Provider:     b.opts.provider,
	}

	b.mu.Lock()
	b.view = v
	b.conv = v.converter()
	b.mu.Unlock()

	if n := b.queue.Discard(isGeometry); n > 0 {
		modeler.Logger().Debug("bridge: dropped stale geometry", "events", n)
	}
	if dims != cfg.Dimensions() {
		b.queue.Push(input.ExtentChange{Dimensions: dims})
	}

	h, err := b.thread.Start(cfg, b.queue, b.slot)
	if err != nil {
		b.fail()
		return err
	}

	stop := make(chan struct{})
	b.mu.Lock()
	b.handle = h
	b.stop = stop
	b.mu.Unlock()

	go b.watch(h, b.slot.Ready(), stop)
	modeler.Logger().Debug("bridge: appeared", "run", h.ID(), "dims", dims)
	return nil
}

// Disappear stops the renderer thread and waits for it to exit. A fatal
// error the run hit before it stopped is handled here. Input events queued
// afterwards are kept for the next Appear.
func (b *Bridge) Disappear() {
	b.halt()
}

// halt stops the live run and handles a failure it left unhandled. It
// reports whether a failure was handled.
func (b *Bridge) halt() bool {
	b.mu.Lock()
	h, stop := b.handle, b.stop
	b.handle, b.stop = nil, nil
	b.mu.Unlock()

	if h != nil {
		close(stop)
		b.thread.Terminate(b.queue, h)
		modeler.Logger().Debug("bridge: disappeared", "run", h.ID(), "stats", h.Stats())
	}
	return b.fail()
}

// watch posts the failure handler when the run publishes an error.
func (b *Bridge) watch(h *renderthread.Handle, ready, stop <-chan struct{}) {
	select {
	case <-ready:
		b.opts.dispatcher.Post(func() { b.runFailed(h) })
	case <-stop:
	}
}

// runFailed runs on the control thread after a fatal renderer error.
func (b *Bridge) runFailed(h *renderthread.Handle) {
	b.thread.Terminate(b.queue, h)

	b.mu.Lock()
	if b.handle == h {
		b.handle, b.stop = nil, nil
	}
	b.mu.Unlock()

	b.fail()
}

// fail presents the slot's message and exits. The message is taken once,
// so a run's failure is handled at most once. It reports whether there
// was a message to handle.
func (b *Bridge) fail() bool {
	msg, ok := b.slot.Take()
	if !ok {
		return false
	}
	modeler.Logger().Error("bridge: renderer failed", "err", msg)
	b.opts.presenter.Present(FailureTitle, msg)
	b.opts.exit(exitFailure)
	return true
}

// Resize queues a Resize for a new surface and view geometry. Hosts that
// replace the surface object on resize pass the new handle here.
func (b *Bridge) Resize(s surface.Handle, v View) {
	b.mu.Lock()
	b.view = v
	b.conv = v.converter()
	b.mu.Unlock()

	b.queue.Push(input.Resize{Dimensions: v.dimensions(), Surface: s})
}

// ExtentChanged queues an ExtentChange for new view geometry on the same
// surface.
func (b *Bridge) ExtentChanged(v View) {
	b.mu.Lock()
	b.view = v
	b.conv = v.converter()
	b.mu.Unlock()

	b.queue.Push(input.ExtentChange{Dimensions: v.dimensions()})
}

// FullscreenChanged records a fullscreen toggle made by the host.
func (b *Bridge) FullscreenChanged(fullscreen bool) {
	b.mu.Lock()
	b.view.Fullscreen = fullscreen
	b.mu.Unlock()

	if fullscreen {
		b.queue.Push(input.FullscreenEnter{})
	} else {
		b.queue.Push(input.FullscreenExit{})
	}
}

// PointerMoved queues the pointer position given in view points.
func (b *Bridge) PointerMoved(x, y float64) {
	b.mu.Lock()
	conv := b.conv
	b.mu.Unlock()

	b.queue.Push(conv.Pointer(x, y))
}

// ButtonDown queues a primary button press.
func (b *Bridge) ButtonDown() {
	b.queue.Push(input.ButtonDown{})
}

// ButtonUp queues a primary button release.
func (b *Bridge) ButtonUp() {
	b.queue.Push(input.ButtonUp{})
}

// PointerLeft queues a PointerLeave when the pointer exits the view.
func (b *Bridge) PointerLeft() {
	b.queue.Push(input.PointerLeave{})
}

// isGeometry reports whether ev describes the surface geometry.
func isGeometry(ev input.Event) bool {
	switch ev.Kind() {
	case input.KindResize, input.KindExtentChange:
		return true
	}
	return false
}

func clampDim(v uint32) int32 {
	if v > 1<<31-1 {
		return 1<<31 - 1
	}
	return int32(v) //nolint:gosec // bounded above
}
