// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bridge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/modeler/input"
	"github.com/gogpu/modeler/render"
	"github.com/gogpu/modeler/renderthread"
	"github.com/gogpu/modeler/surface"
)

// recordingBackend records applied events across runs.
type recordingBackend struct {
	fatalOn input.Kind

	mu     sync.Mutex
	opens  []render.Config
	events []input.Event
}

func (b *recordingBackend) Name() string { return "recording" }

func (b *recordingBackend) Open(cfg render.Config) (render.Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.opens = append(b.opens, cfg)
	b.mu.Unlock()
	return &recordingRenderer{Interaction: render.NewInteraction(cfg.Dimensions(), cfg.Surface), b: b}, nil
}

func (b *recordingBackend) seen() []input.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]input.Event(nil), b.events...)
}

type recordingRenderer struct {
	*render.Interaction
	b *recordingBackend
}

func (r *recordingRenderer) Apply(ev input.Event) error {
	r.b.mu.Lock()
	r.b.events = append(r.b.events, ev)
	r.b.mu.Unlock()
	if r.b.fatalOn != 0 && ev.Kind() == r.b.fatalOn {
		return render.Fatal(errors.New("metal device removed"))
	}
	_, err := r.Interaction.Apply(ev)
	return err
}

func (r *recordingRenderer) Frame() error { return nil }
func (r *recordingRenderer) Close() error { return nil }

// failureRecorder collects presented alerts and exit codes.
type failureRecorder struct {
	mu       sync.Mutex
	titles   []string
	messages []string
	codes    []int
	exited   chan struct{}
}

func newFailureRecorder() *failureRecorder {
	return &failureRecorder{exited: make(chan struct{}, 4)}
}

func (f *failureRecorder) options() []Option {
	return []Option{
		WithPresenter(PresenterFunc(func(title, message string) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.titles = append(f.titles, title)
			f.messages = append(f.messages, message)
		})),
		WithExit(func(code int) {
			f.mu.Lock()
			f.codes = append(f.codes, code)
			f.mu.Unlock()
			f.exited <- struct{}{}
		}),
	}
}

var plainView = View{Width: 400, Height: 300, Scale: 2}

func TestBridgeForwardsEventsInOrder(t *testing.T) {
	rb := &recordingBackend{}
	fr := newFailureRecorder()
	b := New(rb, fr.options()...)

	require.NoError(t, b.Appear(surface.Handle(1), plainView))
	assert.Equal(t, renderthread.Running, b.State())
	require.NotNil(t, b.Handle())

	b.PointerMoved(10.4, 20)
	b.ButtonDown()
	b.ButtonUp()
	b.TouchBegan(1, 2)
	b.TouchMoved(3, 4)
	b.TouchEnded(5, 6)
	b.TouchCancelled()
	b.PointerLeft()
	b.FullscreenChanged(true)
	b.FullscreenChanged(false)
	b.Disappear()

	want := []input.Event{
		input.PointerMove{X: 20, Y: 40},
		input.ButtonDown{},
		input.ButtonUp{},
		input.PointerMove{X: 2, Y: 4},
		input.ButtonDown{},
		input.PointerMove{X: 6, Y: 8},
		input.PointerMove{X: 10, Y: 12},
		input.ButtonUp{},
		input.ButtonUp{},
		input.PointerLeave{},
		input.FullscreenEnter{},
		input.FullscreenExit{},
	}
	assert.Equal(t, want, rb.seen())
	assert.Nil(t, b.Handle())
	assert.Equal(t, renderthread.Terminated, b.State())
	assert.Empty(t, fr.codes)

	require.Len(t, rb.opens, 1)
	assert.Equal(t, int32(800), rb.opens[0].Width)
	assert.Equal(t, int32(600), rb.opens[0].Height)
	assert.Equal(t, float32(2), rb.opens[0].Scale)
}

func TestBridgeAppearQueuesInsets(t *testing.T) {
	rb := &recordingBackend{}
	b := New(rb)

	v := View{Width: 390, Height: 844, Scale: 3, Insets: input.Insets{Top: 47, Bottom: 34}}
	require.NoError(t, b.Appear(surface.Handle(1), v))
	b.Disappear()

	seen := rb.seen()
	require.Len(t, seen, 1)
	ext, ok := seen[0].(input.ExtentChange)
	require.True(t, ok)
	assert.Equal(t, input.Offset{Y: 141}, ext.Dimensions.ActiveArea.Offset)
	assert.Equal(t, input.Extent{Width: 1170, Height: 2532 - 141 - 102}, ext.Dimensions.ActiveArea.Extent)
}

func TestBridgeResize(t *testing.T) {
	rb := &recordingBackend{}
	b := New(rb)
	require.NoError(t, b.Appear(surface.Handle(1), plainView))

	bigger := View{Width: 960, Height: 540, Scale: 2}
	b.Resize(surface.Handle(2), bigger)
	b.PointerMoved(480, 270)
	b.ExtentChanged(View{Width: 960, Height: 500, Scale: 2})
	b.Disappear()

	seen := rb.seen()
	require.Len(t, seen, 3)
	rs, ok := seen[0].(input.Resize)
	require.True(t, ok)
	assert.Equal(t, surface.Handle(2), rs.Surface)
	assert.Equal(t, input.Extent{Width: 1920, Height: 1080}, rs.Dimensions.SurfaceArea)
	assert.Equal(t, input.PointerMove{X: 960, Y: 540}, seen[1])
	assert.Equal(t, input.KindExtentChange, seen[2].Kind())
	assert.Equal(t, float64(500), b.View().Height)
}

func TestBridgeFlipY(t *testing.T) {
	rb := &recordingBackend{}
	b := New(rb)
	require.NoError(t, b.Appear(surface.Handle(1), View{Width: 100, Height: 100, Scale: 1, FlipY: true}))
	b.PointerMoved(10, 90)
	b.Disappear()

	assert.Equal(t, []input.Event{input.PointerMove{X: 10, Y: 10}}, rb.seen())
}

func TestBridgeStartFailure(t *testing.T) {
	fr := newFailureRecorder()
	b := New(&recordingBackend{}, fr.options()...)

	err := b.Appear(surface.Invalid, plainView)
	assert.ErrorIs(t, err, render.ErrInvalidSurface)
	assert.Equal(t, renderthread.Idle, b.State())
	assert.Nil(t, b.Handle())

	require.Equal(t, []int{exitFailure}, fr.codes)
	assert.Equal(t, []string{FailureTitle}, fr.titles)
	require.Len(t, fr.messages, 1)
	assert.NotEmpty(t, fr.messages[0])
}

func TestBridgeRuntimeFailureOnControlThread(t *testing.T) {
	rb := &recordingBackend{fatalOn: input.KindButtonDown}
	fr := newFailureRecorder()
	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = loop.Run(ctx) }()

	b := New(rb, append(fr.options(), WithDispatcher(loop))...)
	require.NoError(t, b.Appear(surface.Handle(1), plainView))
	h := b.Handle()

	b.ButtonDown()
	select {
	case <-fr.exited:
	case <-time.After(5 * time.Second):
		t.Fatal("failure handler did not run")
	}

	fr.mu.Lock()
	assert.Equal(t, []int{exitFailure}, fr.codes)
	assert.Equal(t, []string{FailureTitle}, fr.titles)
	assert.Equal(t, []string{"metal device removed"}, fr.messages)
	fr.mu.Unlock()

	assert.Nil(t, b.Handle())
	assert.Error(t, h.Err())
	assert.Equal(t, renderthread.Terminated, b.State())

	// A later Disappear has nothing left to stop.
	b.Disappear()
	select {
	case <-fr.exited:
		t.Fatal("failure handled twice")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestBridgeAppearRestarts(t *testing.T) {
	rb := &recordingBackend{}
	b := New(rb)

	require.NoError(t, b.Appear(surface.Handle(1), plainView))
	first := b.Handle()
	b.ButtonDown()
	require.NoError(t, b.Appear(surface.Handle(2), plainView))
	second := b.Handle()
	b.ButtonUp()
	b.Disappear()

	assert.True(t, first.ID() < second.ID())
	select {
	case <-first.Done():
	default:
		t.Fatal("first run still live after second Appear")
	}
	assert.Equal(t, []input.Event{input.ButtonDown{}, input.ButtonUp{}}, rb.seen())
	require.Len(t, rb.opens, 2)
	assert.Equal(t, surface.Handle(2), rb.opens[1].Surface)
}

func TestBridgeDisappearWithoutAppear(t *testing.T) {
	b := New(&recordingBackend{})
	b.Disappear()
	assert.Equal(t, renderthread.Idle, b.State())

	// Events before the first Appear are kept.
	b.ButtonDown()
	assert.Equal(t, 1, b.Queue().Len())
}

func TestBridgeAppearHandlesPendingFailure(t *testing.T) {
	rb := &recordingBackend{fatalOn: input.KindButtonDown}
	fr := newFailureRecorder()
	loop := NewLoop()
	b := New(rb, append(fr.options(), WithDispatcher(loop))...)

	require.NoError(t, b.Appear(surface.Handle(1), plainView))
	h := b.Handle()
	b.ButtonDown()
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("run did not exit")
	}

	// The failure handler is still waiting on the loop.
	err := b.Appear(surface.Handle(2), plainView)
	assert.ErrorIs(t, err, ErrRendererFailed)
	assert.Equal(t, []int{exitFailure}, fr.codes)
	assert.Equal(t, []string{"metal device removed"}, fr.messages)
	assert.Equal(t, renderthread.Terminated, b.State())
	assert.Nil(t, b.Handle())
	assert.Len(t, rb.opens, 1)

	loop.Quit()
	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, []int{exitFailure}, fr.codes, "failure handled once")
}

func TestBridgeDisappearHandlesPendingFailure(t *testing.T) {
	rb := &recordingBackend{fatalOn: input.KindButtonDown}
	fr := newFailureRecorder()
	loop := NewLoop()
	b := New(rb, append(fr.options(), WithDispatcher(loop))...)

	require.NoError(t, b.Appear(surface.Handle(1), plainView))
	h := b.Handle()
	b.ButtonDown()
	<-h.Done()

	b.Disappear()
	assert.Equal(t, []int{exitFailure}, fr.codes)
	assert.Equal(t, []string{FailureTitle}, fr.titles)
}

func TestBridgeAppearDropsStaleGeometry(t *testing.T) {
	rb := &recordingBackend{}
	b := New(rb)

	require.NoError(t, b.Appear(surface.Handle(1), plainView))
	b.Disappear()

	// Hidden view: geometry for the old surface, then input.
	b.Resize(surface.Handle(1), View{Width: 25, Height: 25, Scale: 2})
	b.ExtentChanged(View{Width: 25, Height: 20, Scale: 2})
	b.ButtonDown()

	require.NoError(t, b.Appear(surface.Handle(2), View{Width: 50, Height: 50, Scale: 2}))
	b.ButtonUp()
	b.Disappear()

	assert.Equal(t, []input.Event{input.ButtonDown{}, input.ButtonUp{}}, rb.seen())
	require.Len(t, rb.opens, 2)
	assert.Equal(t, surface.Handle(2), rb.opens[1].Surface)
	assert.Equal(t, int32(100), rb.opens[1].Width)
	assert.Equal(t, int32(100), rb.opens[1].Height)
}

func TestBridgeInlineFailureRunsOnWatcher(t *testing.T) {
	rb := &recordingBackend{fatalOn: input.KindButtonDown}
	fr := newFailureRecorder()
	b := New(rb, fr.options()...)

	require.NoError(t, b.Appear(surface.Handle(1), plainView))
	b.ButtonDown()
	select {
	case <-fr.exited:
	case <-time.After(5 * time.Second):
		t.Fatal("Inline dispatcher did not run the failure handler")
	}
	assert.Nil(t, b.Handle())
}
