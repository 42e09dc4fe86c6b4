// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderthread

import (
	"sync"

	"github.com/gogpu/modeler/input"
	"github.com/gogpu/modeler/render"
)

// fakeBackend opens fakeRenderers and records what they see.
type fakeBackend struct {
	openErr error

	// applyErr returns the error for an event, if any.
	applyErr func(ev input.Event) error
	frameErr error

	mu     sync.Mutex
	opened int
	events []input.Event
	states []render.InteractionState
	frames int
	closed int
}

func (b *fakeBackend) Name() string { return "fake" }

func (b *fakeBackend) Open(cfg render.Config) (render.Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.opened++
	b.mu.Unlock()
	if b.openErr != nil {
		return nil, b.openErr
	}
	return &fakeRenderer{
		Interaction: render.NewInteraction(cfg.Dimensions(), cfg.Surface),
		b:           b,
	}, nil
}

func (b *fakeBackend) seen() []input.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]input.Event(nil), b.events...)
}

func (b *fakeBackend) counts() (opened, frames, closed int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.opened, b.frames, b.closed
}

type fakeRenderer struct {
	*render.Interaction
	b *fakeBackend
}

func (r *fakeRenderer) Apply(ev input.Event) error {
	if _, err := r.Interaction.Apply(ev); err != nil {
		return err
	}
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	r.b.events = append(r.b.events, ev)
	r.b.states = append(r.b.states, r.State())
	if r.b.applyErr != nil {
		return r.b.applyErr(ev)
	}
	return nil
}

func (r *fakeRenderer) Frame() error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if r.b.frameErr != nil {
		return r.b.frameErr
	}
	r.b.frames++
	return nil
}

func (r *fakeRenderer) Close() error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	r.b.closed++
	return nil
}
