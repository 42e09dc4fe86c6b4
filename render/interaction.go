// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/modeler/input"
	"github.com/gogpu/modeler/surface"
)

// Pointer is the last pointer position seen by a renderer.
type Pointer struct {
	// X and Y are in upright surface space: the backing-space position
	// reoriented by the geometry in effect when the move was applied.
	X, Y int32

	// RawX and RawY are the backing-space position as received.
	RawX, RawY int32

	// Inside reports whether the position lies in the active area.
	Inside bool

	// Valid is false until the first PointerMove.
	Valid bool
}

// InteractionState is a snapshot of an Interaction.
type InteractionState struct {
	Geometry   input.WindowDimensions
	Surface    surface.Handle
	Pointer    Pointer
	Pressed    bool
	Fullscreen bool

	// Clicks counts ButtonDown events.
	Clicks uint64
}

// Interaction tracks geometry and pointer state for a renderer.
//
// Events are applied strictly in order. A Resize or ExtentChange replaces
// the geometry before Apply returns, so a PointerMove queued after it is
// interpreted in the post-resize backing space.
type Interaction struct {
	state InteractionState
}

// NewInteraction creates interaction state for the initial geometry.
func NewInteraction(dims input.WindowDimensions, s surface.Handle) *Interaction {
	return &Interaction{state: InteractionState{
		Geometry:   dims.Normalized(),
		Surface:    s,
		Fullscreen: dims.Fullscreen,
	}}
}

// Apply updates the state for one event. It reports whether the geometry
// changed so callers can reallocate surface-sized resources.
//
// A Resize without a valid surface handle returns a fatal ErrSurfaceLost.
// Geometry that fails validation returns a transient error and is not
// applied.
func (s *Interaction) Apply(ev input.Event) (geometryChanged bool, err error) {
	switch e := ev.(type) {
	case input.Resize:
		if !e.Surface.Valid() {
			return false, Fatal(fmt.Errorf("%w: resize without surface", ErrSurfaceLost))
		}
		if err := s.setGeometry(e.Dimensions); err != nil {
			return false, err
		}
		s.state.Surface = e.Surface
		return true, nil
	case input.ExtentChange:
		if err := s.setGeometry(e.Dimensions); err != nil {
			return false, err
		}
		return true, nil
	case input.PointerMove:
		g := s.state.Geometry
		x, y := g.Orientation.MapPointer(e.X, e.Y, g.SurfaceArea)
		s.state.Pointer = Pointer{
			X:      x,
			Y:      y,
			RawX:   e.X,
			RawY:   e.Y,
			Inside: g.ActiveArea.Contains(e.X, e.Y),
			Valid:  true,
		}
	case input.ButtonDown:
		s.state.Pressed = true
		s.state.Clicks++
	case input.ButtonUp:
		s.state.Pressed = false
	case input.PointerLeave:
		s.state.Pressed = false
		s.state.Pointer.Inside = false
	case input.FullscreenEnter:
		s.state.Fullscreen = true
		s.state.Geometry.Fullscreen = true
	case input.FullscreenExit:
		s.state.Fullscreen = false
		s.state.Geometry.Fullscreen = false
	}
	return false, nil
}

func (s *Interaction) setGeometry(dims input.WindowDimensions) error {
	dims = dims.Normalized()
	if err := dims.Validate(); err != nil {
		return fmt.Errorf("render: geometry rejected: %w", err)
	}
	s.state.Geometry = dims
	s.state.Fullscreen = dims.Fullscreen
	return nil
}

// Geometry returns the dimensions in effect.
func (s *Interaction) Geometry() input.WindowDimensions {
	return s.state.Geometry
}

// State returns a snapshot of the interaction state.
func (s *Interaction) State() InteractionState {
	return s.state
}
