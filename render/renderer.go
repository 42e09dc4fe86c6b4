// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/modeler/input"
	"github.com/gogpu/modeler/surface"
)

// Config is what a backend receives when a renderer thread run begins.
type Config struct {
	// Surface is the host's native drawing surface.
	Surface surface.Handle

	// Width and Height are the initial surface size in backing pixels.
	Width, Height int32

	// Scale is the number of backing pixels per logical point.
	// Non-positive values are treated as 1.
	Scale float32

	// ResourcePath is the filesystem root for renderer assets.
	ResourcePath string

	// Provider optionally shares the host's GPU context.
	// Only its surface format is consulted.
	Provider gpucontext.DeviceProvider
}

// Validate checks the surface handle and the initial size.
func (c Config) Validate() error {
	if !c.Surface.Valid() {
		return fmt.Errorf("%w: nil surface handle", ErrInvalidSurface)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d (both must be > 0)", ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}

// Dimensions returns the initial window dimensions: the whole surface is
// active, orientation is Rotate0 and the scale is defaulted.
func (c Config) Dimensions() input.WindowDimensions {
	return input.NewWindowDimensions(uint32(max(c.Width, 0)), uint32(max(c.Height, 0)), c.Scale) //nolint:gosec // clamped to >= 0
}

// Renderer consumes input events and renders frames on the renderer thread.
//
// Apply is called once per event, in arrival order; a Resize or
// ExtentChange must be fully applied before Apply returns so that later
// pointer events are interpreted against the new geometry. Frame renders
// the current state. Close releases the device and the surface resources.
type Renderer interface {
	// Apply consumes one event. Unknown events are ignored.
	Apply(ev input.Event) error

	// Frame renders one frame.
	Frame() error

	// Geometry returns the dimensions currently in effect.
	Geometry() input.WindowDimensions

	// Close releases all resources. Close is idempotent.
	Close() error
}

// Backend opens renderers.
//
// Open runs on the renderer thread, after it has been locked to its OS
// thread, and must validate the surface and create the graphics context
// before returning.
type Backend interface {
	// Name returns the backend identifier.
	Name() string

	// Open creates a renderer for the configured surface.
	Open(cfg Config) (Renderer, error)
}

// FPSReporter is implemented by renderers that track their frame rate.
type FPSReporter interface {
	FPS() float64
}
