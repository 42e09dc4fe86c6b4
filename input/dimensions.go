// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"errors"
	"fmt"
)

// Errors returned by WindowDimensions.Validate.
var (
	// ErrEmptySurface is returned when the surface area has a zero side.
	ErrEmptySurface = errors.New("input: empty surface area")

	// ErrActiveAreaOutOfBounds is returned when the active area is not
	// contained in the surface area.
	ErrActiveAreaOutOfBounds = errors.New("input: active area exceeds surface area")
)

// Extent is a size in backing pixels.
type Extent struct {
	Width, Height uint32
}

// Empty reports whether either side is zero.
func (e Extent) Empty() bool {
	return e.Width == 0 || e.Height == 0
}

// String formats the extent as WxH.
func (e Extent) String() string {
	return fmt.Sprintf("%dx%d", e.Width, e.Height)
}

// Offset is a position in backing pixels.
type Offset struct {
	X, Y int32
}

// Rect is an axis-aligned rectangle in backing pixels.
type Rect struct {
	Offset Offset
	Extent Extent
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Extent.Empty()
}

// Contains reports whether the point lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y int32) bool {
	dx := int64(x) - int64(r.Offset.X)
	dy := int64(y) - int64(r.Offset.Y)
	return dx >= 0 && dy >= 0 && dx < int64(r.Extent.Width) && dy < int64(r.Extent.Height)
}

// Within reports whether r lies inside a rectangle anchored at the origin
// with the given extent.
func (r Rect) Within(e Extent) bool {
	if r.Offset.X < 0 || r.Offset.Y < 0 {
		return false
	}
	return uint64(r.Offset.X)+uint64(r.Extent.Width) <= uint64(e.Width) &&
		uint64(r.Offset.Y)+uint64(r.Extent.Height) <= uint64(e.Height)
}

// String formats the rectangle as WxH+X+Y.
func (r Rect) String() string {
	return fmt.Sprintf("%v+%d+%d", r.Extent, r.Offset.X, r.Offset.Y)
}

// WindowDimensions describes the drawable surface of a host view.
type WindowDimensions struct {
	// SurfaceArea is the full drawable size in backing pixels.
	SurfaceArea Extent

	// ActiveArea is the safe-drawable part of SurfaceArea, excluding
	// notches, rounded corners and system insets.
	ActiveArea Rect

	// CornerRadius is the display corner radius in backing pixels.
	CornerRadius float32

	// Scale is the number of backing pixels per logical point.
	Scale float32

	// Fullscreen reports whether the host is in fullscreen mode.
	Fullscreen bool

	// Orientation is the content rotation.
	Orientation Orientation
}

// NewWindowDimensions returns dimensions for a surface with no insets.
func NewWindowDimensions(width, height uint32, scale float32) WindowDimensions {
	return WindowDimensions{
		SurfaceArea: Extent{Width: width, Height: height},
		ActiveArea:  Rect{Extent: Extent{Width: width, Height: height}},
		Scale:       scale,
	}.Normalized()
}

// Normalized returns a copy with absent fields defaulted: a non-positive
// scale becomes 1, an undefined orientation becomes Rotate0 and an empty
// active area becomes the whole surface.
func (d WindowDimensions) Normalized() WindowDimensions {
	if !(d.Scale > 0) {
		d.Scale = 1
	}
	if !d.Orientation.Valid() {
		d.Orientation = Rotate0
	}
	if d.ActiveArea.Empty() {
		d.ActiveArea = Rect{Extent: d.SurfaceArea}
	}
	if d.CornerRadius < 0 {
		d.CornerRadius = 0
	}
	return d
}

// Validate checks that the surface is non-empty and that the active area
// lies inside it.
func (d WindowDimensions) Validate() error {
	if d.SurfaceArea.Empty() {
		return fmt.Errorf("%w: %v", ErrEmptySurface, d.SurfaceArea)
	}
	if !d.ActiveArea.Within(d.SurfaceArea) {
		return fmt.Errorf("%w: active %v, surface %v", ErrActiveAreaOutOfBounds, d.ActiveArea, d.SurfaceArea)
	}
	return nil
}

// String formats the dimensions for logs.
func (d WindowDimensions) String() string {
	return fmt.Sprintf("surface=%v active=%v scale=%g %v fullscreen=%t",
		d.SurfaceArea, d.ActiveArea, d.Scale, d.Orientation, d.Fullscreen)
}
