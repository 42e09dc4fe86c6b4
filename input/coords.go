// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import "math"

// Insets are safe-area margins in logical points.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Converter maps host view coordinates to backing-pixel space.
//
// Hosts measure in logical points; some (AppKit) put the origin at the
// bottom-left. The converter multiplies by Scale and flips y when FlipY is
// set, so every event reaching the queue uses the same convention.
type Converter struct {
	// Scale is the number of backing pixels per logical point.
	// Non-positive values are treated as 1.
	Scale float32

	// ViewHeight is the view height in logical points. Only used with FlipY.
	ViewHeight float64

	// FlipY is set for hosts whose origin is at the bottom-left.
	FlipY bool
}

func (c Converter) scale() float64 {
	if !(c.Scale > 0) {
		return 1
	}
	return float64(c.Scale)
}

// Pixels converts a length in points to backing pixels, rounding down.
func (c Converter) Pixels(points float64) int32 {
	return clampInt32(math.Floor(points * c.scale()))
}

// Pointer converts a host point position to a PointerMove event.
func (c Converter) Pointer(x, y float64) PointerMove {
	if c.FlipY {
		y = c.ViewHeight - y
	}
	return PointerMove{X: c.Pixels(x), Y: c.Pixels(y)}
}

// Dimensions builds WindowDimensions for a view of the given size in
// points, with the safe-area insets removed from the active area.
func (c Converter) Dimensions(widthPts, heightPts float64, insets Insets, o Orientation) WindowDimensions {
	surface := Extent{
		Width:  clampUint32(math.Floor(widthPts * c.scale())),
		Height: clampUint32(math.Floor(heightPts * c.scale())),
	}
	// Insets are named after screen edges, so FlipY does not swap them.
	left := c.Pixels(insets.Left)
	top := c.Pixels(insets.Top)
	right := c.Pixels(insets.Right)
	bottom := c.Pixels(insets.Bottom)

	active := Rect{Offset: Offset{X: left, Y: top}}
	if w := int64(surface.Width) - int64(left) - int64(right); w > 0 {
		active.Extent.Width = uint32(w) //nolint:gosec // bounded by surface.Width
	}
	if h := int64(surface.Height) - int64(top) - int64(bottom); h > 0 {
		active.Extent.Height = uint32(h) //nolint:gosec // bounded by surface.Height
	}
	if active.Empty() {
		active = Rect{Extent: surface}
	}

	return WindowDimensions{
		SurfaceArea: surface,
		ActiveArea:  active,
		Scale:       float32(c.scale()),
		Orientation: o,
	}.Normalized()
}

func clampInt32(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}

func clampUint32(v float64) uint32 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
