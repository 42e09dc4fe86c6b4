// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import "fmt"

// Orientation is the rotation of the surface content relative to the
// device's natural orientation.
type Orientation uint8

const (
	// Rotate0 is the natural orientation. It is the default.
	Rotate0 Orientation = iota

	// Rotate90 is a quarter turn.
	Rotate90

	// Rotate180 is upside down.
	Rotate180

	// Rotate270 is three quarter turns.
	Rotate270
)

// Valid reports whether o is one of the four defined rotations.
func (o Orientation) Valid() bool {
	return o <= Rotate270
}

// Negate returns the rotation that undoes o.
func (o Orientation) Negate() Orientation {
	switch o {
	case Rotate90:
		return Rotate270
	case Rotate270:
		return Rotate90
	default:
		return o
	}
}

// Degrees returns the rotation angle.
func (o Orientation) Degrees() int {
	return int(o) * 90
}

// MapPointer reorients a backing-space point into the upright space of a
// surface with the given extent.
func (o Orientation) MapPointer(x, y int32, extent Extent) (int32, int32) {
	w := int32(extent.Width)  //nolint:gosec // extents are bounded by surface sizes
	h := int32(extent.Height) //nolint:gosec // extents are bounded by surface sizes
	switch o {
	case Rotate90:
		return h - y, x
	case Rotate180:
		return w - x, h - y
	case Rotate270:
		return y, w - x
	default:
		return x, y
	}
}

// String returns the rotation name.
func (o Orientation) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
	return fmt.Sprintf("ROTATE_%d", o.Degrees())
}
