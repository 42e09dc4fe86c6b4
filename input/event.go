// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"fmt"

	"github.com/gogpu/modeler/surface"
)

// Kind identifies the variant of an Event.
type Kind uint8

const (
	// KindButtonDown is the primary pointer being engaged.
	KindButtonDown Kind = iota + 1

	// KindButtonUp is the primary pointer being released.
	KindButtonUp

	// KindPointerMove is a pointer position update.
	KindPointerMove

	// KindPointerLeave is the pointer leaving the surface.
	KindPointerLeave

	// KindResize is a geometry change that replaces the surface handle.
	KindResize

	// KindExtentChange is a geometry change on a stable surface.
	KindExtentChange

	// KindFullscreenEnter is the host entering fullscreen.
	KindFullscreenEnter

	// KindFullscreenExit is the host leaving fullscreen.
	KindFullscreenExit
)

var kindNames = [...]string{
	KindButtonDown:      "ButtonDown",
	KindButtonUp:        "ButtonUp",
	KindPointerMove:     "PointerMove",
	KindPointerLeave:    "PointerLeave",
	KindResize:          "Resize",
	KindExtentChange:    "ExtentChange",
	KindFullscreenEnter: "FullscreenEnter",
	KindFullscreenExit:  "FullscreenExit",
}

// String returns the variant name.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Event is one occurrence sent from the host view to the renderer thread.
//
// The set of implementations is closed; the renderer thread's internal
// control markers are not Events.
type Event interface {
	// Kind returns the event variant.
	Kind() Kind

	sealed()
}

// ButtonDown reports the primary pointer being engaged.
type ButtonDown struct{}

// ButtonUp reports the primary pointer being released.
type ButtonUp struct{}

// PointerMove reports a pointer position in backing-pixel space.
type PointerMove struct {
	X, Y int32
}

// PointerLeave reports that the pointer left the surface.
// Renderers treat it as a release of the primary button.
type PointerLeave struct{}

// Resize carries new geometry and a fresh surface handle, for hosts that
// replace the surface object when the view is resized.
type Resize struct {
	Dimensions WindowDimensions
	Surface    surface.Handle
}

// ExtentChange carries new geometry for a surface that did not change.
type ExtentChange struct {
	Dimensions WindowDimensions
}

// FullscreenEnter reports the host entering fullscreen.
type FullscreenEnter struct{}

// FullscreenExit reports the host leaving fullscreen.
type FullscreenExit struct{}

func (ButtonDown) Kind() Kind      { return KindButtonDown }
func (ButtonUp) Kind() Kind        { return KindButtonUp }
func (PointerMove) Kind() Kind     { return KindPointerMove }
func (PointerLeave) Kind() Kind    { return KindPointerLeave }
func (Resize) Kind() Kind          { return KindResize }
func (ExtentChange) Kind() Kind    { return KindExtentChange }
func (FullscreenEnter) Kind() Kind { return KindFullscreenEnter }
func (FullscreenExit) Kind() Kind  { return KindFullscreenExit }

func (ButtonDown) sealed()      {}
func (ButtonUp) sealed()        {}
func (PointerMove) sealed()     {}
func (PointerLeave) sealed()    {}
func (Resize) sealed()          {}
func (ExtentChange) sealed()    {}
func (FullscreenEnter) sealed() {}
func (FullscreenExit) sealed()  {}

// String formats the event for logs.
func (e PointerMove) String() string {
	return fmt.Sprintf("PointerMove(%d,%d)", e.X, e.Y)
}

// String formats the event for logs.
func (e Resize) String() string {
	return fmt.Sprintf("Resize(%v surface=%v)", e.Dimensions, e.Surface)
}

// String formats the event for logs.
func (e ExtentChange) String() string {
	return fmt.Sprintf("ExtentChange(%v)", e.Dimensions)
}

// GeometryOf returns the dimensions carried by a Resize or ExtentChange.
// The second result is false for every other event.
func GeometryOf(ev Event) (WindowDimensions, bool) {
	switch e := ev.(type) {
	case Resize:
		return e.Dimensions, true
	case ExtentChange:
		return e.Dimensions, true
	default:
		return WindowDimensions{}, false
	}
}
