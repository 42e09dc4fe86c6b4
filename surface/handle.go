// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "fmt"

// Handle is an opaque reference to a host's native drawing surface.
//
// Depending on the host this is a CAMetalLayer*, an ANativeWindow*, a
// wl_surface* or an HWND. The renderer never dereferences it from Go; it
// only hands it to the graphics backend. The zero Handle is invalid.
//
// Some hosts replace the surface object on resize, which is why resize
// events carry a fresh Handle.
type Handle uintptr

// Invalid is the zero handle.
const Invalid Handle = 0

// Valid reports whether h refers to a surface.
func (h Handle) Valid() bool {
	return h != Invalid
}

// String returns the handle as a hex pointer, or "nil" for the zero handle.
func (h Handle) String() string {
	if !h.Valid() {
		return "nil"
	}
	return fmt.Sprintf("%#x", uintptr(h))
}
