// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package input defines the events a host view sends to the renderer thread.
//
// Every coordinate in this package is in backing-pixel space: device pixels
// of the drawable surface, origin at the top-left, y increasing downward.
// Hosts convert from their own conventions with [Converter] before building
// an event; the renderer never guesses a host's coordinate system.
//
// # Events
//
//   - [ButtonDown], [ButtonUp]: primary pointer engaged or released
//   - [PointerMove]: pointer position
//   - [PointerLeave]: pointer left the surface (releases the button)
//   - [Resize]: new geometry plus a fresh surface handle
//   - [ExtentChange]: new geometry, surface unchanged
//   - [FullscreenEnter], [FullscreenExit]: advisory chrome toggles
package input
