// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface identifies the native drawing surface a renderer draws
// into.
//
// The surface object belongs to the host (a CAMetalLayer, an
// ANativeWindow, a Wayland surface). The renderer thread receives it as an
// opaque Handle at start and again with every resize.
package surface
