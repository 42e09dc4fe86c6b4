// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package modeler hosts the shared pieces of the modeler renderer bridge.
//
// # Overview
//
// A modeler host (an AppKit view, a UIKit view, an Android activity, a
// headless test harness) owns a native drawing surface on its UI thread.
// Rendering happens on a dedicated renderer thread that owns the graphics
// device. The two sides talk through three pieces:
//
//   - [renderthread.Queue]: an unbounded FIFO of [input.Event] values
//     pushed by the UI thread and drained by the renderer thread.
//   - [renderthread.ErrorSlot]: a one-shot cell where the renderer thread
//     publishes a fatal failure before it exits.
//   - [renderthread.Thread]: the renderer thread state machine
//     (Idle, Initializing, Running, Draining, Terminated).
//
// The [bridge] package wires these together for a host view and marshals
// fatal failures back onto the control thread.
//
// # Coordinate System
//
// Events reaching the queue are already in backing-pixel space:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Display scale already applied
//
// Hosts use [input.Converter] to get there from their own conventions.
//
// # Logging
//
// Logging is silent by default. Call [SetLogger] to route diagnostics from
// every sub-package to a [log/slog] logger.
package modeler

// Version is the current version of the module.
const Version = "0.3.0"
