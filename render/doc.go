// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render is the native renderer side of the modeler bridge.
//
// The renderer thread (package renderthread) opens a [Renderer] through a
// [Backend] when a run starts, feeds it every [input.Event] in arrival order
// and asks it for a frame whenever the event queue runs dry. The renderer
// owns the graphics device and the swap-surface-sized resources.
//
// # Key Principle
//
// The renderer RECEIVES the surface from the host, it does NOT create a
// window. Hosts pass an opaque [surface.Handle]; a [DeviceOpener] turns it
// into a HAL device. An optional [gpucontext.DeviceProvider] from the host
// supplies the swap-chain format.
//
// # Backends
//
//   - "hal" (priority 100): wgpu HAL device, WGSL shaders compiled with naga
//     from the resource path, swap textures reallocated on resize
//   - "software" (priority 10): CPU swap surface with a text HUD
//
// Backends live in a [Registry]. The global registry is itself a Backend
// that opens the best available entry, falling back in priority order.
//
// # Errors
//
// Errors returned by [Renderer.Apply] and [Renderer.Frame] are transient
// unless [IsFatal] reports true. Transient errors are logged by the caller
// and the run continues; fatal errors (surface lost, device lost, out of
// memory) end the run.
//
// # Thread Safety
//
// Renderers are NOT thread-safe. A Renderer is used only from the renderer
// thread that opened it.
package render
