// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/modeler/surface"
)

// ErrNoAdapter is returned when a HAL instance exposes no adapter.
var ErrNoAdapter = errors.New("render: no GPU adapter")

// DefaultSwapFormat is the swap texture format used when the host does
// not provide one.
const DefaultSwapFormat = gputypes.TextureFormatBGRA8Unorm

// Device is an open HAL device bound to one surface.
type Device struct {
	Device hal.Device
	Queue  hal.Queue

	release func()
}

// NewDevice wraps an already open device. release is called once by
// Destroy and may be nil.
func NewDevice(device hal.Device, queue hal.Queue, release func()) *Device {
	return &Device{Device: device, Queue: queue, release: release}
}

// Destroy releases the device and its instance. Destroy is idempotent.
func (d *Device) Destroy() {
	if d == nil || d.release == nil {
		return
	}
	release := d.release
	d.release = nil
	release()
}

// DeviceOpener creates a HAL device for a native surface.
//
// Platform hosts provide an opener backed by Vulkan, Metal or D3D12;
// NoopOpener runs headless.
type DeviceOpener interface {
	OpenDevice(s surface.Handle) (*Device, error)
}

// DeviceOpenerFunc adapts a function to DeviceOpener.
type DeviceOpenerFunc func(s surface.Handle) (*Device, error)

// OpenDevice calls f.
func (f DeviceOpenerFunc) OpenDevice(s surface.Handle) (*Device, error) {
	return f(s)
}

// NoopOpener opens devices on the wgpu noop HAL. It accepts any valid
// surface handle and never touches it.
type NoopOpener struct{}

// OpenDevice implements DeviceOpener.
func (NoopOpener) OpenDevice(s surface.Handle) (*Device, error) {
	if !s.Valid() {
		return nil, ErrInvalidSurface
	}
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("render: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("render: open device: %w", err)
	}
	return NewDevice(openDev.Device, openDev.Queue, func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}), nil
}

// SwapFormat returns the host's surface format, or DefaultSwapFormat when
// there is no provider or it reports none.
func SwapFormat(p gpucontext.DeviceProvider) gputypes.TextureFormat {
	if p == nil {
		return DefaultSwapFormat
	}
	if f := p.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		return f
	}
	return DefaultSwapFormat
}
