// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/modeler"
	"github.com/gogpu/modeler/input"
)

// HALBackend opens renderers on a wgpu HAL device.
//
// Open creates the device through Opener, compiles every WGSL shader in
// the resource path and allocates swap-surface-sized color textures. A
// nil Opener uses NoopOpener.
type HALBackend struct {
	Opener DeviceOpener
}

// Name implements Backend.
func (b *HALBackend) Name() string { return "hal" }

// Open implements Backend.
func (b *HALBackend) Open(cfg Config) (Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opener := b.Opener
	if opener == nil {
		opener = NoopOpener{}
	}

	sources, err := LoadShaders(cfg.ResourcePath)
	if err != nil {
		return nil, err
	}

	dev, err := opener.OpenDevice(cfg.Surface)
	if err != nil {
		return nil, fmt.Errorf("render: open device for surface %v: %w", cfg.Surface, err)
	}

	r := &halRenderer{
		Interaction: NewInteraction(cfg.Dimensions(), cfg.Surface),
		dev:         dev,
		format:      SwapFormat(cfg.Provider),
		clock:       NewFrameClock(nil),
	}
	r.shaders, err = createShaderModules(dev.Device, sources)
	if err != nil {
		_ = r.Close()
		return nil, err
	}
	if err := r.ensureSwapTextures(r.Geometry().SurfaceArea); err != nil {
		_ = r.Close()
		return nil, err
	}

	modeler.Logger().Info("render: hal renderer opened",
		"surface", cfg.Surface, "size", r.Geometry().SurfaceArea,
		"format", r.format, "shaders", len(r.shaders))
	return r, nil
}

// halRenderer keeps one color texture and view sized to the surface area.
type halRenderer struct {
	*Interaction

	dev     *Device
	format  gputypes.TextureFormat
	shaders []hal.ShaderModule

	swapTex  hal.Texture
	swapView hal.TextureView
	width    uint32
	height   uint32

	clock  *FrameClock
	closed bool
}

// Apply implements Renderer. Geometry changes reallocate the swap
// textures before returning.
func (r *halRenderer) Apply(ev input.Event) error {
	if r.closed {
		return ErrClosed
	}
	changed, err := r.Interaction.Apply(ev)
	if err != nil || !changed {
		return err
	}
	return r.ensureSwapTextures(r.Geometry().SurfaceArea)
}

// Frame implements Renderer.
func (r *halRenderer) Frame() error {
	if r.closed {
		return ErrClosed
	}
	if r.dev == nil || r.dev.Device == nil {
		return Fatal(ErrDeviceLost)
	}
	if r.swapView == nil {
		return Fatal(ErrSurfaceLost)
	}
	r.clock.Tick()
	return nil
}

// FPS implements FPSReporter.
func (r *halRenderer) FPS() float64 {
	return r.clock.FPS()
}

// SwapSize returns the size of the allocated swap textures.
func (r *halRenderer) SwapSize() (width, height uint32) {
	return r.width, r.height
}

// ensureSwapTextures recreates the swap texture if the extent changed.
// Allocation failures are fatal.
func (r *halRenderer) ensureSwapTextures(e input.Extent) error {
	if r.swapTex != nil && r.width == e.Width && r.height == e.Height {
		return nil
	}
	r.destroySwapTextures()

	tex, err := r.dev.Device.CreateTexture(&hal.TextureDescriptor{
		Label: "modeler_swap_color",
		Size: hal.Extent3D{
			Width:              e.Width,
			Height:             e.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        r.format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return Fatal(fmt.Errorf("%w: swap texture %v: %w", ErrOutOfMemory, e, err))
	}
	r.swapTex = tex

	view, err := r.dev.Device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "modeler_swap_color_view",
	})
	if err != nil {
		r.destroySwapTextures()
		return Fatal(fmt.Errorf("%w: swap texture view %v: %w", ErrOutOfMemory, e, err))
	}
	r.swapView = view
	r.width = e.Width
	r.height = e.Height

	modeler.Logger().Debug("render: swap textures allocated", "size", e)
	return nil
}

func (r *halRenderer) destroySwapTextures() {
	if r.swapView != nil {
		r.dev.Device.DestroyTextureView(r.swapView)
		r.swapView = nil
	}
	if r.swapTex != nil {
		r.dev.Device.DestroyTexture(r.swapTex)
		r.swapTex = nil
	}
	r.width = 0
	r.height = 0
}

// Close implements Renderer.
func (r *halRenderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.dev == nil {
		return nil
	}
	if r.dev.Device != nil {
		r.destroySwapTextures()
		for _, m := range r.shaders {
			r.dev.Device.DestroyShaderModule(m)
		}
		r.shaders = nil
	}
	r.dev.Destroy()
	return nil
}

func init() {
	Register("hal", 100, &HALBackend{}, nil)
}

var (
	_ Backend     = (*HALBackend)(nil)
	_ Renderer    = (*halRenderer)(nil)
	_ FPSReporter = (*halRenderer)(nil)
)
