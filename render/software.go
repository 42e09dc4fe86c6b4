// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"golang.org/x/text/language"

	"github.com/gogpu/modeler"
	"github.com/gogpu/modeler/input"
)

// DefaultClearColor is the background of the active area.
var DefaultClearColor = color.RGBA{R: 26, G: 77, B: 77, A: 255}

// SoftwareBackend opens CPU renderers that draw into a SwapTarget.
//
// The software renderer needs no device and ignores the resource path.
// Each frame clears the active area, marks the pointer and draws a HUD
// line with the frame rate.
type SoftwareBackend struct {
	// ClearColor is the active area background. Zero uses DefaultClearColor.
	ClearColor color.RGBA

	// Language selects number formatting in the HUD. Zero uses English.
	Language language.Tag

	// NoHUD disables the status line.
	NoHUD bool
}

// Name implements Backend.
func (b *SoftwareBackend) Name() string { return "software" }

// Open implements Backend.
func (b *SoftwareBackend) Open(cfg Config) (Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dims := cfg.Dimensions()
	target, err := NewSwapTarget(dims.SurfaceArea)
	if err != nil {
		return nil, err
	}

	bg := b.ClearColor
	if bg == (color.RGBA{}) {
		bg = DefaultClearColor
	}
	tag := b.Language
	if tag == language.Und {
		tag = language.English
	}

	r := &SoftwareRenderer{
		Interaction: NewInteraction(dims, cfg.Surface),
		target:      target,
		background:  bg,
		clock:       NewFrameClock(nil),
	}
	if !b.NoHUD {
		r.hud = newHUD(tag)
	}
	modeler.Logger().Info("render: software renderer opened", "surface", cfg.Surface, "size", dims.SurfaceArea)
	return r, nil
}

// SoftwareRenderer renders into a CPU swap surface.
type SoftwareRenderer struct {
	*Interaction

	target     *SwapTarget
	background color.RGBA
	hud        *hud
	clock      *FrameClock
	closed     bool
}

// Apply implements Renderer. Geometry changes resize the swap surface
// before returning.
func (r *SoftwareRenderer) Apply(ev input.Event) error {
	if r.closed {
		return ErrClosed
	}
	changed, err := r.Interaction.Apply(ev)
	if err != nil || !changed {
		return err
	}
	return r.target.Resize(r.Geometry().SurfaceArea)
}

// Frame implements Renderer.
func (r *SoftwareRenderer) Frame() error {
	if r.closed {
		return ErrClosed
	}
	r.clock.Tick()

	st := r.State()
	img := r.target.Image()
	active := activeRect(st.Geometry)
	r.target.Fill(img.Bounds(), color.Black)
	r.target.Fill(active, r.background)

	if st.Pointer.Valid && st.Pointer.Inside {
		c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
		if st.Pressed {
			c = color.RGBA{R: 255, G: 160, B: 0, A: 255}
		}
		x, y := int(st.Pointer.RawX), int(st.Pointer.RawY)
		r.target.Fill(image.Rect(x-2, y-2, x+3, y+3).Intersect(active), c)
	}

	if r.hud != nil {
		r.hud.draw(img, active, r.hud.line(r.clock.FPS(), r.clock.Frames(), st.Pointer))
	}
	return nil
}

// Target returns the swap surface.
func (r *SoftwareRenderer) Target() *SwapTarget {
	return r.target
}

// FPS implements FPSReporter.
func (r *SoftwareRenderer) FPS() float64 {
	return r.clock.FPS()
}

// Close implements Renderer.
func (r *SoftwareRenderer) Close() error {
	r.closed = true
	return nil
}

func activeRect(d input.WindowDimensions) image.Rectangle {
	a := d.ActiveArea
	return image.Rect(
		int(a.Offset.X), int(a.Offset.Y),
		int(a.Offset.X)+int(a.Extent.Width), int(a.Offset.Y)+int(a.Extent.Height),
	)
}

func init() {
	Register("software", 10, &SoftwareBackend{}, nil)
}

var (
	_ Backend     = (*SoftwareBackend)(nil)
	_ Renderer    = (*SoftwareRenderer)(nil)
	_ FPSReporter = (*SoftwareRenderer)(nil)
)
