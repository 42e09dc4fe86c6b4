// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/modeler/input"
)

// MaxSwapDimension bounds each side of a CPU swap surface.
const MaxSwapDimension = 16384

// SwapTarget is a CPU-backed swap surface using *image.RGBA.
//
// Resize keeps the previous contents, rescaled to the new size, so the
// host shows a stretched last frame until the next one is rendered.
type SwapTarget struct {
	img *image.RGBA
}

// NewSwapTarget allocates a swap surface of the given extent.
func NewSwapTarget(e input.Extent) (*SwapTarget, error) {
	img, err := allocRGBA(e)
	if err != nil {
		return nil, err
	}
	return &SwapTarget{img: img}, nil
}

func allocRGBA(e input.Extent) (*image.RGBA, error) {
	if e.Empty() {
		return nil, fmt.Errorf("%w: swap extent %v", ErrInvalidConfig, e)
	}
	if e.Width > MaxSwapDimension || e.Height > MaxSwapDimension {
		return nil, Fatal(fmt.Errorf("%w: swap extent %v exceeds %d", ErrOutOfMemory, e, MaxSwapDimension))
	}
	return image.NewRGBA(image.Rect(0, 0, int(e.Width), int(e.Height))), nil
}

// Width returns the target width in pixels.
func (t *SwapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *SwapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *SwapTarget) Image() *image.RGBA {
	return t.img
}

// Fill paints r with c.
func (t *SwapTarget) Fill(r image.Rectangle, c color.Color) {
	draw.Draw(t.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Resize reallocates the target, rescaling the previous contents.
// It is a no-op when the extent is unchanged.
func (t *SwapTarget) Resize(e input.Extent) error {
	if uint32(t.Width()) == e.Width && uint32(t.Height()) == e.Height { //nolint:gosec // image sizes are non-negative
		return nil
	}
	img, err := allocRGBA(e)
	if err != nil {
		return err
	}
	xdraw.ApproxBiLinear.Scale(img, img.Bounds(), t.img, t.img.Bounds(), xdraw.Src, nil)
	t.img = img
	return nil
}
