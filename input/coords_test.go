// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConverterPointer(t *testing.T) {
	tests := []struct {
		name string
		c    Converter
		x, y float64
		want PointerMove
	}{
		{"unit scale", Converter{Scale: 1}, 10.7, 20.2, PointerMove{X: 10, Y: 20}},
		{"retina", Converter{Scale: 2}, 480, 270, PointerMove{X: 960, Y: 540}},
		{"zero scale defaults", Converter{}, 3, 4, PointerMove{X: 3, Y: 4}},
		{"appkit flip", Converter{Scale: 2, ViewHeight: 540, FlipY: true}, 100, 540, PointerMove{X: 200, Y: 0}},
		{"appkit flip bottom", Converter{Scale: 2, ViewHeight: 540, FlipY: true}, 0, 0, PointerMove{X: 0, Y: 1080}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Pointer(tt.x, tt.y))
		})
	}
}

func TestConverterPixelsClamps(t *testing.T) {
	c := Converter{Scale: 1}
	assert.Equal(t, int32(math.MaxInt32), c.Pixels(1e12))
	assert.Equal(t, int32(math.MinInt32), c.Pixels(-1e12))
	assert.Equal(t, int32(0), c.Pixels(math.NaN()))
}

func TestConverterDimensions(t *testing.T) {
	c := Converter{Scale: 3}
	d := c.Dimensions(390, 844, Insets{Top: 47, Bottom: 34}, Rotate0)

	assert.Equal(t, Extent{Width: 1170, Height: 2532}, d.SurfaceArea)
	assert.Equal(t, Rect{Offset: Offset{Y: 141}, Extent: Extent{Width: 1170, Height: 2289}}, d.ActiveArea)
	assert.Equal(t, float32(3), d.Scale)
	assert.NoError(t, d.Validate())
}

func TestConverterDimensionsFlipKeepsEdgeInsets(t *testing.T) {
	c := Converter{Scale: 2, ViewHeight: 300, FlipY: true}
	d := c.Dimensions(400, 300, Insets{Top: 28, Bottom: 0}, Rotate0)

	assert.Equal(t, int32(56), d.ActiveArea.Offset.Y)
	assert.Equal(t, uint32(600-56), d.ActiveArea.Extent.Height)
}

func TestConverterDimensionsOversizedInsets(t *testing.T) {
	d := Converter{Scale: 1}.Dimensions(100, 100, Insets{Left: 80, Right: 80}, Rotate90)
	assert.Equal(t, Rect{Extent: Extent{Width: 100, Height: 100}}, d.ActiveArea)
	assert.Equal(t, Rotate90, d.Orientation)
}
