// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// hud draws a single status line into the top-left of the active area.
type hud struct {
	printer *message.Printer
	face    font.Face
	color   color.Color
}

func newHUD(tag language.Tag) *hud {
	return &hud{
		printer: message.NewPrinter(tag),
		face:    basicfont.Face7x13,
		color:   color.White,
	}
}

// line formats the status text.
func (h *hud) line(fps float64, frames uint64, p Pointer) string {
	if !p.Valid {
		return h.printer.Sprintf("fps: %.0f  frames: %d", fps, frames)
	}
	return h.printer.Sprintf("fps: %.0f  frames: %d  pointer: %d,%d", fps, frames, p.X, p.Y)
}

// draw renders text with its baseline one line below the top of area.
func (h *hud) draw(dst *image.RGBA, area image.Rectangle, text string) {
	d := font.Drawer{
		Dst:  dst.SubImage(area).(*image.RGBA),
		Src:  image.NewUniform(h.color),
		Face: h.face,
		Dot:  fixed.P(area.Min.X+4, area.Min.Y+h.face.Metrics().Ascent.Ceil()+2),
	}
	d.DrawString(text)
}
