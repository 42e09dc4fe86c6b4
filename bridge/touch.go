// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bridge

// Touch hosts report a single primary touch. Each callback queues the
// position before the button transition so the renderer sees where the
// press happened.

// TouchBegan queues the touch position and a button press.
func (b *Bridge) TouchBegan(x, y float64) {
	b.PointerMoved(x, y)
	b.ButtonDown()
}

// TouchMoved queues the touch position.
func (b *Bridge) TouchMoved(x, y float64) {
	b.PointerMoved(x, y)
}

// TouchEnded queues the final position and a button release.
func (b *Bridge) TouchEnded(x, y float64) {
	b.PointerMoved(x, y)
	b.ButtonUp()
}

// TouchCancelled releases the button without a final position.
func (b *Bridge) TouchCancelled() {
	b.ButtonUp()
}
