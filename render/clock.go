// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "time"

// clockSamples is the number of frame intervals averaged by FrameClock.
const clockSamples = 10

// FrameClock estimates the frame rate over the last few frame intervals.
type FrameClock struct {
	now     func() time.Time
	last    time.Time
	samples [clockSamples]time.Duration
	head    int
	count   int
	frames  uint64
}

// NewFrameClock creates a clock. A nil now uses time.Now.
func NewFrameClock(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now}
}

// Tick records one frame.
func (c *FrameClock) Tick() {
	t := c.now()
	if c.frames > 0 {
		c.samples[c.head] = t.Sub(c.last)
		c.head = (c.head + 1) % clockSamples
		if c.count < clockSamples {
			c.count++
		}
	}
	c.last = t
	c.frames++
}

// Frames returns the number of recorded frames.
func (c *FrameClock) Frames() uint64 {
	return c.frames
}

// FPS returns the average frame rate over the recorded intervals,
// or 0 before the second frame.
func (c *FrameClock) FPS() float64 {
	if c.count == 0 {
		return 0
	}
	var total time.Duration
	for i := range c.count {
		total += c.samples[i]
	}
	if total <= 0 {
		return 0
	}
	return float64(c.count) / total.Seconds()
}
