// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeNow struct {
	t time.Time
}

func (f *fakeNow) now() time.Time { return f.t }

func TestFrameClock(t *testing.T) {
	f := &fakeNow{t: time.Unix(0, 0)}
	c := NewFrameClock(f.now)

	assert.Zero(t, c.FPS())
	c.Tick()
	assert.Zero(t, c.FPS())
	assert.Equal(t, uint64(1), c.Frames())

	for range 5 {
		f.t = f.t.Add(20 * time.Millisecond)
		c.Tick()
	}
	assert.InDelta(t, 50.0, c.FPS(), 0.001)
	assert.Equal(t, uint64(6), c.Frames())
}

func TestFrameClockWindow(t *testing.T) {
	f := &fakeNow{t: time.Unix(0, 0)}
	c := NewFrameClock(f.now)
	c.Tick()

	// Slow frames fall out of the ring after clockSamples fast ones.
	for range 3 {
		f.t = f.t.Add(time.Second)
		c.Tick()
	}
	for range clockSamples {
		f.t = f.t.Add(10 * time.Millisecond)
		c.Tick()
	}
	assert.InDelta(t, 100.0, c.FPS(), 0.001)
}

func TestFrameClockZeroInterval(t *testing.T) {
	f := &fakeNow{t: time.Unix(0, 0)}
	c := NewFrameClock(f.now)
	c.Tick()
	c.Tick()
	assert.Zero(t, c.FPS())
}
