// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderthread

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestErrorSlotPublishOnce(t *testing.T) {
	s := NewErrorSlot()
	ready := s.Ready()
	assert.False(t, isClosed(ready))

	_, ok := s.Message()
	assert.False(t, ok)

	assert.True(t, s.Publish("surface lost"))
	assert.False(t, s.Publish("device lost"))
	assert.True(t, isClosed(ready))

	msg, ok := s.Message()
	assert.True(t, ok)
	assert.Equal(t, "surface lost", msg)
}

func TestErrorSlotTake(t *testing.T) {
	s := NewErrorSlot()
	_, ok := s.Take()
	assert.False(t, ok)

	s.Publish("out of memory")
	msg, ok := s.Take()
	assert.True(t, ok)
	assert.Equal(t, "out of memory", msg)

	_, ok = s.Take()
	assert.False(t, ok, "message is read once")

	msg, ok = s.Message()
	assert.True(t, ok)
	assert.Equal(t, "out of memory", msg)
}

func TestErrorSlotEmptyMessage(t *testing.T) {
	s := NewErrorSlot()
	s.Publish("")
	msg, _ := s.Message()
	assert.NotEmpty(t, msg)
}

func TestErrorSlotReset(t *testing.T) {
	s := NewErrorSlot()
	old := s.Ready()
	s.Publish("first run")
	s.Reset()

	assert.True(t, isClosed(old))
	assert.False(t, isClosed(s.Ready()))
	_, ok := s.Message()
	assert.False(t, ok)

	assert.True(t, s.Publish("second run"))
	msg, ok := s.Take()
	assert.True(t, ok)
	assert.Equal(t, "second run", msg)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Draining", Draining.String())
	assert.Equal(t, "Terminated", Terminated.String())
	assert.Equal(t, "State(9)", State(9).String())

	assert.True(t, Running.Live())
	assert.False(t, Idle.Live())
	assert.False(t, Terminated.Live())
}
