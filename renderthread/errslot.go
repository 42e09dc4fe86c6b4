// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderthread

import "sync"

// unknownFailure replaces an empty failure message.
const unknownFailure = "renderer failed"

// ErrorSlot holds the failure message of one renderer run.
//
// The renderer thread publishes at most one message per run; Ready is
// closed when it does. The reader takes the message once. Reset prepares
// the slot for the next run.
type ErrorSlot struct {
	mu    sync.Mutex
	msg   string
	set   bool
	taken bool
	ready chan struct{}
}

// NewErrorSlot creates an empty slot.
func NewErrorSlot() *ErrorSlot {
	return &ErrorSlot{ready: make(chan struct{})}
}

// Publish stores msg and closes the Ready channel. Only the first call
// after Reset has an effect; it reports whether msg was stored.
func (s *ErrorSlot) Publish(msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set {
		return false
	}
	if msg == "" {
		msg = unknownFailure
	}
	s.msg = msg
	s.set = true
	close(s.ready)
	return true
}

// Ready returns a channel closed once a message is published.
func (s *ErrorSlot) Ready() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Message returns the published message without consuming it.
func (s *ErrorSlot) Message() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msg, s.set
}

// Take returns the published message the first time it is called.
// Later calls, and calls before Publish, return "", false.
func (s *ErrorSlot) Take() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set || s.taken {
		return "", false
	}
	s.taken = true
	return s.msg, true
}

// Reset clears the slot. A channel returned by an earlier Ready call is
// not affected.
func (s *ErrorSlot) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msg = ""
	s.set = false
	s.taken = false
	s.ready = make(chan struct{})
}
