// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderthread

import "fmt"

// State is the lifecycle state of a Thread.
type State int32

// Thread states.
const (
	// Idle means no run is active: before the first Start or after a
	// failed one.
	Idle State = iota

	// Initializing means Start is opening the backend.
	Initializing

	// Running means the drain loop is consuming events.
	Running

	// Draining means the loop is stopping and releasing the renderer.
	Draining

	// Terminated means the last run has exited and released its surface.
	Terminated
)

var stateNames = [...]string{
	Idle:         "Idle",
	Initializing: "Initializing",
	Running:      "Running",
	Draining:     "Draining",
	Terminated:   "Terminated",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int32(s))
	}
	return stateNames[s]
}

// Live reports whether a run owns the surface.
func (s State) Live() bool {
	return s == Initializing || s == Running || s == Draining
}
