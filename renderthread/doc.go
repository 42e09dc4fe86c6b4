// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package renderthread hands input events from a UI thread to a dedicated
// renderer thread and reports fatal renderer failures back.
//
// A Queue carries events in push order. A Thread runs a render.Backend on
// its own OS thread: Start opens the backend and returns a Handle once the
// surface is validated, and the drain loop applies every queued event in
// order until Terminate or a fatal error ends the run. Fatal errors are
// published to an ErrorSlot whose Ready channel is the asynchronous
// failure signal.
//
// Basic usage:
//
//	q := renderthread.NewQueue()
//	slot := renderthread.NewErrorSlot()
//	th := renderthread.New(&render.SoftwareBackend{})
//
//	h, err := th.Start(cfg, q, slot)
//	if err != nil {
//	    log.Fatal(slot.Message())
//	}
//	q.Push(input.PointerMove{X: 10, Y: 20})
//	th.Terminate(q, h)
package renderthread
