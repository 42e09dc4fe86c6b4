// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package bridge connects a host view to a renderer thread.
//
// A Bridge owns the event queue, the error slot and the renderer thread of
// one view. The host calls Appear and Disappear from its view lifecycle
// callbacks and forwards layout, pointer and touch callbacks in logical
// points; the bridge converts them to backing pixels and queues them.
//
// When the renderer fails, the bridge posts a failure handler to the
// control thread through a Dispatcher. The handler shows the message with
// a Presenter and exits the process. Loop is a Dispatcher for hosts that
// have no UI run loop of their own.
package bridge
