// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderthread

import (
	"sync"

	"github.com/gogpu/modeler/input"
)

// item is one queue entry: an event, or a terminate marker for run stop.
type item struct {
	ev   input.Event
	stop uint64
}

// Queue is an unbounded FIFO of input events shared by one producer and
// one renderer thread.
//
// Push never blocks. Events pushed while no thread is running are kept
// and delivered to the next run. Terminate markers are internal and carry
// the run they stop, so a marker left over from an earlier run is skipped
// by a later one.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []item
	events int
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends ev. A nil event is ignored.
func (q *Queue) Push(ev input.Event) {
	if ev == nil {
		return
	}
	q.mu.Lock()
	q.items = append(q.items, item{ev: ev})
	q.events++
	q.mu.Unlock()
	q.cond.Signal()
}

// Len returns the number of queued events. Terminate markers are not
// counted.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.events
}

// Discard removes the queued events for which drop returns true and
// reports how many were removed. Terminate markers are kept.
func (q *Queue) Discard(drop func(input.Event) bool) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.items[:0]
	n := 0
	for _, it := range q.items {
		if it.ev != nil && drop(it.ev) {
			n++
			continue
		}
		kept = append(kept, it)
	}
	clear(q.items[len(kept):])
	q.items = kept
	q.events -= n
	return n
}

// pushTerminate appends a marker that stops the run with the given id.
func (q *Queue) pushTerminate(run uint64) {
	q.mu.Lock()
	q.items = append(q.items, item{stop: run})
	q.mu.Unlock()
	q.cond.Signal()
}

// next blocks until an entry is available. It returns the next event, or
// false when it reaches the terminate marker for run. Markers for other
// runs are dropped.
func (q *Queue) next(run uint64) (input.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		for len(q.items) == 0 {
			q.cond.Wait()
		}
		it := q.items[0]
		q.items[0] = item{}
		q.items = q.items[1:]
		if it.ev != nil {
			q.events--
			return it.ev, true
		}
		if it.stop == run {
			return nil, false
		}
	}
}
