// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderthread_test

import (
	"fmt"

	"github.com/gogpu/modeler/input"
	"github.com/gogpu/modeler/render"
	"github.com/gogpu/modeler/renderthread"
	"github.com/gogpu/modeler/surface"
)

func Example() {
	q := renderthread.NewQueue()
	slot := renderthread.NewErrorSlot()
	th := renderthread.New(&render.SoftwareBackend{NoHUD: true})

	cfg := render.Config{Surface: surface.Handle(1), Width: 64, Height: 64, Scale: 1}
	h, err := th.Start(cfg, q, slot)
	if err != nil {
		msg, _ := slot.Take()
		fmt.Println("start failed:", msg)
		return
	}

	q.Push(input.PointerMove{X: 10, Y: 10})
	q.Push(input.ButtonDown{})
	q.Push(input.ButtonUp{})
	th.Terminate(q, h)

	fmt.Println(th.State(), h.Stats().Events)
	// Output: Terminated 3
}

func Example_startFailure() {
	slot := renderthread.NewErrorSlot()
	th := renderthread.New(&render.SoftwareBackend{})

	h, err := th.Start(render.Config{Width: 64, Height: 64}, renderthread.NewQueue(), slot)
	msg, _ := slot.Take()

	fmt.Println(h == nil, err != nil, th.State())
	fmt.Println(msg)
	// Output:
	// true true Idle
	// render: invalid surface handle: nil surface handle
}
