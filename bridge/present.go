// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bridge

import (
	"fmt"
	"io"

	"github.com/gogpu/modeler"
)

// FailureTitle is the title of the renderer failure alert.
const FailureTitle = "Modeler Error"

// Presenter shows a fatal error to the user.
type Presenter interface {
	// Present blocks until the user has seen the message.
	Present(title, message string)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(title, message string)

// Present calls f.
func (f PresenterFunc) Present(title, message string) {
	f(title, message)
}

// LogPresenter presents errors through modeler.Logger.
type LogPresenter struct{}

// Present implements Presenter.
func (LogPresenter) Present(title, message string) {
	modeler.Logger().Error(message, "title", title)
}

// WriterPresenter writes "title: message" lines to W.
type WriterPresenter struct {
	W io.Writer
}

// Present implements Presenter.
func (p WriterPresenter) Present(title, message string) {
	_, _ = fmt.Fprintf(p.W, "%s: %s\n", title, message)
}
