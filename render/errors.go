// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
)

// Errors returned by backends and renderers.
var (
	// ErrInvalidSurface is returned when the surface handle is nil.
	ErrInvalidSurface = errors.New("render: invalid surface handle")

	// ErrInvalidConfig is returned for unusable start parameters.
	ErrInvalidConfig = errors.New("render: invalid configuration")

	// ErrSurfaceLost is returned when the native surface is gone.
	ErrSurfaceLost = errors.New("render: surface lost")

	// ErrDeviceLost is returned when the graphics device is gone.
	ErrDeviceLost = errors.New("render: device lost")

	// ErrOutOfMemory is returned when swap resources cannot be allocated.
	ErrOutOfMemory = errors.New("render: out of memory")

	// ErrClosed is returned when a closed renderer is used.
	ErrClosed = errors.New("render: renderer closed")

	// ErrNoBackendAvailable is returned when a registry has no usable entry.
	ErrNoBackendAvailable = errors.New("render: no backend available")

	// ErrBackendNotFound is returned when a named backend is not registered.
	ErrBackendNotFound = errors.New("render: backend not found")
)

// FatalError marks an error that ends a renderer thread run.
type FatalError struct {
	Err error
}

// Error returns the wrapped error's message.
func (e *FatalError) Error() string {
	if e.Err == nil {
		return "render: fatal error"
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal wraps err so that IsFatal reports true. Fatal(nil) returns nil.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	var fe *FatalError
	if errors.As(err, &fe) {
		return err
	}
	return &FatalError{Err: err}
}

// Fatalf formats an error and marks it fatal.
func Fatalf(format string, args ...any) error {
	return Fatal(fmt.Errorf(format, args...))
}

// IsFatal reports whether err must end the run: surface lost, device lost,
// out of memory, or anything wrapped with Fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var fe *FatalError
	return errors.As(err, &fe) ||
		errors.Is(err, ErrSurfaceLost) ||
		errors.Is(err, ErrDeviceLost) ||
		errors.Is(err, ErrOutOfMemory) ||
		errors.Is(err, ErrClosed)
}
