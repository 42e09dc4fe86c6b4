// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config reads headless session files.
//
// A session describes the view a headless host pretends to show, the
// renderer backend to use and a script of input steps. Sessions are TOML
// or YAML; both use the same snake_case keys.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/modeler/input"
)

// ErrInvalid is returned for sessions that fail validation.
var ErrInvalid = errors.New("config: invalid session")

// Step actions.
const (
	ActionPointer        = "pointer"
	ActionDown           = "down"
	ActionUp             = "up"
	ActionLeave          = "leave"
	ActionTouchBegan     = "touch_began"
	ActionTouchMoved     = "touch_moved"
	ActionTouchEnded     = "touch_ended"
	ActionTouchCancelled = "touch_cancelled"
	ActionResize         = "resize"
	ActionExtent         = "extent"
	ActionFullscreen     = "fullscreen"
	ActionWait           = "wait"
)

var actions = map[string]bool{
	ActionPointer: true, ActionDown: true, ActionUp: true, ActionLeave: true,
	ActionTouchBegan: true, ActionTouchMoved: true, ActionTouchEnded: true,
	ActionTouchCancelled: true, ActionResize: true, ActionExtent: true,
	ActionFullscreen: true, ActionWait: true,
}

// Session is a headless run description.
type Session struct {
	// Backend is a registered backend name, or "auto".
	Backend string `toml:"backend" yaml:"backend"`

	// ResourcePath is the renderer asset directory.
	ResourcePath string `toml:"resource_path" yaml:"resource_path"`

	// Language is a BCP 47 tag for HUD number formatting.
	Language string `toml:"language" yaml:"language"`

	// NoHUD disables the software renderer status line.
	NoHUD bool `toml:"no_hud" yaml:"no_hud"`

	// Frames renders a frame whenever the queue runs empty.
	Frames bool `toml:"frames" yaml:"frames"`

	// Output is an optional PNG path for the last software frame.
	Output string `toml:"output" yaml:"output"`

	View  View   `toml:"view" yaml:"view"`
	Steps []Step `toml:"steps" yaml:"steps"`
}

// View is the initial view geometry in logical points.
type View struct {
	Width      float64 `toml:"width" yaml:"width"`
	Height     float64 `toml:"height" yaml:"height"`
	Scale      float32 `toml:"scale" yaml:"scale"`
	Rotation   int     `toml:"rotation" yaml:"rotation"`
	FlipY      bool    `toml:"flip_y" yaml:"flip_y"`
	Fullscreen bool    `toml:"fullscreen" yaml:"fullscreen"`
	Insets     Insets  `toml:"insets" yaml:"insets"`
}

// Insets are safe-area margins in points.
type Insets struct {
	Top    float64 `toml:"top" yaml:"top"`
	Left   float64 `toml:"left" yaml:"left"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
	Right  float64 `toml:"right" yaml:"right"`
}

// Step is one scripted host callback.
type Step struct {
	Action string  `toml:"action" yaml:"action"`
	X      float64 `toml:"x" yaml:"x"`
	Y      float64 `toml:"y" yaml:"y"`

	// Width and Height are the new view size for resize and extent.
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`

	// On is the new fullscreen state.
	On bool `toml:"on" yaml:"on"`

	// Delay is waited before the step runs.
	Delay Duration `toml:"delay" yaml:"delay"`
}

// Duration is a time.Duration written as a Go duration string.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("config: duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("config: line %d: duration must be a scalar", node.Line)
	}
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns the session used when no file is given.
func Default() Session {
	return Session{
		Backend:  "auto",
		Language: "en",
		Frames:   true,
		View: View{
			Width:  800,
			Height: 600,
			Scale:  1,
		},
	}
}

// Orientation returns the view rotation as an input.Orientation.
func (v View) Orientation() input.Orientation {
	return input.Orientation((v.Rotation / 90) % 4) //nolint:gosec // validated to 0..270
}

// InputInsets returns the insets as input.Insets.
func (v View) InputInsets() input.Insets {
	return input.Insets{Top: v.Insets.Top, Left: v.Insets.Left, Bottom: v.Insets.Bottom, Right: v.Insets.Right}
}

// Validate checks the session.
func (s *Session) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Backend) == "" {
		errs = append(errs, errors.New("backend is empty"))
	}
	if s.View.Width <= 0 || s.View.Height <= 0 {
		errs = append(errs, fmt.Errorf("view size %gx%g must be positive", s.View.Width, s.View.Height))
	}
	if s.View.Scale < 0 {
		errs = append(errs, fmt.Errorf("view scale %g is negative", s.View.Scale))
	}
	switch s.View.Rotation {
	case 0, 90, 180, 270:
	default:
		errs = append(errs, fmt.Errorf("view rotation %d is not a multiple of 90 in [0, 270]", s.View.Rotation))
	}
	for i, st := range s.Steps {
		if !actions[st.Action] {
			errs = append(errs, fmt.Errorf("step %d: unknown action %q", i, st.Action))
			continue
		}
		if (st.Action == ActionResize || st.Action == ActionExtent) && (st.Width <= 0 || st.Height <= 0) {
			errs = append(errs, fmt.Errorf("step %d: %s needs a positive width and height", i, st.Action))
		}
		if st.Delay < 0 {
			errs = append(errs, fmt.Errorf("step %d: negative delay", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
