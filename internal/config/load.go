// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a session file syntax.
type Format string

// Supported formats.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("config: unknown session format")

// FormatOf returns the format for a file name by its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads and validates a session file. Keys missing from the file
// keep their Default values.
func Load(path string) (Session, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Session{}, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return Session{}, fmt.Errorf("config: read session: %w", err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return Session{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a session. Unknown keys are errors.
func Parse(data []byte, format Format) (Session, error) {
	s := Default()
	switch format {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return Session{}, fmt.Errorf("config: %s", strict.String())
			}
			return Session{}, fmt.Errorf("config: decode toml: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Session{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	default:
		return Session{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := s.Validate(); err != nil {
		return Session{}, err
	}
	return s, nil
}
