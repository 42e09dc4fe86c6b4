// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// ErrResourcePath is returned when the resource path is not a directory.
var ErrResourcePath = errors.New("render: bad resource path")

// ShaderSource is one WGSL file from the resource path.
type ShaderSource struct {
	// Name is the file name without the .wgsl extension.
	Name string

	// Code is the WGSL source.
	Code string
}

// LoadShaders reads every *.wgsl file directly under dir, in name order.
// An empty dir yields no shaders.
func LoadShaders(dir string) ([]ShaderSource, error) {
	if dir == "" {
		return nil, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourcePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrResourcePath, dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.wgsl"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourcePath, err)
	}
	sources := make([]ShaderSource, 0, len(paths))
	for _, p := range paths {
		code, err := os.ReadFile(p) //nolint:gosec // path comes from the host's resource root
		if err != nil {
			return nil, fmt.Errorf("render: read shader: %w", err)
		}
		sources = append(sources, ShaderSource{
			Name: strings.TrimSuffix(filepath.Base(p), ".wgsl"),
			Code: string(code),
		})
	}
	return sources, nil
}

// CompileShader compiles WGSL source to SPIR-V words.
func CompileShader(src ShaderSource) ([]uint32, error) {
	spirvBytes, err := naga.Compile(src.Code)
	if err != nil {
		return nil, fmt.Errorf("render: compile shader %s: %w", src.Name, err)
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// createShaderModules compiles every source and creates a module for it.
// On error the modules created so far are destroyed.
func createShaderModules(device hal.Device, sources []ShaderSource) ([]hal.ShaderModule, error) {
	modules := make([]hal.ShaderModule, 0, len(sources))
	for _, src := range sources {
		words, err := CompileShader(src)
		if err == nil {
			var m hal.ShaderModule
			m, err = device.CreateShaderModule(&hal.ShaderModuleDescriptor{
				Label:  src.Name,
				Source: hal.ShaderSource{SPIRV: words},
			})
			if err == nil {
				modules = append(modules, m)
				continue
			}
			err = fmt.Errorf("render: create shader module %s: %w", src.Name, err)
		}
		for _, m := range modules {
			device.DestroyShaderModule(m)
		}
		return nil, err
	}
	return modules, nil
}
