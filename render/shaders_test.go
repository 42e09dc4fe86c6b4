// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const solidWGSL = `
@vertex
fn vs_main(@builtin(vertex_index) i: u32) -> @builtin(position) vec4<f32> {
    let x = f32(i32(i) - 1);
    return vec4<f32>(x, 0.0, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(0.1, 0.3, 0.3, 1.0);
}
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadShadersEmptyPath(t *testing.T) {
	sources, err := LoadShaders("")
	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestLoadShadersMissing(t *testing.T) {
	_, err := LoadShaders(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrResourcePath)
}

func TestLoadShadersNotDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "model.obj", "v 0 0 0\n")

	_, err := LoadShaders(filepath.Join(dir, "model.obj"))
	assert.ErrorIs(t, err, ErrResourcePath)
}

func TestLoadShadersSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.wgsl", solidWGSL)
	writeFile(t, dir, "a.wgsl", solidWGSL)
	writeFile(t, dir, "readme.txt", "not a shader")

	sources, err := LoadShaders(dir)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "a", sources[0].Name)
	assert.Equal(t, "b", sources[1].Name)
	assert.Equal(t, solidWGSL, sources[0].Code)
}

func TestCompileShader(t *testing.T) {
	words, err := CompileShader(ShaderSource{Name: "solid", Code: solidWGSL})
	require.NoError(t, err)
	require.NotEmpty(t, words)
	assert.Equal(t, uint32(0x07230203), words[0], "SPIR-V magic number")
}

func TestCompileShaderInvalid(t *testing.T) {
	_, err := CompileShader(ShaderSource{Name: "broken", Code: "fn main( {"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
