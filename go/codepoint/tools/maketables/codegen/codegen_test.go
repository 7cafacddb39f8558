/*
Copyright 2026 The Codepoint Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	g := NewGenerator("tables")
	g.P("// answer is documented.")
	g.P("var answer = ", 42)
	g.P()
	g.P("var name = ", Quote("stage1"))

	out, err := g.Render()
	require.NoError(t, err)

	src := string(out)
	assert.Contains(t, src, "// Code generated by maketables. DO NOT EDIT.")
	assert.Contains(t, src, "package tables\n")
	assert.Contains(t, src, "var answer = 42\n")
	assert.Contains(t, src, `var name = "stage1"`)
	assert.NotContains(t, src, "import")
}

func TestRenderImports(t *testing.T) {
	g := NewGenerator("main")
	g.P("var table = &", Package("codepoint.dev/codepoint/go/codepoint"), ".Table{}")

	out, err := g.Render()
	require.NoError(t, err)

	src := string(out)
	assert.Contains(t, src, `"codepoint.dev/codepoint/go/codepoint"`)
	assert.Contains(t, src, "var table = &codepoint.Table{}")
}

func TestRenderArrays(t *testing.T) {
	g := NewGenerator("tables")
	g.P("var stage1 = ", Array32([]uint32{0, 128}))
	g.P()
	g.P("var stage2 = ", Array16([]uint16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))

	out, err := g.Render()
	require.NoError(t, err)

	src := string(out)
	assert.Contains(t, src, "var stage1 = []uint32{\n\t0, 128,\n}")
	assert.Contains(t, src, "var stage2 = []uint16{\n\t0, 1, 2, 3, 4, 5, 6, 7,\n\t8, 9,\n}")
}

func TestRenderRejectsBadSource(t *testing.T) {
	g := NewGenerator("tables")
	g.P("func {")

	_, err := g.Render()
	require.ErrorContains(t, err, "failed to format generated code")
}

func TestPackageName(t *testing.T) {
	assert.Equal(t, "codepoint", Package("codepoint.dev/codepoint/go/codepoint").Name())
	assert.Equal(t, "jen", Package("github.com/dave/jennifer/jen").Name())
}
