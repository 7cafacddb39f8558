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

package tablegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codepoint.dev/codepoint/go/codepoint"
)

func TestBuildStagesSharing(t *testing.T) {
	indices := make([]uint16, codepoint.MaxCodepoints)
	// Blocks 0 and 5 have identical contents; block 1 differs.
	indices[3] = 7
	indices[5*codepoint.BlockSize+3] = 7
	indices[codepoint.BlockSize+10] = 9

	stage1, stage2 := buildStages(indices)

	require.Len(t, stage1, codepoint.NumBlocks)
	require.Len(t, stage2, 3*codepoint.BlockSize, "three distinct blocks")

	assert.Equal(t, stage1[0], stage1[5])
	assert.NotEqual(t, stage1[0], stage1[1])
	assert.Equal(t, stage1[2], stage1[4], "empty blocks share one region")

	// Resolving through the layout recovers the inputs.
	assert.Equal(t, uint16(7), stage2[stage1[5]+3])
	assert.Equal(t, uint16(9), stage2[stage1[1]+10])
	assert.Equal(t, uint16(0), stage2[stage1[2]+3])
}

func TestBuildStagesCommitOrder(t *testing.T) {
	indices := make([]uint16, codepoint.MaxCodepoints)
	indices[0] = 1
	indices[codepoint.BlockSize] = 2

	stage1, _ := buildStages(indices)

	// Fresh blocks append in codepoint order, so offsets are monotonic
	// over first occurrences.
	assert.Equal(t, uint32(0), stage1[0])
	assert.Equal(t, uint32(codepoint.BlockSize), stage1[1])
	assert.Equal(t, uint32(2*codepoint.BlockSize), stage1[2])
}

func TestHashBlockDistinguishesContents(t *testing.T) {
	a := make([]uint16, codepoint.BlockSize)
	b := make([]uint16, codepoint.BlockSize)
	assert.Equal(t, hashBlock(a), hashBlock(b))
	b[127] = 1
	assert.NotEqual(t, hashBlock(a), hashBlock(b))
}
