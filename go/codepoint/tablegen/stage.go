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
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"

	"codepoint.dev/codepoint/go/codepoint"
)

// stageBuilder compresses per-codepoint record indices into the blocked
// two-level layout. Blocks are committed in codepoint order and a block
// whose contents match an already committed one reuses its stage2 region,
// so the output is fully determined by the input.
type stageBuilder struct {
	stage1 []uint32
	stage2 []uint16
	// byHash maps block content hashes to committed stage2 offsets.
	// Matches are verified element-wise, so a hash collision cannot merge
	// distinct blocks.
	byHash map[uint64][]uint32
}

// buildStages compresses indices, which holds one record index per
// codepoint of the full Unicode space.
func buildStages(indices []uint16) (stage1 []uint32, stage2 []uint16) {
	b := &stageBuilder{
		stage1: make([]uint32, 0, codepoint.NumBlocks),
		byHash: make(map[uint64][]uint32, codepoint.NumBlocks),
	}
	for block := 0; block < codepoint.NumBlocks; block++ {
		b.commit(indices[block*codepoint.BlockSize : (block+1)*codepoint.BlockSize])
	}
	return b.stage1, b.stage2
}

func (b *stageBuilder) commit(candidate []uint16) {
	hash := hashBlock(candidate)
	for _, off := range b.byHash[hash] {
		if slices.Equal(b.stage2[off:off+codepoint.BlockSize], candidate) {
			b.stage1 = append(b.stage1, off)
			return
		}
	}
	off := uint32(len(b.stage2))
	b.stage2 = append(b.stage2, candidate...)
	b.stage1 = append(b.stage1, off)
	b.byHash[hash] = append(b.byHash[hash], off)
}

func hashBlock(block []uint16) uint64 {
	var buf [2 * codepoint.BlockSize]byte
	for i, v := range block {
		binary.LittleEndian.PutUint16(buf[2*i:], v)
	}
	return xxhash.Sum64(buf[:])
}
