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

// Package tablegen compiles Unicode Character Database text files into
// the two-stage property tables served by the codepoint package.
//
// Compilation runs in three phases. The assembly phase populates the
// dense codepoint space from UnicodeData.txt and folds in the auxiliary
// properties (derived case, mandatory line breaks, emoji). The interning
// phase walks the space in codepoint order and deduplicates identical
// property records. The staging phase cuts the space into 128-codepoint
// blocks and shares storage between blocks with identical contents. All
// three phases are deterministic: compiling the same inputs yields
// byte-identical tables.
package tablegen

import (
	"fmt"
	"io"

	"codepoint.dev/codepoint/go/codepoint"
)

// Input names the four UCD text resources consumed by Compile.
type Input struct {
	UnicodeData           io.Reader
	DerivedCoreProperties io.Reader
	LineBreak             io.Reader
	EmojiData             io.Reader
}

// Compile builds the property table from in and reports size accounting
// for it.
func Compile(in Input) (*codepoint.Table, *Stats, error) {
	a := newAssembly()
	if err := a.loadBase(in.UnicodeData); err != nil {
		return nil, nil, fmt.Errorf("UnicodeData: %w", err)
	}
	if err := a.augmentCase(in.DerivedCoreProperties); err != nil {
		return nil, nil, fmt.Errorf("DerivedCoreProperties: %w", err)
	}
	if err := a.augmentLineBreak(in.LineBreak); err != nil {
		return nil, nil, fmt.Errorf("LineBreak: %w", err)
	}
	if err := a.augmentEmoji(in.EmojiData); err != nil {
		return nil, nil, fmt.Errorf("emoji-data: %w", err)
	}

	reg := newRegistry()
	indices := make([]uint16, codepoint.MaxCodepoints)
	assigned := 0
	for c := range indices {
		if !a.assigned[c] {
			continue
		}
		idx, err := reg.intern(a.records[c])
		if err != nil {
			return nil, nil, err
		}
		indices[c] = idx
		assigned++
	}

	stage1, stage2 := buildStages(indices)
	table := &codepoint.Table{
		Records: reg.records,
		Stage1:  stage1,
		Stage2:  stage2,
	}
	stats := &Stats{
		Assigned:      assigned,
		Unique:        len(reg.records),
		Stage1Entries: len(stage1),
		Stage2Entries: len(stage2),
	}
	return table, stats, nil
}
