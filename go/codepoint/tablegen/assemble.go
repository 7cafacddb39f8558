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
	"io"
	"strings"

	"codepoint.dev/codepoint/go/codepoint"
	"codepoint.dev/codepoint/go/codepoint/ucd"
)

// assembly is the dense codepoint space being populated before
// compression. Unassigned codepoints keep the zero record and are never
// touched by the augmentation passes.
type assembly struct {
	records  []codepoint.Record
	assigned []bool
}

func newAssembly() *assembly {
	return &assembly{
		records:  make([]codepoint.Record, codepoint.MaxCodepoints),
		assigned: make([]bool, codepoint.MaxCodepoints),
	}
}

func (a *assembly) assign(c rune, rec codepoint.Record) {
	a.records[c] = rec
	a.assigned[c] = true
}

// expandPair reports whether a paired First/Last range assigns every
// codepoint it spans. Only the ideograph and Hangul syllable blocks do;
// the other pairs (surrogates, private use) bound regions whose interior
// the database leaves unassigned, so only their boundary rows count.
func expandPair(name string) bool {
	return strings.Contains(name, "Ideograph") || strings.HasPrefix(name, "<Hangul")
}

// loadBase populates the codepoint space from UnicodeData.txt.
func (a *assembly) loadBase(r io.Reader) error {
	return ucd.Parse(r, func(p *ucd.Parser) {
		rec := deriveRecord(p)
		first, last := p.Range()
		switch {
		case first == last:
			a.assign(first, rec)
		case expandPair(p.String(fName)):
			for c := first; c <= last; c++ {
				a.assign(c, rec)
			}
		default:
			a.assign(first, rec)
			a.assign(last, rec)
		}
	})
}

// orFlags sets f on every assigned codepoint in [first, last].
func (a *assembly) orFlags(first, last rune, f codepoint.Flags) {
	if last >= codepoint.MaxCodepoints {
		last = codepoint.MaxCodepoints - 1
	}
	for c := first; c <= last; c++ {
		if a.assigned[c] {
			a.records[c].Flags |= f
		}
	}
}

// augmentCase folds the Lowercase and Uppercase derived core properties
// into the flags. The derived properties are wider than the Ll and Lu
// categories; modifier letters and circled letters pick up their case
// bits here.
func (a *assembly) augmentCase(r io.Reader) error {
	return ucd.Parse(r, func(p *ucd.Parser) {
		var f codepoint.Flags
		switch p.String(1) {
		case "Lowercase":
			f = codepoint.FlagLower
		case "Uppercase":
			f = codepoint.FlagUpper
		default:
			return
		}
		first, last := p.Range()
		a.orFlags(first, last, f)
	})
}

// augmentLineBreak marks the mandatory break classes from LineBreak.txt.
// The Zl and Zp separators already carry the bit from their category.
func (a *assembly) augmentLineBreak(r io.Reader) error {
	return ucd.Parse(r, func(p *ucd.Parser) {
		switch p.String(1) {
		case "NL", "LF", "CR":
			first, last := p.Range()
			a.orFlags(first, last, codepoint.FlagLineBreak)
		}
	})
}

// augmentEmoji marks every range listed in emoji-data.txt, whichever
// emoji property the range is listed under.
func (a *assembly) augmentEmoji(r io.Reader) error {
	return ucd.Parse(r, func(p *ucd.Parser) {
		first, last := p.Range()
		a.orFlags(first, last, codepoint.FlagEmoji)
	})
}
