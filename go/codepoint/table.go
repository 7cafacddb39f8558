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

package codepoint

// Table is a compiled property table over the full Unicode codepoint
// space. Records holds one entry per unique property set with the
// all-zero sentinel at index 0. Stage1 maps each 128-codepoint block to
// an offset into Stage2, and Stage2 maps that offset plus the position
// within the block to a Records index. Blocks with identical contents
// share a single Stage2 region.
type Table struct {
	Records []Record
	Stage1  []uint32
	Stage2  []uint16
}

// index resolves c to its position in Records. Codepoints outside the
// Unicode space, including negative runes, resolve to the sentinel.
func (t *Table) index(c rune) uint16 {
	if uint32(c) >= MaxCodepoints {
		return 0
	}
	off := t.Stage1[c/BlockSize]
	return t.Stage2[off+uint32(c%BlockSize)]
}

// Lookup returns the property record for c. The returned pointer aliases
// the table and must not be modified.
func (t *Table) Lookup(c rune) *Record {
	return &t.Records[t.index(c)]
}

// ToLower returns the lowercase mapping of c. Codepoints without a
// mapping, including invalid ones, map to themselves.
func (t *Table) ToLower(c rune) rune {
	if m := t.Lookup(c).Lower; m != 0 {
		return m
	}
	return c
}

// ToUpper returns the uppercase mapping of c. Codepoints without a
// mapping, including invalid ones, map to themselves.
func (t *Table) ToUpper(c rune) rune {
	if m := t.Lookup(c).Upper; m != 0 {
		return m
	}
	return c
}

// ToTitle returns the titlecase mapping of c. Codepoints without a
// mapping, including invalid ones, map to themselves.
func (t *Table) ToTitle(c rune) rune {
	if m := t.Lookup(c).Title; m != 0 {
		return m
	}
	return c
}

// ToDigit returns the decimal digit value of c, or 0 when c has none.
// The value is not limited to the Nd category; see Record.Digit.
func (t *Table) ToDigit(c rune) int {
	return int(t.Lookup(c).Digit)
}

// ToFlags returns the raw character class bits of c.
func (t *Table) ToFlags(c rune) Flags {
	return t.Lookup(c).Flags
}

func (t *Table) is(c rune, f Flags) bool {
	return t.Lookup(c).Flags&f != 0
}

// IsLower reports whether c has the Lowercase property.
func (t *Table) IsLower(c rune) bool { return t.is(c, FlagLower) }

// IsUpper reports whether c has the Uppercase property.
func (t *Table) IsUpper(c rune) bool { return t.is(c, FlagUpper) }

// IsTitle reports whether c is a titlecase letter.
func (t *Table) IsTitle(c rune) bool { return t.is(c, FlagTitle) }

// IsDigit reports whether c is a decimal or letter number.
func (t *Table) IsDigit(c rune) bool { return t.is(c, FlagDigit) }

// IsSpace reports whether c is a space separator.
func (t *Table) IsSpace(c rune) bool { return t.is(c, FlagSpace) }

// IsControl reports whether c is a control character.
func (t *Table) IsControl(c rune) bool { return t.is(c, FlagControl) }

// IsPunctuation reports whether c is punctuation.
func (t *Table) IsPunctuation(c rune) bool { return t.is(c, FlagPunctuation) }

// IsEmoji reports whether c is listed in the emoji data.
func (t *Table) IsEmoji(c rune) bool { return t.is(c, FlagEmoji) }

// IsPrintable reports whether c is printable.
func (t *Table) IsPrintable(c rune) bool { return t.is(c, FlagPrintable) }

// IsAlpha reports whether c is alphabetic.
func (t *Table) IsAlpha(c rune) bool { return t.is(c, FlagAlpha) }

// IsAlphaNumeric reports whether c is alphabetic or a number.
func (t *Table) IsAlphaNumeric(c rune) bool { return t.is(c, FlagAlpha|FlagDigit) }

// IsLineBreak reports whether c forces a line break.
func (t *Table) IsLineBreak(c rune) bool { return t.is(c, FlagLineBreak) }

// IsConnecting reports whether c is connector punctuation.
func (t *Table) IsConnecting(c rune) bool { return t.is(c, FlagConnecting) }

// IsCombining reports whether c is a combining mark.
func (t *Table) IsCombining(c rune) bool { return t.is(c, FlagCombining) }

// IsFormatting reports whether c is a format character.
func (t *Table) IsFormatting(c rune) bool { return t.is(c, FlagFormatting) }

// IsValid reports whether c resolves to real data. An assigned codepoint
// whose record is all zeroes shares the sentinel and reports false; the
// database assigns such codepoints (the private use boundaries, for one)
// but records nothing about them.
func (t *Table) IsValid(c rune) bool {
	return t.index(c) != 0
}
