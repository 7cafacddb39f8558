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

// Package codepoint provides constant-time Unicode character property
// lookups backed by compiled two-stage tables.
//
// A Table maps every codepoint in the Unicode space to a compact property
// Record holding its simple case mappings, decimal digit value and a bit
// set of character classes. Tables are compiled from the Unicode Character
// Database by the tablegen package and the maketables tool; identical
// records are stored once and 128-codepoint blocks with identical contents
// share their stage2 storage, which keeps the whole table a few dozen
// kilobytes. A Table performs no allocation on lookup and is safe for
// concurrent use.
package codepoint

// MaxCodepoints is the size of the Unicode codepoint space. Every rune in
// [0, MaxCodepoints) resolves through the table; everything else resolves
// to the invalid sentinel.
const MaxCodepoints = 0x110000

// BlockSize is the number of codepoints covered by one stage1 entry.
const BlockSize = 128

// NumBlocks is the number of stage1 entries covering the full codepoint
// space.
const NumBlocks = MaxCodepoints / BlockSize

// Flags is a bit set of character classes. The bits mirror the classes
// exposed by the generated C artifact and keep their values stable across
// Unicode versions.
type Flags uint16

const (
	// FlagAlpha marks the letter categories Lu, Ll, Lt, Lm, Lo and the
	// letter number category Nl.
	FlagAlpha Flags = 0x0001
	// FlagDigit marks the number categories Nd and Nl.
	FlagDigit Flags = 0x0002
	// FlagLower is the Lowercase derived core property.
	FlagLower Flags = 0x0004
	// FlagUpper is the Uppercase derived core property.
	FlagUpper Flags = 0x0008
	// FlagTitle marks the titlecase letter category Lt.
	FlagTitle Flags = 0x0010
	// FlagSpace marks the space separator category Zs.
	FlagSpace Flags = 0x0020
	// FlagPrintable marks codepoints outside the C and Z categories, plus
	// U+0020 SPACE itself.
	FlagPrintable Flags = 0x0040
	// FlagPunctuation marks the punctuation categories Pc, Pd, Ps, Pe,
	// Pi, Pf and Po.
	FlagPunctuation Flags = 0x0080
	// FlagControl marks the control category Cc.
	FlagControl Flags = 0x0100
	// FlagEmoji marks every codepoint listed in emoji-data.txt.
	FlagEmoji Flags = 0x0200
	// FlagLineBreak marks the separator categories Zl and Zp and the
	// mandatory line break classes NL, LF and CR.
	FlagLineBreak Flags = 0x0400
	// FlagConnecting marks the connector punctuation category Pc.
	FlagConnecting Flags = 0x0800
	// FlagCombining marks the combining mark categories Mn and Mc.
	FlagCombining Flags = 0x1000
	// FlagFormatting marks the format category Cf.
	FlagFormatting Flags = 0x2000
)

// Record holds the compiled properties shared by one or more codepoints.
// The zero Record is the sentinel for unassigned codepoints and always
// occupies index 0 of a Table.
type Record struct {
	// Upper, Lower and Title are the simple case mappings. A zero mapping
	// means the codepoint case-maps to itself.
	Upper rune
	Lower rune
	Title rune

	// Digit is the decimal digit value. It is populated from the digit
	// field of UnicodeData.txt, so compatibility digits such as the
	// superscripts carry a value here without carrying FlagDigit.
	Digit uint8

	Flags Flags
}
