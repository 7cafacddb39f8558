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
	"codepoint.dev/codepoint/go/codepoint"
	"codepoint.dev/codepoint/go/codepoint/ucd"
)

// UnicodeData.txt field indices, per UAX #44.
const (
	fCodePoint = iota
	fName
	fGeneralCategory
	fCanonicalCombiningClass
	fBidiClass
	fDecompositionTypeAndMapping
	fNumericTypeDecimal
	fNumericTypeDigit
	fNumericValue
	fBidiMirrored
	fUnicode1Name
	fISOComment
	fSimpleUppercaseMapping
	fSimpleLowercaseMapping
	fSimpleTitlecaseMapping
)

// deriveFlags maps a general category to its character class bits. The
// printable bit covers everything outside the C and Z categories, with
// U+0020 SPACE as the sole exception inside them.
func deriveFlags(category string, c rune) codepoint.Flags {
	var flags codepoint.Flags
	switch category {
	case "Lu", "Ll", "Lm", "Lo":
		flags |= codepoint.FlagAlpha
	case "Lt":
		flags |= codepoint.FlagAlpha | codepoint.FlagTitle
	case "Nl":
		flags |= codepoint.FlagAlpha | codepoint.FlagDigit
	case "Nd":
		flags |= codepoint.FlagDigit
	case "Zs":
		flags |= codepoint.FlagSpace
	case "Zl", "Zp":
		flags |= codepoint.FlagLineBreak
	case "Pc":
		flags |= codepoint.FlagPunctuation | codepoint.FlagConnecting
	case "Pd", "Ps", "Pe", "Pi", "Pf", "Po":
		flags |= codepoint.FlagPunctuation
	case "Mn", "Mc":
		flags |= codepoint.FlagCombining
	case "Cc":
		flags |= codepoint.FlagControl
	case "Cf":
		flags |= codepoint.FlagFormatting
	}
	if (category != "" && category[0] != 'C' && category[0] != 'Z') || c == ' ' {
		flags |= codepoint.FlagPrintable
	}
	return flags
}

// deriveRecord compiles the current UnicodeData record into its property
// record. Case mappings and the digit value come straight from the record
// fields; zero means no mapping.
func deriveRecord(p *ucd.Parser) codepoint.Record {
	first, _ := p.Range()
	return codepoint.Record{
		Upper: p.Rune(fSimpleUppercaseMapping),
		Lower: p.Rune(fSimpleLowercaseMapping),
		Title: p.Rune(fSimpleTitlecaseMapping),
		Digit: uint8(p.Int(fNumericTypeDigit)),
		Flags: deriveFlags(p.String(fGeneralCategory), first),
	}
}
