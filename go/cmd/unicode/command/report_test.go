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

package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codepoint.dev/codepoint/go/codepoint"
)

// reportTable builds a table with one representative codepoint per
// report column: U+000A (control, line break), U+005F (connector
// punctuation), U+00AD (format), U+01C5 (titlecase letter) and U+0300
// (combining mark).
func reportTable() *codepoint.Table {
	records := []codepoint.Record{
		{},
		{Upper: 0x01C4, Lower: 0x01C6, Title: 0x01C5, Flags: codepoint.FlagAlpha | codepoint.FlagTitle | codepoint.FlagPrintable},
		{Flags: codepoint.FlagPunctuation | codepoint.FlagConnecting | codepoint.FlagPrintable},
		{Flags: codepoint.FlagControl | codepoint.FlagLineBreak},
		{Flags: codepoint.FlagFormatting},
		{Flags: codepoint.FlagCombining},
	}

	stage1 := make([]uint32, codepoint.NumBlocks)
	stage2 := make([]uint16, 5*codepoint.BlockSize)
	stage1[0x000A/codepoint.BlockSize] = 1 * codepoint.BlockSize
	stage1[0x00AD/codepoint.BlockSize] = 2 * codepoint.BlockSize
	stage1[0x01C5/codepoint.BlockSize] = 3 * codepoint.BlockSize
	stage1[0x0300/codepoint.BlockSize] = 4 * codepoint.BlockSize
	stage2[1*codepoint.BlockSize+0x000A%codepoint.BlockSize] = 3
	stage2[1*codepoint.BlockSize+0x005F%codepoint.BlockSize] = 2
	stage2[2*codepoint.BlockSize+0x00AD%codepoint.BlockSize] = 4
	stage2[3*codepoint.BlockSize+0x01C5%codepoint.BlockSize] = 1
	stage2[4*codepoint.BlockSize+0x0300%codepoint.BlockSize] = 5

	return &codepoint.Table{Records: records, Stage1: stage1, Stage2: stage2}
}

func TestBuildReport(t *testing.T) {
	tbl := reportTable()

	dz := buildReport(tbl, 0x01C5)
	assert.Equal(t, int32(0x01C6), dz.ToLowerCase)
	assert.Equal(t, int32(0x01C4), dz.ToUpperCase)
	assert.Equal(t, int32(0x01C5), dz.ToTitleCase)
	assert.True(t, dz.IsTitleCase)
	assert.True(t, dz.IsAlpha)
	assert.True(t, dz.IsAlphaNumeric)
	assert.False(t, dz.IsUpperCase)
	assert.True(t, dz.IsValidCodePoint)

	lf := buildReport(tbl, 0x000A)
	assert.True(t, lf.IsISOControl)
	assert.True(t, lf.IsLineBreak)
	assert.False(t, lf.IsPrintable)

	underscore := buildReport(tbl, 0x005F)
	assert.True(t, underscore.IsPunctuation)
	assert.True(t, underscore.IsConnectingChar)

	assert.True(t, buildReport(tbl, 0x00AD).IsFormattingChar)
	assert.True(t, buildReport(tbl, 0x0300).IsCombiningChar)
}

func TestBuildReportInvalid(t *testing.T) {
	r := buildReport(reportTable(), 0x50000)

	assert.False(t, r.IsValidCodePoint)
	assert.Equal(t, int32(0x50000), r.ToLowerCase)
	assert.Equal(t, int32(0x50000), r.ToUpperCase)
	assert.Equal(t, int32(0x50000), r.ToTitleCase)
	assert.Equal(t, 0, r.ToDigit)
	assert.False(t, r.IsAlpha)
	assert.False(t, r.IsPrintable)
}

func TestRenderJSONOrder(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, buildReport(reportTable(), 0x005F).renderJSON(&buf))

	want := `{"toLowerCase":95,"toUpperCase":95,"toTitleCase":95,"toDigit":0,` +
		`"isLowerCase":false,"isUpperCase":false,"isTitleCase":false,"isDigit":false,` +
		`"isSpaceChar":false,"isLineBreak":false,"isISOControl":false,"isPunctuation":true,` +
		`"isConnectingChar":true,"isFormattingChar":false,"isCombiningChar":false,` +
		`"isEmoji":false,"isPrintable":true,"isAlpha":false,"isAlphaNumeric":false,` +
		`"isValidCodePoint":true}` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderText(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, buildReport(reportTable(), 0x005F).renderText(&buf))

	want := `toLowerCase: 95
toUpperCase: 95
toTitleCase: 95
toDigit: 0
isLowerCase: 0
isUpperCase: 0
isTitleCase: 0
isDigit: 0
isSpaceChar: 0
isISOControl: 0
isPunctuation: 1
isEmoji: 0
isPrintable: 1
isAlpha: 0
isAlphaNumeric: 0
isValidCodePoint: 1
`
	assert.Equal(t, want, buf.String())
}

func TestRenderTextOmitsJSONOnlyKeys(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, buildReport(reportTable(), 0x000A).renderText(&buf))

	out := buf.String()
	assert.Contains(t, out, "isISOControl: 1\n")
	assert.NotContains(t, out, "isLineBreak")
	assert.NotContains(t, out, "isConnectingChar")
	assert.NotContains(t, out, "isFormattingChar")
	assert.NotContains(t, out, "isCombiningChar")
}
