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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codepoint.dev/codepoint/go/codepoint"
	"codepoint.dev/codepoint/go/test/utils"
)

// testdataInput opens the curated UCD fixtures. They are real excerpts of
// the 13.0.0 database, trimmed to the codepoints the tests probe.
func testdataInput(t *testing.T) Input {
	t.Helper()
	open := func(name string) io.Reader {
		f, err := os.Open(filepath.Join("testdata", name))
		require.NoError(t, err)
		t.Cleanup(func() { f.Close() })
		return f
	}
	return Input{
		UnicodeData:           open("UnicodeData.txt"),
		DerivedCoreProperties: open("DerivedCoreProperties.txt"),
		LineBreak:             open("LineBreak.txt"),
		EmojiData:             open("emoji-data.txt"),
	}
}

func compileTestdata(t *testing.T) (*codepoint.Table, *Stats) {
	t.Helper()
	table, stats, err := Compile(testdataInput(t))
	require.NoError(t, err)
	return table, stats
}

func TestCompileFlags(t *testing.T) {
	table, _ := compileTestdata(t)

	testcases := []struct {
		c    rune
		want codepoint.Flags
	}{
		// LF and CR are controls with the mandatory break class.
		{0x000A, codepoint.FlagControl | codepoint.FlagLineBreak},
		{0x000D, codepoint.FlagControl | codepoint.FlagLineBreak},
		// SYNCHRONOUS IDLE has break class CM, which adds nothing.
		{0x0016, codepoint.FlagControl},
		// SPACE is the one printable codepoint inside the Z categories.
		{0x0020, codepoint.FlagSpace | codepoint.FlagPrintable},
		{0x005A, codepoint.FlagAlpha | codepoint.FlagPrintable | codepoint.FlagUpper},
		{0x005F, codepoint.FlagPunctuation | codepoint.FlagConnecting | codepoint.FlagPrintable},
		{0x0085, codepoint.FlagControl | codepoint.FlagLineBreak},
		{0x00B3, codepoint.FlagPrintable},
		{0x01C5, codepoint.FlagAlpha | codepoint.FlagTitle | codepoint.FlagPrintable},
		{0x0667, codepoint.FlagDigit | codepoint.FlagPrintable},
		{0x0FD0, codepoint.FlagPunctuation | codepoint.FlagPrintable},
		{0x2028, codepoint.FlagLineBreak},
		// NARROW NO-BREAK SPACE is a space separator but not printable.
		{0x202F, codepoint.FlagSpace},
		{0x1F4A9, codepoint.FlagPrintable | codepoint.FlagEmoji},
	}
	for _, tc := range testcases {
		t.Run(fmt.Sprintf("U+%04X", tc.c), func(t *testing.T) {
			assert.Equal(t, tc.want, table.ToFlags(tc.c))
		})
	}
}

func TestCompileCaseMappings(t *testing.T) {
	table, _ := compileTestdata(t)

	assert.Equal(t, 'z', table.ToLower('Z'))
	assert.Equal(t, 'Z', table.ToUpper('z'))
	assert.Equal(t, 'Z', table.ToTitle('z'))
	assert.True(t, table.IsUpper('Z'))
	assert.True(t, table.IsLower('z'))

	// The DZ WITH CARON triple has a distinct codepoint per case.
	assert.Equal(t, rune(0x01C4), table.ToUpper(0x01C4))
	assert.Equal(t, rune(0x01C6), table.ToLower(0x01C4))
	assert.Equal(t, rune(0x01C5), table.ToTitle(0x01C4))
	assert.Equal(t, rune(0x01C4), table.ToUpper(0x01C5))
	assert.Equal(t, rune(0x01C6), table.ToLower(0x01C5))
	assert.Equal(t, rune(0x01C4), table.ToUpper(0x01C6))
	assert.Equal(t, rune(0x01C5), table.ToTitle(0x01C6))
	assert.True(t, table.IsTitle(0x01C5))
	assert.False(t, table.IsUpper(0x01C5), "titlecase carries neither derived case property")
	assert.False(t, table.IsLower(0x01C5))
}

func TestCompileDigits(t *testing.T) {
	table, _ := compileTestdata(t)

	assert.Equal(t, 7, table.ToDigit(0x0667))
	assert.True(t, table.IsDigit(0x0667))
	assert.False(t, table.IsAlpha(0x0667))
	assert.True(t, table.IsAlphaNumeric(0x0667))

	// SUPERSCRIPT THREE has a digit value but is not a decimal digit.
	assert.Equal(t, 3, table.ToDigit(0x00B3))
	assert.False(t, table.IsDigit(0x00B3))
	assert.False(t, table.IsAlphaNumeric(0x00B3))
}

func TestCompileRangeExpansion(t *testing.T) {
	table, _ := compileTestdata(t)

	// The ideograph and Hangul pairs assign their full range.
	for _, c := range []rune{0x4E00, 0x4E01, 0x9FFC, 0xAC00, 0xD7A0, 0xD7A3} {
		assert.True(t, table.IsValid(c), "U+%04X", c)
		assert.True(t, table.IsAlpha(c), "U+%04X", c)
	}
	assert.False(t, table.IsValid(0x4DFF))
	assert.False(t, table.IsValid(0x9FFD))
	assert.False(t, table.IsValid(0xD7A4))
}

func TestCompilePrivateUseAliasing(t *testing.T) {
	table, _ := compileTestdata(t)

	// The private use boundary rows are assigned, but their derived
	// record is all zeroes, so they alias the sentinel and look exactly
	// like the unassigned interior.
	for _, c := range []rune{0xE000, 0xF8FF, 0xF4F1} {
		assert.False(t, table.IsValid(c), "U+%04X", c)
		assert.Equal(t, codepoint.Flags(0), table.ToFlags(c), "U+%04X", c)
		assert.Equal(t, c, table.ToLower(c), "U+%04X", c)
	}
}

func TestCompileStageLayout(t *testing.T) {
	table, _ := compileTestdata(t)

	require.Len(t, table.Stage1, codepoint.NumBlocks)
	// The fixture compresses to eleven distinct blocks: seven holding the
	// single rows, the shared all-sentinel block, the shared fully
	// assigned ideograph/Hangul block and the two partial tail blocks.
	require.Len(t, table.Stage2, 11*codepoint.BlockSize)
	for block, off := range table.Stage1 {
		require.LessOrEqual(t, int(off)+codepoint.BlockSize, len(table.Stage2), "block %d", block)
	}

	// Unassigned blocks all share one all-sentinel stage2 region, and the
	// ideograph and Hangul interiors share their fully assigned block.
	assert.Equal(t, table.Stage1[0x3000/codepoint.BlockSize], table.Stage1[0x10000/codepoint.BlockSize])
	assert.Equal(t, table.Stage1[0x4E80/codepoint.BlockSize], table.Stage1[0xAC80/codepoint.BlockSize])
	// A block holding only sentinel-aliased codepoints is shared too.
	assert.Equal(t, table.Stage1[0xE000/codepoint.BlockSize], table.Stage1[0x3000/codepoint.BlockSize])
}

func TestCompileStats(t *testing.T) {
	table, stats := compileTestdata(t)

	// 18 single rows, 20989 ideographs, 11172 Hangul syllables and the
	// two private use boundaries.
	assert.Equal(t, 32181, stats.Assigned)
	assert.Equal(t, 18, stats.Unique)
	assert.Equal(t, len(table.Records), stats.Unique)
	assert.Equal(t, codepoint.NumBlocks, stats.Stage1Entries)
	assert.Equal(t, len(table.Stage2), stats.Stage2Entries)

	assert.Equal(t, 32181*20, stats.UncompressedBytes())
	assert.Equal(t, 18*20, stats.RecordBytes())
	assert.Equal(t, codepoint.NumBlocks*4, stats.Stage1Bytes())
	assert.Equal(t, stats.RecordBytes()+stats.Stage1Bytes()+stats.Stage2Bytes(), stats.CompressedBytes())
}

func TestCompileDeterministic(t *testing.T) {
	table1, _ := compileTestdata(t)
	table2, _ := compileTestdata(t)
	utils.MustMatch(t, table1, table2)
}

func TestCompileSentinel(t *testing.T) {
	table, _ := compileTestdata(t)
	require.NotEmpty(t, table.Records)
	assert.Equal(t, codepoint.Record{}, table.Records[0])
}

func TestCompileInputErrors(t *testing.T) {
	empty := func() Input {
		return Input{
			UnicodeData:           strings.NewReader(""),
			DerivedCoreProperties: strings.NewReader(""),
			LineBreak:             strings.NewReader(""),
			EmojiData:             strings.NewReader(""),
		}
	}

	in := empty()
	in.UnicodeData = strings.NewReader("XYZ;NOT A CODEPOINT;Zz\n")
	_, _, err := Compile(in)
	require.ErrorContains(t, err, "UnicodeData: line 1")

	in = empty()
	in.EmojiData = strings.NewReader("0041..0030 ; Emoji\n")
	_, _, err = Compile(in)
	require.ErrorContains(t, err, "emoji-data: line 1")
}

func TestCompileRejectsOutOfRangeCodepoints(t *testing.T) {
	empty := func() Input {
		return Input{
			UnicodeData:           strings.NewReader(""),
			DerivedCoreProperties: strings.NewReader(""),
			LineBreak:             strings.NewReader(""),
			EmojiData:             strings.NewReader(""),
		}
	}

	in := empty()
	in.UnicodeData = strings.NewReader("110000;BEYOND PLANE 16;Lu;0;L;;;;;N;;;;;\n")
	_, _, err := Compile(in)
	require.ErrorContains(t, err, "UnicodeData: line 1")
	require.ErrorContains(t, err, "out of range")

	in = empty()
	in.EmojiData = strings.NewReader("FFFFFFFF ; Emoji\n")
	_, _, err = Compile(in)
	require.ErrorContains(t, err, "emoji-data: line 1")
	require.ErrorContains(t, err, "out of range")
}
