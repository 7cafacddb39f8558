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

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTable builds a small table covering the first two 128-codepoint
// blocks. Every other block maps to a shared all-sentinel stage2 region,
// the way the compiler shares unassigned blocks in real tables.
func testTable() *Table {
	records := []Record{
		{}, // sentinel
		{Lower: 'z', Flags: FlagUpper | FlagAlpha | FlagPrintable},
		{Flags: FlagPunctuation | FlagConnecting | FlagPrintable},
		{Flags: FlagSpace | FlagPrintable},
		{Digit: 7, Flags: FlagDigit | FlagPrintable},
		{Digit: 3, Flags: FlagPrintable},
		{Flags: FlagControl},
	}

	stage2 := make([]uint16, 3*BlockSize)
	stage2['Z'] = 1
	stage2['_'] = 2
	stage2[' '] = 3
	stage2['7'] = 4
	stage2[0x16] = 6
	stage2[2*BlockSize+0xB3%BlockSize] = 5

	stage1 := make([]uint32, NumBlocks)
	stage1[1] = 2 * BlockSize
	for block := 2; block < NumBlocks; block++ {
		stage1[block] = BlockSize
	}
	return &Table{Records: records, Stage1: stage1, Stage2: stage2}
}

func TestLookupOutOfRange(t *testing.T) {
	table := testTable()
	for _, c := range []rune{-1, MaxCodepoints, MaxCodepoints + 1, 1 << 30} {
		t.Run(fmt.Sprintf("%#x", c), func(t *testing.T) {
			require.Same(t, &table.Records[0], table.Lookup(c))
			assert.False(t, table.IsValid(c))
			assert.Equal(t, c, table.ToLower(c))
			assert.Equal(t, c, table.ToUpper(c))
			assert.Equal(t, Flags(0), table.ToFlags(c))
		})
	}
}

func TestCaseMappings(t *testing.T) {
	table := testTable()

	assert.Equal(t, 'z', table.ToLower('Z'))
	// A zero stored mapping means the codepoint maps to itself.
	assert.Equal(t, 'Z', table.ToUpper('Z'))
	assert.Equal(t, 'Z', table.ToTitle('Z'))
	assert.Equal(t, '_', table.ToLower('_'))
	assert.Equal(t, '_', table.ToUpper('_'))
}

func TestPredicates(t *testing.T) {
	table := testTable()

	testcases := []struct {
		in    rune
		flags Flags
	}{
		{'Z', FlagUpper | FlagAlpha | FlagPrintable},
		{'_', FlagPunctuation | FlagConnecting | FlagPrintable},
		{' ', FlagSpace | FlagPrintable},
		{'7', FlagDigit | FlagPrintable},
		{0x16, FlagControl},
		{0xB3, FlagPrintable},
		{0x15, 0},
	}
	for _, tc := range testcases {
		t.Run(fmt.Sprintf("U+%04X", tc.in), func(t *testing.T) {
			assert.Equal(t, tc.flags, table.ToFlags(tc.in))
			assert.Equal(t, tc.flags&FlagUpper != 0, table.IsUpper(tc.in))
			assert.Equal(t, tc.flags&FlagLower != 0, table.IsLower(tc.in))
			assert.Equal(t, tc.flags&FlagAlpha != 0, table.IsAlpha(tc.in))
			assert.Equal(t, tc.flags&FlagDigit != 0, table.IsDigit(tc.in))
			assert.Equal(t, tc.flags&(FlagAlpha|FlagDigit) != 0, table.IsAlphaNumeric(tc.in))
			assert.Equal(t, tc.flags&FlagSpace != 0, table.IsSpace(tc.in))
			assert.Equal(t, tc.flags&FlagControl != 0, table.IsControl(tc.in))
			assert.Equal(t, tc.flags&FlagPunctuation != 0, table.IsPunctuation(tc.in))
			assert.Equal(t, tc.flags&FlagConnecting != 0, table.IsConnecting(tc.in))
			assert.Equal(t, tc.flags&FlagPrintable != 0, table.IsPrintable(tc.in))
		})
	}
}

func TestToDigit(t *testing.T) {
	table := testTable()

	assert.Equal(t, 7, table.ToDigit('7'))
	assert.True(t, table.IsDigit('7'))
	assert.True(t, table.IsAlphaNumeric('7'))

	// Compatibility digits carry a digit value without the digit class.
	assert.Equal(t, 3, table.ToDigit(0xB3))
	assert.False(t, table.IsDigit(0xB3))

	assert.Equal(t, 0, table.ToDigit('Z'))
}

func TestIsValid(t *testing.T) {
	table := testTable()

	assert.True(t, table.IsValid('Z'))
	assert.True(t, table.IsValid(0x16))
	assert.False(t, table.IsValid(0x15))
	assert.False(t, table.IsValid(0x200))
}

func TestFlagValues(t *testing.T) {
	// The bit assignments are shared with the generated C artifact and
	// must not drift.
	wantFlags := map[Flags]Flags{
		FlagAlpha:       0x0001,
		FlagDigit:       0x0002,
		FlagLower:       0x0004,
		FlagUpper:       0x0008,
		FlagTitle:       0x0010,
		FlagSpace:       0x0020,
		FlagPrintable:   0x0040,
		FlagPunctuation: 0x0080,
		FlagControl:     0x0100,
		FlagEmoji:       0x0200,
		FlagLineBreak:   0x0400,
		FlagConnecting:  0x0800,
		FlagCombining:   0x1000,
		FlagFormatting:  0x2000,
	}
	for flag, want := range wantFlags {
		assert.Equal(t, want, flag)
	}
}

func TestParseCodepoint(t *testing.T) {
	testcases := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{in: "U+005A", want: 0x5A},
		{in: "u+1f4a9", want: 0x1F4A9},
		{in: "U0041", want: 0x41},
		{in: "2028", want: 0x2028},
		{in: "0", want: 0},
		{in: "110000", want: 0x110000},
		{in: "", wantErr: true},
		{in: "U+", wantErr: true},
		{in: "+41", wantErr: true},
		{in: "zz", wantErr: true},
		{in: "-5A", wantErr: true},
	}
	for _, tc := range testcases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCodepoint(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
