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
	"encoding/json"
	"fmt"
	"io"

	"codepoint.dev/codepoint/go/codepoint"
)

// Report is the property report for one codepoint. Field order is the
// wire order of the JSON report.
type Report struct {
	ToLowerCase int32 `json:"toLowerCase"`
	ToUpperCase int32 `json:"toUpperCase"`
	ToTitleCase int32 `json:"toTitleCase"`
	ToDigit     int   `json:"toDigit"`

	IsLowerCase      bool `json:"isLowerCase"`
	IsUpperCase      bool `json:"isUpperCase"`
	IsTitleCase      bool `json:"isTitleCase"`
	IsDigit          bool `json:"isDigit"`
	IsSpaceChar      bool `json:"isSpaceChar"`
	IsLineBreak      bool `json:"isLineBreak"`
	IsISOControl     bool `json:"isISOControl"`
	IsPunctuation    bool `json:"isPunctuation"`
	IsConnectingChar bool `json:"isConnectingChar"`
	IsFormattingChar bool `json:"isFormattingChar"`
	IsCombiningChar  bool `json:"isCombiningChar"`
	IsEmoji          bool `json:"isEmoji"`
	IsPrintable      bool `json:"isPrintable"`
	IsAlpha          bool `json:"isAlpha"`
	IsAlphaNumeric   bool `json:"isAlphaNumeric"`
	IsValidCodePoint bool `json:"isValidCodePoint"`
}

func buildReport(t *codepoint.Table, c rune) *Report {
	return &Report{
		ToLowerCase: int32(t.ToLower(c)),
		ToUpperCase: int32(t.ToUpper(c)),
		ToTitleCase: int32(t.ToTitle(c)),
		ToDigit:     t.ToDigit(c),

		IsLowerCase:      t.IsLower(c),
		IsUpperCase:      t.IsUpper(c),
		IsTitleCase:      t.IsTitle(c),
		IsDigit:          t.IsDigit(c),
		IsSpaceChar:      t.IsSpace(c),
		IsLineBreak:      t.IsLineBreak(c),
		IsISOControl:     t.IsControl(c),
		IsPunctuation:    t.IsPunctuation(c),
		IsConnectingChar: t.IsConnecting(c),
		IsFormattingChar: t.IsFormatting(c),
		IsCombiningChar:  t.IsCombining(c),
		IsEmoji:          t.IsEmoji(c),
		IsPrintable:      t.IsPrintable(c),
		IsAlpha:          t.IsAlpha(c),
		IsAlphaNumeric:   t.IsAlphaNumeric(c),
		IsValidCodePoint: t.IsValid(c),
	}
}

// renderJSON writes the report as a single JSON object line.
func (r *Report) renderJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(r)
}

// renderText writes the report as key: value lines, predicates as 0/1.
// The line-break, connecting, formatting and combining predicates are
// part of the JSON report only.
func (r *Report) renderText(w io.Writer) error {
	b := func(v bool) int {
		if v {
			return 1
		}
		return 0
	}

	lines := []struct {
		key   string
		value int
	}{
		{"toLowerCase", int(r.ToLowerCase)},
		{"toUpperCase", int(r.ToUpperCase)},
		{"toTitleCase", int(r.ToTitleCase)},
		{"toDigit", r.ToDigit},
		{"isLowerCase", b(r.IsLowerCase)},
		{"isUpperCase", b(r.IsUpperCase)},
		{"isTitleCase", b(r.IsTitleCase)},
		{"isDigit", b(r.IsDigit)},
		{"isSpaceChar", b(r.IsSpaceChar)},
		{"isISOControl", b(r.IsISOControl)},
		{"isPunctuation", b(r.IsPunctuation)},
		{"isEmoji", b(r.IsEmoji)},
		{"isPrintable", b(r.IsPrintable)},
		{"isAlpha", b(r.IsAlpha)},
		{"isAlphaNumeric", b(r.IsAlphaNumeric)},
		{"isValidCodePoint", b(r.IsValidCodePoint)},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s: %d\n", line.key, line.value); err != nil {
			return err
		}
	}
	return nil
}
