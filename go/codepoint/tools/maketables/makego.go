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

package main

import (
	"fmt"
	"strings"

	"codepoint.dev/codepoint/go/codepoint"
	"codepoint.dev/codepoint/go/codepoint/tools/maketables/codegen"
)

const pkgCodepoint codegen.Package = "codepoint.dev/codepoint/go/codepoint"

// recordLiteral renders a Record as a keyed composite literal, dropping
// zero fields. The sentinel renders as {}.
func recordLiteral(r codepoint.Record) string {
	var fields []string
	if r.Upper != 0 {
		fields = append(fields, fmt.Sprintf("Upper: 0x%04X", r.Upper))
	}
	if r.Lower != 0 {
		fields = append(fields, fmt.Sprintf("Lower: 0x%04X", r.Lower))
	}
	if r.Title != 0 {
		fields = append(fields, fmt.Sprintf("Title: 0x%04X", r.Title))
	}
	if r.Digit != 0 {
		fields = append(fields, fmt.Sprintf("Digit: %d", r.Digit))
	}
	if r.Flags != 0 {
		fields = append(fields, fmt.Sprintf("Flags: 0x%04X", uint16(r.Flags)))
	}
	return "{" + strings.Join(fields, ", ") + "},"
}

func goFile(table *codepoint.Table, pkg string) *codegen.Generator {
	g := codegen.NewGenerator(pkg)

	g.P("// unicodeRecords is the deduplicated set of ", len(table.Records), " property records.")
	g.P("// Index 0 is the sentinel for unassigned codepoints.")
	g.P("var unicodeRecords = []", pkgCodepoint, ".Record{")
	for _, r := range table.Records {
		g.P(recordLiteral(r))
	}
	g.P("}")
	g.P()

	g.P("// stage1Table maps each 128-codepoint block to its offset in stage2Table.")
	g.P("var stage1Table = ", codegen.Array32(table.Stage1))
	g.P()

	g.P("var stage2Table = ", codegen.Array16(table.Stage2))
	g.P()

	g.P("// UnicodeTable resolves codepoints to their property records.")
	g.P("var UnicodeTable = &", pkgCodepoint, ".Table{")
	g.P("Records: unicodeRecords,")
	g.P("Stage1: stage1Table,")
	g.P("Stage2: stage2Table,")
	g.P("}")

	return g
}

func makego(table *codepoint.Table, pkg, out string) {
	goFile(table, pkg).WriteToFile(out)
}
