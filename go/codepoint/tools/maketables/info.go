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
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"codepoint.dev/codepoint/go/codepoint/tablegen"
)

// printinfo writes the size report for a compilation run. The
// uncompressed row is what a dense record-per-codepoint table would
// cost; the remaining rows are the tables actually emitted.
func printinfo(w io.Writer, stats *tablegen.Stats) {
	fmt.Fprintf(w, "Total code points: %d\n", stats.Assigned)
	fmt.Fprintf(w, "Unique code points: %d\n", stats.Unique)
	fmt.Fprintln(w)

	table := tablewriter.NewTable(w)
	table.Header("Table", "Entries", "Size")
	_ = table.Append([]string{"records (uncompressed)", strconv.Itoa(stats.Assigned), humanize.IBytes(uint64(stats.UncompressedBytes()))})
	_ = table.Append([]string{"records", strconv.Itoa(stats.Unique), humanize.IBytes(uint64(stats.RecordBytes()))})
	_ = table.Append([]string{"stage1", strconv.Itoa(stats.Stage1Entries), humanize.IBytes(uint64(stats.Stage1Bytes()))})
	_ = table.Append([]string{"stage2", strconv.Itoa(stats.Stage2Entries), humanize.IBytes(uint64(stats.Stage2Bytes()))})
	table.Footer("TOTAL COMPRESSED", "", humanize.IBytes(uint64(stats.CompressedBytes())))
	_ = table.Render()
}
