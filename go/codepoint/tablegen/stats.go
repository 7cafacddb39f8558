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

// Sizes of the emitted C artifact: 20 bytes per property record, 4 bytes
// per stage table entry.
const (
	recordBytes     = 20
	stageEntryBytes = 4
)

// Stats describes one compilation run.
type Stats struct {
	// Assigned is the number of codepoints the database assigns.
	Assigned int
	// Unique is the number of interned property records, sentinel
	// included.
	Unique int
	// Stage1Entries and Stage2Entries are the lengths of the two index
	// tables.
	Stage1Entries int
	Stage2Entries int
}

// UncompressedBytes is the size of a dense record-per-codepoint table.
func (s *Stats) UncompressedBytes() int { return s.Assigned * recordBytes }

// RecordBytes is the size of the deduplicated record table.
func (s *Stats) RecordBytes() int { return s.Unique * recordBytes }

// Stage1Bytes is the size of the block index table.
func (s *Stats) Stage1Bytes() int { return s.Stage1Entries * stageEntryBytes }

// Stage2Bytes is the size of the record index table.
func (s *Stats) Stage2Bytes() int { return s.Stage2Entries * stageEntryBytes }

// CompressedBytes is the total size of the compiled artifact.
func (s *Stats) CompressedBytes() int {
	return s.RecordBytes() + s.Stage1Bytes() + s.Stage2Bytes()
}
