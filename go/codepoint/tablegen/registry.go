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
	"math"

	"codepoint.dev/codepoint/go/codepoint"
)

// registry interns property records in first-seen order. Index 0 is
// reserved for the all-zero sentinel even when no assigned codepoint
// shares it; codepoints whose properties are all zero alias the sentinel
// and become indistinguishable from unassigned ones.
type registry struct {
	records []codepoint.Record
	index   map[codepoint.Record]uint16
}

func newRegistry() *registry {
	r := &registry{
		records: []codepoint.Record{{}},
		index:   map[codepoint.Record]uint16{{}: 0},
	}
	return r
}

// intern returns the index of rec, adding it when unseen. Stage2 entries
// are 16 bits wide, so the registry cannot outgrow them.
func (r *registry) intern(rec codepoint.Record) (uint16, error) {
	if idx, ok := r.index[rec]; ok {
		return idx, nil
	}
	if len(r.records) > math.MaxUint16 {
		return 0, fmt.Errorf("%d unique records do not fit a 16-bit stage2 index", len(r.records)+1)
	}
	idx := uint16(len(r.records))
	r.records = append(r.records, rec)
	r.index[rec] = idx
	return idx, nil
}
