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
	"strconv"
	"strings"
)

// ParseCodepoint parses a codepoint written in hexadecimal, with or
// without the customary U+ prefix. Values beyond the Unicode space parse
// successfully and resolve to the invalid sentinel on lookup.
func ParseCodepoint(s string) (rune, error) {
	hex := s
	if len(hex) > 0 && (hex[0] == 'u' || hex[0] == 'U') {
		hex = strings.TrimPrefix(hex[1:], "+")
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", s, err)
	}
	return rune(n), nil
}
