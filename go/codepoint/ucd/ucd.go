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

// Package ucd parses the semicolon-separated text files of the Unicode
// Character Database.
package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Parser iterates over the records of a UCD text file. Comments and blank
// lines are skipped, fields are trimmed, and the first field is resolved
// to a codepoint range: either a single codepoint, a "first..last" range,
// or a paired record whose name carries the ", First>" marker and which is
// merged with the following ", Last>" record.
//
// The usual pattern is:
//
//	p := ucd.New(r)
//	for p.Next() {
//		first, last := p.Range()
//		...
//	}
//	if err := p.Err(); err != nil {
//		...
//	}
//
// Any malformed line stops the iteration; there is no resynchronization.
type Parser struct {
	scanner *bufio.Scanner
	line    int
	err     error

	first  rune
	last   rune
	fields []string
}

// New returns a Parser reading records from r.
func New(r io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(r)}
}

// Next advances to the next record. It returns false at the end of the
// input or on the first malformed record; Err tells the two apart.
func (p *Parser) Next() bool {
	if p.err != nil {
		return false
	}
	fields, ok := p.scan()
	if !ok {
		return false
	}
	p.fields = fields
	if !p.parseRange(fields[0]) {
		return false
	}
	if len(fields) > 1 && strings.HasSuffix(fields[1], ", First>") {
		return p.mergeLast()
	}
	return true
}

// mergeLast consumes the ", Last>" record paired with the current
// ", First>" record and widens the range to cover both. The merged record
// keeps the fields of the First row.
func (p *Parser) mergeLast() bool {
	name := p.fields[1]
	fields, ok := p.scan()
	if !ok {
		if p.err == nil {
			p.failf("record %q has no matching Last record", name)
		}
		return false
	}
	if len(fields) < 2 || !strings.HasSuffix(fields[1], ", Last>") {
		p.failf("record %q is not followed by a Last record", name)
		return false
	}
	last, err := parseRune(fields[0])
	if err != nil {
		p.fail(err)
		return false
	}
	if last < p.first {
		p.failf("record %q ends at U+%04X before it starts", name, last)
		return false
	}
	p.last = last
	return true
}

// scan returns the fields of the next non-empty line.
func (p *Parser) scan() ([]string, bool) {
	for p.scanner.Scan() {
		p.line++
		text := p.scanner.Text()
		if p.line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, ";")
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}
		return fields, true
	}
	if err := p.scanner.Err(); err != nil {
		p.err = err
	}
	return nil, false
}

// parseRange resolves the codepoint field, which is either a single
// codepoint or a "first..last" range.
func (p *Parser) parseRange(field string) bool {
	lo, hi, ok := strings.Cut(field, "..")
	first, err := parseRune(lo)
	if err != nil {
		p.fail(err)
		return false
	}
	p.first, p.last = first, first
	if !ok {
		return true
	}
	last, err := parseRune(hi)
	if err != nil {
		p.fail(err)
		return false
	}
	if last < first {
		p.failf("range %q is inverted", field)
		return false
	}
	p.last = last
	return true
}

// Range returns the codepoint range of the current record.
func (p *Parser) Range() (first, last rune) {
	return p.first, p.last
}

// String returns field i of the current record.
func (p *Parser) String(i int) string {
	f, ok := p.field(i)
	if !ok {
		return ""
	}
	return f
}

// Rune returns field i parsed as a hexadecimal codepoint. An empty field
// is 0. For i == 0 it returns the start of the record's range.
func (p *Parser) Rune(i int) rune {
	if i == 0 {
		return p.first
	}
	f, ok := p.field(i)
	if !ok || f == "" {
		return 0
	}
	c, err := parseRune(f)
	if err != nil {
		p.fail(err)
		return 0
	}
	return c
}

// Int returns field i parsed as a decimal integer. An empty field is 0.
func (p *Parser) Int(i int) int {
	f, ok := p.field(i)
	if !ok || f == "" {
		return 0
	}
	n, err := strconv.Atoi(f)
	if err != nil {
		p.failf("bad integer field %d: %v", i, err)
		return 0
	}
	return n
}

// Err returns the first error encountered while parsing.
func (p *Parser) Err() error {
	return p.err
}

func (p *Parser) field(i int) (string, bool) {
	if i >= len(p.fields) {
		p.failf("missing field %d", i)
		return "", false
	}
	return p.fields[i], true
}

func (p *Parser) fail(err error) {
	if p.err == nil {
		p.err = fmt.Errorf("line %d: %w", p.line, err)
	}
}

func (p *Parser) failf(format string, args ...any) {
	p.fail(fmt.Errorf(format, args...))
}

func parseRune(s string) (rune, error) {
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad codepoint %q", s)
	}
	if n > unicode.MaxRune {
		return 0, fmt.Errorf("codepoint %q out of range", s)
	}
	return rune(n), nil
}

// Parse runs f for every record in r and returns the first parse error.
func Parse(r io.Reader, f func(p *Parser)) error {
	p := New(r)
	for p.Next() {
		f(p)
	}
	return p.Err()
}
