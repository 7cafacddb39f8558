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

// Package codegen renders generated Go source for the table compiler.
package codegen

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"sort"
	"strconv"

	"golang.org/x/tools/imports"

	"codepoint.dev/codepoint/go/log"
)

const licenseFileHeader = `/*
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
`

// Package is a Go import path. Writing one through Generator.P emits the
// package's base name and records the path for the import block.
type Package string

// Name returns the local identifier the package is referred to by.
func (p Package) Name() string {
	return path.Base(string(p))
}

// Quoted renders as a double-quoted Go string literal.
type Quoted string

// Quote marks v for rendering as a quoted string literal.
func Quote(v string) Quoted {
	return Quoted(v)
}

// Array16 renders as a []uint16 composite literal, eight values per line.
type Array16 []uint16

// Array32 renders as a []uint32 composite literal, eight values per line.
type Array32 []uint32

// Generator accumulates the body of a generated Go file. The body is kept
// unformatted; WriteToFile runs the result through go/format, so callers
// can print composite literals and declarations without worrying about
// indentation.
type Generator struct {
	bytes.Buffer
	pkg     string
	imports map[Package]bool
}

// NewGenerator returns a Generator for a file in the named package.
func NewGenerator(pkg string) *Generator {
	return &Generator{
		pkg:     pkg,
		imports: make(map[Package]bool),
	}
}

// P writes its arguments followed by a newline. Strings and integers are
// written verbatim; Package, Quoted, Array16 and Array32 get their
// special renderings.
func (g *Generator) P(args ...any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			g.WriteString(v)
		case Package:
			g.imports[v] = true
			g.WriteString(v.Name())
		case Quoted:
			g.WriteString(strconv.Quote(string(v)))
		case Array16:
			g.WriteString("[]uint16{")
			for i, value := range v {
				if i%8 == 0 {
					g.WriteString("\n")
				}
				fmt.Fprintf(&g.Buffer, "%d, ", value)
			}
			g.WriteString("\n}")
		case Array32:
			g.WriteString("[]uint32{")
			for i, value := range v {
				if i%8 == 0 {
					g.WriteString("\n")
				}
				fmt.Fprintf(&g.Buffer, "%d, ", value)
			}
			g.WriteString("\n}")
		default:
			fmt.Fprintf(&g.Buffer, "%v", v)
		}
	}
	g.WriteString("\n")
}

// Render returns the complete formatted file: license, generated-code
// banner, package clause, import block and body. Formatting runs through
// goimports, which also prunes any recorded import the body stopped
// referring to.
func (g *Generator) Render() ([]byte, error) {
	var file bytes.Buffer
	file.WriteString(licenseFileHeader)
	file.WriteString("\n// Code generated by maketables. DO NOT EDIT.\n\n")
	fmt.Fprintf(&file, "package %s\n\n", g.pkg)

	if len(g.imports) > 0 {
		var paths []string
		for pkg := range g.imports {
			paths = append(paths, string(pkg))
		}
		sort.Strings(paths)

		file.WriteString("import (\n")
		for _, p := range paths {
			fmt.Fprintf(&file, "%q\n", p)
		}
		file.WriteString(")\n\n")
	}

	file.Write(g.Bytes())

	formatted, err := imports.Process("generated.go", file.Bytes(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "source:\n%s\n", file.String())
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return formatted, nil
}

// WriteToFile renders the file and writes it to out. Any failure is fatal;
// nothing is written unless the whole file formats cleanly.
func (g *Generator) WriteToFile(out string) {
	formatted, err := g.Render()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := os.WriteFile(out, formatted, 0o644); err != nil {
		log.Fatalf("failed to generate %q: %v", out, err)
	}
	log.Infof("written %q - %d bytes", out, len(formatted))
}
