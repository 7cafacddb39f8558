// Package goimports formats generated source the way the repository's
// goimports configuration would.
package goimports

import (
	"bytes"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// FormatJenFile renders the given *jen.File and returns it formatted,
// with imports grouped under the module's local prefix.
func FormatJenFile(file *jen.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		return nil, err
	}

	imports.LocalPrefix = "codepoint.dev/codepoint"
	return imports.Process("generated.go", buf.Bytes(), nil)
}
