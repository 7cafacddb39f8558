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
	"os"

	"github.com/dave/jennifer/jen"

	"codepoint.dev/codepoint/go/log"
	"codepoint.dev/codepoint/go/tools/goimports"
)

const licenseFileHeader = `Copyright 2026 The Codepoint Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.`

// predicateNames are the boolean accessors, in declaration order.
var predicateNames = []string{
	"IsLower",
	"IsUpper",
	"IsTitle",
	"IsDigit",
	"IsSpace",
	"IsControl",
	"IsPunctuation",
	"IsEmoji",
	"IsPrintable",
	"IsAlpha",
	"IsAlphaNumeric",
	"IsLineBreak",
	"IsConnecting",
	"IsCombining",
	"IsFormatting",
	"IsValid",
}

// wrapAccessor builds
//
//	func Name(c rune) <ret> {
//		return UnicodeTable.Name(c)
//	}
func wrapAccessor(name string, ret *jen.Statement) *jen.Statement {
	return jen.Func().Id(name).Params(jen.Id("c").Rune()).Add(ret).Block(
		jen.Return(jen.Id("UnicodeTable").Dot(name).Call(jen.Id("c"))),
	)
}

func apiFile(pkg string) *jen.File {
	out := jen.NewFile(pkg)
	out.HeaderComment(licenseFileHeader)
	out.HeaderComment("Code generated by maketables. DO NOT EDIT.")

	for _, name := range []string{"ToLower", "ToUpper", "ToTitle"} {
		out.Add(wrapAccessor(name, jen.Rune()))
	}
	out.Add(wrapAccessor("ToDigit", jen.Int()))
	out.Add(wrapAccessor("ToFlags", jen.Qual(string(pkgCodepoint), "Flags")))

	for _, name := range predicateNames {
		out.Add(wrapAccessor(name, jen.Bool()))
	}
	return out
}

func writeAPIFile(pkg, out string) error {
	formatted, err := goimports.FormatJenFile(apiFile(pkg))
	if err != nil {
		return fmt.Errorf("failed to format the generated API: %w", err)
	}
	if err := os.WriteFile(out, formatted, 0o644); err != nil {
		return err
	}
	log.Infof("written %q - %d bytes", out, len(formatted))
	return nil
}
