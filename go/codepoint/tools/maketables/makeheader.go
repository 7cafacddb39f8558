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
	"bytes"
	"fmt"
	"os"
	"strings"

	"codepoint.dev/codepoint/go/codepoint"
	"codepoint.dev/codepoint/go/codepoint/tablegen"
	"codepoint.dev/codepoint/go/log"
)

type headerOptions struct {
	prefix   string
	noStdint bool
	noInline bool
}

// maskDefine is one #define of the public interface. The comment names
// the Unicode categories the mask derives from; masks set only by the
// augmentation passes carry none.
type maskDefine struct {
	name    string
	mask    codepoint.Flags
	comment string
}

var maskDefines = []maskDefine{
	{"ALPHA", codepoint.FlagAlpha, "Unicode character classes 'Lm', 'Lt', 'Lu', 'Ll', 'Lo', 'Nl'"},
	{"DIGIT", codepoint.FlagDigit, "Unicode character classes 'Nd', 'Nl'"},
	{"LOWER", codepoint.FlagLower, ""},
	{"UPPER", codepoint.FlagUpper, ""},
	{"TITLE", codepoint.FlagTitle, "Unicode character class 'Lt'"},
	{"SPACE", codepoint.FlagSpace, "Unicode character class 'Zs'"},
	{"PRINTABLE", codepoint.FlagPrintable, ""},
	{"PUNCTUATION", codepoint.FlagPunctuation, "Unicode character classes 'Pc', 'Pd', 'Ps', 'Pe', 'Pi', 'Pf', 'Po'"},
	{"CONTROL", codepoint.FlagControl, "Unicode character class 'Cc'"},
	{"EMOJI", codepoint.FlagEmoji, ""},
	{"LINEBREAK", codepoint.FlagLineBreak, ""},
	{"CONNECTING", codepoint.FlagConnecting, "Unicode character class 'Pc'"},
	{"COMBINING", codepoint.FlagCombining, "Unicode character classes 'Mn', 'Mc'"},
	{"FORMATTING", codepoint.FlagFormatting, "Unicode character class 'Cf'"},
}

// declOrder lists the predicate declarations of the public interface.
var declOrder = []string{
	"islower", "isupper", "istitle", "isdigit", "isspace", "iscntrl",
	"ispunct", "isemoji", "isprint", "isalpha", "isalnum", "isvalid",
}

func writeStageTable[T uint16 | uint32](b *bytes.Buffer, prefix, name string, values []T) {
	fmt.Fprintf(b, "static const %scodepoint %s[] = {", prefix, name)
	for i, v := range values {
		if i%8 == 0 {
			b.WriteString("\n    ")
		}
		fmt.Fprintf(b, "%d, ", v)
	}
	b.WriteString("\n};\n\n")
}

// headerFile renders the single-header C library: a guarded public
// interface followed by a guarded implementation holding the three
// tables and the accessor definitions.
func headerFile(table *codepoint.Table, stats *tablegen.Stats, opts headerOptions) []byte {
	p := opts.prefix
	pu := strings.ToUpper(opts.prefix)

	var b bytes.Buffer
	b.WriteString("// Do NOT edit this file.\n")
	b.WriteString("// This file was programmatically generated by maketables\n")
	fmt.Fprintf(&b, "// It contains %d kilobytes of data.\n", stats.CompressedBytes()/1024)
	b.WriteString("\n")

	codepointType := "long"
	if !opts.noStdint {
		b.WriteString("#include <stdint.h>\n\n")
		codepointType = "int32_t"
	}

	b.WriteString("// ---------------------------------------------\n")
	b.WriteString("// Start of Public Interface\n")
	b.WriteString("// ---------------------------------------------\n\n")

	b.WriteString("#ifndef CODEPOINT_DEFINITIONS\n")
	b.WriteString("#define CODEPOINT_DEFINITIONS\n\n")

	fmt.Fprintf(&b, "typedef %s %scodepoint;\n\n", codepointType, p)

	for _, name := range []string{"tolower", "toupper", "totitle"} {
		fmt.Fprintf(&b, "%scodepoint %scodepoint_%s(%scodepoint character);\n", p, p, name, p)
	}
	fmt.Fprintf(&b, "int %scodepoint_todigit(%scodepoint character);\n", p, p)
	fmt.Fprintf(&b, "long %scodepoint_toflags(%scodepoint character);\n\n", p, p)

	for _, name := range declOrder {
		fmt.Fprintf(&b, "int %scodepoint_%s(%scodepoint character);\n", p, name, p)
	}
	b.WriteString("\n")

	for _, d := range maskDefines {
		fmt.Fprintf(&b, "#define %sCODEPOINT_%s 0x%X", pu, d.name, uint16(d.mask))
		if d.comment != "" {
			fmt.Fprintf(&b, " // %s", d.comment)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n#endif\n\n")

	b.WriteString("// ---------------------------------------------\n")
	b.WriteString("// End of Public Interface\n")
	b.WriteString("// ---------------------------------------------\n\n")

	b.WriteString("#ifdef CODEPOINT_IMPLEMENTATION\n\n")

	fmt.Fprintf(&b, "// This table is a set of %d unique code points.\n", stats.Unique)
	fmt.Fprintf(&b, "// It is %d bytes in size.\n", stats.RecordBytes())
	fmt.Fprintf(&b, "static const struct %scodepointdata {\n", p)
	fmt.Fprintf(&b, "    %scodepoint upper;\n", p)
	fmt.Fprintf(&b, "    %scodepoint lower;\n", p)
	fmt.Fprintf(&b, "    %scodepoint title;\n", p)
	b.WriteString("    int numeric_value;\n")
	fmt.Fprintf(&b, "    %s flags;\n", codepointType)
	b.WriteString("} unicode_codepoints[] = {\n")
	for _, r := range table.Records {
		fmt.Fprintf(&b, "    {%d, %d, %d, %d, %d},\n", r.Upper, r.Lower, r.Title, r.Digit, r.Flags)
	}
	b.WriteString("};\n\n")

	writeStageTable(&b, p, "stage1_table", table.Stage1)
	writeStageTable(&b, p, "stage2_table", table.Stage2)

	inline := "inline "
	if opts.noInline {
		inline = ""
	}
	fmt.Fprintf(&b, "static %sconst struct %scodepointdata *%sgetcodepointdata(%scodepoint ch) {\n", inline, p, p, p)
	fmt.Fprintf(&b, "    if (ch >= %d) {\n", codepoint.MaxCodepoints)
	b.WriteString("        return &unicode_codepoints[0]; // code point out of range\n")
	b.WriteString("    }\n")
	fmt.Fprintf(&b, "    const int stage2_offset = stage1_table[ch / %d];\n", codepoint.BlockSize)
	fmt.Fprintf(&b, "    const int codepoint_index = stage2_table[stage2_offset + (ch %% %d)];\n", codepoint.BlockSize)
	b.WriteString("    return &unicode_codepoints[codepoint_index];\n")
	b.WriteString("}\n\n")

	for _, conv := range []struct{ name, field string }{
		{"tolower", "lower"},
		{"toupper", "upper"},
		{"totitle", "title"},
	} {
		fmt.Fprintf(&b, "%scodepoint %scodepoint_%s(%scodepoint character) {\n", p, p, conv.name, p)
		fmt.Fprintf(&b, "    const %scodepoint cp = %sgetcodepointdata(character)->%s;\n", p, p, conv.field)
		b.WriteString("    return (cp == 0) ? character : cp;\n")
		b.WriteString("}\n\n")
	}

	fmt.Fprintf(&b, "int %scodepoint_todigit(%scodepoint character) {\n", p, p)
	fmt.Fprintf(&b, "    return %sgetcodepointdata(character)->numeric_value;\n", p)
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "long %scodepoint_toflags(%scodepoint character) {\n", p, p)
	fmt.Fprintf(&b, "    return %sgetcodepointdata(character)->flags;\n", p)
	b.WriteString("}\n\n")

	for _, pred := range []struct{ name, mask string }{
		{"islower", "LOWER"},
		{"isupper", "UPPER"},
		{"istitle", "TITLE"},
		{"isdigit", "DIGIT"},
		{"isspace", "SPACE"},
		{"ispunct", "PUNCTUATION"},
		{"isprint", "PRINTABLE"},
		{"iscntrl", "CONTROL"},
		{"isemoji", "EMOJI"},
		{"isalpha", "ALPHA"},
	} {
		fmt.Fprintf(&b, "int %scodepoint_%s(%scodepoint character) {\n", p, pred.name, p)
		fmt.Fprintf(&b, "    return !!(%sgetcodepointdata(character)->flags & %sCODEPOINT_%s);\n", p, pu, pred.mask)
		b.WriteString("}\n\n")
	}

	fmt.Fprintf(&b, "int %scodepoint_isalnum(%scodepoint character) {\n", p, p)
	fmt.Fprintf(&b, "    return !!(%sgetcodepointdata(character)->flags & (%sCODEPOINT_ALPHA | %sCODEPOINT_DIGIT));\n", p, pu, pu)
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "int %scodepoint_isvalid(%scodepoint character) {\n", p, p)
	fmt.Fprintf(&b, "    return %sgetcodepointdata(character) != &unicode_codepoints[0];\n", p)
	b.WriteString("}\n\n")

	b.WriteString("#endif\n\n")
	return b.Bytes()
}

func makeheader(table *codepoint.Table, stats *tablegen.Stats, opts headerOptions, out string) error {
	header := headerFile(table, stats, opts)
	if err := os.WriteFile(out, header, 0o644); err != nil {
		return err
	}
	log.Infof("written %q - %d bytes", out, len(header))
	return nil
}
