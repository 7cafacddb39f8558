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

// maketables compiles the Unicode Character Database into codepoint
// property tables and emits them as a generated artifact.
//
// The output path decides the artifact. A `.h` extension emits a C
// single-header library; anything else emits a Go data file plus a
// `_api.go` companion with package-level accessors.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"codepoint.dev/codepoint/go/codepoint/tablegen"
	"codepoint.dev/codepoint/go/codepoint/ucddata"
	"codepoint.dev/codepoint/go/log"
)

var (
	ucdDir   = pflag.String("ucd", "", "directory of already downloaded UCD data files; nothing is fetched")
	version  = pflag.String("version", ucddata.DefaultVersion, "Unicode version of the database to compile")
	cacheDir = pflag.String("cache-dir", "", "directory the downloaded UCD files are cached in (default \"ucd-<version>\")")
	output   = pflag.String("out", "codepointdata.go", "output path; a .h extension emits the C single-header artifact")
	pkgName  = pflag.String("pkg", "main", "package name for the generated Go artifact")
	prefix   = pflag.String("prefix", "", "string to prefix C symbols with")
	noStdint = pflag.Bool("no-stdint", false, "do not include stdint.h in the C artifact")
	noInline = pflag.Bool("no-inline", false, "do not use the inline keyword in the C artifact")
	info     = pflag.Bool("info", false, "print size information about the compiled tables")
)

func main() {
	log.RegisterFlags(pflag.CommandLine)
	pflag.Parse()
	if err := log.Init(pflag.CommandLine); err != nil {
		log.Fatalf("%v", err)
	}
	defer log.Flush()

	src := &ucddata.Source{
		Version:  *version,
		CacheDir: *cacheDir,
	}
	if *ucdDir != "" {
		src.CacheDir = *ucdDir
		src.Offline = true
	}

	in, closeInput, err := ucddata.Load(context.Background(), src)
	if err != nil {
		log.Fatalf("failed to load the UCD data files: %v", err)
	}

	table, stats, err := tablegen.Compile(in)
	if cerr := closeInput(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("failed to compile the codepoint tables: %v", err)
	}
	log.Infof("compiled %d assigned codepoints into %d records", stats.Assigned, stats.Unique)

	if *info {
		printinfo(os.Stdout, stats)
	}

	if strings.HasSuffix(*output, ".h") {
		opts := headerOptions{
			prefix:   *prefix,
			noStdint: *noStdint,
			noInline: *noInline,
		}
		if err := makeheader(table, stats, opts, *output); err != nil {
			log.Fatalf("failed to write %q: %v", *output, err)
		}
		return
	}

	makego(table, *pkgName, *output)

	apiPath := strings.TrimSuffix(*output, ".go") + "_api.go"
	if err := writeAPIFile(*pkgName, apiPath); err != nil {
		log.Fatalf("failed to write %q: %v", apiPath, err)
	}
}
