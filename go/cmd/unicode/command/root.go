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

// Package command implements the unicode validator CLI. It compiles the
// property tables from the Unicode Character Database and reports every
// property of a single codepoint, as text or as JSON.
package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"codepoint.dev/codepoint/go/codepoint"
	"codepoint.dev/codepoint/go/codepoint/tablegen"
	"codepoint.dev/codepoint/go/codepoint/ucddata"
	"codepoint.dev/codepoint/go/log"
	"codepoint.dev/codepoint/go/viperutil"
)

// ErrUsage is returned when the command line is malformed. The usage
// line has been printed already; main exits nonzero without more output.
var ErrUsage = errors.New("usage")

// Main builds the root command.
func Main() *cobra.Command {
	var outputJSON bool

	rootCmd := &cobra.Command{
		Use:           "unicode [--json] codepoint",
		Short:         "unicode reports the Unicode properties of a codepoint.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, outputJSON)
		},
	}

	fs := rootCmd.Flags()
	fs.BoolVar(&outputJSON, "json", false, "emit the report as a single JSON object")
	fs.String("ucd-version", ucddata.DefaultVersion, "Unicode version of the database to compile")
	fs.String("ucd-dir", "", "directory of already downloaded UCD data files; nothing is fetched")
	fs.String("cache-dir", "", "directory the downloaded UCD files are cached in (default \"ucd-<version>\")")
	log.RegisterFlags(fs)

	viperutil.BindFlags(fs, ucddata.VersionConf, ucddata.DirConf, ucddata.CacheDirConf)

	return rootCmd
}

func run(cmd *cobra.Command, args []string, outputJSON bool) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "usage: unicode [--json] codepoint")
		return ErrUsage
	}

	// With several codepoint arguments, the last one wins.
	c, err := codepoint.ParseCodepoint(args[len(args)-1])
	if err != nil {
		return err
	}

	table, err := compileTable(cmd.Context())
	if err != nil {
		return err
	}

	report := buildReport(table, c)
	if outputJSON {
		return report.renderJSON(cmd.OutOrStdout())
	}
	return report.renderText(cmd.OutOrStdout())
}

func compileTable(ctx context.Context) (*codepoint.Table, error) {
	src := ucddata.SourceFromConf()

	in, closeInput, err := ucddata.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to load the UCD data files: %w", err)
	}

	table, _, err := tablegen.Compile(in)
	if cerr := closeInput(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to compile the codepoint tables: %w", err)
	}
	return table, nil
}
