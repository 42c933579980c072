// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/lintbridge/cmd/lintbridge/internal/clierr"
	"github.com/bartekus/lintbridge/internal/runner"
	"github.com/bartekus/lintbridge/internal/scanner"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [files...]",
		Short: "Lint TypeScript files with TSLint",
		Long: `Lint the given files, or every TypeScript file tracked by git when none are given.
Exit status is 0 when clean, 1 when diagnostics were reported and 2 when a file could not be scanned.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if !validFormat(format) {
				return clierr.Newf(clierr.ExitConfig, "unknown format %q", format)
			}
			concurrency, _ := cmd.Flags().GetInt("concurrency")

			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			// Arguments are relative to the working directory, tracked files
			// to the project root.
			paths, base := args, a.root
			if len(paths) == 0 {
				paths, err = scanner.New(a.root).TrackedTypeScriptFiles(cmd.Context())
				if err != nil {
					return clierr.Wrap(clierr.ExitScanError, "listing files", err)
				}
			} else if base, err = os.Getwd(); err != nil {
				return clierr.Wrap(clierr.ExitScanError, "resolving working directory", err)
			}

			r := runner.NewRunner(&runner.Deps{
				Root:     base,
				Registry: a.registry,
				Reader:   a.reader,
			}, concurrency)

			results, scanErr := r.ScanAll(cmd.Context(), paths)
			summary := runner.Summarize(results)

			if err := render(cmd.OutOrStdout(), format, results, summary); err != nil {
				return err
			}
			if scanErr != nil {
				if format == formatText {
					for _, res := range results {
						if res.Err != nil {
							_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, res.Err)
						}
					}
				}
				return clierr.Wrap(clierr.ExitScanError, "scan incomplete", scanErr)
			}
			if summary.Diagnostics > 0 {
				return clierr.New(clierr.ExitProblems, "")
			}
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", formatText, "output format (text, json, yaml)")
	cmd.Flags().Int("concurrency", runner.DefaultConcurrency, "files scanned in parallel")
	addPrefFlags(cmd)

	return cmd
}
