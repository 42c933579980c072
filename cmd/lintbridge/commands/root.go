// SPDX-License-Identifier: AGPL-3.0-or-later

/*
lintbridge - lintbridge connects editor-style diagnostics to an external TSLint process.
It reads the project's tslint configuration, hands file content to the linter domain and turns its failures into ordered, position-annotated diagnostics.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/lintbridge/internal/logger"
)

// NewRootCmd constructs the lintbridge root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("LINTBRIDGE_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "lintbridge",
		Short:         "lintbridge - TSLint diagnostics for editors and CI",
		Long:          "lintbridge runs the TSLint domain process over TypeScript files and reports normalized diagnostics.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			asJSON, _ := cmd.Flags().GetBool("log-json")
			l := logger.NewLogger(&logger.Config{
				Level:      logger.LogLevel(level),
				Output:     cmd.ErrOrStderr(),
				JSON:       asJSON,
				TimeFormat: "15:04:05",
			})
			cmd.SetContext(logger.ContextWithLogger(cmd.Context(), l))
			return nil
		},
	}

	cmd.PersistentFlags().String("log-level", string(logger.WarnLevel), "log level (debug, info, warn, error, disabled)")
	cmd.PersistentFlags().Bool("log-json", false, "emit logs as JSON")
	cmd.PersistentFlags().String("project", "", "project root (default: nearest directory with tsconfig.json, package.json, tslint.json or .git)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of lintbridge",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "lintbridge version %s\n", version)
		},
	})

	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newProvidersCmd())

	return cmd
}
