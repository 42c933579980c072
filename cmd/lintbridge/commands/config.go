// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/lintbridge/cmd/lintbridge/internal/clierr"
	"github.com/bartekus/lintbridge/internal/prefs"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect lintbridge preferences",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective tslint preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if format != formatYAML && format != formatJSON {
				return clierr.Newf(clierr.ExitConfig, "unknown format %q", format)
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			if format == formatYAML {
				source := a.loader.ConfigFileUsed()
				if source == "" {
					source = "defaults"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", source)
			}
			return encode(cmd.OutOrStdout(), format, map[string]prefs.Preferences{prefs.Namespace: a.prefs})
		},
	}
	show.Flags().StringP("format", "f", formatYAML, "output format (yaml, json)")
	addPrefFlags(show)

	cmd.AddCommand(show)
	return cmd
}
