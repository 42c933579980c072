// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the registered diagnostics providers by language",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			for _, lang := range a.registry.Languages() {
				for _, p := range a.registry.Providers(lang) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", lang, p.Name())
				}
			}
			return nil
		},
	}
}
