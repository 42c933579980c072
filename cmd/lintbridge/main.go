// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/bartekus/lintbridge/cmd/lintbridge/commands"
	"github.com/bartekus/lintbridge/cmd/lintbridge/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		if !clierr.Silent(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(clierr.ExitCodeOf(err))
	}
}
