// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bartekus/lintbridge/cmd/lintbridge/internal/clierr"
	"github.com/bartekus/lintbridge/internal/files"
	"github.com/bartekus/lintbridge/internal/inspection"
	"github.com/bartekus/lintbridge/internal/linter"
	"github.com/bartekus/lintbridge/internal/prefs"
	"github.com/bartekus/lintbridge/internal/projectroot"
	"github.com/bartekus/lintbridge/internal/tslint"
)

// app holds everything a command needs once the project is known.
type app struct {
	root     string
	loader   *prefs.Loader
	prefs    prefs.Preferences
	reader   files.Reader
	registry *inspection.Registry
}

// prefFlags maps command flags onto preference keys.
var prefFlags = map[string]string{
	"config":            "config",
	"rules-directory":   "rulesDirectory",
	"max-display-error": "maxDisplayError",
	"strict":            "strict",
	"linter":            "linter",
}

func addPrefFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "tslint config file relative to the project root (default tslint.json)")
	cmd.Flags().String("rules-directory", "", "directory with custom tslint rules, relative to the project root")
	cmd.Flags().Int("max-display-error", prefs.DefaultMaxDisplayError, "maximum diagnostics reported per file")
	cmd.Flags().Bool("strict", false, "report config and linter failures instead of ignoring them")
	cmd.Flags().StringSlice("linter", nil, "linter domain command and arguments")
}

// newApp resolves the project root, applies flag overrides and registers the
// TSLint reporter.
func newApp(cmd *cobra.Command) (*app, error) {
	root, _ := cmd.Flags().GetString("project")
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, clierr.Wrap(clierr.ExitConfig, "resolving project root", err)
		}
		root = abs
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, clierr.Wrap(clierr.ExitConfig, "resolving working directory", err)
		}
		if root, err = projectroot.Find(wd); err != nil {
			return nil, clierr.Wrap(clierr.ExitConfig, "resolving project root", err)
		}
	}

	loader := prefs.NewLoader(root)
	for flag, key := range prefFlags {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		switch key {
		case "maxDisplayError":
			v, _ := cmd.Flags().GetInt(flag)
			loader.Set(key, v)
		case "strict":
			v, _ := cmd.Flags().GetBool(flag)
			loader.Set(key, v)
		case "linter":
			v, _ := cmd.Flags().GetStringSlice(flag)
			loader.Set(key, v)
		default:
			loader.Set(key, f.Value.String())
		}
	}

	p, err := loader.Load()
	if err != nil {
		return nil, clierr.Wrap(clierr.ExitConfig, "loading preferences", err)
	}

	reader := files.OSReader{}
	registry := inspection.NewRegistry()
	reporter := tslint.NewReporter(
		loader,
		projectroot.Static(root),
		reader,
		linter.NewProcessInvoker(p.Linter, root),
	)
	if err := reporter.Register(registry); err != nil {
		return nil, err
	}

	return &app{
		root:     root,
		loader:   loader,
		prefs:    p,
		reader:   reader,
		registry: registry,
	}, nil
}
