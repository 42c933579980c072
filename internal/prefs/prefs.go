// SPDX-License-Identifier: AGPL-3.0-or-later

package prefs

import (
	"errors"
	"fmt"
	"path/filepath"
)

const (
	// DefaultConfigFile is looked up in the project root when no config is set.
	DefaultConfigFile = "tslint.json"
	// DefaultMaxDisplayError caps the diagnostics returned per scan.
	DefaultMaxDisplayError = 50
)

// DefaultLinter is the command of the linter domain process.
var DefaultLinter = []string{"tslint-domain"}

// Preferences is a snapshot of the tslint settings taken for a single scan.
type Preferences struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Config is the tslint config path relative to the project root.
	// Empty means DefaultConfigFile.
	Config          string   `json:"config,omitempty" yaml:"config,omitempty"`
	RulesDirectory  string   `json:"rulesDirectory,omitempty" yaml:"rulesDirectory,omitempty"`
	MaxDisplayError int      `json:"maxDisplayError" yaml:"maxDisplayError"`
	Linter          []string `json:"linter" yaml:"linter"`
	// Strict reports config parse and linter failures as errors instead of
	// treating them as a clean scan.
	Strict bool `json:"strict" yaml:"strict"`
}

// Default returns the preferences used when nothing is configured.
func Default() Preferences {
	return Preferences{
		Enabled:         true,
		MaxDisplayError: DefaultMaxDisplayError,
		Linter:          append([]string(nil), DefaultLinter...),
	}
}

// ExplicitConfig reports whether the user pointed at a config file.
func (p Preferences) ExplicitConfig() bool {
	return p.Config != ""
}

// ConfigPath resolves the tslint config file against root.
func (p Preferences) ConfigPath(root string) string {
	name := p.Config
	if name == "" {
		name = DefaultConfigFile
	}
	return resolve(root, name)
}

// RulesDirectoryPath resolves the rules directory against root, or returns
// nil when none is configured.
func (p Preferences) RulesDirectoryPath(root string) *string {
	if p.RulesDirectory == "" {
		return nil
	}
	dir := resolve(root, p.RulesDirectory)
	return &dir
}

func resolve(root, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(root, name)
}

// Validate checks the values a scan depends on.
func Validate(p Preferences) error {
	var errs []error
	if p.MaxDisplayError < 1 {
		errs = append(errs, fmt.Errorf("maxDisplayError must be at least 1, got %d", p.MaxDisplayError))
	}
	if len(p.Linter) == 0 || p.Linter[0] == "" {
		errs = append(errs, errors.New("linter command is empty"))
	}
	return errors.Join(errs...)
}

// Source hands out a fresh Preferences snapshot on every call.
type Source interface {
	Load() (Preferences, error)
}

// Static is a Source that always returns the same preferences.
type Static Preferences

func (s Static) Load() (Preferences, error) {
	return Preferences(s), nil
}
