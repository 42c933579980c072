// SPDX-License-Identifier: AGPL-3.0-or-later

package prefs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Namespace groups the tslint keys in the preferences file.
const Namespace = "tslint"

// Loader reads preferences for a project root.
// Priority: overrides → environment (LINTBRIDGE_TSLINT_*) → .lintbridge.yaml → defaults.
type Loader struct {
	rootDir   string
	overrides map[string]any
}

// NewLoader creates a loader for the given project root.
func NewLoader(rootDir string) *Loader {
	return &Loader{
		rootDir:   rootDir,
		overrides: make(map[string]any),
	}
}

// Set forces key (without namespace, e.g. "enabled") to value regardless of
// file or environment.
func (l *Loader) Set(key string, value any) {
	l.overrides[key] = value
}

// Load reads the preferences file and environment every time it is called.
func (l *Loader) Load() (Preferences, error) {
	v := viper.New()

	v.SetConfigName(".lintbridge")
	v.SetConfigType("yaml")
	v.AddConfigPath(l.rootDir)

	v.SetEnvPrefix("LINTBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{"enabled", "config", "rulesdirectory", "maxdisplayerror", "linter", "strict"} {
		_ = v.BindEnv(Namespace + "." + key)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Preferences{}, fmt.Errorf("failed to read preferences file: %w", err)
		}
	}

	for key, value := range l.overrides {
		v.Set(Namespace+"."+key, value)
	}

	p := Preferences{
		Enabled:         v.GetBool(Namespace + ".enabled"),
		Config:          v.GetString(Namespace + ".config"),
		RulesDirectory:  v.GetString(Namespace + ".rulesDirectory"),
		MaxDisplayError: v.GetInt(Namespace + ".maxDisplayError"),
		Linter:          v.GetStringSlice(Namespace + ".linter"),
		Strict:          v.GetBool(Namespace + ".strict"),
	}

	if err := Validate(p); err != nil {
		return Preferences{}, fmt.Errorf("invalid preferences: %w", err)
	}
	return p, nil
}

// ConfigFileUsed returns the preferences file Load reads, or "" when there is none.
func (l *Loader) ConfigFileUsed() string {
	v := viper.New()
	v.SetConfigName(".lintbridge")
	v.SetConfigType("yaml")
	v.AddConfigPath(l.rootDir)
	if err := v.ReadInConfig(); err != nil {
		return ""
	}
	return v.ConfigFileUsed()
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault(Namespace+".enabled", defaults.Enabled)
	v.SetDefault(Namespace+".config", defaults.Config)
	v.SetDefault(Namespace+".rulesDirectory", defaults.RulesDirectory)
	v.SetDefault(Namespace+".maxDisplayError", defaults.MaxDisplayError)
	v.SetDefault(Namespace+".linter", defaults.Linter)
	v.SetDefault(Namespace+".strict", defaults.Strict)
}
