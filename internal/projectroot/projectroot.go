// SPDX-License-Identifier: AGPL-3.0-or-later

package projectroot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no marker is found up to the filesystem root.
var ErrNotFound = errors.New("project root not found")

// Markers identify a project root, checked in order in each directory.
var Markers = []string{"tsconfig.json", "package.json", "tslint.json", ".git"}

// Resolver returns the root directory of the project being linted.
type Resolver interface {
	ProjectRoot() (string, error)
}

// Static is a Resolver with a fixed root.
type Static string

func (s Static) ProjectRoot() (string, error) {
	return string(s), nil
}

// Find walks up from dir to the first directory holding one of Markers.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for cur := abs; ; {
		for _, marker := range Markers {
			if _, err := os.Stat(filepath.Join(cur, marker)); err == nil {
				return cur, nil
			}
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", fmt.Errorf("%w from %s", ErrNotFound, abs)
		}
		cur = parent
	}
}
