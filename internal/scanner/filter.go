// SPDX-License-Identifier: AGPL-3.0-or-later

package scanner

import (
	"sort"
	"strings"
)

// FilterOptions defines criteria for including or excluding files.
type FilterOptions struct {
	// ExcludeDirs is a list of directory names to exclude.
	// Matching is segment-aware: "dist" excludes "dist/a.ts" and "web/dist/b.ts",
	// but not "distribution/c.ts".
	ExcludeDirs []string

	// IncludeExtensions lists the extensions to keep (e.g. ".ts").
	// Empty keeps every extension.
	IncludeExtensions []string

	// ExcludeSuffixes drops paths ending in any of these, checked after
	// IncludeExtensions (e.g. ".d.ts").
	ExcludeSuffixes []string
}

// DefaultExcludeDirs returns the directories never linted.
func DefaultExcludeDirs() []string {
	return []string{
		"node_modules",
		".git",
		"dist",
		"build",
		"out",
		"coverage",
		"vendor",
		".idea",
		".lintbridge",
	}
}

// FilterFiles applies opts to paths and returns the survivors sorted.
func FilterFiles(paths []string, opts FilterOptions) []string {
	if len(paths) == 0 {
		return nil
	}

	var filtered []string
	for _, path := range paths {
		if shouldExclude(path, opts.ExcludeDirs) {
			continue
		}
		if !hasAnySuffix(path, opts.IncludeExtensions, true) {
			continue
		}
		if hasAnySuffix(path, opts.ExcludeSuffixes, false) {
			continue
		}
		filtered = append(filtered, path)
	}

	sort.Strings(filtered)
	return filtered
}

// shouldExclude returns true if any directory segment of path is excluded.
func shouldExclude(path string, excludes []string) bool {
	if len(excludes) == 0 {
		return false
	}
	parts := strings.Split(path, "/")
	for _, part := range parts[:len(parts)-1] {
		for _, exclude := range excludes {
			if part == exclude {
				return true
			}
		}
	}
	return false
}

// hasAnySuffix reports whether path ends in one of suffixes. An empty list
// yields whenEmpty.
func hasAnySuffix(path string, suffixes []string, whenEmpty bool) bool {
	if len(suffixes) == 0 {
		return whenEmpty
	}
	for _, suffix := range suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
