// SPDX-License-Identifier: AGPL-3.0-or-later

package scanner

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// Scanner lists the files git tracks under a project root.
type Scanner struct {
	root string

	mu      sync.Mutex
	tracked []string
}

// New creates a Scanner for the given project root.
func New(root string) *Scanner {
	return &Scanner{root: root}
}

// TrackedFiles returns the paths git tracks, relative to the root.
// The list is cached for the lifetime of the Scanner.
func (s *Scanner) TrackedFiles(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tracked != nil {
		return s.tracked, nil
	}

	// -z keeps paths with spaces or quotes intact.
	cmd := exec.CommandContext(ctx, "git", "ls-files", "-z", "--cached", "--others", "--exclude-standard")
	cmd.Dir = s.root
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git ls-files failed: %w", err)
	}

	trimmed := strings.TrimSuffix(string(out), "\x00")
	if trimmed == "" {
		s.tracked = []string{}
		return s.tracked, nil
	}

	s.tracked = strings.Split(trimmed, "\x00")
	return s.tracked, nil
}

// TrackedFilesFiltered returns tracked files matching opts.
func (s *Scanner) TrackedFilesFiltered(ctx context.Context, opts FilterOptions) ([]string, error) {
	all, err := s.TrackedFiles(ctx)
	if err != nil {
		return nil, err
	}
	return FilterFiles(all, opts), nil
}

// TrackedTypeScriptFiles returns .ts and .tsx sources, skipping declaration
// files and the default excluded directories.
func (s *Scanner) TrackedTypeScriptFiles(ctx context.Context) ([]string, error) {
	return s.TrackedFilesFiltered(ctx, FilterOptions{
		ExcludeDirs:       DefaultExcludeDirs(),
		IncludeExtensions: []string{".ts", ".tsx"},
		ExcludeSuffixes:   []string{".d.ts"},
	})
}
