// SPDX-License-Identifier: AGPL-3.0-or-later

package runner

import "github.com/bartekus/lintbridge/internal/inspection"

// FileResult is the outcome of one provider on one file.
type FileResult struct {
	// Path is the path as requested, usually relative to the project root.
	Path     string              `json:"path" yaml:"path"`
	Provider string              `json:"provider,omitempty" yaml:"provider,omitempty"`
	Outcome  *inspection.Outcome `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	Err      error               `json:"-" yaml:"-"`
	// Error mirrors Err for serialized reports.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary aggregates a batch of results.
type Summary struct {
	Files       int `json:"files" yaml:"files"`
	Diagnostics int `json:"diagnostics" yaml:"diagnostics"`
	Aborted     int `json:"aborted" yaml:"aborted"`
	// Failed counts files with at least one failed scan.
	Failed int `json:"failed" yaml:"failed"`
}

// Summarize counts diagnostics and failures across results.
func Summarize(results []FileResult) Summary {
	seen := make(map[string]bool)
	failed := make(map[string]bool)
	var s Summary
	for _, res := range results {
		if !seen[res.Path] {
			seen[res.Path] = true
			s.Files++
		}
		if res.Err != nil && !failed[res.Path] {
			failed[res.Path] = true
			s.Failed++
		}
		if res.Outcome != nil {
			s.Diagnostics += len(res.Outcome.Errors)
			if res.Outcome.Aborted {
				s.Aborted++
			}
		}
	}
	return s
}
