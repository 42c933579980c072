// SPDX-License-Identifier: AGPL-3.0-or-later

package runner

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/bartekus/lintbridge/internal/files"
	"github.com/bartekus/lintbridge/internal/inspection"
	"github.com/bartekus/lintbridge/internal/logger"
)

// DefaultConcurrency bounds the scans running at once.
const DefaultConcurrency = 4

// Deps contains the collaborators a batch scan needs.
type Deps struct {
	// Root is the directory relative paths are resolved against.
	Root     string
	Registry *inspection.Registry
	Reader   files.Reader
}

// Runner scans many files, each independently of the others.
type Runner struct {
	deps        *Deps
	concurrency int
}

// NewRunner creates a runner. A concurrency below 1 uses DefaultConcurrency.
func NewRunner(deps *Deps, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Runner{deps: deps, concurrency: concurrency}
}

// ScanAll runs every provider registered for each file's language.
// A failing file does not stop the others; results keep the order of paths,
// and files in a language without providers are skipped. The returned error
// lists the files that failed.
func (r *Runner) ScanAll(ctx context.Context, paths []string) ([]FileResult, error) {
	type job struct {
		path     string
		provider inspection.Provider
	}

	var jobs []job
	for _, path := range paths {
		lang := r.deps.Registry.LanguageFor(path)
		for _, p := range r.deps.Registry.Providers(lang) {
			jobs = append(jobs, job{path: path, provider: p})
		}
	}

	results := make([]FileResult, len(jobs))

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = FileResult{Path: j.path, Provider: j.provider.Name(), Err: err, Error: err.Error()}
				return nil
			}
			results[i] = r.scanOne(ctx, j.path, j.provider)
			return nil
		})
	}
	// Failures are kept per file in results; the group only bounds concurrency.
	_ = g.Wait()

	var failed []string
	for _, res := range results {
		if res.Err != nil {
			failed = append(failed, res.Path)
		}
	}
	if len(failed) > 0 {
		return results, fmt.Errorf("scan failed: %v", failed)
	}
	return results, nil
}

func (r *Runner) scanOne(ctx context.Context, path string, p inspection.Provider) FileResult {
	res := FileResult{Path: path, Provider: p.Name()}

	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(r.deps.Root, path)
	}

	logger.FromContext(ctx).Debug("scanning", "path", path, "provider", p.Name())

	content, err := r.deps.Reader.ReadFile(ctx, full)
	if err == nil {
		res.Outcome, err = p.Scan(ctx, content, full)
	}
	if err != nil {
		res.Err = err
		res.Error = err.Error()
	}
	return res
}
