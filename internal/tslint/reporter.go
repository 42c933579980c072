// SPDX-License-Identifier: AGPL-3.0-or-later

package tslint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/bartekus/lintbridge/internal/files"
	"github.com/bartekus/lintbridge/internal/inspection"
	"github.com/bartekus/lintbridge/internal/linter"
	"github.com/bartekus/lintbridge/internal/logger"
	"github.com/bartekus/lintbridge/internal/prefs"
	"github.com/bartekus/lintbridge/internal/projectroot"
)

const (
	// Name is the provider name shown next to diagnostics.
	Name = "TSLint"
	// Language is the language the reporter registers for.
	Language = "typescript"

	// abortThreshold is the failure count above which the linter stops reporting.
	abortThreshold = 50
)

var (
	// ErrConfigNotFound is returned when an explicitly configured config file cannot be read.
	ErrConfigNotFound = errors.New("tslint configuration file not found")
	// ErrInvalidConfig marks a config file that is not valid JSON.
	ErrInvalidConfig = errors.New("invalid JSON in config file")
	// ErrLinterInvocation marks a failure to run the linter process.
	ErrLinterInvocation = errors.New("tslint invocation failed")
	// ErrResultParse marks a linter response that could not be decoded.
	ErrResultParse = errors.New("tslint result could not be parsed")
)

// ConfigNotFoundError reports an explicitly configured config file that could not be read.
// It matches ErrConfigNotFound with errors.Is.
type ConfigNotFoundError struct {
	Path string
	Err  error
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("could not find tslint configuration file at '%s'", e.Path)
}

func (e *ConfigNotFoundError) Unwrap() []error {
	return []error{ErrConfigNotFound, e.Err}
}

// Reporter turns tslint output into editor diagnostics.
type Reporter struct {
	prefs  prefs.Source
	root   projectroot.Resolver
	files  files.Reader
	linter linter.Invoker
}

// NewReporter wires a reporter from its collaborators.
func NewReporter(source prefs.Source, root projectroot.Resolver, reader files.Reader, inv linter.Invoker) *Reporter {
	return &Reporter{
		prefs:  source,
		root:   root,
		files:  reader,
		linter: inv,
	}
}

// Register adds the reporter to r for TypeScript files.
func (r *Reporter) Register(reg *inspection.Registry) error {
	return reg.Register(Language, r)
}

// Name returns the provider name shown to users.
func (r *Reporter) Name() string { return Name }

// Scan lints content as the file at path.
//
// A nil outcome means nothing to report: tslint is disabled, the default
// config file is absent, or the linter could not produce a result. Only a
// missing explicitly configured config file is returned as an error, unless
// the preferences ask for strict error reporting.
func (r *Reporter) Scan(ctx context.Context, content, path string) (*inspection.Outcome, error) {
	p, err := r.prefs.Load()
	if err != nil {
		return nil, fmt.Errorf("loading tslint preferences: %w", err)
	}
	if !p.Enabled {
		return nil, nil
	}

	log := logger.FromContext(ctx).With("path", path)

	root, err := r.root.ProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	configPath := p.ConfigPath(root)
	config, err := r.files.ReadFile(ctx, configPath)
	if err != nil {
		if p.ExplicitConfig() {
			return nil, &ConfigNotFoundError{Path: configPath, Err: err}
		}
		log.Debug("no tslint configuration, skipping", "config", configPath)
		return nil, nil
	}

	if !json.Valid([]byte(config)) {
		return degrade(log, p, fmt.Errorf("%w: %s", ErrInvalidConfig, configPath))
	}

	text, err := r.linter.Invoke(ctx, linter.Request{
		Operation:      linter.OperationScanFile,
		Path:           path,
		Content:        content,
		Config:         config,
		RulesDirectory: p.RulesDirectoryPath(root),
	})
	if err != nil {
		return degrade(log, p, fmt.Errorf("%w: %w", ErrLinterInvocation, err))
	}

	resp, failures, err := linter.DecodeResponse(text)
	if err != nil {
		return degrade(log, p, fmt.Errorf("%w: %w", ErrResultParse, err))
	}
	if len(failures) == 0 {
		return nil, nil
	}

	diagnostics := Normalize(failures, p.MaxDisplayError)
	if len(diagnostics) == 0 {
		return nil, nil
	}
	return &inspection.Outcome{
		Aborted: resp.FailureCount > abortThreshold,
		Errors:  diagnostics,
	}, nil
}

// degrade logs err and reports a clean scan, or returns err in strict mode.
func degrade(log logger.Logger, p prefs.Preferences, err error) (*inspection.Outcome, error) {
	if p.Strict {
		return nil, err
	}
	log.Error("error during tslint linting", "err", err)
	return nil, nil
}

// Normalize orders failures by start offset, keeps at most limit of them and
// converts them to diagnostics. A negative limit keeps all of them.
// failures is sorted in place.
func Normalize(failures []*linter.Failure, limit int) []inspection.Diagnostic {
	sort.SliceStable(failures, func(i, j int) bool {
		return failures[i].Offset() < failures[j].Offset()
	})

	if limit >= 0 && len(failures) > limit {
		failures = failures[:limit]
	}

	out := make([]inspection.Diagnostic, 0, len(failures))
	for _, f := range failures {
		out = append(out, inspection.Diagnostic{
			Message: f.Failure,
			Type:    inspection.TypeError,
			Pos:     toPosition(f.StartPosition),
			EndPos:  toPosition(f.EndPosition),
			Rule:    f.RuleName,
		})
	}
	return out
}

func toPosition(p *linter.Position) inspection.Position {
	if p == nil {
		return inspection.Position{}
	}
	return inspection.Position{Line: p.Line, Ch: p.Character}
}
