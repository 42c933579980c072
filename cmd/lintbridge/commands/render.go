// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/lintbridge/internal/runner"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validFormat(f string) bool {
	return f == formatText || f == formatJSON || f == formatYAML
}

// report is the document written for json and yaml output.
type report struct {
	Results []runner.FileResult `json:"results" yaml:"results"`
	Summary runner.Summary      `json:"summary" yaml:"summary"`
}

func render(w io.Writer, format string, results []runner.FileResult, summary runner.Summary) error {
	switch format {
	case formatJSON, formatYAML:
		return encode(w, format, report{Results: nonNil(results), Summary: summary})
	default:
		return renderText(w, results, summary)
	}
}

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderText prints one line per diagnostic with 1-based line and column.
func renderText(w io.Writer, results []runner.FileResult, summary runner.Summary) error {
	for _, res := range results {
		if res.Outcome == nil {
			continue
		}
		for _, d := range res.Outcome.Errors {
			line := fmt.Sprintf("%s:%d:%d: %s: %s", res.Path, d.Pos.Line+1, d.Pos.Ch+1, d.Type, d.Message)
			if d.Rule != "" {
				line += " (" + d.Rule + ")"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if res.Outcome.Aborted {
			if _, err := fmt.Fprintf(w, "%s: too many failures, tslint stopped early\n", res.Path); err != nil {
				return err
			}
		}
	}

	scanned := summary.Files - summary.Failed
	var err error
	switch {
	case summary.Diagnostics == 0:
		_, err = fmt.Fprintf(w, "No problems found in %s.\n", plural(scanned, "file"))
	default:
		_, err = fmt.Fprintf(w, "%s in %s.\n", plural(summary.Diagnostics, "problem"), plural(scanned, "file"))
	}
	if err != nil || summary.Failed == 0 {
		return err
	}
	_, err = fmt.Fprintf(w, "%s could not be scanned.\n", plural(summary.Failed, "file"))
	return err
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func nonNil(results []runner.FileResult) []runner.FileResult {
	if results == nil {
		return []runner.FileResult{}
	}
	return results
}
