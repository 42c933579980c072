// SPDX-License-Identifier: AGPL-3.0-or-later

package linter

import (
	"encoding/json"
	"fmt"
)

// OperationScanFile is the only operation the linter domain exposes.
const OperationScanFile = "scanFile"

// Request is written to the linter domain process as a single JSON document.
type Request struct {
	Operation      string  `json:"operation"`
	Path           string  `json:"path"`
	Content        string  `json:"content"`
	Config         string  `json:"config"`
	RulesDirectory *string `json:"rulesDirectory"`
}

// Response is the envelope returned by the linter domain.
// Output holds the JSON encoded failure list as a string.
type Response struct {
	Output       string  `json:"output"`
	FailureCount float64 `json:"failureCount"`
}

// Position is a location reported by TSLint. Line and Character are zero-based;
// Position is the absolute offset in the file.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
	Position  int `json:"position"`
}

// Failure is a single rule violation.
type Failure struct {
	Failure       string    `json:"failure"`
	Name          string    `json:"name,omitempty"`
	RuleName      string    `json:"ruleName,omitempty"`
	StartPosition *Position `json:"startPosition,omitempty"`
	EndPosition   *Position `json:"endPosition,omitempty"`
}

// Offset returns the absolute start offset, 0 when the failure has no start position.
func (f *Failure) Offset() int {
	if f == nil || f.StartPosition == nil {
		return 0
	}
	return f.StartPosition.Position
}

// DecodeResponse parses the envelope and its nested output.
// Null entries in the failure list are dropped.
func DecodeResponse(text string) (Response, []*Failure, error) {
	var resp Response
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return Response{}, nil, fmt.Errorf("decoding linter response: %w", err)
	}

	if resp.Output == "" {
		return resp, nil, nil
	}

	var raw []*Failure
	if err := json.Unmarshal([]byte(resp.Output), &raw); err != nil {
		return resp, nil, fmt.Errorf("decoding linter output: %w", err)
	}

	failures := raw[:0]
	for _, f := range raw {
		if f != nil {
			failures = append(failures, f)
		}
	}
	return resp, failures, nil
}
