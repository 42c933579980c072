// SPDX-License-Identifier: AGPL-3.0-or-later

package inspection

// Type is the severity of a diagnostic.
type Type string

const (
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeMeta    Type = "meta"
)

// Position is a zero-based line/column pair.
type Position struct {
	Line int `json:"line" yaml:"line"`
	Ch   int `json:"ch" yaml:"ch"`
}

// Diagnostic is a single finding ready to be shown next to the source.
type Diagnostic struct {
	Message string   `json:"message" yaml:"message"`
	Type    Type     `json:"type" yaml:"type"`
	Pos     Position `json:"pos" yaml:"pos"`
	EndPos  Position `json:"endPos" yaml:"endPos"`
	Rule    string   `json:"rule,omitempty" yaml:"rule,omitempty"`
}

// Outcome is the result of one scan. A nil *Outcome means there is nothing to report.
type Outcome struct {
	// Aborted is set when the linter stopped reporting before the end of the file.
	Aborted bool         `json:"aborted" yaml:"aborted"`
	Errors  []Diagnostic `json:"errors" yaml:"errors"`
}
