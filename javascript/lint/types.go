package lint

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/input-output-hk/catalyst-jslint/errors"
	"github.com/input-output-hk/catalyst-jslint/javascript/ast"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	// SeverityError indicates a finding that should fail the lint run.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be addressed.
	SeverityWarning
	// SeverityInfo indicates a suggestion.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ParseSeverity converts a severity name into a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error", "":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	default:
		return SeverityError, errors.Newf(errors.CodeInvalidInput, "unknown severity %q", name)
	}
}

// SourceLocation represents a range in a source file.
type SourceLocation struct {
	File        string `json:"file"`
	StartLine   int    `json:"startLine"`   // 1-based
	StartColumn int    `json:"startColumn"` // 0-based
	EndLine     int    `json:"endLine"`     // 1-based
	EndColumn   int    `json:"endColumn"`   // 0-based
}

// NewSourceLocation builds a location for span inside file.
func NewSourceLocation(file string, span ast.Span) *SourceLocation {
	return &SourceLocation{
		File:        file,
		StartLine:   span.Start.Line,
		StartColumn: span.Start.Column,
		EndLine:     span.End.Line,
		EndColumn:   span.End.Column,
	}
}

// Diagnostic represents a single finding reported by a rule.
type Diagnostic struct {
	// Code is the identifier of the rule that reported this diagnostic.
	Code string `json:"code"`
	// Severity indicates the importance level of the diagnostic.
	Severity Severity `json:"severity"`
	// Message is a human-readable description of the finding.
	Message string `json:"message"`
	// Span is the source range of the offending node.
	Span ast.Span `json:"-"`
	// Location specifies where in the source file the finding occurs.
	Location *SourceLocation `json:"location,omitempty"`
}

// String returns a formatted string representation of the diagnostic.
func (d Diagnostic) String() string {
	if d.Location != nil {
		return fmt.Sprintf("%s:%d:%d [%s] %s",
			d.Location.File,
			d.Location.StartLine,
			d.Location.StartColumn,
			d.Code,
			d.Message)
	}
	return fmt.Sprintf("[%s] %s", d.Code, d.Message)
}
