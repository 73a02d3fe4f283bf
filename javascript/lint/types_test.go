package lint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-jslint/errors"
	"github.com/input-output-hk/catalyst-jslint/javascript/ast"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{SeverityInfo, "info"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected Severity
		wantErr  bool
	}{
		{"error", SeverityError, false},
		{"", SeverityError, false},
		{"WARNING", SeverityWarning, false},
		{"warn", SeverityWarning, false},
		{" info ", SeverityInfo, false},
		{"fatal", SeverityError, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDiagnosticString(t *testing.T) {
	t.Run("with location", func(t *testing.T) {
		d := Diagnostic{
			Code:     "no-prototype-builtins",
			Message:  "bad call",
			Location: &SourceLocation{File: "a.js", StartLine: 3, StartColumn: 4},
		}
		assert.Equal(t, "a.js:3:4 [no-prototype-builtins] bad call", d.String())
	})

	t.Run("without location", func(t *testing.T) {
		d := Diagnostic{Code: "x", Message: "bad call"}
		assert.Equal(t, "[x] bad call", d.String())
	})
}

func TestDiagnosticJSON(t *testing.T) {
	span := ast.Span{
		Start: ast.Pos{Offset: 0, Line: 1, Column: 0},
		End:   ast.Pos{Offset: 24, Line: 1, Column: 24},
	}
	d := Diagnostic{
		Code:     "no-prototype-builtins",
		Severity: SeverityWarning,
		Message:  "msg",
		Span:     span,
		Location: NewSourceLocation("a.js", span),
	}

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"code": "no-prototype-builtins",
		"severity": "warning",
		"message": "msg",
		"location": {"file": "a.js", "startLine": 1, "startColumn": 0, "endLine": 1, "endColumn": 24}
	}`, string(data))
}
