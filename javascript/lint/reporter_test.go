package lint

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDiagnostics() []Diagnostic {
	return []Diagnostic{
		{
			Code:     "no-prototype-builtins",
			Severity: SeverityError,
			Message:  "Access to Object.prototype.hasOwnProperty is not allowed from target object",
			Location: &SourceLocation{File: "b.js", StartLine: 2, StartColumn: 0, EndLine: 2, EndColumn: 24},
		},
		{
			Code:     "no-eval",
			Severity: SeverityWarning,
			Message:  "Call to eval is forbidden",
			Location: &SourceLocation{File: "a.js", StartLine: 5, StartColumn: 2, EndLine: 5, EndColumn: 9},
		},
		{
			Code:     "no-prototype-builtins",
			Severity: SeverityError,
			Message:  "Access to Object.prototype.isPrototypeOf is not allowed from target object",
			Location: &SourceLocation{File: "a.js", StartLine: 1, StartColumn: 0, EndLine: 1, EndColumn: 20},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"text", FormatText, false},
		{"", FormatText, false},
		{"JSON", FormatJSON, false},
		{"sarif", FormatSARIF, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReporterText(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatText)
	require.NoError(t, r.Report(sampleDiagnostics()))

	expected := "a.js:1:0 error [no-prototype-builtins] Access to Object.prototype.isPrototypeOf is not allowed from target object\n" +
		"a.js:5:2 warning [no-eval] Call to eval is forbidden\n" +
		"b.js:2:0 error [no-prototype-builtins] Access to Object.prototype.hasOwnProperty is not allowed from target object\n" +
		"Found 3 problems\n"
	assert.Equal(t, expected, buf.String())
}

func TestReporterTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText).Report(nil))
	assert.Empty(t, buf.String())
}

func TestReporterTextSingular(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText).Report(sampleDiagnostics()[:1]))
	assert.Contains(t, buf.String(), "Found 1 problem\n")
}

func TestReporterTextColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatText, WithColor(true))
	require.NoError(t, r.Report(sampleDiagnostics()[:1]))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestReporterDoesNotReorderInput(t *testing.T) {
	diags := sampleDiagnostics()
	require.NoError(t, NewReporter(&bytes.Buffer{}, FormatText).Report(diags))
	assert.Equal(t, "b.js", diags[0].Location.File)
}

func TestReporterJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatJSON).Report(sampleDiagnostics()))

	var out struct {
		Diagnostics []struct {
			Code     string `json:"code"`
			Severity string `json:"severity"`
			Location struct {
				File      string `json:"file"`
				StartLine int    `json:"startLine"`
			} `json:"location"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Diagnostics, 3)
	assert.Equal(t, "a.js", out.Diagnostics[0].Location.File)
	assert.Equal(t, 1, out.Diagnostics[0].Location.StartLine)
	assert.Equal(t, "warning", out.Diagnostics[1].Severity)
}

func TestReporterJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatJSON).Report(nil))
	assert.JSONEq(t, `{"diagnostics": []}`, buf.String())
}

func TestReporterSARIF(t *testing.T) {
	rules := []Rule{stubRule("no-prototype-builtins", TagRecommended)}
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatSARIF, WithRuleDescriptions(rules))
	require.NoError(t, r.Report(sampleDiagnostics()))

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "2.1.0", out["version"])

	run := out["runs"].([]interface{})[0].(map[string]interface{})
	driver := run["tool"].(map[string]interface{})["driver"].(map[string]interface{})
	assert.Equal(t, "jslint", driver["name"])

	sarifRules := driver["rules"].([]interface{})
	require.Len(t, sarifRules, 2)
	first := sarifRules[0].(map[string]interface{})
	assert.Equal(t, "no-prototype-builtins", first["id"])
	assert.Equal(t, "no-prototype-builtins description", first["help"].(map[string]interface{})["text"])

	results := run["results"].([]interface{})
	require.Len(t, results, 3)
	result := results[1].(map[string]interface{})
	assert.Equal(t, "no-eval", result["ruleId"])
	assert.Equal(t, "warning", result["level"])

	region := result["locations"].([]interface{})[0].(map[string]interface{})["physicalLocation"].(map[string]interface{})["region"].(map[string]interface{})
	assert.Equal(t, float64(5), region["startLine"])
	assert.Equal(t, float64(3), region["startColumn"])
}

func TestReporterUnsupportedFormat(t *testing.T) {
	err := NewReporter(&bytes.Buffer{}, Format(42)).Report(nil)
	assert.Error(t, err)
}
