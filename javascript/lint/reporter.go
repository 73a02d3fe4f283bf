package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Format represents the output format for reporting diagnostics.
type Format int

const (
	// FormatText outputs diagnostics in a human-readable text format.
	FormatText Format = iota
	// FormatJSON outputs diagnostics in JSON format.
	FormatJSON
	// FormatSARIF outputs diagnostics in SARIF (Static Analysis Results Interchange Format).
	FormatSARIF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatSARIF:
		return "sarif"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "sarif":
		return FormatSARIF, nil
	default:
		return FormatText, fmt.Errorf("unsupported format: %s", name)
	}
}

// Reporter handles formatting and outputting diagnostics.
type Reporter struct {
	writer io.Writer
	format Format
	color  bool
	rules  []Rule
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithColor enables ANSI colors in text output.
func WithColor(enabled bool) ReporterOption {
	return func(r *Reporter) {
		r.color = enabled
	}
}

// WithRuleDescriptions supplies the rules whose descriptions are used as
// help text in SARIF output.
func WithRuleDescriptions(rules []Rule) ReporterOption {
	return func(r *Reporter) {
		r.rules = rules
	}
}

// NewReporter creates a new Reporter with the specified output writer and format.
func NewReporter(writer io.Writer, format Format, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		writer: writer,
		format: format,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report writes the diagnostics to the output writer in the specified format.
// Diagnostics are sorted by location before reporting.
func (r *Reporter) Report(diagnostics []Diagnostic) error {
	sorted := make([]Diagnostic, len(diagnostics))
	copy(sorted, diagnostics)
	sort.SliceStable(sorted, func(i, j int) bool {
		return compareByLocation(sorted[i], sorted[j])
	})

	switch r.format {
	case FormatText:
		return r.reportText(sorted)
	case FormatJSON:
		return r.reportJSON(sorted)
	case FormatSARIF:
		return r.reportSARIF(sorted)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// reportText outputs diagnostics in human-readable text format followed by a
// summary line. Nothing is written when there are no diagnostics.
func (r *Reporter) reportText(diagnostics []Diagnostic) error {
	if len(diagnostics) == 0 {
		return nil
	}

	codeColor := color.New(color.FgCyan)
	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow)
	for _, c := range []*color.Color{codeColor, errColor, warnColor} {
		if r.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, d := range diagnostics {
		sev := warnColor
		if d.Severity == SeverityError {
			sev = errColor
		}
		var where string
		if d.Location != nil {
			where = fmt.Sprintf("%s:%d:%d ", d.Location.File, d.Location.StartLine, d.Location.StartColumn)
		}
		line := fmt.Sprintf("%s%s [%s] %s",
			where,
			sev.Sprint(d.Severity.String()),
			codeColor.Sprint(d.Code),
			d.Message)
		if _, err := fmt.Fprintln(r.writer, line); err != nil {
			return fmt.Errorf("failed to write text output: %w", err)
		}
	}

	noun := "problems"
	if len(diagnostics) == 1 {
		noun = "problem"
	}
	if _, err := fmt.Fprintf(r.writer, "Found %d %s\n", len(diagnostics), noun); err != nil {
		return fmt.Errorf("failed to write text output: %w", err)
	}
	return nil
}

// reportJSON outputs diagnostics in JSON format.
func (r *Reporter) reportJSON(diagnostics []Diagnostic) error {
	if diagnostics == nil {
		diagnostics = []Diagnostic{}
	}
	output := struct {
		Diagnostics []Diagnostic `json:"diagnostics"`
	}{
		Diagnostics: diagnostics,
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// sarifLevel maps a severity to a SARIF result level.
func sarifLevel(s Severity) string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

// reportSARIF outputs diagnostics in SARIF (Static Analysis Results Interchange Format).
func (r *Reporter) reportSARIF(diagnostics []Diagnostic) error {
	descriptions := make(map[string]string, len(r.rules))
	for _, rule := range r.rules {
		descriptions[rule.Code()] = rule.Description()
	}

	// Rules section lists every reported code once, in first-seen order.
	rules := []map[string]interface{}{}
	seen := make(map[string]bool)
	for _, d := range diagnostics {
		if seen[d.Code] {
			continue
		}
		seen[d.Code] = true
		help := descriptions[d.Code]
		if help == "" {
			help = d.Message
		}
		rules = append(rules, map[string]interface{}{
			"id":   d.Code,
			"name": d.Code,
			"help": map[string]interface{}{
				"text": help,
			},
		})
	}

	results := []map[string]interface{}{}
	for _, d := range diagnostics {
		results = append(results, map[string]interface{}{
			"ruleId":  d.Code,
			"level":   sarifLevel(d.Severity),
			"message": map[string]interface{}{"text": d.Message},
			"locations": []map[string]interface{}{
				{
					"physicalLocation": map[string]interface{}{
						"artifactLocation": map[string]interface{}{
							"uri": getFileURI(d.Location),
						},
						"region": map[string]interface{}{
							"startLine":   getStartLine(d.Location),
							"startColumn": getStartColumn(d.Location),
							"endLine":     getEndLine(d.Location),
							"endColumn":   getEndColumn(d.Location),
						},
					},
				},
			},
		})
	}

	sarif := map[string]interface{}{
		"version": "2.1.0",
		"$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		"runs": []map[string]interface{}{
			{
				"tool": map[string]interface{}{
					"driver": map[string]interface{}{
						"name":           "jslint",
						"informationUri": "https://github.com/input-output-hk/catalyst-jslint",
						"rules":          rules,
					},
				},
				"results": results,
			},
		},
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(sarif); err != nil {
		return fmt.Errorf("failed to encode SARIF output: %w", err)
	}
	return nil
}

// Helper functions for SARIF formatting. SARIF columns are 1-based while
// SourceLocation columns are 0-based.

func getFileURI(loc *SourceLocation) string {
	if loc == nil {
		return ""
	}
	return fmt.Sprintf("file://%s", strings.TrimPrefix(loc.File, "/"))
}

func getStartLine(loc *SourceLocation) int {
	if loc == nil {
		return 0
	}
	return loc.StartLine
}

func getStartColumn(loc *SourceLocation) int {
	if loc == nil {
		return 0
	}
	return loc.StartColumn + 1
}

func getEndLine(loc *SourceLocation) int {
	if loc == nil {
		return 0
	}
	return loc.EndLine
}

func getEndColumn(loc *SourceLocation) int {
	if loc == nil {
		return 0
	}
	return loc.EndColumn + 1
}

// compareByLocation compares two diagnostics by their location for sorting.
func compareByLocation(a, b Diagnostic) bool {
	if a.Location == nil && b.Location == nil {
		return a.Code < b.Code
	}
	if a.Location == nil {
		return true
	}
	if b.Location == nil {
		return false
	}

	if a.Location.File != b.Location.File {
		return a.Location.File < b.Location.File
	}
	if a.Location.StartLine != b.Location.StartLine {
		return a.Location.StartLine < b.Location.StartLine
	}
	if a.Location.StartColumn != b.Location.StartColumn {
		return a.Location.StartColumn < b.Location.StartColumn
	}
	return a.Code < b.Code
}
