package lint

import (
	"github.com/input-output-hk/catalyst-jslint/javascript/ast"
)

// Context is the reporting sink handed to a rule for one pass over one
// program. It records diagnostics in emission order and never deduplicates.
//
// A Context has a single writer: the rule whose LintProgram is running.
// It is not safe for concurrent use.
type Context struct {
	// File is the name of the file being linted, used in locations.
	File string

	// Program is the syntax tree being linted.
	Program *ast.Program

	severity    Severity
	diagnostics []Diagnostic
}

// NewContext creates a new Context for program parsed from file.
func NewContext(file string, program *ast.Program) *Context {
	return &Context{
		File:     file,
		Program:  program,
		severity: SeverityError,
	}
}

// Severity returns the severity assigned to new diagnostics.
func (ctx *Context) Severity() Severity {
	return ctx.severity
}

// SetSeverity changes the severity assigned to diagnostics added afterwards.
func (ctx *Context) SetSeverity(s Severity) {
	ctx.severity = s
}

// AddDiagnostic records a finding anchored at span.
func (ctx *Context) AddDiagnostic(span ast.Span, code, message string) {
	ctx.diagnostics = append(ctx.diagnostics, Diagnostic{
		Code:     code,
		Severity: ctx.severity,
		Message:  message,
		Span:     span,
		Location: NewSourceLocation(ctx.File, span),
	})
}

// Diagnostics returns a copy of the recorded diagnostics in emission order.
func (ctx *Context) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(ctx.diagnostics))
	copy(out, ctx.diagnostics)
	return out
}

// Len returns the number of recorded diagnostics.
func (ctx *Context) Len() int {
	return len(ctx.diagnostics)
}

// Source returns the program text, or nil when there is no program.
func (ctx *Context) Source() []byte {
	if ctx.Program == nil {
		return nil
	}
	return ctx.Program.Source
}
