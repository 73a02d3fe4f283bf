// Package lint provides the rule contract, reporting context, registry and
// runner used to lint JavaScript programs.
package lint

import "github.com/input-output-hk/catalyst-jslint/javascript/ast"

// Rule defines the interface that all linting rules must implement.
// Rules are stateless: every LintProgram call is independent and yields the
// same diagnostics for the same tree, so one instance may be shared by
// concurrent passes over different programs.
type Rule interface {
	// Code returns the stable identifier of the rule, e.g. "no-prototype-builtins".
	Code() string

	// Tags returns the inclusion groups the rule belongs to, e.g. "recommended".
	Tags() []string

	// Description returns a human-readable description of what the rule checks.
	Description() string

	// LintProgram examines program in a single synchronous pass and reports
	// findings through ctx.AddDiagnostic. The caller must not let any other
	// writer use ctx until LintProgram returns.
	LintProgram(ctx *Context, program *ast.Program)
}

// HasTag reports whether rule carries tag.
func HasTag(rule Rule, tag string) bool {
	for _, t := range rule.Tags() {
		if t == tag {
			return true
		}
	}
	return false
}
