package lint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/input-output-hk/catalyst-jslint/javascript/ast"
)

// CallCheckFunc inspects a single call expression and reports through ctx.
type CallCheckFunc func(ctx *Context, call *ast.CallExpr)

// CallRule creates a rule whose check runs once for every call expression
// in the program.
//
//nolint:ireturn // Builder functions should return interfaces
func CallRule(code, description string, tags []string, check CallCheckFunc) Rule {
	return &callRule{
		code:        code,
		description: description,
		tags:        tags,
		check:       check,
	}
}

// callRule implements the Rule interface for call-expression checks.
type callRule struct {
	code        string
	description string
	tags        []string
	check       CallCheckFunc
}

func (r *callRule) Code() string        { return r.code }
func (r *callRule) Tags() []string      { return r.tags }
func (r *callRule) Description() string { return r.description }

// LintProgram walks the program and applies the check to each call.
func (r *callRule) LintProgram(ctx *Context, program *ast.Program) {
	ast.Walk(&callVisitor{ctx: ctx, check: r.check}, program)
}

type callVisitor struct {
	ast.BaseVisitor
	ctx   *Context
	check CallCheckFunc
}

func (v *callVisitor) VisitCallExpr(call *ast.CallExpr) {
	v.check(v.ctx, call)
}

// ForbidCalleeRule creates a rule that reports calls whose dotted callee path
// (see CalleePath) matches pattern. The pattern must compile.
//
//nolint:ireturn // Builder functions should return interfaces
func ForbidCalleeRule(code, description, pattern string, tags []string) Rule {
	regex, err := regexp.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("invalid pattern in rule %s: %v", code, err))
	}

	return CallRule(code, description, tags, func(ctx *Context, call *ast.CallExpr) {
		path, ok := CalleePath(call)
		if !ok || !regex.MatchString(path) {
			return
		}
		ctx.AddDiagnostic(call.Span(), code, fmt.Sprintf("Call to %s is forbidden", path))
	})
}

// Helper functions for common rule patterns

// CalleePath returns the dotted path of a call's callee, such as
// "console.log" or "a.b.c", when the callee is an identifier or a chain of
// non-computed member accesses over identifiers, this or super.
func CalleePath(call *ast.CallExpr) (string, bool) {
	var parts []string
	x := call.Callee
	for {
		switch n := x.(type) {
		case *ast.Ident:
			parts = append(parts, n.Name)
			return joinReversed(parts), true
		case *ast.This:
			parts = append(parts, "this")
			return joinReversed(parts), true
		case *ast.Super:
			parts = append(parts, "super")
			return joinReversed(parts), true
		case *ast.MemberExpr:
			prop, ok := n.Property.(*ast.Ident)
			if n.Computed || !ok {
				return "", false
			}
			parts = append(parts, prop.Name)
			x = n.Object
		default:
			return "", false
		}
	}
}

func joinReversed(parts []string) string {
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}
