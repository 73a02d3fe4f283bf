// Package correctness provides linting rules that catch code which is likely
// to misbehave at runtime.
package correctness

import (
	"fmt"

	"github.com/input-output-hk/catalyst-jslint/javascript/ast"
	"github.com/input-output-hk/catalyst-jslint/javascript/lint"
)

// NoPrototypeBuiltinsCode is the code of the no-prototype-builtins rule.
const NoPrototypeBuiltinsCode = "no-prototype-builtins"

// prototypeBuiltins are the Object.prototype methods that must not be called
// directly on a target object. The spelling of propertyIsEnumberable is
// matched exactly as written here.
var prototypeBuiltins = []string{
	"hasOwnProperty",
	"isPrototypeOf",
	"propertyIsEnumberable",
}

// isPrototypeBuiltin reports whether name is a banned property name.
// Matching is exact and case-sensitive.
func isPrototypeBuiltin(name string) bool {
	for _, b := range prototypeBuiltins {
		if name == b {
			return true
		}
	}
	return false
}

func prototypeBuiltinMessage(name string) string {
	return fmt.Sprintf("Access to Object.prototype.%s is not allowed from target object", name)
}

const noPrototypeBuiltinsDescription = "Disallows calling Object.prototype builtins directly on target objects"

// NewNoPrototypeBuiltinsRule creates the no-prototype-builtins rule. It
// disallows calling Object.prototype builtins such as hasOwnProperty directly
// on an object, as in foo.hasOwnProperty("bar"). Objects created with
// Object.create(null) or that shadow these names break such calls;
// Object.prototype.hasOwnProperty.call(foo, "bar") is the safe form.
//
// Every call expression is checked, nested calls included, outermost first.
//
//nolint:ireturn // rules are interface values
func NewNoPrototypeBuiltinsRule() lint.Rule {
	return lint.CallRule(
		NoPrototypeBuiltinsCode,
		noPrototypeBuiltinsDescription,
		[]string{lint.TagRecommended},
		checkPrototypeBuiltinCall,
	)
}

func checkPrototypeBuiltinCall(ctx *lint.Context, call *ast.CallExpr) {
	name, ok := calledBuiltin(call)
	if !ok {
		return
	}
	ctx.AddDiagnostic(call.Span(), NoPrototypeBuiltinsCode, prototypeBuiltinMessage(name))
}

// calledBuiltin returns the banned property name when call's immediate callee
// is a non-computed member access such as x.hasOwnProperty. Computed access
// (x["hasOwnProperty"]), parenthesized callees and private names never match.
func calledBuiltin(call *ast.CallExpr) (string, bool) {
	member, ok := call.Callee.(*ast.MemberExpr)
	if !ok || member.Computed {
		return "", false
	}
	prop, ok := member.Property.(*ast.Ident)
	if !ok || !isPrototypeBuiltin(prop.Name) {
		return "", false
	}
	return prop.Name, true
}
