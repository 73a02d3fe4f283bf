package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(start, end int) Span {
	return Span{
		Start: Pos{Offset: start, Line: 1, Column: start},
		End:   Pos{Offset: end, Line: 1, Column: end},
	}
}

func ident(name string, start int) *Ident {
	return &Ident{Name: name, Loc: span(start, start+len(name))}
}

// outer.check(inner.probe(y)) as a hand-built tree.
func nestedCallProgram() *Program {
	innerCallee := &MemberExpr{
		Object:   ident("inner", 12),
		Property: ident("probe", 18),
		Loc:      span(12, 23),
	}
	inner := &CallExpr{
		Callee: innerCallee,
		Args:   []Expr{ident("y", 24)},
		Loc:    span(12, 26),
	}
	outerCallee := &MemberExpr{
		Object:   ident("outer", 0),
		Property: ident("check", 6),
		Loc:      span(0, 11),
	}
	outer := &CallExpr{
		Callee: outerCallee,
		Args:   []Expr{inner},
		Loc:    span(0, 27),
	}
	return &Program{
		Body: []Stmt{&ExprStmt{X: outer, Loc: span(0, 28)}},
		Loc:  span(0, 28),
	}
}

type recordingVisitor struct {
	BaseVisitor
	programs int
	calls    []*CallExpr
	members  []*MemberExpr
	idents   []string
	funcs    []Kind
}

func (r *recordingVisitor) VisitProgram(*Program)         { r.programs++ }
func (r *recordingVisitor) VisitCallExpr(c *CallExpr)     { r.calls = append(r.calls, c) }
func (r *recordingVisitor) VisitMemberExpr(m *MemberExpr) { r.members = append(r.members, m) }
func (r *recordingVisitor) VisitIdent(i *Ident)           { r.idents = append(r.idents, i.Name) }
func (r *recordingVisitor) VisitFunction(n Node)          { r.funcs = append(r.funcs, n.Kind()) }

func TestWalkVisitsNestedCallsOuterFirst(t *testing.T) {
	prog := nestedCallProgram()
	v := &recordingVisitor{}

	Walk(v, prog)

	assert.Equal(t, 1, v.programs)
	require.Len(t, v.calls, 2)
	assert.Equal(t, 0, v.calls[0].Span().Start.Offset, "outer call first")
	assert.Equal(t, 12, v.calls[1].Span().Start.Offset, "inner call second")
	assert.Len(t, v.members, 2)
	assert.Equal(t, []string{"outer", "check", "inner", "probe", "y"}, v.idents)
}

func TestWalkIsRepeatable(t *testing.T) {
	prog := nestedCallProgram()

	first := &recordingVisitor{}
	second := &recordingVisitor{}
	Walk(first, prog)
	Walk(second, prog)

	assert.Equal(t, first.calls, second.calls)
	assert.Equal(t, first.idents, second.idents)
}

func TestWalkReachesIntoOpaqueAndFunctions(t *testing.T) {
	call := &CallExpr{Callee: ident("f", 30), Loc: span(30, 33)}
	body := &BlockStmt{List: []Stmt{&ReturnStmt{Result: call, Loc: span(23, 34)}}, Loc: span(20, 36)}
	fn := &FuncDecl{Name: ident("wrap", 9), Body: body, Loc: span(0, 36)}
	arrow := &ArrowFunc{Body: &CallExpr{Callee: ident("g", 50), Loc: span(50, 53)}, Loc: span(44, 53)}
	loop := &Opaque{
		Type:     "for_statement",
		Children: []Node{&ExprStmt{X: arrow, Loc: span(44, 54)}},
		Loc:      span(37, 56),
	}
	prog := &Program{Body: []Stmt{fn, loop}, Loc: span(0, 56)}

	v := &recordingVisitor{}
	Walk(v, prog)

	require.Len(t, v.calls, 2)
	assert.Equal(t, []Kind{KindFuncDecl, KindArrowFunc}, v.funcs)
}

func TestWalkSkipsNilChildren(t *testing.T) {
	prog := &Program{Body: []Stmt{
		&ReturnStmt{Loc: span(0, 7)},
		&IfStmt{Cond: ident("x", 4), Then: &BlockStmt{}, Loc: span(0, 10)},
		&VarDecl{Keyword: "let", Decls: []*VarDeclarator{{Name: ident("a", 4)}}},
		&FuncDecl{},
	}}

	assert.NotPanics(t, func() {
		Walk(&recordingVisitor{}, prog)
	})
}

func TestSpan(t *testing.T) {
	src := []byte("foo.hasOwnProperty('bar');")
	s := span(0, 25)

	assert.Equal(t, "foo.hasOwnProperty('bar')", s.Text(src))
	assert.Equal(t, "", span(10, 100).Text(src))
	assert.Equal(t, "1:0-1:25", s.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "CallExpr", KindCallExpr.String())
	assert.Equal(t, "Opaque", KindOpaque.String())
	assert.Equal(t, "Unknown", Kind(999).String())
}
