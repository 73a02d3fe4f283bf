// Package ast defines the JavaScript syntax tree consumed by lint rules.
//
// The tree is a closed sum type: Node, Expr and Stmt are sealed interfaces
// implemented only by the types of this package, and Walk dispatches over
// them with an exhaustive type switch. Constructs the model does not name are
// kept as Opaque nodes so that traversal still reaches everything nested in
// them.
package ast

// Kind tags the concrete variant of a Node.
type Kind int

const (
	KindInvalid Kind = iota
	KindProgram

	// Expressions.
	KindIdent
	KindPrivateName
	KindSuper
	KindThis
	KindLiteral
	KindArrayLit
	KindObjectLit
	KindProperty
	KindParenExpr
	KindMemberExpr
	KindCallExpr
	KindNewExpr
	KindFuncExpr
	KindArrowFunc
	KindUnaryExpr
	KindBinaryExpr
	KindAssignExpr
	KindCondExpr
	KindSeqExpr

	// Statements.
	KindExprStmt
	KindBlockStmt
	KindVarDecl
	KindVarDeclarator
	KindFuncDecl
	KindReturnStmt
	KindIfStmt

	// Anything else.
	KindOpaque
)

var kindNames = map[Kind]string{
	KindInvalid:       "Invalid",
	KindProgram:       "Program",
	KindIdent:         "Ident",
	KindPrivateName:   "PrivateName",
	KindSuper:         "Super",
	KindThis:          "This",
	KindLiteral:       "Literal",
	KindArrayLit:      "ArrayLit",
	KindObjectLit:     "ObjectLit",
	KindProperty:      "Property",
	KindParenExpr:     "ParenExpr",
	KindMemberExpr:    "MemberExpr",
	KindCallExpr:      "CallExpr",
	KindNewExpr:       "NewExpr",
	KindFuncExpr:      "FuncExpr",
	KindArrowFunc:     "ArrowFunc",
	KindUnaryExpr:     "UnaryExpr",
	KindBinaryExpr:    "BinaryExpr",
	KindAssignExpr:    "AssignExpr",
	KindCondExpr:      "CondExpr",
	KindSeqExpr:       "SeqExpr",
	KindExprStmt:      "ExprStmt",
	KindBlockStmt:     "BlockStmt",
	KindVarDecl:       "VarDecl",
	KindVarDeclarator: "VarDeclarator",
	KindFuncDecl:      "FuncDecl",
	KindReturnStmt:    "ReturnStmt",
	KindIfStmt:        "IfStmt",
	KindOpaque:        "Opaque",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	Span() Span
	node()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	expr()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmt()
}

// Program is the root of a parsed source file.
type Program struct {
	Body []Stmt
	// Source is the text the program was parsed from. It must not be modified.
	Source []byte
	Loc    Span
}

func (p *Program) Kind() Kind { return KindProgram }
func (p *Program) Span() Span { return p.Loc }
func (p *Program) node()      {}

// Opaque stands in for any construct without a dedicated node type (classes,
// loops, templates, JSX and so on). It is both an Expr and a Stmt.
type Opaque struct {
	// Type is the parser's name for the construct, e.g. "for_statement".
	Type     string
	Children []Node
	Loc      Span
}

func (o *Opaque) Kind() Kind { return KindOpaque }
func (o *Opaque) Span() Span { return o.Loc }
func (o *Opaque) node()      {}
func (o *Opaque) expr()      {}
func (o *Opaque) stmt()      {}
