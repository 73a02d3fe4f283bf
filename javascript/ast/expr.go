package ast

// Ident is a plain identifier: a variable reference, a binding name or the
// property of a non-computed member access.
type Ident struct {
	Name string
	Loc  Span
}

// PrivateName is a class private name such as #secret.
type PrivateName struct {
	Name string // without the leading '#'
	Loc  Span
}

// Super is the super keyword used as a callee or member base.
type Super struct {
	Loc Span
}

// This is the this keyword.
type This struct {
	Loc Span
}

// LiteralKind distinguishes literal values.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBool
	LiteralNull
	LiteralRegExp
	LiteralTemplate
)

// Literal is a primitive literal. Raw holds the source text verbatim.
type Literal struct {
	LitKind LiteralKind
	Raw     string
	Loc     Span
}

// ArrayLit is [a, b, ...c].
type ArrayLit struct {
	Elems []Expr
	Loc   Span
}

// ObjectLit is {a: 1, b, [c]: 2, ...d}. Props holds *Property nodes and
// Opaque nodes for methods and spreads.
type ObjectLit struct {
	Props []Node
	Loc   Span
}

// Property is a key/value pair inside an object literal.
type Property struct {
	Key       Expr
	Value     Expr // nil for shorthand properties
	Computed  bool
	Shorthand bool
	Loc       Span
}

// ParenExpr is (X).
type ParenExpr struct {
	X   Expr
	Loc Span
}

// MemberExpr is Object.Property (Computed false) or Object[Property]
// (Computed true). Optional marks the a?.b form.
type MemberExpr struct {
	Object   Expr
	Property Expr
	Computed bool
	Optional bool
	Loc      Span
}

// CallExpr is Callee(Args...). Optional marks the f?.() form.
type CallExpr struct {
	Callee   Expr
	Args     []Expr
	Optional bool
	Loc      Span
}

// NewExpr is new Callee(Args...).
type NewExpr struct {
	Callee Expr
	Args   []Expr
	Loc    Span
}

// FuncExpr is a function expression. Name is nil when anonymous.
type FuncExpr struct {
	Name   *Ident
	Params []Node
	Body   *BlockStmt
	Async  bool
	Loc    Span
}

// ArrowFunc is (Params) => Body where Body is an Expr or a *BlockStmt.
type ArrowFunc struct {
	Params []Node
	Body   Node
	Async  bool
	Loc    Span
}

// UnaryExpr is Op X, including typeof, void, delete, await and update forms.
type UnaryExpr struct {
	Op  string
	X   Expr
	Loc Span
}

// BinaryExpr is X Op Y for arithmetic, comparison and logical operators.
type BinaryExpr struct {
	Op  string
	X   Expr
	Y   Expr
	Loc Span
}

// AssignExpr is Target Op Value, Op being "=" or a compound operator.
type AssignExpr struct {
	Op     string
	Target Node
	Value  Expr
	Loc    Span
}

// CondExpr is Test ? Then : Else.
type CondExpr struct {
	Test Expr
	Then Expr
	Else Expr
	Loc  Span
}

// SeqExpr is a, b, c.
type SeqExpr struct {
	Exprs []Expr
	Loc   Span
}

func (x *Ident) Kind() Kind       { return KindIdent }
func (x *PrivateName) Kind() Kind { return KindPrivateName }
func (x *Super) Kind() Kind       { return KindSuper }
func (x *This) Kind() Kind        { return KindThis }
func (x *Literal) Kind() Kind     { return KindLiteral }
func (x *ArrayLit) Kind() Kind    { return KindArrayLit }
func (x *ObjectLit) Kind() Kind   { return KindObjectLit }
func (x *Property) Kind() Kind    { return KindProperty }
func (x *ParenExpr) Kind() Kind   { return KindParenExpr }
func (x *MemberExpr) Kind() Kind  { return KindMemberExpr }
func (x *CallExpr) Kind() Kind    { return KindCallExpr }
func (x *NewExpr) Kind() Kind     { return KindNewExpr }
func (x *FuncExpr) Kind() Kind    { return KindFuncExpr }
func (x *ArrowFunc) Kind() Kind   { return KindArrowFunc }
func (x *UnaryExpr) Kind() Kind   { return KindUnaryExpr }
func (x *BinaryExpr) Kind() Kind  { return KindBinaryExpr }
func (x *AssignExpr) Kind() Kind  { return KindAssignExpr }
func (x *CondExpr) Kind() Kind    { return KindCondExpr }
func (x *SeqExpr) Kind() Kind     { return KindSeqExpr }

func (x *Ident) Span() Span       { return x.Loc }
func (x *PrivateName) Span() Span { return x.Loc }
func (x *Super) Span() Span       { return x.Loc }
func (x *This) Span() Span        { return x.Loc }
func (x *Literal) Span() Span     { return x.Loc }
func (x *ArrayLit) Span() Span    { return x.Loc }
func (x *ObjectLit) Span() Span   { return x.Loc }
func (x *Property) Span() Span    { return x.Loc }
func (x *ParenExpr) Span() Span   { return x.Loc }
func (x *MemberExpr) Span() Span  { return x.Loc }
func (x *CallExpr) Span() Span    { return x.Loc }
func (x *NewExpr) Span() Span     { return x.Loc }
func (x *FuncExpr) Span() Span    { return x.Loc }
func (x *ArrowFunc) Span() Span   { return x.Loc }
func (x *UnaryExpr) Span() Span   { return x.Loc }
func (x *BinaryExpr) Span() Span  { return x.Loc }
func (x *AssignExpr) Span() Span  { return x.Loc }
func (x *CondExpr) Span() Span    { return x.Loc }
func (x *SeqExpr) Span() Span     { return x.Loc }

func (*Ident) node()       {}
func (*PrivateName) node() {}
func (*Super) node()       {}
func (*This) node()        {}
func (*Literal) node()     {}
func (*ArrayLit) node()    {}
func (*ObjectLit) node()   {}
func (*Property) node()    {}
func (*ParenExpr) node()   {}
func (*MemberExpr) node()  {}
func (*CallExpr) node()    {}
func (*NewExpr) node()     {}
func (*FuncExpr) node()    {}
func (*ArrowFunc) node()   {}
func (*UnaryExpr) node()   {}
func (*BinaryExpr) node()  {}
func (*AssignExpr) node()  {}
func (*CondExpr) node()    {}
func (*SeqExpr) node()     {}

func (*Ident) expr()       {}
func (*PrivateName) expr() {}
func (*Super) expr()       {}
func (*This) expr()        {}
func (*Literal) expr()     {}
func (*ArrayLit) expr()    {}
func (*ObjectLit) expr()   {}
func (*ParenExpr) expr()   {}
func (*MemberExpr) expr()  {}
func (*CallExpr) expr()    {}
func (*NewExpr) expr()     {}
func (*FuncExpr) expr()    {}
func (*ArrowFunc) expr()   {}
func (*UnaryExpr) expr()   {}
func (*BinaryExpr) expr()  {}
func (*AssignExpr) expr()  {}
func (*CondExpr) expr()    {}
func (*SeqExpr) expr()     {}
