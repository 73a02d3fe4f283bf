package ast

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	X   Expr
	Loc Span
}

// BlockStmt is { List... }.
type BlockStmt struct {
	List []Stmt
	Loc  Span
}

// VarDecl is a var, let or const declaration.
type VarDecl struct {
	Keyword string // "var", "let" or "const"
	Decls   []*VarDeclarator
	Loc     Span
}

// VarDeclarator is a single Name = Init binding. Name may be an identifier
// or an Opaque destructuring pattern; Init is nil when absent.
type VarDeclarator struct {
	Name Node
	Init Expr
	Loc  Span
}

// FuncDecl is a function declaration.
type FuncDecl struct {
	Name   *Ident
	Params []Node
	Body   *BlockStmt
	Async  bool
	Loc    Span
}

// ReturnStmt is return Result; Result is nil for a bare return.
type ReturnStmt struct {
	Result Expr
	Loc    Span
}

// IfStmt is if (Cond) Then else Else; Else is nil when absent.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
	Loc  Span
}

func (s *ExprStmt) Kind() Kind      { return KindExprStmt }
func (s *BlockStmt) Kind() Kind     { return KindBlockStmt }
func (s *VarDecl) Kind() Kind       { return KindVarDecl }
func (s *VarDeclarator) Kind() Kind { return KindVarDeclarator }
func (s *FuncDecl) Kind() Kind      { return KindFuncDecl }
func (s *ReturnStmt) Kind() Kind    { return KindReturnStmt }
func (s *IfStmt) Kind() Kind        { return KindIfStmt }

func (s *ExprStmt) Span() Span      { return s.Loc }
func (s *BlockStmt) Span() Span     { return s.Loc }
func (s *VarDecl) Span() Span       { return s.Loc }
func (s *VarDeclarator) Span() Span { return s.Loc }
func (s *FuncDecl) Span() Span      { return s.Loc }
func (s *ReturnStmt) Span() Span    { return s.Loc }
func (s *IfStmt) Span() Span        { return s.Loc }

func (*ExprStmt) node()      {}
func (*BlockStmt) node()     {}
func (*VarDecl) node()       {}
func (*VarDeclarator) node() {}
func (*FuncDecl) node()      {}
func (*ReturnStmt) node()    {}
func (*IfStmt) node()        {}

func (*ExprStmt) stmt()   {}
func (*BlockStmt) stmt()  {}
func (*VarDecl) stmt()    {}
func (*FuncDecl) stmt()   {}
func (*ReturnStmt) stmt() {}
func (*IfStmt) stmt()     {}
