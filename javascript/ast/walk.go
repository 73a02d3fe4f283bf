package ast

import "fmt"

// Visitor receives callbacks while Walk traverses a syntax tree.
// Hooks observe nodes; they cannot stop or prune the traversal.
type Visitor interface {
	// VisitProgram is called once for the root.
	VisitProgram(program *Program)

	// VisitCallExpr is called for every call expression.
	VisitCallExpr(call *CallExpr)

	// VisitNewExpr is called for every new expression.
	VisitNewExpr(expr *NewExpr)

	// VisitMemberExpr is called for every member access, computed or not.
	VisitMemberExpr(member *MemberExpr)

	// VisitIdent is called for every identifier, including property names.
	VisitIdent(ident *Ident)

	// VisitFunction is called for function declarations, function
	// expressions and arrow functions.
	VisitFunction(fn Node)
}

// BaseVisitor provides default no-op implementations of all Visitor methods.
// Embed this struct to only override the methods you need.
type BaseVisitor struct{}

// VisitProgram is a no-op implementation.
func (BaseVisitor) VisitProgram(*Program) {}

// VisitCallExpr is a no-op implementation.
func (BaseVisitor) VisitCallExpr(*CallExpr) {}

// VisitNewExpr is a no-op implementation.
func (BaseVisitor) VisitNewExpr(*NewExpr) {}

// VisitMemberExpr is a no-op implementation.
func (BaseVisitor) VisitMemberExpr(*MemberExpr) {}

// VisitIdent is a no-op implementation.
func (BaseVisitor) VisitIdent(*Ident) {}

// VisitFunction is a no-op implementation.
func (BaseVisitor) VisitFunction(Node) {}

// Walk traverses the tree rooted at node depth first. Each node is handed to
// its hook before any of its children, and children are visited in source
// order, so a call expression is seen before the calls nested in its callee
// or arguments.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		v.VisitProgram(n)
	case *CallExpr:
		v.VisitCallExpr(n)
	case *NewExpr:
		v.VisitNewExpr(n)
	case *MemberExpr:
		v.VisitMemberExpr(n)
	case *Ident:
		v.VisitIdent(n)
	case *FuncDecl, *FuncExpr, *ArrowFunc:
		v.VisitFunction(n)
	}

	eachChild(node, func(child Node) {
		Walk(v, child)
	})
}

// eachChild calls fn for each non-nil direct child of node in source order.
// Every node type of this package must have a case here.
func eachChild(node Node, fn func(Node)) {
	expr := func(x Expr) {
		if x != nil {
			fn(x)
		}
	}
	nodes := func(list []Node) {
		for _, x := range list {
			if x != nil {
				fn(x)
			}
		}
	}
	exprs := func(list []Expr) {
		for _, x := range list {
			expr(x)
		}
	}
	ident := func(id *Ident) {
		if id != nil {
			fn(id)
		}
	}
	block := func(b *BlockStmt) {
		if b != nil {
			fn(b)
		}
	}
	stmt := func(s Stmt) {
		if s != nil {
			fn(s)
		}
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Body {
			stmt(s)
		}
	case *Opaque:
		nodes(n.Children)

	case *Ident, *PrivateName, *Super, *This, *Literal:
		// leaves
	case *ArrayLit:
		exprs(n.Elems)
	case *ObjectLit:
		nodes(n.Props)
	case *Property:
		expr(n.Key)
		expr(n.Value)
	case *ParenExpr:
		expr(n.X)
	case *MemberExpr:
		expr(n.Object)
		expr(n.Property)
	case *CallExpr:
		expr(n.Callee)
		exprs(n.Args)
	case *NewExpr:
		expr(n.Callee)
		exprs(n.Args)
	case *FuncExpr:
		ident(n.Name)
		nodes(n.Params)
		block(n.Body)
	case *ArrowFunc:
		nodes(n.Params)
		if n.Body != nil {
			fn(n.Body)
		}
	case *UnaryExpr:
		expr(n.X)
	case *BinaryExpr:
		expr(n.X)
		expr(n.Y)
	case *AssignExpr:
		if n.Target != nil {
			fn(n.Target)
		}
		expr(n.Value)
	case *CondExpr:
		expr(n.Test)
		expr(n.Then)
		expr(n.Else)
	case *SeqExpr:
		exprs(n.Exprs)

	case *ExprStmt:
		expr(n.X)
	case *BlockStmt:
		for _, s := range n.List {
			stmt(s)
		}
	case *VarDecl:
		for _, d := range n.Decls {
			if d != nil {
				fn(d)
			}
		}
	case *VarDeclarator:
		if n.Name != nil {
			fn(n.Name)
		}
		expr(n.Init)
	case *FuncDecl:
		ident(n.Name)
		nodes(n.Params)
		block(n.Body)
	case *ReturnStmt:
		expr(n.Result)
	case *IfStmt:
		expr(n.Cond)
		stmt(n.Then)
		stmt(n.Else)

	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", node))
	}
}
