package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/input-output-hk/catalyst-jslint/javascript/ast"
)

// tree-sitter-javascript node types the converter gives dedicated ast nodes.
const (
	tsComment             = "comment"
	tsExpressionStatement = "expression_statement"
	tsStatementBlock      = "statement_block"
	tsLexicalDeclaration  = "lexical_declaration"
	tsVariableDeclaration = "variable_declaration"
	tsVariableDeclarator  = "variable_declarator"
	tsFunctionDeclaration = "function_declaration"
	tsReturnStatement     = "return_statement"
	tsIfStatement         = "if_statement"
	tsElseClause          = "else_clause"

	tsIdentifier            = "identifier"
	tsPropertyIdentifier    = "property_identifier"
	tsShorthandProperty     = "shorthand_property_identifier"
	tsPrivateProperty       = "private_property_identifier"
	tsUndefined             = "undefined"
	tsSuper                 = "super"
	tsThis                  = "this"
	tsString                = "string"
	tsNumber                = "number"
	tsTrue                  = "true"
	tsFalse                 = "false"
	tsNull                  = "null"
	tsRegex                 = "regex"
	tsArray                 = "array"
	tsObject                = "object"
	tsPair                  = "pair"
	tsComputedPropertyName  = "computed_property_name"
	tsParenthesized         = "parenthesized_expression"
	tsMemberExpression      = "member_expression"
	tsSubscriptExpression   = "subscript_expression"
	tsCallExpression        = "call_expression"
	tsNewExpression         = "new_expression"
	tsArguments             = "arguments"
	tsFunctionExpression    = "function_expression"
	tsFunction              = "function"
	tsArrowFunction         = "arrow_function"
	tsUnaryExpression       = "unary_expression"
	tsUpdateExpression      = "update_expression"
	tsAwaitExpression       = "await_expression"
	tsBinaryExpression      = "binary_expression"
	tsAssignmentExpression  = "assignment_expression"
	tsAugmentedAssignment   = "augmented_assignment_expression"
	tsTernaryExpression     = "ternary_expression"
	tsSequenceExpression    = "sequence_expression"
	tsOptionalChain         = "optional_chain"
	tsOptionalChainOperator = "?."
)

// opaqueTaggedTemplate names the Opaque node a tagged template lowers to.
const opaqueTaggedTemplate = "tagged_template"

// converter lowers a tree-sitter concrete tree into ast nodes.
type converter struct {
	src []byte
}

func startPos(n *sitter.Node) ast.Pos {
	p := n.StartPoint()
	return ast.Pos{Offset: int(n.StartByte()), Line: int(p.Row) + 1, Column: int(p.Column)}
}

func endPos(n *sitter.Node) ast.Pos {
	p := n.EndPoint()
	return ast.Pos{Offset: int(n.EndByte()), Line: int(p.Row) + 1, Column: int(p.Column)}
}

func spanOf(n *sitter.Node) ast.Span {
	return ast.Span{Start: startPos(n), End: endPos(n)}
}

func (c *converter) text(n *sitter.Node) string {
	return spanOf(n).Text(c.src)
}

func (c *converter) program(root *sitter.Node) *ast.Program {
	prog := &ast.Program{Source: c.src, Loc: spanOf(root)}
	for _, child := range namedChildren(root) {
		if s := c.stmt(child); s != nil {
			prog.Body = append(prog.Body, s)
		}
	}
	return prog
}

// namedChildren returns the named children of n, skipping comments.
func namedChildren(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == tsComment {
			continue
		}
		out = append(out, child)
	}
	return out
}

// hasChildType reports whether any direct child of n has one of the given types.
func hasChildType(n *sitter.Node, types ...string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		for _, t := range types {
			if child.Type() == t {
				return true
			}
		}
	}
	return false
}

func isAsync(n *sitter.Node) bool {
	return n.ChildCount() > 0 && n.Child(0).Type() == "async"
}

// stmt converts a statement-position node. It returns nil for comments.
func (c *converter) stmt(n *sitter.Node) ast.Stmt {
	if n == nil || n.Type() == tsComment {
		return nil
	}

	switch n.Type() {
	case tsExpressionStatement:
		return &ast.ExprStmt{X: c.exprChild(n, 0), Loc: spanOf(n)}
	case tsStatementBlock:
		return c.block(n)
	case tsLexicalDeclaration, tsVariableDeclaration:
		return c.varDecl(n)
	case tsFunctionDeclaration:
		return &ast.FuncDecl{
			Name:   c.ident(n.ChildByFieldName("name")),
			Params: c.params(n.ChildByFieldName("parameters")),
			Body:   c.blockOrNil(n.ChildByFieldName("body")),
			Async:  isAsync(n),
			Loc:    spanOf(n),
		}
	case tsReturnStatement:
		return &ast.ReturnStmt{Result: c.exprChild(n, 0), Loc: spanOf(n)}
	case tsIfStatement:
		ifStmt := &ast.IfStmt{
			Cond: c.expr(n.ChildByFieldName("condition")),
			Then: c.stmt(n.ChildByFieldName("consequence")),
			Loc:  spanOf(n),
		}
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			if alt.Type() == tsElseClause {
				alt = firstNamed(alt)
			}
			ifStmt.Else = c.stmt(alt)
		}
		return ifStmt
	default:
		return c.opaque(n)
	}
}

func firstNamed(n *sitter.Node) *sitter.Node {
	children := namedChildren(n)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

func (c *converter) block(n *sitter.Node) *ast.BlockStmt {
	b := &ast.BlockStmt{Loc: spanOf(n)}
	for _, child := range namedChildren(n) {
		if s := c.stmt(child); s != nil {
			b.List = append(b.List, s)
		}
	}
	return b
}

func (c *converter) blockOrNil(n *sitter.Node) *ast.BlockStmt {
	if n == nil {
		return nil
	}
	return c.block(n)
}

func (c *converter) varDecl(n *sitter.Node) *ast.VarDecl {
	decl := &ast.VarDecl{Loc: spanOf(n)}
	if n.ChildCount() > 0 {
		decl.Keyword = n.Child(0).Type()
	}
	for _, child := range namedChildren(n) {
		if child.Type() != tsVariableDeclarator {
			continue
		}
		d := &ast.VarDeclarator{Loc: spanOf(child)}
		if name := child.ChildByFieldName("name"); name != nil {
			d.Name = c.node(name)
		}
		if value := child.ChildByFieldName("value"); value != nil {
			d.Init = c.expr(value)
		}
		decl.Decls = append(decl.Decls, d)
	}
	return decl
}

func (c *converter) params(n *sitter.Node) []ast.Node {
	if n == nil {
		return nil
	}
	// Arrow functions with a single bare parameter have no parentheses.
	if n.Type() == tsIdentifier {
		return []ast.Node{c.ident(n)}
	}
	var out []ast.Node
	for _, child := range namedChildren(n) {
		out = append(out, c.node(child))
	}
	return out
}

// exprChild converts the i-th named child of n as an expression.
func (c *converter) exprChild(n *sitter.Node, i int) ast.Expr {
	children := namedChildren(n)
	if i >= len(children) {
		return nil
	}
	return c.expr(children[i])
}

// node converts n without knowing whether it is in statement or expression position.
func (c *converter) node(n *sitter.Node) ast.Node {
	switch n.Type() {
	case tsExpressionStatement, tsStatementBlock, tsLexicalDeclaration, tsVariableDeclaration,
		tsFunctionDeclaration, tsReturnStatement, tsIfStatement:
		return c.stmt(n)
	}
	return c.expr(n)
}

// expr converts an expression-position node. It returns a nil interface for nil input.
func (c *converter) expr(n *sitter.Node) ast.Expr {
	if n == nil {
		return nil
	}

	switch n.Type() {
	case tsIdentifier, tsPropertyIdentifier, tsShorthandProperty, tsUndefined:
		return c.ident(n)
	case tsPrivateProperty:
		return &ast.PrivateName{Name: strings.TrimPrefix(c.text(n), "#"), Loc: spanOf(n)}
	case tsSuper:
		return &ast.Super{Loc: spanOf(n)}
	case tsThis:
		return &ast.This{Loc: spanOf(n)}
	case tsString:
		return c.literal(n, ast.LiteralString)
	case tsNumber:
		return c.literal(n, ast.LiteralNumber)
	case tsTrue, tsFalse:
		return c.literal(n, ast.LiteralBool)
	case tsNull:
		return c.literal(n, ast.LiteralNull)
	case tsRegex:
		return c.literal(n, ast.LiteralRegExp)
	case tsArray:
		arr := &ast.ArrayLit{Loc: spanOf(n)}
		for _, child := range namedChildren(n) {
			arr.Elems = append(arr.Elems, c.expr(child))
		}
		return arr
	case tsObject:
		return c.object(n)
	case tsParenthesized:
		return &ast.ParenExpr{X: c.seqOf(n), Loc: spanOf(n)}
	case tsMemberExpression:
		return &ast.MemberExpr{
			Object:   c.expr(n.ChildByFieldName("object")),
			Property: c.expr(n.ChildByFieldName("property")),
			Optional: hasChildType(n, tsOptionalChain, tsOptionalChainOperator),
			Loc:      spanOf(n),
		}
	case tsSubscriptExpression:
		return &ast.MemberExpr{
			Object:   c.expr(n.ChildByFieldName("object")),
			Property: c.expr(n.ChildByFieldName("index")),
			Computed: true,
			Optional: hasChildType(n, tsOptionalChain, tsOptionalChainOperator),
			Loc:      spanOf(n),
		}
	case tsCallExpression:
		// foo`bar` is a tagged template, not a call.
		if args := n.ChildByFieldName("arguments"); args != nil && args.Type() != tsArguments {
			o := c.opaque(n)
			o.Type = opaqueTaggedTemplate
			return o
		}
		return &ast.CallExpr{
			Callee:   c.expr(n.ChildByFieldName("function")),
			Args:     c.args(n.ChildByFieldName("arguments")),
			Optional: hasChildType(n, tsOptionalChain, tsOptionalChainOperator),
			Loc:      spanOf(n),
		}
	case tsNewExpression:
		return &ast.NewExpr{
			Callee: c.expr(n.ChildByFieldName("constructor")),
			Args:   c.args(n.ChildByFieldName("arguments")),
			Loc:    spanOf(n),
		}
	case tsFunctionExpression, tsFunction:
		return &ast.FuncExpr{
			Name:   c.ident(n.ChildByFieldName("name")),
			Params: c.params(n.ChildByFieldName("parameters")),
			Body:   c.blockOrNil(n.ChildByFieldName("body")),
			Async:  isAsync(n),
			Loc:    spanOf(n),
		}
	case tsArrowFunction:
		return c.arrow(n)
	case tsUnaryExpression, tsUpdateExpression, tsAwaitExpression:
		return c.unary(n)
	case tsBinaryExpression:
		return &ast.BinaryExpr{
			Op:  c.operator(n),
			X:   c.expr(n.ChildByFieldName("left")),
			Y:   c.expr(n.ChildByFieldName("right")),
			Loc: spanOf(n),
		}
	case tsAssignmentExpression, tsAugmentedAssignment:
		op := "="
		if n.Type() == tsAugmentedAssignment {
			op = c.operator(n)
		}
		assign := &ast.AssignExpr{
			Op:    op,
			Value: c.expr(n.ChildByFieldName("right")),
			Loc:   spanOf(n),
		}
		if left := n.ChildByFieldName("left"); left != nil {
			assign.Target = c.node(left)
		}
		return assign
	case tsTernaryExpression:
		return &ast.CondExpr{
			Test: c.expr(n.ChildByFieldName("condition")),
			Then: c.expr(n.ChildByFieldName("consequence")),
			Else: c.expr(n.ChildByFieldName("alternative")),
			Loc:  spanOf(n),
		}
	case tsSequenceExpression:
		seq := &ast.SeqExpr{Loc: spanOf(n)}
		c.flattenSeq(n, seq)
		return seq
	default:
		return c.opaque(n)
	}
}

func (c *converter) ident(n *sitter.Node) *ast.Ident {
	if n == nil {
		return nil
	}
	return &ast.Ident{Name: c.text(n), Loc: spanOf(n)}
}

func (c *converter) literal(n *sitter.Node, kind ast.LiteralKind) *ast.Literal {
	return &ast.Literal{LitKind: kind, Raw: c.text(n), Loc: spanOf(n)}
}

func (c *converter) object(n *sitter.Node) *ast.ObjectLit {
	obj := &ast.ObjectLit{Loc: spanOf(n)}
	for _, child := range namedChildren(n) {
		switch child.Type() {
		case tsPair:
			prop := &ast.Property{Loc: spanOf(child)}
			if key := child.ChildByFieldName("key"); key != nil {
				if key.Type() == tsComputedPropertyName {
					prop.Computed = true
					prop.Key = c.exprChild(key, 0)
				} else {
					prop.Key = c.expr(key)
				}
			}
			prop.Value = c.expr(child.ChildByFieldName("value"))
			obj.Props = append(obj.Props, prop)
		case tsShorthandProperty:
			obj.Props = append(obj.Props, &ast.Property{
				Key:       c.ident(child),
				Shorthand: true,
				Loc:       spanOf(child),
			})
		default:
			obj.Props = append(obj.Props, c.opaque(child))
		}
	}
	return obj
}

func (c *converter) args(n *sitter.Node) []ast.Expr {
	if n == nil {
		return nil
	}
	var out []ast.Expr
	for _, child := range namedChildren(n) {
		out = append(out, c.expr(child))
	}
	return out
}

func (c *converter) arrow(n *sitter.Node) *ast.ArrowFunc {
	fn := &ast.ArrowFunc{Async: isAsync(n), Loc: spanOf(n)}
	if params := n.ChildByFieldName("parameters"); params != nil {
		fn.Params = c.params(params)
	} else if param := n.ChildByFieldName("parameter"); param != nil {
		fn.Params = c.params(param)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		if body.Type() == tsStatementBlock {
			fn.Body = c.block(body)
		} else {
			fn.Body = c.expr(body)
		}
	}
	return fn
}

func (c *converter) unary(n *sitter.Node) *ast.UnaryExpr {
	u := &ast.UnaryExpr{Loc: spanOf(n)}
	arg := n.ChildByFieldName("argument")
	if n.Type() == tsAwaitExpression {
		u.Op = "await"
		arg = firstNamed(n)
	} else {
		u.Op = c.operator(n)
	}
	u.X = c.expr(arg)
	return u
}

// operator returns the text of the operator field, or the first anonymous child.
func (c *converter) operator(n *sitter.Node) string {
	if op := n.ChildByFieldName("operator"); op != nil {
		return op.Type()
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil && !child.IsNamed() {
			return child.Type()
		}
	}
	return ""
}

// seqOf converts the single expression inside parentheses.
func (c *converter) seqOf(n *sitter.Node) ast.Expr {
	return c.exprChild(n, 0)
}

func (c *converter) flattenSeq(n *sitter.Node, seq *ast.SeqExpr) {
	for _, child := range namedChildren(n) {
		if child.Type() == tsSequenceExpression {
			c.flattenSeq(child, seq)
			continue
		}
		seq.Exprs = append(seq.Exprs, c.expr(child))
	}
}

// opaque keeps an unmodelled construct and converts all of its named
// children so that traversal still reaches nested expressions.
func (c *converter) opaque(n *sitter.Node) *ast.Opaque {
	o := &ast.Opaque{Type: n.Type(), Loc: spanOf(n)}
	for _, child := range namedChildren(n) {
		o.Children = append(o.Children, c.node(child))
	}
	return o
}
