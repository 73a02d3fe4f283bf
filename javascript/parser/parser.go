// Package parser turns JavaScript source text into the ast syntax tree.
// It uses the tree-sitter JavaScript grammar and lowers the concrete tree
// into the ast sum type.
package parser

import (
	"context"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/input-output-hk/catalyst-jslint/errors"
	"github.com/input-output-hk/catalyst-jslint/fs"
	"github.com/input-output-hk/catalyst-jslint/fs/billy"
	"github.com/input-output-hk/catalyst-jslint/javascript/ast"
)

// DefaultMaxFileSize is the largest source accepted when ParseOptions does not set one.
const DefaultMaxFileSize = 10 * 1024 * 1024

// ParseOptions provides options for parsing JavaScript sources.
type ParseOptions struct {
	// Filesystem allows injecting a custom filesystem implementation.
	// If nil, defaults to billy.NewBaseOSFS()
	Filesystem fs.ReadFS
	// MaxFileSize rejects larger sources. Zero means DefaultMaxFileSize.
	MaxFileSize int
}

func (o *ParseOptions) maxFileSize() int {
	if o == nil || o.MaxFileSize <= 0 {
		return DefaultMaxFileSize
	}
	return o.MaxFileSize
}

// ParseFile parses the JavaScript file at path with options and cancellation support.
func ParseFile(ctx context.Context, path string, opts *ParseOptions) (*ast.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "parse cancelled")
	}

	var filesystem fs.ReadFS
	if opts != nil {
		filesystem = opts.Filesystem
	}
	if filesystem == nil {
		filesystem = billy.NewBaseOSFS()
	}

	content, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeIO, "failed to read source",
			map[string]interface{}{"path": path})
	}

	return ParseBytesWithOptions(ctx, path, content, opts)
}

// ParseString parses JavaScript source held in a string.
func ParseString(content string) (*ast.Program, error) {
	return ParseBytes(context.Background(), "<input>", []byte(content))
}

// ParseBytes parses JavaScript source; name is only used in error context.
func ParseBytes(ctx context.Context, name string, content []byte) (*ast.Program, error) {
	return ParseBytesWithOptions(ctx, name, content, nil)
}

// ParseBytesWithOptions parses JavaScript source with custom options.
func ParseBytesWithOptions(ctx context.Context, name string, content []byte, opts *ParseOptions) (*ast.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "parse cancelled")
	}

	if limit := opts.maxFileSize(); len(content) > limit {
		return nil, errors.Newf(errors.CodeInvalidInput, "source exceeds %d bytes", limit).
			WithContext("path", name)
	}
	if !utf8.Valid(content) {
		return nil, errors.New(errors.CodeInvalidInput, "source is not valid UTF-8").
			WithContext("path", name)
	}

	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(javascript.GetLanguage())

	tree, err := p.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeParseFailed, "tree-sitter parse failed",
			map[string]interface{}{"path": name})
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		pos := firstError(root)
		return nil, errors.New(errors.CodeParseFailed, "syntax error").
			WithContext("path", name).
			WithContext("line", pos.Line).
			WithContext("column", pos.Column)
	}

	c := &converter{src: content}
	return c.program(root), nil
}

// firstError returns the position of the first ERROR or MISSING node in
// document order, falling back to the root start.
func firstError(root *sitter.Node) ast.Pos {
	var found *sitter.Node
	var search func(n *sitter.Node)
	search = func(n *sitter.Node) {
		if found != nil || n == nil || !n.HasError() && !n.IsMissing() {
			return
		}
		if n.Type() == "ERROR" || n.IsMissing() {
			found = n
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			search(n.Child(i))
		}
	}
	search(root)
	if found == nil {
		found = root
	}
	return startPos(found)
}
