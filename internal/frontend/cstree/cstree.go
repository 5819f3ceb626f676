// Package cstree is the narrow front-end surface spec.md's scope section
// describes: "a 'parse source text → concrete tree' entry and per-node
// kind inspection." It wraps github.com/smacker/go-tree-sitter and its
// bundled C# grammar (github.com/smacker/go-tree-sitter/csharp) — the
// external, off-the-shelf parser this translator treats as a library,
// never as something it implements itself.
//
// Nothing outside this package imports go-tree-sitter directly; the
// visitor consumes only the Tree/Node types below.
package cstree

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/cwbudde/cs2ps/internal/ir"
)

// Tree is a parsed C# concrete syntax tree.
type Tree struct {
	root   *sitter.Node
	source []byte
}

// Parse parses source text as a C# compilation unit.
func Parse(ctx context.Context, source []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(csharp.GetLanguage())

	parsed, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("cstree: parse: %w", err)
	}
	if parsed == nil || parsed.RootNode() == nil {
		return nil, fmt.Errorf("cstree: parser produced no root node")
	}

	return &Tree{root: parsed.RootNode(), source: source}, nil
}

// Root returns the compilation-unit node.
func (t *Tree) Root() Node { return Node{n: t.root, source: t.source} }

// HasError reports whether the parse tree contains any ERROR or missing
// node, i.e. the front end could not fully make sense of the input.
func (t *Tree) HasError() bool { return t.root.HasError() }

// Node is a read-only view over a single tree-sitter node: its kind
// (the grammar's node-type name), its source text span, and its
// children. This is the entire surface the visitor is allowed to use.
type Node struct {
	n      *sitter.Node
	source []byte
}

// IsZero reports whether this Node wraps no underlying tree-sitter node
// (the result of, e.g., indexing past the end of a child list).
func (n Node) IsZero() bool { return n.n == nil }

// Kind is the grammar's node-type name, e.g. "class_declaration",
// "if_statement", "binary_expression".
func (n Node) Kind() string {
	if n.n == nil {
		return ""
	}
	return n.n.Type()
}

// Text is the node's exact source text span.
func (n Node) Text() string {
	if n.n == nil {
		return ""
	}
	return n.n.Content(n.source)
}

// IsError reports whether the front end could not parse this span at
// all (a tree-sitter "ERROR" node).
func (n Node) IsError() bool { return n.n != nil && n.n.Type() == "ERROR" }

// IsMissing reports whether the front end synthesized this node to
// recover from a syntax error (a token the parser expected but never
// saw in the source).
func (n Node) IsMissing() bool { return n.n != nil && n.n.IsMissing() }

// Position is this node's starting source location.
func (n Node) Position() ir.Position {
	if n.n == nil {
		return ir.Position{}
	}
	p := n.n.StartPoint()
	return ir.Position{
		Line:   int(p.Row) + 1,
		Column: int(p.Column) + 1,
		Offset: int(n.n.StartByte()),
	}
}

// ChildCount is the number of children, named and anonymous
// (punctuation, keywords) alike.
func (n Node) ChildCount() int {
	if n.n == nil {
		return 0
	}
	return int(n.n.ChildCount())
}

// Child returns the i'th child, named or anonymous.
func (n Node) Child(i int) Node {
	if n.n == nil {
		return Node{}
	}
	return Node{n: n.n.Child(i), source: n.source}
}

// NamedChildren returns every named child (skipping anonymous tokens
// like `{`, `;`, `class`), in source order. Most of the visitor's
// dispatch walks this list rather than raw Child() indices, since
// named-child shape is far more stable across grammar versions than
// exact anonymous-token counts.
func (n Node) NamedChildren() []Node {
	if n.n == nil {
		return nil
	}
	count := int(n.n.NamedChildCount())
	out := make([]Node, count)
	for i := 0; i < count; i++ {
		out[i] = Node{n: n.n.NamedChild(i), source: n.source}
	}
	return out
}

// ChildByField returns the child bound to the given grammar field name
// (e.g. "name", "body", "parameters"), or a zero Node if the grammar
// version or this production doesn't define that field.
func (n Node) ChildByField(name string) Node {
	if n.n == nil {
		return Node{}
	}
	return Node{n: n.n.ChildByFieldName(name), source: n.source}
}

// Equal reports whether two Node values wrap the same underlying
// tree-sitter node. Used by the visitor to tell apart a field-tagged
// child (e.g. a for-loop's "condition") from its untagged siblings when
// walking NamedChildren.
func (n Node) Equal(o Node) bool { return n.n == o.n }

// ByteRange is the node's [start, end) byte offsets into the source,
// used for diagnostic logging.
func (n Node) ByteRange() (start, end int) {
	if n.n == nil {
		return 0, 0
	}
	return int(n.n.StartByte()), int(n.n.EndByte())
}
