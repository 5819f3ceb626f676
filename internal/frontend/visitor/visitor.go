// Package visitor translates a parsed C# concrete syntax tree
// (internal/frontend/cstree) into the reduced internal/ir tree the code
// writers consume. It performs a per-node-kind dispatch, collapsing
// syntactic sugar into the IR's canonical forms and falling back to
// ir.Unknown for anything outside the translatable subset.
package visitor

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/cwbudde/cs2ps/internal/diag"
	"github.com/cwbudde/cs2ps/internal/frontend/cstree"
	"github.com/cwbudde/cs2ps/internal/ir"
)

// visitor carries the per-invocation state the translation needs: the
// original source (for diagnostics) and the file label (for error
// messages). It holds no other mutable state — every visit method is a
// pure function of its input node.
type visitor struct {
	source []byte
	file   string
}

// Visit translates C# source text into an IR Namespace root. file
// labels diagnostics only; pass "" when translating literal source text
// with no backing path. The only error this returns is *diag.ParseError
// (spec's ParseFailure), raised when the front end rejects the input.
func Visit(ctx context.Context, source []byte, file string) (*ir.Namespace, error) {
	tree, err := cstree.Parse(ctx, source)
	if err != nil {
		return nil, diag.NewParseError(ir.Position{Line: 1, Column: 1}, err.Error(), string(source), file)
	}

	if tree.HasError() {
		bad := firstProblem(tree.Root())
		msg := "front end could not parse the input"
		if !bad.IsZero() {
			msg = "unexpected syntax near " + summarize(bad.Text())
		}
		return nil, diag.NewParseError(posOf(bad), msg, string(source), file)
	}

	v := &visitor{source: source, file: file}
	return v.compilationUnit(tree.Root()), nil
}

// firstProblem walks the tree depth-first for the first ERROR or
// missing node, so ParseFailure can point at the actual offending span
// rather than just line 1.
func firstProblem(n cstree.Node) cstree.Node {
	if n.IsZero() {
		return cstree.Node{}
	}
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := 0; i < n.ChildCount(); i++ {
		if found := firstProblem(n.Child(i)); !found.IsZero() {
			return found
		}
	}
	return cstree.Node{}
}

func posOf(n cstree.Node) ir.Position {
	if n.IsZero() {
		return ir.Position{Line: 1, Column: 1}
	}
	return n.Position()
}

func summarize(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > 40 {
		text = text[:40] + "..."
	}
	return text
}

// compilationUnit handles the root node: either a single explicit
// namespace, or (per spec.md §4.1) a synthetic empty namespace wrapping
// whatever top-level usings and type declarations the file has.
func (v *visitor) compilationUnit(n cstree.Node) *ir.Namespace {
	for _, c := range n.NamedChildren() {
		switch c.Kind() {
		case "namespace_declaration", "file_scoped_namespace_declaration":
			return v.namespaceDeclaration(c)
		}
	}

	ns := &ir.Namespace{}
	ns.SetPos(n.Position())
	for _, c := range n.NamedChildren() {
		switch c.Kind() {
		case "using_directive":
			ns.Usings = append(ns.Usings, v.usingDirective(c))
		default:
			ns.Members = append(ns.Members, v.typeMember(c)...)
		}
	}
	return ns
}

func (v *visitor) namespaceDeclaration(n cstree.Node) *ir.Namespace {
	ns := &ir.Namespace{Name: v.textOf(n.ChildByField("name"))}
	ns.SetPos(n.Position())

	body := n.ChildByField("body")
	members := n.NamedChildren()
	if !body.IsZero() {
		members = body.NamedChildren()
	}

	for _, c := range members {
		switch c.Kind() {
		case "qualified_name", "identifier":
			// already captured via the "name" field
		case "using_directive":
			ns.Usings = append(ns.Usings, v.usingDirective(c))
		default:
			ns.Members = append(ns.Members, v.typeMember(c)...)
		}
	}
	return ns
}

func (v *visitor) usingDirective(n cstree.Node) *ir.UsingDirective {
	name := v.textOf(n.ChildByField("name"))
	if name == "" {
		for _, c := range n.NamedChildren() {
			if c.Kind() == "qualified_name" || c.Kind() == "identifier" {
				name = c.Text()
				break
			}
		}
	}
	u := &ir.UsingDirective{Name: name}
	u.SetPos(n.Position())
	return u
}

// typeMember dispatches a namespace-level declaration. It returns a
// slice because one C# field_declaration can declare several variables,
// expanding to several IR members.
func (v *visitor) typeMember(n cstree.Node) []ir.Node {
	switch n.Kind() {
	case "class_declaration":
		return []ir.Node{v.classDeclaration(n)}
	case "interface_declaration":
		return []ir.Node{v.interfaceDeclaration(n)}
	case "field_declaration":
		return v.fieldDeclarations(n)
	default:
		return []ir.Node{v.unknown(n)}
	}
}

// textOf returns a node's exact source text, or "" for a zero node.
func (v *visitor) textOf(n cstree.Node) string {
	if n.IsZero() {
		return ""
	}
	return n.Text()
}

// unknown builds the in-band Unknown fallback and logs the fact at Warn
// level, per the diagnostic contract: Unknown still carries the message
// into the output, logging is purely observability on top of that.
func (v *visitor) unknown(n cstree.Node) *ir.Unknown {
	start, end := n.ByteRange()
	log.WithFields(log.Fields{
		"node_kind":  n.Kind(),
		"byte_range": [2]int{start, end},
	}).Warn("unsupported construct, emitting Unknown node")

	u := &ir.Unknown{Message: n.Kind() + ": " + summarize(n.Text())}
	u.SetPos(n.Position())
	return u
}
