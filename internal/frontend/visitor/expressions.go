package visitor

import (
	"strings"
	"unicode"

	"github.com/cwbudde/cs2ps/internal/frontend/cstree"
	"github.com/cwbudde/cs2ps/internal/ir"
)

// expression dispatches one C# expression node kind to its IR form.
// Anything outside the translatable subset (lambdas, LINQ query syntax,
// pattern matching, and the rest of spec's Non-goals) falls through to
// Unknown rather than a panic or a dropped subtree.
func (v *visitor) expression(n cstree.Node) ir.Node {
	if n.IsZero() {
		return &ir.Unknown{Message: "missing expression"}
	}

	switch n.Kind() {
	case "assignment_expression":
		return v.assignmentExpression(n)
	case "binary_expression":
		return v.binaryExpression(n)
	case "invocation_expression":
		return v.invocationExpression(n)
	case "object_creation_expression":
		return v.objectCreationExpression(n)
	case "array_creation_expression", "implicit_array_creation_expression":
		return v.arrayCreationExpression(n)
	case "initializer_expression":
		return v.initializerExpression(n)
	case "member_access_expression":
		return v.memberAccessExpression(n)
	case "identifier":
		id := &ir.IdentifierName{Name: strings.TrimPrefix(n.Text(), "@")}
		id.SetPos(n.Position())
		return id
	case "predefined_type", "generic_name", "qualified_name", "nullable_type", "array_type":
		t := &ir.TypeExpression{TypeName: n.Text()}
		t.SetPos(n.Position())
		return t
	case "cast_expression":
		return v.castExpression(n)
	case "parenthesized_expression":
		return v.parenthesizedExpression(n)
	case "postfix_unary_expression":
		return v.postfixUnaryExpression(n)
	case "prefix_unary_expression":
		return v.prefixUnaryExpression(n)
	case "this_expression":
		t := &ir.ThisExpression{}
		t.SetPos(n.Position())
		return t
	case "integer_literal", "real_literal", "boolean_literal", "null_literal", "character_literal":
		lit := &ir.Literal{Token: n.Text()}
		lit.SetPos(n.Position())
		return lit
	case "string_literal", "verbatim_string_literal":
		s := &ir.StringConstant{Value: unquote(n.Text())}
		s.SetPos(n.Position())
		return s
	case "interpolated_string_expression":
		t := &ir.TemplateStringConstant{Value: unquote(n.Text())}
		t.SetPos(n.Position())
		return t
	default:
		return v.unknown(n)
	}
}

func (v *visitor) assignmentExpression(n cstree.Node) *ir.Assignment {
	left := v.expression(n.ChildByField("left"))
	right := v.expression(n.ChildByField("right"))

	a := &ir.Assignment{Left: left}
	a.SetPos(n.Position())

	op := n.ChildByField("operator").Text()
	if op != "" && op != "=" {
		// A compound operator missing from compoundAssignOps expands with
		// OpUnknown, so the operator is not silently dropped.
		binOp := compoundAssignOps[op]
		// left is reused conceptually (x += y reads x before writing
		// it) but must not be the same node instance in both places —
		// re-visit the child so a.Left and be.Left are distinct nodes.
		be := &ir.BinaryExpression{Left: v.expression(n.ChildByField("left")), Operator: binOp, Right: right}
		be.SetPos(n.Position())
		a.Right = be
		return a
	}
	a.Right = right
	return a
}

func (v *visitor) binaryExpression(n cstree.Node) *ir.BinaryExpression {
	be := &ir.BinaryExpression{
		Left:     v.expression(n.ChildByField("left")),
		Operator: lookupBinaryOp(n.ChildByField("operator").Text()),
		Right:    v.expression(n.ChildByField("right")),
	}
	be.SetPos(n.Position())
	return be
}

func (v *visitor) invocationExpression(n cstree.Node) *ir.Invocation {
	inv := &ir.Invocation{
		Expression: v.expression(n.ChildByField("function")),
		Arguments:  v.argumentList(n.ChildByField("arguments")),
	}
	inv.SetPos(n.Position())
	return inv
}

func (v *visitor) argumentList(n cstree.Node) *ir.ArgumentList {
	al := &ir.ArgumentList{}
	al.SetPos(n.Position())
	for _, c := range n.NamedChildren() {
		if c.Kind() == "argument" {
			al.Arguments = append(al.Arguments, v.argument(c))
		}
	}
	return al
}

func (v *visitor) argument(n cstree.Node) *ir.Argument {
	named := n.NamedChildren()
	var exprNode cstree.Node
	if len(named) > 0 {
		exprNode = named[len(named)-1]
	}
	arg := &ir.Argument{Expression: v.expression(exprNode)}
	arg.SetPos(n.Position())
	return arg
}

func (v *visitor) objectCreationExpression(n cstree.Node) *ir.ObjectCreation {
	oc := &ir.ObjectCreation{Type: v.textOf(n.ChildByField("type"))}
	oc.SetPos(n.Position())
	if args := n.ChildByField("arguments"); !args.IsZero() {
		oc.Arguments = v.argumentList(args)
	}
	return oc
}

func (v *visitor) arrayCreationExpression(n cstree.Node) *ir.ArrayCreation {
	ac := &ir.ArrayCreation{}
	ac.SetPos(n.Position())
	for _, c := range n.NamedChildren() {
		if c.Kind() == "initializer_expression" {
			ac.Initializer = v.initializerElements(c)
		}
	}
	return ac
}

func (v *visitor) initializerExpression(n cstree.Node) *ir.ArrayCreation {
	ac := &ir.ArrayCreation{Initializer: v.initializerElements(n)}
	ac.SetPos(n.Position())
	return ac
}

func (v *visitor) initializerElements(n cstree.Node) []ir.Node {
	var elems []ir.Node
	for _, c := range n.NamedChildren() {
		elems = append(elems, v.expression(c))
	}
	return elems
}

func (v *visitor) memberAccessExpression(n cstree.Node) *ir.MemberAccess {
	ma := &ir.MemberAccess{
		Expression: v.memberQualifier(n.ChildByField("expression")),
		Identifier: v.textOf(n.ChildByField("name")),
	}
	ma.SetPos(n.Position())
	return ma
}

// memberQualifier applies the same no-semantic-analysis heuristic the
// rest of this translation relies on: a bare identifier whose first
// letter is uppercase is treated as a type reference (Console in
// Console.WriteLine) rather than an instance value, since nothing
// downstream resolves symbols.
func (v *visitor) memberQualifier(n cstree.Node) ir.Node {
	switch n.Kind() {
	case "predefined_type", "generic_name", "qualified_name":
		t := &ir.TypeExpression{TypeName: n.Text()}
		t.SetPos(n.Position())
		return t
	case "identifier":
		text := n.Text()
		if len(text) > 0 && unicode.IsUpper(rune(text[0])) {
			t := &ir.TypeExpression{TypeName: text}
			t.SetPos(n.Position())
			return t
		}
	}
	return v.expression(n)
}

func (v *visitor) castExpression(n cstree.Node) *ir.Cast {
	c := &ir.Cast{
		Type:       v.textOf(n.ChildByField("type")),
		Expression: v.expression(n.ChildByField("value")),
	}
	c.SetPos(n.Position())
	return c
}

func (v *visitor) parenthesizedExpression(n cstree.Node) *ir.ParenthesizedExpression {
	var operand cstree.Node
	if named := n.NamedChildren(); len(named) > 0 {
		operand = named[0]
	}
	p := &ir.ParenthesizedExpression{Operand: v.expression(operand)}
	p.SetPos(n.Position())
	return p
}

// postfixUnaryExpression and prefixUnaryExpression only translate `++`
// (per spec: "Unary form is ++ only"); any other unary operator falls
// back to Unknown.
func (v *visitor) postfixUnaryExpression(n cstree.Node) ir.Node {
	if n.ChildByField("operator").Text() != "++" {
		return v.unknown(n)
	}
	p := &ir.PostfixUnaryExpression{Operand: v.expression(n.ChildByField("operand"))}
	p.SetPos(n.Position())
	return p
}

func (v *visitor) prefixUnaryExpression(n cstree.Node) ir.Node {
	if n.ChildByField("operator").Text() != "++" {
		return v.unknown(n)
	}
	p := &ir.PrefixUnaryExpression{Operand: v.expression(n.ChildByField("operand"))}
	p.SetPos(n.Position())
	return p
}

func unquote(text string) string {
	text = strings.TrimPrefix(text, "$")
	text = strings.TrimPrefix(text, "@")
	text = strings.TrimPrefix(text, "\"")
	text = strings.TrimSuffix(text, "\"")
	return text
}
