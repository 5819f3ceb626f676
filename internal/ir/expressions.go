package ir

import "strings"

// BinaryExpression is a two-operand operator expression. The Operator
// is the closed BinaryOp enum, not a surface string, so the writers can
// swap lexical forms (`==` → `-eq`) with a single lookup table instead
// of string matching.
type BinaryExpression struct {
	base
	Left     Node
	Operator BinaryOp
	Right    Node
}

func (b *BinaryExpression) String() string {
	return b.Left.String() + " " + b.Operator.String() + " " + b.Right.String()
}

// Argument is one element of an ArgumentList.
type Argument struct {
	base
	Expression Node
}

func (a *Argument) String() string { return a.Expression.String() }

// ArgumentList is a parenthesized, comma-separated argument sequence,
// e.g. the `(1, 2)` in `Foo(1, 2)`.
type ArgumentList struct {
	base
	Arguments []*Argument
}

func (a *ArgumentList) String() string {
	parts := make([]string, len(a.Arguments))
	for i, arg := range a.Arguments {
		parts[i] = arg.String()
	}
	return strings.Join(parts, ", ")
}

// BracketedArgumentList is the `[i, j]` form used by array/indexer
// access.
type BracketedArgumentList struct {
	base
	Arguments []*Argument
}

func (a *BracketedArgumentList) String() string {
	parts := make([]string, len(a.Arguments))
	for i, arg := range a.Arguments {
		parts[i] = arg.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Invocation is a function/method call expression: `expr(args)`.
type Invocation struct {
	base
	Expression Node
	Arguments  *ArgumentList
}

func (i *Invocation) String() string {
	args := ""
	if i.Arguments != nil {
		args = i.Arguments.String()
	}
	return i.Expression.String() + "(" + args + ")"
}

// ObjectCreation is a `new Type(args)` expression.
type ObjectCreation struct {
	base
	Type      string
	Arguments *ArgumentList
}

func (o *ObjectCreation) String() string {
	args := ""
	if o.Arguments != nil {
		args = o.Arguments.String()
	}
	return "new " + o.Type + "(" + args + ")"
}

// ArrayCreation is a `new[] { e1, e2, ... }` or `{ e1, e2 }` array
// initializer.
type ArrayCreation struct {
	base
	Initializer []Node
}

func (a *ArrayCreation) String() string {
	parts := make([]string, len(a.Initializer))
	for i, n := range a.Initializer {
		parts[i] = n.String()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// TypeExpression names a type used as a value position, e.g. the left
// side of a static member access (`Console.WriteLine` — `Console` is a
// TypeExpression, not an IdentifierName, because the writers render
// static access differently from instance access).
type TypeExpression struct {
	base
	TypeName string
}

func (t *TypeExpression) String() string { return t.TypeName }

// MemberAccess is `expr.identifier`. Expression may be a TypeExpression
// (static access) or any other Node (instance access); the writers
// branch on which.
type MemberAccess struct {
	base
	Expression Node
	Identifier string
}

func (m *MemberAccess) String() string { return m.Expression.String() + "." + m.Identifier }

// IdentifierName is a bare name reference.
type IdentifierName struct {
	base
	Name string
}

func (i *IdentifierName) String() string { return i.Name }

// Cast is a C-style cast expression: `(Type)expr`.
type Cast struct {
	base
	Type       string
	Expression Node
}

func (c *Cast) String() string { return "(" + c.Type + ")" + c.Expression.String() }

// Literal is a catch-all token literal (numbers, `true`/`false`/`null`,
// etc.) carried as its exact surface spelling.
type Literal struct {
	base
	Token string
}

func (l *Literal) String() string { return l.Token }

// StringConstant is a non-interpolated string literal.
type StringConstant struct {
	base
	Value string
}

func (s *StringConstant) String() string { return "\"" + s.Value + "\"" }

// TemplateStringConstant is a C# interpolated string (`$"..."`).
type TemplateStringConstant struct {
	base
	Value string
}

func (t *TemplateStringConstant) String() string { return "$\"" + t.Value + "\"" }

// ThisExpression is the bare `this` keyword.
type ThisExpression struct{ base }

func (*ThisExpression) String() string { return "this" }

// ParenthesizedExpression wraps a sub-expression in explicit
// parentheses, preserved so the writers don't need to re-derive
// precedence.
type ParenthesizedExpression struct {
	base
	Operand Node
}

func (p *ParenthesizedExpression) String() string { return "(" + p.Operand.String() + ")" }

// PostfixUnaryExpression and PrefixUnaryExpression only ever represent
// `++` in the reduced IR (per spec: "Unary form is ++ only").
type PostfixUnaryExpression struct {
	base
	Operand Node
}

func (p *PostfixUnaryExpression) String() string { return p.Operand.String() + "++" }

type PrefixUnaryExpression struct {
	base
	Operand Node
}

func (p *PrefixUnaryExpression) String() string { return "++" + p.Operand.String() }

// RawCode is an escape hatch: text the visitor wants to pass through to
// the writer verbatim, with no further interpretation.
type RawCode struct {
	base
	Code string
}

func (r *RawCode) String() string { return r.Code }

// Unknown is the in-band signal for a C# construct this translation
// doesn't support. It is always a leaf (invariant iv in the IR design:
// "Unknown is always a terminal; it never contains children") and its
// Message is rendered directly into the writer's output so a human
// reader can find and fix it — see spec §7, UnsupportedConstruct.
type Unknown struct {
	base
	Message string
}

func (u *Unknown) String() string { return "/* UNSUPPORTED: " + u.Message + " */" }
