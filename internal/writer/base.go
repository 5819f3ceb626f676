// Package writer consumes an internal/ir tree and emits formatted
// target-language text. Base implements C-style (brace-and-semicolon)
// default emission for every IR node kind; the PowerShell function and
// type writers specialize it by overriding the variants that differ.
//
// Go has no inheritance, so "override" here means composition plus a
// self-reference: Base holds a `self` interface pointing at whichever
// concrete dialect struct embeds it, and every recursive descent goes
// through self.visit rather than Base's own visit, so a dialect's
// override of, say, identifiers is honored even when it's reached from
// inside Base's default If/For/Block handling.
package writer

import (
	"strings"

	"github.com/cwbudde/cs2ps/internal/ir"
)

// dialect is the "virtual dispatch" seam: whichever struct embeds Base
// assigns itself here so recursive visits resolve to its overrides.
type dialect interface {
	visit(n ir.Node)
}

// Base is the C-style writer described in spec §4.2. It is never used
// standalone in this module (both shipped dialects are PowerShell), but
// it carries all the shared formatting machinery and the default
// rendering for every IR variant neither PowerShell dialect overrides.
type Base struct {
	self dialect

	builder     strings.Builder
	indentDepth int
	indentUnit  string

	operatorMap map[ir.BinaryOp]string

	// terminateStatementWithSemicolon, when true, makes Block append
	// ";" after each statement whose last emitted character is neither
	// "}" nor ";". Both PowerShell dialects leave this false.
	terminateStatementWithSemicolon bool

	language ir.Language
}

// NewBase constructs a Base writer. self must be the outermost dialect
// struct (the one embedding this Base, directly or transitively) so
// that recursive visits dispatch through its overrides.
func NewBase(self dialect, language ir.Language, indentUnit string) *Base {
	if indentUnit == "" {
		indentUnit = "    "
	}
	return &Base{
		self:        self,
		indentUnit:  indentUnit,
		operatorMap: cloneOperatorMap(defaultOperatorMap),
		language:    language,
	}
}

var defaultOperatorMap = map[ir.BinaryOp]string{
	ir.OpEqual:              " == ",
	ir.OpNotEqual:           " != ",
	ir.OpNot:                "!",
	ir.OpGreaterThan:        " > ",
	ir.OpGreaterThanEqualTo: " >= ",
	ir.OpLessThan:           " < ",
	ir.OpLessThanEqualTo:    " <= ",
	ir.OpOr:                 " || ",
	ir.OpAnd:                " && ",
	ir.OpBor:                " | ",
	ir.OpMinus:              " - ",
	ir.OpPlus:               " + ",
}

func cloneOperatorMap(src map[ir.BinaryOp]string) map[ir.BinaryOp]string {
	dst := make(map[ir.BinaryOp]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Write resets the writer's mutable state and renders root. It is the
// single public entry point spec §4.2 describes; dialects never
// override it, only the visit chain it drives.
func (w *Base) Write(root ir.Node) string {
	w.builder.Reset()
	w.indentDepth = 0
	w.self.visit(root)
	return w.builder.String()
}

func (w *Base) append(s string) { w.builder.WriteString(s) }

// newline emits the line separator followed by the current indent
// depth's worth of indent unit.
func (w *Base) newline() {
	w.builder.WriteByte('\n')
	w.builder.WriteString(strings.Repeat(w.indentUnit, w.indentDepth))
}

func (w *Base) indent() { w.indentDepth++ }

func (w *Base) outdent() {
	if w.indentDepth > 0 {
		w.indentDepth--
	}
}

// closeBrace emits a newline at the depth one level shallower than the
// block just closed, followed by "}". This replaces the original
// design's "outdent() trims trailing indent whitespace from the
// builder" coupling (flagged in spec's design notes as implicit and
// better expressed explicitly) with a primitive that needs no builder
// surgery: outdent() is a pure depth decrement, and closeBrace owns the
// newline-then-brace emission.
func (w *Base) closeBrace() {
	w.outdent()
	w.newline()
	w.append("}")
}

// trimEnd removes the given exact suffix from the end of the builder's
// current contents, if present. visitFor uses it to drop the ";" a
// VariableDeclaration appends, so the for-header keeps one separator.
func (w *Base) trimEnd(suffix string) {
	s := w.builder.String()
	if strings.HasSuffix(s, suffix) {
		w.builder.Reset()
		w.builder.WriteString(s[:len(s)-len(suffix)])
	}
}

func (w *Base) lastByte() byte {
	s := w.builder.String()
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// visit is Base's default dispatch: a type switch covering every IR
// node kind (spec invariant ii: "no node kind is silently skipped").
// Dialects override by implementing their own visit method with a
// switch over the kinds they specialize and a default case that calls
// back into the embedded writer's visit for everything else.
func (w *Base) visit(n ir.Node) {
	if n == nil {
		return
	}
	switch node := n.(type) {
	case *ir.Namespace:
		w.visitNamespace(node)
	case *ir.UsingDirective:
		w.visitUsingDirective(node)
	case *ir.ClassDeclaration:
		w.visitClassDeclaration(node)
	case *ir.InterfaceDeclaration:
		w.visitInterfaceDeclaration(node)
	case *ir.MethodDeclaration:
		w.visitMethodDeclaration(node)
	case *ir.Constructor:
		w.visitConstructor(node)
	case *ir.PropertyDeclaration:
		w.visitPropertyDeclaration(node)
	case *ir.FieldDeclaration:
		w.visitFieldDeclaration(node)
	case *ir.Parameter:
		w.append(w.parameterString(node))
	case *ir.Attribute:
		w.visitAttribute(node)
	case *ir.AttributeArgument:
		w.self.visit(node.Expression)
	case *ir.Block:
		w.visitBlock(node)
	case *ir.If:
		w.visitIf(node)
	case *ir.ElseClause:
		w.visitElseClause(node)
	case *ir.For:
		w.visitFor(node)
	case *ir.ForEach:
		w.visitForEach(node)
	case *ir.While:
		w.visitWhile(node)
	case *ir.Switch:
		w.visitSwitch(node)
	case *ir.SwitchSection:
		w.visitSwitchSectionCStyle(node)
	case *ir.Try:
		w.visitTry(node)
	case *ir.Catch:
		w.visitCatch(node)
	case *ir.CatchDeclaration:
		w.append(node.Type)
	case *ir.Finally:
		w.append("finally {")
		w.indent()
		w.self.visit(node.Body)
		w.closeBrace()
	case *ir.Using:
		w.visitUsing(node)
	case *ir.Throw:
		w.visitThrow(node)
	case *ir.Break:
		w.append("break;")
	case *ir.Continue:
		w.append("continue;")
	case *ir.Return:
		w.visitReturn(node)
	case *ir.Assignment:
		w.visitAssignment(node)
	case *ir.VariableDeclaration:
		w.visitVariableDeclaration(node)
	case *ir.VariableDeclarator:
		w.visitVariableDeclarator(node)
	case *ir.BinaryExpression:
		w.visitBinaryExpression(node)
	case *ir.Invocation:
		w.visitInvocation(node)
	case *ir.ObjectCreation:
		w.visitObjectCreation(node)
	case *ir.ArrayCreation:
		w.visitArrayCreation(node)
	case *ir.MemberAccess:
		w.visitMemberAccess(node)
	case *ir.IdentifierName:
		w.append(node.Name)
	case *ir.TypeExpression:
		w.append(node.TypeName)
	case *ir.Cast:
		w.visitCast(node)
	case *ir.Literal:
		w.append(node.Token)
	case *ir.StringConstant:
		w.append("\"" + node.Value + "\"")
	case *ir.TemplateStringConstant:
		w.append("$\"" + node.Value + "\"")
	case *ir.ThisExpression:
		w.append("this")
	case *ir.ParenthesizedExpression:
		w.append("(")
		w.self.visit(node.Operand)
		w.append(")")
	case *ir.PostfixUnaryExpression:
		w.self.visit(node.Operand)
		w.append("++")
	case *ir.PrefixUnaryExpression:
		w.append("++")
		w.self.visit(node.Operand)
	case *ir.Argument:
		w.self.visit(node.Expression)
	case *ir.ArgumentList:
		w.visitArgumentList(node)
	case *ir.BracketedArgumentList:
		w.visitBracketedArgumentList(node)
	case *ir.RawCode:
		w.append(node.Code)
	case *ir.Unknown:
		w.append("/* UNSUPPORTED: " + node.Message + " */")
	default:
		w.append("/* UNSUPPORTED: unrecognized node */")
	}
}
