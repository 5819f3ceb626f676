package writer

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/cwbudde/cs2ps/internal/ir"
)

// FunctionWriter is the PowerShell "function" dialect: script-style
// output where each method becomes a `function Name { ... }` block. The
// namespace and class declarations around those functions keep the
// embedded writer's C-style `namespace N { ... }` / `class C { ... }`
// wrappers. It embeds Base and overrides only the variants that diverge
// from the C-style default; everything else (Block, loops, Try,
// Finally, ...) falls through to the embedded writer.
type FunctionWriter struct {
	*Base

	// inSwitch suppresses Break emission: PowerShell's switch has no
	// fall-through to break out of, so a translated `break;` inside a
	// switch section is a no-op rather than a syntax error waiting to
	// happen.
	inSwitch bool
}

// NewFunctionWriter constructs the function-dialect writer.
func NewFunctionWriter(indentUnit string) *FunctionWriter {
	w := &FunctionWriter{}
	w.Base = NewBase(w, ir.PowerShell, indentUnit)
	w.operatorMap = powerShellOperatorMap()
	return w
}

func powerShellOperatorMap() map[ir.BinaryOp]string {
	return map[ir.BinaryOp]string{
		ir.OpEqual:              " -eq ",
		ir.OpNotEqual:           " -ne ",
		ir.OpNot:                "-not ",
		ir.OpGreaterThan:        " -gt ",
		ir.OpGreaterThanEqualTo: " -ge ",
		ir.OpLessThan:           " -lt ",
		ir.OpLessThanEqualTo:    " -le ",
		ir.OpOr:                 " -or ",
		ir.OpAnd:                " -and ",
		ir.OpBor:                " -bor ",
		ir.OpMinus:              " - ",
		ir.OpPlus:               " + ",
	}
}

// psType rewrites a C# type token into the bracketed PowerShell type
// literal form, e.g. "List<int>" -> "[List[int]]".
func psType(csType string) string {
	r := strings.NewReplacer("<", "[", ">", "]")
	return "[" + r.Replace(csType) + "]"
}

func (w *FunctionWriter) visit(n ir.Node) {
	switch node := n.(type) {
	case *ir.Cast:
		w.append(psType(node.Type))
		w.self.visit(node.Expression)
	case *ir.CatchDeclaration:
		w.append(psType(node.Type))
	case *ir.Catch:
		w.append("catch ")
		if node.Declaration != nil {
			w.self.visit(node.Declaration)
			w.append(" ")
		}
		w.append("{")
		w.indent()
		w.newline()
		w.self.visit(node.Block)
		w.closeBrace()
	case *ir.IdentifierName:
		w.append(identifierToken(node.Name))
	case *ir.Literal:
		w.visitLiteralPS(node)
	case *ir.MemberAccess:
		w.visitMemberAccessPS(node)
	case *ir.MethodDeclaration:
		w.visitMethodDeclarationPS(node)
	case *ir.ObjectCreation:
		w.visitObjectCreationPS(node)
	case *ir.Parameter:
		w.append(w.parameterStringPS(node))
	case *ir.StringConstant:
		w.append("'" + node.Value + "'")
	case *ir.ArrayCreation:
		w.visitArrayCreationPS(node)
	case *ir.Switch:
		w.visitSwitchPS(node)
	case *ir.Break:
		if !w.inSwitch {
			w.append("break;")
		}
	case *ir.Using:
		w.visitUsingPS(node)
	case *ir.VariableDeclaration:
		w.visitVariableDeclarationPS(node)
	case *ir.VariableDeclarator:
		w.visitVariableDeclaratorPS(node)
	case *ir.If:
		w.visitIfPS(node)
	case *ir.ElseClause:
		w.visitElseClausePS(node)
	default:
		w.Base.visit(n)
	}
}

// identifierToken applies the `$`-prefix and the bare-name `this.`
// heuristic decided for every bare identifier reference (the end-to-end
// scenarios require it for lowercase locals too, not just
// uppercase/underscore-leading names — see DESIGN.md).
func identifierToken(name string) string {
	name = strings.TrimPrefix(name, "@")
	return "$this." + name
}

func (w *FunctionWriter) visitLiteralPS(n *ir.Literal) {
	switch n.Token {
	case "true":
		w.append("$true")
	case "false":
		w.append("$false")
	case "null":
		w.append("$null")
	default:
		w.append(n.Token)
	}
}

func (w *FunctionWriter) visitMemberAccessPS(n *ir.MemberAccess) {
	if t, ok := n.Expression.(*ir.TypeExpression); ok {
		w.append("[" + t.TypeName + "]::" + n.Identifier)
		return
	}
	w.self.visit(n.Expression)
	w.append("." + n.Identifier)
}

func (w *FunctionWriter) visitMethodDeclarationPS(n *ir.MethodDeclaration) {
	if isPInvoke(n) {
		w.visitPInvokeMethod(n)
		return
	}

	w.append("function " + n.Name + " {")
	w.indent()
	if len(n.Parameters) > 0 {
		w.newline()
		w.append("param(")
		for i, p := range n.Parameters {
			if i > 0 {
				w.append(", ")
			}
			w.append(w.parameterStringPS(p))
		}
		w.append(")")
	}
	if n.Body != nil {
		w.newline()
		w.self.visit(n.Body)
	}
	w.closeBrace()
}

func isPInvoke(n *ir.MethodDeclaration) bool {
	if n.Body != nil {
		return false
	}
	hasExtern := false
	for _, m := range n.Modifiers {
		if m == "extern" {
			hasExtern = true
		}
	}
	if !hasExtern {
		return false
	}
	for _, a := range n.Attributes {
		if a.Name == "DllImport" {
			return true
		}
	}
	return false
}

// visitPInvokeMethod renders the Add-Type-wrapped native declaration
// plus a forwarding call site, per the P/Invoke contract: the writer
// cannot reconstruct marshalling attributes from the IR, so it falls
// back to the preserved original declaration text verbatim.
func (w *FunctionWriter) visitPInvokeMethod(n *ir.MethodDeclaration) {
	pos := n.Pos()
	log.WithFields(log.Fields{
		"node_kind":  "MethodDeclaration",
		"byte_range": [2]int{pos.Offset, pos.Offset},
	}).Warn("rendering extern method as Add-Type P/Invoke forward")

	w.append(`Add-Type -TypeDefinition '`)
	w.append("public static class PInvoke {")
	for _, line := range strings.Split(n.OriginalSource, "\n") {
		w.append("\n    " + strings.TrimRight(line, "\r"))
	}
	w.append("\n}'")
	w.newline()
	w.append("function " + n.Name + " {")
	w.indent()
	if len(n.Parameters) > 0 {
		w.newline()
		w.append("param(")
		for i, p := range n.Parameters {
			if i > 0 {
				w.append(", ")
			}
			w.append(w.parameterStringPS(p))
		}
		w.append(")")
	}
	w.newline()
	w.append("[PInvoke]::" + n.Name + "(")
	for i, p := range n.Parameters {
		if i > 0 {
			w.append(", ")
		}
		w.append("$" + p.Name)
	}
	w.append(")")
	w.closeBrace()
}

func (w *FunctionWriter) parameterStringPS(p *ir.Parameter) string {
	var out strings.Builder
	for _, m := range p.Modifiers {
		if m == "ref" || m == "out" {
			out.WriteString("[ref] ")
		}
	}
	if p.Type != "" {
		out.WriteString(psType(p.Type))
	}
	out.WriteString("$" + p.Name)
	return out.String()
}

func (w *FunctionWriter) visitObjectCreationPS(n *ir.ObjectCreation) {
	if n.Arguments == nil || len(n.Arguments.Arguments) == 0 {
		w.append("(New-Object -TypeName " + n.Type + ")")
		return
	}
	w.append("(New-Object -TypeName " + n.Type + " -ArgumentList ")
	for i, a := range n.Arguments.Arguments {
		if i > 0 {
			w.append(",")
		}
		w.self.visit(a)
	}
	w.append(")")
}

func (w *FunctionWriter) visitArrayCreationPS(n *ir.ArrayCreation) {
	w.append("@(")
	for i, e := range n.Initializer {
		if i > 0 {
			w.append(", ")
		}
		w.self.visit(e)
	}
	w.append(")")
}

func (w *FunctionWriter) visitSwitchPS(n *ir.Switch) {
	w.append("switch (")
	w.self.visit(n.Expression)
	w.append(") {")
	w.indent()
	wasInSwitch := w.inSwitch
	w.inSwitch = true
	for _, sec := range n.Sections {
		w.newline()
		w.visitSwitchSectionPS(sec)
	}
	w.inSwitch = wasInSwitch
	w.closeBrace()
}

func (w *FunctionWriter) visitSwitchSectionPS(n *ir.SwitchSection) {
	for i, l := range n.Labels {
		if i > 0 {
			w.newline()
		}
		if isDefaultLabel(l) {
			w.append("default")
		} else {
			w.self.visit(l)
		}
	}
	w.append(" {")
	w.indent()
	for _, s := range n.Statements {
		w.newline()
		before := w.builder.Len()
		w.self.visit(s)
		if w.builder.Len() == before {
			continue
		}
		b := w.lastByte()
		if b != '}' && b != ';' {
			w.append(";")
		}
	}
	w.closeBrace()
}

// visitUsingPS lowers the resource-scope statement into a
// pre-declared-null / try / finally triple, per the documented
// end-to-end scenario: the resource variable must exist before the try
// so the finally block can dereference it even if construction failed.
func (w *FunctionWriter) visitUsingPS(n *ir.Using) {
	decl, ok := n.Declaration.(*ir.VariableDeclaration)
	if !ok {
		w.append("try {")
		w.indent()
		w.newline()
		w.asBlock(n.Expression)
		w.closeBrace()
		w.append(" finally {")
		w.indent()
		w.newline()
		w.self.visit(n.Declaration)
		w.append(".Dispose()")
		w.closeBrace()
		return
	}

	for _, v := range decl.Variables {
		w.append("$" + v.Name + " = $null")
		w.newline()
	}
	w.append("try {")
	w.indent()
	w.newline()
	for i, v := range decl.Variables {
		if i > 0 {
			w.newline()
		}
		w.append("$" + v.Name + " = ")
		if v.Initializer != nil {
			w.self.visit(v.Initializer)
		}
	}
	w.newline()
	w.asBlock(n.Expression)
	w.closeBrace()
	w.append(" finally {")
	w.indent()
	w.newline()
	for i, v := range decl.Variables {
		if i > 0 {
			w.newline()
		}
		w.append("$" + v.Name + ".Dispose()")
	}
	w.closeBrace()
}

func (w *FunctionWriter) visitVariableDeclarationPS(n *ir.VariableDeclaration) {
	for i, v := range n.Variables {
		if i > 0 {
			w.append(";")
			w.newline()
		}
		if n.Type != "" {
			w.append(psType(n.Type))
		}
		w.self.visit(v)
	}
}

func (w *FunctionWriter) visitVariableDeclaratorPS(n *ir.VariableDeclarator) {
	w.append("$" + n.Name)
	if n.Initializer != nil {
		w.append(" = ")
		w.self.visit(n.Initializer)
	}
}

func (w *FunctionWriter) visitIfPS(n *ir.If) {
	w.append("if (")
	w.self.visit(n.Condition)
	w.append(") {")
	w.indent()
	w.newline()
	w.asBlock(n.Body)
	w.closeBrace()
	if n.ElseClause != nil {
		w.append(" ")
		w.self.visit(n.ElseClause)
	}
}

func (w *FunctionWriter) visitElseClausePS(n *ir.ElseClause) {
	if _, ok := n.Body.(*ir.If); ok {
		w.append("else ")
		w.self.visit(n.Body)
		return
	}
	w.append("else {")
	w.indent()
	w.newline()
	w.asBlock(n.Body)
	w.closeBrace()
}
