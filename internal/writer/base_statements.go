package writer

import "github.com/cwbudde/cs2ps/internal/ir"

func (w *Base) visitBlock(n *ir.Block) {
	for i, s := range n.Statements {
		if i > 0 {
			w.newline()
		}
		w.self.visit(s)
		if w.terminateStatementWithSemicolon {
			b := w.lastByte()
			if b != '}' && b != ';' {
				w.append(";")
			}
		}
	}
}

// asBlock renders stmt as a brace-delimited block even when the C#
// source used a braceless single-statement body, so every dialect sees
// a uniform "{ ... }" shape to reformat.
func (w *Base) asBlock(stmt ir.Node) {
	if block, ok := stmt.(*ir.Block); ok {
		w.self.visit(block)
		return
	}
	w.self.visit(stmt)
}

func (w *Base) visitIf(n *ir.If) {
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

func (w *Base) visitElseClause(n *ir.ElseClause) {
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

func (w *Base) visitFor(n *ir.For) {
	w.append("for (")
	if n.Declaration != nil {
		w.self.visit(n.Declaration)
		w.trimEnd(";")
	} else {
		w.writeExpressionList(n.Initializers)
	}
	w.append("; ")
	if n.Condition != nil {
		w.self.visit(n.Condition)
	}
	w.append("; ")
	w.writeExpressionList(n.Incrementors)
	w.append(") {")
	w.indent()
	w.newline()
	w.asBlock(n.Statement)
	w.closeBrace()
}

func (w *Base) writeExpressionList(nodes []ir.Node) {
	for i, e := range nodes {
		if i > 0 {
			w.append(", ")
		}
		w.self.visit(e)
	}
}

func (w *Base) visitForEach(n *ir.ForEach) {
	w.append("foreach (")
	w.self.visit(n.Identifier)
	w.append(" in ")
	w.self.visit(n.Expression)
	w.append(") {")
	w.indent()
	w.newline()
	w.asBlock(n.Statement)
	w.closeBrace()
}

func (w *Base) visitWhile(n *ir.While) {
	w.append("while (")
	w.self.visit(n.Condition)
	w.append(") {")
	w.indent()
	w.newline()
	w.asBlock(n.Statement)
	w.closeBrace()
}

func (w *Base) visitSwitch(n *ir.Switch) {
	w.append("switch (")
	w.self.visit(n.Expression)
	w.append(") {")
	w.indent()
	for _, sec := range n.Sections {
		w.newline()
		w.self.visit(sec)
	}
	w.closeBrace()
}

func (w *Base) visitSwitchSectionCStyle(n *ir.SwitchSection) {
	for _, l := range n.Labels {
		if isDefaultLabel(l) {
			w.append("default:")
		} else {
			w.append("case ")
			w.self.visit(l)
			w.append(":")
		}
		w.newline()
	}
	w.indent()
	for i, s := range n.Statements {
		if i > 0 {
			w.newline()
		}
		w.self.visit(s)
		b := w.lastByte()
		if b != '}' && b != ';' {
			w.append(";")
		}
	}
	w.outdent()
}

func isDefaultLabel(n ir.Node) bool {
	id, ok := n.(*ir.IdentifierName)
	return ok && id.Name == "default"
}

func (w *Base) visitTry(n *ir.Try) {
	w.append("try {")
	w.indent()
	w.newline()
	w.self.visit(n.Block)
	w.closeBrace()
	for _, c := range n.Catches {
		w.append(" ")
		w.self.visit(c)
	}
	if n.Finally != nil {
		w.append(" ")
		w.self.visit(n.Finally)
	}
}

func (w *Base) visitCatch(n *ir.Catch) {
	w.append("catch ")
	if n.Declaration != nil {
		w.append("(")
		w.self.visit(n.Declaration)
		w.append(") ")
	}
	w.append("{")
	w.indent()
	w.newline()
	w.self.visit(n.Block)
	w.closeBrace()
}

// visitUsing lowers the resource-scope `using (decl) stmt` form into a
// try/finally, since neither target dialect has a native resource-scope
// construct. Both PowerShell dialects replace it with
// FunctionWriter.visitUsingPS.
func (w *Base) visitUsing(n *ir.Using) {
	w.append("try {")
	w.indent()
	w.newline()
	w.asBlock(n.Expression)
	w.closeBrace()
	w.append(" finally {")
	w.indent()
	w.newline()
	if decl, ok := n.Declaration.(*ir.VariableDeclaration); ok {
		for i, v := range decl.Variables {
			if i > 0 {
				w.newline()
			}
			w.append(v.Name + ".Dispose();")
		}
	} else {
		w.self.visit(n.Declaration)
		w.append(".Dispose();")
	}
	w.closeBrace()
}

func (w *Base) visitThrow(n *ir.Throw) {
	if n.Operand == nil {
		w.append("throw;")
		return
	}
	w.append("throw ")
	w.self.visit(n.Operand)
	w.append(";")
}

func (w *Base) visitReturn(n *ir.Return) {
	if n.Operand == nil {
		w.append("return;")
		return
	}
	w.append("return ")
	w.self.visit(n.Operand)
	w.append(";")
}

func (w *Base) visitAssignment(n *ir.Assignment) {
	w.self.visit(n.Left)
	w.append(" = ")
	w.self.visit(n.Right)
	w.append(";")
}

func (w *Base) visitVariableDeclaration(n *ir.VariableDeclaration) {
	w.append(n.Type + " ")
	for i, v := range n.Variables {
		if i > 0 {
			w.append(", ")
		}
		w.self.visit(v)
	}
	w.append(";")
}

func (w *Base) visitVariableDeclarator(n *ir.VariableDeclarator) {
	w.append(n.Name)
	if n.Initializer != nil {
		w.append(" = ")
		w.self.visit(n.Initializer)
	}
}
