package writer

import "github.com/cwbudde/cs2ps/internal/ir"

func (w *Base) visitBinaryExpression(n *ir.BinaryExpression) {
	w.self.visit(n.Left)
	if op, ok := w.operatorMap[n.Operator]; ok {
		w.append(op)
	} else {
		w.append(" " + n.Operator.String() + " ")
	}
	w.self.visit(n.Right)
}

func (w *Base) visitInvocation(n *ir.Invocation) {
	w.self.visit(n.Expression)
	w.append("(")
	if n.Arguments != nil {
		w.self.visit(n.Arguments)
	}
	w.append(")")
}

func (w *Base) visitObjectCreation(n *ir.ObjectCreation) {
	w.append("new " + n.Type + "(")
	if n.Arguments != nil {
		w.self.visit(n.Arguments)
	}
	w.append(")")
}

func (w *Base) visitArrayCreation(n *ir.ArrayCreation) {
	w.append("{ ")
	for i, e := range n.Initializer {
		if i > 0 {
			w.append(", ")
		}
		w.self.visit(e)
	}
	w.append(" }")
}

func (w *Base) visitMemberAccess(n *ir.MemberAccess) {
	w.self.visit(n.Expression)
	w.append("." + n.Identifier)
}

func (w *Base) visitCast(n *ir.Cast) {
	w.append("(" + n.Type + ")")
	w.self.visit(n.Expression)
}

func (w *Base) visitArgumentList(n *ir.ArgumentList) {
	for i, a := range n.Arguments {
		if i > 0 {
			w.append(", ")
		}
		w.self.visit(a)
	}
}

func (w *Base) visitBracketedArgumentList(n *ir.BracketedArgumentList) {
	w.append("[")
	for i, a := range n.Arguments {
		if i > 0 {
			w.append(", ")
		}
		w.self.visit(a)
	}
	w.append("]")
}
