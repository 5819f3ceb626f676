package writer

import (
	"strings"

	"github.com/cwbudde/cs2ps/internal/ir"
)

func (w *Base) visitNamespace(n *ir.Namespace) {
	w.append("namespace " + n.Name + " {")
	w.indent()
	for _, u := range n.Usings {
		w.newline()
		w.self.visit(u)
	}
	for _, m := range n.Members {
		w.newline()
		w.self.visit(m)
	}
	w.closeBrace()
}

func (w *Base) visitUsingDirective(n *ir.UsingDirective) {
	w.append("using " + n.Name + ";")
}

func (w *Base) visitClassDeclaration(n *ir.ClassDeclaration) {
	w.visitTypeDeclaration("class", n.Name, n.Bases, n.Members)
}

func (w *Base) visitInterfaceDeclaration(n *ir.InterfaceDeclaration) {
	w.visitTypeDeclaration("interface", n.Name, n.Bases, n.Members)
}

func (w *Base) visitTypeDeclaration(keyword, name string, bases []string, members []ir.Node) {
	w.append(keyword + " " + name)
	if len(bases) > 0 {
		w.append(" : " + strings.Join(bases, ", "))
	}
	w.append(" {")
	w.indent()
	for _, m := range members {
		w.newline()
		w.self.visit(m)
	}
	w.closeBrace()
}

func (w *Base) visitAttribute(n *ir.Attribute) {
	w.append("[" + n.Name)
	if len(n.Arguments) > 0 {
		w.append("(")
		for i, a := range n.Arguments {
			if i > 0 {
				w.append(", ")
			}
			w.self.visit(a)
		}
		w.append(")")
	}
	w.append("]")
}

func (w *Base) visitMethodDeclaration(n *ir.MethodDeclaration) {
	if len(n.Modifiers) > 0 {
		w.append(strings.Join(n.Modifiers, " ") + " ")
	}
	w.append(n.ReturnType + " " + n.Name + "(")
	w.writeParameters(n.Parameters)
	w.append(")")
	if n.Body != nil {
		w.append(" {")
		w.indent()
		w.self.visit(n.Body)
		w.closeBrace()
	} else {
		w.append(";")
	}
}

func (w *Base) writeParameters(params []*ir.Parameter) {
	for i, p := range params {
		if i > 0 {
			w.append(", ")
		}
		w.append(w.parameterString(p))
	}
}

func (w *Base) parameterString(p *ir.Parameter) string {
	prefix := ""
	if len(p.Modifiers) > 0 {
		prefix = strings.Join(p.Modifiers, " ") + " "
	}
	return prefix + p.Type + " " + p.Name
}

func (w *Base) visitConstructor(n *ir.Constructor) {
	w.append(n.Identifier + "(")
	if n.ArgumentList != nil {
		w.self.visit(n.ArgumentList)
	}
	w.append(")")
	if n.Body != nil {
		w.append(" {")
		w.indent()
		w.self.visit(n.Body)
		w.closeBrace()
	}
}

func (w *Base) visitPropertyDeclaration(n *ir.PropertyDeclaration) {
	if len(n.Modifiers) > 0 {
		w.append(strings.Join(n.Modifiers, " ") + " ")
	}
	w.append(n.Type + " " + n.Name + " { get; set; }")
}

func (w *Base) visitFieldDeclaration(n *ir.FieldDeclaration) {
	if len(n.Modifiers) > 0 {
		w.append(strings.Join(n.Modifiers, " ") + " ")
	}
	w.append(n.Type + " " + n.Name + ";")
}
