package visitor

import (
	"github.com/cwbudde/cs2ps/internal/frontend/cstree"
	"github.com/cwbudde/cs2ps/internal/ir"
)

func (v *visitor) block(n cstree.Node) *ir.Block {
	b := &ir.Block{}
	b.SetPos(n.Position())
	for _, c := range n.NamedChildren() {
		if s := v.statement(c); s != nil {
			b.Statements = append(b.Statements, s)
		}
	}
	return b
}

// statement dispatches one C# statement node kind to its IR form. The
// default arm is Unknown, matching the "no node kind is silently
// skipped" invariant from spec §3.
func (v *visitor) statement(n cstree.Node) ir.Node {
	switch n.Kind() {
	case "block":
		return v.block(n)
	case "if_statement":
		return v.ifStatement(n)
	case "for_statement":
		return v.forStatement(n)
	case "foreach_statement":
		return v.forEachStatement(n)
	case "while_statement":
		return v.whileStatement(n)
	case "switch_statement":
		return v.switchStatement(n)
	case "try_statement":
		return v.tryStatement(n)
	case "using_statement":
		return v.usingStatement(n)
	case "throw_statement":
		return v.throwStatement(n)
	case "break_statement":
		br := &ir.Break{}
		br.SetPos(n.Position())
		return br
	case "continue_statement":
		ct := &ir.Continue{}
		ct.SetPos(n.Position())
		return ct
	case "return_statement":
		return v.returnStatement(n)
	case "expression_statement":
		return v.expressionStatement(n)
	case "local_declaration_statement":
		return v.localDeclarationStatement(n)
	case "empty_statement":
		return nil
	default:
		return v.unknown(n)
	}
}

func (v *visitor) ifStatement(n cstree.Node) *ir.If {
	stmt := &ir.If{
		Condition: v.expression(n.ChildByField("condition")),
		Body:      v.statement(n.ChildByField("consequence")),
	}
	stmt.SetPos(n.Position())

	if alt := n.ChildByField("alternative"); !alt.IsZero() {
		body := v.elseBody(alt)
		elseClause := &ir.ElseClause{Body: v.statement(body)}
		elseClause.SetPos(alt.Position())
		stmt.ElseClause = elseClause
	}
	return stmt
}

// elseBody unwraps an `else_clause` wrapper node to the statement it
// actually holds (a chained `if` for `else if`, or a block/statement
// otherwise).
func (v *visitor) elseBody(n cstree.Node) cstree.Node {
	if n.Kind() != "else_clause" {
		return n
	}
	named := n.NamedChildren()
	if len(named) == 0 {
		return cstree.Node{}
	}
	return named[len(named)-1]
}

// forStatement classifies a for-loop's untagged children by position
// relative to the field-tagged condition: everything before it is an
// initializer (or the declaration form), everything after (but before
// the trailing body) is an incrementor.
func (v *visitor) forStatement(n cstree.Node) *ir.For {
	f := &ir.For{}
	f.SetPos(n.Position())

	cond := n.ChildByField("condition")
	if !cond.IsZero() {
		f.Condition = v.expression(cond)
	}

	named := n.NamedChildren()
	if len(named) == 0 {
		return f
	}
	body := named[len(named)-1]
	f.Statement = v.statement(body)

	seenCondition := cond.IsZero()
	for _, c := range named[:len(named)-1] {
		if !seenCondition && c.Equal(cond) {
			seenCondition = true
			continue
		}
		if c.Kind() == "variable_declaration" {
			f.Declaration = v.variableDeclaration(c)
			continue
		}
		if !seenCondition {
			f.Initializers = append(f.Initializers, v.expression(c))
		} else {
			f.Incrementors = append(f.Incrementors, v.expression(c))
		}
	}
	return f
}

func (v *visitor) forEachStatement(n cstree.Node) *ir.ForEach {
	identNode := n.ChildByField("left")
	ident := &ir.IdentifierName{Name: identNode.Text()}
	ident.SetPos(identNode.Position())

	fe := &ir.ForEach{
		Identifier: ident,
		Expression: v.expression(n.ChildByField("right")),
		Statement:  v.statement(n.ChildByField("body")),
	}
	fe.SetPos(n.Position())
	return fe
}

func (v *visitor) whileStatement(n cstree.Node) *ir.While {
	w := &ir.While{
		Condition: v.expression(n.ChildByField("condition")),
		Statement: v.statement(n.ChildByField("body")),
	}
	w.SetPos(n.Position())
	return w
}

func (v *visitor) switchStatement(n cstree.Node) *ir.Switch {
	sw := &ir.Switch{Expression: v.expression(n.ChildByField("value"))}
	sw.SetPos(n.Position())

	for _, c := range n.ChildByField("body").NamedChildren() {
		if c.Kind() == "switch_section" {
			sw.Sections = append(sw.Sections, v.switchSection(c))
		}
	}
	return sw
}

func (v *visitor) switchSection(n cstree.Node) *ir.SwitchSection {
	sec := &ir.SwitchSection{}
	sec.SetPos(n.Position())

	for _, c := range n.NamedChildren() {
		switch c.Kind() {
		case "case_switch_label":
			sec.Labels = append(sec.Labels, v.switchLabelValue(c))
		case "default_switch_label":
			def := &ir.IdentifierName{Name: "default"}
			def.SetPos(c.Position())
			sec.Labels = append(sec.Labels, def)
		default:
			if s := v.statement(c); s != nil {
				sec.Statements = append(sec.Statements, s)
			}
		}
	}
	return sec
}

func (v *visitor) switchLabelValue(n cstree.Node) ir.Node {
	named := n.NamedChildren()
	if len(named) == 0 {
		return v.unknown(n)
	}
	return v.expression(named[0])
}

func (v *visitor) tryStatement(n cstree.Node) *ir.Try {
	t := &ir.Try{Block: v.block(n.ChildByField("body"))}
	t.SetPos(n.Position())

	for _, c := range n.NamedChildren() {
		switch c.Kind() {
		case "catch_clause":
			t.Catches = append(t.Catches, v.catchClause(c))
		case "finally_clause":
			t.Finally = v.finallyClause(c)
		}
	}
	return t
}

func (v *visitor) catchClause(n cstree.Node) *ir.Catch {
	c := &ir.Catch{Block: v.block(n.ChildByField("body"))}
	c.SetPos(n.Position())

	for _, ch := range n.NamedChildren() {
		if ch.Kind() != "catch_declaration" {
			continue
		}
		typ := ch.Text()
		if t := ch.ChildByField("type"); !t.IsZero() {
			typ = t.Text()
		}
		cd := &ir.CatchDeclaration{Type: typ}
		cd.SetPos(ch.Position())
		c.Declaration = cd
	}
	return c
}

func (v *visitor) finallyClause(n cstree.Node) *ir.Finally {
	f := &ir.Finally{Body: v.block(n.ChildByField("body"))}
	f.SetPos(n.Position())
	return f
}

func (v *visitor) usingStatement(n cstree.Node) *ir.Using {
	u := &ir.Using{}
	u.SetPos(n.Position())

	body := n.ChildByField("body")
	for _, c := range n.NamedChildren() {
		if !body.IsZero() && c.Equal(body) {
			continue
		}
		if c.Kind() == "variable_declaration" {
			u.Declaration = v.variableDeclaration(c)
		} else {
			u.Declaration = v.expression(c)
		}
	}
	if !body.IsZero() {
		u.Expression = v.statement(body)
	}
	return u
}

func (v *visitor) throwStatement(n cstree.Node) *ir.Throw {
	t := &ir.Throw{}
	t.SetPos(n.Position())
	if named := n.NamedChildren(); len(named) > 0 {
		t.Operand = v.expression(named[0])
	}
	return t
}

func (v *visitor) returnStatement(n cstree.Node) *ir.Return {
	r := &ir.Return{}
	r.SetPos(n.Position())
	if named := n.NamedChildren(); len(named) > 0 {
		r.Operand = v.expression(named[0])
	}
	return r
}

func (v *visitor) expressionStatement(n cstree.Node) ir.Node {
	named := n.NamedChildren()
	if len(named) == 0 {
		return v.unknown(n)
	}
	return v.expression(named[0])
}

func (v *visitor) localDeclarationStatement(n cstree.Node) ir.Node {
	for _, c := range n.NamedChildren() {
		if c.Kind() == "variable_declaration" {
			return v.variableDeclaration(c)
		}
	}
	return v.unknown(n)
}

func (v *visitor) variableDeclaration(n cstree.Node) *ir.VariableDeclaration {
	vd := &ir.VariableDeclaration{Type: v.textOf(n.ChildByField("type"))}
	vd.SetPos(n.Position())

	for _, c := range n.NamedChildren() {
		if c.Kind() == "variable_declarator" {
			vd.Variables = append(vd.Variables, v.variableDeclarator(c))
		}
	}
	return vd
}

func (v *visitor) variableDeclarator(n cstree.Node) *ir.VariableDeclarator {
	named := n.NamedChildren()
	d := &ir.VariableDeclarator{}
	d.SetPos(n.Position())

	if nameNode := n.ChildByField("name"); !nameNode.IsZero() {
		d.Name = nameNode.Text()
	} else if len(named) > 0 {
		d.Name = named[0].Text()
	}

	if value := n.ChildByField("value"); !value.IsZero() {
		d.Initializer = v.expression(value)
	} else if len(named) > 1 {
		d.Initializer = v.expression(named[len(named)-1])
	}
	return d
}
