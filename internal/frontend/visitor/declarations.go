package visitor

import (
	"github.com/cwbudde/cs2ps/internal/frontend/cstree"
	"github.com/cwbudde/cs2ps/internal/ir"
)

var modifierKeywords = map[string]bool{
	"public": true, "private": true, "protected": true, "internal": true,
	"static": true, "abstract": true, "sealed": true, "partial": true,
	"readonly": true, "virtual": true, "override": true, "extern": true,
	"new": true, "unsafe": true, "async": true, "const": true, "volatile": true,
}

// modifiers scans a declaration's direct children for modifier keyword
// tokens. These arrive as anonymous (unnamed) leaf nodes in the
// concrete tree, so this walks Child() rather than NamedChildren().
func (v *visitor) modifiers(n cstree.Node) []string {
	var mods []string
	for i := 0; i < n.ChildCount(); i++ {
		if k := n.Child(i).Kind(); modifierKeywords[k] {
			mods = append(mods, k)
		}
	}
	return mods
}

func (v *visitor) attributes(n cstree.Node) []*ir.Attribute {
	var attrs []*ir.Attribute
	for _, c := range n.NamedChildren() {
		if c.Kind() != "attribute_list" {
			continue
		}
		for _, a := range c.NamedChildren() {
			if a.Kind() == "attribute" {
				attrs = append(attrs, v.attribute(a))
			}
		}
	}
	return attrs
}

func (v *visitor) attribute(n cstree.Node) *ir.Attribute {
	attr := &ir.Attribute{Name: v.textOf(n.ChildByField("name"))}
	attr.SetPos(n.Position())

	argList := n.ChildByField("argument_list")
	for _, a := range argList.NamedChildren() {
		if a.Kind() != "attribute_argument" {
			continue
		}
		arg := &ir.AttributeArgument{Expression: v.attributeArgument(a)}
		arg.SetPos(a.Position())
		attr.Arguments = append(attr.Arguments, arg)
	}
	return attr
}

// attributeArgument handles both positional arguments and named ones
// (`SupportPaging = true`), the latter carrying a `name_equals` child.
// Per the decided rendering (SPEC_FULL §3), named arguments become a
// plain Assignment so the ordinary expression writer serializes them.
func (v *visitor) attributeArgument(n cstree.Node) ir.Node {
	var nameEquals cstree.Node
	for _, c := range n.NamedChildren() {
		if c.Kind() == "name_equals" {
			nameEquals = c
			break
		}
	}

	named := n.NamedChildren()
	var value cstree.Node
	if len(named) > 0 {
		value = named[len(named)-1]
	}

	if !nameEquals.IsZero() {
		nameText := ""
		if nc := nameEquals.NamedChildren(); len(nc) > 0 {
			nameText = nc[0].Text()
		}
		left := &ir.IdentifierName{Name: nameText}
		left.SetPos(nameEquals.Position())

		asg := &ir.Assignment{Left: left, Right: v.expression(value)}
		asg.SetPos(n.Position())
		return asg
	}

	return v.expression(value)
}

func (v *visitor) baseList(n cstree.Node) []string {
	var bases []string
	for _, c := range n.NamedChildren() {
		bases = append(bases, c.Text())
	}
	return bases
}

func (v *visitor) classDeclaration(n cstree.Node) *ir.ClassDeclaration {
	c := &ir.ClassDeclaration{
		Name:       v.textOf(n.ChildByField("name")),
		Modifiers:  v.modifiers(n),
		Attributes: v.attributes(n),
		Bases:      v.baseList(n.ChildByField("bases")),
	}
	c.SetPos(n.Position())
	c.Members = v.classMembers(n.ChildByField("body"))
	return c
}

func (v *visitor) interfaceDeclaration(n cstree.Node) *ir.InterfaceDeclaration {
	i := &ir.InterfaceDeclaration{
		Name:       v.textOf(n.ChildByField("name")),
		Modifiers:  v.modifiers(n),
		Attributes: v.attributes(n),
		Bases:      v.baseList(n.ChildByField("bases")),
	}
	i.SetPos(n.Position())
	i.Members = v.classMembers(n.ChildByField("body"))
	return i
}

func (v *visitor) classMembers(body cstree.Node) []ir.Node {
	var members []ir.Node
	for _, m := range body.NamedChildren() {
		if m.Kind() == "field_declaration" {
			members = append(members, v.fieldDeclarations(m)...)
			continue
		}
		members = append(members, v.classMember(m))
	}
	return members
}

func (v *visitor) classMember(n cstree.Node) ir.Node {
	switch n.Kind() {
	case "method_declaration":
		return v.methodDeclaration(n)
	case "constructor_declaration":
		return v.constructorDeclaration(n)
	case "property_declaration":
		return v.propertyDeclaration(n)
	case "class_declaration":
		return v.classDeclaration(n)
	case "interface_declaration":
		return v.interfaceDeclaration(n)
	default:
		return v.unknown(n)
	}
}

func (v *visitor) methodDeclaration(n cstree.Node) *ir.MethodDeclaration {
	m := &ir.MethodDeclaration{
		Name:           v.textOf(n.ChildByField("name")),
		ReturnType:     v.textOf(n.ChildByField("type")),
		Modifiers:      v.modifiers(n),
		Attributes:     v.attributes(n),
		Parameters:     v.parameterList(n.ChildByField("parameters")),
		OriginalSource: n.Text(),
	}
	m.SetPos(n.Position())

	if body := n.ChildByField("body"); !body.IsZero() {
		m.Body = v.block(body)
	}
	return m
}

func (v *visitor) parameterList(n cstree.Node) []*ir.Parameter {
	var params []*ir.Parameter
	for _, c := range n.NamedChildren() {
		if c.Kind() != "parameter" {
			continue
		}
		params = append(params, v.parameter(c))
	}
	return params
}

var parameterModifiers = map[string]bool{"ref": true, "out": true, "in": true, "params": true, "this": true}

func (v *visitor) parameter(n cstree.Node) *ir.Parameter {
	p := &ir.Parameter{
		Name: v.textOf(n.ChildByField("name")),
		Type: v.textOf(n.ChildByField("type")),
	}
	p.SetPos(n.Position())
	for i := 0; i < n.ChildCount(); i++ {
		if k := n.Child(i).Kind(); parameterModifiers[k] {
			p.Modifiers = append(p.Modifiers, k)
		}
	}
	return p
}

func (v *visitor) constructorDeclaration(n cstree.Node) *ir.Constructor {
	c := &ir.Constructor{Identifier: v.textOf(n.ChildByField("name"))}
	c.SetPos(n.Position())

	for _, ch := range n.NamedChildren() {
		switch ch.Kind() {
		case "constructor_initializer", "base_constructor_initializer", "this_constructor_initializer":
			for _, arg := range ch.NamedChildren() {
				if arg.Kind() == "argument_list" {
					c.ArgumentList = v.argumentList(arg)
				}
			}
		}
	}

	if body := n.ChildByField("body"); !body.IsZero() {
		c.Body = v.block(body)
	}
	return c
}

func (v *visitor) propertyDeclaration(n cstree.Node) *ir.PropertyDeclaration {
	p := &ir.PropertyDeclaration{
		Name:      v.textOf(n.ChildByField("name")),
		Type:      v.textOf(n.ChildByField("type")),
		Modifiers: v.modifiers(n),
	}
	p.SetPos(n.Position())
	return p
}

func (v *visitor) fieldDeclarations(n cstree.Node) []ir.Node {
	mods := v.modifiers(n)
	var nodes []ir.Node

	for _, c := range n.NamedChildren() {
		if c.Kind() != "variable_declaration" {
			continue
		}
		typ := v.textOf(c.ChildByField("type"))
		for _, d := range c.NamedChildren() {
			if d.Kind() != "variable_declarator" {
				continue
			}
			f := &ir.FieldDeclaration{
				Name:      v.textOf(d.ChildByField("name")),
				Type:      typ,
				Modifiers: mods,
			}
			f.SetPos(d.Position())
			nodes = append(nodes, f)
		}
	}
	return nodes
}
