package ir

import (
	"bytes"
	"strings"
)

// ClassDeclaration represents a C# class declaration.
//
// Examples:
//
//	public class Widget : Base, IWidget { ... }
//	public abstract class Shape { ... }
type ClassDeclaration struct {
	base
	Name       string
	Modifiers  []string
	Attributes []*Attribute
	Bases      []string
	Members    []Node
}

func (c *ClassDeclaration) String() string { return declString("class", c.Name, c.Bases, c.Members) }

// InterfaceDeclaration has the same shape as ClassDeclaration; C#
// interfaces carry modifiers, attributes, a base list (interfaces can
// extend other interfaces), and members (method signatures only, since
// interface bodies are illegal in C#).
type InterfaceDeclaration struct {
	base
	Name       string
	Modifiers  []string
	Attributes []*Attribute
	Bases      []string
	Members    []Node
}

func (i *InterfaceDeclaration) String() string {
	return declString("interface", i.Name, i.Bases, i.Members)
}

func declString(keyword, name string, bases []string, members []Node) string {
	var out bytes.Buffer
	out.WriteString(keyword)
	out.WriteString(" ")
	out.WriteString(name)
	if len(bases) > 0 {
		out.WriteString(" : ")
		out.WriteString(strings.Join(bases, ", "))
	}
	out.WriteString(" {\n")
	for _, m := range members {
		out.WriteString("  ")
		out.WriteString(strings.ReplaceAll(m.String(), "\n", "\n  "))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// Parameter is a single method/constructor parameter. Modifiers holds
// surface tokens like "ref" or "out"; the writers key off their
// presence rather than parsing them further.
type Parameter struct {
	base
	Name      string
	Type      string
	Modifiers []string
}

func (p *Parameter) String() string {
	prefix := ""
	if len(p.Modifiers) > 0 {
		prefix = strings.Join(p.Modifiers, " ") + " "
	}
	return prefix + p.Type + " " + p.Name
}

// MethodDeclaration represents a method, including externs decorated
// with [DllImport] (P/Invoke). OriginalSource preserves the method's
// full declaration text so the PowerShell function writer can re-emit
// it verbatim inside an Add-Type block when it can't be translated
// structurally (see Body == nil && an extern/DllImport pair).
//
// Examples:
//
//	public int Add(int a, int b) { return a + b; }
//	public abstract void Draw();
//	[DllImport("user32.dll")] static extern int MessageBox(...);
type MethodDeclaration struct {
	base
	Name           string
	ReturnType     string
	Modifiers      []string
	Attributes     []*Attribute
	Parameters     []*Parameter
	Body           *Block // nil for abstract/extern/interface methods
	OriginalSource string
}

func (m *MethodDeclaration) String() string {
	var out bytes.Buffer
	if len(m.Modifiers) > 0 {
		out.WriteString(strings.Join(m.Modifiers, " "))
		out.WriteString(" ")
	}
	out.WriteString(m.ReturnType)
	out.WriteString(" ")
	out.WriteString(m.Name)
	out.WriteString("(")
	params := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		params[i] = p.String()
	}
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(")")
	if m.Body != nil {
		out.WriteString(" ")
		out.WriteString(m.Body.String())
	} else {
		out.WriteString(";")
	}
	return out.String()
}

// Constructor represents a C# instance constructor. ArgumentList holds
// a base/this constructor-initializer call, if any (`: base(x, y)`).
type Constructor struct {
	base
	Identifier   string
	ArgumentList *ArgumentList
	Body         *Block
}

func (c *Constructor) String() string {
	var out bytes.Buffer
	out.WriteString(c.Identifier)
	out.WriteString("(")
	if c.ArgumentList != nil {
		out.WriteString(c.ArgumentList.String())
	}
	out.WriteString(")")
	if c.Body != nil {
		out.WriteString(" ")
		out.WriteString(c.Body.String())
	}
	return out.String()
}

// PropertyDeclaration represents a C# auto-property or property with
// accessors. Accessor bodies are deliberately discarded — the IR only
// needs the surface shape for the class-dialect writer's `$Name`
// emission.
type PropertyDeclaration struct {
	base
	Name      string
	Type      string
	Modifiers []string
}

func (p *PropertyDeclaration) String() string {
	return strings.Join(p.Modifiers, " ") + " " + p.Type + " " + p.Name + " { get; set; }"
}

// FieldDeclaration represents a class/interface field.
type FieldDeclaration struct {
	base
	Name      string
	Type      string
	Modifiers []string
}

func (f *FieldDeclaration) String() string {
	prefix := ""
	if len(f.Modifiers) > 0 {
		prefix = strings.Join(f.Modifiers, " ") + " "
	}
	return prefix + f.Type + " " + f.Name + ";"
}

// Attribute is a `[Name(args...)]` annotation on a type or member.
type Attribute struct {
	base
	Name      string
	Arguments []*AttributeArgument
}

func (a *Attribute) String() string {
	if len(a.Arguments) == 0 {
		return "[" + a.Name + "]"
	}
	args := make([]string, len(a.Arguments))
	for i, arg := range a.Arguments {
		args[i] = arg.String()
	}
	return "[" + a.Name + "(" + strings.Join(args, ", ") + ")]"
}

// AttributeArgument wraps one argument expression inside an attribute's
// argument list. It is its own node (rather than a bare Expression)
// because named arguments (`SupportPaging = true`) are themselves an
// Assignment expression in the IR — wrapping keeps Attribute's field
// shape uniform whether the argument is positional or named.
type AttributeArgument struct {
	base
	Expression Node
}

func (a *AttributeArgument) String() string {
	if a.Expression == nil {
		return ""
	}
	return a.Expression.String()
}
