package ir

import (
	"bytes"
	"strings"
)

// Namespace is the IR root for a translated compilation unit.
//
// Examples:
//
//	namespace Acme.Widgets { ... }
//	// or, for a file with no explicit namespace, a synthetic empty one
//	// wraps the top-level members.
type Namespace struct {
	base
	Name    string
	Usings  []*UsingDirective
	Members []Node
}

func (n *Namespace) String() string {
	var out bytes.Buffer
	out.WriteString("namespace ")
	out.WriteString(n.Name)
	out.WriteString(" {\n")
	for _, u := range n.Usings {
		out.WriteString("  ")
		out.WriteString(u.String())
		out.WriteString("\n")
	}
	for _, m := range n.Members {
		out.WriteString("  ")
		out.WriteString(strings.ReplaceAll(m.String(), "\n", "\n  "))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// UsingDirective is a `using X.Y.Z;` import line. It is distinct from
// the `Using` resource-scope statement, which has its own variant.
type UsingDirective struct {
	base
	Name string
}

func (u *UsingDirective) String() string {
	return "using " + u.Name + ";"
}
