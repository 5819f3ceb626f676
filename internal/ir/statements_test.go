package ir

import "testing"

func TestIfString(t *testing.T) {
	stmt := &If{
		Condition: &BinaryExpression{
			Left:     &IdentifierName{Name: "a"},
			Operator: OpEqual,
			Right:    &IdentifierName{Name: "b"},
		},
		Body: &Block{Statements: []Node{
			&Assignment{Left: &IdentifierName{Name: "c"}, Right: &Literal{Token: "1"}},
		}},
	}
	expected := "if (a == b) {\n  c = 1\n}"
	if got := stmt.String(); got != expected {
		t.Errorf("If.String() = %q, want %q", got, expected)
	}
}

func TestIfElseChain(t *testing.T) {
	stmt := &If{
		Condition: &IdentifierName{Name: "cond"},
		Body:      &Block{},
		ElseClause: &ElseClause{
			Body: &If{
				Condition: &IdentifierName{Name: "other"},
				Body:      &Block{},
			},
		},
	}
	expected := "if (cond) {\n} else if (other) {\n}"
	if got := stmt.String(); got != expected {
		t.Errorf("If.String() with else-if = %q, want %q", got, expected)
	}
}

func TestSwitchWithDefaultOnly(t *testing.T) {
	sw := &Switch{
		Expression: &IdentifierName{Name: "x"},
		Sections: []*SwitchSection{
			{
				Labels:     []Node{&IdentifierName{Name: "default"}},
				Statements: []Node{&Break{}},
			},
		},
	}
	expected := "switch (x) {\ndefault:\n  break;\n}"
	if got := sw.String(); got != expected {
		t.Errorf("Switch.String() = %q, want %q", got, expected)
	}
}

func TestTryFinally(t *testing.T) {
	tr := &Try{
		Block:   &Block{Statements: []Node{&Invocation{Expression: &IdentifierName{Name: "DoWork"}, Arguments: &ArgumentList{}}}},
		Finally: &Finally{Body: &Block{Statements: []Node{&Invocation{Expression: &IdentifierName{Name: "Cleanup"}, Arguments: &ArgumentList{}}}}},
	}
	expected := "try {\n  DoWork()\n} finally {\n  Cleanup()\n}"
	if got := tr.String(); got != expected {
		t.Errorf("Try.String() = %q, want %q", got, expected)
	}
}

func TestUsingResourceString(t *testing.T) {
	u := &Using{
		Declaration: &VariableDeclaration{
			Type:      "var",
			Variables: []*VariableDeclarator{{Name: "s", Initializer: &ObjectCreation{Type: "S", Arguments: &ArgumentList{}}}},
		},
		Expression: &Invocation{Expression: &MemberAccess{Expression: &IdentifierName{Name: "s"}, Identifier: "Go"}, Arguments: &ArgumentList{}},
	}
	expected := "using (var s = new S();) s.Go()"
	if got := u.String(); got != expected {
		t.Errorf("Using.String() = %q, want %q", got, expected)
	}
}

func TestVariableDeclarationString(t *testing.T) {
	vd := &VariableDeclaration{
		Type: "int",
		Variables: []*VariableDeclarator{
			{Name: "x", Initializer: &Literal{Token: "1"}},
			{Name: "y"},
		},
	}
	expected := "int x = 1, y;"
	if got := vd.String(); got != expected {
		t.Errorf("VariableDeclaration.String() = %q, want %q", got, expected)
	}
}
