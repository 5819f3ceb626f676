package ir

import "testing"

func TestInvocationString(t *testing.T) {
	inv := &Invocation{
		Expression: &IdentifierName{Name: "Add"},
		Arguments: &ArgumentList{Arguments: []*Argument{
			{Expression: &Literal{Token: "1"}},
			{Expression: &Literal{Token: "2"}},
		}},
	}
	if got := inv.String(); got != "Add(1, 2)" {
		t.Errorf("Invocation.String() = %q", got)
	}
}

func TestObjectCreationZeroAndWithArgs(t *testing.T) {
	tests := []struct {
		name     string
		creation *ObjectCreation
		expected string
	}{
		{
			name:     "no arguments",
			creation: &ObjectCreation{Type: "Foo"},
			expected: "new Foo()",
		},
		{
			name: "two arguments",
			creation: &ObjectCreation{
				Type: "Foo",
				Arguments: &ArgumentList{Arguments: []*Argument{
					{Expression: &Literal{Token: "1"}},
					{Expression: &Literal{Token: "2"}},
				}},
			},
			expected: "new Foo(1, 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.creation.String(); got != tt.expected {
				t.Errorf("ObjectCreation.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMemberAccessOnTypeExpression(t *testing.T) {
	m := &MemberAccess{Expression: &TypeExpression{TypeName: "Console"}, Identifier: "WriteLine"}
	if got := m.String(); got != "Console.WriteLine" {
		t.Errorf("MemberAccess.String() = %q", got)
	}
}

func TestCastWithGenericType(t *testing.T) {
	c := &Cast{Type: "List<int>", Expression: &IdentifierName{Name: "x"}}
	if got := c.String(); got != "(List<int>)x" {
		t.Errorf("Cast.String() = %q", got)
	}
}

func TestArrayCreationString(t *testing.T) {
	a := &ArrayCreation{Initializer: []Node{
		&Literal{Token: "1"}, &Literal{Token: "2"}, &Literal{Token: "3"},
	}}
	if got := a.String(); got != "{ 1, 2, 3 }" {
		t.Errorf("ArrayCreation.String() = %q", got)
	}
}

func TestBracketedArgumentListString(t *testing.T) {
	b := &BracketedArgumentList{Arguments: []*Argument{
		{Expression: &IdentifierName{Name: "i"}},
		{Expression: &IdentifierName{Name: "j"}},
	}}
	if got := b.String(); got != "[i, j]" {
		t.Errorf("BracketedArgumentList.String() = %q", got)
	}
}
