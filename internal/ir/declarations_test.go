package ir

import "testing"

func TestClassDeclarationString(t *testing.T) {
	tests := []struct {
		name     string
		class    *ClassDeclaration
		expected string
	}{
		{
			name:     "empty class without bases",
			class:    &ClassDeclaration{Name: "Widget"},
			expected: "class Widget {\n}",
		},
		{
			name:     "class with parent and interface",
			class:    &ClassDeclaration{Name: "Widget", Bases: []string{"Base", "IWidget"}},
			expected: "class Widget : Base, IWidget {\n}",
		},
		{
			name: "class with a field member",
			class: &ClassDeclaration{
				Name: "Point",
				Members: []Node{
					&FieldDeclaration{Name: "X", Type: "int", Modifiers: []string{"public"}},
				},
			},
			expected: "class Point {\n  public int X;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.class.String(); got != tt.expected {
				t.Errorf("ClassDeclaration.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMethodDeclarationString(t *testing.T) {
	tests := []struct {
		name     string
		method   *MethodDeclaration
		expected string
	}{
		{
			name: "abstract method has no body",
			method: &MethodDeclaration{
				Name:       "Draw",
				ReturnType: "void",
				Modifiers:  []string{"public", "abstract"},
			},
			expected: "public abstract void Draw();",
		},
		{
			name: "method with parameters and body",
			method: &MethodDeclaration{
				Name:       "Add",
				ReturnType: "int",
				Parameters: []*Parameter{
					{Name: "a", Type: "int"},
					{Name: "b", Type: "int"},
				},
				Body: &Block{Statements: []Node{&Return{Operand: &IdentifierName{Name: "a"}}}},
			},
			expected: "int Add(int a, int b) {\n  return a;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.method.String(); got != tt.expected {
				t.Errorf("MethodDeclaration.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAttributeString(t *testing.T) {
	attr := &Attribute{
		Name: "Cmdlet",
		Arguments: []*AttributeArgument{
			{Expression: &StringConstant{Value: "Send"}},
			{Expression: &Assignment{
				Left:  &IdentifierName{Name: "SupportPaging"},
				Right: &Literal{Token: "true"},
			}},
		},
	}
	expected := `[Cmdlet("Send", SupportPaging = true)]`
	if got := attr.String(); got != expected {
		t.Errorf("Attribute.String() = %q, want %q", got, expected)
	}
}

func TestParameterString(t *testing.T) {
	p := &Parameter{Name: "value", Type: "int", Modifiers: []string{"ref"}}
	if got := p.String(); got != "ref int value" {
		t.Errorf("Parameter.String() = %q", got)
	}
}
