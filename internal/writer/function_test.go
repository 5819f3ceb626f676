package writer

import (
	"strings"
	"testing"

	"github.com/cwbudde/cs2ps/internal/ir"
)

func TestFunctionWriterOperatorRewrite(t *testing.T) {
	w := NewFunctionWriter("    ")

	root := &ir.If{
		Condition: &ir.BinaryExpression{
			Left:     &ir.IdentifierName{Name: "a"},
			Operator: ir.OpEqual,
			Right:    &ir.IdentifierName{Name: "b"},
		},
		Body: &ir.Block{Statements: []ir.Node{
			&ir.Assignment{Left: &ir.IdentifierName{Name: "c"}, Right: &ir.Literal{Token: "1"}},
		}},
	}

	out := w.Write(root)
	if !strings.Contains(out, "if ($this.a -eq $this.b)") {
		t.Errorf("output = %q, want this.a -eq this.b", out)
	}
	if !strings.Contains(out, "$this.c = 1") {
		t.Errorf("output = %q, want $this.c = 1", out)
	}
	for _, forbidden := range []string{"==", "!=", "&&", "||"} {
		if strings.Contains(out, forbidden) {
			t.Errorf("output contains forbidden C-style operator %q: %q", forbidden, out)
		}
	}
}

func TestFunctionWriterCastWithGeneric(t *testing.T) {
	w := NewFunctionWriter("    ")

	out := w.Write(&ir.Cast{Type: "List<int>", Expression: &ir.IdentifierName{Name: "x"}})
	if out != "[List[int]]$this.x" {
		t.Errorf("Write() = %q, want %q", out, "[List[int]]$this.x")
	}
}

func TestFunctionWriterObjectCreation(t *testing.T) {
	tests := []struct {
		name string
		node *ir.ObjectCreation
		want string
	}{
		{
			name: "with args",
			node: &ir.ObjectCreation{Type: "Foo", Arguments: &ir.ArgumentList{Arguments: []*ir.Argument{
				{Expression: &ir.Literal{Token: "1"}},
				{Expression: &ir.Literal{Token: "2"}},
			}}},
			want: "(New-Object -TypeName Foo -ArgumentList 1,2)",
		},
		{
			name: "zero args",
			node: &ir.ObjectCreation{Type: "Foo"},
			want: "(New-Object -TypeName Foo)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewFunctionWriter("    ")
			if got := w.Write(tt.node); got != tt.want {
				t.Errorf("Write() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFunctionWriterUsingResource(t *testing.T) {
	w := NewFunctionWriter("    ")

	root := &ir.Using{
		Declaration: &ir.VariableDeclaration{
			Type: "S",
			Variables: []*ir.VariableDeclarator{
				{Name: "s", Initializer: &ir.ObjectCreation{Type: "S"}},
			},
		},
		Expression: &ir.Block{Statements: []ir.Node{
			&ir.Invocation{
				Expression: &ir.MemberAccess{Expression: &ir.IdentifierName{Name: "s"}, Identifier: "Go"},
				Arguments:  &ir.ArgumentList{},
			},
		}},
	}

	out := w.Write(root)
	if !strings.Contains(out, "$s = $null") {
		t.Errorf("output missing pre-declared null, got:\n%s", out)
	}
	if !strings.Contains(out, "$s = (New-Object -TypeName S)") {
		t.Errorf("output missing resource init, got:\n%s", out)
	}
	if !strings.Contains(out, "finally {") {
		t.Errorf("output missing finally block, got:\n%s", out)
	}
	if !strings.Contains(out, "$s.Dispose()") {
		t.Errorf("output missing dispose call, got:\n%s", out)
	}
}

func TestFunctionWriterLiteralRewrite(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{token: "true", want: "$true"},
		{token: "false", want: "$false"},
		{token: "null", want: "$null"},
		{token: "42", want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			w := NewFunctionWriter("    ")
			if got := w.Write(&ir.Literal{Token: tt.token}); got != tt.want {
				t.Errorf("Write(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestFunctionWriterStringConstantSingleQuoted(t *testing.T) {
	w := NewFunctionWriter("    ")
	if got := w.Write(&ir.StringConstant{Value: "hi"}); got != "'hi'" {
		t.Errorf("Write() = %q, want 'hi'", got)
	}
}

func TestFunctionWriterSwitchSuppressesBreak(t *testing.T) {
	w := NewFunctionWriter("    ")

	root := &ir.Switch{
		Expression: &ir.IdentifierName{Name: "code"},
		Sections: []*ir.SwitchSection{
			{
				Labels: []ir.Node{&ir.Literal{Token: "1"}},
				Statements: []ir.Node{
					&ir.Assignment{Left: &ir.IdentifierName{Name: "name"}, Right: &ir.StringConstant{Value: "one"}},
					&ir.Break{},
				},
			},
		},
	}

	out := w.Write(root)
	if strings.Contains(out, "break") {
		t.Errorf("output contains break inside switch section, want suppressed: %q", out)
	}
}

func TestFunctionWriterZeroParameterMethodNoParam(t *testing.T) {
	w := NewFunctionWriter("    ")
	out := w.Write(&ir.MethodDeclaration{Name: "Go", ReturnType: "void"})
	if strings.Contains(out, "param(") {
		t.Errorf("output = %q, want no param() header for zero parameters", out)
	}
	if !strings.Contains(out, "function Go {") {
		t.Errorf("output = %q, want function header", out)
	}
}

func TestFunctionWriterIdentifierUnderscorePrefix(t *testing.T) {
	w := NewFunctionWriter("    ")
	out := w.Write(&ir.IdentifierName{Name: "_count"})
	if !strings.Contains(out, "this._count") {
		t.Errorf("Write() = %q, want this._count prefix", out)
	}
}
