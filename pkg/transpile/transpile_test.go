package transpile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/cs2ps/internal/diag"
)

func TestTranspileFunctionDialectOperatorRewrite(t *testing.T) {
	src := `namespace N { class C { void M() { if (a == b) { c = 1; } } } }`

	out, err := Transpile(Options{Source: src, Dialect: DialectFunction})
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	if !strings.Contains(out, "-eq") {
		t.Errorf("output missing -eq rewrite:\n%s", out)
	}
	if strings.Contains(out, "==") {
		t.Errorf("output still contains C-style ==:\n%s", out)
	}
}

func TestTranspileObjectCreationBothDialects(t *testing.T) {
	src := `namespace N { class C { void M() { x = new Foo(1, 2); } } }`

	fn, err := Transpile(Options{Source: src, Dialect: DialectFunction})
	if err != nil {
		t.Fatalf("Transpile(function) error = %v", err)
	}
	if !strings.Contains(fn, "New-Object -TypeName Foo -ArgumentList") {
		t.Errorf("function dialect output = %q", fn)
	}

	typ, err := Transpile(Options{Source: src, Dialect: DialectType})
	if err != nil {
		t.Fatalf("Transpile(type) error = %v", err)
	}
	if !strings.Contains(typ, "[Foo]::new(") {
		t.Errorf("type dialect output = %q", typ)
	}
}

func TestTranspileWritesOutputPath(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.ps1")

	empty, err := Transpile(Options{
		Source:     `class C { }`,
		OutputPath: out,
	})
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	if empty != "" {
		t.Errorf("Transpile() returned %q, want empty string when OutputPath is set", empty)
	}

	written, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if len(written) == 0 {
		t.Error("output file is empty")
	}
}

func TestTranspileReadsFromPath(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.cs")
	if err := os.WriteFile(src, []byte(`class C { }`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	out, err := Transpile(Options{Path: src})
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	if out == "" {
		t.Error("Transpile() returned empty output for a valid file")
	}
}

func TestTranspileParseFailureSurfacesAsParseError(t *testing.T) {
	_, err := Transpile(Options{Source: "class { { { ("})
	if err == nil {
		t.Fatal("Transpile() error = nil, want a ParseError")
	}
	if _, ok := err.(*diag.ParseError); !ok {
		t.Fatalf("Transpile() error type = %T, want *diag.ParseError", err)
	}
}
