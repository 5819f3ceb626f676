package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/cs2ps/pkg/transpile"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    transpile.Dialect
		wantErr bool
	}{
		{name: "default empty string", input: "", want: transpile.DialectFunction},
		{name: "function", input: "function", want: transpile.DialectFunction},
		{name: "type", input: "type", want: transpile.DialectType},
		{name: "case insensitive", input: "Type", want: transpile.DialectType},
		{name: "unknown", input: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDialect(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDialect(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseDialect(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIndentUnitFor(t *testing.T) {
	tests := []struct {
		name    string
		spaces  int
		useTabs bool
		want    string
	}{
		{name: "default four spaces", spaces: 4, want: "    "},
		{name: "two spaces", spaces: 2, want: "  "},
		{name: "zero falls back to four", spaces: 0, want: "    "},
		{name: "tabs override spaces", spaces: 2, useTabs: true, want: "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := indentUnitFor(tt.spaces, tt.useTabs); got != tt.want {
				t.Errorf("indentUnitFor(%d, %v) = %q, want %q", tt.spaces, tt.useTabs, got, tt.want)
			}
		})
	}
}

func TestPsSibling(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "cs extension", input: "Widget.cs", want: "Widget.ps1"},
		{name: "nested path", input: filepath.Join("src", "Widget.cs"), want: filepath.Join("src", "Widget.ps1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := psSibling(tt.input); got != tt.want {
				t.Errorf("psSibling(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertFileWritesSibling(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Widget.cs")
	if err := os.WriteFile(src, []byte(`class Widget { }`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	prevWrite := convertWrite
	prevOutput := convertOutput
	convertWrite = true
	convertOutput = ""
	defer func() {
		convertWrite = prevWrite
		convertOutput = prevOutput
	}()

	if err := convertFile(src, transpile.DialectFunction, "    "); err != nil {
		t.Fatalf("convertFile() error = %v", err)
	}

	sibling := filepath.Join(dir, "Widget.ps1")
	out, err := os.ReadFile(sibling)
	if err != nil {
		t.Fatalf("reading sibling: %v", err)
	}
	if len(out) == 0 {
		t.Error("sibling file is empty")
	}
}
