package diag

import (
	"strings"
	"testing"

	"github.com/cwbudde/cs2ps/internal/ir"
)

func TestParseErrorFormatWithFile(t *testing.T) {
	err := NewParseError(ir.Position{Line: 2, Column: 5}, "unexpected token", "class Foo {\n  !!! \n}", "widget.cs")
	got := err.Format(false)

	if !strings.Contains(got, "Error in widget.cs:2:5") {
		t.Errorf("Format() missing header, got %q", got)
	}
	if !strings.Contains(got, "  !!! ") {
		t.Errorf("Format() missing source line, got %q", got)
	}
	if !strings.Contains(got, "^") {
		t.Errorf("Format() missing caret, got %q", got)
	}
	if !strings.Contains(got, "unexpected token") {
		t.Errorf("Format() missing message, got %q", got)
	}
}

func TestParseErrorFormatNoFile(t *testing.T) {
	err := NewParseError(ir.Position{Line: 1, Column: 1}, "bad input", "", "")
	got := err.Format(false)
	if !strings.HasPrefix(got, "Error at line 1:1") {
		t.Errorf("Format() = %q", got)
	}
}

func TestParseErrorImplementsError(t *testing.T) {
	var err error = NewParseError(ir.Position{Line: 1, Column: 1}, "bad input", "x", "f.cs")
	if err.Error() == "" {
		t.Fatal("Error() returned empty string")
	}
}

func TestParseErrorColor(t *testing.T) {
	err := NewParseError(ir.Position{Line: 1, Column: 1}, "bad input", "x", "f.cs")
	got := err.Format(true)
	if !strings.Contains(got, "\033[1;31m") {
		t.Errorf("Format(true) missing color codes, got %q", got)
	}
}
