// Package transpile is the single library entry point for converting
// C# source text into PowerShell, binding the front-end visitor to the
// dialect-selected writer.
package transpile

import (
	"context"
	"fmt"
	"os"

	"github.com/cwbudde/cs2ps/internal/frontend/visitor"
	"github.com/cwbudde/cs2ps/internal/ir"
	"github.com/cwbudde/cs2ps/internal/writer"
)

// Dialect selects which PowerShell writer a translation targets.
type Dialect int

const (
	// DialectFunction targets script-style PowerShell: each method
	// becomes a function; namespaces and classes keep a C-style
	// brace wrapper rather than PowerShell class syntax.
	DialectFunction Dialect = iota
	// DialectType targets PowerShell 5+ class-oriented output.
	DialectType
)

// Options configures a single Transpile call. Exactly one of Source or
// Path should be set; Path takes precedence if both are non-empty.
type Options struct {
	Source     string
	Path       string
	OutputPath string
	Dialect    Dialect
	IndentUnit string
}

// Transpile converts C# source into PowerShell text. When OutputPath is
// set, the result is written there as UTF-8 and the returned string is
// empty; otherwise the translated text is returned directly. A
// front-end rejection of the source is returned as *diag.ParseError;
// failures reading Path or writing OutputPath are returned as wrapped
// I/O errors.
func Transpile(opts Options) (string, error) {
	source, file, err := readSource(opts)
	if err != nil {
		return "", err
	}

	ns, err := visitor.Visit(context.Background(), source, file)
	if err != nil {
		return "", err
	}

	w := newWriter(opts.Dialect, opts.IndentUnit)
	out := w.Write(ns)

	if opts.OutputPath != "" {
		if err := os.WriteFile(opts.OutputPath, []byte(out), 0o644); err != nil {
			return "", fmt.Errorf("writing %s: %w", opts.OutputPath, err)
		}
		return "", nil
	}
	return out, nil
}

func readSource(opts Options) ([]byte, string, error) {
	if opts.Path != "" {
		src, err := os.ReadFile(opts.Path)
		if err != nil {
			return nil, "", fmt.Errorf("reading %s: %w", opts.Path, err)
		}
		return src, opts.Path, nil
	}
	return []byte(opts.Source), "", nil
}

// psWriter is satisfied by both *writer.FunctionWriter and
// *writer.TypeWriter via their shared embedded *writer.Base.Write.
type psWriter interface {
	Write(root ir.Node) string
}

func newWriter(d Dialect, indentUnit string) psWriter {
	if d == DialectType {
		return writer.NewTypeWriter(indentUnit)
	}
	return writer.NewFunctionWriter(indentUnit)
}
