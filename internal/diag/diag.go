// Package diag formats parse diagnostics with source context, line/column
// information, and a caret pointing at the offending span. It adapts the
// original compiler's CompilerError to the single failure kind this
// translator raises: a front-end parse rejection.
package diag

import (
	"fmt"
	"strings"

	"github.com/cwbudde/cs2ps/internal/ir"
)

// ParseError is the single exported error type this module raises. It
// wraps the front end's diagnostic (an ERROR/missing node's kind and
// text, or a generic parser failure message) with enough source context
// to point a human at the offending line.
type ParseError struct {
	Message string
	Source  string
	File    string
	Pos     ir.Position
}

// NewParseError builds a ParseError carrying the given position and the
// full source text it was found in (used to recover the offending line
// when formatting).
func NewParseError(pos ir.Position, message, source, file string) *ParseError {
	return &ParseError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *ParseError) Error() string { return e.Format(false) }

// Format renders the error with its source line and a caret indicator.
// If color is true, ANSI color codes are applied for terminal output.
func (e *ParseError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	sourceLine := e.sourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+max(e.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *ParseError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
