// Package diag implements diagnostic rendering: a CompilerError-shaped
// type carrying a message, source position, file, and error code,
// rendered as a source line with a caret — the teacher's own
// internal/errors package, generalized with the fixed error-code
// catalog spec §6/§7 requires.
package diag

import (
	"fmt"
	"strings"

	"github.com/shiroscript/shiro/internal/token"
)

// SyntaxError is one classified lexer or parser failure: a message tied
// to a source position and one of the four specific codes spec §6
// partitions lexing/parsing into (E0201..E0204), or the generic parser
// code E0299 for failures none of those fit. Lexer.Errors and
// Parser.Errors accumulate these; the runtime driver promotes the first
// one into a full Diagnostic once a file and its source text are known.
type SyntaxError struct {
	Code    Code
	Message string
	Pos     token.Position
}

// Error implements the error interface.
func (e SyntaxError) Error() string { return e.Message }

// Diagnostic is one reportable error: a lexer/parser syntax error or an
// evaluator-raised runtime error.
type Diagnostic struct {
	Code    Code
	Message string
	Pos     token.Position
	File    string
	Source  string
}

// New creates a Diagnostic.
func New(code Code, message string, pos token.Position, file, source string) *Diagnostic {
	return &Diagnostic{Code: code, Message: message, Pos: pos, File: file, Source: source}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string { return d.Format() }

// Format renders the diagnostic as a header line, the offending source
// line, a caret under the column, and the message — in that order.
func (d *Diagnostic) Format() string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "%s: error in %s:%d:%d\n", d.Code, d.File, d.Pos.Line, d.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s: error at %d:%d\n", d.Code, d.Pos.Line, d.Pos.Column)
	}

	if line := d.sourceLine(d.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+d.Pos.Column-1))
		sb.WriteString("^\n")
	}

	sb.WriteString(d.Message)
	return sb.String()
}

func (d *Diagnostic) sourceLine(line int) string {
	if d.Source == "" {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}
