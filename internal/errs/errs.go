// Package errs implements LIMEX's four positioned error kinds (spec §7):
// LexError, ParseError, EvalError and LogicError. All are synchronous and
// fatal - none is locally recoverable - and all share one rendering
// convention (a source line with a caret under the offending column),
// following the teacher's internal/errors.CompilerError.Format pattern.
package errs

import (
	"fmt"
	"strings"

	"github.com/bpmn-os/limex/internal/token"
)

// Kind distinguishes the four error categories of spec §7.
type Kind string

const (
	KindLex   Kind = "LEX"
	KindParse Kind = "PARSE"
	KindEval  Kind = "EVAL"
	KindLogic Kind = "LOGIC"
)

// Error is LIMEX's single positioned error type; NewLex/NewParse/NewEval/
// NewLogic construct one of each kind.
type Error struct {
	Kind    Kind
	Message string
	Source  string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error at %s: %s", e.Kind, e.Pos, e.Message)
}

func NewLex(source string, pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: KindLex, Message: fmt.Sprintf(format, args...), Source: source, Pos: pos}
}

func NewParse(source string, pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...), Source: source, Pos: pos}
}

func NewEval(source string, pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: KindEval, Message: fmt.Sprintf(format, args...), Source: source, Pos: pos}
}

func NewLogic(source string, pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: KindLogic, Message: fmt.Sprintf(format, args...), Source: source, Pos: pos}
}

// Format renders e with a source line and a caret under the offending
// column, the teacher's CompilerError.Format convention.
func (e *Error) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s error at %s: %s\n", e.Kind, e.Pos, e.Message)
	line := sourceLine(e.Source, e.Pos.Line)
	if line != "" {
		sb.WriteString(line)
		sb.WriteByte('\n')
		col := e.Pos.Column
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", col-1))
		sb.WriteString("^\n")
	}
	return sb.String()
}

func sourceLine(source string, line int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// FormatAll renders a batch of errors (as the lexer accumulates) the way
// the teacher's FormatErrors aggregates multiple CompilerErrors.
func FormatAll(errs []*Error) string {
	var sb strings.Builder
	for i, e := range errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Format())
	}
	return sb.String()
}
