/*
File    : go-jrq/errors/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package errors defines the ranged error type shared by the JSON
// deserializer, the query parser and the evaluator, together with the
// diagnostic renderer that turns a ranged error into a source excerpt with a
// caret underline.
package errors

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-jrq/lexer"
)

// Stable parser and deserializer error messages.
const (
	ERROR_MISSING_RPAREN   = "Missing closing parenthesis ')'"
	ERROR_MISSING_RBRACKET = "Missing closing bracket ']'"
	ERROR_MISSING_RBRACE   = "Missing closing brace '}'"
	ERROR_MISSING_CLOSURE  = "Missing closing closure bar '|'"
	ERROR_UNEXPECTED_TOKEN = "Unexpected token"
	ERROR_EXPECTED_IDENT   = "Expected identifier"
	ERROR_EXPECTED_EOF     = "Expected eof"

	// JSON literal errors
	ERROR_EXPECTED_STRING = "Expected string key in json literal"
	ERROR_EXPECTED_COLON  = "Expected colon ':' after key in json literal"
)

// MARGIN is the number of context characters kept on either side of the
// erroring span when rendering a diagnostic.
const MARGIN = 5

// JrqError is an error with an attached source range. Lexing, parsing,
// deserializing and evaluation all surface failures as a JrqError so the CLI
// can render a caret diagnostic for any of them.
type JrqError struct {
	Message string      // Human-readable description of the failure
	Range   lexer.Range // Inclusive source span the failure points at
}

// New creates a JrqError over the given range with a formatted message.
func New(r lexer.Range, format string, args ...interface{}) *JrqError {
	return &JrqError{
		Message: fmt.Sprintf(format, args...),
		Range:   r,
	}
}

// FromLexError wraps a lexer failure into a JrqError whose range is the
// single position where lexing stopped.
func FromLexError(le *lexer.LexError) *JrqError {
	return &JrqError{
		Message: le.Message,
		Range:   lexer.Range{Start: le.Position, End: le.Position},
	}
}

// Error implements the error interface.
func (e *JrqError) Error() string {
	return e.Message
}

// Format renders the error as a diagnostic against the source text it was
// produced from:
//
//	.foo.mop(1)
//	^~~~~~~~~~~
//	Function not found: mop
//
// The excerpt is taken from the line of the range's start, clipped to MARGIN
// characters on either side of the erroring span. The caret line underlines
// the span with '^' on the first column and '~' on the rest; the message
// follows on its own line.
func (e *JrqError) Format(src string) string {
	lines := strings.Split(src, "\n")

	startLine := e.Range.Start.Line
	if startLine < 1 || startLine > len(lines) {
		// Range does not point into the source (e.g. empty input);
		// fall back to the bare message.
		return e.Message + "\n"
	}
	line := lines[startLine-1]

	startCol := e.Range.Start.Column
	if startCol < 1 {
		startCol = 1
	}
	if startCol > len(line)+1 {
		startCol = len(line) + 1
	}

	// The underline stops at the end of the start line even when the range
	// spans multiple lines.
	endCol := e.Range.End.Column
	if e.Range.End.Line != startLine || endCol > len(line) {
		endCol = len(line)
	}
	if endCol < startCol {
		endCol = startCol
	}

	marginStart := startCol - 1 - MARGIN
	if marginStart < 0 {
		marginStart = 0
	}
	marginEnd := endCol + MARGIN
	if marginEnd > len(line) {
		marginEnd = len(line)
	}

	excerpt := line[marginStart:marginEnd]

	underline := strings.Repeat(" ", startCol-1-marginStart) + "^"
	if endCol > startCol {
		underline += strings.Repeat("~", endCol-startCol)
	}

	var builder strings.Builder
	builder.WriteString(excerpt)
	builder.WriteString("\n")
	builder.WriteString(underline)
	builder.WriteString("\n")
	builder.WriteString(e.Message)
	builder.WriteString("\n")
	return builder.String()
}
