/*
File    : go-jrq/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strconv"
	"strings"
)

// isWhitespace checks if the given byte is a whitespace character.
func isWhitespace(curr byte) bool {
	return curr == ' ' || curr == '\t' || curr == '\n' || curr == '\r'
}

// isNumeric checks if the given byte is a decimal digit (0-9).
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte is an ASCII letter (a-z, A-Z).
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// readStringLiteral reads and tokenizes a string literal from the source.
// String literals must be enclosed in double quotes (").
//
// Only two escape sequences are resolved:
//   - \": double quote
//   - \\: backslash
//
// Any other backslash sequence passes through untouched, so "\n" stays as a
// backslash followed by 'n'. The token payload is the unquoted body, and the
// token range covers the opening through the closing quote.
//
// Returns:
//   - Token: A STRING_LIT token with the string content
//   - *LexError: set when the string is not terminated before EOF
func (lex *Lexer) readStringLiteral() (Token, *LexError) {
	start := lex.Here()
	lex.Advance() // Consume opening quote

	var builder strings.Builder

	// Read characters until the closing quote
	for lex.Current != '"' {
		// Check for unterminated string
		if lex.Current == 0 {
			return Token{}, &LexError{Message: "Unterminated string", Position: start}
		}

		// Handle the two resolved escape sequences
		if lex.Current == '\\' {
			next := lex.Peek()
			if next == '"' || next == '\\' {
				builder.WriteByte(next)
				lex.Advance()
				lex.Advance()
				continue
			}
			// Unknown escape: keep the backslash as-is
		}

		// Regular character - add to string
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	end := lex.Here()
	lex.Advance() // Consume closing quote
	return NewTokenWithRange(STRING_LIT, builder.String(), Range{Start: start, End: end}), nil
}

// readNumber reads and tokenizes a numeric literal from the source.
// It supports integers and decimal fractions:
//   - Integers: 0, 10, 123
//   - Decimals: 10.5, 0.123
//
// A second '.' inside a number is a lexing error. The negative sign is not
// part of the number; the parser treats it as a unary operator.
//
// Returns:
//   - Token: A NUMBER_LIT token with the parsed value in the Number payload
//   - *LexError: set when the literal has a second decimal point
func (lex *Lexer) readNumber() (Token, *LexError) {
	start := lex.Here()
	startPos := lex.Position
	hasDecimal := false

	for {
		next := lex.Peek()
		if next == '.' {
			if hasDecimal {
				return Token{}, &LexError{Message: "Invalid suffix on decimal", Position: lex.Here()}
			}
			hasDecimal = true
		} else if !isNumeric(next) {
			break
		}
		lex.Advance()
	}

	end := lex.Here()
	lex.Advance()

	literal := lex.Src[startPos:lex.Position]
	value, _ := strconv.ParseFloat(literal, 64)

	token := NewTokenWithRange(NUMBER_LIT, literal, Range{Start: start, End: end})
	token.Number = value
	return token, nil
}

// readIdentifier reads and tokenizes an identifier or keyword from the source.
// Identifiers can be variable names, builtin function names, or the reserved
// words true/false/null.
//
// Rules:
//   - Must start with a letter (a-z, A-Z) or underscore (_)
//   - Can contain letters, digits, or underscores
//   - Keywords are identified using the lookupIdent function
func (lex *Lexer) readIdentifier() Token {
	start := lex.Here()
	startPos := lex.Position

	for isAlpha(lex.Peek()) || isNumeric(lex.Peek()) || lex.Peek() == '_' {
		lex.Advance()
	}
	end := lex.Here()
	lex.Advance()

	literal := lex.Src[startPos:lex.Position]

	// Check if this identifier is actually a keyword
	return NewTokenWithRange(lookupIdent(literal), literal, Range{Start: start, End: end})
}
