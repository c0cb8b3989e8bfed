/*
File    : go-jrq/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer_NextToken_Operators(t *testing.T) {

	src := `+ - * / % == != <= >= || && | & ! < > . : , ; ( ) [ ] { }`
	lex := NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	assert.Nil(t, err)

	expected := []TokenType{
		PLUS_OP, MINUS_OP, MUL_OP, DIV_OP, MOD_OP,
		EQ_OP, NE_OP, LE_OP, GE_OP, OR_OP, AND_OP,
		BAR_OP, AMP_OP, NOT_OP, LT_OP, GT_OP,
		DOT_OP, COLON_DELIM, COMMA_DELIM, SEMICOLON_DELIM,
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACKET, RIGHT_BRACKET,
		LEFT_BRACE, RIGHT_BRACE,
	}

	assert.Equal(t, len(expected), len(tokens))
	for i, tokenType := range expected {
		assert.Equal(t, tokenType, tokens[i].Type)
	}
}

func TestLexer_NextToken_KeywordsAndIdentifiers(t *testing.T) {

	src := `true false null foo _bar baz42`
	lex := NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	assert.Nil(t, err)

	assert.Equal(t, 6, len(tokens))
	assert.Equal(t, TRUE_KEY, tokens[0].Type)
	assert.Equal(t, FALSE_KEY, tokens[1].Type)
	assert.Equal(t, NULL_KEY, tokens[2].Type)
	assert.Equal(t, IDENTIFIER_ID, tokens[3].Type)
	assert.Equal(t, "foo", tokens[3].Literal)
	assert.Equal(t, IDENTIFIER_ID, tokens[4].Type)
	assert.Equal(t, "_bar", tokens[4].Literal)
	assert.Equal(t, IDENTIFIER_ID, tokens[5].Type)
	assert.Equal(t, "baz42", tokens[5].Literal)
}

func TestLexer_NextToken_Numbers(t *testing.T) {

	src := `0 42 10.25`
	lex := NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	assert.Nil(t, err)

	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, NUMBER_LIT, tokens[0].Type)
	assert.Equal(t, 0.0, tokens[0].Number)
	assert.Equal(t, NUMBER_LIT, tokens[1].Type)
	assert.Equal(t, 42.0, tokens[1].Number)
	assert.Equal(t, NUMBER_LIT, tokens[2].Type)
	assert.Equal(t, 10.25, tokens[2].Number)
}

func TestLexer_NextToken_NumberWithTwoDots(t *testing.T) {

	src := `10.2.5`
	lex := NewLexer(src)
	_, err := lex.ConsumeTokens()
	assert.NotNil(t, err)
	assert.Equal(t, "Invalid suffix on decimal", err.Message)
}

func TestLexer_NextToken_Strings(t *testing.T) {

	src := `"hello" "with \" quote" "back\\slash" "unknown \n stays"`
	lex := NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	assert.Nil(t, err)

	assert.Equal(t, 4, len(tokens))
	assert.Equal(t, STRING_LIT, tokens[0].Type)
	assert.Equal(t, "hello", tokens[0].Literal)
	assert.Equal(t, `with " quote`, tokens[1].Literal)
	assert.Equal(t, `back\slash`, tokens[2].Literal)
	// Unknown escapes pass through untouched
	assert.Equal(t, `unknown \n stays`, tokens[3].Literal)
}

func TestLexer_NextToken_UnterminatedString(t *testing.T) {

	src := `"no closing quote`
	lex := NewLexer(src)
	_, err := lex.ConsumeTokens()
	assert.NotNil(t, err)
	assert.Equal(t, "Unterminated string", err.Message)
}

func TestLexer_NextToken_Ellipsis(t *testing.T) {

	src := `a ... b`
	lex := NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	assert.Nil(t, err)

	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, ELLIPSIS_OP, tokens[1].Type)
}

func TestLexer_NextToken_Ranges(t *testing.T) {

	src := `foo == 10`
	lex := NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	assert.Nil(t, err)

	assert.Equal(t, 3, len(tokens))
	// "foo" covers columns 1-3 on line 1
	assert.Equal(t, Range{Start: Position{Line: 1, Column: 1}, End: Position{Line: 1, Column: 3}}, tokens[0].Range)
	// "==" covers columns 5-6
	assert.Equal(t, Range{Start: Position{Line: 1, Column: 5}, End: Position{Line: 1, Column: 6}}, tokens[1].Range)
	// "10" covers columns 8-9
	assert.Equal(t, Range{Start: Position{Line: 1, Column: 8}, End: Position{Line: 1, Column: 9}}, tokens[2].Range)
}

func TestLexer_NextToken_MultilineRanges(t *testing.T) {

	src := "foo\n  bar"
	lex := NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	assert.Nil(t, err)

	assert.Equal(t, 2, len(tokens))
	assert.Equal(t, Position{Line: 2, Column: 3}, tokens[1].Range.Start)
	assert.Equal(t, Position{Line: 2, Column: 5}, tokens[1].Range.End)
}

func TestLexer_NextToken_IllegalCharacter(t *testing.T) {

	src := `10 # 2`
	lex := NewLexer(src)
	_, err := lex.ConsumeTokens()
	assert.NotNil(t, err)
	assert.Contains(t, err.Message, "Illegal character")
}

func TestLexer_NextToken_EOF(t *testing.T) {

	lex := NewLexer("")
	token, err := lex.NextToken()
	assert.Nil(t, err)
	assert.Equal(t, EOF_TYPE, token.Type)
	assert.Equal(t, token.Range.Start, token.Range.End)
}
