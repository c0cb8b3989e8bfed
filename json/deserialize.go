/*
File    : go-jrq/json/deserialize.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package json

import (
	jrqerrors "github.com/akashmaji946/go-jrq/errors"
	"github.com/akashmaji946/go-jrq/lexer"
)

// deserializer is a thin recursive-descent consumer over the lexer's token
// stream. It accepts strictly JSON input: true/false/null, numbers
// (optionally preceded by '-'), strings, arrays and objects with string keys.
type deserializer struct {
	lex  lexer.Lexer
	curr lexer.Token
	prev lexer.Token
	err  *jrqerrors.JrqError
}

// Deserialize parses a JSON document into a value.
//
// Trailing tokens after the top-level value are an error ("Expected eof").
// Duplicate keys in an object retain the later value at the earlier position.
// Object keys must be string tokens; identifier keys are rejected.
func Deserialize(src string) (Json, *jrqerrors.JrqError) {
	d := &deserializer{lex: lexer.NewLexer(src)}
	d.advance()

	value := d.parseValue()
	d.expect(lexer.EOF_TYPE, jrqerrors.ERROR_EXPECTED_EOF)
	if d.err != nil {
		return nil, d.err
	}
	return value, nil
}

// advance pulls the next token, capturing lexer failures into the error slot.
func (d *deserializer) advance() {
	if d.err != nil {
		return
	}
	token, lexErr := d.lex.NextToken()
	if lexErr != nil {
		d.err = jrqerrors.FromLexError(lexErr)
		return
	}
	d.prev = d.curr
	d.curr = token
}

// matches consumes the current token and reports true if it has one of the
// given types; otherwise it leaves the token in place.
func (d *deserializer) matches(types ...lexer.TokenType) bool {
	if d.err != nil {
		return false
	}
	for _, tokenType := range types {
		if d.curr.Type == tokenType {
			d.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has the wanted type, and records
// the given error message otherwise.
func (d *deserializer) expect(tokenType lexer.TokenType, message string) {
	if d.err != nil {
		return
	}
	if d.curr.Type == tokenType {
		d.advance()
		return
	}
	d.err = jrqerrors.New(d.curr.Range, "%s", message)
}

func (d *deserializer) parseValue() Json {
	if d.matches(lexer.TRUE_KEY) {
		return &Boolean{Value: true}
	}
	if d.matches(lexer.FALSE_KEY) {
		return &Boolean{Value: false}
	}
	if d.matches(lexer.NULL_KEY) {
		return &Null{}
	}
	if d.matches(lexer.LEFT_BRACE) {
		return d.parseObject()
	}
	if d.matches(lexer.LEFT_BRACKET) {
		return d.parseList()
	}

	if d.matches(lexer.STRING_LIT, lexer.NUMBER_LIT, lexer.MINUS_OP) {
		token := d.prev
		switch token.Type {
		case lexer.STRING_LIT:
			return &String{Value: token.Literal}
		case lexer.NUMBER_LIT:
			return &Number{Value: token.Number}
		case lexer.MINUS_OP:
			// Only numeric literals may carry a leading minus
			d.expect(lexer.NUMBER_LIT, "Invalid numerical literal")
			if d.err != nil {
				return &Null{}
			}
			return &Number{Value: -d.prev.Number}
		}
	}

	if d.err == nil {
		d.err = jrqerrors.New(d.curr.Range, "%s", jrqerrors.ERROR_UNEXPECTED_TOKEN)
	}
	return &Null{}
}

func (d *deserializer) parseObject() Json {
	obj := NewObject()

	if d.curr.Type != lexer.RIGHT_BRACE {
		for {
			d.expect(lexer.STRING_LIT, jrqerrors.ERROR_EXPECTED_STRING)
			if d.err != nil {
				return obj
			}
			key := d.prev.Literal

			d.expect(lexer.COLON_DELIM, jrqerrors.ERROR_EXPECTED_COLON)
			if d.err != nil {
				return obj
			}

			value := d.parseValue()
			if d.err != nil {
				return obj
			}
			// Last write wins, first position kept
			obj.Set(key, value)

			if !d.matches(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	d.expect(lexer.RIGHT_BRACE, jrqerrors.ERROR_MISSING_RBRACE)
	return obj
}

func (d *deserializer) parseList() Json {
	list := NewList()

	if d.curr.Type != lexer.RIGHT_BRACKET {
		for {
			el := d.parseValue()
			if d.err != nil {
				return list
			}
			list.Append(el)

			if !d.matches(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	d.expect(lexer.RIGHT_BRACKET, jrqerrors.ERROR_MISSING_RBRACKET)
	return list
}
