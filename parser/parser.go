/*
File    : go-jrq/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for the jrq query language.

The parser converts a stream of tokens from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (binary, unary, literals, identifiers)
- Access chains (.foo, .0, .(expr), [expr]) with a leading dot denoting
  the input document
- Builtin function calls (.map(...), .filter(...))
- Closures with identifier and destructuring list patterns
- List and object literals
- Operator precedence and associativity

Key Features:
- Pratt parsing algorithm with unary/binary function maps
- Ranges on every node for diagnostics
- Stops at the first error; remaining tokens are not consumed
*/
package parser

import (
	jrqerrors "github.com/akashmaji946/go-jrq/errors"
	"github.com/akashmaji946/go-jrq/lexer"
)

// unaryParseFunction parses a construct that begins at the current token
// (prefix operators and primaries).
type unaryParseFunction func() Node

// binaryParseFunction parses a construct that extends an already-parsed
// expression to its left (infix and postfix operators).
type binaryParseFunction func(left Node) Node

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse a jrq query into an AST.
type Parser struct {
	Lex       *lexer.Lexer // Lexer instance for tokenizing the query
	CurrToken lexer.Token  // Current token being processed
	NextToken lexer.Token  // Next token (for lookahead)
	PrevToken lexer.Token  // Previously consumed token (for ranges)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and literals
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix/postfix operators

	// The first error encountered. Once set, parsing stops and the
	// remaining tokens are left unconsumed.
	Err *jrqerrors.JrqError
}

// NewParser creates and initializes a new Parser instance for a query.
// The parser is ready to use immediately after creation; call Parse() to
// produce the AST.
func NewParser(src string) *Parser {
	// Create a lexer for the query text
	lex := lexer.NewLexer(src)

	par := &Parser{
		Lex: &lex,
	}

	// Initialize all parser state (maps, tokens)
	par.init()

	return par
}

// init initializes the parser's internal state: the Pratt function maps and
// the two-token lookahead window.
func (p *Parser) init() {
	p.UnaryFuncs = map[lexer.TokenType]unaryParseFunction{
		lexer.NUMBER_LIT:    p.parsePrimary,
		lexer.STRING_LIT:    p.parsePrimary,
		lexer.IDENTIFIER_ID: p.parsePrimary,
		lexer.TRUE_KEY:      p.parseTrue,
		lexer.FALSE_KEY:     p.parseFalse,
		lexer.NULL_KEY:      p.parseNull,
		lexer.MINUS_OP:      p.parseUnary,
		lexer.NOT_OP:        p.parseUnary,
		lexer.LEFT_PAREN:    p.parseGrouping,
		lexer.LEFT_BRACKET:  p.parseListLiteral,
		lexer.LEFT_BRACE:    p.parseObjectLiteral,
		lexer.BAR_OP:        p.parseClosure,
		lexer.OR_OP:         p.parseEmptyClosure,
		lexer.DOT_OP:        p.parseLeadingAccess,
	}

	p.BinaryFuncs = map[lexer.TokenType]binaryParseFunction{
		lexer.OR_OP:        p.parseBinary,
		lexer.AND_OP:       p.parseBinary,
		lexer.EQ_OP:        p.parseBinary,
		lexer.NE_OP:        p.parseBinary,
		lexer.LT_OP:        p.parseBinary,
		lexer.LE_OP:        p.parseBinary,
		lexer.GT_OP:        p.parseBinary,
		lexer.GE_OP:        p.parseBinary,
		lexer.PLUS_OP:      p.parseBinary,
		lexer.MINUS_OP:     p.parseBinary,
		lexer.MUL_OP:       p.parseBinary,
		lexer.DIV_OP:       p.parseBinary,
		lexer.MOD_OP:       p.parseBinary,
		lexer.DOT_OP:       p.parseAccessChain,
		lexer.LEFT_BRACKET: p.parseIndex,
	}

	// Fill the CurrToken/NextToken lookahead window
	p.advance()
	p.advance()
}

// Parse parses the whole query into an AST.
//
// An empty query produces a nil node, which the evaluator treats as the
// identity on the input document. Trailing tokens after a complete
// expression are an error ("Expected eof").
func (p *Parser) Parse() (Node, *jrqerrors.JrqError) {
	if p.Err != nil {
		return nil, p.Err
	}
	// Empty query: identity on the input
	if p.CurrToken.Type == lexer.EOF_TYPE {
		return nil, nil
	}

	node := p.parseExpression(MINIMUM_PRIORITY)
	p.expect(lexer.EOF_TYPE, jrqerrors.ERROR_EXPECTED_EOF)

	if p.Err != nil {
		return nil, p.Err
	}
	return node, nil
}

// advance shifts the lookahead window by one token, capturing lexer
// failures into the error slot.
func (p *Parser) advance() {
	if p.Err != nil {
		return
	}
	token, lexErr := p.Lex.NextToken()
	if lexErr != nil {
		p.Err = jrqerrors.FromLexError(lexErr)
		return
	}
	p.PrevToken = p.CurrToken
	p.CurrToken = p.NextToken
	p.NextToken = token
}

// matches consumes the current token and reports true if it has one of the
// given types; otherwise it leaves the token in place.
func (p *Parser) matches(types ...lexer.TokenType) bool {
	if p.Err != nil {
		return false
	}
	for _, tokenType := range types {
		if p.CurrToken.Type == tokenType {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has the wanted type, and records
// the given stable error message otherwise.
func (p *Parser) expect(tokenType lexer.TokenType, message string) {
	if p.Err != nil {
		return
	}
	if p.CurrToken.Type == tokenType {
		p.advance()
		return
	}
	p.setErr(p.CurrToken.Range, message)
}

// setErr records the first error; later calls are ignored.
func (p *Parser) setErr(r lexer.Range, message string) {
	if p.Err == nil {
		p.Err = jrqerrors.New(r, "%s", message)
	}
}

// parseExpression is the heart of the Pratt parser. It parses a prefix
// construct for the current token and then keeps extending it with infix and
// postfix constructs as long as their precedence exceeds the given priority.
func (p *Parser) parseExpression(priority int) Node {
	if p.Err != nil {
		return nil
	}

	unary, ok := p.UnaryFuncs[p.CurrToken.Type]
	if !ok {
		p.setErr(p.CurrToken.Range, jrqerrors.ERROR_UNEXPECTED_TOKEN)
		return nil
	}
	left := unary()

	for p.Err == nil {
		prec := getPrecedence(&p.CurrToken)
		// <= keeps same-precedence operators left-associative
		if prec <= priority {
			break
		}
		binary, ok := p.BinaryFuncs[p.CurrToken.Type]
		if !ok {
			break
		}
		left = binary(left)
	}

	return left
}
