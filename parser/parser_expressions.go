/*
File    : go-jrq/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	jrqerrors "github.com/akashmaji946/go-jrq/errors"
	"github.com/akashmaji946/go-jrq/lexer"
)

// parsePrimary parses a number, string or identifier token into a
// PrimaryNode. These are the only token kinds a PrimaryNode ever holds.
func (p *Parser) parsePrimary() Node {
	node := &PrimaryNode{Token: p.CurrToken}
	p.advance()
	return node
}

// parseTrue parses the literal true.
func (p *Parser) parseTrue() Node {
	node := &TrueNode{Range: p.CurrToken.Range}
	p.advance()
	return node
}

// parseFalse parses the literal false.
func (p *Parser) parseFalse() Node {
	node := &FalseNode{Range: p.CurrToken.Range}
	p.advance()
	return node
}

// parseNull parses the literal null.
func (p *Parser) parseNull() Node {
	node := &NullNode{Range: p.CurrToken.Range}
	p.advance()
	return node
}

// parseUnary parses a prefix operation: ("-" | "!") expr.
// The operand is parsed at PREFIX_PRIORITY so that access chains still bind
// tighter: -x.foo negates the whole chain.
func (p *Parser) parseUnary() Node {
	operator := p.CurrToken
	p.advance()

	rhs := p.parseExpression(PREFIX_PRIORITY)
	if p.Err != nil {
		return nil
	}

	return &UnaryNode{
		Operator: operator.Type,
		Rhs:      rhs,
		Range:    lexer.RangeBetween(operator.Range, rhs.GetRange()),
	}
}

// parseBinary parses an infix operation: <lhs> operator <rhs>.
// The right operand is parsed at the operator's own precedence, which keeps
// same-precedence chains left-associative.
func (p *Parser) parseBinary(left Node) Node {
	operator := p.CurrToken
	prec := getPrecedence(&operator)
	p.advance()

	rhs := p.parseExpression(prec)
	if p.Err != nil {
		return nil
	}

	return &BinaryNode{
		Lhs:      left,
		Operator: operator.Type,
		Rhs:      rhs,
		Range:    lexer.RangeBetween(left.GetRange(), rhs.GetRange()),
	}
}

// parseGrouping parses a parenthesized expression: "(" expr ")".
func (p *Parser) parseGrouping() Node {
	start := p.CurrToken.Range
	p.advance()

	inner := p.parseExpression(MINIMUM_PRIORITY)
	p.expect(lexer.RIGHT_PAREN, jrqerrors.ERROR_MISSING_RPAREN)
	if p.Err != nil {
		return nil
	}

	return &GroupingNode{
		Inner: inner,
		Range: lexer.RangeBetween(start, p.PrevToken.Range),
	}
}

// parseListLiteral parses a list literal: "[" (expr ",")* "]".
func (p *Parser) parseListLiteral() Node {
	start := p.CurrToken.Range
	p.advance()

	elements := make([]Node, 0)
	if p.CurrToken.Type != lexer.RIGHT_BRACKET {
		for {
			el := p.parseExpression(MINIMUM_PRIORITY)
			if p.Err != nil {
				return nil
			}
			elements = append(elements, el)
			if !p.matches(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	p.expect(lexer.RIGHT_BRACKET, jrqerrors.ERROR_MISSING_RBRACKET)
	if p.Err != nil {
		return nil
	}

	return &ListNode{
		Elements: elements,
		Range:    lexer.RangeBetween(start, p.PrevToken.Range),
	}
}

// parseObjectLiteral parses an object literal: "{" (expr ":" expr ",")* "}".
// Keys may be arbitrary expressions; they are resolved to strings at
// evaluation time.
func (p *Parser) parseObjectLiteral() Node {
	start := p.CurrToken.Range
	p.advance()

	fields := make([]FieldNode, 0)
	if p.CurrToken.Type != lexer.RIGHT_BRACE {
		for {
			key := p.parseExpression(MINIMUM_PRIORITY)
			if p.Err != nil {
				return nil
			}
			p.expect(lexer.COLON_DELIM, jrqerrors.ERROR_EXPECTED_COLON)
			value := p.parseExpression(MINIMUM_PRIORITY)
			if p.Err != nil {
				return nil
			}
			fields = append(fields, FieldNode{Key: key, Value: value})
			if !p.matches(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	p.expect(lexer.RIGHT_BRACE, jrqerrors.ERROR_MISSING_RBRACE)
	if p.Err != nil {
		return nil
	}

	return &ObjectNode{
		Fields: fields,
		Range:  lexer.RangeBetween(start, p.PrevToken.Range),
	}
}

// parseClosure parses a closure: "|" (pattern ",")* "|" expr.
func (p *Parser) parseClosure() Node {
	start := p.CurrToken.Range
	p.advance()

	params := make([]Node, 0)
	if p.CurrToken.Type != lexer.BAR_OP {
		for {
			pattern := p.parsePattern()
			if p.Err != nil {
				return nil
			}
			params = append(params, pattern)
			if !p.matches(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	p.expect(lexer.BAR_OP, jrqerrors.ERROR_MISSING_CLOSURE)
	body := p.parseExpression(MINIMUM_PRIORITY)
	if p.Err != nil {
		return nil
	}

	return &ClosureNode{
		Params: params,
		Body:   body,
		Range:  lexer.RangeBetween(start, body.GetRange()),
	}
}

// parseEmptyClosure parses "||" expr, the zero-parameter closure. The two
// bars lex as a single OR token, so this has its own entry point.
func (p *Parser) parseEmptyClosure() Node {
	start := p.CurrToken.Range
	p.advance()

	body := p.parseExpression(MINIMUM_PRIORITY)
	if p.Err != nil {
		return nil
	}

	return &ClosureNode{
		Params: make([]Node, 0),
		Body:   body,
		Range:  lexer.RangeBetween(start, body.GetRange()),
	}
}

// parsePattern parses a closure parameter pattern: either an identifier or a
// bracketed list of nested patterns (destructuring).
func (p *Parser) parsePattern() Node {
	switch p.CurrToken.Type {
	case lexer.IDENTIFIER_ID:
		node := &PrimaryNode{Token: p.CurrToken}
		p.advance()
		return node
	case lexer.LEFT_BRACKET:
		start := p.CurrToken.Range
		p.advance()

		patterns := make([]Node, 0)
		if p.CurrToken.Type != lexer.RIGHT_BRACKET {
			for {
				pattern := p.parsePattern()
				if p.Err != nil {
					return nil
				}
				patterns = append(patterns, pattern)
				if !p.matches(lexer.COMMA_DELIM) {
					break
				}
			}
		}

		p.expect(lexer.RIGHT_BRACKET, jrqerrors.ERROR_MISSING_RBRACKET)
		if p.Err != nil {
			return nil
		}

		return &ListNode{
			Elements: patterns,
			Range:    lexer.RangeBetween(start, p.PrevToken.Range),
		}
	default:
		p.setErr(p.CurrToken.Range, jrqerrors.ERROR_EXPECTED_IDENT)
		return nil
	}
}

// BUILTIN_NAMES is the fixed vocabulary of builtin functions. A bare .ident
// whose name appears here parses as a zero-argument function call
// (.collect, .sum); any other bare .ident is a field access.
var BUILTIN_NAMES = map[string]bool{
	"map":        true,
	"filter":     true,
	"iter":       true,
	"collect":    true,
	"keys":       true,
	"values":     true,
	"enumerate":  true,
	"zip":        true,
	"sum":        true,
	"product":    true,
	"flatten":    true,
	"join":       true,
	"length":     true,
	"skip_while": true,
	"take_while": true,
}

// parseLeadingAccess parses an access chain that starts with a bare dot,
// which denotes the input document: ".foo", ".0", ".(expr)", ".map(...)".
func (p *Parser) parseLeadingAccess() Node {
	return p.parseAccessChain(nil)
}

// parseAccessChain parses one postfix link following a dot:
//
//	left "." IDENT            field access (desugared to a string accessor)
//	left "." NUMBER           index access
//	left "." "(" expr ")"     computed accessor
//	left "." IDENT "(" ... ") builtin function call
//
// A nil left means the chain applies to the input document.
func (p *Parser) parseAccessChain(left Node) Node {
	dot := p.CurrToken
	p.advance()

	start := dot.Range
	if left != nil {
		start = left.GetRange()
	}

	switch p.CurrToken.Type {
	case lexer.IDENTIFIER_ID:
		ident := p.CurrToken
		if p.NextToken.Type == lexer.LEFT_PAREN {
			// Builtin function call
			p.advance() // consume the identifier
			p.advance() // consume '('

			args := make([]Node, 0)
			if p.CurrToken.Type != lexer.RIGHT_PAREN {
				for {
					arg := p.parseExpression(MINIMUM_PRIORITY)
					if p.Err != nil {
						return nil
					}
					args = append(args, arg)
					if !p.matches(lexer.COMMA_DELIM) {
						break
					}
				}
			}
			p.expect(lexer.RIGHT_PAREN, jrqerrors.ERROR_MISSING_RPAREN)
			if p.Err != nil {
				return nil
			}

			return &FunctionCallNode{
				Callee: left,
				Name:   ident,
				Args:   args,
				Range:  lexer.RangeBetween(start, p.PrevToken.Range),
			}
		}

		// A bare builtin name is a zero-argument call: .collect, .sum
		if BUILTIN_NAMES[ident.Literal] {
			p.advance()
			return &FunctionCallNode{
				Callee: left,
				Name:   ident,
				Args:   make([]Node, 0),
				Range:  lexer.RangeBetween(start, ident.Range),
			}
		}

		// Field access: .foo desugars to .("foo")
		p.advance()
		strToken := ident
		strToken.Type = lexer.STRING_LIT
		return &AccessNode{
			Inner:    left,
			Accessor: &PrimaryNode{Token: strToken},
			Range:    lexer.RangeBetween(start, ident.Range),
		}
	case lexer.NUMBER_LIT:
		// Index access: .0
		number := p.CurrToken
		p.advance()
		return &AccessNode{
			Inner:    left,
			Accessor: &PrimaryNode{Token: number},
			Range:    lexer.RangeBetween(start, number.Range),
		}
	case lexer.LEFT_PAREN:
		// Computed accessor: .(expr)
		p.advance()
		accessor := p.parseExpression(MINIMUM_PRIORITY)
		p.expect(lexer.RIGHT_PAREN, jrqerrors.ERROR_MISSING_RPAREN)
		if p.Err != nil {
			return nil
		}
		return &AccessNode{
			Inner:    left,
			Accessor: accessor,
			Range:    lexer.RangeBetween(start, p.PrevToken.Range),
		}
	default:
		p.setErr(p.CurrToken.Range, jrqerrors.ERROR_EXPECTED_IDENT)
		return nil
	}
}

// parseIndex parses a bracket access: left "[" expr "]".
func (p *Parser) parseIndex(left Node) Node {
	p.advance() // consume '['

	accessor := p.parseExpression(MINIMUM_PRIORITY)
	p.expect(lexer.RIGHT_BRACKET, jrqerrors.ERROR_MISSING_RBRACKET)
	if p.Err != nil {
		return nil
	}

	return &AccessNode{
		Inner:    left,
		Accessor: accessor,
		Range:    lexer.RangeBetween(left.GetRange(), p.PrevToken.Range),
	}
}
