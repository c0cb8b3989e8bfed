/*
File    : go-jrq/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-jrq/lexer"

// Operator precedence constants.
// Higher number = higher precedence (binds tighter).
//
// Precedence Hierarchy (lowest to highest):
// 1. Logical OR
// 2. Logical AND
// 3. Equality operators
// 4. Relational operators
// 5. Additive operators
// 6. Multiplicative operators
// 7. Unary/Prefix operators
// 8. Access/Call operators (postfix)
//
// Example: In ".a + b * c", multiplication has higher precedence than
// addition, so it's parsed as ".a + (b * c)".
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Logical OR: ||
	OR_PRIORITY = 40

	// Logical AND: &&
	AND_PRIORITY = 50

	// Equality operators: == !=
	EQUALITY_PRIORITY = 90

	// Relational operators: < > <= >=
	RELATIONAL_PRIORITY = 100

	// Additive operators: + -
	PLUS_PRIORITY = 120

	// Multiplicative operators: * / %
	MUL_PRIORITY = 130

	// Unary/Prefix operators: ! -
	PREFIX_PRIORITY = 140

	// Access operator: .
	// Example: .foo, obj.bar, list.0, .map(...)
	MEMBER_ACCESS_PRIORITY = 145

	// Index operator (postfix brackets)
	// Example: arr[0], arr[i + 1]
	INDEX_PRIORITY = 160
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the Pratt parsing algorithm, determining
// how tightly operators bind to their operands.
//
// Returns -1 for tokens that are not infix/postfix operators, which makes
// the expression loop stop in front of them.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	case lexer.OR_OP:
		return OR_PRIORITY
	case lexer.AND_OP:
		return AND_PRIORITY

	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	case lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP:
		return RELATIONAL_PRIORITY

	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	case lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		return MUL_PRIORITY

	case lexer.DOT_OP:
		return MEMBER_ACCESS_PRIORITY

	case lexer.LEFT_BRACKET:
		return INDEX_PRIORITY

	default:
		// Not an operator
		return -1
	}
}
