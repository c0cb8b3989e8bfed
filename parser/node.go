/*
File    : go-jrq/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/go-jrq/lexer"
)

// Node is the base interface for all nodes of the AST.
// Literal(): returns a source-like string representation of the node
// GetRange(): returns the inclusive source span the node covers
type Node interface {
	Literal() string
	GetRange() lexer.Range
}

// PrimaryNode represents a primitive value: an identifier (foo_bar),
// a string literal ("foo") or a number literal (1029).
// The parser never produces a PrimaryNode with any other token kind.
type PrimaryNode struct {
	Token lexer.Token // The ident, string or number token
}

// PrimaryNode.Literal(): string representation of the node
func (node *PrimaryNode) Literal() string {
	if node.Token.Type == lexer.STRING_LIT {
		return "\"" + node.Token.Literal + "\""
	}
	return node.Token.Literal
}

// PrimaryNode.GetRange(): source span of the node
func (node *PrimaryNode) GetRange() lexer.Range {
	return node.Token.Range
}

// UnaryNode represents a prefix operation:
// ("-" | "!") expr
type UnaryNode struct {
	Operator lexer.TokenType // MINUS_OP or NOT_OP
	Rhs      Node            // The operand
	Range    lexer.Range     // Operator through operand
}

// UnaryNode.Literal(): string representation of the node
func (node *UnaryNode) Literal() string {
	return string(node.Operator) + node.Rhs.Literal()
}

// UnaryNode.GetRange(): source span of the node
func (node *UnaryNode) GetRange() lexer.Range {
	return node.Range
}

// BinaryNode represents a binary operation:
// <expr: lhs> operator <expr: rhs>
type BinaryNode struct {
	Lhs      Node            // Left operand
	Operator lexer.TokenType // One of || && == != < <= > >= + - * / %
	Rhs      Node            // Right operand
	Range    lexer.Range     // Left operand through right operand
}

// BinaryNode.Literal(): string representation of the node
func (node *BinaryNode) Literal() string {
	return node.Lhs.Literal() + string(node.Operator) + node.Rhs.Literal()
}

// BinaryNode.GetRange(): source span of the node
func (node *BinaryNode) GetRange() lexer.Range {
	return node.Range
}

// GroupingNode represents a parenthesized expression:
// "(" expr ")"
type GroupingNode struct {
	Inner Node        // The wrapped expression
	Range lexer.Range // Opening through closing parenthesis
}

// GroupingNode.Literal(): string representation of the node
func (node *GroupingNode) Literal() string {
	return "(" + node.Inner.Literal() + ")"
}

// GroupingNode.GetRange(): source span of the node
func (node *GroupingNode) GetRange() lexer.Range {
	return node.Range
}

// ListNode represents a list literal:
// "[" (expr ",")* "]"
// It doubles as the destructuring list pattern of a closure.
type ListNode struct {
	Elements []Node      // The element expressions, in order
	Range    lexer.Range // Opening through closing bracket
}

// ListNode.Literal(): string representation of the node
func (node *ListNode) Literal() string {
	parts := make([]string, len(node.Elements))
	for i, el := range node.Elements {
		parts[i] = el.Literal()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ListNode.GetRange(): source span of the node
func (node *ListNode) GetRange() lexer.Range {
	return node.Range
}

// FieldNode is a single key/value field of an object literal:
// expr ":" expr
// Keys may be arbitrary expressions; they must reduce to strings at
// evaluation time.
type FieldNode struct {
	Key   Node // The key expression
	Value Node // The value expression
}

// FieldNode.Literal(): string representation of the field
func (node *FieldNode) Literal() string {
	return node.Key.Literal() + ": " + node.Value.Literal()
}

// ObjectNode represents an object literal:
// "{" (field ",")* "}"
type ObjectNode struct {
	Fields []FieldNode // The fields, in source order
	Range  lexer.Range // Opening through closing brace
}

// ObjectNode.Literal(): string representation of the node
func (node *ObjectNode) Literal() string {
	parts := make([]string, len(node.Fields))
	for i, field := range node.Fields {
		parts[i] = field.Literal()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ObjectNode.GetRange(): source span of the node
func (node *ObjectNode) GetRange() lexer.Range {
	return node.Range
}

// AccessNode represents one link of an access chain:
// inner "." accessor  or  inner "[" accessor "]"
// A nil Inner means the access applies to the evaluator's input value
// (a leading "." in the query). Identifier accessors like .foo are
// desugared by the parser into string accessors.
type AccessNode struct {
	Inner    Node        // The accessed expression, nil for the input
	Accessor Node        // The key or index expression
	Range    lexer.Range // Inner through accessor
}

// AccessNode.Literal(): string representation of the node
func (node *AccessNode) Literal() string {
	inner := ""
	if node.Inner != nil {
		inner = node.Inner.Literal()
	}
	return inner + ".(" + node.Accessor.Literal() + ")"
}

// AccessNode.GetRange(): source span of the node
func (node *AccessNode) GetRange() lexer.Range {
	return node.Range
}

// FunctionCallNode represents a builtin function call:
// callee "." name "(" (expr ",")* ")"
// or, for a builtin name written without parentheses, callee "." name with
// no arguments.
// A nil Callee means the call applies to the evaluator's input value
// (a leading "." in the query).
type FunctionCallNode struct {
	Callee Node        // The caller expression, nil for the input
	Name   lexer.Token // The identifier token naming the builtin
	Args   []Node      // The argument expressions, in order
	Range  lexer.Range // Callee through closing parenthesis (through the name when parenless)
}

// FunctionCallNode.Literal(): string representation of the node
func (node *FunctionCallNode) Literal() string {
	parts := make([]string, len(node.Args))
	for i, arg := range node.Args {
		parts[i] = arg.Literal()
	}
	callee := ""
	if node.Callee != nil {
		callee = node.Callee.Literal()
	}
	return callee + "." + node.Name.Literal + "(" + strings.Join(parts, ", ") + ")"
}

// FunctionCallNode.GetRange(): source span of the node
func (node *FunctionCallNode) GetRange() lexer.Range {
	return node.Range
}

// ClosureNode represents a closure argument:
// "|" (pattern ",")* "|" expr
// Each parameter is a pattern: either a PrimaryNode holding an identifier or
// a ListNode of nested patterns (destructuring). Closures only ever appear as
// arguments in a FunctionCallNode; they are never evaluated standalone.
type ClosureNode struct {
	Params []Node      // The parameter patterns, in order
	Body   Node        // The closure body expression
	Range  lexer.Range // Opening bar through body
}

// ClosureNode.Literal(): string representation of the node
func (node *ClosureNode) Literal() string {
	parts := make([]string, len(node.Params))
	for i, param := range node.Params {
		parts[i] = param.Literal()
	}
	return "|" + strings.Join(parts, ", ") + "| " + node.Body.Literal()
}

// ClosureNode.GetRange(): source span of the node
func (node *ClosureNode) GetRange() lexer.Range {
	return node.Range
}

// TrueNode represents the literal true.
type TrueNode struct {
	Range lexer.Range
}

// TrueNode.Literal(): string representation of the node
func (node *TrueNode) Literal() string { return "true" }

// TrueNode.GetRange(): source span of the node
func (node *TrueNode) GetRange() lexer.Range { return node.Range }

// FalseNode represents the literal false.
type FalseNode struct {
	Range lexer.Range
}

// FalseNode.Literal(): string representation of the node
func (node *FalseNode) Literal() string { return "false" }

// FalseNode.GetRange(): source span of the node
func (node *FalseNode) GetRange() lexer.Range { return node.Range }

// NullNode represents the literal null.
type NullNode struct {
	Range lexer.Range
}

// NullNode.Literal(): string representation of the node
func (node *NullNode) Literal() string { return "null" }

// NullNode.GetRange(): source span of the node
func (node *NullNode) GetRange() lexer.Range { return node.Range }
