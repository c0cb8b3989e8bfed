/*
File    : go-jrq/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/go-jrq/json"
	"github.com/akashmaji946/go-jrq/lexer"
	"github.com/akashmaji946/go-jrq/parser"
)

// evalPrimary evaluates an identifier, string literal or number literal.
// Identifiers resolve through the variable stack; a missing binding is a
// runtime error.
func (e *Evaluator) evalPrimary(n *parser.PrimaryNode) EvalData {
	e.Range = n.GetRange()

	switch n.Token.Type {
	case lexer.IDENTIFIER_ID:
		return fromJson(e.getVariable(n.Token.Literal))
	case lexer.STRING_LIT:
		return fromJson(&json.String{Value: n.Token.Literal})
	case lexer.NUMBER_LIT:
		return fromJson(&json.Number{Value: n.Token.Number})
	}

	// The parser never produces any other primary kind
	return fromJson(&json.Null{})
}

// evalUnary evaluates a prefix operation. '-' requires a number, '!' requires
// a bool; anything else is a ranged type error.
func (e *Evaluator) evalUnary(n *parser.UnaryNode) EvalData {
	j := e.toJson(e.evalNode(n.Rhs))
	e.Range = n.GetRange()
	if e.hasErr() {
		return fromJson(&json.Null{})
	}

	switch n.Operator {
	case lexer.MINUS_OP:
		num, ok := j.(*json.Number)
		if !ok {
			e.setErr("operator '-' expected number, got %s", typeName(j))
			return fromJson(&json.Null{})
		}
		return fromJson(&json.Number{Value: -num.Value})
	case lexer.NOT_OP:
		b, ok := j.(*json.Boolean)
		if !ok {
			e.setErr("operator '!' expected bool, got %s", typeName(j))
			return fromJson(&json.Null{})
		}
		return fromJson(&json.Boolean{Value: !b.Value})
	}

	return fromJson(&json.Null{})
}

// evalBinary evaluates a binary operation. Equality is polymorphic over the
// deep equality of the value model; every other operator requires its
// specific operand types. Both operands evaluate before any check, keeping
// evaluation strictly left-to-right.
func (e *Evaluator) evalBinary(n *parser.BinaryNode) EvalData {
	lhs := e.toJson(e.evalNode(n.Lhs))
	rhs := e.toJson(e.evalNode(n.Rhs))
	e.Range = n.GetRange()
	if e.hasErr() {
		return fromJson(&json.Null{})
	}

	switch n.Operator {
	case lexer.EQ_OP:
		return fromJson(&json.Boolean{Value: json.Equal(lhs, rhs)})
	case lexer.NE_OP:
		return fromJson(&json.Boolean{Value: !json.Equal(lhs, rhs)})

	case lexer.OR_OP, lexer.AND_OP:
		lb, rb, ok := e.boolOperands(n.Operator, lhs, rhs)
		if !ok {
			return fromJson(&json.Null{})
		}
		if n.Operator == lexer.OR_OP {
			return fromJson(&json.Boolean{Value: lb || rb})
		}
		return fromJson(&json.Boolean{Value: lb && rb})
	}

	// All remaining operators take numbers
	ln, rn, ok := e.numberOperands(n.Operator, lhs, rhs)
	if !ok {
		return fromJson(&json.Null{})
	}

	switch n.Operator {
	case lexer.LT_OP:
		return fromJson(&json.Boolean{Value: ln < rn})
	case lexer.LE_OP:
		return fromJson(&json.Boolean{Value: ln <= rn})
	case lexer.GT_OP:
		return fromJson(&json.Boolean{Value: ln > rn})
	case lexer.GE_OP:
		return fromJson(&json.Boolean{Value: ln >= rn})
	case lexer.PLUS_OP:
		return fromJson(&json.Number{Value: ln + rn})
	case lexer.MINUS_OP:
		return fromJson(&json.Number{Value: ln - rn})
	case lexer.MUL_OP:
		return fromJson(&json.Number{Value: ln * rn})
	case lexer.DIV_OP:
		// Division by zero is not an error: IEEE Inf/NaN falls out
		return fromJson(&json.Number{Value: ln / rn})
	case lexer.MOD_OP:
		return fromJson(&json.Number{Value: math.Mod(ln, rn)})
	}

	return fromJson(&json.Null{})
}

// boolOperands type-checks both operands of a boolean operator.
func (e *Evaluator) boolOperands(op lexer.TokenType, lhs json.Json, rhs json.Json) (bool, bool, bool) {
	lb, ok := lhs.(*json.Boolean)
	if !ok {
		e.setErr("operator '%s' expected bool, got %s", op, typeName(lhs))
		return false, false, false
	}
	rb, ok := rhs.(*json.Boolean)
	if !ok {
		e.setErr("operator '%s' expected bool, got %s", op, typeName(rhs))
		return false, false, false
	}
	return lb.Value, rb.Value, true
}

// numberOperands type-checks both operands of a numeric operator.
func (e *Evaluator) numberOperands(op lexer.TokenType, lhs json.Json, rhs json.Json) (float64, float64, bool) {
	ln, ok := lhs.(*json.Number)
	if !ok {
		e.setErr("operator '%s' expected number, got %s", op, typeName(lhs))
		return 0, 0, false
	}
	rn, ok := rhs.(*json.Number)
	if !ok {
		e.setErr("operator '%s' expected number, got %s", op, typeName(rhs))
		return 0, 0, false
	}
	return ln.Value, rn.Value, true
}

// evalGrouping evaluates a parenthesized expression.
func (e *Evaluator) evalGrouping(n *parser.GroupingNode) EvalData {
	data := e.evalNode(n.Inner)
	e.Range = n.GetRange()
	return data
}

// evalList evaluates a list literal: each element evaluates to JSON in
// source order, and the first error wins.
func (e *Evaluator) evalList(n *parser.ListNode) EvalData {
	list := json.NewList()

	for _, el := range n.Elements {
		value := e.toJson(e.evalNode(el))
		if e.hasErr() {
			return fromJson(&json.Null{})
		}
		list.Append(value)
	}

	e.Range = n.GetRange()
	return fromJson(list)
}

// evalObject evaluates an object literal. Each field evaluates key then
// value in source order; the key must reduce to a string. Duplicate keys
// overwrite the earlier value at the earlier position.
func (e *Evaluator) evalObject(n *parser.ObjectNode) EvalData {
	obj := json.NewObject()

	for _, field := range n.Fields {
		key := e.toJson(e.evalNode(field.Key))
		value := e.toJson(e.evalNode(field.Value))
		e.Range = field.Key.GetRange()
		if e.hasErr() {
			return fromJson(&json.Null{})
		}

		str, ok := key.(*json.String)
		if !ok {
			e.setErr("Expected string key in json literal")
			return fromJson(&json.Null{})
		}
		obj.Set(str.Value, value)
	}

	e.Range = n.GetRange()
	return fromJson(obj)
}

// evalAccess evaluates one access link: list indexing by number (floored,
// out-of-range yields null), object field lookup by string (absent key
// yields null). Any other accessed type is a type error. A nil Inner uses
// the evaluator's input value.
func (e *Evaluator) evalAccess(n *parser.AccessNode) EvalData {
	inner := e.toJson(e.evalNode(n.Inner))
	accessor := e.toJson(e.evalNode(n.Accessor))
	e.Range = n.GetRange()
	if e.hasErr() {
		return fromJson(&json.Null{})
	}

	switch v := inner.(type) {
	case *json.List:
		num, ok := accessor.(*json.Number)
		if !ok {
			e.setErr("expected number to access list, got %s", typeName(accessor))
			return fromJson(&json.Null{})
		}
		el, ok := v.Get(int(math.Floor(num.Value)))
		if !ok {
			// Out-of-range access yields null, not an error
			return fromJson(&json.Null{})
		}
		return fromJson(json.Copy(el))
	case *json.Object:
		str, ok := accessor.(*json.String)
		if !ok {
			e.setErr("expected string to access object, got %s", typeName(accessor))
			return fromJson(&json.Null{})
		}
		value, ok := v.Get(str.Value)
		if !ok {
			// Absent keys yield null, not an error
			return fromJson(&json.Null{})
		}
		return fromJson(json.Copy(value))
	default:
		e.setErr("cannot access a value of type %s", typeName(inner))
		return fromJson(&json.Null{})
	}
}
