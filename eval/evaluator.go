/*
File    : go-jrq/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the query evaluator of go-jrq.
// It walks a parsed AST against an input JSON value and produces either a
// result JSON value or a ranged error. The evaluator owns the lexical
// variable stack used by closures and the builtin function table, and it
// cooperates with the iterator framework to keep pipelines like
// .foo.map(|x| x*2).filter(|x| x>0).collect lazy.
package eval

import (
	jrqerrors "github.com/akashmaji946/go-jrq/errors"
	"github.com/akashmaji946/go-jrq/iter"
	"github.com/akashmaji946/go-jrq/json"
	"github.com/akashmaji946/go-jrq/lexer"
	"github.com/akashmaji946/go-jrq/parser"
)

// EvalData is the internal result of evaluating one AST position: either an
// owned JSON value or an owned iterator. Keeping iterators unmaterialized
// here is what lets pipeline fragments compose without building the
// intermediate lists.
type EvalData struct {
	json   json.Json     // the value, when isIter is false
	iter   iter.Iterator // the iterator, when isIter is true
	isIter bool          // discriminates the two variants
}

// fromJson wraps a JSON value into an EvalData.
func fromJson(j json.Json) EvalData {
	return EvalData{json: j}
}

// fromIter wraps an iterator into an EvalData.
func fromIter(i iter.Iterator) EvalData {
	return EvalData{iter: i, isIter: true}
}

// Evaluator holds the state for evaluating AST nodes against one input
// document. It serves as the execution engine for a single query run.
type Evaluator struct {
	// Input is the JSON document the query runs against.
	Input json.Json

	// Err is the sticky evaluation error. Once set, no further evaluation
	// produces new errors; subsequent steps observe the sticky state and
	// collapse to null so that unwinding stays uniform on all paths.
	Err *jrqerrors.JrqError

	// Range is the source range of the node currently being looked at.
	// The first error encountered captures it.
	Range lexer.Range

	// Vars is the lexical variable stack. Closure invocation pushes its
	// parameter bindings and pops exactly the same number on the way out.
	// Lookup walks from the top, so shadowing falls out naturally.
	Vars VariableStack
}

// Eval evaluates a parsed query against an input value.
//
// A nil node is the empty query and acts as the identity on the input.
// On success the result is a well-formed JSON value; on failure the first
// error encountered is returned with its source range.
func Eval(node parser.Node, input json.Json) (json.Json, *jrqerrors.JrqError) {
	e := &Evaluator{Input: input}

	data := e.evalNode(node)
	result := e.toJson(data)

	if e.Err != nil {
		return nil, e.Err
	}
	return result, nil
}

// evalNode evaluates a single AST node. Dispatch is a type switch over the
// node variants; closures are never evaluated here (they only appear as
// arguments in a function call and are applied by the builtin).
func (e *Evaluator) evalNode(node parser.Node) EvalData {
	if node == nil {
		// The empty query: identity on the input
		return fromJson(json.Copy(e.Input))
	}

	switch n := node.(type) {
	case *parser.PrimaryNode:
		return e.evalPrimary(n)
	case *parser.UnaryNode:
		return e.evalUnary(n)
	case *parser.BinaryNode:
		return e.evalBinary(n)
	case *parser.GroupingNode:
		return e.evalGrouping(n)
	case *parser.ListNode:
		return e.evalList(n)
	case *parser.ObjectNode:
		return e.evalObject(n)
	case *parser.AccessNode:
		return e.evalAccess(n)
	case *parser.FunctionCallNode:
		return e.evalFunction(n)
	case *parser.TrueNode:
		return fromJson(&json.Boolean{Value: true})
	case *parser.FalseNode:
		return fromJson(&json.Boolean{Value: false})
	case *parser.NullNode:
		return fromJson(&json.Null{})
	case *parser.ClosureNode:
		// Closures are only legal as builtin arguments
		e.Range = n.GetRange()
		e.setErr("Unexpected closure")
		return fromJson(&json.Null{})
	}

	return fromJson(&json.Null{})
}

// toJson coerces an EvalData to a JSON value: a value passes through, an
// iterator is collected into a list.
func (e *Evaluator) toJson(d EvalData) json.Json {
	if !d.isIter {
		return d.json
	}
	if d.iter == nil {
		return &json.Null{}
	}
	return iter.Collect(d.iter)
}

// toIter coerces an EvalData to an iterator: an iterator passes through, a
// list becomes a list iterator, an object becomes a key-value iterator, and
// anything else is a type error.
func (e *Evaluator) toIter(d EvalData) iter.Iterator {
	if d.isIter {
		return d.iter
	}
	switch v := d.json.(type) {
	case *json.List:
		return iter.List(v)
	case *json.Object:
		return iter.ObjectKeyValues(v)
	default:
		e.setErr("Expected Iterator, got %s", typeName(d.json))
		return nil
	}
}

// setErr records the first evaluation error at the current range.
// Later calls are ignored: the error is sticky.
func (e *Evaluator) setErr(format string, args ...interface{}) {
	if e.Err == nil {
		e.Err = jrqerrors.New(e.Range, format, args...)
	}
}

// hasErr reports whether the sticky error is set.
func (e *Evaluator) hasErr() bool {
	return e.Err != nil
}

// typeName returns the name of a value's type for error messages.
func typeName(j json.Json) string {
	if j == nil {
		return string(json.NullType)
	}
	return string(j.GetType())
}
