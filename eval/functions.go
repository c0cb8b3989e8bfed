/*
File    : go-jrq/eval/functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-jrq/json"
	"github.com/akashmaji946/go-jrq/parser"
)

// callerKind declares what a builtin expects its caller to be.
// In `[10, 2].sum`, the list is the caller.
type callerKind int

const (
	callerAny           callerKind = iota // no caller constraint
	callerIterator                        // anything that coerces to an iterator
	callerObject                          // a JSON object
	callerList                            // a JSON list
	callerListOfNumbers                   // a JSON list whose elements are numbers
	callerListOfStrings                   // a JSON list whose elements are strings
)

// name returns the caller kind's name for error messages.
func (k callerKind) name() string {
	switch k {
	case callerIterator:
		return "iterator"
	case callerObject:
		return string(json.ObjectType)
	case callerList:
		return string(json.ListType)
	case callerListOfNumbers:
		return "list of number"
	case callerListOfStrings:
		return "list of string"
	}
	return "any"
}

// param declares one expected parameter of a builtin: either a closure with
// a fixed parameter count, or a plain value of a given type.
type param struct {
	closure      bool          // true when the parameter must be a closure
	closureArity int           // required parameter count of the closure
	typ          json.JsonType // required type of a non-closure parameter
}

// closureWith declares a closure parameter taking arity parameters.
func closureWith(arity int) param {
	return param{closure: true, closureArity: arity}
}

// valueOf declares a plain parameter of the given type.
func valueOf(typ json.JsonType) param {
	return param{typ: typ}
}

// functionData declares the full call signature of a builtin:
//
//	functionData{
//	    name:   "join",
//	    caller: callerListOfStrings,
//	    params: []param{valueOf(json.StringType)},
//	}
//
// expectArgs checks a call site against it before the builtin runs.
type functionData struct {
	// The name of the function
	name string
	// The expected kind of the caller of the function
	caller callerKind
	// The expected parameters, in order
	params []param
}

// expectArgs validates a function call against its declared signature.
//
// It checks, in this order:
//  1. the parameter count ("wrong number of arguments: expected N got M")
//  2. the caller, evaluated and coerced to the declared kind
//     ("wrong type for caller of <fn>: expected T, got U")
//  3. each parameter: closures stay unevaluated but their parameter count is
//     checked ("expected closure with N args"); plain parameters evaluate to
//     JSON and type-check.
//
// On success it returns the evaluated caller and the evaluated non-closure
// arguments (closure positions hold nil). On failure the sticky error is set
// and ok is false.
func (e *Evaluator) expectArgs(node *parser.FunctionCallNode, fd functionData) (EvalData, []json.Json, bool) {
	nothing := fromJson(&json.Null{})
	if e.hasErr() {
		return nothing, nil, false
	}

	// Make sure the number of parameters matches
	if len(node.Args) != len(fd.params) {
		e.setErr("wrong number of arguments: expected %d got %d", len(fd.params), len(node.Args))
		return nothing, nil, false
	}

	// Make sure the caller is of the correct kind
	caller, ok := e.expectCaller(node, fd)
	if !ok {
		return nothing, nil, false
	}

	// Make sure the parameters are of the correct types
	evaled := make([]json.Json, len(node.Args))
	for i, arg := range node.Args {
		declared := fd.params[i]
		closureArg, isClosure := arg.(*parser.ClosureNode)

		if declared.closure {
			if !isClosure {
				e.Range = arg.GetRange()
				e.setErr("expected closure")
				return nothing, nil, false
			}
			if len(closureArg.Params) != declared.closureArity {
				e.Range = arg.GetRange()
				e.setErr("expected closure with %d args", declared.closureArity)
				return nothing, nil, false
			}
			// Closure parameters stay unevaluated
			continue
		}

		if isClosure {
			e.Range = arg.GetRange()
			e.setErr("unexpected closure")
			return nothing, nil, false
		}

		value := e.toJson(e.evalNode(arg))
		if e.hasErr() {
			return nothing, nil, false
		}
		if value.GetType() != declared.typ {
			e.Range = arg.GetRange()
			e.setErr("wrong type for argument of %s: expected %s, got %s",
				fd.name, declared.typ, typeName(value))
			return nothing, nil, false
		}
		evaled[i] = value
	}

	return caller, evaled, true
}

// expectCaller evaluates the callee of a function call and coerces it to the
// declared caller kind, recording a ranged error on mismatch.
func (e *Evaluator) expectCaller(node *parser.FunctionCallNode, fd functionData) (EvalData, bool) {
	nothing := fromJson(&json.Null{})

	caller := e.evalNode(node.Callee)
	e.Range = node.GetRange()
	if e.hasErr() {
		return nothing, false
	}

	switch fd.caller {
	case callerIterator:
		it := e.toIter(caller)
		if e.hasErr() {
			return nothing, false
		}
		return fromIter(it), true

	case callerAny:
		j := e.toJson(caller)
		if e.hasErr() {
			return nothing, false
		}
		return fromJson(j), true

	default:
		j := e.toJson(caller)
		if e.hasErr() {
			return nothing, false
		}
		if !e.callerMatches(j, fd.caller) {
			e.setErr("wrong type for caller of %s: expected %s, got %s",
				fd.name, fd.caller.name(), typeName(j))
			return nothing, false
		}
		return fromJson(j), true
	}
}

// callerMatches checks a JSON value against a concrete caller kind.
func (e *Evaluator) callerMatches(j json.Json, kind callerKind) bool {
	switch kind {
	case callerObject:
		_, ok := j.(*json.Object)
		return ok
	case callerList:
		_, ok := j.(*json.List)
		return ok
	case callerListOfNumbers:
		return listOf(j, json.NumberType)
	case callerListOfStrings:
		return listOf(j, json.StringType)
	}
	return true
}

// listOf reports whether j is a list whose elements all have the given type.
// The empty list matches any element type.
func listOf(j json.Json, typ json.JsonType) bool {
	list, ok := j.(*json.List)
	if !ok {
		return false
	}
	for _, el := range list.Elements {
		if el.GetType() != typ {
			return false
		}
	}
	return true
}
