/*
File    : go-jrq/eval/function_declarations.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"

	"github.com/akashmaji946/go-jrq/iter"
	"github.com/akashmaji946/go-jrq/json"
	"github.com/akashmaji946/go-jrq/parser"
)

// evalFunction dispatches a builtin call by name over the fixed function
// table. Unknown names are a runtime error.
func (e *Evaluator) evalFunction(n *parser.FunctionCallNode) EvalData {
	e.Range = n.GetRange()

	switch n.Name.Literal {
	case "map":
		return e.evalFuncMap(n)
	case "filter":
		return e.evalFuncFilter(n)
	case "iter":
		return e.evalFuncIter(n)
	case "collect":
		return e.evalFuncCollect(n)
	case "keys":
		return e.evalFuncKeys(n)
	case "values":
		return e.evalFuncValues(n)
	case "enumerate":
		return e.evalFuncEnumerate(n)
	case "zip":
		return e.evalFuncZip(n)
	case "sum":
		return e.evalFuncSum(n)
	case "product":
		return e.evalFuncProduct(n)
	case "flatten":
		return e.evalFuncFlatten(n)
	case "join":
		return e.evalFuncJoin(n)
	case "length":
		return e.evalFuncLength(n)
	case "skip_while":
		return e.evalFuncSkipWhile(n)
	case "take_while":
		return e.evalFuncTakeWhile(n)
	}

	e.setErr("Function not found: %s", n.Name.Literal)
	return fromJson(&json.Null{})
}

// simpleClosure is the captured state of a closure applied by a builtin:
// the parameter pattern, the body, and the evaluator whose variable stack
// and sticky error the application runs against. The iterator adapter owns
// this state for as long as it lives.
type simpleClosure struct {
	e       *Evaluator  // the evaluator the closure runs on
	pattern parser.Node // the (single) parameter pattern
	body    parser.Node // the closure body
}

// closureFor captures the closure in the first argument slot of a call.
// expectArgs has already verified the shape.
func closureFor(e *Evaluator, n *parser.FunctionCallNode) *simpleClosure {
	cl := n.Args[0].(*parser.ClosureNode)
	return &simpleClosure{
		e:       e,
		pattern: cl.Params[0],
		body:    cl.Body,
	}
}

// returnsJson applies the closure to one value and returns the body's JSON
// result. The parameter bindings push before the body and pop right after,
// in equal number, even when an error got recorded in between.
func (c *simpleClosure) returnsJson(j json.Json) (json.Json, bool) {
	if c.e.hasErr() {
		return nil, false
	}

	pushed := c.e.pushPattern(c.pattern, j)
	var ret json.Json = &json.Null{}
	if !c.e.hasErr() {
		ret = c.e.toJson(c.e.evalNode(c.body))
	}
	c.e.popVariables(pushed)

	if c.e.hasErr() {
		return nil, false
	}
	return ret, true
}

// returnsBool applies the closure like returnsJson and additionally requires
// the body to produce a bool, as the filtering builtins do.
func (c *simpleClosure) returnsBool(j json.Json) (bool, bool) {
	ret, ok := c.returnsJson(j)
	if !ok {
		return false, false
	}

	b, isBool := ret.(*json.Boolean)
	if !isBool {
		c.e.setErr("closure must return bool, got %s", typeName(ret))
		return false, false
	}
	return b.Value, true
}

var funcMap = functionData{
	name:   "map",
	caller: callerIterator,
	params: []param{closureWith(1)},
}

// evalFuncMap implements .map(|x| expr): a lazy mapping adapter.
func (e *Evaluator) evalFuncMap(n *parser.FunctionCallNode) EvalData {
	caller, _, ok := e.expectArgs(n, funcMap)
	if !ok {
		return fromJson(&json.Null{})
	}
	return fromIter(iter.Map(caller.iter, closureFor(e, n).returnsJson))
}

var funcFilter = functionData{
	name:   "filter",
	caller: callerIterator,
	params: []param{closureWith(1)},
}

// evalFuncFilter implements .filter(|x| pred): a lazy filtering adapter.
// The closure must return a bool.
func (e *Evaluator) evalFuncFilter(n *parser.FunctionCallNode) EvalData {
	caller, _, ok := e.expectArgs(n, funcFilter)
	if !ok {
		return fromJson(&json.Null{})
	}
	return fromIter(iter.Filter(caller.iter, closureFor(e, n).returnsBool))
}

var funcIter = functionData{
	name:   "iter",
	caller: callerIterator,
	params: []param{},
}

// evalFuncIter implements .iter(): identity on iterators, used to force the
// list-to-iterator coercion.
func (e *Evaluator) evalFuncIter(n *parser.FunctionCallNode) EvalData {
	caller, _, ok := e.expectArgs(n, funcIter)
	if !ok {
		return fromJson(&json.Null{})
	}
	return caller
}

var funcCollect = functionData{
	name:   "collect",
	caller: callerIterator,
	params: []param{},
}

// evalFuncCollect implements .collect(): drains the caller into a list.
func (e *Evaluator) evalFuncCollect(n *parser.FunctionCallNode) EvalData {
	caller, _, ok := e.expectArgs(n, funcCollect)
	if !ok {
		return fromJson(&json.Null{})
	}
	return fromJson(e.toJson(caller))
}

var funcKeys = functionData{
	name:   "keys",
	caller: callerObject,
	params: []param{},
}

// evalFuncKeys implements .keys(): an iterator over an object's keys.
func (e *Evaluator) evalFuncKeys(n *parser.FunctionCallNode) EvalData {
	caller, _, ok := e.expectArgs(n, funcKeys)
	if !ok {
		return fromJson(&json.Null{})
	}
	return fromIter(iter.ObjectKeys(caller.json.(*json.Object)))
}

var funcValues = functionData{
	name:   "values",
	caller: callerObject,
	params: []param{},
}

// evalFuncValues implements .values(): an iterator over an object's values.
func (e *Evaluator) evalFuncValues(n *parser.FunctionCallNode) EvalData {
	caller, _, ok := e.expectArgs(n, funcValues)
	if !ok {
		return fromJson(&json.Null{})
	}
	return fromIter(iter.ObjectValues(caller.json.(*json.Object)))
}

var funcEnumerate = functionData{
	name:   "enumerate",
	caller: callerIterator,
	params: []param{},
}

// evalFuncEnumerate implements .enumerate(): yields [value, index] pairs
// starting at index 0.
func (e *Evaluator) evalFuncEnumerate(n *parser.FunctionCallNode) EvalData {
	caller, _, ok := e.expectArgs(n, funcEnumerate)
	if !ok {
		return fromJson(&json.Null{})
	}
	return fromIter(iter.Enumerate(caller.iter))
}

var funcZip = functionData{
	name:   "zip",
	caller: callerIterator,
	params: []param{valueOf(json.ListType)},
}

// evalFuncZip implements .zip(list): yields [a, b] pairs, terminating on
// the shorter side.
func (e *Evaluator) evalFuncZip(n *parser.FunctionCallNode) EvalData {
	caller, args, ok := e.expectArgs(n, funcZip)
	if !ok {
		return fromJson(&json.Null{})
	}
	other := iter.List(args[0].(*json.List))
	return fromIter(iter.Zip(caller.iter, other))
}

var funcSum = functionData{
	name:   "sum",
	caller: callerListOfNumbers,
	params: []param{},
}

// evalFuncSum implements .sum(): the sum of a list of numbers (empty → 0).
func (e *Evaluator) evalFuncSum(n *parser.FunctionCallNode) EvalData {
	caller, _, ok := e.expectArgs(n, funcSum)
	if !ok {
		return fromJson(&json.Null{})
	}

	sum := 0.0
	for _, el := range caller.json.(*json.List).Elements {
		sum += el.(*json.Number).Value
	}
	return fromJson(&json.Number{Value: sum})
}

var funcProduct = functionData{
	name:   "product",
	caller: callerListOfNumbers,
	params: []param{},
}

// evalFuncProduct implements .product(): the product of a list of numbers
// (empty → 1).
func (e *Evaluator) evalFuncProduct(n *parser.FunctionCallNode) EvalData {
	caller, _, ok := e.expectArgs(n, funcProduct)
	if !ok {
		return fromJson(&json.Null{})
	}

	product := 1.0
	for _, el := range caller.json.(*json.List).Elements {
		product *= el.(*json.Number).Value
	}
	return fromJson(&json.Number{Value: product})
}

var funcFlatten = functionData{
	name:   "flatten",
	caller: callerList,
	params: []param{},
}

// evalFuncFlatten implements .flatten(), one level deep:
//   - a list of lists concatenates into one list
//   - a list of objects merges left-to-right into one object, later keys
//     winning (at the earlier position)
//   - any other element type is a type error
//
// The empty list flattens to an empty list.
func (e *Evaluator) evalFuncFlatten(n *parser.FunctionCallNode) EvalData {
	caller, _, ok := e.expectArgs(n, funcFlatten)
	if !ok {
		return fromJson(&json.Null{})
	}
	list := caller.json.(*json.List)

	if list.Length() == 0 {
		return fromJson(json.NewList())
	}

	switch list.Elements[0].(type) {
	case *json.List:
		flat := json.NewList()
		for _, el := range list.Elements {
			inner, isList := el.(*json.List)
			if !isList {
				e.setErr("wrong type for caller of flatten: expected object or list, got %s", typeName(el))
				return fromJson(&json.Null{})
			}
			for _, sub := range inner.Elements {
				flat.Append(json.Copy(sub))
			}
		}
		return fromJson(flat)
	case *json.Object:
		merged := json.NewObject()
		for _, el := range list.Elements {
			inner, isObject := el.(*json.Object)
			if !isObject {
				e.setErr("wrong type for caller of flatten: expected object or list, got %s", typeName(el))
				return fromJson(&json.Null{})
			}
			for _, field := range inner.Fields {
				merged.Set(field.Key, json.Copy(field.Value))
			}
		}
		return fromJson(merged)
	default:
		e.setErr("wrong type for caller of flatten: expected object or list, got %s", typeName(list.Elements[0]))
		return fromJson(&json.Null{})
	}
}

var funcJoin = functionData{
	name:   "join",
	caller: callerListOfStrings,
	params: []param{valueOf(json.StringType)},
}

// evalFuncJoin implements .join(sep): a list of strings joined with the
// separator string.
func (e *Evaluator) evalFuncJoin(n *parser.FunctionCallNode) EvalData {
	caller, args, ok := e.expectArgs(n, funcJoin)
	if !ok {
		return fromJson(&json.Null{})
	}

	separator := args[0].(*json.String).Value
	parts := make([]string, 0, caller.json.(*json.List).Length())
	for _, el := range caller.json.(*json.List).Elements {
		parts = append(parts, el.(*json.String).Value)
	}
	return fromJson(&json.String{Value: strings.Join(parts, separator)})
}

var funcLength = functionData{
	name:   "length",
	caller: callerAny,
	params: []param{},
}

// evalFuncLength implements .length(): the number of elements of a list or
// the number of bytes of a string.
func (e *Evaluator) evalFuncLength(n *parser.FunctionCallNode) EvalData {
	caller, _, ok := e.expectArgs(n, funcLength)
	if !ok {
		return fromJson(&json.Null{})
	}

	switch v := caller.json.(type) {
	case *json.List:
		return fromJson(&json.Number{Value: float64(v.Length())})
	case *json.String:
		return fromJson(&json.Number{Value: float64(len(v.Value))})
	default:
		e.setErr("wrong type for caller of length: expected string or list, got %s", typeName(caller.json))
		return fromJson(&json.Null{})
	}
}

var funcSkipWhile = functionData{
	name:   "skip_while",
	caller: callerIterator,
	params: []param{closureWith(1)},
}

// evalFuncSkipWhile implements .skip_while(|x| pred): discards values while
// the predicate holds, then passes the triggering value and everything after
// it through.
func (e *Evaluator) evalFuncSkipWhile(n *parser.FunctionCallNode) EvalData {
	caller, _, ok := e.expectArgs(n, funcSkipWhile)
	if !ok {
		return fromJson(&json.Null{})
	}
	return fromIter(iter.SkipWhile(caller.iter, closureFor(e, n).returnsBool))
}

var funcTakeWhile = functionData{
	name:   "take_while",
	caller: callerIterator,
	params: []param{closureWith(1)},
}

// evalFuncTakeWhile implements .take_while(|x| pred): yields values while
// the predicate holds and is done from the first value it does not.
func (e *Evaluator) evalFuncTakeWhile(n *parser.FunctionCallNode) EvalData {
	caller, _, ok := e.expectArgs(n, funcTakeWhile)
	if !ok {
		return fromJson(&json.Null{})
	}
	return fromIter(iter.TakeWhile(caller.iter, closureFor(e, n).returnsBool))
}
