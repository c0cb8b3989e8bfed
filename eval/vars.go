/*
File    : go-jrq/eval/vars.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-jrq/json"
	"github.com/akashmaji946/go-jrq/lexer"
	"github.com/akashmaji946/go-jrq/parser"
)

// Variable is one binding on the lexical variable stack.
type Variable struct {
	Name  string    // The bound name
	Value json.Json // The bound value
}

// VariableStack is the stack of bindings in scope. Closure invocation pushes
// its parameters and pops the same number on exit. Lookup walks from the top
// (most recent) to the bottom, so an inner binding shadows an outer one of
// the same name:
//
//	.map(|v| .v.filter(|v| v > 0))
//
// Here two variables named 'v' exist while the filter body runs; the
// filter's v wins. A plain slice keeps that ordering; a map could not.
type VariableStack []Variable

// getVariable returns a copy of the value bound to the name, walking the
// stack from the top. A missing binding is a runtime error.
func (e *Evaluator) getVariable(name string) json.Json {
	for i := len(e.Vars) - 1; i >= 0; i-- {
		if e.Vars[i].Name == name {
			return json.Copy(e.Vars[i].Value)
		}
	}

	e.setErr("Variable not in scope: %s", name)
	return &json.Null{}
}

// pushVariable pushes one binding onto the stack.
func (e *Evaluator) pushVariable(name string, value json.Json) {
	e.Vars = append(e.Vars, Variable{Name: name, Value: value})
}

// popVariables pops exactly count bindings off the stack. Builtins record
// how many bindings a pattern pushed and pop that exact number, so the stack
// depth at a node is identical on entry and exit even when destructuring
// failed partway through.
func (e *Evaluator) popVariables(count int) {
	e.Vars = e.Vars[:len(e.Vars)-count]
}

// pushPattern pushes the bindings of a closure parameter pattern matched
// against a value, one binding per leaf identifier in left-to-right order.
// It returns the number of bindings pushed.
//
// A pattern that is a list must match a JSON list of the same length;
// otherwise the destructuring error is recorded and the partial push count
// is returned so the caller can still unwind symmetrically.
func (e *Evaluator) pushPattern(pattern parser.Node, value json.Json) int {
	switch p := pattern.(type) {
	case *parser.PrimaryNode:
		// The parser only produces identifier leaves in patterns
		if p.Token.Type == lexer.IDENTIFIER_ID {
			e.pushVariable(p.Token.Literal, value)
			return 1
		}
		return 0
	case *parser.ListNode:
		list, ok := value.(*json.List)
		if !ok || list.Length() != len(p.Elements) {
			e.Range = p.GetRange()
			e.setErr("closure argument destructuring failed")
			return 0
		}
		pushed := 0
		for i, sub := range p.Elements {
			el, _ := list.Get(i)
			pushed += e.pushPattern(sub, el)
		}
		return pushed
	}
	return 0
}
