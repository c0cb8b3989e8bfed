/*
File    : go-jrq/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-jrq/json"
	"github.com/akashmaji946/go-jrq/lexer"
	"github.com/akashmaji946/go-jrq/parser"
)

// evalQuery parses and evaluates a query against a JSON document given as
// text, returning the result.
func evalQuery(t *testing.T, query string, input string) (json.Json, error) {
	t.Helper()

	doc, derr := json.Deserialize(input)
	assert.Nil(t, derr, "input %q", input)

	node, perr := parser.NewParser(query).Parse()
	if perr != nil {
		return nil, perr
	}

	result, eerr := Eval(node, doc)
	if eerr != nil {
		return nil, eerr
	}
	return result, nil
}

// expectResult asserts that a query over an input produces the expected JSON
// (all three given as text).
func expectResult(t *testing.T, query string, input string, expected string) {
	t.Helper()

	want, derr := json.Deserialize(expected)
	assert.Nil(t, derr, "expected %q", expected)

	got, err := evalQuery(t, query, input)
	assert.Nil(t, err, "query %q", query)
	if err == nil {
		assert.True(t, json.Equal(want, got),
			"query %q: got %s, want %s", query, json.Serialize(got, 0), expected)
	}
}

// expectError asserts that a query over an input fails with a message
// containing the given fragment.
func expectError(t *testing.T, query string, input string, fragment string) {
	t.Helper()

	_, err := evalQuery(t, query, input)
	assert.NotNil(t, err, "query %q", query)
	if err != nil {
		assert.Contains(t, err.Error(), fragment, "query %q", query)
	}
}

func TestEval_EmptyQueryIsIdentity(t *testing.T) {

	expectResult(t, ``, `{"a": 1}`, `{"a": 1}`)
	expectResult(t, ``, `10`, `10`)
}

func TestEval_Arithmetic(t *testing.T) {

	expectResult(t, `10 + 102`, `null`, `112`)
	expectResult(t, `10 + 10 * 2`, `null`, `30`)
	expectResult(t, `12 / 3 - 3`, `null`, `1`)
	expectResult(t, `12 % 3`, `null`, `0`)
	expectResult(t, `(12 - 3) * 4`, `null`, `36`)
	expectResult(t, `-(6-2)`, `null`, `-4`)
	expectResult(t, `-2`, `null`, `-2`)
	expectResult(t, `4-6/2 <= (4-6)/2`, `null`, `false`)
}

func TestEval_DivisionByZeroIsNotAnError(t *testing.T) {

	result, err := evalQuery(t, `1 / 0`, `null`)
	assert.Nil(t, err)
	num, ok := result.(*json.Number)
	assert.True(t, ok)
	assert.True(t, num.Value > 0 && num.Value*2 == num.Value) // +Inf
}

func TestEval_Booleans(t *testing.T) {

	expectResult(t, `true != false`, `null`, `true`)
	expectResult(t, `12 >= 3`, `null`, `true`)
	expectResult(t, `!(10 == 2)`, `null`, `true`)
	expectResult(t, `true && false || true`, `null`, `true`)
	expectResult(t, `"blehh" == "blehh"`, `null`, `true`)
	expectResult(t, `"blehh" != "stupid"`, `null`, `true`)
}

func TestEval_ListAndObjectLiterals(t *testing.T) {

	expectResult(t, `[10, 4-2, 5 == 2]`, `null`, `[10, 2, false]`)
	expectResult(t, `{"foo": 10}`, `null`, `{"foo": 10}`)
	expectResult(t, `{"foo": 4-2*4}`, `null`, `{"foo": -4}`)
	expectResult(t, `{"foo": 10} == {"foo": 12-2}`, `null`, `true`)
}

func TestEval_ObjectLiteralDuplicateKeys(t *testing.T) {

	// Later value wins, original position retained
	expectResult(t, `{"foo": .a, "foo": .b}`, `{"a": 1, "b": 2}`, `{"foo": 2}`)
	expectResult(t,
		`{"foo": [4-2, 0 == 0 && 1 + 2 == 3, {}], "bar": 10, "bar": 8 == 2}`,
		`null`,
		`{"foo": [2, true, {}], "bar": false}`)
}

func TestEval_ObjectLiteralKeyMustBeString(t *testing.T) {

	expectError(t, `{10: 2}`, `null`, "Expected string key in json literal")
}

func TestEval_Access(t *testing.T) {

	expectResult(t, `[10].0`, `null`, `10`)
	expectResult(t, `[10, [290, [465]]][1].1`, `null`, `[465]`)
	expectResult(t, `[10, [290, [465]]][4 - 3].1`, `null`, `[465]`)
	expectResult(t, `.0`, `[10]`, `10`)
	expectResult(t, `.foo`, `{"foo": [1, 2]}`, `[1, 2]`)
	expectResult(t, `.foo.bar`, `{"foo": {"bar": 3}}`, `3`)
	expectResult(t, `.("fo" + "o")`, `{"foo": 7}`, `7`)
	expectResult(t, `[.0[0], .1]`, `[[10], 4]`, `[10, 4]`)
	expectResult(t, `{"bar": .fooo > 4 - 2}.bar`, `{"fooo": 4}`, `true`)
}

func TestEval_AccessComputedKeys(t *testing.T) {

	expectResult(t,
		`{ .0: 2*.1-2, .2: .0 == .2 && .3 }`,
		`["fooo", 4, "bharr", true]`,
		`{"fooo": 6, "bharr": false}`)
}

func TestEval_AccessBeyondListEndIsNull(t *testing.T) {

	expectResult(t, `[10].5`, `null`, `null`)
	expectResult(t, `.missing`, `{"foo": 1}`, `null`)
	// Fractional indices are floored
	expectResult(t, `[10, 20].(1.9)`, `null`, `20`)
}

func TestEval_AccessTypeErrors(t *testing.T) {

	expectError(t, `.foo`, `10`, "cannot access a value of type number")
	expectError(t, `[1].("a")`, `null`, "expected number to access list, got string")
	expectError(t, `{"a": 1}.(10)`, `null`, "expected string to access object, got number")
}

func TestEval_UnaryTypeErrors(t *testing.T) {

	_, err := evalQuery(t, `-true`, `null`)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "expected number, got bool")
	expectError(t, `!10`, `null`, "expected bool, got number")
}

func TestEval_UnaryErrorRange(t *testing.T) {

	doc, _ := json.Deserialize(`null`)
	node, perr := parser.NewParser(`-true`).Parse()
	assert.Nil(t, perr)

	_, err := Eval(node, doc)
	assert.NotNil(t, err)
	// The range covers the '-' through 'true'
	assert.Equal(t, lexer.Position{Line: 1, Column: 1}, err.Range.Start)
	assert.Equal(t, lexer.Position{Line: 1, Column: 5}, err.Range.End)
}

func TestEval_UnknownVariable(t *testing.T) {

	expectError(t, `nope + 1`, `null`, "Variable not in scope: nope")
}

func TestEval_VariableStackBalance(t *testing.T) {

	doc, _ := json.Deserialize(`{"foo": [1, 2, 3]}`)
	node, perr := parser.NewParser(`.foo.map(|x| x * 2).collect`).Parse()
	assert.Nil(t, perr)

	e := &Evaluator{Input: doc}
	result := e.toJson(e.evalNode(node))
	assert.Nil(t, e.Err)
	assert.NotNil(t, result)
	// The stack is back to zero depth at the top level
	assert.Equal(t, 0, len(e.Vars))
}

func TestEval_VariableStackBalanceOnError(t *testing.T) {

	doc, _ := json.Deserialize(`[1, 2, 3]`)
	node, perr := parser.NewParser(`.map(|x| x + "boom").collect`).Parse()
	assert.Nil(t, perr)

	e := &Evaluator{Input: doc}
	e.toJson(e.evalNode(node))
	assert.NotNil(t, e.Err)
	// Even on error, pushes and pops stayed symmetric
	assert.Equal(t, 0, len(e.Vars))
}
