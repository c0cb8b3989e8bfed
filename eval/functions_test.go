/*
File    : go-jrq/eval/functions_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-jrq/json"
	"github.com/akashmaji946/go-jrq/parser"
)

func TestEval_Map(t *testing.T) {

	expectResult(t, `.foo.map(|x| x*2).collect`, `{"foo": [1, 2, 3]}`, `[2, 4, 6]`)
	expectResult(t, `.map(|x| x + 1).collect`, `[0, 1]`, `[1, 2]`)
	expectResult(t, `.map(|x| x).collect`, `[]`, `[]`)
}

func TestEval_MapCollectEqualsElementwiseEvaluation(t *testing.T) {

	// map + collect is the list of closure results in input order
	expectResult(t, `.map(|x| x*x).collect`, `[1, 2, 3, 4]`, `[1, 4, 9, 16]`)
}

func TestEval_Filter(t *testing.T) {

	expectResult(t, `.xs.filter(|x| x > 0).collect`, `{"xs": [-1, 2, -3, 4]}`, `[2, 4]`)
	expectResult(t, `.filter(|x| x > 10).collect`, `[1, 2]`, `[]`)
	expectResult(t, `.filter(|x| true).collect`, `[]`, `[]`)
}

func TestEval_FilterClosureMustReturnBool(t *testing.T) {

	expectError(t, `.filter(|x| x).collect`, `[1, 2]`, "closure must return bool, got number")
}

func TestEval_FilterSum(t *testing.T) {

	expectResult(t, `.xs.filter(|x| x > 0).sum`, `{"xs": [-1, 2, -3, 4]}`, `6`)
}

func TestEval_IterAndCollect(t *testing.T) {

	expectResult(t, `.iter.collect`, `[1, 2]`, `[1, 2]`)
	expectResult(t, `.collect`, `[1, 2]`, `[1, 2]`)
	// Objects coerce to key-value pair iterators
	expectResult(t, `.collect`, `{"a": 1, "b": 2}`, `[["a", 1], ["b", 2]]`)
}

func TestEval_IterRequiresIterable(t *testing.T) {

	expectError(t, `.iter`, `10`, "Expected Iterator, got number")
	expectError(t, `.map(|x| x)`, `"str"`, "Expected Iterator, got string")
}

func TestEval_KeysAndValues(t *testing.T) {

	expectResult(t, `.keys.collect`, `{"a": 1, "b": 2}`, `["a", "b"]`)
	expectResult(t, `.values.collect`, `{"a": 1, "b": 2}`, `[1, 2]`)
	expectResult(t, `.keys.collect`, `{}`, `[]`)
	expectResult(t, `.values.collect`, `{}`, `[]`)
}

func TestEval_KeysRequiresObject(t *testing.T) {

	expectError(t, `.keys`, `[1, 2]`, "wrong type for caller of keys: expected object, got list")
	expectError(t, `.values`, `10`, "wrong type for caller of values: expected object, got number")
}

func TestEval_Enumerate(t *testing.T) {

	expectResult(t, `.enumerate.collect`, `[7, 9]`, `[[7, 0], [9, 1]]`)
	expectResult(t, `.enumerate.collect`, `[]`, `[]`)
}

func TestEval_Zip(t *testing.T) {

	expectResult(t, `.zip([10, 20]).collect`, `[1, 2, 3]`, `[[1, 10], [2, 20]]`)
	expectResult(t, `.zip([]).collect`, `[1, 2]`, `[]`)
	// zip(a, b).collect.length == min(length(a), length(b))
	expectResult(t, `.zip([1, 2, 3, 4]).collect.length`, `[5, 6]`, `2`)
}

func TestEval_SumAndProduct(t *testing.T) {

	expectResult(t, `.sum`, `[1, 2, 3]`, `6`)
	expectResult(t, `.sum`, `[]`, `0`)
	expectResult(t, `.product`, `[2, 3, 4]`, `24`)
	expectResult(t, `.product`, `[]`, `1`)
}

func TestEval_SumRequiresNumbers(t *testing.T) {

	expectError(t, `.sum`, `[1, "a"]`,
		"wrong type for caller of sum: expected list of number, got list")
	expectError(t, `.sum`, `10`,
		"wrong type for caller of sum: expected list of number, got number")
}

func TestEval_Flatten(t *testing.T) {

	expectResult(t, `.flatten`, `[[1, 2], [3], []]`, `[1, 2, 3]`)
	expectResult(t, `.flatten`, `[]`, `[]`)
	// Objects merge left-to-right, later key wins at the earlier position
	expectResult(t, `.flatten`, `[{"a": 1, "b": 2}, {"b": 3, "c": 4}]`,
		`{"a": 1, "b": 3, "c": 4}`)
	// One level only
	expectResult(t, `.flatten`, `[[[1], [2]], [[3]]]`, `[[1], [2], [3]]`)
}

func TestEval_FlattenTypeErrors(t *testing.T) {

	expectError(t, `.flatten`, `[1, 2]`,
		"wrong type for caller of flatten: expected object or list, got number")
	expectError(t, `.flatten`, `[[1], {"a": 2}]`,
		"wrong type for caller of flatten: expected object or list, got object")
}

func TestEval_Join(t *testing.T) {

	expectResult(t, `.join(", ")`, `["a", "b", "c"]`, `"a, b, c"`)
	expectResult(t, `.join("-")`, `["solo"]`, `"solo"`)
	expectResult(t, `.join("-")`, `[]`, `""`)
}

func TestEval_JoinTypeErrors(t *testing.T) {

	expectError(t, `.join(10)`, `["a"]`,
		"wrong type for argument of join: expected string, got number")
	expectError(t, `.join("-")`, `[1]`,
		"wrong type for caller of join: expected list of string, got list")
}

func TestEval_Length(t *testing.T) {

	expectResult(t, `.length`, `[1, 2, 3]`, `3`)
	expectResult(t, `.length`, `[]`, `0`)
	expectResult(t, `.length`, `"bytes"`, `5`)
	expectResult(t, `.foo.length`, `{"foo": "ab"}`, `2`)
}

func TestEval_LengthTypeErrors(t *testing.T) {

	expectError(t, `.length`, `10`,
		"wrong type for caller of length: expected string or list, got number")
}

func TestEval_TakeWhileSkipWhile(t *testing.T) {

	expectResult(t, `.take_while(|x| x < 3).collect`, `[1, 2, 3, 1]`, `[1, 2]`)
	expectResult(t, `.skip_while(|x| x < 3).collect`, `[1, 2, 3, 1]`, `[3, 1]`)
	expectResult(t, `.take_while(|x| true).collect`, `[]`, `[]`)
	expectResult(t, `.skip_while(|x| false).collect`, `[1]`, `[1]`)
}

func TestEval_PipelineComposition(t *testing.T) {

	expectResult(t, `.foo.map(|x| x*2).filter(|x| x > 0).collect`,
		`{"foo": [-1, 2, -3, 4]}`, `[4, 8]`)
	expectResult(t, `.map(|x| x + 1).take_while(|x| x < 4).sum`,
		`[0, 1, 2, 3, 4]`, `6`)
}

func TestEval_ClosureDestructuring(t *testing.T) {

	expectResult(t, `.enumerate.map(|[v, i]| v * 10 + i).collect`,
		`[5, 6]`, `[50, 61]`)
	expectResult(t, `.map(|[k, v]| k).collect`,
		`{"a": 1, "b": 2}`, `["a", "b"]`)
	expectResult(t, `.map(|[[a, b], c]| a + b + c).collect`,
		`[[[1, 2], 3]]`, `[6]`)
}

func TestEval_ClosureDestructuringFailure(t *testing.T) {

	expectError(t, `.map(|[a, b]| a).collect`, `[[1, 2, 3]]`,
		"closure argument destructuring failed")
	expectError(t, `.map(|[a, b]| a).collect`, `[10]`,
		"closure argument destructuring failed")
}

func TestEval_NestedClosureShadowing(t *testing.T) {

	// The inner binding wins while the inner closure runs; the outer
	// binding is restored afterwards
	expectResult(t,
		`.map(|v| [v.filter(|v| v > 2).collect, v]).collect`,
		`[[1, 2, 3], [4]]`,
		`[[[3], [1, 2, 3]], [[4], [4]]]`)
}

func TestEval_FunctionCallErrors(t *testing.T) {

	expectError(t, `.frobnicate()`, `[1]`, "Function not found: frobnicate")
	expectError(t, `.map()`, `[1]`, "wrong number of arguments: expected 1 got 0")
	expectError(t, `.map(10)`, `[1]`, "expected closure")
	expectError(t, `.map(|x, y| x)`, `[1]`, "expected closure with 1 args")
	expectError(t, `.sum(|x| x)`, `[1]`, "wrong number of arguments: expected 0 got 1")
	expectError(t, `.zip(|x| x)`, `[1]`, "unexpected closure")
}

func TestEval_LazinessDoesNotMaterializeIntermediates(t *testing.T) {

	// take_while over an infinite-feeling chain is fine because nothing
	// pulls past the predicate failure
	expectResult(t, `.map(|x| x * x).take_while(|x| x < 10).collect`,
		`[1, 2, 3, 4, 5]`, `[1, 4, 9]`)
}

func TestEval_ResultIsIndependentOfInput(t *testing.T) {

	doc, _ := json.Deserialize(`{"foo": [1]}`)
	node, perr := parser.NewParser(`.foo`).Parse()
	assert.Nil(t, perr)

	result, err := Eval(node, doc)
	assert.Nil(t, err)

	// Mutating the result must not touch the input document
	result.(*json.List).Append(&json.Number{Value: 99})
	original, _ := doc.(*json.Object).Get("foo")
	assert.Equal(t, 1, original.(*json.List).Length())
}
