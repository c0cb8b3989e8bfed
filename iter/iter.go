/*
File    : go-jrq/iter/iter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package iter implements the lazy iterator framework of go-jrq.
// An Iterator is a pull-driven producer of JSON values; adapters wrap an
// upstream iterator to transform its stream without materializing
// intermediate lists. Each adapter holds the only reference to its upstream
// and to any captured closure state, so a pipeline forms a single ownership
// chain from the outermost adapter down to the source value.
//
// The producer protocol is single-channel: Next yields a value or signals
// done. Closure callbacks report failure out-of-band through their ok result
// (the evaluator's sticky error); an adapter that observes a failed callback
// yields done on the next pull and the outer evaluation surfaces the error.
package iter

import "github.com/akashmaji946/go-jrq/json"

// Iterator is the uniform lazy producer: give me the next JSON value, or
// signal done.
type Iterator interface {
	// Next returns the next value and true, or signals done with false.
	Next() (json.Json, bool)
}

// MapFunc maps a value to another value. The second result reports whether
// the mapping succeeded; false short-circuits the pipeline.
type MapFunc func(j json.Json) (json.Json, bool)

// PredicateFunc tests a value. The first result is the verdict, the second
// reports whether the test succeeded; false short-circuits the pipeline.
type PredicateFunc func(j json.Json) (bool, bool)

/*
 * List iterator
 */

// listIter yields each element of a list by index. It owns the list.
type listIter struct {
	data  *json.List // the list being iterated over
	index int        // the current index into the list
}

// List returns an iterator over all of the values in a list.
func List(l *json.List) Iterator {
	return &listIter{data: l}
}

func (it *listIter) Next() (json.Json, bool) {
	if it.index >= it.data.Length() {
		return nil, false
	}
	el := it.data.Elements[it.index]
	it.index++
	return el, true
}

/*
 * Object iterators
 */

// keyIter yields the keys of an object as strings. It owns the object.
type keyIter struct {
	data  *json.Object // the object being iterated over
	index int          // the current index into the fields
}

// ObjectKeys returns an iterator over the keys of an object.
func ObjectKeys(o *json.Object) Iterator {
	return &keyIter{data: o}
}

func (it *keyIter) Next() (json.Json, bool) {
	if it.index >= it.data.Length() {
		return nil, false
	}
	key := it.data.Fields[it.index].Key
	it.index++
	return &json.String{Value: key}, true
}

// valueIter yields the values of an object. It owns the object.
type valueIter struct {
	data  *json.Object // the object being iterated over
	index int          // the current index into the fields
}

// ObjectValues returns an iterator over the values of an object.
func ObjectValues(o *json.Object) Iterator {
	return &valueIter{data: o}
}

func (it *valueIter) Next() (json.Json, bool) {
	if it.index >= it.data.Length() {
		return nil, false
	}
	value := it.data.Fields[it.index].Value
	it.index++
	return value, true
}

// keyValueIter yields [key, value] pairs of an object. It owns the object.
type keyValueIter struct {
	data  *json.Object // the object being iterated over
	index int          // the current index into the fields
}

// ObjectKeyValues returns an iterator over the keys and values of an object,
// yielding each entry as a two-element [key, value] list.
func ObjectKeyValues(o *json.Object) Iterator {
	return &keyValueIter{data: o}
}

func (it *keyValueIter) Next() (json.Json, bool) {
	if it.index >= it.data.Length() {
		return nil, false
	}
	field := it.data.Fields[it.index]
	it.index++
	return &json.List{Elements: []json.Json{
		&json.String{Value: field.Key},
		field.Value,
	}}, true
}

/*
 * Map adapter
 */

// mapIter maps the values yielded by an upstream iterator through a function.
type mapIter struct {
	next    Iterator // the iterator we're mapping over
	mapFunc MapFunc  // mapping function applied to each element
}

// Map returns an iterator that maps the values yielded by the upstream
// iterator with f. The function carries its own captured state.
func Map(upstream Iterator, f MapFunc) Iterator {
	return &mapIter{next: upstream, mapFunc: f}
}

func (it *mapIter) Next() (json.Json, bool) {
	j, ok := it.next.Next()
	if !ok {
		return nil, false
	}
	return it.mapFunc(j)
}

/*
 * Filter adapter
 */

// filterIter skips the values of an upstream iterator for which the
// predicate returns false.
type filterIter struct {
	next       Iterator      // the iterator we're filtering
	filterFunc PredicateFunc // predicate applied to each element
}

// Filter returns an iterator that keeps only the values of the upstream
// iterator for which the predicate returns true.
func Filter(upstream Iterator, p PredicateFunc) Iterator {
	return &filterIter{next: upstream, filterFunc: p}
}

func (it *filterIter) Next() (json.Json, bool) {
	for {
		j, ok := it.next.Next()
		if !ok {
			return nil, false
		}
		keep, ok := it.filterFunc(j)
		if !ok {
			return nil, false
		}
		if keep {
			return j, true
		}
	}
}

/*
 * Enumerate adapter
 */

// enumerateIter pairs each value with its index, starting at 0.
type enumerateIter struct {
	next  Iterator // the iterator we're enumerating
	index int      // the next index to attach
}

// Enumerate returns an iterator yielding [value, index] pairs.
func Enumerate(upstream Iterator) Iterator {
	return &enumerateIter{next: upstream}
}

func (it *enumerateIter) Next() (json.Json, bool) {
	j, ok := it.next.Next()
	if !ok {
		return nil, false
	}
	pair := &json.List{Elements: []json.Json{
		j,
		&json.Number{Value: float64(it.index)},
	}}
	it.index++
	return pair, true
}

/*
 * Zip adapter
 */

// zipIter pairs the values of two upstream iterators.
type zipIter struct {
	a Iterator // first upstream
	b Iterator // second upstream
}

// Zip returns an iterator yielding [a, b] pairs; it is done as soon as
// either upstream is done.
func Zip(a Iterator, b Iterator) Iterator {
	return &zipIter{a: a, b: b}
}

func (it *zipIter) Next() (json.Json, bool) {
	va, ok := it.a.Next()
	if !ok {
		return nil, false
	}
	vb, ok := it.b.Next()
	if !ok {
		return nil, false
	}
	return &json.List{Elements: []json.Json{va, vb}}, true
}

/*
 * TakeWhile / SkipWhile adapters
 */

// takeWhileIter yields values until the predicate is first false, then stays
// done.
type takeWhileIter struct {
	next      Iterator      // the iterator we're taking from
	takeFunc  PredicateFunc // predicate applied to each element
	exhausted bool          // set once the predicate has failed
}

// TakeWhile returns an iterator that yields values while the predicate holds
// and is done from the first value it does not.
func TakeWhile(upstream Iterator, p PredicateFunc) Iterator {
	return &takeWhileIter{next: upstream, takeFunc: p}
}

func (it *takeWhileIter) Next() (json.Json, bool) {
	if it.exhausted {
		return nil, false
	}
	j, ok := it.next.Next()
	if !ok {
		return nil, false
	}
	keep, ok := it.takeFunc(j)
	if !ok || !keep {
		it.exhausted = true
		return nil, false
	}
	return j, true
}

// skipWhileIter consumes and discards values until the predicate is first
// false, then passes the triggering value and all subsequent values through.
type skipWhileIter struct {
	next      Iterator      // the iterator we're skipping from
	skipFunc  PredicateFunc // predicate applied while still skipping
	triggered bool          // set once the predicate has first failed
}

// SkipWhile returns an iterator that discards values while the predicate
// holds and yields everything from the first value it does not.
func SkipWhile(upstream Iterator, p PredicateFunc) Iterator {
	return &skipWhileIter{next: upstream, skipFunc: p}
}

func (it *skipWhileIter) Next() (json.Json, bool) {
	if it.triggered {
		return it.next.Next()
	}
	for {
		j, ok := it.next.Next()
		if !ok {
			return nil, false
		}
		skip, ok := it.skipFunc(j)
		if !ok {
			return nil, false
		}
		if !skip {
			it.triggered = true
			return j, true
		}
	}
}

/*
 * Take / Skip adapters
 */

// takeIter yields at most n values.
type takeIter struct {
	next Iterator // the upstream iterator
	left int      // how many values may still be yielded
}

// Take returns an iterator yielding at most n values of the upstream.
func Take(upstream Iterator, n int) Iterator {
	return &takeIter{next: upstream, left: n}
}

func (it *takeIter) Next() (json.Json, bool) {
	if it.left <= 0 {
		return nil, false
	}
	it.left--
	return it.next.Next()
}

// skipIter discards the first n values.
type skipIter struct {
	next    Iterator // the upstream iterator
	pending int      // how many values still need to be discarded
}

// Skip returns an iterator discarding the first n values of the upstream.
func Skip(upstream Iterator, n int) Iterator {
	return &skipIter{next: upstream, pending: n}
}

func (it *skipIter) Next() (json.Json, bool) {
	for it.pending > 0 {
		it.pending--
		if _, ok := it.next.Next(); !ok {
			return nil, false
		}
	}
	return it.next.Next()
}

/*
 * Collect
 */

// Collect drains an iterator into a freshly allocated list.
func Collect(it Iterator) *json.List {
	list := json.NewList()
	for {
		j, ok := it.Next()
		if !ok {
			return list
		}
		list.Append(j)
	}
}
