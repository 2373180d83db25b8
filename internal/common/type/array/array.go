// Released under an MIT license. See LICENSE.

// Package array provides simian's array type.
//
// Arrays are never modified once created. Operations that would change an
// array return a new one.
package array

import (
	"strings"

	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/interface/literal"
)

const name = "array"

// T (array) is an ordered sequence of values.
type T struct {
	elements []cell.I
}

type array = T

// New creates a new array holding elements. The array takes ownership of
// the elements slice.
func New(elements ...cell.I) cell.I {
	return &array{elements: elements}
}

// Append returns a new array with the elements of a followed by vs.
func (a *array) Append(vs ...cell.I) cell.I {
	elements := make([]cell.I, 0, len(a.elements)+len(vs))
	elements = append(elements, a.elements...)
	elements = append(elements, vs...)

	return New(elements...)
}

// At returns the element at index i or false if i is out of range.
func (a *array) At(i int64) (cell.I, bool) {
	if i < 0 || i >= int64(len(a.elements)) {
		return nil, false
	}

	return a.elements[i], true
}

// Elements returns the elements of the array a. It must not be modified.
func (a *array) Elements() []cell.I {
	return a.elements
}

// Equal returns true if c is the same array as a.
func (a *array) Equal(c cell.I) bool {
	return Is(c) && a == To(c)
}

// Len returns the number of elements in the array a.
func (a *array) Len() int {
	return len(a.elements)
}

// Name returns the name of the array type.
func (a *array) Name() string {
	return name
}

// Slice returns a new array with the elements of a from i to the end.
func (a *array) Slice(i int) cell.I {
	elements := make([]cell.I, len(a.elements)-i)
	copy(elements, a.elements[i:])

	return New(elements...)
}

func (a *array) String() string {
	s := make([]string, len(a.elements))
	for i, e := range a.elements {
		s[i] = literal.String(e)
	}

	return "[" + strings.Join(s, ", ") + "]"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t array

	// The array type is a cell.
	_ = cell.I(&t)
}
