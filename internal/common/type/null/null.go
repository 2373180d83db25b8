// Released under an MIT license. See LICENSE.

// Package null provides simian's null value.
package null

import (
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/interface/truth"
)

const name = "null"

// T (null) is the type of the absence of a value.
type T struct{}

type null = T

// Null is the only null value.
var Null = &null{} //nolint:gochecknoglobals

// Is returns true if c is null.
func Is(c cell.I) bool {
	return c == cell.I(Null)
}

// Bool returns false. Null is never true.
func (n *null) Bool() bool {
	return false
}

// Equal returns true if c is null.
func (n *null) Equal(c cell.I) bool {
	return c == Null
}

// Name returns the name of the null type.
func (n *null) Name() string {
	return name
}

func (n *null) String() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t null

	// The null type is a cell.
	_ = cell.I(&t)

	// The null type has a truth value.
	_ = truth.I(&t)
}
