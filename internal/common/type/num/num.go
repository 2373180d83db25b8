// Released under an MIT license. See LICENSE.

// Package num provides simian's integer type.
package num

import (
	"strconv"

	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/interface/hashable"
)

const name = "integer"

// T (num) wraps Go's int64 type.
type T int64

type num = T

// New creates a new num cell from the integer i.
func New(i int64) cell.I {
	n := num(i)

	return &n
}

// Equal returns true if c is a num with the same value.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && *n == *To(c)
}

// Int returns the value of the num n.
func (n *num) Int() int64 {
	return int64(*n)
}

// Key returns the map key for the num n.
func (n *num) Key() hashable.Key {
	return hashable.Key{Name: name, Text: n.String()}
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the decimal text of the num n.
func (n *num) String() string {
	return strconv.FormatInt(int64(*n), 10)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type can be a map key.
	_ = hashable.I(&t)
}
