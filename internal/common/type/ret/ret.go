// Released under an MIT license. See LICENSE.

// Package ret provides the value that carries a returned value out of
// nested blocks. It never escapes a function call or a program.
package ret

import (
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
)

const name = "return"

// T (ret) wraps a returned value.
type T struct {
	Value cell.I
}

type ret = T

// New wraps v.
func New(v cell.I) cell.I {
	return &ret{Value: v}
}

// Unwrap returns the wrapped value if c is a ret and c otherwise.
func Unwrap(c cell.I) cell.I {
	if r, ok := c.(*ret); ok {
		return r.Value
	}

	return c
}

// Equal returns true if c is the same ret as r.
func (r *ret) Equal(c cell.I) bool {
	return Is(c) && r == To(c)
}

// Name returns the name of the ret type.
func (r *ret) Name() string {
	return name
}

func (r *ret) String() string {
	return r.Value.String()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t ret

	// The ret type is a cell.
	_ = cell.I(&t)
}
