// Released under an MIT license. See LICENSE.

// Package builtin provides simian's type for functions implemented in Go.
package builtin

import (
	"io"

	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
)

const name = "builtin"

// Function is the Go signature for builtins. Output is written to w.
// Failures are reported by returning an error value.
type Function func(w io.Writer, args ...cell.I) cell.I

// T (builtin) is a Go function.
type T struct {
	function Function
}

type builtin = T

// New creates a new builtin.
func New(f Function) cell.I {
	return &builtin{function: f}
}

// Call invokes the builtin b.
func (b *builtin) Call(w io.Writer, args ...cell.I) cell.I {
	return b.function(w, args...)
}

// Equal returns true if c is the same builtin as b.
func (b *builtin) Equal(c cell.I) bool {
	return Is(c) && b == To(c)
}

// Name returns the name of the builtin type.
func (b *builtin) Name() string {
	return name
}

func (b *builtin) String() string {
	return "builtin function"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t builtin

	// The builtin type is a cell.
	_ = cell.I(&t)
}
