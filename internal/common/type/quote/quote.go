// Released under an MIT license. See LICENSE.

// Package quote provides simian's type for unevaluated syntax.
package quote

import (
	"github.com/michaelmacinnis/simian/internal/common/ast"
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
)

const name = "quote"

// T (quote) wraps a syntax tree node.
type T struct {
	Node ast.Node
}

type quote = T

// New creates a new quote wrapping n.
func New(n ast.Node) cell.I {
	return &quote{Node: n}
}

// Equal returns true if c is the same quote as q.
func (q *quote) Equal(c cell.I) bool {
	return Is(c) && q == To(c)
}

// Name returns the name of the quote type.
func (q *quote) Name() string {
	return name
}

func (q *quote) String() string {
	if q.Node == nil {
		return "QUOTE()"
	}

	return "QUOTE(" + q.Node.String() + ")"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t quote

	// The quote type is a cell.
	_ = cell.I(&t)
}
