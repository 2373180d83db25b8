// Released under an MIT license. See LICENSE.

// Package literal defines the interface for simian values whose text inside
// a collection differs from their text when displayed on their own.
package literal

import (
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell, if it has
// one, or its display text otherwise.
func String(c cell.I) string {
	if l, ok := c.(I); ok {
		return l.Literal()
	}

	return c.String()
}
