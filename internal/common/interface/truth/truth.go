// Released under an MIT license. See LICENSE.

// Package truth defines the interface for simian types that have a truth value.
package truth

import (
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell. Values that do not define
// their own truth value are true.
func Value(c cell.I) bool {
	if b, ok := c.(I); ok {
		return b.Bool()
	}

	return true
}
