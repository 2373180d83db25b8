// Released under an MIT license. See LICENSE.

// Package hashable defines the interface for simian types usable as map keys.
package hashable

import (
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
)

// I (hashable) is anything that can be used as a map key.
type I interface {
	Key() Key
}

// Key identifies a map entry. Values with equal keys are the same key.
type Key struct {
	Name string
	Text string
}

// Of returns the key for c and true, or false if c cannot be a map key.
func Of(c cell.I) (Key, bool) {
	h, ok := c.(I)
	if !ok {
		return Key{}, false
	}

	return h.Key(), true
}
