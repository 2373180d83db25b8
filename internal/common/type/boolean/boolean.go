// Released under an MIT license. See LICENSE.

// Package boolean provides simian's boolean value type.
package boolean

import (
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/interface/hashable"
	"github.com/michaelmacinnis/simian/internal/common/interface/truth"
)

const name = "boolean"

// T (boolean) wraps Go's bool type. There are exactly two booleans.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool returns the canonical boolean for the bool b.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is the same boolean as b.
func (b *boolean) Equal(c cell.I) bool {
	return Is(c) && b == To(c)
}

// Key returns the map key for the boolean b.
func (b *boolean) Key() hashable.Key {
	return hashable.Key{Name: name, Text: b.String()}
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "true"
	}

	return "false"
}

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type can be a map key.
	_ = hashable.I(&t)

	// The boolean type has a truth value.
	_ = truth.I(&t)
}
