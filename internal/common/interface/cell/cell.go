// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all simian values.
package cell

// I (cell) is the basic unit of storage in simian.
type I interface {
	Equal(c I) bool
	Name() string
	String() string
}
