// Released under an MIT license. See LICENSE.

// Package errstr provides simian's runtime error value.
//
// Runtime errors are ordinary values. Every composite evaluation checks its
// operands and passes an error value through unchanged.
package errstr

import (
	"fmt"

	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
)

const name = "error"

// T (errstr) is a runtime error message.
type T struct {
	message string
}

type errstr = T

// New creates a new errstr with the message s.
func New(s string) cell.I {
	return &errstr{message: s}
}

// Errorf creates a new errstr with a formatted message.
func Errorf(format string, args ...interface{}) cell.I {
	return New(fmt.Sprintf(format, args...))
}

// Equal returns true if c is an errstr with the same message.
func (e *errstr) Equal(c cell.I) bool {
	return Is(c) && e.message == To(c).message
}

// Error satisfies Go's error interface.
func (e *errstr) Error() string {
	return e.message
}

// Message returns the message of the errstr e.
func (e *errstr) Message() string {
	return e.message
}

// Name returns the name of the errstr type.
func (e *errstr) Name() string {
	return name
}

func (e *errstr) String() string {
	return "ERROR: " + e.message
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t errstr

	// The errstr type is a cell.
	_ = cell.I(&t)

	// The errstr type is an error.
	_ = error(&t)
}
