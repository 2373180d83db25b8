// Released under an MIT license. See LICENSE.

// Package closure provides simian's function type.
package closure

import (
	"github.com/michaelmacinnis/simian/internal/common/ast"
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/type/env"
)

const name = "function"

// T (closure) is a function and the env it was created in.
type T struct {
	Body       *ast.Block
	Env        *env.T
	Parameters []*ast.Identifier
}

type closure = T

// New creates a new closure.
func New(params []*ast.Identifier, body *ast.Block, e *env.T) cell.I {
	return &closure{
		Body:       body,
		Env:        e,
		Parameters: params,
	}
}

// Equal returns true if c is the same closure as f.
func (f *closure) Equal(c cell.I) bool {
	return Is(c) && f == To(c)
}

// Name returns the name of the closure type.
func (f *closure) Name() string {
	return name
}

func (f *closure) String() string {
	l := &ast.FunctionLiteral{Parameters: f.Parameters, Body: f.Body}

	return l.String()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)
}
