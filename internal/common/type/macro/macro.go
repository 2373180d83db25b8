// Released under an MIT license. See LICENSE.

// Package macro provides simian's macro type.
package macro

import (
	"github.com/michaelmacinnis/simian/internal/common/ast"
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/type/env"
)

const name = "macro"

// T (macro) is a macro definition and the env it was defined in.
// The body is never evaluated directly; each expansion evaluates a copy.
type T struct {
	Body       *ast.Block
	Env        *env.T
	Parameters []*ast.Identifier
}

type macro = T

// New creates a new macro.
func New(params []*ast.Identifier, body *ast.Block, e *env.T) cell.I {
	return &macro{
		Body:       body,
		Env:        e,
		Parameters: params,
	}
}

// Equal returns true if c is the same macro as m.
func (m *macro) Equal(c cell.I) bool {
	return Is(c) && m == To(c)
}

// Name returns the name of the macro type.
func (m *macro) Name() string {
	return name
}

func (m *macro) String() string {
	l := &ast.MacroLiteral{Parameters: m.Parameters, Body: m.Body}

	return l.String()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t macro

	// The macro type is a cell.
	_ = cell.I(&t)
}
