// Released under an MIT license. See LICENSE.

// Package expand provides simian's macro system.
//
// Macros are defined by top-level let statements whose value is a macro
// literal. Definitions are removed from the program and bound in a macro
// env that ordinary evaluation never sees. Calls to macros are then
// replaced by the syntax their bodies produce.
package expand

import (
	"github.com/michaelmacinnis/simian/internal/common/ast"
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/type/env"
	"github.com/michaelmacinnis/simian/internal/common/type/errstr"
	"github.com/michaelmacinnis/simian/internal/common/type/macro"
	"github.com/michaelmacinnis/simian/internal/common/type/quote"
	"github.com/michaelmacinnis/simian/internal/common/type/ret"
	"github.com/michaelmacinnis/simian/internal/engine/eval"
)

// DefineMacros removes macro definitions from program and binds them in macros.
func DefineMacros(program *ast.Program, macros *env.T) {
	kept := make([]ast.Statement, 0, len(program.Statements))

	for _, s := range program.Statements {
		let, ok := s.(*ast.Let)
		if !ok {
			kept = append(kept, s)

			continue
		}

		m, ok := let.Value.(*ast.MacroLiteral)
		if !ok {
			kept = append(kept, s)

			continue
		}

		macros.Set(let.Name.Value, macro.New(m.Parameters, m.Body, macros))
	}

	program.Statements = kept
}

// ExpandMacros replaces every call to a macro bound in macros with the
// syntax the macro produces. A macro that produces anything other than a
// quote removes the call. The first error produced by a macro, if any, is
// returned with the rewritten tree.
func ExpandMacros(program ast.Node, macros *env.T, e *eval.T) (ast.Node, cell.I) {
	var failure cell.I

	n := ast.Modify(program, func(n ast.Node) ast.Node {
		c, ok := n.(*ast.Call)
		if !ok {
			return n
		}

		m := lookup(c, macros)
		if m == nil {
			return n
		}

		r := expand(c, m, e)

		switch {
		case quote.Is(r):
			return quote.To(r).Node
		case errstr.Is(r) && failure == nil:
			failure = r
		}

		return nil
	})

	return n, failure
}

func expand(c *ast.Call, m *macro.T, e *eval.T) cell.I {
	if len(c.Arguments) != len(m.Parameters) {
		return errstr.Errorf(
			"wrong number of arguments: want=%d, got=%d",
			len(m.Parameters), len(c.Arguments),
		)
	}

	scope := env.New(m.Env)
	for i, p := range m.Parameters {
		scope.Set(p.Value, quote.New(c.Arguments[i]))
	}

	// Each expansion rewrites its own copy of the body.
	body := ast.Copy(m.Body)

	return ret.Unwrap(e.Eval(body, scope))
}

func lookup(c *ast.Call, macros *env.T) *macro.T {
	id, ok := c.Function.(*ast.Identifier)
	if !ok {
		return nil
	}

	v, ok := macros.Get(id.Value)
	if !ok || !macro.Is(v) {
		return nil
	}

	return macro.To(v)
}
