// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed simian code.
package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/michaelmacinnis/simian/internal/common/ast"
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/type/env"
	"github.com/michaelmacinnis/simian/internal/engine/commands"
	"github.com/michaelmacinnis/simian/internal/engine/eval"
	"github.com/michaelmacinnis/simian/internal/engine/expand"
)

// T (engine) is a facade in front of the machinery for evaluating simian code.
// Definitions persist from one call to Evaluate to the next.
type T struct {
	env    *env.T
	eval   *eval.T
	macros *env.T
}

// New creates a new T. Output from print is written to w.
func New(w io.Writer) *T {
	return &T{
		env:    env.New(nil),
		eval:   eval.New(w, commands.Lookup),
		macros: env.New(nil),
	}
}

// Define binds name to v in the top-level env.
func (e *T) Define(name string, v cell.I) {
	e.env.Set(name, v)
}

// Evaluate defines any macros in p, expands macro calls, and evaluates the
// result. Runtime errors are returned as error values. The returned error
// is only non-nil if evaluation could not finish.
func (e *T) Evaluate(p *ast.Program) (c cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		c = nil

		switch r := r.(type) {
		case error:
			if errors.Is(r, eval.ErrInterrupted) || errors.Is(r, eval.ErrStackExhausted) {
				err = r
			} else {
				err = fmt.Errorf("internal error: %w", r)
			}
		case string:
			err = errors.New("internal error: " + r)
		case fmt.Stringer:
			err = errors.New("internal error: " + r.String())
		default:
			err = errors.New("internal error: unexpected error")
		}
	}()

	expand.DefineMacros(p, e.macros)

	n, failure := expand.ExpandMacros(p, e.macros, e.eval)
	if failure != nil {
		return failure, nil
	}

	return e.eval.Eval(n, e.env), nil
}

// Interrupted sets the function polled to check for interrupts.
func (e *T) Interrupted(f func() bool) {
	e.eval.Interrupted = f
}

// Limit sets the maximum number of nested function calls.
func (e *T) Limit(n int) {
	e.eval.Limit = n
}

// Names returns every name bound in the top-level env, every macro name
// and every builtin name. Useful for completion.
func (e *T) Names() []string {
	names := e.env.Names()
	names = append(names, e.macros.Names()...)

	return append(names, commands.Names()...)
}
