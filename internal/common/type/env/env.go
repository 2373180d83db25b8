// Released under an MIT license. See LICENSE.

// Package env provides simian's environment frames.
//
// A frame holds its own bindings and a link to the frame it was created in.
// Lookups walk outward. Definitions always land in the current frame.
package env

import (
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/interface/reference"
	"github.com/michaelmacinnis/simian/internal/common/struct/hash"
)

// T (env) maps names to values and links to an enclosing env.
type T struct {
	previous *T
	bindings *hash.T
}

type env = T

// New creates a new env enclosed by previous, which may be nil.
func New(previous *T) *env {
	return &env{
		previous: previous,
		bindings: hash.New(),
	}
}

// Assign updates the innermost binding for k. If there is no binding for k,
// Assign defines k in the env e.
func (e *env) Assign(k string, v cell.I) {
	if r := e.Lookup(k); r != nil {
		r.Set(v)

		return
	}

	e.Set(k, v)
}

// Get returns the value bound to k, searching enclosing envs as needed.
func (e *env) Get(k string) (cell.I, bool) {
	r := e.Lookup(k)
	if r == nil {
		return nil, false
	}

	return r.Get(), true
}

// Lookup retrieves the reference associated with the name k in the env e.
func (e *env) Lookup(k string) reference.I {
	for ; e != nil; e = e.previous {
		if r := e.bindings.Get(k); r != nil {
			return r
		}
	}

	return nil
}

// Names returns every name visible from the env e, without duplicates.
func (e *env) Names() []string {
	seen := map[string]bool{}
	names := []string{}

	for ; e != nil; e = e.previous {
		for _, k := range e.bindings.Names() {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}

	return names
}

// Set associates the name k with the cell v in the env e.
func (e *env) Set(k string, v cell.I) {
	e.bindings.Set(k, v)
}
