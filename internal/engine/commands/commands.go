// Released under an MIT license. See LICENSE.

// Package commands provides simian's builtin functions.
package commands

import (
	"sort"

	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/type/builtin"
)

//nolint:gochecknoglobals
var registry = func() map[string]cell.I {
	m := map[string]cell.I{}

	for _, group := range []map[string]builtin.Function{
		ArrayFunctions(),
		CoreFunctions(),
		MapFunctions(),
		StringFunctions(),
	} {
		for k, f := range group {
			m[k] = builtin.New(f)
		}
	}

	return m
}()

// Lookup returns the builtin registered as name.
func Lookup(name string) (cell.I, bool) {
	b, ok := registry[name]

	return b, ok
}

// Names returns the sorted names of every builtin.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}
