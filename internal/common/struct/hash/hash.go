// Released under an MIT license. See LICENSE.

// Package hash provides simian's name to value mapping type.
package hash

import (
	"sort"

	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/interface/reference"
	"github.com/michaelmacinnis/simian/internal/common/struct/slot"
)

// T (hash) maps names to values.
type T struct {
	m map[string]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Names returns the sorted names in the hash h.
func (h *hash) Names() []string {
	names := make([]string, 0, len(h.m))
	for k := range h.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Set associates the name k with the cell v in the hash h.
// An existing reference for k is updated rather than replaced.
func (h *hash) Set(k string, v cell.I) {
	if r, ok := h.m[k]; ok {
		r.Set(v)

		return
	}

	h.m[k] = slot.New(v)
}
