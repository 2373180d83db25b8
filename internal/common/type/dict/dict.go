// Released under an MIT license. See LICENSE.

// Package dict provides simian's map type.
//
// Keys are compared by value and must be hashable. Entries are kept in
// insertion order so that maps display, and list their keys, predictably.
package dict

import (
	"strings"

	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/interface/hashable"
	"github.com/michaelmacinnis/simian/internal/common/interface/literal"
)

const name = "map"

type entry struct {
	key   cell.I
	value cell.I
}

// T (dict) maps hashable values to values.
type T struct {
	entries map[hashable.Key]int
	ordered []entry
}

type dict = T

// New creates a new, empty dict.
func New() *dict {
	return &dict{entries: map[hashable.Key]int{}}
}

// Copy returns a new dict with the same entries as d.
func (d *dict) Copy() *dict {
	c := &dict{
		entries: make(map[hashable.Key]int, len(d.entries)),
		ordered: make([]entry, len(d.ordered)),
	}

	copy(c.ordered, d.ordered)

	for k, v := range d.entries {
		c.entries[k] = v
	}

	return c
}

// Equal returns true if c is the same dict as d.
func (d *dict) Equal(c cell.I) bool {
	return Is(c) && d == To(c)
}

// Get returns the value for the key k. It returns false if k is not
// present or cannot be a key.
func (d *dict) Get(k cell.I) (cell.I, bool) {
	h, ok := hashable.Of(k)
	if !ok {
		return nil, false
	}

	i, ok := d.entries[h]
	if !ok {
		return nil, false
	}

	return d.ordered[i].value, true
}

// Keys returns the keys of the dict d in insertion order.
func (d *dict) Keys() []cell.I {
	keys := make([]cell.I, len(d.ordered))
	for i, e := range d.ordered {
		keys[i] = e.key
	}

	return keys
}

// Len returns the number of entries in the dict d.
func (d *dict) Len() int {
	return len(d.ordered)
}

// Name returns the name of the dict type.
func (d *dict) Name() string {
	return name
}

// Set associates k with v. It returns false if k cannot be a key.
// Set is only used while a dict is being built.
func (d *dict) Set(k, v cell.I) bool {
	h, ok := hashable.Of(k)
	if !ok {
		return false
	}

	if i, ok := d.entries[h]; ok {
		d.ordered[i].value = v

		return true
	}

	d.entries[h] = len(d.ordered)
	d.ordered = append(d.ordered, entry{key: k, value: v})

	return true
}

func (d *dict) String() string {
	s := make([]string, len(d.ordered))
	for i, e := range d.ordered {
		s[i] = literal.String(e.key) + ": " + literal.String(e.value)
	}

	return "{" + strings.Join(s, ", ") + "}"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t dict

	// The dict type is a cell.
	_ = cell.I(&t)
}
