// Released under an MIT license. See LICENSE.

// Package reader encapsulates the simian lexer and parser.
package reader

import (
	"sort"

	"github.com/michaelmacinnis/simian/internal/common/ast"
	"github.com/michaelmacinnis/simian/internal/reader/lexer"
	"github.com/michaelmacinnis/simian/internal/reader/parser"
)

// T (reader) turns source text into programs.
type T struct {
	incomplete bool
	name       string
	seen       map[string]struct{}
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{
		name: name,
		seen: map[string]struct{}{},
	}
}

// Identifiers returns every identifier read so far, sorted.
func (r *reader) Identifiers() []string {
	ids := make([]string, 0, len(r.seen))
	for k := range r.seen {
		ids = append(ids, k)
	}

	sort.Strings(ids)

	return ids
}

// Incomplete returns true if the last text read ended before a complete
// program. More text may fix the errors returned.
func (r *reader) Incomplete() bool {
	return r.incomplete
}

// Read parses text. If text contains any syntax errors, Read returns
// them as a parser.Errors value.
func (r *reader) Read(text string) (*ast.Program, error) {
	l := lexer.New(r.name)
	l.Scan(text)

	p := parser.New(l.Token)

	program, err := p.Parse()

	r.incomplete = p.Incomplete()

	for _, id := range l.Identifiers() {
		r.seen[id] = struct{}{}
	}

	return program, err
}
