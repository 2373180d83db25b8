// Released under an MIT license. See LICENSE.

package ui

import (
	"reflect"
	"testing"
)

func TestComplete(t *testing.T) {
	names := []string{"let", "len", "last", "len", "print", "push"}

	tests := []struct {
		line string
		pos  int
		head string
		cs   []string
		tail string
	}{
		{"le", 2, "", []string{"len", "let"}, ""},
		{"x = pu", 6, "x = ", []string{"push"}, ""},
		{"print(l)", 7, "print(", []string{"last", "len", "let"}, ")"},
		{"foo(", 4, "foo(", nil, ""},
		{"zz", 2, "", []string{}, ""},
	}

	for _, tt := range tests {
		head, cs, tail := complete(names, tt.line, tt.pos)
		if head != tt.head || tail != tt.tail || !reflect.DeepEqual(cs, tt.cs) {
			t.Errorf(
				"complete(%q, %d) = %q, %v, %q; want %q, %v, %q",
				tt.line, tt.pos, head, cs, tail, tt.head, tt.cs, tt.tail,
			)
		}
	}
}
