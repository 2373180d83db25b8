// Released under an MIT license. See LICENSE.

package env

import (
	"sort"
	"strings"
	"testing"

	"github.com/michaelmacinnis/simian/internal/common/type/num"
)

func value(t *testing.T, e *T, k string) string {
	t.Helper()

	v, ok := e.Get(k)
	if !ok {
		return "<unbound>"
	}

	return v.String()
}

func TestAssign(t *testing.T) {
	outer := New(nil)
	inner := New(outer)

	outer.Set("x", num.New(1))

	inner.Assign("x", num.New(2))

	if got := value(t, outer, "x"); got != "2" {
		t.Errorf("outer x = %s, want 2", got)
	}

	inner.Assign("y", num.New(3))

	if got := value(t, outer, "y"); got != "<unbound>" {
		t.Errorf("outer y = %s, want <unbound>", got)
	}

	if got := value(t, inner, "y"); got != "3" {
		t.Errorf("inner y = %s, want 3", got)
	}
}

func TestShadowing(t *testing.T) {
	outer := New(nil)
	inner := New(outer)

	outer.Set("x", num.New(1))
	inner.Set("x", num.New(2))

	if got := value(t, inner, "x"); got != "2" {
		t.Errorf("inner x = %s, want 2", got)
	}

	if got := value(t, outer, "x"); got != "1" {
		t.Errorf("outer x = %s, want 1", got)
	}

	if inner.previous != outer || outer.previous != nil {
		t.Error("wrong enclosing env")
	}

	names := inner.Names()
	sort.Strings(names)

	if strings.Join(names, " ") != "x" {
		t.Errorf("names = %v, want [x]", names)
	}
}

func TestUnbound(t *testing.T) {
	e := New(New(nil))

	if e.Lookup("missing") != nil {
		t.Error("missing should be unbound")
	}

	if got := value(t, e, "missing"); got != "<unbound>" {
		t.Errorf("missing = %s", got)
	}
}
