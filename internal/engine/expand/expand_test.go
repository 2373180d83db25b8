// Released under an MIT license. See LICENSE.

package expand

import (
	"io"
	"testing"

	"github.com/michaelmacinnis/simian/internal/common/ast"
	"github.com/michaelmacinnis/simian/internal/common/type/env"
	"github.com/michaelmacinnis/simian/internal/common/type/errstr"
	"github.com/michaelmacinnis/simian/internal/common/type/macro"
	"github.com/michaelmacinnis/simian/internal/engine/eval"
	"github.com/michaelmacinnis/simian/internal/reader"
)

func parse(t *testing.T, s string) *ast.Program {
	t.Helper()

	p, err := reader.New("test").Read(s)
	if err != nil {
		t.Fatalf("Parsing %q: %v", s, err)
	}

	return p
}

func TestDefineMacros(t *testing.T) {
	p := parse(t, `
let number = 1;
let function = fn(x, y) { x + y };
let mymacro = macro(x, y) { x + y; };
`)

	macros := env.New(nil)

	DefineMacros(p, macros)

	if len(p.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(p.Statements))
	}

	for _, name := range []string{"number", "function"} {
		if _, ok := macros.Get(name); ok {
			t.Errorf("%s should not be a macro", name)
		}
	}

	v, ok := macros.Get("mymacro")
	if !ok || !macro.Is(v) {
		t.Fatalf("mymacro not defined: %v", v)
	}

	m := macro.To(v)

	if len(m.Parameters) != 2 || m.Parameters[0].Value != "x" || m.Parameters[1].Value != "y" {
		t.Errorf("wrong parameters %v", m.Parameters)
	}

	if m.Body.String() != "{\n(x + y);\n}" {
		t.Errorf("wrong body %q", m.Body)
	}
}

func TestExpandMacros(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			`let infix = macro() { quote(1 + 2); }; infix();`,
			`(1 + 2);`,
		},
		{
			`let reverse = macro(a, b) { quote(unquote(b) - unquote(a)); }; reverse(2 + 2, 10 - 5);`,
			`((10 - 5) - (2 + 2));`,
		},
		{
			`let unless = macro(cond, c, a) {
				quote(if (!(unquote(cond))) { unquote(c); } else { unquote(a); });
			};
			unless(10 > 5, puts("not greater"), puts("greater"));`,
			`if ((!(10 > 5))) {
puts("not greater");
} else {
puts("greater");
};`,
		},
		{
			`let nothing = macro() { 1 }; nothing(); 2`,
			`2;`,
		},
		{
			`let twice = macro(x) { quote(unquote(x) + unquote(x)) }; let f = fn() { twice(3) };`,
			`let f = fn() {
(3 + 3);
};`,
		},
	}

	for _, tt := range tests {
		p := parse(t, tt.input)
		macros := env.New(nil)

		DefineMacros(p, macros)

		n, failure := ExpandMacros(p, macros, eval.New(io.Discard, nil))
		if failure != nil {
			t.Errorf("%q: unexpected failure %s", tt.input, failure)

			continue
		}

		if n.String() != tt.want {
			t.Errorf("%q expanded to %q, want %q", tt.input, n, tt.want)
		}
	}
}

func TestExpandMacrosFailure(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`let m = macro(x) { quote(x) }; m(1, 2)`, "wrong number of arguments: want=1, got=2"},
		{`let m = macro() { 1 / 0 }; m()`, "division by zero"},
		{`let m = macro() { quote(unquote(nope)) }; m()`, "identifier not found: nope"},
	}

	for _, tt := range tests {
		p := parse(t, tt.input)
		macros := env.New(nil)

		DefineMacros(p, macros)

		_, failure := ExpandMacros(p, macros, eval.New(io.Discard, nil))
		if !errstr.Is(failure) || errstr.To(failure).Message() != tt.want {
			t.Errorf("%q: got %v, want %q", tt.input, failure, tt.want)
		}
	}
}

func TestExpansionIsRepeatable(t *testing.T) {
	macros := env.New(nil)
	e := eval.New(io.Discard, nil)

	DefineMacros(parse(t, `let unless = macro(c, x, y) {
		quote(if (!(unquote(c))) { unquote(x) } else { unquote(y) })
	};`), macros)

	v, _ := macros.Get("unless")
	body := macro.To(v).Body.String()

	first := parse(t, `unless(1 > 2, "a", "b")`)
	second := parse(t, `unless(true, 1, 2)`)

	a, _ := ExpandMacros(first, macros, e)
	b, _ := ExpandMacros(second, macros, e)

	if a.String() != "if ((!(1 > 2))) {\n\"a\";\n} else {\n\"b\";\n};" {
		t.Errorf("first expansion %q", a)
	}

	if b.String() != "if ((!true)) {\n1;\n} else {\n2;\n};" {
		t.Errorf("second expansion %q", b)
	}

	if macro.To(v).Body.String() != body {
		t.Errorf("macro body changed to %q", macro.To(v).Body)
	}
}
