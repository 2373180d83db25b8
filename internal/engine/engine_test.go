// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/michaelmacinnis/simian/internal/common/type/num"
	"github.com/michaelmacinnis/simian/internal/engine/eval"
	"github.com/michaelmacinnis/simian/internal/reader"
)

type harness struct {
	*testing.T

	engine *T
	output bytes.Buffer
	reader *reader.T
}

func setup(t *testing.T) *harness {
	h := &harness{T: t, reader: reader.New("test")}
	h.engine = New(&h.output)

	return h
}

func (h *harness) evaluate(s string) (string, error) {
	h.Helper()

	p, err := h.reader.Read(s)
	if err != nil {
		h.Fatalf("Parsing %q: %v", s, err)
	}

	v, err := h.engine.Evaluate(p)
	if err != nil {
		return "", err
	}

	return v.String(), nil
}

func (h *harness) expect(s, want string) {
	h.Helper()

	got, err := h.evaluate(s)
	if err != nil {
		h.Fatalf("Evaluating %q: %v", s, err)
	}

	if got != want {
		h.Errorf("%q evaluated to %q, want %q", s, got, want)
	}
}

func TestDefine(t *testing.T) {
	h := setup(t)

	h.engine.Define("answer", num.New(42))
	h.expect("answer + 0", "42")
}

func TestInterrupted(t *testing.T) {
	h := setup(t)

	h.engine.Interrupted(func() bool { return true })

	_, err := h.evaluate("while (true) { 1 }")
	if !errors.Is(err, eval.ErrInterrupted) {
		t.Errorf("got %v, want %v", err, eval.ErrInterrupted)
	}

	h.engine.Interrupted(func() bool { return false })
	h.expect("1 + 1", "2")
}

func TestMacroFailureIsAValue(t *testing.T) {
	h := setup(t)

	h.expect("let m = macro(x) { x }; m(1, 2)", "ERROR: wrong number of arguments: want=1, got=2")
	h.expect("m(1)", "1")
}

func TestMacrosAndBindingsPersist(t *testing.T) {
	h := setup(t)

	h.expect(`let unless = macro(c, x, y) {
		quote(if (!(unquote(c))) { unquote(x) } else { unquote(y) })
	};`, "null")
	h.expect("let x = 1;", "null")
	h.expect("unless(x > 5, x + 1, x - 1)", "2")
	h.expect("unless(x < 5, x + 1, x - 1)", "0")

	found := map[string]bool{}
	for _, name := range h.engine.Names() {
		found[name] = true
	}

	for _, name := range []string{"unless", "x", "len"} {
		if !found[name] {
			t.Errorf("%s missing from %v", name, h.engine.Names())
		}
	}
}

func TestPrint(t *testing.T) {
	h := setup(t)

	h.expect(`print("hello", [1, "two"])`, "null")

	if h.output.String() != "hello\n[1, \"two\"]\n" {
		t.Errorf("print wrote %q", h.output.String())
	}
}

func TestStackExhausted(t *testing.T) {
	h := setup(t)

	h.engine.Limit(100)

	_, err := h.evaluate("fn f(n) { f(n + 1) } f(0)")
	if !errors.Is(err, eval.ErrStackExhausted) {
		t.Fatalf("got %v, want %v", err, eval.ErrStackExhausted)
	}

	// The engine remains usable.
	h.expect("fn g(n) { if (n == 0) { 0 } else { g(n - 1) } } g(50)", "0")
}

func TestFatalErrorsLeaveDepthIntact(t *testing.T) {
	h := setup(t)

	h.engine.Limit(5)
	h.expect("fn f(n) { if (n == 0) { 0 } else { 1 + f(n - 1) } }", "null")
	h.expect("f(4)", "4")

	for i := 0; i < 3; i++ {
		_, err := h.evaluate("fn g(n) { g(n + 1) } g(0)")
		if !errors.Is(err, eval.ErrStackExhausted) {
			t.Fatalf("got %v, want %v", err, eval.ErrStackExhausted)
		}
	}

	h.expect("f(4)", "4")

	interrupted := true
	h.engine.Interrupted(func() bool { return interrupted })

	for i := 0; i < 3; i++ {
		_, err := h.evaluate("f(4)")
		if !errors.Is(err, eval.ErrInterrupted) {
			t.Fatalf("got %v, want %v", err, eval.ErrInterrupted)
		}
	}

	interrupted = false

	h.expect("f(4)", "4")
}
