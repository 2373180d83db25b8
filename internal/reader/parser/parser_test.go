package parser

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/simian/internal/common/ast"
	"github.com/michaelmacinnis/simian/internal/reader/lexer"
)

func check(t *testing.T, s string) *ast.Program {
	t.Helper()

	p := parse(t, s)

	r := parse(t, p.String())
	if p.String() != r.String() {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}

	return p
}

func parse(t *testing.T, s string) *ast.Program {
	t.Helper()

	l := lexer.New("test")
	l.Scan(s)

	p, err := New(l.Token).Parse()
	if err != nil {
		t.Fatalf("Parsing %q: %v", s, err)
	}

	return p
}

func failures(s string) (*ast.Program, Errors, bool) {
	l := lexer.New("test")
	l.Scan(s)

	p := New(l.Token)

	program, err := p.Parse()
	if err == nil {
		return program, nil, p.Incomplete()
	}

	errs, ok := err.(Errors)
	if !ok {
		errs = Errors{err.Error()}
	}

	return program, errs, p.Incomplete()
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	p := check(t, "a = b = 3;")

	if s := p.String(); s != "(a = (b = 3));" {
		t.Fatalf("Expected right associative assignment; got %s", s)
	}
}

func TestDeclarations(t *testing.T) {
	p := check(t, "fn add(a, b) { return a + b; }; let sum = add(1, 2);")

	if n := len(p.Statements); n != 2 {
		t.Fatalf("Expected 2 statements; got %d", n)
	}

	f, ok := p.Statements[0].(*ast.FunctionStatement)
	if !ok {
		t.Fatalf("Expected a function statement; got %T", p.Statements[0])
	}

	if f.Name.Value != "add" || len(f.Parameters) != 2 {
		t.Fatalf("Expected add(a, b); got %s", f)
	}

	if _, ok := p.Statements[1].(*ast.Let); !ok {
		t.Fatalf("Expected a let statement; got %T", p.Statements[1])
	}
}

func TestErrorsAccumulate(t *testing.T) {
	for _, s := range []string{"let = 5;", "let x 5;"} {
		p, errs, _ := failures(s)
		if len(errs) == 0 {
			t.Fatalf("Expected errors for %q", s)
		}

		for _, stmt := range p.Statements {
			if _, ok := stmt.(*ast.Let); ok {
				t.Fatalf("Expected no let statement for %q", s)
			}
		}
	}

	_, errs, _ := failures("let = 5; let y 6; let 7;")
	if len(errs) < 3 {
		t.Fatalf("Expected at least 3 errors; got %v", errs)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"let = 5;", "test:1: expected next token to be IDENT, got = instead"},
		{"let x 5;", "test:1: expected next token to be =, got INT instead"},
		{"1 + ;", "test:1: no prefix parse function for ; found"},
		{"99999999999999999999", `test:1: could not parse "99999999999999999999" as integer`},
		{"1 = 2", "test:1: expected identifier on left of =, got 1"},
		{"fn(1) { 1 }", "test:1: expected next token to be IDENT, got INT instead"},
		{"{1 2}", "test:1: expected next token to be :, got INT instead"},
		{"if (x) {\n1\n} else 2", "test:3: expected next token to be {, got INT instead"},
		{"@", `test:1: illegal token "@"`},
	}

	for _, tt := range tests {
		_, errs, _ := failures(tt.input)
		if len(errs) == 0 || errs[0] != tt.expected {
			t.Fatalf("Parsing %q: expected %q; got %q", tt.input, tt.expected, errs)
		}
	}
}

func TestErrorText(t *testing.T) {
	_, errs, _ := failures("let = 1; let y 2;")

	if s := errs.Error(); strings.Count(s, "\n") != len(errs)-1 {
		t.Fatalf("Expected one error per line; got %q", s)
	}
}

func TestIncomplete(t *testing.T) {
	for _, s := range []string{"let x = ", "fn(x) {", "if (x > 1) { 1 } else {", "[1, 2", "add(1,"} {
		_, errs, incomplete := failures(s)
		if len(errs) == 0 || !incomplete {
			t.Fatalf("Expected %q to be incomplete; got %v", s, errs)
		}
	}

	_, errs, incomplete := failures("let 5 = x;")
	if len(errs) == 0 || incomplete {
		t.Fatalf("Expected complete input with errors; got %v", errs)
	}
}

func TestLiterals(t *testing.T) {
	check(t, `let s = "tab\there \"quoted\"";`)
	check(t, `let m = {"one": 1, 2: "two", true: [1, 2, 3]};`)
	check(t, "let e = {}; let a = [];")
}

func TestMacro(t *testing.T) {
	check(t, `let unless = macro(cond, cons, alt) {
		quote(if (!(unquote(cond))) { unquote(cons) } else { unquote(alt) })
	};
	unless(10 > 5, print("not"), print("yes"));`)
}

func TestNestedFunctions(t *testing.T) {
	check(t, "let newAdder = fn(x) { fn(y) { x + y } }; let add2 = newAdder(2); add2(3)")
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3));"},
		{"-a * b", "((-a) * b);"},
		{"!-a", "(!(-a));"},
		{"a + b + c", "((a + b) + c);"},
		{"a + b - c", "((a + b) - c);"},
		{"a * b / c", "((a * b) / c);"},
		{"a + b / c", "(a + (b / c));"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4));"},
		{"5 <= 4 != 3 >= 4", "((5 <= 4) != (3 >= 4));"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)));"},
		{"a or b and c", "(a or (b and c));"},
		{"a == b and c != d", "((a == b) and (c != d));"},
		{"x = y or z", "(x = (y or z));"},
		{"(5 + 5) * 2", "((5 + 5) * 2);"},
		{"-(5 + 5)", "(-(5 + 5));"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d);"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)));"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d);"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])));"},
	}

	for _, tt := range tests {
		p := check(t, tt.input)
		if s := p.String(); s != tt.expected {
			t.Fatalf("Parsing %q: expected %q; got %q", tt.input, tt.expected, s)
		}
	}
}

func TestReturn(t *testing.T) {
	p := check(t, "fn f() { return; }; fn g() { return 1 }")

	f := p.Statements[0].(*ast.FunctionStatement)
	if r := f.Body.Statements[0].(*ast.Return); r.Value != nil {
		t.Fatalf("Expected a bare return; got %s", r)
	}
}

func TestWhile(t *testing.T) {
	p := check(t, "let i = 0; while (i < 10) { i = i + 1; }")

	e := p.Statements[1].(*ast.ExpressionStatement)
	if _, ok := e.Expression.(*ast.While); !ok {
		t.Fatalf("Expected a while expression; got %T", e.Expression)
	}
}

func TestNestingLimit(t *testing.T) {
	deep := func(open, end string, n int) string {
		return strings.Repeat(open, n) + "1" + strings.Repeat(end, n)
	}

	check(t, deep("(", ")", MaxDepth-1))
	check(t, deep("[", "]", MaxDepth/2))

	for _, s := range []string{
		deep("(", ")", 100000),
		deep("[", "]", MaxDepth+1),
		strings.Repeat("-", 100000) + "1",
		strings.Repeat("if (true) { ", 100000),
	} {
		_, errs, incomplete := failures(s)
		if len(errs) != 1 || incomplete {
			t.Fatalf("Expected one nesting error; got %d errors, incomplete=%v", len(errs), incomplete)
		}

		want := "test:1: expression nested more than 1000 levels deep"
		if errs[0] != want {
			t.Errorf("Expected %q; got %q", want, errs[0])
		}
	}
}
