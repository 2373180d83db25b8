package lexer

import (
	"reflect"
	"testing"

	"github.com/michaelmacinnis/simian/internal/common/struct/loc"
	"github.com/michaelmacinnis/simian/internal/common/struct/token"
)

func TestComments(t *testing.T) {
	h := setup(t, "Comments")

	h.scan("# first\nlet x = 1; // second\nx",
		h.at(2, 1).other(token.Let, "let"),
		h.at(2, 5).ident("x"),
		h.at(2, 7).other(token.Assign, "="),
		h.at(2, 9).other(token.Int, "1"),
		h.at(2, 10).other(token.Semicolon, ";"),
		h.at(3, 1).ident("x"),
		h.at(3, 2).eof(),
	)
}

func TestIllegal(t *testing.T) {
	h := setup(t, "Illegal")

	h.scan("@ a",
		h.at(1, 1).other(token.Illegal, "@"),
		h.at(1, 3).ident("a"),
		h.at(1, 4).eof(),
	)
}

func TestKeywords(t *testing.T) {
	h := setup(t, "Keywords")

	h.scan("fn let true false if else return macro while and or",
		h.at(1, 1).other(token.Function, "fn"),
		h.at(1, 4).other(token.Let, "let"),
		h.at(1, 8).other(token.True, "true"),
		h.at(1, 13).other(token.False, "false"),
		h.at(1, 19).other(token.If, "if"),
		h.at(1, 22).other(token.Else, "else"),
		h.at(1, 27).other(token.Return, "return"),
		h.at(1, 34).other(token.Macro, "macro"),
		h.at(1, 40).other(token.While, "while"),
		h.at(1, 46).other(token.And, "and"),
		h.at(1, 50).other(token.Or, "or"),
		h.at(1, 52).eof(),
	)

	if ids := h.lexer.Identifiers(); len(ids) != 0 {
		h.t.Fatalf("Expected no identifiers; got %v", ids)
	}
}

func TestMultipleBuffers(t *testing.T) {
	h := setup(t, "MultipleBuffers")

	h.scan("let ab",
		h.at(1, 1).other(token.Let, "let"),
	)

	// The identifier is not complete until the next buffer arrives.
	h.lexer.Scan("c = 1;\n")

	h.expect(
		h.at(1, 5).ident("abc"),
		h.at(1, 9).other(token.Assign, "="),
		h.at(1, 11).other(token.Int, "1"),
		h.at(1, 12).other(token.Semicolon, ";"),
		h.at(2, 1).eof(),
	)
}

func TestOperators(t *testing.T) {
	h := setup(t, "Operators")

	h.scan("= + - * / ! < <= > >= == != , ; : ( ) { } [ ]",
		h.at(1, 1).other(token.Assign, "="),
		h.at(1, 3).other(token.Plus, "+"),
		h.at(1, 5).other(token.Minus, "-"),
		h.at(1, 7).other(token.Asterisk, "*"),
		h.at(1, 9).other(token.Slash, "/"),
		h.at(1, 11).other(token.Bang, "!"),
		h.at(1, 13).other(token.LT, "<"),
		h.at(1, 15).other(token.LE, "<="),
		h.at(1, 18).other(token.GT, ">"),
		h.at(1, 20).other(token.GE, ">="),
		h.at(1, 23).other(token.EQ, "=="),
		h.at(1, 26).other(token.NotEQ, "!="),
		h.at(1, 29).other(token.Comma, ","),
		h.at(1, 31).other(token.Semicolon, ";"),
		h.at(1, 33).other(token.Colon, ":"),
		h.at(1, 35).other(token.LParen, "("),
		h.at(1, 37).other(token.RParen, ")"),
		h.at(1, 39).other(token.LBrace, "{"),
		h.at(1, 41).other(token.RBrace, "}"),
		h.at(1, 43).other(token.LBracket, "["),
		h.at(1, 45).other(token.RBracket, "]"),
		h.at(1, 46).eof(),
	)
}

func TestSeenIdentifiers(t *testing.T) {
	h := setup(t, "SeenIdentifiers")

	h.scan("zeta = alpha + beta_2 + alpha",
		h.at(1, 1).ident("zeta"),
		h.at(1, 6).other(token.Assign, "="),
		h.at(1, 8).ident("alpha"),
		h.at(1, 14).other(token.Plus, "+"),
		h.at(1, 16).ident("beta_2"),
		h.at(1, 23).other(token.Plus, "+"),
		h.at(1, 25).ident("alpha"),
		h.at(1, 30).eof(),
	)

	expected := []string{"alpha", "beta_2", "zeta"}
	if actual := h.lexer.Identifiers(); !reflect.DeepEqual(actual, expected) {
		h.t.Fatalf("Expected %v; got %v", expected, actual)
	}
}

func TestStrings(t *testing.T) {
	h := setup(t, "Strings")

	h.scan(`"hello world" "tab\there" "quote\"" "\q" "open`,
		h.at(1, 1).other(token.String, "hello world"),
		h.at(1, 15).other(token.String, "tab\there"),
		h.at(1, 27).other(token.String, `quote"`),
		h.at(1, 37).other(token.Illegal, `"\q"`),
		h.at(1, 42).other(token.Illegal, `"open`),
		h.at(1, 47).eof(),
	)
}

type expectation struct {
	class token.Class
	value string
	loc.T
}

type harness struct {
	lexer  *T
	source loc.T
	t      *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{
		lexer: New(label),
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		t: t,
	}
}

func (h *harness) at(line, char int) *harness {
	h.source.Line = line
	h.source.Char = char

	return h
}

func (h *harness) eof() *expectation {
	return h.other(token.EOF, "")
}

func (h *harness) expect(tokens ...*expectation) {
	h.t.Helper()

	for _, e := range tokens {
		a := h.lexer.Token()

		switch {
		case a.Class() != e.class:
			h.t.Fatalf("Expected %v; got %v", e.class, a)
		case a.Value() != e.value:
			h.t.Fatalf("Expected %q; got %v", e.value, a)
		case *a.Source() != e.T:
			h.t.Fatalf("Expected %v; got %v", &e.T, a.Source())
		}
	}
}

func (h *harness) ident(s string) *expectation {
	return h.other(token.Ident, s)
}

func (h *harness) other(c token.Class, s string) *expectation {
	return &expectation{
		class: c,
		value: s,
		T:     h.source,
	}
}

func (h *harness) scan(s string, tokens ...*expectation) {
	h.t.Helper()

	h.lexer.Scan(s)
	h.expect(tokens...)
}
