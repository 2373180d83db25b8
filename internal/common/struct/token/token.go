// Released under an MIT license. See LICENSE.

// Package token is shared by the lexer and parser.
package token

import (
	"strconv"

	"github.com/michaelmacinnis/simian/internal/common/struct/loc"
)

// Class is a token's type.
type Class int

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source *loc.T
	value  string
}

type token = T

// Token classes.
const (
	Illegal Class = iota
	EOF

	Ident
	Int
	String

	Assign
	Plus
	Minus
	Asterisk
	Slash
	Bang
	LT
	LE
	GT
	GE
	EQ
	NotEQ
	And
	Or

	Comma
	Semicolon
	Colon
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket

	Else
	False
	Function
	If
	Let
	Macro
	Return
	True
	While
)

//nolint:gochecknoglobals
var (
	classes = map[Class]string{
		Illegal: "ILLEGAL",
		EOF:     "EOF",

		Ident:  "IDENT",
		Int:    "INT",
		String: "STRING",

		Assign:   "=",
		Plus:     "+",
		Minus:    "-",
		Asterisk: "*",
		Slash:    "/",
		Bang:     "!",
		LT:       "<",
		LE:       "<=",
		GT:       ">",
		GE:       ">=",
		EQ:       "==",
		NotEQ:    "!=",
		And:      "and",
		Or:       "or",

		Comma:     ",",
		Semicolon: ";",
		Colon:     ":",
		LParen:    "(",
		RParen:    ")",
		LBrace:    "{",
		RBrace:    "}",
		LBracket:  "[",
		RBracket:  "]",

		Else:     "else",
		False:    "false",
		Function: "fn",
		If:       "if",
		Let:      "let",
		Macro:    "macro",
		Return:   "return",
		True:     "true",
		While:    "while",
	}

	words = map[string]Class{
		"and":    And,
		"else":   Else,
		"false":  False,
		"fn":     Function,
		"if":     If,
		"let":    Let,
		"macro":  Macro,
		"or":     Or,
		"return": Return,
		"true":   True,
		"while":  While,
	}
)

// New creates a new token.
func New(class Class, value string, source *loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// Keyword returns the class for the word s. Words that are not keywords are identifiers.
func Keyword(s string) Class {
	if c, ok := words[s]; ok {
		return c
	}

	return Ident
}

// Keywords returns every reserved word.
func Keywords() []string {
	k := make([]string, 0, len(words))
	for w := range words {
		k = append(k, w)
	}

	return k
}

// String returns a string representation of Class. Useful for error messages.
func (c Class) String() string {
	if s, ok := classes[c]; ok {
		return s
	}

	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// Class returns the token's class.
func (t *token) Class() Class {
	if t == nil {
		return EOF
	}

	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	if t == nil {
		return nil
	}

	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}
