// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the simian language.
//
// The simian lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
package lexer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/simian/internal/common/struct/loc"
	"github.com/michaelmacinnis/simian/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	seen map[string]struct{} // Identifiers (command completion).

	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	saved action   // Escaped action.
	state action   // Current action.

	source loc.T // Location of the current token's first rune.
	line   int   // Line of the current byte.

	tokens chan *token.T
}

type lexer = T

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		seen: map[string]struct{}{},

		runes: 1,

		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		line: 1,

		tokens: make(chan *token.T, 16),
	}

	l.state = skipWhitespace

	return l
}

// Identifiers returns the sorted list of identifiers scanned so far.
func (l *lexer) Identifiers() []string {
	ids := make([]string, 0, len(l.seen))
	for k := range l.seen {
		ids = append(ids, k)
	}

	sort.Strings(ids)

	return ids
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *lexer) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *lexer) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token. Once all buffers have been
// scanned, Token returns an EOF token until more text is passed to Scan.
func (l *lexer) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
		}

		l.gather()

		if l.state == nil {
			source := l.location()
			source.Char = l.runes

			return token.New(token.EOF, "", source)
		}

		l.state = l.state(l)
	}
}

type action func(*T) action

const eof = -1

func (l *lexer) accept(r rune, w int) {
	if r == '\n' {
		l.line++
		l.runes = 1
	} else if w > 0 {
		l.runes++
	}

	l.index += w
}

func (l *lexer) emit(c token.Class, v string) {
	if c == token.Ident {
		l.seen[v] = struct{}{}
	}

	l.tokens <- token.New(c, v, l.location())
	l.skip()
}

func (l *lexer) escape(escaped, a action) action {
	l.saved = escaped

	return a
}

func (l *lexer) gather() {
	if len(l.queue) == 0 {
		return
	}

	// Only whitespace, comments and completed tokens are discarded.
	l.bytes = l.bytes[l.first:] + strings.Join(l.queue, "")
	l.index -= l.first
	l.first = 0
	l.queue = nil

	if l.state == nil {
		l.state = skipWhitespace
	}
}

func (l *lexer) location() *loc.T {
	source := l.source

	return &source
}

func (l *lexer) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *lexer) peek() (rune, int) {
	if l.index >= len(l.bytes) {
		return eof, 0
	}

	return utf8.DecodeRuneInString(l.bytes[l.index:])
}

func (l *lexer) resume() action {
	resumed := l.saved
	l.saved = nil

	return resumed
}

func (l *lexer) skip() {
	l.source.Char = l.runes
	l.source.Line = l.line
	l.first = l.index
}

// Lexer states.

func escapeNextCharacter(l *T) action {
	if l.next() == eof {
		l.emit(token.Illegal, l.Text())

		return nil
	}

	return l.resume()
}

func scanIdentifier(l *T) action {
	for {
		r, w := l.peek()
		if !isLetter(r) && !isDigit(r) {
			break
		}

		l.accept(r, w)
	}

	s := l.Text()
	l.emit(token.Keyword(s), s)

	return skipWhitespace
}

func scanInteger(l *T) action {
	for {
		r, w := l.peek()
		if !isDigit(r) {
			break
		}

		l.accept(r, w)
	}

	l.emit(token.Int, l.Text())

	return skipWhitespace
}

func scanOperator(l *T) action {
	r := l.next()

	double := func(second rune, one, two token.Class) {
		if n, w := l.peek(); n == second {
			l.accept(n, w)
			l.emit(two, l.Text())

			return
		}

		l.emit(one, l.Text())
	}

	switch r {
	case '=':
		double('=', token.Assign, token.EQ)
	case '!':
		double('=', token.Bang, token.NotEQ)
	case '<':
		double('=', token.LT, token.LE)
	case '>':
		double('=', token.GT, token.GE)
	case '/':
		if n, w := l.peek(); n == '/' {
			l.accept(n, w)

			return skipComment
		}

		l.emit(token.Slash, l.Text())
	default:
		c, ok := punctuation[r]
		if !ok {
			c = token.Illegal
		}

		l.emit(c, l.Text())
	}

	return skipWhitespace
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.emit(token.Illegal, l.Text())

			return nil
		case '"':
			s := l.Text()

			v, err := adapted.ActualBytes(s[1 : len(s)-1])
			if err != nil {
				l.emit(token.Illegal, s)
			} else {
				l.emit(token.String, v)
			}

			return skipWhitespace
		case '\\':
			return l.escape(scanString, escapeNextCharacter)
		}
	}
}

func skipComment(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.skip()

			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.skip()

			return nil
		case r == '#':
			l.accept(r, w)

			return skipComment
		case r == '"':
			l.accept(r, w)

			return scanString
		case unicode.IsSpace(r):
			l.accept(r, w)
			l.skip()
		case isLetter(r):
			return scanIdentifier
		case isDigit(r):
			return scanInteger
		default:
			return scanOperator
		}
	}
}

// Helper functions.

//nolint:gochecknoglobals
var punctuation = map[rune]token.Class{
	'(': token.LParen,
	')': token.RParen,
	'*': token.Asterisk,
	'+': token.Plus,
	',': token.Comma,
	'-': token.Minus,
	':': token.Colon,
	';': token.Semicolon,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
