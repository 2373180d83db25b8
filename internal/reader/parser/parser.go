// Released under an MIT license. See LICENSE.

// Package parser provides a Pratt parser for the simian language.
//
// The parser does not stop at the first error. Each error is recorded and
// parsing continues with the next token so that a single pass reports as
// many errors as possible.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/simian/internal/common/ast"
	"github.com/michaelmacinnis/simian/internal/common/struct/token"
)

// Errors is the list of errors found in a single parse.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "\n")
}

// MaxDepth is the deepest expression nesting the parser accepts.
const MaxDepth = 1000

// T holds the state of the parser.
type T struct {
	ahead    int             // Lookahead count.
	consumed int             // Tokens consumed so far.
	depth    int             // Current expression nesting.
	errors   Errors          // Errors found so far.
	item     func() *token.T // Function to call to get another token.
	token    *token.T        // Token lookahead.

	incomplete bool // An error was caused by running out of input.
}

type parser = T

// abandon is raised to stop a parse whose error is already recorded.
type abandon struct{}

// Binding powers, lowest to highest.
const (
	lowest = iota
	assign
	or
	and
	equals
	lessGreater
	sum
	product
	prefix
	call
	index
)

type (
	infixFn  func(*T, *token.T, ast.Expression) ast.Expression
	prefixFn func(*T, *token.T) ast.Expression
)

//nolint:gochecknoglobals
var (
	infixes = map[token.Class]infixFn{}

	precedences = map[token.Class]int{
		token.Assign:   assign,
		token.Or:       or,
		token.And:      and,
		token.EQ:       equals,
		token.NotEQ:    equals,
		token.LT:       lessGreater,
		token.LE:       lessGreater,
		token.GT:       lessGreater,
		token.GE:       lessGreater,
		token.Plus:     sum,
		token.Minus:    sum,
		token.Asterisk: product,
		token.Slash:    product,
		token.LParen:   call,
		token.LBracket: index,
	}

	prefixes = map[token.Class]prefixFn{}
)

//nolint:gochecknoinits
func init() {
	for c := range precedences {
		infixes[c] = (*T).binary
	}

	infixes[token.Assign] = (*T).assignment
	infixes[token.LParen] = (*T).call
	infixes[token.LBracket] = (*T).index

	prefixes[token.Bang] = (*T).unary
	prefixes[token.False] = (*T).boolean
	prefixes[token.Function] = (*T).function
	prefixes[token.Ident] = (*T).identifier
	prefixes[token.If] = (*T).conditional
	prefixes[token.Illegal] = (*T).illegal
	prefixes[token.Int] = (*T).integer
	prefixes[token.LBrace] = (*T).dict
	prefixes[token.LBracket] = (*T).array
	prefixes[token.LParen] = (*T).grouping
	prefixes[token.Macro] = (*T).macro
	prefixes[token.Minus] = (*T).unary
	prefixes[token.String] = (*T).text
	prefixes[token.True] = (*T).boolean
	prefixes[token.While] = (*T).loop
}

// New creates a new parser that reads tokens by calling item.
// The item function must return an EOF token when there is no more input.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Errors returns the errors found so far.
func (p *parser) Errors() Errors {
	return p.errors
}

// Incomplete returns true if parsing failed because the input ended early.
func (p *parser) Incomplete() bool {
	return p.incomplete
}

// Parse consumes tokens until EOF. It returns the program and, if any
// errors were found, a non-nil error of type Errors.
func (p *parser) Parse() (program *ast.Program, err error) {
	program = &ast.Program{Statements: []ast.Statement{}}

	defer func() {
		r := recover()
		if r != nil {
			switch r := r.(type) {
			case abandon:
			case error:
				p.errors = append(p.errors, r.Error())
			case string:
				p.errors = append(p.errors, r)
			case fmt.Stringer:
				p.errors = append(p.errors, r.String())
			default:
				p.errors = append(p.errors, "unexpected error")
			}
		}

		if len(p.errors) > 0 {
			err = p.errors
		}
	}()

	for !p.peek().Is(token.EOF) {
		if s := p.progress(p.statement); s != nil {
			program.Statements = append(program.Statements, s)
		}
	}

	return program, nil
}

func (p *parser) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume")
	}

	t := p.token

	p.ahead = 0
	p.consumed++
	p.token = nil

	return t
}

func (p *parser) errorf(t *token.T, format string, args ...interface{}) {
	if t.Is(token.EOF) {
		p.incomplete = true
	}

	s := t.Source()
	if s == nil {
		p.errors = append(p.errors, fmt.Sprintf(format, args...))

		return
	}

	prefix := s.Name + ":" + strconv.Itoa(s.Line) + ": "
	p.errors = append(p.errors, prefix+fmt.Sprintf(format, args...))
}

func (p *parser) expect(c token.Class) bool {
	if p.peek().Is(c) {
		p.consume()

		return true
	}

	p.unexpected(c)

	return false
}

func (p *parser) optional(c token.Class) {
	if p.peek().Is(c) {
		p.consume()
	}
}

func (p *parser) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// progress calls statement and, if it failed without consuming anything,
// discards the offending token so that parsing moves forward.
func (p *parser) progress(statement func() ast.Statement) ast.Statement {
	before := p.consumed

	s := statement()
	if s == nil && p.consumed == before && !p.peek().Is(token.EOF) {
		p.consume()
	}

	return s
}

func (p *parser) unexpected(c token.Class) {
	t := p.peek()
	p.errorf(t, "expected next token to be %s, got %s instead", c, t.Class())
}

// Statements.

func (p *parser) statement() ast.Statement {
	t := p.peek()

	switch t.Class() {
	case token.Semicolon:
		p.consume()

		return nil
	case token.Let:
		return p.let()
	case token.Return:
		return p.ret()
	case token.Function:
		p.consume()

		if p.peek().Is(token.Ident) {
			return p.declaration(t)
		}

		return p.statementFrom(t, p.infix(p.function(t), lowest))
	}

	return p.statementFrom(t, p.expression(lowest))
}

func (p *parser) block() *ast.Block {
	t := p.peek()
	if !p.expect(token.LBrace) {
		return nil
	}

	b := &ast.Block{Token: t, Statements: []ast.Statement{}}

	for !p.peek().Is(token.RBrace) {
		if p.peek().Is(token.EOF) {
			p.unexpected(token.RBrace)

			return nil
		}

		if s := p.progress(p.statement); s != nil {
			b.Statements = append(b.Statements, s)
		}
	}

	p.consume()

	return b
}

func (p *parser) declaration(t *token.T) ast.Statement {
	name := p.identifier(p.consume())

	params, ok := p.parameters()
	if !ok {
		return nil
	}

	body := p.block()
	if body == nil {
		return nil
	}

	p.optional(token.Semicolon)

	return &ast.FunctionStatement{
		Token:      t,
		Name:       name.(*ast.Identifier),
		Parameters: params,
		Body:       body,
	}
}

func (p *parser) let() ast.Statement {
	t := p.consume()

	n := p.peek()
	if !p.expect(token.Ident) {
		return nil
	}

	if !p.expect(token.Assign) {
		return nil
	}

	value := p.expression(lowest)
	if value == nil {
		return nil
	}

	p.optional(token.Semicolon)

	return &ast.Let{
		Token: t,
		Name:  &ast.Identifier{Token: n, Value: n.Value()},
		Value: value,
	}
}

func (p *parser) ret() ast.Statement {
	t := p.consume()

	if p.peek().Is(token.Semicolon, token.RBrace, token.EOF) {
		p.optional(token.Semicolon)

		return &ast.Return{Token: t}
	}

	value := p.expression(lowest)
	if value == nil {
		return nil
	}

	p.optional(token.Semicolon)

	return &ast.Return{Token: t, Value: value}
}

func (p *parser) statementFrom(t *token.T, e ast.Expression) ast.Statement {
	if e == nil {
		return nil
	}

	p.optional(token.Semicolon)

	return &ast.ExpressionStatement{Token: t, Expression: e}
}

// Expressions.

func (p *parser) expression(min int) ast.Expression {
	t := p.peek()

	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxDepth {
		p.errorf(t, "expression nested more than %d levels deep", MaxDepth)
		panic(abandon{})
	}

	f, ok := prefixes[t.Class()]
	if !ok {
		p.errorf(t, "no prefix parse function for %s found", t.Class())

		return nil
	}

	p.consume()

	return p.infix(f(p, t), min)
}

// infix extends left for as long as the next operator binds more tightly than min.
func (p *parser) infix(left ast.Expression, min int) ast.Expression {
	for left != nil {
		t := p.peek()
		if t.Is(token.Semicolon) || precedences[t.Class()] <= min {
			break
		}

		left = infixes[t.Class()](p, p.consume(), left)
	}

	return left
}

// list parses item, separated by commas, until end.
// The opening token must already have been consumed.
func (p *parser) list(end token.Class, item func() bool) bool {
	if p.peek().Is(end) {
		p.consume()

		return true
	}

	for {
		if !item() {
			return false
		}

		if !p.peek().Is(token.Comma) {
			break
		}

		p.consume()
	}

	return p.expect(end)
}

func (p *parser) expressions(end token.Class) ([]ast.Expression, bool) {
	es := []ast.Expression{}

	ok := p.list(end, func() bool {
		e := p.expression(lowest)
		if e == nil {
			return false
		}

		es = append(es, e)

		return true
	})

	return es, ok
}

func (p *parser) parameters() ([]*ast.Identifier, bool) {
	if !p.expect(token.LParen) {
		return nil, false
	}

	ids := []*ast.Identifier{}

	ok := p.list(token.RParen, func() bool {
		t := p.peek()
		if !t.Is(token.Ident) {
			p.unexpected(token.Ident)

			return false
		}

		p.consume()

		ids = append(ids, &ast.Identifier{Token: t, Value: t.Value()})

		return true
	})

	return ids, ok
}

// Infix parse functions.

func (p *parser) assignment(t *token.T, left ast.Expression) ast.Expression {
	value := p.expression(lowest)

	name, ok := left.(*ast.Identifier)
	if !ok {
		p.errorf(t, "expected identifier on left of =, got %s", left)

		return nil
	}

	if value == nil {
		return nil
	}

	return &ast.Assign{Token: t, Name: name, Value: value}
}

func (p *parser) binary(t *token.T, left ast.Expression) ast.Expression {
	right := p.expression(precedences[t.Class()])
	if right == nil {
		return nil
	}

	return &ast.Binary{
		Token:    t,
		Left:     left,
		Operator: t.Value(),
		Right:    right,
	}
}

func (p *parser) call(t *token.T, left ast.Expression) ast.Expression {
	args, ok := p.expressions(token.RParen)
	if !ok {
		return nil
	}

	return &ast.Call{Token: t, Function: left, Arguments: args}
}

func (p *parser) index(t *token.T, left ast.Expression) ast.Expression {
	i := p.expression(lowest)
	if i == nil || !p.expect(token.RBracket) {
		return nil
	}

	return &ast.Index{Token: t, Left: left, Index: i}
}

// Prefix parse functions.

func (p *parser) array(t *token.T) ast.Expression {
	elements, ok := p.expressions(token.RBracket)
	if !ok {
		return nil
	}

	return &ast.ArrayLiteral{Token: t, Elements: elements}
}

func (p *parser) boolean(t *token.T) ast.Expression {
	return &ast.BooleanLiteral{Token: t, Value: t.Is(token.True)}
}

func (p *parser) conditional(t *token.T) ast.Expression {
	condition := p.condition()
	if condition == nil {
		return nil
	}

	consequence := p.block()
	if consequence == nil {
		return nil
	}

	n := &ast.If{Token: t, Condition: condition, Consequence: consequence}

	if p.peek().Is(token.Else) {
		p.consume()

		n.Alternative = p.block()
		if n.Alternative == nil {
			return nil
		}
	}

	return n
}

func (p *parser) condition() ast.Expression {
	if !p.expect(token.LParen) {
		return nil
	}

	c := p.expression(lowest)
	if c == nil || !p.expect(token.RParen) {
		return nil
	}

	return c
}

func (p *parser) dict(t *token.T) ast.Expression {
	pairs := []ast.Pair{}

	ok := p.list(token.RBrace, func() bool {
		k := p.expression(lowest)
		if k == nil || !p.expect(token.Colon) {
			return false
		}

		v := p.expression(lowest)
		if v == nil {
			return false
		}

		pairs = append(pairs, ast.Pair{Key: k, Value: v})

		return true
	})
	if !ok {
		return nil
	}

	return &ast.MapLiteral{Token: t, Pairs: pairs}
}

func (p *parser) function(t *token.T) ast.Expression {
	params, ok := p.parameters()
	if !ok {
		return nil
	}

	body := p.block()
	if body == nil {
		return nil
	}

	return &ast.FunctionLiteral{Token: t, Parameters: params, Body: body}
}

func (p *parser) grouping(t *token.T) ast.Expression {
	var e ast.Expression

	ok := p.list(token.RParen, func() bool {
		if e != nil {
			p.errorf(t, "expected next token to be %s, got %s instead", token.RParen, token.Comma)

			return false
		}

		e = p.expression(lowest)

		return e != nil
	})

	if ok && e == nil {
		p.errorf(t, "no prefix parse function for %s found", token.RParen)
	}

	if !ok {
		return nil
	}

	return e
}

func (p *parser) identifier(t *token.T) ast.Expression {
	return &ast.Identifier{Token: t, Value: t.Value()}
}

func (p *parser) illegal(t *token.T) ast.Expression {
	if strings.HasPrefix(t.Value(), `"`) {
		p.errorf(t, "illegal string %s", t.Value())
	} else {
		p.errorf(t, "illegal token %q", t.Value())
	}

	return nil
}

func (p *parser) integer(t *token.T) ast.Expression {
	i, err := strconv.ParseInt(t.Value(), 10, 64)
	if err != nil {
		p.errorf(t, "could not parse %q as integer", t.Value())

		return nil
	}

	return &ast.IntegerLiteral{Token: t, Value: i}
}

func (p *parser) loop(t *token.T) ast.Expression {
	condition := p.condition()
	if condition == nil {
		return nil
	}

	body := p.block()
	if body == nil {
		return nil
	}

	return &ast.While{Token: t, Condition: condition, Body: body}
}

func (p *parser) macro(t *token.T) ast.Expression {
	params, ok := p.parameters()
	if !ok {
		return nil
	}

	body := p.block()
	if body == nil {
		return nil
	}

	return &ast.MacroLiteral{Token: t, Parameters: params, Body: body}
}

func (p *parser) text(t *token.T) ast.Expression {
	return &ast.StringLiteral{Token: t, Value: t.Value()}
}

func (p *parser) unary(t *token.T) ast.Expression {
	right := p.expression(prefix)
	if right == nil {
		return nil
	}

	return &ast.Unary{Token: t, Operator: t.Value(), Right: right}
}
