// Released under an MIT license. See LICENSE.

// Package eval provides a tree-walking evaluator for simian programs.
//
// Runtime errors are values. Every composite evaluation checks the results
// of its parts and returns the first error or return value unchanged. Conditions the
// language cannot recover from (running out of stack, an interrupt) are
// raised as panics with ErrStackExhausted or ErrInterrupted and are
// expected to be recovered by the caller of Eval.
package eval

import (
	"errors"
	"io"
	"strings"

	"github.com/michaelmacinnis/simian/internal/common/ast"
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/interface/hashable"
	"github.com/michaelmacinnis/simian/internal/common/interface/truth"
	"github.com/michaelmacinnis/simian/internal/common/type/array"
	"github.com/michaelmacinnis/simian/internal/common/type/boolean"
	"github.com/michaelmacinnis/simian/internal/common/type/builtin"
	"github.com/michaelmacinnis/simian/internal/common/type/closure"
	"github.com/michaelmacinnis/simian/internal/common/type/dict"
	"github.com/michaelmacinnis/simian/internal/common/type/env"
	"github.com/michaelmacinnis/simian/internal/common/type/errstr"
	"github.com/michaelmacinnis/simian/internal/common/type/macro"
	"github.com/michaelmacinnis/simian/internal/common/type/null"
	"github.com/michaelmacinnis/simian/internal/common/type/num"
	"github.com/michaelmacinnis/simian/internal/common/type/ret"
	"github.com/michaelmacinnis/simian/internal/common/type/str"
)

// DefaultLimit is the default maximum number of nested function calls.
const DefaultLimit = 10000

//nolint:gochecknoglobals
var (
	ErrInterrupted    = errors.New("interrupted")
	ErrStackExhausted = errors.New("stack exhausted")
)

// T (eval) holds the state of the evaluator.
type T struct {
	Builtins    func(name string) (cell.I, bool) // Consulted when a name is unbound.
	Interrupted func() bool                      // Polled on every call and loop iteration.
	Limit       int                              // Maximum nested function calls.
	Output      io.Writer                        // Where builtins write.

	depth int
}

// New creates a new evaluator that writes output to w and looks up unbound
// names with builtins.
func New(w io.Writer, builtins func(name string) (cell.I, bool)) *T {
	return &T{
		Builtins: builtins,
		Limit:    DefaultLimit,
		Output:   w,
	}
}

// Apply calls the function f with args.
func (e *T) Apply(f cell.I, args []cell.I) cell.I {
	switch f := f.(type) {
	case *closure.T:
		if len(args) != len(f.Parameters) {
			return errstr.Errorf(
				"wrong number of arguments: want=%d, got=%d",
				len(f.Parameters), len(args),
			)
		}

		defer e.leave()
		e.enter()

		scope := env.New(f.Env)
		for i, p := range f.Parameters {
			scope.Set(p.Value, args[i])
		}

		return ret.Unwrap(e.Eval(f.Body, scope))

	case *builtin.T:
		r := f.Call(e.Output, args...)
		if r == nil {
			return null.Null
		}

		return r
	}

	return errstr.Errorf("not a function: %s", kind(f))
}

// Eval reduces the node n in the env scope to a value.
//
//nolint:cyclop,funlen
func (e *T) Eval(n ast.Node, scope *env.T) cell.I {
	switch n := n.(type) {
	case nil:
		return null.Null

	// Statements.
	case *ast.Program:
		return e.program(n, scope)

	case *ast.Block:
		return e.block(n, scope)

	case *ast.ExpressionStatement:
		return e.Eval(n.Expression, scope)

	case *ast.FunctionStatement:
		scope.Set(n.Name.Value, closure.New(n.Parameters, n.Body, scope))

		return null.Null

	case *ast.Let:
		v := e.Eval(n.Value, scope)
		if stops(v) {
			return v
		}

		scope.Set(n.Name.Value, v)

		return null.Null

	case *ast.Return:
		v := e.Eval(n.Value, scope)
		if stops(v) {
			return v
		}

		return ret.New(v)

	// Expressions.
	case *ast.ArrayLiteral:
		elements, failure := e.expressions(n.Elements, scope)
		if failure != nil {
			return failure
		}

		return array.New(elements...)

	case *ast.Assign:
		v := e.Eval(n.Value, scope)
		if stops(v) {
			return v
		}

		scope.Assign(n.Name.Value, v)

		return v

	case *ast.Binary:
		return e.binary(n, scope)

	case *ast.BooleanLiteral:
		return boolean.Bool(n.Value)

	case *ast.Call:
		return e.call(n, scope)

	case *ast.FunctionLiteral:
		return closure.New(n.Parameters, n.Body, scope)

	case *ast.Identifier:
		return e.identifier(n, scope)

	case *ast.If:
		return e.conditional(n, scope)

	case *ast.Index:
		left := e.Eval(n.Left, scope)
		if stops(left) {
			return left
		}

		i := e.Eval(n.Index, scope)
		if stops(i) {
			return i
		}

		return index(left, i)

	case *ast.IntegerLiteral:
		return num.New(n.Value)

	case *ast.MacroLiteral:
		return macro.New(n.Parameters, n.Body, scope)

	case *ast.MapLiteral:
		return e.dict(n, scope)

	case *ast.StringLiteral:
		return str.New(n.Value)

	case *ast.Unary:
		right := e.Eval(n.Right, scope)
		if stops(right) {
			return right
		}

		return unary(n.Operator, right)

	case *ast.While:
		return e.loop(n, scope)
	}

	return errstr.Errorf("cannot evaluate %s", n)
}

func (e *T) binary(n *ast.Binary, scope *env.T) cell.I {
	left := e.Eval(n.Left, scope)
	if stops(left) {
		return left
	}

	switch n.Operator {
	case "and", "or":
		if truth.Value(left) == (n.Operator == "or") {
			return boolean.Bool(truth.Value(left))
		}

		right := e.Eval(n.Right, scope)
		if stops(right) {
			return right
		}

		return boolean.Bool(truth.Value(right))
	}

	right := e.Eval(n.Right, scope)
	if stops(right) {
		return right
	}

	return binary(n.Operator, left, right)
}

func (e *T) block(n *ast.Block, scope *env.T) cell.I {
	var result cell.I = null.Null

	for _, s := range n.Statements {
		result = e.Eval(s, scope)

		switch result.(type) {
		case *errstr.T, *ret.T:
			return result
		}
	}

	return result
}

func (e *T) call(n *ast.Call, scope *env.T) cell.I {
	if id, ok := n.Function.(*ast.Identifier); ok && id.Value == "quote" {
		return e.quote(n, scope)
	}

	f := e.Eval(n.Function, scope)
	if stops(f) {
		return f
	}

	args, failure := e.expressions(n.Arguments, scope)
	if failure != nil {
		return failure
	}

	return e.Apply(f, args)
}

func (e *T) conditional(n *ast.If, scope *env.T) cell.I {
	c := e.Eval(n.Condition, scope)
	if stops(c) {
		return c
	}

	if truth.Value(c) {
		return e.Eval(n.Consequence, scope)
	}

	if n.Alternative != nil {
		return e.Eval(n.Alternative, scope)
	}

	return null.Null
}

func (e *T) dict(n *ast.MapLiteral, scope *env.T) cell.I {
	d := dict.New()

	for _, p := range n.Pairs {
		k := e.Eval(p.Key, scope)
		if stops(k) {
			return k
		}

		if _, ok := hashable.Of(k); !ok {
			return errstr.Errorf("unusable as map key: %s", kind(k))
		}

		v := e.Eval(p.Value, scope)
		if stops(v) {
			return v
		}

		d.Set(k, v)
	}

	return d
}

func (e *T) enter() {
	e.depth++

	if e.depth > e.Limit {
		panic(ErrStackExhausted)
	}

	e.poll()
}

func (e *T) expressions(ns []ast.Expression, scope *env.T) ([]cell.I, cell.I) {
	vs := make([]cell.I, 0, len(ns))

	for _, n := range ns {
		v := e.Eval(n, scope)
		if stops(v) {
			return nil, v
		}

		vs = append(vs, v)
	}

	return vs, nil
}

func (e *T) identifier(n *ast.Identifier, scope *env.T) cell.I {
	if v, ok := scope.Get(n.Value); ok {
		return v
	}

	if e.Builtins != nil {
		if v, ok := e.Builtins(n.Value); ok {
			return v
		}
	}

	return errstr.Errorf("identifier not found: %s", n.Value)
}

func (e *T) leave() {
	e.depth--
}

func (e *T) loop(n *ast.While, scope *env.T) cell.I {
	var result cell.I = null.Null

	for {
		e.poll()

		c := e.Eval(n.Condition, scope)
		if stops(c) {
			return c
		}

		if !truth.Value(c) {
			return result
		}

		result = e.Eval(n.Body, scope)

		switch result.(type) {
		case *errstr.T, *ret.T:
			return result
		}
	}
}

func (e *T) poll() {
	if e.Interrupted != nil && e.Interrupted() {
		panic(ErrInterrupted)
	}
}

func (e *T) program(n *ast.Program, scope *env.T) cell.I {
	var result cell.I = null.Null

	for _, s := range n.Statements {
		result = e.Eval(s, scope)

		switch r := result.(type) {
		case *errstr.T:
			return r
		case *ret.T:
			return r.Value
		}
	}

	return result
}

//nolint:cyclop
func binary(op string, left, right cell.I) cell.I {
	if left.Name() != right.Name() {
		return errstr.Errorf("type mismatch: %s %s %s", kind(left), op, kind(right))
	}

	switch {
	case num.Is(left):
		return integers(op, num.To(left).Int(), num.To(right).Int())

	case str.Is(left):
		l, r := str.To(left).String(), str.To(right).String()

		switch op {
		case "+":
			return str.New(l + r)
		case "==":
			return boolean.Bool(l == r)
		case "!=":
			return boolean.Bool(l != r)
		}

	case op == "==":
		return boolean.Bool(left == right)

	case op == "!=":
		return boolean.Bool(left != right)
	}

	return errstr.Errorf("unknown operator: %s %s %s", kind(left), op, kind(right))
}

func index(left, i cell.I) cell.I {
	switch {
	case array.Is(left):
		if !num.Is(i) {
			return errstr.Errorf("index operator not supported: %s[%s]", kind(left), kind(i))
		}

		if v, ok := array.To(left).At(num.To(i).Int()); ok {
			return v
		}

		return null.Null

	case dict.Is(left):
		if _, ok := hashable.Of(i); !ok {
			return errstr.Errorf("unusable as map key: %s", kind(i))
		}

		if v, ok := dict.To(left).Get(i); ok {
			return v
		}

		return null.Null
	}

	return errstr.Errorf("index operator not supported: %s", kind(left))
}

//nolint:cyclop
func integers(op string, l, r int64) cell.I {
	switch op {
	case "+":
		return num.New(l + r)
	case "-":
		return num.New(l - r)
	case "*":
		return num.New(l * r)
	case "/":
		if r == 0 {
			return errstr.New("division by zero")
		}

		return num.New(l / r)
	case "<":
		return boolean.Bool(l < r)
	case "<=":
		return boolean.Bool(l <= r)
	case ">":
		return boolean.Bool(l > r)
	case ">=":
		return boolean.Bool(l >= r)
	case "==":
		return boolean.Bool(l == r)
	case "!=":
		return boolean.Bool(l != r)
	}

	return errstr.Errorf("unknown operator: INTEGER %s INTEGER", op)
}

// stops returns true for errors and return values. They propagate unchanged
// until a call boundary or the program unwraps them.
func stops(c cell.I) bool {
	switch c.(type) {
	case *errstr.T, *ret.T:
		return true
	}

	return false
}

func kind(c cell.I) string {
	return strings.ToUpper(c.Name())
}

func unary(op string, right cell.I) cell.I {
	switch op {
	case "!":
		switch {
		case boolean.Is(right):
			return boolean.Bool(!boolean.To(right).Bool())
		case num.Is(right):
			return boolean.Bool(num.To(right).Int() == 0)
		}

		return boolean.True
	case "-":
		if num.Is(right) {
			return num.New(-num.To(right).Int())
		}

		return errstr.Errorf("unknown operator: -%s", kind(right))
	}

	return errstr.Errorf("unknown operator: %s%s", op, kind(right))
}
