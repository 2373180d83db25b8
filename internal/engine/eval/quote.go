// Released under an MIT license. See LICENSE.

package eval

import (
	"strconv"

	"github.com/michaelmacinnis/simian/internal/common/ast"
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/struct/token"
	"github.com/michaelmacinnis/simian/internal/common/type/boolean"
	"github.com/michaelmacinnis/simian/internal/common/type/env"
	"github.com/michaelmacinnis/simian/internal/common/type/errstr"
	"github.com/michaelmacinnis/simian/internal/common/type/num"
	"github.com/michaelmacinnis/simian/internal/common/type/quote"
	"github.com/michaelmacinnis/simian/internal/common/type/str"
)

// quote returns its unevaluated argument with every unquote(x) replaced by
// the syntax for the value of x. The argument is copied first so the
// program being evaluated is never rewritten.
func (e *T) quote(n *ast.Call, scope *env.T) cell.I {
	if len(n.Arguments) != 1 {
		return errstr.Errorf("wrong number of arguments: want=1, got=%d", len(n.Arguments))
	}

	var failure cell.I

	node := ast.Modify(ast.Copy(n.Arguments[0]), func(n ast.Node) ast.Node {
		c, ok := n.(*ast.Call)
		if !ok || failure != nil || !unquoted(c) {
			return n
		}

		v := e.Eval(c.Arguments[0], scope)
		if stops(v) {
			failure = v

			return n
		}

		return syntax(c.Token, v)
	})

	if failure != nil {
		return failure
	}

	return quote.New(node)
}

// syntax converts v back to a node. Values with no literal syntax yield nil.
func syntax(t *token.T, v cell.I) ast.Node {
	switch {
	case num.Is(v):
		i := num.To(v).Int()

		return &ast.IntegerLiteral{
			Token: token.New(token.Int, strconv.FormatInt(i, 10), t.Source()),
			Value: i,
		}

	case boolean.Is(v):
		b := boolean.To(v).Bool()

		c := token.False
		if b {
			c = token.True
		}

		return &ast.BooleanLiteral{Token: token.New(c, c.String(), t.Source()), Value: b}

	case str.Is(v):
		s := str.To(v).String()

		return &ast.StringLiteral{Token: token.New(token.String, s, t.Source()), Value: s}

	case quote.Is(v):
		return ast.Copy(quote.To(v).Node)
	}

	return nil
}

func unquoted(c *ast.Call) bool {
	id, ok := c.Function.(*ast.Identifier)

	return ok && id.Value == "unquote" && len(c.Arguments) == 1
}
