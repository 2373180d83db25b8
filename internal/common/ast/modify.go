// Released under an MIT license. See LICENSE.

package ast

// Modifier rewrites a single node. Returning nil removes the node.
type Modifier func(Node) Node

// Modify walks the tree rooted at n bottom-up, rewriting children before
// offering their parent to f. The tree is rewritten in place; callers that
// must preserve the original should Copy it first.
//
// Removed statements, arguments, elements and pairs are dropped from their
// lists. An expression statement whose expression was removed is removed.
//
//nolint:cyclop,funlen
func Modify(n Node, f Modifier) Node {
	switch n := n.(type) {
	case nil:
		return nil

	case *Program:
		n.Statements = statements(n.Statements, f)

	case *Block:
		n.Statements = statements(n.Statements, f)

	case *ExpressionStatement:
		n.Expression = expression(n.Expression, f)
		if n.Expression == nil {
			return nil
		}

	case *FunctionStatement:
		n.Body = block(n.Body, f)

	case *Let:
		n.Value = expression(n.Value, f)

	case *Return:
		n.Value = expression(n.Value, f)

	case *ArrayLiteral:
		n.Elements = list(n.Elements, f)

	case *Assign:
		n.Value = expression(n.Value, f)

	case *Binary:
		n.Left = expression(n.Left, f)
		n.Right = expression(n.Right, f)

	case *Call:
		n.Function = expression(n.Function, f)
		n.Arguments = list(n.Arguments, f)

	case *FunctionLiteral:
		n.Body = block(n.Body, f)

	case *If:
		n.Condition = expression(n.Condition, f)
		n.Consequence = block(n.Consequence, f)
		n.Alternative = block(n.Alternative, f)

	case *Index:
		n.Left = expression(n.Left, f)
		n.Index = expression(n.Index, f)

	case *MacroLiteral:
		n.Body = block(n.Body, f)

	case *MapLiteral:
		pairs := make([]Pair, 0, len(n.Pairs))

		for _, p := range n.Pairs {
			k := expression(p.Key, f)
			v := expression(p.Value, f)

			if k != nil && v != nil {
				pairs = append(pairs, Pair{Key: k, Value: v})
			}
		}

		n.Pairs = pairs

	case *Unary:
		n.Right = expression(n.Right, f)

	case *While:
		n.Condition = expression(n.Condition, f)
		n.Body = block(n.Body, f)
	}

	return f(n)
}

func block(b *Block, f Modifier) *Block {
	if b == nil {
		return nil
	}

	if m, ok := Modify(b, f).(*Block); ok {
		return m
	}

	return b
}

func expression(e Expression, f Modifier) Expression {
	if e == nil {
		return nil
	}

	m, _ := Modify(e, f).(Expression)

	return m
}

func list(es []Expression, f Modifier) []Expression {
	if es == nil {
		return nil
	}

	r := make([]Expression, 0, len(es))

	for _, e := range es {
		if m := expression(e, f); m != nil {
			r = append(r, m)
		}
	}

	return r
}

func statements(ss []Statement, f Modifier) []Statement {
	if ss == nil {
		return nil
	}

	r := make([]Statement, 0, len(ss))

	for _, s := range ss {
		if s == nil {
			continue
		}

		if m, ok := Modify(s, f).(Statement); ok && m != nil {
			r = append(r, m)
		}
	}

	return r
}
