// Released under an MIT license. See LICENSE.

package ast

// Copy returns a deep copy of the tree rooted at n. Tokens are immutable
// and are shared between the original and the copy.
//
//nolint:cyclop,funlen
func Copy(n Node) Node {
	switch n := n.(type) {
	case nil:
		return nil

	case *Program:
		return &Program{Statements: copyStatements(n.Statements)}

	case *Block:
		return copyBlock(n)

	case *ExpressionStatement:
		return &ExpressionStatement{Token: n.Token, Expression: copyExpression(n.Expression)}

	case *FunctionStatement:
		return &FunctionStatement{
			Token:      n.Token,
			Name:       copyIdentifier(n.Name),
			Parameters: copyIdentifiers(n.Parameters),
			Body:       copyBlock(n.Body),
		}

	case *Let:
		return &Let{Token: n.Token, Name: copyIdentifier(n.Name), Value: copyExpression(n.Value)}

	case *Return:
		return &Return{Token: n.Token, Value: copyExpression(n.Value)}

	case *ArrayLiteral:
		return &ArrayLiteral{Token: n.Token, Elements: copyExpressions(n.Elements)}

	case *Assign:
		return &Assign{Token: n.Token, Name: copyIdentifier(n.Name), Value: copyExpression(n.Value)}

	case *Binary:
		return &Binary{
			Token:    n.Token,
			Left:     copyExpression(n.Left),
			Operator: n.Operator,
			Right:    copyExpression(n.Right),
		}

	case *BooleanLiteral:
		c := *n

		return &c

	case *Call:
		return &Call{
			Token:     n.Token,
			Function:  copyExpression(n.Function),
			Arguments: copyExpressions(n.Arguments),
		}

	case *FunctionLiteral:
		return &FunctionLiteral{
			Token:      n.Token,
			Parameters: copyIdentifiers(n.Parameters),
			Body:       copyBlock(n.Body),
		}

	case *Identifier:
		return copyIdentifier(n)

	case *If:
		return &If{
			Token:       n.Token,
			Condition:   copyExpression(n.Condition),
			Consequence: copyBlock(n.Consequence),
			Alternative: copyBlock(n.Alternative),
		}

	case *Index:
		return &Index{Token: n.Token, Left: copyExpression(n.Left), Index: copyExpression(n.Index)}

	case *IntegerLiteral:
		c := *n

		return &c

	case *MacroLiteral:
		return &MacroLiteral{
			Token:      n.Token,
			Parameters: copyIdentifiers(n.Parameters),
			Body:       copyBlock(n.Body),
		}

	case *MapLiteral:
		var pairs []Pair
		if n.Pairs != nil {
			pairs = make([]Pair, len(n.Pairs))
			for i, p := range n.Pairs {
				pairs[i] = Pair{Key: copyExpression(p.Key), Value: copyExpression(p.Value)}
			}
		}

		return &MapLiteral{Token: n.Token, Pairs: pairs}

	case *StringLiteral:
		c := *n

		return &c

	case *Unary:
		return &Unary{Token: n.Token, Operator: n.Operator, Right: copyExpression(n.Right)}

	case *While:
		return &While{Token: n.Token, Condition: copyExpression(n.Condition), Body: copyBlock(n.Body)}
	}

	panic("cannot copy " + n.String())
}

func copyBlock(b *Block) *Block {
	if b == nil {
		return nil
	}

	return &Block{Token: b.Token, Statements: copyStatements(b.Statements)}
}

func copyExpression(e Expression) Expression {
	if e == nil {
		return nil
	}

	c, _ := Copy(e).(Expression)

	return c
}

func copyExpressions(es []Expression) []Expression {
	if es == nil {
		return nil
	}

	c := make([]Expression, len(es))
	for i, e := range es {
		c[i] = copyExpression(e)
	}

	return c
}

func copyIdentifier(id *Identifier) *Identifier {
	if id == nil {
		return nil
	}

	c := *id

	return &c
}

func copyIdentifiers(ids []*Identifier) []*Identifier {
	if ids == nil {
		return nil
	}

	c := make([]*Identifier, len(ids))
	for i, id := range ids {
		c[i] = copyIdentifier(id)
	}

	return c
}

func copyStatements(ss []Statement) []Statement {
	if ss == nil {
		return nil
	}

	c := make([]Statement, len(ss))
	for i, s := range ss {
		c[i], _ = Copy(s).(Statement)
	}

	return c
}
