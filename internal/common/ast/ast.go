// Released under an MIT license. See LICENSE.

// Package ast defines the syntax tree produced by the parser.
//
// Every node renders back to source text. Binary and unary expressions are
// fully parenthesized so that the rendered text of a tree reparses to the
// same tree.
package ast

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/simian/internal/common/struct/loc"
	"github.com/michaelmacinnis/simian/internal/common/struct/token"
)

// Node is the interface satisfied by every syntax tree node.
type Node interface {
	Source() *loc.T
	String() string
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expression()
}

// Statement is a node that can appear in a program or block.
type Statement interface {
	Node
	statement()
}

// Program is the root of every syntax tree.
type Program struct {
	Statements []Statement
}

// Source returns the location of the first statement, if there is one.
func (p *Program) Source() *loc.T {
	if len(p.Statements) == 0 {
		return nil
	}

	return p.Statements[0].Source()
}

func (p *Program) String() string {
	s := make([]string, len(p.Statements))
	for i, stmt := range p.Statements {
		s[i] = stmt.String()
	}

	return strings.Join(s, "\n")
}

// Expressions.

// ArrayLiteral is a bracketed list of elements.
type ArrayLiteral struct {
	Token    *token.T
	Elements []Expression
}

// Assign is the expression name = value.
type Assign struct {
	Token *token.T
	Name  *Identifier
	Value Expression
}

// Binary is an infix operation.
type Binary struct {
	Token    *token.T
	Left     Expression
	Operator string
	Right    Expression
}

// BooleanLiteral is true or false.
type BooleanLiteral struct {
	Token *token.T
	Value bool
}

// Call applies Function to Arguments.
type Call struct {
	Token     *token.T
	Function  Expression
	Arguments []Expression
}

// FunctionLiteral is an anonymous function.
type FunctionLiteral struct {
	Token      *token.T
	Parameters []*Identifier
	Body       *Block
}

// Identifier is a name.
type Identifier struct {
	Token *token.T
	Value string
}

// If is a conditional. Alternative may be nil.
type If struct {
	Token       *token.T
	Condition   Expression
	Consequence *Block
	Alternative *Block
}

// Index is the expression left[index].
type Index struct {
	Token *token.T
	Left  Expression
	Index Expression
}

// IntegerLiteral is a decimal integer.
type IntegerLiteral struct {
	Token *token.T
	Value int64
}

// MacroLiteral has the same shape as a function literal.
type MacroLiteral struct {
	Token      *token.T
	Parameters []*Identifier
	Body       *Block
}

// MapLiteral is a braced list of key/value pairs.
type MapLiteral struct {
	Token *token.T
	Pairs []Pair
}

// Pair is a single map literal entry.
type Pair struct {
	Key   Expression
	Value Expression
}

// StringLiteral holds the decoded text of a string.
type StringLiteral struct {
	Token *token.T
	Value string
}

// Unary is a prefix operation.
type Unary struct {
	Token    *token.T
	Operator string
	Right    Expression
}

// While repeats Body as long as Condition is true.
type While struct {
	Token     *token.T
	Condition Expression
	Body      *Block
}

// Statements.

// Block is a braced sequence of statements.
type Block struct {
	Token      *token.T
	Statements []Statement
}

// ExpressionStatement wraps an expression used as a statement.
type ExpressionStatement struct {
	Token      *token.T
	Expression Expression
}

// FunctionStatement is the declaration fn name(parameters) { body }.
type FunctionStatement struct {
	Token      *token.T
	Name       *Identifier
	Parameters []*Identifier
	Body       *Block
}

// Let binds Name to Value in the current frame.
type Let struct {
	Token *token.T
	Name  *Identifier
	Value Expression
}

// Return exits the enclosing function. Value may be nil.
type Return struct {
	Token *token.T
	Value Expression
}

func (n *ArrayLiteral) String() string {
	return "[" + expressions(n.Elements) + "]"
}

func (n *Assign) String() string {
	return "(" + str(n.Name) + " = " + str(n.Value) + ")"
}

func (n *Binary) String() string {
	return "(" + str(n.Left) + " " + n.Operator + " " + str(n.Right) + ")"
}

func (n *Block) String() string {
	var b strings.Builder

	b.WriteString("{\n")

	for _, s := range n.Statements {
		b.WriteString(s.String())
		b.WriteString("\n")
	}

	b.WriteString("}")

	return b.String()
}

func (n *BooleanLiteral) String() string {
	return strconv.FormatBool(n.Value)
}

func (n *Call) String() string {
	return str(n.Function) + "(" + expressions(n.Arguments) + ")"
}

func (n *ExpressionStatement) String() string {
	return str(n.Expression) + ";"
}

func (n *FunctionLiteral) String() string {
	return "fn(" + identifiers(n.Parameters) + ") " + str(n.Body)
}

func (n *FunctionStatement) String() string {
	return "fn " + str(n.Name) + "(" + identifiers(n.Parameters) + ") " + str(n.Body)
}

func (n *Identifier) String() string {
	return n.Value
}

func (n *If) String() string {
	s := "if (" + str(n.Condition) + ") " + str(n.Consequence)
	if n.Alternative != nil {
		s += " else " + n.Alternative.String()
	}

	return s
}

func (n *Index) String() string {
	return "(" + str(n.Left) + "[" + str(n.Index) + "])"
}

func (n *IntegerLiteral) String() string {
	return strconv.FormatInt(n.Value, 10)
}

func (n *Let) String() string {
	return "let " + str(n.Name) + " = " + str(n.Value) + ";"
}

func (n *MacroLiteral) String() string {
	return "macro(" + identifiers(n.Parameters) + ") " + str(n.Body)
}

func (n *MapLiteral) String() string {
	s := make([]string, len(n.Pairs))
	for i, p := range n.Pairs {
		s[i] = str(p.Key) + ": " + str(p.Value)
	}

	return "{" + strings.Join(s, ", ") + "}"
}

func (n *Return) String() string {
	if n.Value == nil {
		return "return;"
	}

	return "return " + n.Value.String() + ";"
}

func (n *StringLiteral) String() string {
	return strconv.Quote(n.Value)
}

func (n *Unary) String() string {
	return "(" + n.Operator + str(n.Right) + ")"
}

func (n *While) String() string {
	return "while (" + str(n.Condition) + ") " + str(n.Body)
}

func (n *ArrayLiteral) Source() *loc.T        { return source(n.Token) }
func (n *Assign) Source() *loc.T              { return source(n.Token) }
func (n *Binary) Source() *loc.T              { return source(n.Token) }
func (n *Block) Source() *loc.T               { return source(n.Token) }
func (n *BooleanLiteral) Source() *loc.T      { return source(n.Token) }
func (n *Call) Source() *loc.T                { return source(n.Token) }
func (n *ExpressionStatement) Source() *loc.T { return source(n.Token) }
func (n *FunctionLiteral) Source() *loc.T     { return source(n.Token) }
func (n *FunctionStatement) Source() *loc.T   { return source(n.Token) }
func (n *Identifier) Source() *loc.T          { return source(n.Token) }
func (n *If) Source() *loc.T                  { return source(n.Token) }
func (n *Index) Source() *loc.T               { return source(n.Token) }
func (n *IntegerLiteral) Source() *loc.T      { return source(n.Token) }
func (n *Let) Source() *loc.T                 { return source(n.Token) }
func (n *MacroLiteral) Source() *loc.T        { return source(n.Token) }
func (n *MapLiteral) Source() *loc.T          { return source(n.Token) }
func (n *Return) Source() *loc.T              { return source(n.Token) }
func (n *StringLiteral) Source() *loc.T       { return source(n.Token) }
func (n *Unary) Source() *loc.T               { return source(n.Token) }
func (n *While) Source() *loc.T               { return source(n.Token) }

func (*ArrayLiteral) expression()    {}
func (*Assign) expression()          {}
func (*Binary) expression()          {}
func (*BooleanLiteral) expression()  {}
func (*Call) expression()            {}
func (*FunctionLiteral) expression() {}
func (*Identifier) expression()      {}
func (*If) expression()              {}
func (*Index) expression()           {}
func (*IntegerLiteral) expression()  {}
func (*MacroLiteral) expression()    {}
func (*MapLiteral) expression()      {}
func (*StringLiteral) expression()   {}
func (*Unary) expression()           {}
func (*While) expression()           {}

func (*Block) statement()               {}
func (*ExpressionStatement) statement() {}
func (*FunctionStatement) statement()   {}
func (*Let) statement()                 {}
func (*Return) statement()              {}

func expressions(es []Expression) string {
	s := make([]string, len(es))
	for i, e := range es {
		s[i] = str(e)
	}

	return strings.Join(s, ", ")
}

func identifiers(ids []*Identifier) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = id.Value
	}

	return strings.Join(s, ", ")
}

func source(t *token.T) *loc.T {
	if t == nil {
		return nil
	}

	return t.Source()
}

// str renders n, including nodes removed by a rewrite.
func str(n Node) string {
	switch n := n.(type) {
	case nil:
		return ""
	case *Block:
		if n == nil {
			return ""
		}
	case *Identifier:
		if n == nil {
			return ""
		}
	}

	return n.String()
}

//nolint:deadcode,unused
func implements() {
	var _ Expression = &ArrayLiteral{}
	var _ Expression = &Assign{}
	var _ Expression = &Binary{}
	var _ Expression = &BooleanLiteral{}
	var _ Expression = &Call{}
	var _ Expression = &FunctionLiteral{}
	var _ Expression = &Identifier{}
	var _ Expression = &If{}
	var _ Expression = &Index{}
	var _ Expression = &IntegerLiteral{}
	var _ Expression = &MacroLiteral{}
	var _ Expression = &MapLiteral{}
	var _ Expression = &StringLiteral{}
	var _ Expression = &Unary{}
	var _ Expression = &While{}

	var _ Statement = &Block{}
	var _ Statement = &ExpressionStatement{}
	var _ Statement = &FunctionStatement{}
	var _ Statement = &Let{}
	var _ Statement = &Return{}

	var _ Node = &Program{}
}
