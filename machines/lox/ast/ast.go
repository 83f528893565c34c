// Package ast defines the Lox expression syntax tree.
package ast

import (
	"strconv"
	"strings"

	"github.com/robbyt/loxsh/machines/lox/scanner"
)

// Expr is any expression node.
type Expr interface {
	// Pos is the position of the token that identifies the node.
	Pos() scanner.Pos
	exprNode()
}

// Program is the root of one parsed unit. Expr is nil for an empty program.
type Program struct {
	Expr Expr
}

type (
	// Literal is a number, string, boolean or nil.
	Literal struct {
		Token scanner.Token
		Value any
	}

	// Grouping is a parenthesized expression.
	Grouping struct {
		Lparen scanner.Token
		Expr   Expr
	}

	// Unary is a prefix operator application.
	Unary struct {
		Op    scanner.Token
		Right Expr
	}

	// Binary is an arithmetic, comparison or equality operation.
	Binary struct {
		Left  Expr
		Op    scanner.Token
		Right Expr
	}

	// Logical is a short-circuiting `and` / `or`.
	Logical struct {
		Left  Expr
		Op    scanner.Token
		Right Expr
	}
)

func (e *Literal) Pos() scanner.Pos  { return e.Token.Pos }
func (e *Grouping) Pos() scanner.Pos { return e.Lparen.Pos }
func (e *Unary) Pos() scanner.Pos    { return e.Op.Pos }
func (e *Binary) Pos() scanner.Pos   { return e.Op.Pos }
func (e *Logical) Pos() scanner.Pos  { return e.Op.Pos }

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}

// String prints the program in parenthesized prefix form, e.g. "(+ 1 2)".
func (p *Program) String() string {
	if p.Expr == nil {
		return ""
	}
	var b strings.Builder
	write(&b, p.Expr)
	return b.String()
}

func write(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *Literal:
		switch v := e.Value.(type) {
		case nil:
			b.WriteString("nil")
		case float64:
			b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		case string:
			b.WriteString(strconv.Quote(v))
		case bool:
			b.WriteString(strconv.FormatBool(v))
		}
	case *Grouping:
		b.WriteString("(group ")
		write(b, e.Expr)
		b.WriteByte(')')
	case *Unary:
		b.WriteString("(" + e.Op.Lexeme + " ")
		write(b, e.Right)
		b.WriteByte(')')
	case *Binary:
		parenthesize(b, e.Op.Lexeme, e.Left, e.Right)
	case *Logical:
		parenthesize(b, e.Op.Lexeme, e.Left, e.Right)
	}
}

func parenthesize(b *strings.Builder, op string, left, right Expr) {
	b.WriteString("(" + op + " ")
	write(b, left)
	b.WriteByte(' ')
	write(b, right)
	b.WriteByte(')')
}
