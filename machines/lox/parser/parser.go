// Package parser builds Lox expression trees with a recursive descent parser.
//
//	program    → expression? EOF
//	expression → or
//	or         → and ( "or" and )*
//	and        → equality ( "and" equality )*
//	equality   → comparison ( ( "!=" | "==" ) comparison )*
//	comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       → factor ( ( "-" | "+" ) factor )*
//	factor     → unary ( ( "/" | "*" ) unary )*
//	unary      → ( "!" | "-" ) unary | primary
//	primary    → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
package parser

import (
	"cmp"
	"errors"
	"slices"

	"github.com/robbyt/loxsh/machines/lox/ast"
	"github.com/robbyt/loxsh/machines/lox/scanner"
)

type Parser struct {
	tokens  []scanner.Token
	current int
}

// Parse scans and parses src. It returns a program only when no lexical or
// syntax error was found; otherwise the program is nil and the errors are
// ordered by source position.
func Parse(src string) (*ast.Program, []error) {
	tokens, errs := scanner.Scan(src)

	p := &Parser{tokens: tokens}
	prog, err := p.program()
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		slices.SortStableFunc(errs, func(a, b error) int {
			pa, pb := errorPos(a), errorPos(b)
			if c := cmp.Compare(pa.Line, pb.Line); c != 0 {
				return c
			}
			return cmp.Compare(pa.Col, pb.Col)
		})
		return nil, errs
	}
	return prog, nil
}

func errorPos(err error) scanner.Pos {
	var serr *scanner.Error
	if errors.As(err, &serr) {
		return serr.Pos
	}
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Token.Pos
	}
	return scanner.Pos{}
}

func (p *Parser) program() (*ast.Program, error) {
	if p.check(scanner.EOF) {
		return &ast.Program{}, nil
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.check(scanner.EOF) {
		return nil, p.errorAt(p.peek(), ErrExpectEnd)
	}
	return &ast.Program{Expr: expr}, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.or()
}

func (p *Parser) or() (ast.Expr, error) {
	return p.logical(p.and, scanner.Or)
}

func (p *Parser) and() (ast.Expr, error) {
	return p.logical(p.equality, scanner.And)
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.binary(p.comparison, scanner.BangEqual, scanner.EqualEqual)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binary(p.term, scanner.Greater, scanner.GreaterEqual, scanner.Less, scanner.LessEqual)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.binary(p.factor, scanner.Minus, scanner.Plus)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.binary(p.unary, scanner.Slash, scanner.Star)
}

// binary parses a left-associative chain of operand separated by kinds.
func (p *Parser) binary(operand func() (ast.Expr, error), kinds ...scanner.Kind) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) logical(operand func() (ast.Expr, error), kind scanner.Kind) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(kind) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.Logical{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(scanner.Bang, scanner.Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case scanner.False:
		p.advance()
		return &ast.Literal{Token: tok, Value: false}, nil
	case scanner.True:
		p.advance()
		return &ast.Literal{Token: tok, Value: true}, nil
	case scanner.Nil:
		p.advance()
		return &ast.Literal{Token: tok, Value: nil}, nil
	case scanner.Number, scanner.String:
		p.advance()
		return &ast.Literal{Token: tok, Value: tok.Literal}, nil
	case scanner.LeftParen:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.match(scanner.RightParen) {
			return nil, p.errorAt(p.peek(), ErrExpectRightParen)
		}
		return &ast.Grouping{Lparen: tok, Expr: expr}, nil
	default:
		return nil, p.errorAt(tok, ErrExpectExpression)
	}
}

func (p *Parser) errorAt(tok scanner.Token, err error) error {
	return &Error{Token: tok, Err: err}
}

func (p *Parser) match(kinds ...scanner.Kind) bool {
	if slices.ContainsFunc(kinds, p.check) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) check(kind scanner.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) advance() scanner.Token {
	tok := p.peek()
	if tok.Kind != scanner.EOF {
		p.current++
	}
	return tok
}

func (p *Parser) peek() scanner.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() scanner.Token {
	return p.tokens[p.current-1]
}
