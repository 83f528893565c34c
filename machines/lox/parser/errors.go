package parser

import (
	"errors"
	"fmt"

	"github.com/robbyt/loxsh/machines/lox/scanner"
)

var (
	ErrExpectExpression = errors.New("Expect expression.")
	ErrExpectRightParen = errors.New("Expect ')' after expression.")
	ErrExpectEnd        = errors.New("Expect end of expression.")
)

// Error is a syntax error at a token.
type Error struct {
	Token scanner.Token
	Err   error
}

func (e *Error) Error() string {
	where := "end"
	if e.Token.Kind != scanner.EOF {
		where = fmt.Sprintf("'%s'", e.Token.Lexeme)
	}
	return fmt.Sprintf("[line %d:%d] Error at %s: %s", e.Token.Pos.Line, e.Token.Pos.Col, where, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
