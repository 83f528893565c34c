package interpreter

import (
	"errors"
	"fmt"

	"github.com/robbyt/loxsh/machines/lox/scanner"
)

var (
	ErrOperandNumber   = errors.New("Operand must be a number.")
	ErrOperandsNumbers = errors.New("Operands must be numbers.")
	ErrOperandsPlus    = errors.New("Operands must be two numbers or two strings.")
	ErrDivisionByZero  = errors.New("Division by zero.")
	ErrUnknownNode     = errors.New("unknown syntax node")
)

// RuntimeError is an evaluation failure at the operator that caused it.
type RuntimeError struct {
	Token scanner.Token
	Err   error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d:%d] Runtime error at '%s': %s",
		e.Token.Pos.Line, e.Token.Pos.Col, e.Token.Lexeme, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
