// Package interpreter evaluates Lox expression trees.
package interpreter

import (
	"context"
	"fmt"

	"github.com/robbyt/loxsh/machines/lox/ast"
	"github.com/robbyt/loxsh/machines/lox/scanner"
)

// Interpreter is stateless; every program is evaluated on its own.
type Interpreter struct{}

func New() *Interpreter {
	return &Interpreter{}
}

// Interpret evaluates prog. An empty program evaluates to nil.
func (in *Interpreter) Interpret(ctx context.Context, prog *ast.Program) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if prog == nil || prog.Expr == nil {
		return nil, nil
	}
	return in.eval(prog.Expr)
}

func (in *Interpreter) eval(e ast.Expr) (any, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return in.eval(e.Expr)
	case *ast.Unary:
		return in.unary(e)
	case *ast.Binary:
		return in.binary(e)
	case *ast.Logical:
		return in.logical(e)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownNode, e)
	}
}

func (in *Interpreter) unary(e *ast.Unary) (any, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case scanner.Bang:
		return !isTruthy(right), nil
	case scanner.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, &RuntimeError{Token: e.Op, Err: ErrOperandNumber}
		}
		return -n, nil
	}
	return nil, fmt.Errorf("%w: unary %s", ErrUnknownNode, e.Op.Kind)
}

func (in *Interpreter) logical(e *ast.Logical) (any, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == scanner.Or {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}
	return in.eval(e.Right)
}

func (in *Interpreter) binary(e *ast.Binary) (any, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case scanner.EqualEqual:
		return isEqual(left, right), nil
	case scanner.BangEqual:
		return !isEqual(left, right), nil
	case scanner.Plus:
		switch l := left.(type) {
		case float64:
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		case string:
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, &RuntimeError{Token: e.Op, Err: ErrOperandsPlus}
	}

	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return nil, &RuntimeError{Token: e.Op, Err: ErrOperandsNumbers}
	}

	switch e.Op.Kind {
	case scanner.Minus:
		return l - r, nil
	case scanner.Star:
		return l * r, nil
	case scanner.Slash:
		if r == 0 {
			return nil, &RuntimeError{Token: e.Op, Err: ErrDivisionByZero}
		}
		return l / r, nil
	case scanner.Greater:
		return l > r, nil
	case scanner.GreaterEqual:
		return l >= r, nil
	case scanner.Less:
		return l < r, nil
	case scanner.LessEqual:
		return l <= r, nil
	}
	return nil, fmt.Errorf("%w: binary %s", ErrUnknownNode, e.Op.Kind)
}
