// Package lox is the default machine: a Lox expression language.
package lox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robbyt/loxsh/engine"
	"github.com/robbyt/loxsh/internal/helpers"
	"github.com/robbyt/loxsh/machines/lox/ast"
	"github.com/robbyt/loxsh/machines/lox/interpreter"
	"github.com/robbyt/loxsh/machines/lox/parser"
)

// Name is the registry name of this machine.
const Name = "lox"

// Machine adapts the Lox parser and interpreter to engine.Machine.
type Machine struct {
	interp *interpreter.Interpreter
	logger *slog.Logger
}

func New(handler slog.Handler) *Machine {
	_, logger := helpers.SetupLogger(handler, "lox", "Machine")
	return &Machine{
		interp: interpreter.New(),
		logger: logger,
	}
}

func (m *Machine) String() string {
	return "lox.Machine"
}

func (m *Machine) Name() string {
	return Name
}

// Parse never returns a tree alongside errors: any lexical or syntax error
// skips evaluation of the whole unit.
func (m *Machine) Parse(ctx context.Context, source string) engine.ParseResult {
	prog, errs := parser.Parse(source)
	if prog == nil {
		m.logger.DebugContext(ctx, "parse failed", "errors", len(errs))
		return engine.ParseResult{Errors: errs}
	}
	return engine.ParseResult{Tree: prog}
}

func (m *Machine) Interpret(ctx context.Context, tree engine.SyntaxTree) (engine.EvaluatorResponse, error) {
	prog, ok := tree.(*ast.Program)
	if !ok {
		return nil, fmt.Errorf("%w: expected *ast.Program, got %T", ErrInvalidTree, tree)
	}

	value, err := m.interp.Interpret(ctx, prog)
	if err != nil {
		return nil, err
	}
	return newEvalResult(value), nil
}
