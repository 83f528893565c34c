// Package risor is an alternate machine backed by the Risor scripting
// language. Risor compiles and runs a unit in one step, so syntax errors are
// reported when the unit is interpreted.
package risor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	risorLib "github.com/deepnoodle-ai/risor/v2"

	"github.com/robbyt/loxsh/engine"
	"github.com/robbyt/loxsh/internal/helpers"
)

// Name is the registry name of this machine.
const Name = "risor"

// program is the tree handed from Parse to Interpret.
type program struct {
	source string
}

// DumpTree returns the source for -dump-ast.
func (p *program) DumpTree() any {
	return p.source
}

// Machine evaluates each unit with a fresh Risor environment.
type Machine struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Machine.
func New(handler slog.Handler) *Machine {
	handler, logger := helpers.SetupLogger(handler, "risor", "Machine")
	return &Machine{
		logHandler: handler,
		logger:     logger,
	}
}

func (m *Machine) String() string {
	return "risor.Machine"
}

func (m *Machine) Name() string {
	return Name
}

// Parse always yields a tree.
func (m *Machine) Parse(ctx context.Context, source string) engine.ParseResult {
	m.logger.DebugContext(ctx, "source accepted", "bytes", len(source))
	return engine.ParseResult{Tree: &program{source: source}}
}

// Interpret compiles and runs the program.
func (m *Machine) Interpret(ctx context.Context, tree engine.SyntaxTree) (engine.EvaluatorResponse, error) {
	p, ok := tree.(*program)
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: expected program, got %T", ErrInvalidTree, tree)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := m.logger.WithGroup("Interpret")

	startTime := time.Now()
	result, err := risorLib.Eval(ctx, p.source)
	execTime := time.Since(startTime)
	if err != nil {
		logger.DebugContext(ctx, "execution failed", "error", err, "duration", execTime)
		return nil, fmt.Errorf("%w: %w", ErrExecution, err)
	}

	logger.DebugContext(ctx, "execution complete", "duration", execTime)
	return newEvalResult(m.logHandler, result, execTime), nil
}
