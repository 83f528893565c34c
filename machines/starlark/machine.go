// Package starlark is an alternate machine backed by go.starlark.net.
package starlark

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"go.starlark.net/resolve"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/robbyt/loxsh/engine"
	"github.com/robbyt/loxsh/internal/helpers"
)

// Name is the registry name of this machine.
const Name = "starlark"

const (
	// sourceName is the filename reported in positions.
	sourceName = "<input>"

	// resultGlobal receives the value of a trailing expression statement.
	resultGlobal = "_"
	// fallbackResultGlobal is read when the program ends with a statement.
	fallbackResultGlobal = "result"
)

// program is the tree handed from Parse to Interpret.
type program struct {
	// stmts are the statements as written, before the trailing expression
	// was rewritten into an assignment.
	stmts []syntax.Stmt
	prog  *starlarkLib.Program
}

// DumpTree returns the top-level statements for -dump-ast.
func (p *program) DumpTree() any {
	return p.stmts
}

// Machine runs each unit as a fresh Starlark module.
type Machine struct {
	out         io.Writer
	fileOpts    *syntax.FileOptions
	predeclared starlarkLib.StringDict
	logHandler  slog.Handler
	logger      *slog.Logger
}

// New creates a Machine. Output of the Starlark print builtin goes to out,
// or stderr when out is nil.
func New(handler slog.Handler, out io.Writer) *Machine {
	handler, logger := helpers.SetupLogger(handler, "starlark", "Machine")
	if out == nil {
		out = os.Stderr
	}

	return &Machine{
		out: out,
		fileOpts: &syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
			Recursion:       true,
		},
		predeclared: standardModules(),
		logHandler:  handler,
		logger:      logger,
	}
}

func (m *Machine) String() string {
	return "starlark.Machine"
}

func (m *Machine) Name() string {
	return Name
}

// Parse parses and resolves the source. The scanner stops at the first
// syntax error; resolution reports every undefined or misused name.
func (m *Machine) Parse(ctx context.Context, source string) engine.ParseResult {
	logger := m.logger.WithGroup("Parse")

	f, err := m.fileOpts.Parse(sourceName, source, 0)
	if err != nil {
		logger.DebugContext(ctx, "syntax error", "error", err)
		return engine.ParseResult{Errors: []error{err}}
	}
	written := slices.Clone(f.Stmts)
	captureLastExpr(f)

	prog, err := starlarkLib.FileProgram(f, m.predeclared.Has)
	if err != nil {
		errs := splitResolveErrors(err)
		logger.DebugContext(ctx, "resolve failed", "errors", len(errs))
		return engine.ParseResult{Errors: errs}
	}

	return engine.ParseResult{Tree: &program{stmts: written, prog: prog}}
}

// Interpret executes the program. Cancelling ctx cancels the Starlark thread.
func (m *Machine) Interpret(ctx context.Context, tree engine.SyntaxTree) (engine.EvaluatorResponse, error) {
	p, ok := tree.(*program)
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: expected compiled program, got %T", ErrInvalidTree, tree)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := m.logger.WithGroup("Interpret")

	thread := &starlarkLib.Thread{
		Name: "loxsh",
		Print: func(_ *starlarkLib.Thread, msg string) {
			if _, err := fmt.Fprintln(m.out, msg); err != nil {
				logger.DebugContext(ctx, "print failed", "error", err)
			}
		},
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	startTime := time.Now()
	globals, err := p.prog.Init(thread, m.predeclared)
	execTime := time.Since(startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecution, err)
	}

	value := globals[resultGlobal]
	if value == nil || value == starlarkLib.None {
		if fallback, ok := globals[fallbackResultGlobal]; ok {
			value = fallback
		}
	}
	logger.DebugContext(ctx, "execution complete", "execTime", execTime)

	return newEvalResult(m.logHandler, value, execTime), nil
}

// captureLastExpr rewrites a trailing expression statement into an
// assignment to resultGlobal, so its value survives module initialization.
func captureLastExpr(f *syntax.File) {
	n := len(f.Stmts)
	if n == 0 {
		return
	}
	stmt, ok := f.Stmts[n-1].(*syntax.ExprStmt)
	if !ok {
		return
	}

	start, _ := stmt.X.Span()
	f.Stmts[n-1] = &syntax.AssignStmt{
		OpPos: start,
		Op:    syntax.EQ,
		LHS:   &syntax.Ident{NamePos: start, Name: resultGlobal},
		RHS:   stmt.X,
	}
}

// splitResolveErrors turns a resolve.ErrorList into one error per entry.
func splitResolveErrors(err error) []error {
	var list resolve.ErrorList
	if !errors.As(err, &list) {
		return []error{err}
	}

	errs := make([]error, 0, len(list))
	for _, e := range list {
		errs = append(errs, e)
	}
	return errs
}
