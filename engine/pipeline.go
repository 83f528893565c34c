package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/robbyt/loxsh/execution/script"
	"github.com/robbyt/loxsh/execution/script/loader"
	"github.com/robbyt/loxsh/internal/helpers"
)

// treeDumper prints syntax trees without pointer addresses so dumps are stable.
var treeDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Pipeline drives parse-then-evaluate for one unit of source text at a time
// and routes every outcome to its Reporter. It keeps no state between runs.
type Pipeline struct {
	machine  Machine
	selector MachineSelector
	reporter *Reporter
	dumpAST  bool

	logHandler slog.Handler
	logger     *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline) error

// WithMachineSelector routes files to a machine chosen by their path.
func WithMachineSelector(selector MachineSelector) PipelineOption {
	return func(p *Pipeline) error {
		p.selector = selector
		return nil
	}
}

// WithDumpAST writes each syntax tree to the diagnostic stream before it is interpreted.
func WithDumpAST(enabled bool) PipelineOption {
	return func(p *Pipeline) error {
		p.dumpAST = enabled
		return nil
	}
}

// NewPipeline creates a Pipeline evaluating source with machine by default.
func NewPipeline(handler slog.Handler, machine Machine, reporter *Reporter, opts ...PipelineOption) (*Pipeline, error) {
	if machine == nil {
		return nil, ErrMachineNil
	}
	if reporter == nil {
		return nil, ErrReporterNil
	}

	handler, logger := helpers.SetupLogger(handler, "engine", "Pipeline")
	p := &Pipeline{
		machine:    machine,
		reporter:   reporter,
		logHandler: handler,
		logger:     logger,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("error applying pipeline option: %w", err)
		}
	}
	return p, nil
}

func (p *Pipeline) String() string {
	return fmt.Sprintf("engine.Pipeline{Machine: %s}", p.machine.Name())
}

// Machine returns the default machine.
func (p *Pipeline) Machine() Machine {
	return p.machine
}

// Reporter returns the reporter outcomes are written to.
func (p *Pipeline) Reporter() *Reporter {
	return p.reporter
}

// Evaluate runs source text, such as one interactive line, through the default machine.
func (p *Pipeline) Evaluate(ctx context.Context, source string) error {
	l, err := loader.NewFromString(source)
	if err != nil {
		return err
	}
	return p.Run(ctx, l)
}

// RunFile reads the whole file at path and evaluates it. A file that cannot
// be read is returned as *loader.IoError; parse and runtime errors are
// reported, not returned.
func (p *Pipeline) RunFile(ctx context.Context, path string) error {
	l, err := loader.NewFromDisk(path)
	if err != nil {
		return err
	}

	machine := p.machine
	if p.selector != nil {
		if m := p.selector.ForPath(path); m != nil {
			p.logger.DebugContext(ctx, "machine selected by path", "path", path, "machine", m.Name())
			machine = m
		}
	}
	return p.run(ctx, machine, l)
}

// Run evaluates the source behind l with the default machine.
func (p *Pipeline) Run(ctx context.Context, l loader.Loader) error {
	return p.run(ctx, p.machine, l)
}

func (p *Pipeline) run(ctx context.Context, machine Machine, l loader.Loader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	unit, err := script.NewExecutableUnit(p.logHandler, l)
	if err != nil {
		return err
	}

	logger := unit.Logger().With("machine", machine.Name(), "source", unit.GetLoader())

	result := machine.Parse(ctx, unit.GetSource())
	for _, perr := range result.Errors {
		p.reporter.ParseError(perr)
	}

	if !result.HasTree() {
		logger.DebugContext(ctx, "no syntax tree, skipping evaluation", "parseErrors", len(result.Errors))
		return nil
	}

	if p.dumpAST {
		treeDumper.Fdump(p.reporter.Writer(), dumpView(result.Tree))
	}

	value, err := machine.Interpret(ctx, result.Tree)
	if err != nil {
		p.reporter.RuntimeError(err)
		logger.DebugContext(ctx, "evaluation failed", "error", err, "duration", time.Since(unit.GetCreatedAt()))
		return nil
	}

	p.reporter.Value(value)
	logger.DebugContext(ctx, "evaluation complete",
		"type", value.Type(), "parseErrors", len(result.Errors), "duration", time.Since(unit.GetCreatedAt()))
	return nil
}

func dumpView(tree SyntaxTree) any {
	if d, ok := tree.(DumpableTree); ok {
		return d.DumpTree()
	}
	return tree
}
