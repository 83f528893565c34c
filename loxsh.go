// Package loxsh assembles the machines, the evaluation pipeline and the
// interactive shell from an options.Config.
package loxsh

import (
	"context"
	"errors"
	"fmt"

	"github.com/robbyt/loxsh/engine"
	"github.com/robbyt/loxsh/machines"
	"github.com/robbyt/loxsh/options"
	"github.com/robbyt/loxsh/shell"
)

// ErrConfigNil is returned by FromConfig when no config is given.
var ErrConfigNil = errors.New("config is nil")

// Runtime is everything one session needs. Outcomes of every evaluation go
// to Reporter.
type Runtime struct {
	Config   *options.Config
	Registry *machines.Registry
	Reporter *engine.Reporter
	Pipeline *engine.Pipeline
}

// New builds a Runtime from the defaults and opts.
func New(opts ...options.Option) (*Runtime, error) {
	cfg, err := options.New(opts...)
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg)
}

// FromConfig builds a Runtime from cfg, filling unset fields with defaults. An
// unknown language is reported as machines.ErrUnknownMachine.
func FromConfig(cfg *options.Config) (*Runtime, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}
	if err := options.WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	handler := cfg.GetHandler()
	registry := machines.NewDefaultRegistry(handler, cfg.GetDiagWriter())
	machine, err := registry.Get(cfg.GetLang())
	if err != nil {
		return nil, err
	}

	reporter := engine.NewReporter(handler, cfg.GetDiagWriter(), cfg.GetResultsWriter())
	pipeline, err := engine.NewPipeline(handler, machine, reporter,
		engine.WithMachineSelector(registry),
		engine.WithDumpAST(cfg.GetDumpAST()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	return &Runtime{
		Config:   cfg,
		Registry: registry,
		Reporter: reporter,
		Pipeline: pipeline,
	}, nil
}

func (r *Runtime) String() string {
	return fmt.Sprintf("loxsh.Runtime{Pipeline: %s, Registry: %s}", r.Pipeline, r.Registry)
}

// Shell returns an interactive shell reading the configured input.
func (r *Runtime) Shell() (*shell.Shell, error) {
	return shell.New(r.Config, r.Pipeline, r.Reporter)
}

// EvalString evaluates source with the configured machine. Outcomes go to the
// configured streams.
func EvalString(ctx context.Context, source string, opts ...options.Option) error {
	rt, err := New(opts...)
	if err != nil {
		return err
	}
	return rt.Pipeline.Evaluate(ctx, source)
}

// RunFile evaluates the file at path. It fails only when the file cannot be
// read, with *loader.IoError.
func RunFile(ctx context.Context, path string, opts ...options.Option) error {
	rt, err := New(opts...)
	if err != nil {
		return err
	}
	return rt.Pipeline.RunFile(ctx, path)
}
