// Package shell is the interactive read-eval loop.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/robbyt/loxsh/engine"
	"github.com/robbyt/loxsh/internal/helpers"
	"github.com/robbyt/loxsh/options"
)

const (
	helpText           = ":exit | :eval a b ... | :help"
	invalidCommandText = "The command `%s` is not valid. Type `:help` for guidance."
	evaluatingText     = "Evaluating `%s`..."
)

// Runner evaluates interactive lines and `:eval` files.
type Runner interface {
	Evaluate(ctx context.Context, source string) error
	RunFile(ctx context.Context, path string) error
}

// Shell reads one line at a time and either dispatches a meta-command or
// evaluates the line as source text. No evaluation state carries over
// between lines.
type Shell struct {
	runner   Runner
	reporter *engine.Reporter

	input        *bufio.Reader
	promptWriter *bufio.Writer
	prompt       string
	banner       string

	logger *slog.Logger
}

// New creates a Shell reading from the configured input.
func New(cfg *options.Config, runner Runner, reporter *engine.Reporter) (*Shell, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}
	if runner == nil {
		return nil, ErrRunnerNil
	}
	if reporter == nil {
		return nil, ErrReporterNil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	_, logger := helpers.SetupLogger(cfg.GetHandler(), "shell", "Shell")
	return &Shell{
		runner:       runner,
		reporter:     reporter,
		input:        bufio.NewReader(cfg.GetInput()),
		promptWriter: bufio.NewWriter(cfg.GetPromptWriter()),
		prompt:       cfg.GetPrompt(),
		banner:       cfg.GetBanner(),
		logger:       logger,
	}, nil
}

func (s *Shell) String() string {
	return fmt.Sprintf("shell.Shell{Prompt: %q}", s.prompt)
}

// Run loops until end of input or `:exit`, both of which return nil. A read
// error is returned. A cancelled ctx stops the loop before the next prompt.
func (s *Shell) Run(ctx context.Context) error {
	if s.banner != "" {
		s.reporter.Diagnostic("%s\n", s.banner)
	}

	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.writePrompt()
		line, readErr := s.input.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("%w: %w", ErrReadInput, readErr)
		}
		if line == "" && readErr != nil {
			s.logger.DebugContext(ctx, "end of input", "lines", lineNo-1)
			return nil
		}

		if s.handleLine(ctx, strings.TrimSpace(line)) {
			return nil
		}
		if readErr != nil {
			// the final line had no trailing newline
			return nil
		}
	}
}

// handleLine classifies and dispatches one line. It returns true when the
// shell should exit.
func (s *Shell) handleLine(ctx context.Context, line string) bool {
	cmd, isCommand := ParseCommand(line)
	if !isCommand {
		if err := s.runner.Evaluate(ctx, line); err != nil {
			s.reporter.Error(err)
		}
		return false
	}

	switch c := cmd.(type) {
	case Exit:
		return true
	case Eval:
		for _, path := range c.Paths {
			s.reporter.Diagnostic(evaluatingText, path)
			if err := s.runner.RunFile(ctx, path); err != nil {
				s.logger.DebugContext(ctx, "eval failed", "path", path, "error", err)
				s.reporter.Error(err)
			}
		}
	case Help:
		s.reporter.Diagnostic(helpText)
	case Unknown:
		s.reporter.Diagnostic(invalidCommandText, c.Name)
	}
	return false
}

// writePrompt writes the prompt and flushes it so it is visible before the
// blocking read.
func (s *Shell) writePrompt() {
	if _, err := s.promptWriter.WriteString(s.prompt); err != nil {
		s.logger.Debug("prompt write failed", "error", err)
		return
	}
	if err := s.promptWriter.Flush(); err != nil {
		s.logger.Debug("prompt flush failed", "error", err)
	}
}
