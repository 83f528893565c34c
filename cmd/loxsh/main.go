// Command loxsh runs a script file, or starts an interactive shell when no
// file is given.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/robbyt/loxsh"
	"github.com/robbyt/loxsh/engine"
	"github.com/robbyt/loxsh/execution/script/loader"
	"github.com/robbyt/loxsh/internal/helpers"
	"github.com/robbyt/loxsh/machines"
	"github.com/robbyt/loxsh/options"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// stdinPath makes the file argument read the script from stdin.
const stdinPath = "-"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type flags struct {
	set        *flag.FlagSet
	lang       string
	configPath string
	logLevel   string
	dumpAST    bool
	results    string
}

func newFlags(stderr io.Writer) *flags {
	f := &flags{set: flag.NewFlagSet("loxsh", flag.ContinueOnError)}
	f.set.SetOutput(stderr)
	f.set.StringVar(&f.lang, "lang", options.DefaultLang,
		"machine for interactive lines and files with an unknown extension (lox, starlark, risor)")
	f.set.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	f.set.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	f.set.BoolVar(&f.dumpAST, "dump-ast", false, "write each syntax tree to stderr before evaluating it")
	f.set.StringVar(&f.results, "results", options.ResultsDiag, "where computed values go: diag or stdout")
	f.set.Usage = func() {
		fmt.Fprintln(f.set.Output(), "usage: loxsh [flags] [script | -]")
		f.set.PrintDefaults()
	}
	return f
}

// explicit returns the names of the flags given on the command line.
func (f *flags) explicit() map[string]bool {
	seen := make(map[string]bool)
	f.set.Visit(func(fl *flag.Flag) {
		seen[fl.Name] = true
	})
	return seen
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f := newFlags(stderr)
	if err := f.set.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if f.set.NArg() > 1 {
		f.set.Usage()
		return exitUsage
	}

	cfg, err := buildConfig(f, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	rt, err := loxsh.FromConfig(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, machines.ErrUnknownMachine) {
			return exitUsage
		}
		return exitFailure
	}
	_, logger := helpers.SetupLogger(cfg.GetHandler(), "loxsh", "main")
	logger.Debug("runtime ready", "runtime", rt.String())

	if f.set.NArg() == 1 {
		if err := runFile(ctx, rt.Pipeline, f.set.Arg(0), stdin); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
		return exitOK
	}

	sh, err := rt.Shell()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	if err := sh.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// buildConfig layers the defaults, the config file and explicitly given
// flags, in that order.
func buildConfig(f *flags, stdin io.Reader, stdout, stderr io.Writer) (*options.Config, error) {
	fileCfg := &options.FileConfig{}
	if f.configPath != "" {
		loaded, err := options.LoadFile(f.configPath)
		if err != nil {
			return nil, err
		}
		fileCfg = loaded
	}
	given := f.explicit()

	level, err := fileCfg.Level()
	if err != nil {
		return nil, err
	}
	if given["log-level"] {
		if level, err = helpers.ParseLevel(f.logLevel); err != nil {
			return nil, fmt.Errorf("%w: %w", options.ErrInvalidConfig, err)
		}
	}

	opts := []options.Option{
		options.WithLogHandler(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		options.WithInput(stdin),
		options.WithPromptWriter(stdout),
		options.WithDiagWriter(stderr),
	}
	opts = append(opts, fileCfg.Options(stdout)...)

	if given["lang"] {
		opts = append(opts, options.WithLang(f.lang))
	}
	if given["dump-ast"] {
		opts = append(opts, options.WithDumpAST(f.dumpAST))
	}
	if given["results"] {
		w, err := options.ResultsWriter(f.results, stdout)
		if err != nil {
			return nil, err
		}
		opts = append(opts, options.WithResultsWriter(w))
	}

	return options.New(opts...)
}

// runFile evaluates one script. Only a source that cannot be read is an
// error; parse and runtime errors have already been reported.
func runFile(ctx context.Context, pipeline *engine.Pipeline, path string, stdin io.Reader) error {
	if path != stdinPath {
		return pipeline.RunFile(ctx, path)
	}

	l, err := loader.NewFromIoReader(stdin, "stdin")
	if err != nil {
		return err
	}
	return pipeline.Run(ctx, l)
}
