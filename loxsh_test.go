package loxsh

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/loxsh/execution/script/loader"
	"github.com/robbyt/loxsh/machines"
	"github.com/robbyt/loxsh/options"
)

func quietHandler() slog.Handler {
	return slog.NewTextHandler(io.Discard, nil)
}

func TestEvalString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lang     string
		source   string
		expected string
	}{
		{"lox value", "lox", "(1 + 2) * 3", "9\n"},
		{"lox parse error", "lox", ")", "[line 1:1] Error at ')': Expect expression.\n"},
		{"starlark value", "starlark", "sorted([3, 1, 2])", "[1, 2, 3]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			diag := &bytes.Buffer{}
			err := EvalString(context.Background(), tt.source,
				options.WithLogHandler(quietHandler()),
				options.WithLang(tt.lang),
				options.WithDiagWriter(diag),
			)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, diag.String())
		})
	}
}

func TestRunFile(t *testing.T) {
	t.Parallel()

	t.Run("evaluates file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prog.lox")
		require.NoError(t, os.WriteFile(path, []byte("\"a\" + \"b\"\n"), 0o600))

		diag := &bytes.Buffer{}
		results := &bytes.Buffer{}
		err := RunFile(context.Background(), path,
			options.WithLogHandler(quietHandler()),
			options.WithDiagWriter(diag),
			options.WithResultsWriter(results),
		)
		require.NoError(t, err)
		assert.Empty(t, diag.String())
		assert.Equal(t, "ab\n", results.String())
	})

	t.Run("unreadable file", func(t *testing.T) {
		err := RunFile(context.Background(), filepath.Join(t.TempDir(), "nope.lox"),
			options.WithLogHandler(quietHandler()),
			options.WithDiagWriter(io.Discard),
		)
		var ioErr *loader.IoError
		require.ErrorAs(t, err, &ioErr)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		rt, err := New(options.WithLogHandler(quietHandler()))
		require.NoError(t, err)
		assert.Equal(t, "lox", rt.Pipeline.Machine().Name())
		assert.Equal(t,
			"loxsh.Runtime{Pipeline: engine.Pipeline{Machine: lox}, Registry: machines.Registry{Machines: lox, starlark, risor}}",
			rt.String())
	})

	t.Run("unknown language", func(t *testing.T) {
		_, err := New(options.WithLogHandler(quietHandler()), options.WithLang("cobol"))
		require.ErrorIs(t, err, machines.ErrUnknownMachine)
	})

	t.Run("zero config gets defaults", func(t *testing.T) {
		cfg := &options.Config{}
		rt, err := FromConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, options.DefaultLang, rt.Pipeline.Machine().Name())
		assert.Equal(t, options.DefaultLang, cfg.GetLang())
		assert.Equal(t, os.Stderr, cfg.GetDiagWriter())
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := FromConfig(nil)
		require.ErrorIs(t, err, ErrConfigNil)
	})
}

func TestRuntime_Shell(t *testing.T) {
	t.Parallel()
	prompt := &bytes.Buffer{}
	diag := &bytes.Buffer{}

	rt, err := New(
		options.WithLogHandler(quietHandler()),
		options.WithInput(strings.NewReader("1 + 1\n:exit\n")),
		options.WithPromptWriter(prompt),
		options.WithDiagWriter(diag),
		options.WithBanner(""),
	)
	require.NoError(t, err)

	sh, err := rt.Shell()
	require.NoError(t, err)
	require.NoError(t, sh.Run(context.Background()))
	assert.Equal(t, "2\n", diag.String())
	assert.Equal(t, "> > ", prompt.String())
}
