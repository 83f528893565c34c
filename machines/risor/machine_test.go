package risor

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/loxsh/engine"
	"github.com/robbyt/loxsh/execution/data"
)

func newTestMachine() *Machine {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	return New(handler)
}

func TestMachineImplementsEngineMachine(t *testing.T) {
	var _ engine.Machine = (*Machine)(nil)
}

func evaluate(t *testing.T, m *Machine, ctx context.Context, source string) (engine.EvaluatorResponse, error) {
	t.Helper()
	result := m.Parse(ctx, source)
	require.Empty(t, result.Errors)
	require.True(t, result.HasTree())
	return m.Interpret(ctx, result.Tree)
}

func TestMachine_Evaluate(t *testing.T) {
	t.Parallel()
	m := newTestMachine()

	t.Run("arithmetic", func(t *testing.T) {
		value, err := evaluate(t, m, context.Background(), "1 + 2")
		require.NoError(t, err)
		assert.Equal(t, data.INT, value.Type())
		assert.Equal(t, "3", value.Inspect())
	})

	t.Run("string pipeline", func(t *testing.T) {
		value, err := evaluate(t, m, context.Background(), `"hello" | strings.to_upper`)
		require.NoError(t, err)
		assert.Equal(t, data.STRING, value.Type())
		assert.Contains(t, value.Inspect(), "HELLO")
	})
}

func TestMachine_Errors(t *testing.T) {
	t.Parallel()
	m := newTestMachine()

	t.Run("syntax error", func(t *testing.T) {
		_, err := evaluate(t, m, context.Background(), "1 +")
		require.ErrorIs(t, err, ErrExecution)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := evaluate(t, m, ctx, "1 + 2")
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid tree", func(t *testing.T) {
		_, err := m.Interpret(context.Background(), "not a program")
		require.ErrorIs(t, err, ErrInvalidTree)
		assert.Contains(t, err.Error(), "got string")
	})
}

func TestMachine_DumpTree(t *testing.T) {
	t.Parallel()
	m := newTestMachine()

	result := m.Parse(context.Background(), "x := 1\nx + 1\n")
	dumpable, ok := result.Tree.(engine.DumpableTree)
	require.True(t, ok)
	assert.Equal(t, "x := 1\nx + 1\n", dumpable.DumpTree())
}

func TestMachine_String(t *testing.T) {
	t.Parallel()
	m := New(nil)
	assert.Equal(t, Name, m.Name())
	assert.Equal(t, "risor.Machine", m.String())
}
