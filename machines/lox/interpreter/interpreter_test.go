package interpreter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/loxsh/machines/lox/ast"
	"github.com/robbyt/loxsh/machines/lox/parser"
)

func eval(t *testing.T, src string) (any, error) {
	t.Helper()
	prog, errs := parser.Parse(src)
	require.Empty(t, errs)
	return New().Interpret(context.Background(), prog)
}

func TestInterpret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"addition", "1 + 2", "3"},
		{"precedence", "1 + 2 * 3", "7"},
		{"fraction", "7 / 2", "3.5"},
		{"float noise", "0.1 + 0.2", "0.30000000000000004"},
		{"negation", "-(3)", "-3"},
		{"concatenation", `"a" + "b"`, "ab"},
		{"comparison", "2 >= 2", "true"},
		{"equality of numbers", "1 == 1", "true"},
		{"equality across types", "nil == false", "false"},
		{"nil equals nil", "nil == nil", "true"},
		{"string equality", `"a" != "a"`, "false"},
		{"not nil", "!nil", "true"},
		{"and yields right", "1 and 2", "2"},
		{"or yields first truthy", "nil or 3", "3"},
		{"and short-circuits", `false and -"x"`, "false"},
		{"or short-circuits", `true or -"x"`, "true"},
		{"empty program", "", "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval(t, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Stringify(got))
		})
	}
}

func TestInterpretErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr error
		wantMsg string
	}{
		{
			name:    "negate string",
			src:     `-"a"`,
			wantErr: ErrOperandNumber,
			wantMsg: "[line 1:1] Runtime error at '-': Operand must be a number.",
		},
		{
			name:    "mixed plus",
			src:     `1 + "a"`,
			wantErr: ErrOperandsPlus,
			wantMsg: "[line 1:3] Runtime error at '+': Operands must be two numbers or two strings.",
		},
		{
			name:    "compare string",
			src:     `1 < "a"`,
			wantErr: ErrOperandsNumbers,
			wantMsg: "[line 1:3] Runtime error at '<': Operands must be numbers.",
		},
		{
			name:    "division by zero",
			src:     "1 / 0",
			wantErr: ErrDivisionByZero,
			wantMsg: "[line 1:3] Runtime error at '/': Division by zero.",
		},
		{
			name:    "error inside group",
			src:     "(true * 2) + 1",
			wantErr: ErrOperandsNumbers,
			wantMsg: "[line 1:7] Runtime error at '*': Operands must be numbers.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval(t, tt.src)
			require.Nil(t, got)
			require.ErrorIs(t, err, tt.wantErr)

			var rerr *RuntimeError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestInterpretNilProgram(t *testing.T) {
	t.Parallel()

	got, err := New().Interpret(context.Background(), nil)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = New().Interpret(context.Background(), &ast.Program{})
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestInterpretCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prog, errs := parser.Parse("1")
	require.Empty(t, errs)

	_, err := New().Interpret(ctx, prog)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStringify(t *testing.T) {
	t.Parallel()

	inf := 1.0
	for range 400 {
		inf *= 10
	}

	assert.Equal(t, "nil", Stringify(nil))
	assert.Equal(t, "false", Stringify(false))
	assert.Equal(t, "42", Stringify(42.0))
	assert.Equal(t, "-0.5", Stringify(-0.5))
	assert.Equal(t, "inf", Stringify(inf))
	assert.Equal(t, "-inf", Stringify(-inf))
	assert.Equal(t, "nan", Stringify(inf-inf))
	assert.Equal(t, "text", Stringify("text"))
	assert.Equal(t, "<unknown>", Stringify(struct{}{}))
}
