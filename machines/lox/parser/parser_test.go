package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/loxsh/machines/lox/scanner"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"precedence", "1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"grouping", "(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"left associative", "8 - 4 - 2", "(- (- 8 4) 2)"},
		{"unary", "-1 - -2", "(- (- 1) (- 2))"},
		{"not and equality", "!true == false", "(== (! true) false)"},
		{"logical", "1 < 2 and 3 >= 4 or nil", "(or (and (< 1 2) (>= 3 4)) nil)"},
		{"strings", `"a" + "b"`, `(+ "a" "b")`},
		{"fraction", "2.5", "2.5"},
		{"multiline", "1 +\n2", "(+ 1 2)"},
		{"empty", "", ""},
		{"comment only", "  // nothing here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, errs := Parse(tt.src)
			require.Empty(t, errs)
			require.NotNil(t, prog)
			assert.Equal(t, tt.want, prog.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		want    []string
		wantErr error
	}{
		{
			name:    "missing operand",
			src:     "1 +",
			want:    []string{"[line 1:4] Error at end: Expect expression."},
			wantErr: ErrExpectExpression,
		},
		{
			name:    "unclosed group",
			src:     "(1 + 2",
			want:    []string{"[line 1:7] Error at end: Expect ')' after expression."},
			wantErr: ErrExpectRightParen,
		},
		{
			name:    "trailing tokens",
			src:     "1 2",
			want:    []string{"[line 1:3] Error at '2': Expect end of expression."},
			wantErr: ErrExpectEnd,
		},
		{
			name:    "stray operator",
			src:     "* 3",
			want:    []string{"[line 1:1] Error at '*': Expect expression."},
			wantErr: ErrExpectExpression,
		},
		{
			name: "lexical and syntax errors are ordered by position",
			src:  `1 + ) "abc`,
			want: []string{
				"[line 1:5] Error at ')': Expect expression.",
				"[line 1:7] Error: unterminated string.",
			},
			wantErr: ErrExpectExpression,
		},
		{
			name: "lexical error before syntax error",
			src:  "1 # +",
			want: []string{
				`[line 1:3] Error: unexpected character "#".`,
				"[line 1:6] Error at end: Expect expression.",
			},
			wantErr: scanner.ErrUnexpectedChar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, errs := Parse(tt.src)
			require.Nil(t, prog)
			require.Len(t, errs, len(tt.want))

			got := make([]string, 0, len(errs))
			for _, err := range errs {
				got = append(got, err.Error())
			}
			assert.Equal(t, tt.want, got)
			assert.ErrorIs(t, errs[0], tt.wantErr)
		})
	}
}
