package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}
	return out
}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []Kind
	}{
		{"empty", "", []Kind{EOF}},
		{"arithmetic", "1 + 2 * (3 - 4) / 5", []Kind{Number, Plus, Number, Star, LeftParen, Number, Minus, Number, RightParen, Slash, Number, EOF}},
		{"comparison", ">= <= != == ! = < >", []Kind{GreaterEqual, LessEqual, BangEqual, EqualEqual, Bang, Equal, Less, Greater, EOF}},
		{"keywords", "and or nil true false foo_1", []Kind{And, Or, Nil, True, False, Identifier, EOF}},
		{"comment", "1 // the rest / is ignored\n2", []Kind{Number, Number, EOF}},
		{"string", `"hello world"`, []Kind{String, EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := Scan(tt.src)
			require.Empty(t, errs)
			assert.Equal(t, tt.want, kinds(tokens))
		})
	}
}

func TestScanLiterals(t *testing.T) {
	t.Parallel()

	tokens, errs := Scan(`12.5 "ab" 7`)
	require.Empty(t, errs)
	require.Len(t, tokens, 4)

	assert.Equal(t, 12.5, tokens[0].Literal)
	assert.Equal(t, "12.5", tokens[0].Lexeme)
	assert.Equal(t, "ab", tokens[1].Literal)
	assert.Equal(t, `"ab"`, tokens[1].Lexeme)
	assert.Equal(t, 7.0, tokens[2].Literal)
	assert.Equal(t, "end", tokens[3].String())
}

func TestScanPositions(t *testing.T) {
	t.Parallel()

	tokens, errs := Scan("1 + 2\n  -\n\"a\nb\" 3")
	require.Empty(t, errs)

	want := []Pos{{1, 1}, {1, 3}, {1, 5}, {2, 3}, {3, 1}, {4, 4}, {4, 5}}
	got := make([]Pos, 0, len(tokens))
	for _, tok := range tokens {
		got = append(got, tok.Pos)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "a\nb", tokens[4].Literal)
}

func TestScanErrors(t *testing.T) {
	t.Parallel()

	t.Run("unexpected character continues scanning", func(t *testing.T) {
		tokens, errs := Scan("1 # 2 @")
		require.Len(t, errs, 2)
		assert.ErrorIs(t, errs[0], ErrUnexpectedChar)
		assert.Equal(t, `[line 1:3] Error: unexpected character "#".`, errs[0].Error())
		assert.Equal(t, `[line 1:7] Error: unexpected character "@".`, errs[1].Error())
		assert.Equal(t, []Kind{Number, Number, EOF}, kinds(tokens))
	})

	t.Run("unterminated string", func(t *testing.T) {
		tokens, errs := Scan(`1 "abc`)
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], ErrUnterminatedString)
		assert.Equal(t, "[line 1:3] Error: unterminated string.", errs[0].Error())
		assert.Equal(t, []Kind{Number, EOF}, kinds(tokens))
	})
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+", Plus.String())
	assert.Equal(t, "and", And.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.Equal(t, "2:7", Pos{Line: 2, Col: 7}.String())
}
