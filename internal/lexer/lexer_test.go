package lexer_test

import (
	"testing"

	"github.com/beakerlang/beakerc/internal/lexer"
	"github.com/beakerlang/beakerc/internal/symbol"
	"github.com/beakerlang/beakerc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []lexer.Token {
	t.Helper()
	symbols := symbol.NewTable()
	lx := lexer.New("t.bkr", src, symbols)
	var toks []lexer.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	require.Empty(t, lx.Errors())
	return toks
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks := scanAll(t, "def fact record notakeyword")
	require.Len(t, toks, 5) // 4 words + EOF
	assert.Equal(t, token.KwDef, toks[0].Kind)
	assert.Equal(t, token.Ident, toks[1].Kind)
	assert.Equal(t, "fact", toks[1].Sym.Spelling())
	assert.Equal(t, token.KwRecord, toks[2].Kind)
	assert.Equal(t, token.Ident, toks[3].Kind)
	assert.Equal(t, token.EOF, toks[4].Kind)
}

func TestScanIntegerLiteral(t *testing.T) {
	toks := scanAll(t, "42")
	require.Equal(t, token.Integer, toks[0].Kind)
	assert.EqualValues(t, 42, toks[0].Sym.IntValue())
}

func TestScanFloatLiteralIsClassifiedCorrectly(t *testing.T) {
	// Regression: the original lexer's integer/float test was inverted.
	toks := scanAll(t, "3.5 7")
	require.Equal(t, token.Float, toks[0].Kind)
	assert.InDelta(t, 3.5, toks[0].Sym.FloatValue(), 1e-9)
	require.Equal(t, token.Integer, toks[1].Kind)
	assert.EqualValues(t, 7, toks[1].Sym.IntValue())
}

func TestScanBooleanLiteralsAreNeverKeywords(t *testing.T) {
	toks := scanAll(t, "true false")
	require.Equal(t, token.Boolean, toks[0].Kind)
	assert.Equal(t, true, toks[0].Sym.BoolValue())
	require.Equal(t, token.Boolean, toks[1].Kind)
	assert.Equal(t, false, toks[1].Sym.BoolValue())
}

func TestScanCharacterAndStringLiterals(t *testing.T) {
	toks := scanAll(t, `'a' "hi\n"`)
	require.Equal(t, token.Character, toks[0].Kind)
	assert.EqualValues(t, 'a', toks[0].Sym.CharValue())
	require.Equal(t, token.String, toks[1].Kind)
	assert.Equal(t, "hi\n", toks[1].Sym.StringValue())
}

func TestScanTwoCharacterOperators(t *testing.T) {
	toks := scanAll(t, "== != <= >= && || -> =")
	kinds := make([]token.Kind, 0, len(toks)-1)
	for _, tok := range toks[:len(toks)-1] {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.Eq, token.Ne, token.Le, token.Ge, token.AndAnd, token.OrOr, token.Arrow, token.Assign,
	}, kinds)
}

func TestScanSkipsLineComments(t *testing.T) {
	toks := scanAll(t, "1 // a comment\n2")
	require.Len(t, toks, 3)
	assert.EqualValues(t, 1, toks[0].Sym.IntValue())
	assert.EqualValues(t, 2, toks[1].Sym.IntValue())
}

func TestScanIllegalCharacterIsReportedNotPanicked(t *testing.T) {
	symbols := symbol.NewTable()
	lx := lexer.New("t.bkr", "1 @ 2", symbols)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
	}
	assert.NotEmpty(t, lx.Errors())
}
