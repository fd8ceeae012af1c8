package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsFrom(src string) []TokKind {
	var kinds []TokKind
	for _, t := range All(NewSource(src)) {
		kinds = append(kinds, t.Kind)
	}
	return kinds
}

func TestEmptyIsEOF(t *testing.T) {
	ks := kindsFrom("")
	require.Len(t, ks, 1)
	assert.Equal(t, TokEOF, ks[0])

	l := New("")
	l.Next()
	assert.Equal(t, TokEOF, l.Next().Kind, "EOF repeats")
}

func TestVarDeclAndAssign(t *testing.T) {
	src := "var x : Int = 3\nx = x + 1 // bump\n"
	want := []TokKind{
		TokVar, TokIdent, TokColon, TokType, TokEq, TokInt,
		TokIdent, TokEq, TokIdent, TokPlus, TokInt,
		TokEOF,
	}
	assert.Equal(t, want, kindsFrom(src))
}

func TestFuncAndOperators(t *testing.T) {
	src := "func f(a : Bool) : String { if !a { return \"no\" } else { return \"y\\\"es\" } }\n" +
		"while 1 <= 2 == 3 >= 4 != 5 < 6 > 7 { print -1 * 2 / 3 }"
	want := []TokKind{
		TokFunc, TokIdent, TokLParen, TokIdent, TokColon, TokType, TokRParen, TokColon, TokType, TokLBrace,
		TokIf, TokBang, TokIdent, TokLBrace, TokReturn, TokStr, TokRBrace,
		TokElse, TokLBrace, TokReturn, TokStr, TokRBrace, TokRBrace,
		TokWhile, TokInt, TokLe, TokInt, TokEqEq, TokInt, TokGe, TokInt, TokNe, TokInt, TokLt, TokInt, TokGt, TokInt,
		TokLBrace, TokPrint, TokMinus, TokInt, TokStar, TokInt, TokSlash, TokInt, TokRBrace,
		TokEOF,
	}
	assert.Equal(t, want, kindsFrom(src))
}

func TestPositionsAreOneBased(t *testing.T) {
	toks := All(NewSource("var  x\n\t: Bool"))
	require.Len(t, toks, 5)
	assert.Equal(t, Token{Kind: TokVar, Lex: "var", Line: 1, Col: 1}, toks[0])
	assert.Equal(t, Token{Kind: TokIdent, Lex: "x", Line: 1, Col: 6}, toks[1])
	assert.Equal(t, Token{Kind: TokColon, Lex: ":", Line: 2, Col: 2}, toks[2])
	assert.Equal(t, Token{Kind: TokType, Lex: "Bool", Line: 2, Col: 4}, toks[3])
	assert.Equal(t, 8, toks[3].End())
}

func TestIllegalTokens(t *testing.T) {
	toks := All(NewSource("x @ \"open\ny"))
	require.Len(t, toks, 5)
	assert.Equal(t, TokIllegal, toks[1].Kind)
	assert.Equal(t, "@", toks[1].Lex)
	assert.Equal(t, TokIllegal, toks[2].Kind)
	assert.Equal(t, "\"open", toks[2].Lex)
	assert.Equal(t, TokIdent, toks[3].Kind)
	assert.Equal(t, 2, toks[3].Line)
}

func TestOnlyASCIIDigits(t *testing.T) {
	toks := All(NewSource("٣ x٣ 42"))
	require.Len(t, toks, 5)
	assert.Equal(t, TokIllegal, toks[0].Kind)
	assert.Equal(t, "٣", toks[0].Lex)
	assert.Equal(t, TokIdent, toks[1].Kind)
	assert.Equal(t, "x", toks[1].Lex)
	assert.Equal(t, TokIllegal, toks[2].Kind)
	assert.Equal(t, TokInt, toks[3].Kind)
	assert.Equal(t, "42", toks[3].Lex)
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "<=", TokLe.String())
	assert.Equal(t, "IDENT", TokIdent.String())
	assert.True(t, TokNe.IsCompare())
	assert.False(t, TokPlus.IsCompare())
}
