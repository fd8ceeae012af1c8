package parser

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimblelang/nimble/compiler/internal/ast"
	"github.com/nimblelang/nimble/compiler/internal/diag"
)

func TestParseExprsInFunction(t *testing.T) {
	src := "" +
		"func f(a : Int, b : Bool) : Int {\n" +
		"  var x : Int = 1 + 2 * 3\n" +
		"  x = (x + 1) * 2\n" +
		"  return x\n" +
		"}\n" +
		"print f(1, true)\n"

	s, err := ParseScript(src)
	require.NoError(t, err)
	require.Len(t, s.Funcs, 1)

	fn := s.Funcs[0]
	assert.Equal(t, "f", fn.Name)
	assert.Equal(t, "Int", fn.Ret)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "b", fn.Params[1].Name)
	assert.Equal(t, "Bool", fn.Params[1].Type)
	require.Len(t, fn.Body.Vars.Decls, 1)
	require.Len(t, fn.Body.Stmts.Stmts, 2)

	// var x : Int = 1 + 2 * 3
	plus, ok := fn.Body.Vars.Decls[0].Init.(*ast.AddSub)
	require.True(t, ok, "init not AddSub")
	assert.Equal(t, "+", plus.Op)
	times, ok := plus.Right.(*ast.MulDiv)
	require.True(t, ok, "right child not MulDiv")
	assert.Equal(t, "*", times.Op)

	// x = (x + 1) * 2
	asg, ok := fn.Body.Stmts.Stmts[0].(*ast.Assign)
	require.True(t, ok)
	mul, ok := asg.X.(*ast.MulDiv)
	require.True(t, ok)
	_, ok = mul.Left.(*ast.Parens)
	assert.True(t, ok)

	ret, ok := fn.Body.Stmts.Stmts[1].(*ast.Return)
	require.True(t, ok)
	assert.Equal(t, "returnx", ret.Text())

	require.Len(t, s.Main.Stmts.Stmts, 1)
	pr, ok := s.Main.Stmts.Stmts[0].(*ast.Print)
	require.True(t, ok)
	call, ok := pr.X.(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "f", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestNodeTextAndSpan(t *testing.T) {
	s, err := ParseScript("var x : Bool = 100\n\nif 5 {\n}\n")
	require.NoError(t, err)

	d := s.Main.Vars.Decls[0]
	assert.Equal(t, "varx:Bool=100", d.Text())
	assert.Equal(t, diag.Span{Start: diag.Pos{Line: 1, Col: 1}, End: diag.Pos{Line: 1, Col: 19}}, d.Span())

	ifs, ok := s.Main.Stmts.Stmts[0].(*ast.If)
	require.True(t, ok)
	assert.Equal(t, "if5{}", ifs.Text())
	assert.Equal(t, 3, ifs.Span().Start.Line)
	assert.Equal(t, 4, ifs.Span().End.Line)
	assert.Equal(t, "5", ifs.Cond.Text())
	assert.Nil(t, ifs.Else)
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"8 / 4 * 2", "((8 / 4) * 2)"},
		{"1 + 2 < 3 * 4", "((1 + 2) < (3 * 4))"},
		{"1 < 2 == true", "((1 < 2) == true)"},
		{"-x * 2", "(-x * 2)"},
		{"!!b", "!!b"},
		{"-(1 + 2)", "-((1 + 2))"},
		{"f() + g(1, h(2))", "(f() + g(1, h(2)))"},
		{`"hi" != "ho"`, `("hi" != "ho")`},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e, err := ParseExpr(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ast.ExprString(e))
		})
	}
}

func TestNodeIDsAreUnique(t *testing.T) {
	s, err := ParseScript("func g(n : Int) { print n }\nvar a : Int = 1\nwhile a < 10 { a = a + 1 }\ng(a)\n")
	require.NoError(t, err)

	seen := map[ast.NodeID]bool{}
	ast.Inspect(s, func(n ast.Node) bool {
		assert.False(t, seen[n.ID()], "duplicate id %d for %q", n.ID(), n.Text())
		assert.Positive(t, int(n.ID()))
		seen[n.ID()] = true
		return true
	})
	assert.Equal(t, ast.Count(s), len(seen))
}

func TestReturnWithoutValue(t *testing.T) {
	s, err := ParseScript("func f() { return }\nf()")
	require.NoError(t, err)
	ret, ok := s.Funcs[0].Body.Stmts.Stmts[0].(*ast.Return)
	require.True(t, ok)
	assert.Nil(t, ret.X)
	assert.Equal(t, "", s.Funcs[0].Ret)

	_, ok = s.Main.Stmts.Stmts[0].(*ast.CallStmt)
	assert.True(t, ok)
}

func TestReturnValueMustShareLine(t *testing.T) {
	s, err := ParseScript("func g() { }\nfunc f() {\n  return\n  g()\n}\nf()")
	require.NoError(t, err)
	stmts := s.Funcs[1].Body.Stmts.Stmts
	require.Len(t, stmts, 2)
	ret, ok := stmts[0].(*ast.Return)
	require.True(t, ok)
	assert.Nil(t, ret.X)
	assert.Equal(t, "return", ret.Text())
	_, ok = stmts[1].(*ast.CallStmt)
	assert.True(t, ok)

	s, err = ParseScript("var x : Int\nreturn\nx = 1")
	require.NoError(t, err)
	stmts = s.Main.Stmts.Stmts
	require.Len(t, stmts, 2)
	assert.Nil(t, stmts[0].(*ast.Return).X)
	_, ok = stmts[1].(*ast.Assign)
	assert.True(t, ok)

	s, err = ParseScript("func h() : Int { return 1 + 2 }")
	require.NoError(t, err)
	ret = s.Funcs[0].Body.Stmts.Stmts[0].(*ast.Return)
	require.NotNil(t, ret.X)
	assert.Equal(t, "1+2", ret.X.Text())
}

func TestEmptyProgram(t *testing.T) {
	s, err := ParseScript("  // nothing here\n")
	require.NoError(t, err)
	assert.Empty(t, s.Funcs)
	assert.Empty(t, s.Main.Vars.Decls)
	assert.Empty(t, s.Main.Stmts.Stmts)
	assert.Equal(t, "", s.Main.Text())
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
		line int
	}{
		{"decl after stmt", "print 1\nvar x : Int", "NSX0003", 2},
		{"missing type", "var x = 3", "NSX0001", 1},
		{"unknown char", "print 1 @ 2", "NSX0004", 1},
		{"unknown char start", "@", "NSX0004", 1},
		{"unterminated", "print \"abc\n", "NSX0002", 1},
		{"eof in block", "while true {\n print 1\n", "NSX0005", 3},
		{"bad statement", "}", "NSX0001", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(tt.src)
			require.Error(t, err)
			var d *diag.Diagnostic
			require.ErrorAs(t, err, &d)
			assert.Equal(t, tt.code, d.Code, d.Error())
			assert.Equal(t, tt.line, d.Span.Start.Line)
		})
	}
}

func TestIsIncomplete(t *testing.T) {
	_, err := ParseScript("if x {")
	assert.True(t, IsIncomplete(err))
	_, err = ParseExpr("1 +")
	assert.True(t, IsIncomplete(err))
	_, err = ParseScript("if x }")
	assert.False(t, IsIncomplete(err))
	assert.False(t, IsIncomplete(nil))
}

type shape struct {
	Kind     string
	Text     string
	Children []shape
}

func shapeOf(n ast.Node) shape {
	s := shape{Text: n.Text()}
	switch n.(type) {
	case *ast.Neg:
		s.Kind = "Neg"
	case *ast.Parens:
		s.Kind = "Parens"
	case *ast.IntLit:
		s.Kind = "Int"
	case *ast.Variable:
		s.Kind = "Var"
	case *ast.AddSub:
		s.Kind = "AddSub"
	default:
		s.Kind = "?"
	}
	for _, c := range ast.Children(n) {
		s.Children = append(s.Children, shapeOf(c))
	}
	return s
}

func TestExprTreeShape(t *testing.T) {
	e, err := ParseExpr("-(a + 1)")
	require.NoError(t, err)
	want := shape{Kind: "Neg", Text: "-(a+1)", Children: []shape{
		{Kind: "Parens", Text: "(a+1)", Children: []shape{
			{Kind: "AddSub", Text: "a+1", Children: []shape{
				{Kind: "Var", Text: "a"},
				{Kind: "Int", Text: "1"},
			}},
		}},
	}}
	if diff := deep.Equal(shapeOf(e), want); diff != nil {
		t.Error(diff)
	}
}

func TestDump(t *testing.T) {
	src := "func f(n : Int) : Bool {\n var ok : Bool\n if n > 0 { ok = true } else { ok = false }\n return ok\n}\n" +
		"var i : Int = 0\nwhile i < 3 { i = i + 1 }\nprint f(i)\n"
	s, err := ParseScript(src)
	require.NoError(t, err)
	want := "" +
		"func f(n: Int) -> Bool:\n" +
		"  var ok : Bool\n" +
		"  if (n > 0):\n" +
		"    ok = true\n" +
		"  else:\n" +
		"    ok = false\n" +
		"  return ok\n" +
		"\n" +
		"main:\n" +
		"  var i : Int = 0\n" +
		"  while (i < 3):\n" +
		"    i = (i + 1)\n" +
		"  print f(i)\n"
	assert.Equal(t, want, ast.Dump(s))
}
