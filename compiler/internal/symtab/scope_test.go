package symtab

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineThenResolve(t *testing.T) {
	g := NewGlobalScope()
	g.Define("x", Int)

	sym, ok := g.Resolve("x")
	require.True(t, ok)
	assert.Equal(t, Int, sym.Type)
	assert.Equal(t, "x", sym.Name)
	assert.False(t, sym.IsParam)

	_, ok = g.Resolve("y")
	assert.False(t, ok)
}

func TestChildSeesAncestorButNotSibling(t *testing.T) {
	g := NewGlobalScope()
	g.Define("shared", Bool)
	a := g.CreateChildScope("a", Void)
	b := g.CreateChildScope("b", Int)
	a.Define("onlyA", String)
	deeper := a.CreateChildScope("inner", Void)

	sym, ok := a.Resolve("shared")
	require.True(t, ok)
	assert.Equal(t, Bool, sym.Type)

	_, ok = deeper.Resolve("shared")
	assert.True(t, ok, "grandchild resolves through the chain")
	_, ok = deeper.Resolve("onlyA")
	assert.True(t, ok)

	_, ok = b.Resolve("onlyA")
	assert.False(t, ok, "sibling must not see onlyA")
	_, ok = g.Resolve("onlyA")
	assert.False(t, ok, "parent must not see child symbols")

	_, ok = a.ResolveLocally("shared")
	assert.False(t, ok, "ResolveLocally ignores enclosing scopes")
}

func TestEnclosingChain(t *testing.T) {
	g := NewGlobalScope()
	m := g.CreateChildScope(MainScopeName, Void)

	_, ok := g.Enclosing()
	assert.False(t, ok)

	p, ok := m.Enclosing()
	require.True(t, ok)
	assert.Same(t, g, p)
	assert.Same(t, g, m.Global())
	assert.Equal(t, 2, g.Table().Len())

	got, ok := g.ChildScopeNamed(MainScopeName)
	require.True(t, ok)
	assert.Same(t, m, got)

	_, ok = g.ChildScopeNamed("nope")
	assert.False(t, ok)
}

func TestChildScopeReRegistrationReplaces(t *testing.T) {
	g := NewGlobalScope()
	first := g.CreateChildScope("f", Int)
	second := g.CreateChildScope("f", Bool)

	got, ok := g.ChildScopeNamed("f")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.NotSame(t, first, got)
	assert.Len(t, g.ChildScopes(), 1)
}

type ordinal struct {
	Name    string
	Type    string
	IsParam bool
	Index   int
}

func ordinals(syms []*Symbol) []ordinal {
	out := make([]ordinal, 0, len(syms))
	for _, s := range syms {
		out = append(out, ordinal{s.Name, s.Type.String(), s.IsParam, s.Index})
	}
	return out
}

func TestOrdinalsCountedSeparately(t *testing.T) {
	g := NewGlobalScope()
	g.Define("f", FunctionType{Params: []PrimitiveType{Int, Bool}, Return: Int})
	fs := g.CreateChildScope("f", Int)
	fs.DefineParam("a", Int)
	fs.Define("local1", String)
	fs.DefineParam("b", Bool)
	fs.Define("broken", Error)
	fs.Define("local2", Int)

	wantParams := []ordinal{
		{"a", "Int", true, 0},
		{"b", "Bool", true, 1},
	}
	wantLocals := []ordinal{
		{"local1", "String", false, 0},
		{"broken", "ERROR", false, 1},
		{"local2", "Int", false, 2},
	}
	if diff := deep.Equal(ordinals(fs.Parameters()), wantParams); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(ordinals(fs.LocalVariables()), wantLocals); diff != nil {
		t.Error(diff)
	}

	fns := g.Functions()
	require.Len(t, fns, 1)
	assert.Equal(t, 0, fns[0].Index)
	assert.True(t, fns[0].IsFunction())
	assert.Empty(t, g.LocalVariables())
}

func TestRedefineOverwrites(t *testing.T) {
	g := NewGlobalScope()
	g.Define("x", Int)
	g.Define("x", Error)

	sym, ok := g.ResolveLocally("x")
	require.True(t, ok)
	assert.Equal(t, Error, sym.Type)
	assert.Equal(t, 1, sym.Index, "ordinal keeps counting across redefinition")
}

func TestSameType(t *testing.T) {
	f1 := FunctionType{Params: []PrimitiveType{Int}, Return: Bool}
	f2 := FunctionType{Params: []PrimitiveType{Int}, Return: Bool}
	f3 := FunctionType{Params: []PrimitiveType{Bool}, Return: Bool}
	f4 := FunctionType{Return: Bool}

	assert.True(t, SameType(Int, Int))
	assert.False(t, SameType(Int, Bool))
	assert.True(t, SameType(f1, f2))
	assert.False(t, SameType(f1, f3))
	assert.False(t, SameType(f1, f4))
	assert.False(t, SameType(f1, Bool))
	assert.False(t, SameType(Int, nil))
	assert.True(t, SameType(nil, nil))

	assert.True(t, IsError(Error))
	assert.False(t, IsError(f1))
	assert.Equal(t, "(Int) -> Bool", f1.String())
	assert.Equal(t, "() -> Bool", f4.String())
}

func TestParsePrimitive(t *testing.T) {
	for name, want := range map[string]PrimitiveType{"Int": Int, "Bool": Bool, "String": String, "Void": Void} {
		got, ok := ParsePrimitive(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}
	_, ok := ParsePrimitive("ERROR")
	assert.False(t, ok)
	_, ok = ParsePrimitive("int")
	assert.False(t, ok)
}

func TestDumpAndString(t *testing.T) {
	g := NewGlobalScope()
	g.Define("f", FunctionType{Params: []PrimitiveType{Int}, Return: Int})
	fs := g.CreateChildScope("f", Int)
	fs.DefineParam("n", Int)
	m := g.CreateChildScope(MainScopeName, Void)
	m.Define("x", Bool)

	want := "scope $global\n" +
		"  func f : (Int) -> Int\n" +
		"  scope $main -> Void\n" +
		"    var #0 x : Bool\n" +
		"  scope f -> Int\n" +
		"    param #0 n : Int\n"
	assert.Equal(t, want, Dump(g))

	assert.Equal(t, "scope: $main returns Void\n  x : Bool", m.String())
	assert.Equal(t, "scope: $global returns None\n  f : (Int) -> Int", g.String())

	sym, _ := fs.ResolveLocally("n")
	assert.Equal(t, "Symbol n : Int (param)", sym.String())
}
