package diag

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	line, col int
	text      string
}

func (f fakeNode) Span() Span {
	return Span{Start: Pos{Line: f.line, Col: f.col}, End: Pos{Line: f.line, Col: f.col + len(f.text)}}
}
func (f fakeNode) Text() string { return f.text }

func TestLogIncludes(t *testing.T) {
	l := NewLog()
	l.Add(fakeNode{line: 1, col: 1, text: "!37"}, InvalidNegation, "Can't apply ! to Int")
	l.Add(fakeNode{line: 2, col: 7, text: "x"}, UndefinedName, "Variable [x] is undefined.")

	assert.True(t, l.IncludesExactly(InvalidNegation, 1, "!37"))
	assert.False(t, l.IncludesExactly(UndefinedName, 1, "!37"))
	assert.False(t, l.IncludesExactly(InvalidNegation, 1, "37"), "missing key is not an error")
	assert.False(t, l.IncludesExactly(InvalidNegation, 9, "!37"))

	assert.True(t, l.IncludesOnLine(UndefinedName, 2))
	assert.False(t, l.IncludesOnLine(UndefinedName, 1))
	assert.False(t, l.IncludesOnLine(UndefinedName, 3))

	assert.Equal(t, 2, l.TotalEntries())
	assert.False(t, l.Empty())
	assert.Equal(t, 1, l.CountOf(UndefinedName))
}

func TestLogSameKeyOverwrites(t *testing.T) {
	l := NewLog()
	l.Add(fakeNode{line: 4, col: 1, text: "a+b"}, InvalidBinaryOp, "first")
	l.Add(fakeNode{line: 4, col: 1, text: "c"}, UndefinedName, "other")
	l.Add(fakeNode{line: 4, col: 9, text: "a+b"}, UndefinedName, "second")

	require.Equal(t, 2, l.TotalEntries())
	assert.True(t, l.IncludesExactly(UndefinedName, 4, "a+b"))
	assert.False(t, l.IncludesOnLine(InvalidBinaryOp, 4))

	entries := l.Entries()
	require.Len(t, entries, 2)
	// overwrite keeps the original slot
	assert.Equal(t, "a+b", entries[0].Source)
	assert.Equal(t, "second", entries[0].Message)
	assert.Equal(t, "c", entries[1].Source)
}

func TestLogStringIsLineOrdered(t *testing.T) {
	l := NewLog()
	l.Add(fakeNode{line: 3, col: 1, text: "printx"}, UnprintableExpression, "late")
	l.Add(fakeNode{line: 1, col: 1, text: "y"}, UndefinedName, "early")

	want := "line 1 : UNDEFINED_NAME : early\n    y\n" +
		"line 3 : UNPRINTABLE_EXPRESSION : late\n    printx"
	assert.Equal(t, want, l.String())
	assert.Equal(t, "", NewLog().String())
}

func TestLogMarshalJSON(t *testing.T) {
	l := NewLog()
	l.Add(fakeNode{line: 2, col: 5, text: "5"}, ConditionNotBool, "not bool")

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "CONDITION_NOT_BOOL", got[0]["category"])
	assert.Equal(t, "NSE0006", got[0]["code"])
	assert.EqualValues(t, 2, got[0]["line"])
	assert.Equal(t, "5", got[0]["source"])
}

func TestCategoryCodes(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Categories() {
		code := c.Code()
		assert.True(t, strings.HasPrefix(code, "NSE"), "%s has code %q", c, code)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true

		back, ok := ParseCategory(c.String())
		require.True(t, ok)
		assert.Equal(t, c, back)
	}
	assert.Len(t, seen, 9)
	assert.Equal(t, "Category(42)", Category(42).String())
}

func TestRender(t *testing.T) {
	src := []byte("var x : Int\nprint y\n")
	e := Entry{
		Span:     Span{Start: Pos{Line: 2, Col: 7}, End: Pos{Line: 2, Col: 8}},
		Source:   "y",
		Category: UndefinedName,
		Message:  "Variable [y] is undefined.",
	}
	out := Render(e, "demo.nim", src)
	assert.Contains(t, out, "error[NSE0002]: Variable [y] is undefined.")
	assert.Contains(t, out, " --> demo.nim:2:7")
	assert.Contains(t, out, " 2 | print y")
	assert.Contains(t, out, "   |       ^ undefined name")
	assert.Contains(t, out, "help: declare the variable")
}

func TestDiagnosticError(t *testing.T) {
	d := Errorf(Span{Start: Pos{Line: 3, Col: 4}}, "NSX0001", "unexpected %s", "'}'")
	assert.Equal(t, "3:4: NSX0001: unexpected '}'", d.Error())
	assert.Equal(t, "bare", (&Diagnostic{Msg: "bare"}).Error())
	assert.Equal(t, "NSX0001", SyntaxCode("unexpected_token"))
	assert.Equal(t, "", SyntaxCode("nope"))
}
