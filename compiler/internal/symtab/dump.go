package symtab

import (
	"strings"

	"github.com/nimblelang/nimble/compiler/internal/term"
)

// Dump renders the scope tree rooted at s, one symbol per line with its
// ordinal, children indented under their parent.
func Dump(s *Scope) string {
	var b strings.Builder
	dumpScope(&b, s, 0)
	return b.String()
}

func dumpScope(b *strings.Builder, s *Scope, depth int) {
	pad := strings.Repeat("  ", depth)
	ret := ""
	if s.ReturnType != nil {
		ret = " -> " + s.ReturnType.String()
	}
	term.Bprintf(b, "%sscope %s%s\n", pad, s.Name, ret)
	for _, sym := range s.Functions() {
		term.Bprintf(b, "%s  func %s : %s\n", pad, sym.Name, sym.Type)
	}
	for _, sym := range s.Parameters() {
		term.Bprintf(b, "%s  param #%d %s : %s\n", pad, sym.Index, sym.Name, sym.Type)
	}
	for _, sym := range s.LocalVariables() {
		term.Bprintf(b, "%s  var #%d %s : %s\n", pad, sym.Index, sym.Name, sym.Type)
	}
	for _, c := range s.ChildScopes() {
		dumpScope(b, c, depth+1)
	}
}
