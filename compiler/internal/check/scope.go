package check

import (
	"log/slog"

	"github.com/nimblelang/nimble/compiler/internal/ast"
	"github.com/nimblelang/nimble/compiler/internal/symtab"
)

/* ---------- pass 1: scopes and signatures ---------- */

type scoper struct {
	cur *symtab.Scope
	log *slog.Logger
}

// DefineScopes creates the scope tree for n under global: one $main scope
// and one scope per function definition, each function's symbol in the
// enclosing scope and its parameters in its own scope. It records no
// diagnostics; local variables are defined later by InferTypes.
func DefineScopes(n ast.Node, global *symtab.Scope, opts Options) {
	s := &scoper{cur: global, log: opts.logger()}
	s.walk(n)
}

func (s *scoper) walk(n ast.Node) {
	switch v := n.(type) {
	case *ast.Script:
		for _, fn := range v.Funcs {
			s.walk(fn)
		}
		if v.Main != nil {
			s.walk(v.Main)
		}
	case *ast.FuncDef:
		ft := funcType(v)
		s.cur.Define(v.Name, ft)
		child := s.cur.CreateChildScope(v.Name, ft.Return)
		for i, p := range v.Params {
			t := ft.Params[i]
			// a repeated parameter name binds ERROR, like a repeated var
			if _, dup := child.ResolveLocally(p.Name); dup {
				t = symtab.Error
			}
			child.DefineParam(p.Name, t)
		}
		s.within(child, func() { s.walk(v.Body) })
	case *ast.Main:
		child := s.cur.CreateChildScope(symtab.MainScopeName, symtab.Void)
		s.within(child, func() {
			s.walk(v.Vars)
			s.walk(v.Stmts)
		})
	}
	// Bodies, blocks and statements introduce no scopes.
}

func (s *scoper) within(child *symtab.Scope, body func()) {
	prev := s.cur
	s.cur = child
	s.log.Debug("enter scope", "pass", 1, "scope", child.Name)
	body()
	s.log.Debug("exit scope", "pass", 1, "scope", child.Name)
	s.cur = prev
}
