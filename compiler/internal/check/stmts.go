package check

import (
	"github.com/nimblelang/nimble/compiler/internal/ast"
	"github.com/nimblelang/nimble/compiler/internal/diag"
	"github.com/nimblelang/nimble/compiler/internal/symtab"
)

/* ---------- functions ---------- */

func (c *checker) checkFunc(fn *ast.FuncDef) {
	if c.funcsSeen[fn.Name] {
		c.report(fn, diag.DuplicateName, "Function [%s] is already defined. No duplicates are allowed.", fn.Name)
	}
	c.funcsSeen[fn.Name] = true

	seen := map[string]bool{}
	for _, p := range fn.Params {
		if seen[p.Name] {
			c.report(p, diag.DuplicateName, "Parameter [%s] is already defined in [%s].", p.Name, fn.Name)
		}
		seen[p.Name] = true
	}

	// The scope under fn.Name belongs to the last definition; a shadowed
	// body would be checked against the wrong parameters.
	if last, ok := c.lastDef[fn.Name]; ok && last != fn {
		c.trace.Debug("skip shadowed function", "name", fn.Name, "line", fn.Span().Start.Line)
		return
	}

	c.enter(fn.Name, func() {
		c.withLocals(func() {
			declared := map[string]bool{}
			for _, p := range fn.Params {
				if declared[p.Name] {
					continue
				}
				declared[p.Name] = true
				if sym, ok := c.cur.ResolveLocally(p.Name); ok {
					c.declare(sym, p)
				}
			}

			returned := c.withBlock(func() { c.walk(fn.Body) })

			// Non-void fallthrough warning
			if ret := c.cur.ReturnType; !symtab.SameType(ret, symtab.Void) && !returned {
				c.warn(fn, "missing_return", "function %q returns %s but may fall through without an explicit return", fn.Name, ret)
			}
		})
	})
}

/* ---------- declarations ---------- */

func (c *checker) checkVarDec(d *ast.VarDec) {
	if d.Init != nil {
		c.inferExpr(d.Init)
	}
	want := declaredType(d.Type)

	if _, exists := c.cur.Resolve(d.Name); exists {
		c.cur.Define(d.Name, symtab.Error)
		c.report(d, diag.DuplicateName, "Previously declared variable already has name [%s]. No duplicates are allowed.", d.Name)
		return
	}
	if d.Init != nil {
		if got := c.typeOf(d.Init); !symtab.SameType(got, want) {
			c.cur.Define(d.Name, symtab.Error)
			c.types.Set(d, symtab.Error)
			c.report(d, diag.AssignToWrongType, "Can't assign %s to variable of type %s", got, d.Type)
			return
		}
	}
	sym := c.cur.Define(d.Name, want)
	c.declare(sym, d)
}

/* ---------- statements ---------- */

func (c *checker) checkBlock(blk *ast.Block) {
	warned := false
	for _, s := range blk.Stmts {
		if br := top(c.blockReturned); br != nil && *br && !warned {
			c.warn(s, "unreachable", "unreachable code: statement after return")
			warned = true
		}
		c.checkStmt(s)
	}
}

func (c *checker) checkStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Assign:
		xt := c.inferExpr(st.X)
		sym, ok := c.cur.Resolve(st.Name)
		if !ok {
			c.report(st, diag.UndefinedName, "Can't assign value to undefined variable [%s]", st.Name)
			return
		}
		if !symtab.SameType(sym.Type, xt) {
			c.report(st, diag.AssignToWrongType, "Can't assign value of type %s to variable [%s] of type %s.", xt, st.Name, sym.Type)
		}

	case *ast.While:
		ct := c.inferExpr(st.Cond)
		c.withBlock(func() { c.checkBlock(st.Body) })
		if !symtab.SameType(ct, symtab.Bool) {
			c.report(st, diag.ConditionNotBool, "while-loop condition [%s] can only be of type Bool, not %s.", st.Cond.Text(), ct)
		}

	case *ast.If:
		ct := c.inferExpr(st.Cond)
		c.withBlock(func() { c.checkBlock(st.Then) })
		if st.Else != nil {
			c.withBlock(func() { c.checkBlock(st.Else) })
		}
		if !symtab.SameType(ct, symtab.Bool) {
			c.report(st, diag.ConditionNotBool, "if-statement condition [%s] can only be of type Bool, not %s.", st.Cond.Text(), ct)
		}

	case *ast.Print:
		if symtab.IsError(c.inferExpr(st.X)) {
			c.report(st, diag.UnprintableExpression, "Can't print expression of type %s.", symtab.Error)
		}

	case *ast.Return:
		c.checkReturn(st)
		if br := top(c.blockReturned); br != nil {
			*br = true
		}

	case *ast.CallStmt:
		c.inferExpr(st.Call)
	}
}

func (c *checker) checkReturn(st *ast.Return) {
	var want symtab.Type = symtab.Void
	if c.cur.ReturnType != nil {
		want = c.cur.ReturnType
	}
	isVoid := symtab.SameType(want, symtab.Void)

	if st.X == nil {
		if !isVoid {
			c.report(st, diag.InvalidReturn, "Missing return value in [%s], which returns %s.", c.cur.Name, want)
		}
		return
	}
	got := c.inferExpr(st.X)
	switch {
	case isVoid:
		c.report(st, diag.InvalidReturn, "Can't return a value from [%s], which returns Void.", c.cur.Name)
	case symtab.IsError(got):
		// already reported where it failed
	case !symtab.SameType(got, want):
		c.report(st, diag.InvalidReturn, "[%s] must return %s, not %s.", c.cur.Name, want, got)
	}
}

/* ---------- block bookkeeping ---------- */

// withBlock runs body in a fresh return-tracking frame and reports whether
// the block's own statements reached a return.
func (c *checker) withBlock(body func()) bool {
	c.blockReturned = push(c.blockReturned, false)
	body()
	returned := *top(c.blockReturned)
	c.blockReturned = pop(c.blockReturned)
	return returned
}

// withLocals collects the variables declared while body runs and warns about
// those never read. Names starting with "_" are exempt.
func (c *checker) withLocals(body func()) {
	prev := c.locals
	c.locals = nil
	body()
	for _, d := range c.locals {
		if d.read || d.sym.Name[0] == '_' || symtab.IsError(d.sym.Type) {
			continue
		}
		// a later duplicate replaced this binding; the duplicate is the error
		if live, ok := c.cur.ResolveLocally(d.sym.Name); !ok || live != d.sym {
			continue
		}
		c.warn(d.node, "unused", "unused variable or parameter %q", d.sym.Name)
	}
	c.locals = prev
}

func (c *checker) declare(sym *symtab.Symbol, n ast.Node) {
	c.locals = append(c.locals, &declared{sym: sym, node: n})
}

func (c *checker) markRead(sym *symtab.Symbol) {
	for i := len(c.locals) - 1; i >= 0; i-- {
		if c.locals[i].sym == sym {
			c.locals[i].read = true
			return
		}
	}
}
