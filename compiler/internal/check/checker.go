package check

import (
	"log/slog"

	"github.com/nimblelang/nimble/compiler/internal/ast"
	"github.com/nimblelang/nimble/compiler/internal/diag"
	"github.com/nimblelang/nimble/compiler/internal/symtab"
)

// Result bundles everything one analysis produces.
type Result struct {
	Global   *symtab.Scope
	Types    *Types
	Log      *diag.Log
	Warnings []Warning
}

// OK reports whether the program is semantically valid. Warnings do not count.
func (r *Result) OK() bool { return r.Log.Empty() }

// Analyze runs both passes over n with a fresh global scope.
func Analyze(n ast.Node, opts Options) *Result {
	r := &Result{
		Global: symtab.NewGlobalScope(),
		Types:  NewTypes(),
		Log:    diag.NewLog(),
	}
	DefineScopes(n, r.Global, opts)
	r.Warnings = InferTypes(n, r.Global, r.Types, r.Log, opts)
	opts.logger().Debug("analysis done",
		"errors", r.Log.TotalEntries(),
		"warnings", len(r.Warnings),
		"nodes", ast.Count(n),
		"typed", r.Types.Len(),
		"scopes", r.Global.Table().Len())
	return r
}

/* ---------- pass 2: inference and checking ---------- */

type checker struct {
	cur   *symtab.Scope
	types *Types
	log   *diag.Log
	opts  Options
	trace *slog.Logger

	funcsSeen map[string]bool
	// lastDef holds the definition that owns each function name's scope;
	// earlier definitions of the same name are shadowed.
	lastDef map[string]*ast.FuncDef

	warnings      []Warning
	locals        []*declared
	blockReturned []bool
}

// declared tracks a variable or parameter for the unused warning.
type declared struct {
	sym  *symtab.Symbol
	node ast.Node
	read bool
}

// InferTypes walks n against the scopes DefineScopes built under global,
// recording every expression's type in types and every violation in log.
// It never stops early. It panics if a scope pass 1 should have created is
// missing.
func InferTypes(n ast.Node, global *symtab.Scope, types *Types, log *diag.Log, opts Options) []Warning {
	c := &checker{
		cur:       global,
		types:     types,
		log:       log,
		opts:      opts,
		trace:     opts.logger(),
		funcsSeen: map[string]bool{},
		lastDef:   map[string]*ast.FuncDef{},
	}
	c.walk(n)
	return c.warnings
}

// walk dispatches on the node kind. Expressions and statements go through
// their own switches so each child is finished before its parent.
func (c *checker) walk(n ast.Node) {
	switch v := n.(type) {
	case *ast.Script:
		for _, fn := range v.Funcs {
			c.lastDef[fn.Name] = fn
		}
		for _, fn := range v.Funcs {
			c.walk(fn)
		}
		if v.Main != nil {
			c.walk(v.Main)
		}
	case *ast.FuncDef:
		c.checkFunc(v)
	case *ast.Main:
		c.enter(symtab.MainScopeName, func() {
			c.withLocals(func() {
				c.withBlock(func() {
					c.walk(v.Vars)
					c.walk(v.Stmts)
				})
			})
		})
	case *ast.Body:
		c.walk(v.Vars)
		c.walk(v.Stmts)
	case *ast.VarBlock:
		for _, d := range v.Decls {
			c.checkVarDec(d)
		}
	case *ast.Block:
		c.checkBlock(v)
	case *ast.VarDec:
		c.checkVarDec(v)
	case *ast.Param:
		// parameters are defined by pass 1
	case ast.Stmt:
		c.checkStmt(v)
	case ast.Expr:
		c.inferExpr(v)
	}
}

// enter moves the cursor into the child scope pass 1 registered under name.
func (c *checker) enter(name string, body func()) {
	child, ok := c.cur.ChildScopeNamed(name)
	if !ok {
		panic("check: scope " + name + " missing under " + c.cur.Name + "; run DefineScopes first")
	}
	prev := c.cur
	c.cur = child
	c.trace.Debug("enter scope", "pass", 2, "scope", name)
	body()
	c.trace.Debug("exit scope", "pass", 2, "scope", name)
	c.cur = prev
}
