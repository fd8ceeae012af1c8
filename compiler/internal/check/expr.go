package check

import (
	"fmt"

	"github.com/nimblelang/nimble/compiler/internal/ast"
	"github.com/nimblelang/nimble/compiler/internal/diag"
	"github.com/nimblelang/nimble/compiler/internal/symtab"
)

/* ---------- expressions ---------- */

// inferExpr types e after its operands, records the result and returns it.
func (c *checker) inferExpr(e ast.Expr) symtab.Type {
	t := c.exprType(e)
	c.types.Set(e, t)
	return t
}

func (c *checker) exprType(e ast.Expr) symtab.Type {
	switch v := e.(type) {
	case *ast.IntLit:
		return symtab.Int
	case *ast.StrLit:
		return symtab.String
	case *ast.BoolLit:
		return symtab.Bool

	case *ast.Variable:
		sym, ok := c.cur.Resolve(v.Name)
		if !ok || symtab.IsError(sym.Type) {
			c.report(v, diag.UndefinedName, "Variable [%s] is undefined.", v.Name)
			return symtab.Error
		}
		c.markRead(sym)
		return sym.Type

	case *ast.Parens:
		inner := c.inferExpr(v.X)
		if symtab.IsError(inner) && c.opts.ReportParenErrors {
			c.report(v, diag.InvalidBinaryOp, "Parentheses contain expression of type %s.", symtab.Error)
		}
		return inner

	case *ast.Neg:
		xt := c.inferExpr(v.X)
		switch {
		case v.Op == "-" && symtab.SameType(xt, symtab.Int):
			return symtab.Int
		case v.Op == "!" && symtab.SameType(xt, symtab.Bool):
			return symtab.Bool
		}
		c.report(v, diag.InvalidNegation, "Can't apply %s to [%s]", v.Op, xt)
		return symtab.Error

	case *ast.MulDiv:
		lt, rt := c.inferExpr(v.Left), c.inferExpr(v.Right)
		if bothInt(lt, rt) {
			return symtab.Int
		}
		c.report(v, diag.InvalidBinaryOp, "Can't multiply or divide %s with/by %s", lt, rt)
		return symtab.Error

	case *ast.AddSub:
		lt, rt := c.inferExpr(v.Left), c.inferExpr(v.Right)
		if bothInt(lt, rt) {
			return symtab.Int
		}
		c.report(v, diag.InvalidBinaryOp, "Can't apply %s between non-integer type expression(s).", v.Op)
		return symtab.Error

	case *ast.Compare:
		lt, rt := c.inferExpr(v.Left), c.inferExpr(v.Right)
		if bothInt(lt, rt) {
			return symtab.Bool
		}
		c.report(v, diag.InvalidBinaryOp, "Can't compare two non-integer type expressions.")
		return symtab.Error

	case *ast.CallExpr:
		return c.callType(v)

	default:
		panic(fmt.Sprintf("check: unexpected expression %T", e))
	}
}

func bothInt(l, r symtab.Type) bool {
	return symtab.SameType(l, symtab.Int) && symtab.SameType(r, symtab.Int)
}

// callType checks a call against the callee's signature. An argument that is
// already ERROR makes the call ERROR without another report.
func (c *checker) callType(v *ast.CallExpr) symtab.Type {
	args := make([]symtab.Type, len(v.Args))
	for i, a := range v.Args {
		args[i] = c.inferExpr(a)
	}

	// an ERROR binding already carries its own diagnostic
	sym, ok := c.cur.Resolve(v.Name)
	if !ok || symtab.IsError(sym.Type) {
		c.report(v, diag.UndefinedName, "Function [%s] is undefined.", v.Name)
		return symtab.Error
	}
	ft, ok := sym.Type.(symtab.FunctionType)
	if !ok {
		c.report(v, diag.InvalidCall, "[%s] is of type %s and can't be called.", v.Name, sym.Type)
		return symtab.Error
	}
	if len(args) != len(ft.Params) {
		c.report(v, diag.InvalidCall, "Function [%s] takes %d argument(s), got %d.", v.Name, len(ft.Params), len(args))
		return symtab.Error
	}
	poisoned := false
	for i, at := range args {
		if symtab.IsError(at) {
			poisoned = true
			continue
		}
		if !symtab.SameType(at, ft.Params[i]) {
			c.report(v, diag.InvalidCall, "Argument %d of [%s] must be %s, not %s.", i+1, v.Name, ft.Params[i], at)
			return symtab.Error
		}
	}
	if poisoned {
		return symtab.Error
	}
	return ft.Return
}

// typeOf returns the recorded type of an already inferred node.
func (c *checker) typeOf(n ast.Node) symtab.Type {
	t, ok := c.types.Of(n)
	if !ok {
		panic(fmt.Sprintf("check: no type recorded for %q", n.Text()))
	}
	return t
}
