package ast

import (
	"fmt"
	"strings"
)

/*** DUMP (pretty outline for CLI) ***/

func Dump(s *Script) string {
	var b strings.Builder
	for _, fn := range s.Funcs {
		fmt.Fprintf(&b, "func %s(", fn.Name)
		for i, p := range fn.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %s", p.Name, p.Type)
		}
		fmt.Fprintf(&b, ") -> %s:\n", orDefault(fn.Ret, "Void"))
		if fn.Body != nil {
			dumpVars(&b, fn.Body.Vars, 1)
			dumpBlock(&b, fn.Body.Stmts, 1)
		}
		b.WriteString("\n")
	}
	if s.Main != nil {
		b.WriteString("main:\n")
		dumpVars(&b, s.Main.Vars, 1)
		dumpBlock(&b, s.Main.Stmts, 1)
	}
	return b.String()
}

func orDefault(s, d string) string {
	if strings.TrimSpace(s) == "" {
		return d
	}
	return s
}

func dumpVars(b *strings.Builder, vb *VarBlock, depth int) {
	if vb == nil {
		return
	}
	pad := strings.Repeat("  ", depth)
	for _, d := range vb.Decls {
		if d.Init == nil {
			fmt.Fprintf(b, "%svar %s : %s\n", pad, d.Name, d.Type)
		} else {
			fmt.Fprintf(b, "%svar %s : %s = %s\n", pad, d.Name, d.Type, ExprString(d.Init))
		}
	}
}

func dumpBlock(b *strings.Builder, blk *Block, depth int) {
	if blk == nil {
		return
	}
	pad := strings.Repeat("  ", depth)
	for _, s := range blk.Stmts {
		switch st := s.(type) {
		case *If:
			fmt.Fprintf(b, "%sif %s:\n", pad, ExprString(st.Cond))
			dumpBlock(b, st.Then, depth+1)
			if st.Else != nil {
				fmt.Fprintf(b, "%selse:\n", pad)
				dumpBlock(b, st.Else, depth+1)
			}
		case *While:
			fmt.Fprintf(b, "%swhile %s:\n", pad, ExprString(st.Cond))
			dumpBlock(b, st.Body, depth+1)
		default:
			fmt.Fprintf(b, "%s%s\n", pad, stmtString(s))
		}
	}
}

// ExprString renders e with every binary operation parenthesized, so the
// grouping the parser chose is visible.
func ExprString(e Expr) string {
	switch v := e.(type) {
	case *Variable:
		return v.Name
	case *IntLit:
		return v.Value
	case *StrLit:
		return v.Value
	case *BoolLit:
		if v.Value {
			return "true"
		}
		return "false"
	case *CallExpr:
		var parts []string
		for _, a := range v.Args {
			parts = append(parts, ExprString(a))
		}
		return v.Name + "(" + strings.Join(parts, ", ") + ")"
	case *Neg:
		return v.Op + ExprString(v.X)
	case *Parens:
		return "(" + ExprString(v.X) + ")"
	case *MulDiv, *AddSub, *Compare:
		op, l, r, _ := Binary(e)
		return "(" + ExprString(l) + " " + op + " " + ExprString(r) + ")"
	default:
		return "<expr>"
	}
}

func stmtString(s Stmt) string {
	switch st := s.(type) {
	case *Assign:
		return st.Name + " = " + ExprString(st.X)
	case *Print:
		return "print " + ExprString(st.X)
	case *Return:
		if st.X == nil {
			return "return"
		}
		return "return " + ExprString(st.X)
	case *CallStmt:
		return ExprString(st.Call)
	case *If:
		return "if …:"
	case *While:
		return "while …:"
	default:
		return "<stmt>"
	}
}
