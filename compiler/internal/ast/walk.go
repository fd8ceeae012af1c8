package ast

// Children returns n's direct children in source order. Absent optional
// children (a missing initializer, else branch or return value) are skipped.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch v := n.(type) {
	case *Script:
		for _, f := range v.Funcs {
			out = append(out, f)
		}
		if v.Main != nil {
			out = append(out, v.Main)
		}
	case *FuncDef:
		for _, p := range v.Params {
			out = append(out, p)
		}
		if v.Body != nil {
			out = append(out, v.Body)
		}
	case *Main:
		out = append(out, v.Vars, v.Stmts)
	case *Body:
		out = append(out, v.Vars, v.Stmts)
	case *VarBlock:
		for _, d := range v.Decls {
			out = append(out, d)
		}
	case *Block:
		for _, s := range v.Stmts {
			out = append(out, s)
		}
	case *VarDec:
		if v.Init != nil {
			add(v.Init)
		}
	case *Assign:
		add(v.X)
	case *While:
		add(v.Cond)
		out = append(out, v.Body)
	case *If:
		add(v.Cond)
		out = append(out, v.Then)
		if v.Else != nil {
			out = append(out, v.Else)
		}
	case *Print:
		add(v.X)
	case *Return:
		if v.X != nil {
			add(v.X)
		}
	case *CallStmt:
		out = append(out, v.Call)
	case *Neg:
		add(v.X)
	case *Parens:
		add(v.X)
	case *MulDiv, *AddSub, *Compare:
		_, l, r, _ := Binary(v.(Expr))
		add(l)
		add(r)
	case *CallExpr:
		for _, a := range v.Args {
			add(a)
		}
	}
	return out
}

// Inspect walks the tree rooted at n in pre-order. If fn returns false the
// children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	c := 0
	Inspect(n, func(Node) bool { c++; return true })
	return c
}
