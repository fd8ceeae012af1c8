package check

import (
	"github.com/nimblelang/nimble/compiler/internal/ast"
	"github.com/nimblelang/nimble/compiler/internal/symtab"
)

// tiny generic stack helpers
func push[T any](s []T, v T) []T { return append(s, v) }
func pop[T any](s []T) []T       { return s[:len(s)-1] }
func top[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[len(s)-1]
}

/* ---------- helpers ---------- */

// declaredType maps a written type name to its primitive. An empty name is
// Void; anything unknown is Error.
func declaredType(t string) symtab.PrimitiveType {
	if t == "" {
		return symtab.Void
	}
	if p, ok := symtab.ParsePrimitive(t); ok {
		return p
	}
	return symtab.Error
}

func funcType(fn *ast.FuncDef) symtab.FunctionType {
	ft := symtab.FunctionType{Return: declaredType(fn.Ret)}
	for _, p := range fn.Params {
		ft.Params = append(ft.Params, declaredType(p.Type))
	}
	return ft
}
