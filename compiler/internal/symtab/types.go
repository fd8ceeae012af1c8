package symtab

import (
	"strings"
)

/* ---------- types ---------- */

// Type is either a PrimitiveType or a FunctionType.
type Type interface {
	String() string
	isType()
}

// PrimitiveType is one of the built-in value types, plus Error for a
// failed inference.
type PrimitiveType int

const (
	Int PrimitiveType = iota + 1
	Bool
	String
	Void
	Error
)

func (PrimitiveType) isType() {}

func (p PrimitiveType) String() string {
	switch p {
	case Int:
		return "Int"
	case Bool:
		return "Bool"
	case String:
		return "String"
	case Void:
		return "Void"
	case Error:
		return "ERROR"
	default:
		return "unknown"
	}
}

// FunctionType is compared structurally; use SameType, never ==.
type FunctionType struct {
	Params []PrimitiveType
	Return PrimitiveType
}

func (FunctionType) isType() {}

func (f FunctionType) String() string {
	ps := make([]string, len(f.Params))
	for i, p := range f.Params {
		ps[i] = p.String()
	}
	return "(" + strings.Join(ps, ", ") + ") -> " + f.Return.String()
}

// SameType reports whether a and b denote the same type. Nil equals nil only.
func SameType(a, b Type) bool {
	switch x := a.(type) {
	case PrimitiveType:
		y, ok := b.(PrimitiveType)
		return ok && x == y
	case FunctionType:
		y, ok := b.(FunctionType)
		if !ok || x.Return != y.Return || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if x.Params[i] != y.Params[i] {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		return false
	}
}

// IsError reports whether t is the Error sentinel.
func IsError(t Type) bool {
	p, ok := t.(PrimitiveType)
	return ok && p == Error
}

// ParsePrimitive maps a declared type name to its primitive type.
// Only the names a program may write are accepted.
func ParsePrimitive(name string) (PrimitiveType, bool) {
	switch strings.TrimSpace(name) {
	case "Int":
		return Int, true
	case "Bool":
		return Bool, true
	case "String":
		return String, true
	case "Void":
		return Void, true
	default:
		return 0, false
	}
}
