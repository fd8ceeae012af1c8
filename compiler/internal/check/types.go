package check

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/nimblelang/nimble/compiler/internal/ast"
	"github.com/nimblelang/nimble/compiler/internal/diag"
	"github.com/nimblelang/nimble/compiler/internal/symtab"
)

/* ---------- type table ---------- */

// Types maps expression nodes to their inferred types. It is filled bottom-up
// during inference, so a node's children are always present before it.
type Types struct {
	byID map[ast.NodeID]Typed
}

// Typed pairs a node with its inferred type.
type Typed struct {
	Node ast.Node
	Type symtab.Type
}

func NewTypes() *Types {
	return &Types{byID: map[ast.NodeID]Typed{}}
}

func (ts *Types) Set(n ast.Node, t symtab.Type) {
	ts.byID[n.ID()] = Typed{Node: n, Type: t}
}

func (ts *Types) Of(n ast.Node) (symtab.Type, bool) {
	e, ok := ts.byID[n.ID()]
	return e.Type, ok
}

func (ts *Types) Len() int { return len(ts.byID) }

// Entries returns every typed node in source order; nodes starting at the
// same position come innermost first.
func (ts *Types) Entries() []Typed {
	out := make([]Typed, 0, len(ts.byID))
	for _, e := range ts.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Node.Span().Start, out[j].Node.Span().Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Col != b.Col {
			return a.Col < b.Col
		}
		return out[i].Node.ID() < out[j].Node.ID()
	})
	return out
}

/* ---------- options ---------- */

type Options struct {
	// ReportParenErrors logs INVALID_BINARY_OP on a parenthesized expression
	// whose inner expression is already ERROR.
	ReportParenErrors bool
	// Warnings enables the unused/unreachable/missing-return checks.
	Warnings bool
	// Logger receives pass tracing at debug level; nil discards it.
	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{ReportParenErrors: true, Warnings: true}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

/* ---------- warnings ---------- */

// Warning is a lightweight checker warning. Warnings never make a program
// invalid.
type Warning struct {
	Span diag.Span
	Code string // e.g., W0001
	Msg  string
}

func (w Warning) String() string {
	if w.Code == "" {
		return "warning: " + w.Msg
	}
	if w.Span.Start.Line == 0 {
		return fmt.Sprintf("%s: %s", w.Code, w.Msg)
	}
	return fmt.Sprintf("%d:%d: %s: %s", w.Span.Start.Line, w.Span.Start.Col, w.Code, w.Msg)
}
