package ast

import (
	"github.com/nimblelang/nimble/compiler/internal/diag"
)

// NodeID identifies a node within one parse. IDs are dense and start at 1,
// so later passes can key side tables by them.
type NodeID int

/*** NODES ***/

type Node interface {
	ID() NodeID
	Span() diag.Span
	// Text is the node's exact source text: its token lexemes concatenated
	// without the whitespace between them.
	Text() string
	node()
}

// Meta carries the identity and location every node embeds.
type Meta struct {
	id   NodeID
	span diag.Span
	text string
}

// At builds the Meta for a node the parser has just finished.
func At(id NodeID, sp diag.Span, text string) Meta {
	return Meta{id: id, span: sp, text: text}
}

func (m Meta) ID() NodeID      { return m.id }
func (m Meta) Span() diag.Span { return m.span }
func (m Meta) Text() string    { return m.text }
func (Meta) node()             {}

// Script is the root: zero or more function definitions, then the main block.
type Script struct {
	Meta
	Funcs []*FuncDef
	Main  *Main
}

type FuncDef struct {
	Meta
	Name   string
	Params []*Param
	Ret    string // textual type; empty means Void
	Body   *Body
}

type Param struct {
	Meta
	Name string
	Type string
}

// Main is the program's entry block, the statements after the last function.
type Main struct {
	Meta
	Vars  *VarBlock
	Stmts *Block
}

// Body is a function body: declarations first, then statements.
type Body struct {
	Meta
	Vars  *VarBlock
	Stmts *Block
}

type VarBlock struct {
	Meta
	Decls []*VarDec
}

type Block struct {
	Meta
	Stmts []Stmt
}

type VarDec struct {
	Meta
	Name string
	Type string
	Init Expr // may be nil
}

/*** STATEMENTS ***/

type Stmt interface {
	Node
	stmt()
}

type Assign struct {
	Meta
	Name string
	X    Expr
}

type While struct {
	Meta
	Cond Expr
	Body *Block
}

type If struct {
	Meta
	Cond Expr
	Then *Block
	Else *Block // nil if absent
}

type Print struct {
	Meta
	X Expr
}

type Return struct {
	Meta
	X Expr // may be nil
}

// CallStmt is a call used for its effect.
type CallStmt struct {
	Meta
	Call *CallExpr
}

func (*Assign) stmt()   {}
func (*While) stmt()    {}
func (*If) stmt()       {}
func (*Print) stmt()    {}
func (*Return) stmt()   {}
func (*CallStmt) stmt() {}

/*** EXPRESSIONS ***/

type Expr interface {
	Node
	expr()
}

type IntLit struct {
	Meta
	Value string
}

// StrLit keeps the quoted lexeme as written.
type StrLit struct {
	Meta
	Value string
}

type BoolLit struct {
	Meta
	Value bool
}

type Variable struct {
	Meta
	Name string
}

// Neg is a prefix "-" or "!".
type Neg struct {
	Meta
	Op string
	X  Expr
}

type Parens struct {
	Meta
	X Expr
}

// MulDiv, AddSub and Compare are the three binary precedence levels.
type MulDiv struct {
	Meta
	Op          string
	Left, Right Expr
}

type AddSub struct {
	Meta
	Op          string
	Left, Right Expr
}

type Compare struct {
	Meta
	Op          string
	Left, Right Expr
}

type CallExpr struct {
	Meta
	Name string
	Args []Expr
}

func (*IntLit) expr()   {}
func (*StrLit) expr()   {}
func (*BoolLit) expr()  {}
func (*Variable) expr() {}
func (*Neg) expr()      {}
func (*Parens) expr()   {}
func (*MulDiv) expr()   {}
func (*AddSub) expr()   {}
func (*Compare) expr()  {}
func (*CallExpr) expr() {}

// Binary exposes the operands of any of the three binary node kinds.
func Binary(e Expr) (op string, left, right Expr, ok bool) {
	switch b := e.(type) {
	case *MulDiv:
		return b.Op, b.Left, b.Right, true
	case *AddSub:
		return b.Op, b.Left, b.Right, true
	case *Compare:
		return b.Op, b.Left, b.Right, true
	}
	return "", nil, nil, false
}
