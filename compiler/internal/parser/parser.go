package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/nimblelang/nimble/compiler/internal/ast"
	"github.com/nimblelang/nimble/compiler/internal/diag"
	"github.com/nimblelang/nimble/compiler/internal/lexer"
)

// Parser is a recursive-descent parser over a pre-lexed token slice. It stops
// at the first syntax error.
type Parser struct {
	toks   []lexer.Token
	pos    int
	nextID ast.NodeID
}

func New(src string) *Parser {
	return &Parser{toks: lexer.All(lexer.NewSource(src))}
}

// ParseScript parses a complete program.
func ParseScript(src string) (*ast.Script, error) {
	return New(src).ParseScript()
}

// ParseExpr parses a standalone expression.
func ParseExpr(src string) (ast.Expr, error) {
	p := New(src)
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.TokEOF) {
		return nil, p.unexpected("end of expression")
	}
	return e, nil
}

// IsIncomplete reports whether err was caused by input that ended in the
// middle of a construct, so more input could complete it.
func IsIncomplete(err error) bool {
	var d *diag.Diagnostic
	return errors.As(err, &d) && d.Code == diag.SyntaxCode("unexpected_eof")
}

/* ---------- token cursor ---------- */

func (p *Parser) tok() lexer.Token { return p.toks[p.pos] }
func (p *Parser) at(k lexer.TokKind) bool { return p.tok().Kind == k }
func (p *Parser) peekKind(off int) lexer.TokKind {
	if p.pos+off >= len(p.toks) {
		return lexer.TokEOF
	}
	return p.toks[p.pos+off].Kind
}

func (p *Parser) next() lexer.Token {
	t := p.toks[p.pos]
	if t.Kind != lexer.TokEOF {
		p.pos++
	}
	return t
}

func (p *Parser) accept(k lexer.TokKind) bool {
	if p.at(k) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(k lexer.TokKind) (lexer.Token, error) {
	if !p.at(k) {
		return p.tok(), p.unexpected(quote(k.String()))
	}
	return p.next(), nil
}

func quote(s string) string { return "'" + s + "'" }

func tokSpan(t lexer.Token) diag.Span {
	return diag.Span{
		Start: diag.Pos{Line: t.Line, Col: t.Col},
		End:   diag.Pos{Line: t.Line, Col: t.End()},
	}
}

// unexpected reports the current token, naming what was wanted instead.
func (p *Parser) unexpected(want string) error {
	t := p.tok()
	sp := tokSpan(t)
	switch {
	case t.Kind == lexer.TokEOF:
		return diag.Errorf(sp, diag.SyntaxCode("unexpected_eof"), "unexpected end of input, expected %s", want)
	case t.Kind == lexer.TokIllegal && strings.HasPrefix(t.Lex, `"`):
		return diag.Errorf(sp, diag.SyntaxCode("unterminated_string"), "unterminated string %s", t.Lex)
	case t.Kind == lexer.TokIllegal:
		return diag.Errorf(sp, diag.SyntaxCode("unknown_char"), "unknown character %s", strconv.Quote(t.Lex))
	default:
		return diag.Errorf(sp, diag.SyntaxCode("unexpected_token"), "unexpected %s, expected %s", quote(t.Lex), want)
	}
}

// meta closes a node that began at token index start and ends just before
// the cursor. An empty node sits at the current token with empty text.
func (p *Parser) meta(start int) ast.Meta {
	p.nextID++
	if start >= p.pos {
		t := p.tok()
		here := diag.Pos{Line: t.Line, Col: t.Col}
		return ast.At(p.nextID, diag.Span{Start: here, End: here}, "")
	}
	first, last := p.toks[start], p.toks[p.pos-1]
	var b strings.Builder
	for _, t := range p.toks[start:p.pos] {
		b.WriteString(t.Lex)
	}
	sp := diag.Span{
		Start: diag.Pos{Line: first.Line, Col: first.Col},
		End:   diag.Pos{Line: last.Line, Col: last.End()},
	}
	return ast.At(p.nextID, sp, b.String())
}

/* ---------- program structure ---------- */

func (p *Parser) ParseScript() (*ast.Script, error) {
	start := p.pos
	var funcs []*ast.FuncDef
	for p.at(lexer.TokFunc) {
		fn, err := p.parseFuncDef()
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, fn)
	}

	mainStart := p.pos
	vars, err := p.parseVarBlock()
	if err != nil {
		return nil, err
	}
	stmts, err := p.parseStmts(lexer.TokEOF)
	if err != nil {
		return nil, err
	}
	main := &ast.Main{Vars: vars, Stmts: stmts}
	main.Meta = p.meta(mainStart)

	if _, err := p.expect(lexer.TokEOF); err != nil {
		return nil, err
	}
	s := &ast.Script{Funcs: funcs, Main: main}
	s.Meta = p.meta(start)
	return s, nil
}

func (p *Parser) parseFuncDef() (*ast.FuncDef, error) {
	// func <name> "(" params? ")" (":" TYPE)? body
	start := p.pos
	if _, err := p.expect(lexer.TokFunc); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.TokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokLParen); err != nil {
		return nil, err
	}

	var params []*ast.Param
	if !p.accept(lexer.TokRParen) {
		for {
			prm, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, prm)
			if p.accept(lexer.TokComma) {
				continue
			}
			if _, err := p.expect(lexer.TokRParen); err != nil {
				return nil, err
			}
			break
		}
	}

	ret := ""
	if p.accept(lexer.TokColon) {
		t, err := p.expect(lexer.TokType)
		if err != nil {
			return nil, err
		}
		ret = t.Lex
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	fn := &ast.FuncDef{Name: nameTok.Lex, Params: params, Ret: ret, Body: body}
	fn.Meta = p.meta(start)
	return fn, nil
}

func (p *Parser) parseParam() (*ast.Param, error) {
	start := p.pos
	id, err := p.expect(lexer.TokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokColon); err != nil {
		return nil, err
	}
	ty, err := p.expect(lexer.TokType)
	if err != nil {
		return nil, err
	}
	prm := &ast.Param{Name: id.Lex, Type: ty.Lex}
	prm.Meta = p.meta(start)
	return prm, nil
}

func (p *Parser) parseBody() (*ast.Body, error) {
	start := p.pos
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return nil, err
	}
	vars, err := p.parseVarBlock()
	if err != nil {
		return nil, err
	}
	stmts, err := p.parseStmts(lexer.TokRBrace)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokRBrace); err != nil {
		return nil, err
	}
	b := &ast.Body{Vars: vars, Stmts: stmts}
	b.Meta = p.meta(start)
	return b, nil
}

func (p *Parser) parseVarBlock() (*ast.VarBlock, error) {
	start := p.pos
	vb := &ast.VarBlock{}
	for p.at(lexer.TokVar) {
		d, err := p.parseVarDec()
		if err != nil {
			return nil, err
		}
		vb.Decls = append(vb.Decls, d)
	}
	vb.Meta = p.meta(start)
	return vb, nil
}

func (p *Parser) parseVarDec() (*ast.VarDec, error) {
	// var <name> ":" TYPE ("=" expr)?
	start := p.pos
	if _, err := p.expect(lexer.TokVar); err != nil {
		return nil, err
	}
	id, err := p.expect(lexer.TokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokColon); err != nil {
		return nil, err
	}
	ty, err := p.expect(lexer.TokType)
	if err != nil {
		return nil, err
	}
	d := &ast.VarDec{Name: id.Lex, Type: ty.Lex}
	if p.accept(lexer.TokEq) {
		init, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		d.Init = init
	}
	d.Meta = p.meta(start)
	return d, nil
}

// parseStmts reads statements up to (not including) stop and wraps them in a
// Block without braces.
func (p *Parser) parseStmts(stop lexer.TokKind) (*ast.Block, error) {
	start := p.pos
	blk := &ast.Block{}
	for !p.at(stop) && !p.at(lexer.TokEOF) {
		if p.at(lexer.TokVar) {
			return nil, diag.Errorf(tokSpan(p.tok()), diag.SyntaxCode("decl_after_stmt"),
				"variable declarations must come before statements")
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		blk.Stmts = append(blk.Stmts, s)
	}
	blk.Meta = p.meta(start)
	return blk, nil
}

// parseBraceBlock reads "{" stmt* "}" for while and if.
func (p *Parser) parseBraceBlock() (*ast.Block, error) {
	start := p.pos
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return nil, err
	}
	inner, err := p.parseStmts(lexer.TokRBrace)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokRBrace); err != nil {
		return nil, err
	}
	blk := &ast.Block{Stmts: inner.Stmts}
	blk.Meta = p.meta(start)
	return blk, nil
}

/* ---------- statements ---------- */

func (p *Parser) parseStmt() (ast.Stmt, error) {
	start := p.pos
	switch p.tok().Kind {
	case lexer.TokIdent:
		if p.peekKind(1) == lexer.TokLParen {
			call, err := p.parseCall()
			if err != nil {
				return nil, err
			}
			s := &ast.CallStmt{Call: call}
			s.Meta = p.meta(start)
			return s, nil
		}
		id := p.next()
		if _, err := p.expect(lexer.TokEq); err != nil {
			return nil, err
		}
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		s := &ast.Assign{Name: id.Lex, X: x}
		s.Meta = p.meta(start)
		return s, nil

	case lexer.TokWhile:
		p.next()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBraceBlock()
		if err != nil {
			return nil, err
		}
		s := &ast.While{Cond: cond, Body: body}
		s.Meta = p.meta(start)
		return s, nil

	case lexer.TokIf:
		p.next()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		then, err := p.parseBraceBlock()
		if err != nil {
			return nil, err
		}
		s := &ast.If{Cond: cond, Then: then}
		if p.accept(lexer.TokElse) {
			els, err := p.parseBraceBlock()
			if err != nil {
				return nil, err
			}
			s.Else = els
		}
		s.Meta = p.meta(start)
		return s, nil

	case lexer.TokPrint:
		p.next()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		s := &ast.Print{X: x}
		s.Meta = p.meta(start)
		return s, nil

	case lexer.TokReturn:
		ret := p.next()
		s := &ast.Return{}
		// a statement ends at the newline: the value must share the line
		if startsExpr(p.tok().Kind) && p.tok().Line == ret.Line {
			x, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			s.X = x
		}
		s.Meta = p.meta(start)
		return s, nil

	default:
		return nil, p.unexpected("statement")
	}
}

func startsExpr(k lexer.TokKind) bool {
	switch k {
	case lexer.TokInt, lexer.TokStr, lexer.TokTrue, lexer.TokFalse, lexer.TokIdent,
		lexer.TokLParen, lexer.TokMinus, lexer.TokBang:
		return true
	}
	return false
}

/* ---------- expressions ---------- */

// precedence: compare < add/sub < mul/div < unary < primary; binary levels
// associate to the left.
func (p *Parser) parseExpr() (ast.Expr, error) {
	start := p.pos
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	for p.tok().Kind.IsCompare() {
		op := p.next().Lex
		right, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		c := &ast.Compare{Op: op, Left: left, Right: right}
		c.Meta = p.meta(start)
		left = c
	}
	return left, nil
}

func (p *Parser) parseAddSub() (ast.Expr, error) {
	start := p.pos
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.TokPlus) || p.at(lexer.TokMinus) {
		op := p.next().Lex
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		e := &ast.AddSub{Op: op, Left: left, Right: right}
		e.Meta = p.meta(start)
		left = e
	}
	return left, nil
}

func (p *Parser) parseMulDiv() (ast.Expr, error) {
	start := p.pos
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.TokStar) || p.at(lexer.TokSlash) {
		op := p.next().Lex
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		e := &ast.MulDiv{Op: op, Left: left, Right: right}
		e.Meta = p.meta(start)
		left = e
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if !p.at(lexer.TokMinus) && !p.at(lexer.TokBang) {
		return p.parsePrimary()
	}
	start := p.pos
	op := p.next().Lex
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	n := &ast.Neg{Op: op, X: x}
	n.Meta = p.meta(start)
	return n, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	start := p.pos
	switch t := p.tok(); t.Kind {
	case lexer.TokInt:
		p.next()
		e := &ast.IntLit{Value: t.Lex}
		e.Meta = p.meta(start)
		return e, nil
	case lexer.TokStr:
		p.next()
		e := &ast.StrLit{Value: t.Lex}
		e.Meta = p.meta(start)
		return e, nil
	case lexer.TokTrue, lexer.TokFalse:
		p.next()
		e := &ast.BoolLit{Value: t.Kind == lexer.TokTrue}
		e.Meta = p.meta(start)
		return e, nil
	case lexer.TokIdent:
		if p.peekKind(1) == lexer.TokLParen {
			return p.parseCall()
		}
		p.next()
		e := &ast.Variable{Name: t.Lex}
		e.Meta = p.meta(start)
		return e, nil
	case lexer.TokLParen:
		p.next()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokRParen); err != nil {
			return nil, err
		}
		e := &ast.Parens{X: x}
		e.Meta = p.meta(start)
		return e, nil
	default:
		return nil, p.unexpected("expression")
	}
}

func (p *Parser) parseCall() (*ast.CallExpr, error) {
	// <name> "(" (expr ("," expr)*)? ")"
	start := p.pos
	id, err := p.expect(lexer.TokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokLParen); err != nil {
		return nil, err
	}
	var args []ast.Expr
	if !p.accept(lexer.TokRParen) {
		for {
			a, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.accept(lexer.TokComma) {
				continue
			}
			if _, err := p.expect(lexer.TokRParen); err != nil {
				return nil, err
			}
			break
		}
	}
	c := &ast.CallExpr{Name: id.Lex, Args: args}
	c.Meta = p.meta(start)
	return c, nil
}
