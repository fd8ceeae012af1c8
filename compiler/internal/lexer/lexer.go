package lexer

import (
	"unicode"
)

// Lexer scans Nimble source into tokens. Whitespace and newlines are
// insignificant; `//` starts a comment that runs to end of line.
type Lexer struct {
	src []rune
	i   int

	line int
	col  int
}

func New(src string) *Lexer {
	return &Lexer{
		src:  []rune(src),
		line: 1,
		col:  0,
	}
}

func (lx *Lexer) make(kind TokKind, lex string, line, col int) Token {
	return Token{Kind: kind, Lex: lex, Line: line, Col: col}
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.i >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i], true
}

func (lx *Lexer) peekAt(off int) (rune, bool) {
	if lx.i+off >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i+off], true
}

func (lx *Lexer) advance() (rune, bool) {
	ch, ok := lx.peek()
	if !ok {
		return 0, false
	}
	lx.i++
	if ch == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	return ch, true
}

func (lx *Lexer) match(expect rune) bool {
	ch, ok := lx.peek()
	if ok && ch == expect {
		lx.advance()
		return true
	}
	return false
}

func (lx *Lexer) atEOF() bool { return lx.i >= len(lx.src) }

// skipTrivia consumes whitespace and line comments.
func (lx *Lexer) skipTrivia() {
	for {
		ch, ok := lx.peek()
		if !ok {
			return
		}
		if unicode.IsSpace(ch) {
			lx.advance()
			continue
		}
		if ch == '/' {
			if next, ok := lx.peekAt(1); ok && next == '/' {
				for {
					ch, ok := lx.peek()
					if !ok || ch == '\n' {
						break
					}
					lx.advance()
				}
				continue
			}
		}
		return
	}
}

// Next returns the next token. It never panics on user input; once the
// input is exhausted it keeps returning EOF.
func (lx *Lexer) Next() Token {
	lx.skipTrivia()

	if lx.atEOF() {
		return lx.make(TokEOF, "", lx.line, lx.col+1)
	}

	startLine, startCol := lx.line, lx.col+1

	// Identifiers / keywords / type names
	if ch, ok := lx.peek(); ok && isIdentStart(ch) {
		lex := lx.scanIdent()
		if kind, ok := keywordKind(lex); ok {
			return lx.make(kind, lex, startLine, startCol)
		}
		return lx.make(TokIdent, lex, startLine, startCol)
	}

	if ch, ok := lx.peek(); ok && isDigit(ch) {
		lex := lx.scanNumber()
		return lx.make(TokInt, lex, startLine, startCol)
	}

	if ch, ok := lx.peek(); ok && ch == '"' {
		lex, closed := lx.scanString()
		if !closed {
			return lx.make(TokIllegal, lex, startLine, startCol)
		}
		return lx.make(TokStr, lex, startLine, startCol)
	}

	// Two-char operators first
	if lx.match('=') {
		if lx.match('=') {
			return lx.make(TokEqEq, "==", startLine, startCol)
		}
		return lx.make(TokEq, "=", startLine, startCol)
	}
	if lx.match('!') {
		if lx.match('=') {
			return lx.make(TokNe, "!=", startLine, startCol)
		}
		return lx.make(TokBang, "!", startLine, startCol)
	}
	if lx.match('<') {
		if lx.match('=') {
			return lx.make(TokLe, "<=", startLine, startCol)
		}
		return lx.make(TokLt, "<", startLine, startCol)
	}
	if lx.match('>') {
		if lx.match('=') {
			return lx.make(TokGe, ">=", startLine, startCol)
		}
		return lx.make(TokGt, ">", startLine, startCol)
	}

	// Single-char punctuation
	if lx.match('+') {
		return lx.make(TokPlus, "+", startLine, startCol)
	}
	if lx.match('-') {
		return lx.make(TokMinus, "-", startLine, startCol)
	}
	if lx.match('*') {
		return lx.make(TokStar, "*", startLine, startCol)
	}
	if lx.match('/') {
		return lx.make(TokSlash, "/", startLine, startCol)
	}
	if lx.match('(') {
		return lx.make(TokLParen, "(", startLine, startCol)
	}
	if lx.match(')') {
		return lx.make(TokRParen, ")", startLine, startCol)
	}
	if lx.match('{') {
		return lx.make(TokLBrace, "{", startLine, startCol)
	}
	if lx.match('}') {
		return lx.make(TokRBrace, "}", startLine, startCol)
	}
	if lx.match(':') {
		return lx.make(TokColon, ":", startLine, startCol)
	}
	if lx.match(',') {
		return lx.make(TokComma, ",", startLine, startCol)
	}

	// Unknown character: hand it to the parser, which reports it.
	ch, _ := lx.advance()
	return lx.make(TokIllegal, string(ch), startLine, startCol)
}

// ----- scanning helpers -----

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
// isDigit accepts ASCII digits only; Int literals are decimal.
func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || isDigit(r)
}

func (lx *Lexer) scanIdent() string {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || !isIdentPart(r) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}

func (lx *Lexer) scanNumber() string {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || !isDigit(r) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}

// scanString returns the raw lexeme including quotes; closed is false when
// a newline or EOF comes before the closing quote.
func (lx *Lexer) scanString() (lex string, closed bool) {
	start := lx.i
	lx.advance() // consume opening "
	for {
		r, ok := lx.peek()
		if !ok || r == '\n' {
			break
		}
		if r == '\\' {
			lx.advance()
			if next, ok := lx.peek(); ok && next != '\n' {
				lx.advance()
			}
			continue
		}
		lx.advance()
		if r == '"' {
			closed = true
			break
		}
	}
	return string(lx.src[start:lx.i]), closed
}

// keywordKind maps identifiers to keyword and type-name tokens.
func keywordKind(s string) (TokKind, bool) {
	switch s {
	case "func":
		return TokFunc, true
	case "var":
		return TokVar, true
	case "while":
		return TokWhile, true
	case "if":
		return TokIf, true
	case "else":
		return TokElse, true
	case "print":
		return TokPrint, true
	case "return":
		return TokReturn, true
	case "true":
		return TokTrue, true
	case "false":
		return TokFalse, true
	case "Int", "Bool", "String":
		return TokType, true
	default:
		return 0, false
	}
}
