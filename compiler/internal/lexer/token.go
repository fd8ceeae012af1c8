package lexer

// TokKind enumerates token kinds produced by the lexer.
type TokKind int

const (
	// Special
	TokEOF     TokKind = iota
	TokIllegal         // unknown character or unterminated string

	// Literals/identifiers
	TokIdent
	TokInt
	TokStr
	TokType // Int, Bool, String

	// Keywords
	TokFunc
	TokVar
	TokWhile
	TokIf
	TokElse
	TokPrint
	TokReturn
	TokTrue
	TokFalse

	// Operators/punctuation
	TokEq     // =
	TokPlus   // +
	TokMinus  // -
	TokStar   // *
	TokSlash  // /
	TokBang   // !
	TokLParen // (
	TokRParen // )
	TokLBrace // {
	TokRBrace // }
	TokColon  // :
	TokComma  // ,

	TokLt   // <
	TokLe   // <=
	TokGt   // >
	TokGe   // >=
	TokEqEq // ==
	TokNe   // !=
)

var kindNames = [...]string{
	TokEOF:     "EOF",
	TokIllegal: "ILLEGAL",
	TokIdent:   "IDENT",
	TokInt:     "INT",
	TokStr:     "STRING",
	TokType:    "TYPE",
	TokFunc:    "func",
	TokVar:     "var",
	TokWhile:   "while",
	TokIf:      "if",
	TokElse:    "else",
	TokPrint:   "print",
	TokReturn:  "return",
	TokTrue:    "true",
	TokFalse:   "false",
	TokEq:      "=",
	TokPlus:    "+",
	TokMinus:   "-",
	TokStar:    "*",
	TokSlash:   "/",
	TokBang:    "!",
	TokLParen:  "(",
	TokRParen:  ")",
	TokLBrace:  "{",
	TokRBrace:  "}",
	TokColon:   ":",
	TokComma:   ",",
	TokLt:      "<",
	TokLe:      "<=",
	TokGt:      ">",
	TokGe:      ">=",
	TokEqEq:    "==",
	TokNe:      "!=",
}

func (k TokKind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "TokKind(?)"
}

// IsCompare reports whether k is one of the comparison operators.
func (k TokKind) IsCompare() bool {
	switch k {
	case TokLt, TokLe, TokGt, TokGe, TokEqEq, TokNe:
		return true
	}
	return false
}

// Token is a single lexeme with source position.
type Token struct {
	Kind TokKind
	Lex  string
	Line int
	Col  int
}

// End returns the column just past the last character of the token.
func (t Token) End() int { return t.Col + len([]rune(t.Lex)) }
