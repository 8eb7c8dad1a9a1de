package turtleparser

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF    TokenKind = iota
	TokenID               // [A-Za-z_][A-Za-z0-9_]* that is not a reserved word
	TokenNumber           // [0-9]+

	TokenColon  // :
	TokenPlus   // +
	TokenMinus  // -
	TokenTimes  // *
	TokenDivide // /
	TokenLParen // (
	TokenRParen // )

	// Reserved words (upper-cased identifier text checked against reserved)
	TokenIf
	TokenThen
	TokenElse
	TokenEnd
	TokenWhile
	TokenNot
	TokenTo
	TokenAnd
	TokenOr
	TokenSet
)

var tokenNames = map[TokenKind]string{
	TokenEOF:    "EOF",
	TokenID:     "ID",
	TokenNumber: "NUMBER",
	TokenColon:  "COLON",
	TokenPlus:   "PLUS",
	TokenMinus:  "MINUS",
	TokenTimes:  "TIMES",
	TokenDivide: "DIVIDE",
	TokenLParen: "LPAREN",
	TokenRParen: "RPAREN",
	TokenIf:     "IF",
	TokenThen:   "THEN",
	TokenElse:   "ELSE",
	TokenEnd:    "END",
	TokenWhile:  "WHILE",
	TokenNot:    "NOT",
	TokenTo:     "TO",
	TokenAnd:    "AND",
	TokenOr:     "OR",
	TokenSet:    "SET",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsKeyword reports whether k is one of the reserved-word kinds.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenIf && k <= TokenSet
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // source text in its original case
	Value   int64  // parsed integer, only for TokenNumber
	Pos     Position
}

// String returns the token's source text, or "EOF" at end of input.
func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "EOF"
	}
	return t.Literal
}

// reserved maps upper-cased identifier text to its keyword kind.
var reserved = map[string]TokenKind{
	"IF":    TokenIf,
	"THEN":  TokenThen,
	"ELSE":  TokenElse,
	"END":   TokenEnd,
	"WHILE": TokenWhile,
	"NOT":   TokenNot,
	"TO":    TokenTo,
	"AND":   TokenAnd,
	"OR":    TokenOr,
	"SET":   TokenSet,
}

// punctuation maps single-character operators to their token kinds.
var punctuation = map[byte]TokenKind{
	':': TokenColon,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenTimes,
	'/': TokenDivide,
	'(': TokenLParen,
	')': TokenRParen,
}
