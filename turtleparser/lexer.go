package turtleparser

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"
)

// LexErrorHandler receives lexical errors as the Lexer encounters them.
type LexErrorHandler func(*LexError)

// Lexer tokenizes turtle source text into a stream of tokens.
//
// Illegal input never stops the scan: the offending character is recorded
// as a *LexError, skipped, and scanning resumes.
type Lexer struct {
	src     []byte
	pos     int // current byte offset
	line    int // current line (1-based)
	col     int // current column (1-based)
	peeked  *Token
	errs    []*LexError
	onError LexErrorHandler
}

// NewLexer creates a new Lexer for the given source bytes.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// HandleErrors registers fn to be called for every lexical error, in
// addition to the error being recorded in Errors.
func (l *Lexer) HandleErrors(fn LexErrorHandler) {
	l.onError = fn
}

// Errors returns the lexical errors reported so far, in source order.
func (l *Lexer) Errors() []*LexError {
	return l.errs
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	if l.peeked != nil {
		return *l.peeked
	}
	tok := l.scan()
	l.peeked = &tok
	return tok
}

// Next returns the next token and advances the lexer. Once the input is
// exhausted every call returns a TokenEOF token.
func (l *Lexer) Next() Token {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok
	}
	return l.scan()
}

// All returns the remaining tokens as a lazy sequence. The EOF token is not
// yielded.
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := l.Next()
			if tok.Kind == TokenEOF || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize scans src to the end and returns every token (without EOF)
// together with the lexical errors met along the way.
func Tokenize(src []byte) ([]Token, []*LexError) {
	l := NewLexer(src)
	var tokens []Token
	for tok := range l.All() {
		tokens = append(tokens, tok)
	}
	return tokens, l.Errors()
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// skipIgnored skips spaces, tabs and newline runs. Newlines only move the
// line counter.
func (l *Lexer) skipIgnored() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\n':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) report(pos Position, char, msg string) {
	err := &LexError{
		ParseError: ParseError{Message: msg, Pos: pos},
		Char:       char,
	}
	l.errs = append(l.errs, err)
	if l.onError != nil {
		l.onError(err)
	}
}

func (l *Lexer) scan() Token {
	for {
		l.skipIgnored()

		if l.atEnd() {
			return Token{Kind: TokenEOF, Pos: l.currentPos()}
		}

		pos := l.currentPos()
		ch := l.peek()

		if kind, ok := punctuation[ch]; ok {
			l.advance()
			return Token{Kind: kind, Literal: string(ch), Pos: pos}
		}

		if isDigit(ch) {
			if tok, ok := l.scanNumber(); ok {
				return tok
			}
			continue
		}

		if isIdentStart(ch) {
			return l.scanIdentifier()
		}

		// Skip exactly one character. Invalid UTF-8 decodes as a single byte.
		r, size := utf8.DecodeRune(l.src[l.pos:])
		for range size {
			l.advance()
		}
		char := string(r)
		if r == utf8.RuneError && size == 1 {
			char = string(l.src[pos.Offset : pos.Offset+1])
		}
		l.report(pos, char, fmt.Sprintf("illegal character %q", char))
	}
}

// scanNumber consumes a maximal digit run. It reports false when the run
// does not fit in an int64; the whole run is skipped in that case.
func (l *Lexer) scanNumber() (Token, bool) {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}

	literal := string(l.src[start:l.pos])
	n, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		l.report(pos, literal, fmt.Sprintf("number %s out of range", literal))
		return Token{}, false
	}
	return Token{Kind: TokenNumber, Literal: literal, Value: n, Pos: pos}, true
}

func (l *Lexer) scanIdentifier() Token {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isIdentPart(l.peek()) {
		l.advance()
	}

	literal := string(l.src[start:l.pos])

	if kind, ok := reserved[strings.ToUpper(literal)]; ok {
		return Token{Kind: kind, Literal: literal, Pos: pos}
	}

	return Token{Kind: TokenID, Literal: literal, Pos: pos}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
