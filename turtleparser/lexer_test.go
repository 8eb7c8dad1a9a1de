package turtleparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTokens(t *testing.T, src string) []Token {
	t.Helper()
	lex := NewLexer([]byte(src))
	var tokens []Token
	for {
		tok := lex.Next()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	require.Empty(t, lex.Errors(), "unexpected lex errors for %q", src)
	return tokens
}

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLexerPunctuation(t *testing.T) {
	tokens := collectTokens(t, ": + - * / ( )")
	expected := []TokenKind{
		TokenColon, TokenPlus, TokenMinus, TokenTimes,
		TokenDivide, TokenLParen, TokenRParen, TokenEOF,
	}
	assert.Equal(t, expected, kinds(tokens))
}

func TestLexerWhitespaceOnly(t *testing.T) {
	for _, src := range []string{"", " ", "\t\t", "\n\n\n", " \n\t \n"} {
		tokens, errs := Tokenize([]byte(src))
		assert.Empty(t, tokens, "input: %q", src)
		assert.Empty(t, errs, "input: %q", src)
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		value int64
	}{
		{"0", 0},
		{"90", 90},
		{"007", 7},
		{"9223372036854775807", 9223372036854775807},
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, TokenNumber, tokens[0].Kind, "input: %s", tt.input)
		assert.Equal(t, tt.input, tokens[0].Literal, "input: %s", tt.input)
		assert.Equal(t, tt.value, tokens[0].Value, "input: %s", tt.input)
	}
}

func TestLexerNumberOutOfRange(t *testing.T) {
	tokens, errs := Tokenize([]byte("FD 99999999999999999999 10"))
	require.Len(t, errs, 1)
	assert.Equal(t, "99999999999999999999", errs[0].Char)
	assert.Equal(t, []TokenKind{TokenID, TokenNumber}, kinds(tokens))
	assert.Equal(t, int64(10), tokens[1].Value)
}

func TestLexerMaximalMunch(t *testing.T) {
	tokens := collectTokens(t, "abc123 123abc")
	assert.Equal(t, []TokenKind{TokenID, TokenNumber, TokenID, TokenEOF}, kinds(tokens))
	assert.Equal(t, "abc123", tokens[0].Literal)
	assert.Equal(t, "123", tokens[1].Literal)
	assert.Equal(t, "abc", tokens[2].Literal)
}

func TestLexerIdentifiers(t *testing.T) {
	cases := []string{"forward", "_pen", "Square2", "SET_XY", "iffy", "ending", "tot"}
	for _, id := range cases {
		tokens := collectTokens(t, id)
		require.Len(t, tokens, 2, "input: %s", id)
		assert.Equal(t, TokenID, tokens[0].Kind, "input: %s", id)
		assert.Equal(t, id, tokens[0].Literal, "input: %s", id)
	}
}

func TestLexerKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"IF", TokenIf},
		{"if", TokenIf},
		{"If", TokenIf},
		{"iF", TokenIf},
		{"THEN", TokenThen},
		{"else", TokenElse},
		{"End", TokenEnd},
		{"while", TokenWhile},
		{"NOT", TokenNot},
		{"to", TokenTo},
		{"and", TokenAnd},
		{"Or", TokenOr},
		{"set", TokenSet},
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, tt.kind, tokens[0].Kind, "input: %s", tt.input)
		assert.Equal(t, tt.input, tokens[0].Literal, "keyword keeps its source text")
		assert.True(t, tokens[0].Kind.IsKeyword())
	}
}

func TestLexerSquareProcedure(t *testing.T) {
	tokens := collectTokens(t, "TO SQUARE :length FORWARD :length RIGHT 90 END")
	assert.Equal(t, []TokenKind{
		TokenTo, TokenID, TokenColon, TokenID, TokenID,
		TokenColon, TokenID, TokenID, TokenNumber, TokenEnd, TokenEOF,
	}, kinds(tokens))
	assert.Equal(t, "SQUARE", tokens[1].Literal)
	assert.Equal(t, "length", tokens[3].Literal)
	assert.Equal(t, "FORWARD", tokens[4].Literal)
	assert.Equal(t, "RIGHT", tokens[7].Literal)
	assert.Equal(t, int64(90), tokens[8].Value)
}

func TestLexerLineCounting(t *testing.T) {
	tokens := collectTokens(t, "FD 10\n\n\nRT 90\nEND")
	require.Len(t, tokens, 6)
	assert.Equal(t, 1, tokens[0].Pos.Line)
	assert.Equal(t, 1, tokens[1].Pos.Line)
	assert.Equal(t, 4, tokens[2].Pos.Line)
	assert.Equal(t, 1, tokens[2].Pos.Column)
	assert.Equal(t, 4, tokens[3].Pos.Line)
	assert.Equal(t, 5, tokens[4].Pos.Line)
}

func TestLexerPosition(t *testing.T) {
	tokens := collectTokens(t, "  FD\t42")
	require.Len(t, tokens, 3)
	assert.Equal(t, Position{Line: 1, Column: 3, Offset: 2}, tokens[0].Pos)
	assert.Equal(t, Position{Line: 1, Column: 6, Offset: 5}, tokens[1].Pos)
}

func TestLexerIllegalCharacter(t *testing.T) {
	var handled []*LexError
	lex := NewLexer([]byte("FD @ 10"))
	lex.HandleErrors(func(err *LexError) { handled = append(handled, err) })

	var tokens []Token
	for tok := range lex.All() {
		tokens = append(tokens, tok)
	}

	assert.Equal(t, []TokenKind{TokenID, TokenNumber}, kinds(tokens))
	require.Len(t, lex.Errors(), 1)
	err := lex.Errors()[0]
	assert.Equal(t, "@", err.Char)
	assert.Equal(t, 1, err.Pos.Line)
	assert.Equal(t, 4, err.Pos.Column)
	assert.Contains(t, err.Error(), "illegal character")
	assert.Contains(t, err.Error(), "@")
	assert.Equal(t, lex.Errors(), handled)
}

func TestLexerIllegalCharactersReportLine(t *testing.T) {
	tokens, errs := Tokenize([]byte("FD 1\nRT 2 $\n# 3"))
	require.Len(t, errs, 2)
	assert.Equal(t, "$", errs[0].Char)
	assert.Equal(t, 2, errs[0].Pos.Line)
	assert.Equal(t, "#", errs[1].Char)
	assert.Equal(t, 3, errs[1].Pos.Line)
	assert.Len(t, tokens, 5)
}

func TestLexerIllegalMultibyteRune(t *testing.T) {
	tokens, errs := Tokenize([]byte("FD é 5"))
	require.Len(t, errs, 1)
	assert.Equal(t, "é", errs[0].Char)
	assert.Equal(t, []TokenKind{TokenID, TokenNumber}, kinds(tokens))
}

func TestLexerCarriageReturnIsIllegal(t *testing.T) {
	tokens, errs := Tokenize([]byte("FD 5\r\nRT 9"))
	require.Len(t, errs, 1)
	assert.Equal(t, "\r", errs[0].Char)
	assert.Len(t, tokens, 4)
}

func TestLexerPeek(t *testing.T) {
	lex := NewLexer([]byte("FD 10"))
	assert.Equal(t, TokenID, lex.Peek().Kind)
	assert.Equal(t, TokenID, lex.Peek().Kind)
	assert.Equal(t, TokenID, lex.Next().Kind)
	assert.Equal(t, TokenNumber, lex.Next().Kind)
	assert.Equal(t, TokenEOF, lex.Next().Kind)
	assert.Equal(t, TokenEOF, lex.Next().Kind)
}

func TestLexerRestartable(t *testing.T) {
	src := []byte("TO X :a\n  FD :a @\nEND")
	first, firstErrs := Tokenize(src)
	second, secondErrs := Tokenize(src)
	assert.Equal(t, first, second)
	assert.Equal(t, firstErrs, secondErrs)
}

func TestLexerAllStopsEarly(t *testing.T) {
	lex := NewLexer([]byte("A B C D"))
	var seen []string
	for tok := range lex.All() {
		seen = append(seen, tok.Literal)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"A", "B"}, seen)
	assert.Equal(t, "C", lex.Next().Literal)
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "ID", TokenID.String())
	assert.Equal(t, "NUMBER", TokenNumber.String())
	assert.Equal(t, "COLON", TokenColon.String())
	assert.Equal(t, "WHILE", TokenWhile.String())
	assert.Equal(t, "unknown", TokenKind(999).String())
	assert.False(t, TokenID.IsKeyword())
	assert.False(t, TokenRParen.IsKeyword())
}
