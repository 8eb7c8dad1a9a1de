package turtleparser

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is wrapped by a SyntaxError raised at end of input.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ParseError is the base error type for all turtleparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a lexer-level error (illegal character, number out of
// range). Lex errors are reported and skipped; they do not stop the scan.
type LexError struct {
	ParseError
	Char string // offending character or lexeme
}

// SyntaxError represents a grammar-level error (unexpected token or
// unexpected end of input). It always stops the parse.
type SyntaxError struct {
	ParseError
	Expected string
	Got      Token
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error at %q", e.Got.String())
	if e.Expected != "" {
		msg += ": expected " + e.Expected
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, msg)
	}
	return msg
}

func newSyntaxError(tok Token, expected string) *SyntaxError {
	err := &SyntaxError{
		ParseError: ParseError{Pos: tok.Pos},
		Expected:   expected,
		Got:        tok,
	}
	if tok.Kind == TokenEOF {
		err.Cause = ErrUnexpectedEOF
	}
	return err
}
