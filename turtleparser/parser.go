package turtleparser

import (
	"log/slog"
)

// Option configures a Parser.
type Option func(*Parser)

// WithLogger logs every lexical error on logger at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// WithLexErrorHandler calls fn for every lexical error as it is found.
func WithLexErrorHandler(fn LexErrorHandler) Option {
	return func(p *Parser) { p.onLexError = fn }
}

// WithStrictLexing makes the first lexical error fatal: Parse returns it
// instead of skipping the offending input.
func WithStrictLexing() Option {
	return func(p *Parser) { p.strict = true }
}

// Parse parses turtle source text and returns its Program.
// Returns a *SyntaxError (or a *LexError in strict mode) on failure; no
// partial tree is returned.
func Parse(src []byte, opts ...Option) (*Program, error) {
	return NewParser(src, opts...).Parse()
}

// Parser turns the token stream of one source text into a Program.
// A Parser is single-use and not safe for concurrent use; independent
// parses should each create their own.
type Parser struct {
	lex        *Lexer
	logger     *slog.Logger
	onLexError LexErrorHandler
	strict     bool
}

// NewParser creates a Parser over src.
func NewParser(src []byte, opts ...Option) *Parser {
	p := &Parser{lex: NewLexer(src)}
	for _, opt := range opts {
		opt(p)
	}
	p.lex.HandleErrors(p.reportLexError)
	return p
}

// LexErrors returns the lexical errors met while parsing.
func (p *Parser) LexErrors() []*LexError {
	return p.lex.Errors()
}

// Parse runs the parser to the end of input.
func (p *Parser) Parse() (*Program, error) {
	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, newSyntaxError(tok, "statement")
	}

	return &Program{Statements: stmts, Pos: Position{Line: 1, Column: 1}}, nil
}

func (p *Parser) reportLexError(err *LexError) {
	if p.logger != nil {
		p.logger.Warn("illegal input skipped",
			"line", err.Pos.Line,
			"col", err.Pos.Column,
			"char", err.Char,
			"error", err.Message,
		)
	}
	if p.onLexError != nil {
		p.onLexError(err)
	}
}

func (p *Parser) lexFailure() error {
	if errs := p.lex.Errors(); p.strict && len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func (p *Parser) peek() (Token, error) {
	tok := p.lex.Peek()
	if err := p.lexFailure(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func (p *Parser) next() (Token, error) {
	tok := p.lex.Next()
	if err := p.lexFailure(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func (p *Parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, newSyntaxError(tok, kind.String())
	}
	return tok, nil
}

// startsStatement reports whether a statement can begin with kind.
func startsStatement(kind TokenKind) bool {
	switch kind {
	case TokenTo, TokenID, TokenIf, TokenWhile,
		TokenNumber, TokenPlus, TokenMinus, TokenLParen:
		return true
	}
	return false
}

// parseStatements parses statement* and stops, without consuming, at the
// first token that cannot start a statement. The caller checks that token.
func (p *Parser) parseStatements() ([]*Statement, error) {
	var stmts []*Statement
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !startsStatement(tok.Kind) {
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) parseStatement() (*Statement, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	var body Stmt
	switch tok.Kind {
	case TokenTo:
		body, err = p.parseDeclareFunction()
	case TokenID:
		body, err = p.parseCallFunction()
	case TokenIf:
		body, err = p.parseIf()
	case TokenWhile:
		body, err = p.parseWhile()
	default:
		body, err = p.parseExpression()
	}
	if err != nil {
		return nil, err
	}
	return &Statement{Body: body, Pos: tok.Pos}, nil
}

// parseDeclareFunction parses TO ID func_params statements END.
func (p *Parser) parseDeclareFunction() (*DeclareFunction, error) {
	kw, _ := p.next() // consume TO

	name, err := p.expect(TokenID)
	if err != nil {
		return nil, err
	}

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenEnd); err != nil {
		return nil, err
	}

	return &DeclareFunction{
		Keyword:  kw.Literal,
		FuncName: name.Literal,
		Params:   params,
		Body:     body,
		Pos:      kw.Pos,
	}, nil
}

// parseCallFunction parses ID func_params.
func (p *Parser) parseCallFunction() (*CallFunction, error) {
	name, _ := p.next() // consume ID

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	return &CallFunction{FuncName: name.Literal, Params: params, Pos: name.Pos}, nil
}

// parseParams parses func_param* where func_param is ':' ID or NUMBER.
// Every following parameter is taken, so "FD 10 20" passes two parameters.
func (p *Parser) parseParams() ([]*Parameter, error) {
	var params []*Parameter
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case TokenColon:
			_, _ = p.next() // consume ':'
			id, err := p.expect(TokenID)
			if err != nil {
				return nil, err
			}
			params = append(params, &Parameter{Arg: &Identifier{Ident: id.Literal}, Pos: tok.Pos})

		case TokenNumber:
			_, _ = p.next()
			params = append(params, &Parameter{Arg: &NumberLiteral{Value: tok.Value}, Pos: tok.Pos})

		default:
			return params, nil
		}
	}
}

// parseIf parses both IF ID THEN statements END and
// IF ID THEN statements ELSE statements END.
func (p *Parser) parseIf() (Stmt, error) {
	kw, _ := p.next() // consume IF

	cond, err := p.expect(TokenID)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenThen); err != nil {
		return nil, err
	}

	then, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokenEnd:
		return &If{Cond: cond.Literal, Then: then, Pos: kw.Pos}, nil

	case TokenElse:
		els, err := p.parseStatements()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenEnd); err != nil {
			return nil, err
		}
		return &IfElse{Cond: cond.Literal, Then: then, Else: els, Pos: kw.Pos}, nil

	default:
		return nil, newSyntaxError(tok, "ELSE or END")
	}
}

// parseWhile parses WHILE ID statements END.
func (p *Parser) parseWhile() (*While, error) {
	kw, _ := p.next() // consume WHILE

	cond, err := p.expect(TokenID)
	if err != nil {
		return nil, err
	}

	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenEnd); err != nil {
		return nil, err
	}

	return &While{Cond: cond.Literal, Body: body, Pos: kw.Pos}, nil
}

// parseExpression parses term (('+' | '-') term)?. Only one operator is
// applied; a second '+' or '-' starts the next statement.
func (p *Parser) parseExpression() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenPlus && tok.Kind != TokenMinus {
		return left, nil
	}
	_, _ = p.next() // consume operator

	right, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	return &BinaryMath{Op: tok.Literal, Left: left, Right: right, Pos: left.Start()}, nil
}

// parseTerm parses factor (('*' | '/') factor)?. Only one operator is
// applied.
func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenTimes && tok.Kind != TokenDivide {
		return left, nil
	}
	_, _ = p.next() // consume operator

	right, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	return &BinaryMath{Op: tok.Literal, Left: left, Right: right, Pos: left.Start()}, nil
}

// parseFactor parses NUMBER | '+' factor | '-' factor | '(' expression ')'.
func (p *Parser) parseFactor() (Expr, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokenNumber:
		return &Number{Value: tok.Value, Pos: tok.Pos}, nil

	case TokenPlus, TokenMinus:
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &UnaryMath{Op: tok.Literal, Operand: operand, Pos: tok.Pos}, nil

	case TokenLParen:
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return &Grouped{Inner: inner, Pos: tok.Pos}, nil

	default:
		return nil, newSyntaxError(tok, "expression")
	}
}
