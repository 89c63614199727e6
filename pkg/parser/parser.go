// Package parser implements the hand-rolled recursive descent grammar
// driver spec.md treats as an out-of-scope collaborator: it drains the
// token stream exposed by pkg/lexer and builds the pkg/ast tree that
// pkg/runtime executes.
package parser

import (
	"fmt"

	"able/minipy/pkg/ast"
	"able/minipy/pkg/lexer"
	"able/minipy/pkg/runtime"
)

// Parser walks a token stream one token of lookahead at a time, exactly as
// the lexer exposes it (Current never re-reads, Next always advances).
type Parser struct {
	lex     *lexer.Lexer
	cur     lexer.Token
	classes map[string]*runtime.Class
}

// Parse builds the program tree rooted in a Compound of top-level
// statements, draining l until Eof. l must already be primed (lexer.New
// does this).
func Parse(l *lexer.Lexer) (runtime.Executable, error) {
	p := &Parser{lex: l, cur: l.Current(), classes: make(map[string]*runtime.Class)}
	return p.parseModule()
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) isChar(ch byte) bool {
	return p.cur.Tag == lexer.Char && p.cur.ChValue == ch
}

func (p *Parser) expect(tag lexer.Tag) error {
	if p.cur.Tag != tag {
		return fmt.Errorf("parse error: expected %s, got %s", tag, p.cur.Tag)
	}
	return nil
}

func (p *Parser) expectChar(ch byte) error {
	if !p.isChar(ch) {
		return fmt.Errorf("parse error: expected %q, got %s", ch, p.cur)
	}
	return nil
}

// consume requires the current token match tag, then advances past it.
func (p *Parser) consume(tag lexer.Tag) error {
	if err := p.expect(tag); err != nil {
		return err
	}
	return p.advance()
}

// consumeChar requires the current token be the Char ch, then advances.
func (p *Parser) consumeChar(ch byte) error {
	if err := p.expectChar(ch); err != nil {
		return err
	}
	return p.advance()
}

func (p *Parser) parseModule() (runtime.Executable, error) {
	var stmts []runtime.Executable
	for p.cur.Tag != lexer.Eof {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Compound{Statements: stmts}, nil
}

// parseBlock expects the ':' of its caller to already be consumed: it
// consumes Newline Indent {statement}* Dedent and returns the body as a
// Compound.
func (p *Parser) parseBlock() (runtime.Executable, error) {
	if err := p.consume(lexer.Newline); err != nil {
		return nil, err
	}
	if err := p.consume(lexer.Indent); err != nil {
		return nil, err
	}
	var stmts []runtime.Executable
	for p.cur.Tag != lexer.Dedent {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if err := p.consume(lexer.Dedent); err != nil {
		return nil, err
	}
	return &ast.Compound{Statements: stmts}, nil
}
