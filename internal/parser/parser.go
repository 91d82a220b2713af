// Package parser builds Module.ast from Module.tokens: a Pratt-style
// expression parser plus a recursive-descent statement parser, assigning
// a monotonically increasing id to every constructed node (spec §4.3).
package parser

import (
	"github.com/wrkean/tolc/internal/ast"
	"github.com/wrkean/tolc/internal/diagnostics"
	"github.com/wrkean/tolc/internal/token"
)

// Parser consumes a flat token slice produced by the lexer. ast_id lives
// on the parser, not the Module, mirroring the original implementation's
// ast_id: usize field incremented at each node-construction site.
type Parser struct {
	tokens   []token.Token
	pos      int
	astID    int
	Errors   []*diagnostics.Diagnostic
	HasError bool
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) nextID() int {
	id := p.astID
	p.astID++
	return id
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.Eof}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return token.Token{Kind: token.Eof}
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) check(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind or records a syntax
// diagnostic ("Umasa ng X pero nakita ay Y", spec §7). On a mismatch the
// offending token is returned and left unconsumed; expect itself does not
// synchronize.
func (p *Parser) expect(kind token.Kind) (token.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	got := p.cur()
	d := diagnostics.Newf(diagnostics.Error, got.Line, got.Column,
		"umasa ng %s pero nakita ay %s", kind, got.Kind)
	p.Errors = append(p.Errors, d)
	p.HasError = true
	return got, false
}

func (p *Parser) errorf(format string, args ...interface{}) {
	t := p.cur()
	d := diagnostics.Newf(diagnostics.Error, t.Line, t.Column, format, args...)
	p.Errors = append(p.Errors, d)
	p.HasError = true
}

var statementStarters = map[token.Kind]bool{
	token.Paraan: true, token.Ang: true, token.Ibalik: true,
	token.Bagay: true, token.Kung: true, token.Itupad: true,
	token.At: true, token.Sa: true,
}

// synchronize skips tokens until the next statement-starter keyword, or
// until just after a ';' or '}' (spec §4.3).
func (p *Parser) synchronize() {
	for !p.check(token.Eof) {
		if p.cur().Kind == token.SemiColon {
			p.advance()
			return
		}
		if p.cur().Kind == token.RBrace {
			return
		}
		if statementStarters[p.cur().Kind] {
			return
		}
		p.advance()
	}
}

// synchronizeUntil is the block-scoped variant used so recovery doesn't
// consume the block's own terminator.
func (p *Parser) synchronizeUntil(ends map[token.Kind]bool) {
	for !p.check(token.Eof) && !ends[p.cur().Kind] {
		if p.cur().Kind == token.SemiColon {
			p.advance()
			return
		}
		if statementStarters[p.cur().Kind] {
			return
		}
		p.advance()
	}
}

// ParseProgram parses the whole token stream into Module.ast (spec §4.3:
// "top-level is a sequence of statements until Eof").
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{Base: ast.Base{ID: p.nextID()}}
	for !p.check(token.Eof) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}
