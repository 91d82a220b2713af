package parser

import (
	"strconv"

	"github.com/wrkean/tolc/internal/token"
	"github.com/wrkean/tolc/internal/toltype"
)

// parseType parses the type syntax of spec §4.3: primitive keyword names;
// `[N] T` / `[] T` arrays; `*T` / `*maiba T` pointers; any bare identifier
// becomes UnknownIdentifier(name), resolved later by the analyzer.
func (p *Parser) parseType() toltype.Type {
	switch {
	case p.check(token.LBracket):
		p.advance()
		var length *int
		if !p.check(token.RBracket) {
			lenTok, ok := p.expect(token.IntLit)
			if ok {
				if n, err := strconv.Atoi(lenTok.Lexeme); err == nil {
					length = &n
				}
			}
		}
		p.expect(token.RBracket)
		elem := p.parseType()
		return toltype.Array{Elem: elem, Length: length}
	case p.check(token.Star):
		p.advance()
		if p.check(token.Maiba) {
			p.advance()
			return toltype.MutablePointer{Elem: p.parseType()}
		}
		return toltype.Pointer{Elem: p.parseType()}
	case p.check(token.Identifier):
		tok := p.advance()
		if prim, ok := toltype.ByName[tok.Lexeme]; ok {
			return prim
		}
		return toltype.UnknownIdentifier{Name: tok.Lexeme}
	default:
		p.errorf("umasa ng pangalan ng tipo pero nakita ay %s", p.cur().Kind)
		return toltype.Unknown{}
	}
}
