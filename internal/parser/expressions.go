package parser

import (
	"github.com/wrkean/tolc/internal/ast"
	"github.com/wrkean/tolc/internal/token"
)

// precedence levels, spec §4.3 (lowest to highest).
const (
	precNone    = 0
	precAssign  = 1
	precRange   = 2
	precCompare = 3
	precAdd     = 4
	precMul     = 5
	precAccess  = 6
	precCall    = 7
)

func infixPrecedence(kind token.Kind) int {
	switch kind {
	case token.Assign:
		return precAssign
	case token.DotDot, token.DotDotEq:
		return precRange
	case token.Eq, token.Neq, token.Gt, token.Gte, token.Lt, token.Lte:
		return precCompare
	case token.Plus, token.Minus:
		return precAdd
	case token.Star, token.Slash:
		return precMul
	case token.Dot, token.DoubleColon:
		return precAccess
	case token.LParen, token.Bang:
		return precCall
	default:
		return precNone
	}
}

// parseExpression is the Pratt loop: parse a prefix expression, then keep
// consuming infix/postfix operators whose precedence exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expr {
	left := p.parsePrefix()
	for infixPrecedence(p.cur().Kind) > minPrec {
		left = p.parseInfix(left)
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expr {
	tok := p.cur()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		return &ast.IntLit{Tok: tok, Base: ast.Base{ID: p.nextID()}}
	case token.FloatLit:
		p.advance()
		return &ast.FloatLit{Tok: tok, Base: ast.Base{ID: p.nextID()}}
	case token.StringLit:
		p.advance()
		return &ast.StringLit{Tok: tok, Base: ast.Base{ID: p.nextID()}}
	case token.ByteStringLit:
		p.advance()
		return &ast.ByteStringLit{Tok: tok, Base: ast.Base{ID: p.nextID()}}
	case token.Identifier:
		p.advance()
		return &ast.Identifier{Tok: tok, Base: ast.Base{ID: p.nextID()}}
	case token.LParen:
		p.advance()
		inner := p.parseExpression(precNone)
		p.expect(token.RParen)
		return inner
	case token.Amp:
		p.advance()
		mutable := p.match(token.Maiba)
		operand := p.parseExpression(precMul)
		id := p.nextID()
		if mutable {
			return &ast.MutableAddressOf{Operand: operand, Base: ast.Base{ID: id}}
		}
		return &ast.AddressOf{Operand: operand, Base: ast.Base{ID: id}}
	case token.Star:
		p.advance()
		operand := p.parseExpression(precMul)
		return &ast.Deref{Operand: operand, Base: ast.Base{ID: p.nextID()}}
	case token.At:
		p.advance()
		name, _ := p.expect(token.Identifier)
		p.expect(token.LParen)
		args := p.parseArgList()
		p.expect(token.RParen)
		return &ast.MagicFnCall{Name: name, Args: args, Base: ast.Base{ID: p.nextID()}}
	case token.LBracket:
		p.advance()
		var elems []ast.Expr
		for !p.check(token.RBracket) && !p.check(token.Eof) {
			elems = append(elems, p.parseExpression(precAssign))
			if !p.match(token.Comma) {
				break
			}
		}
		p.expect(token.RBracket)
		return &ast.ArrayLit{Elements: elems, Base: ast.Base{ID: p.nextID()}}
	default:
		p.errorf("hindi inaasahang simula ng expression: %s", tok.Kind)
		p.advance()
		return &ast.Identifier{Tok: tok, Base: ast.Base{ID: p.nextID()}}
	}
}

func (p *Parser) parseArgList() []ast.Expr {
	var args []ast.Expr
	for !p.check(token.RParen) && !p.check(token.Eof) {
		args = append(args, p.parseExpression(precAssign))
		if !p.match(token.Comma) {
			break
		}
	}
	return args
}

func (p *Parser) parseInfix(left ast.Expr) ast.Expr {
	tok := p.cur()
	switch tok.Kind {
	case token.Assign:
		p.advance()
		right := p.parseExpression(precAssign - 1)
		return &ast.Assign{Left: left, Right: right, Base: ast.Base{ID: p.nextID()}}
	case token.DotDot:
		p.advance()
		end := p.parseExpression(precRange)
		return &ast.RangeExclusive{Start: left, End: end, Base: ast.Base{ID: p.nextID()}}
	case token.DotDotEq:
		p.advance()
		end := p.parseExpression(precRange)
		return &ast.RangeInclusive{Start: left, End: end, Base: ast.Base{ID: p.nextID()}}
	case token.Eq, token.Neq, token.Gt, token.Gte, token.Lt, token.Lte:
		p.advance()
		right := p.parseExpression(precCompare)
		return &ast.Binary{Op: tok, Left: left, Right: right, Base: ast.Base{ID: p.nextID()}}
	case token.Plus, token.Minus:
		p.advance()
		right := p.parseExpression(precAdd)
		return &ast.Binary{Op: tok, Left: left, Right: right, Base: ast.Base{ID: p.nextID()}}
	case token.Star, token.Slash:
		p.advance()
		right := p.parseExpression(precMul)
		return &ast.Binary{Op: tok, Left: left, Right: right, Base: ast.Base{ID: p.nextID()}}
	case token.Dot:
		p.advance()
		member, _ := p.expect(token.Identifier)
		return &ast.MemberAccess{Left: left, Member: member, Base: ast.Base{ID: p.nextID()}}
	case token.DoubleColon:
		p.advance()
		field, _ := p.expect(token.Identifier)
		return &ast.ScopeResolution{Left: left, Field: field, Base: ast.Base{ID: p.nextID()}}
	case token.LParen:
		p.advance()
		args := p.parseArgList()
		p.expect(token.RParen)
		return &ast.FnCall{Callee: left, Args: args, Base: ast.Base{ID: p.nextID()}}
	case token.Bang:
		p.advance()
		ident, ok := left.(*ast.Identifier)
		if !ok {
			p.errorf("ang struct literal ay kailangan ng pangalan ng tipo bago ang '!'")
			return left
		}
		p.expect(token.LParen)
		var fields []ast.StructField
		for !p.check(token.RParen) && !p.check(token.Eof) {
			name, _ := p.expect(token.Identifier)
			p.expect(token.Colon)
			value := p.parseExpression(precAssign)
			fields = append(fields, ast.StructField{Name: name, Value: value})
			if !p.match(token.Comma) {
				break
			}
		}
		p.expect(token.RParen)
		return &ast.StructLit{Callee: ident.Tok, Fields: fields, Base: ast.Base{ID: p.nextID()}}
	default:
		return left
	}
}
