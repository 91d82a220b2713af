package parser

import (
	"github.com/wrkean/tolc/internal/ast"
	"github.com/wrkean/tolc/internal/config"
	"github.com/wrkean/tolc/internal/token"
	"github.com/wrkean/tolc/internal/toltype"
)

var blockEnd = map[token.Kind]bool{token.RBrace: true}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur().Kind {
	case token.Paraan:
		return p.parsePar()
	case token.Ang:
		return p.parseAng()
	case token.Ibalik:
		return p.parseIbalik()
	case token.Bagay:
		return p.parseBagay()
	case token.Itupad:
		return p.parseItupad()
	case token.Kung:
		return p.parseKung()
	case token.Sa:
		return p.parseSa()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseBlock() *ast.Block {
	id := p.nextID()
	p.expect(token.LBrace)
	var stmts []ast.Stmt
	for !p.check(token.RBrace) && !p.check(token.Eof) {
		before := p.pos
		s := p.parseStatement()
		if s != nil {
			stmts = append(stmts, s)
		}
		if p.pos == before {
			// guard against a parslet that consumed nothing, avoiding an
			// infinite loop on malformed input.
			p.synchronizeUntil(blockEnd)
		}
	}
	p.expect(token.RBrace)
	return &ast.Block{Statements: stmts, Base: ast.Base{ID: id}}
}

// parseParams parses a parameter list: an optional leading `ako`
// parameter followed by zero or more `name: type` pairs (spec §4.3).
func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	if p.check(token.Identifier) && p.cur().Lexeme == config.AkoParamName {
		tok := p.advance()
		params = append(params, ast.Param{Name: tok, Type: toltype.AkoType{}, Ako: true})
		if !p.match(token.Comma) {
			return params
		}
	}
	for !p.check(token.RParen) && !p.check(token.Eof) {
		name, _ := p.expect(token.Identifier)
		p.expect(token.Colon)
		typ := p.parseType()
		params = append(params, ast.Param{Name: name, Type: typ})
		if !p.match(token.Comma) {
			break
		}
	}
	return params
}

func (p *Parser) parsePar() *ast.Par {
	id := p.nextID()
	p.expect(token.Paraan)
	name, _ := p.expect(token.Identifier)
	p.expect(token.LParen)
	params := p.parseParams()
	p.expect(token.RParen)
	retType := toltype.Type(toltype.Wala)
	if p.match(token.Arrow) {
		retType = p.parseType()
	}
	body := p.parseBlock()
	return &ast.Par{Name: name, Params: params, ReturnType: retType, Body: body, Base: ast.Base{ID: id}}
}

func (p *Parser) parseMethod() *ast.Method {
	id := p.nextID()
	p.expect(token.Paraan)
	name, _ := p.expect(token.Identifier)
	p.expect(token.LParen)
	params := p.parseParams()
	p.expect(token.RParen)
	retType := toltype.Type(toltype.Wala)
	if p.match(token.Arrow) {
		retType = p.parseType()
	}
	body := p.parseBlock()
	isStatic := true
	if len(params) > 0 && params[0].Ako {
		isStatic = false
	}
	return &ast.Method{Name: name, Params: params, ReturnType: retType, Body: body, IsStatic: isStatic, Base: ast.Base{ID: id}}
}

func (p *Parser) parseAng() *ast.Ang {
	id := p.nextID()
	p.expect(token.Ang)
	mutable := p.match(token.Maiba)
	name, _ := p.expect(token.Identifier)
	var declared toltype.Type
	if p.match(token.Colon) {
		declared = p.parseType()
	}
	p.expect(token.Assign)
	rhs := p.parseExpression(precAssign - 1)
	p.expect(token.SemiColon)
	return &ast.Ang{Mutable: mutable, Name: name, DeclaredType: declared, Rhs: rhs, Base: ast.Base{ID: id}}
}

func (p *Parser) parseIbalik() *ast.Ibalik {
	id := p.nextID()
	p.expect(token.Ibalik)
	var rhs ast.Expr
	if !p.check(token.SemiColon) {
		rhs = p.parseExpression(precNone)
	}
	p.expect(token.SemiColon)
	return &ast.Ibalik{Rhs: rhs, Base: ast.Base{ID: id}}
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	id := p.nextID()
	x := p.parseExpression(precNone)
	p.expect(token.SemiColon)
	return &ast.ExprStmt{X: x, Base: ast.Base{ID: id}}
}

func (p *Parser) parseBagay() *ast.BagayDecl {
	id := p.nextID()
	p.expect(token.Bagay)
	name, _ := p.expect(token.Identifier)
	p.expect(token.LBrace)
	var fields []ast.Field
	for !p.check(token.RBrace) && !p.check(token.Eof) {
		fname, _ := p.expect(token.Identifier)
		p.expect(token.Colon)
		ftype := p.parseType()
		fields = append(fields, ast.Field{Name: fname, Type: ftype})
		if !p.match(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace)
	return &ast.BagayDecl{Name: name, Fields: fields, Base: ast.Base{ID: id}}
}

func (p *Parser) parseItupad() *ast.ItupadDecl {
	id := p.nextID()
	p.expect(token.Itupad)
	forType, _ := p.expect(token.Identifier)
	p.expect(token.LBrace)
	var methods []*ast.Method
	for p.check(token.Paraan) {
		methods = append(methods, p.parseMethod())
	}
	p.expect(token.RBrace)
	return &ast.ItupadDecl{ForType: forType, Methods: methods, Base: ast.Base{ID: id}}
}

func (p *Parser) parseKung() *ast.Kung {
	id := p.nextID()
	p.expect(token.Kung)
	cond := p.parseExpression(precNone)
	body := p.parseBlock()
	branches := []ast.CondBranch{{Cond: cond, Body: body}}
	for p.check(token.KungDi) {
		p.advance()
		c := p.parseExpression(precNone)
		b := p.parseBlock()
		branches = append(branches, ast.CondBranch{Cond: c, Body: b})
	}
	if p.check(token.KungWala) {
		p.advance()
		b := p.parseBlock()
		branches = append(branches, ast.CondBranch{Cond: nil, Body: b})
	}
	return &ast.Kung{Branches: branches, Base: ast.Base{ID: id}}
}

func (p *Parser) parseSa() *ast.SaStmt {
	id := p.nextID()
	p.expect(token.Sa)
	iter := p.parseExpression(precNone)
	p.expect(token.FatArrow)
	bind, _ := p.expect(token.Identifier)
	body := p.parseBlock()
	return &ast.SaStmt{Iter: iter, Bind: bind, Body: body, Base: ast.Base{ID: id}}
}
