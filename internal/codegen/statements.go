package codegen

import (
	"github.com/wrkean/tolc/internal/ast"
	"github.com/wrkean/tolc/internal/toltype"
)

func (g *Generator) genStatements(stmts []ast.Stmt) {
	for _, s := range stmts {
		g.genStmt(s)
	}
}

func (g *Generator) genStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Ang:
		g.genAng(s)
	case *ast.Ibalik:
		g.genIbalik(s)
	case *ast.ExprStmt:
		g.line("%s;", g.genExpr(s.X))
	case *ast.Kung:
		g.genKung(s)
	case *ast.SaStmt:
		g.genSa(s)
	case *ast.Block:
		g.line("{")
		g.indent++
		g.genStatements(s.Statements)
		g.indent--
		g.line("}")
	}
}

func (g *Generator) genAng(stmt *ast.Ang) {
	rhs := g.genExpr(stmt.Rhs)
	cType := g.cNameOf(stmt)
	prefix := ""
	if !stmt.Mutable {
		prefix = "const "
	}
	g.line("%s%s %s = %s;", prefix, cType, stmt.Name.Lexeme, rhs)
}

func (g *Generator) genIbalik(stmt *ast.Ibalik) {
	if stmt.Rhs == nil {
		g.line("return;")
		return
	}
	g.line("return %s;", g.genExpr(stmt.Rhs))
}

func (g *Generator) genKung(stmt *ast.Kung) {
	for i, br := range stmt.Branches {
		switch {
		case i == 0:
			g.line("if (%s) {", g.genExpr(br.Cond))
		case br.Cond != nil:
			g.line("} else if (%s) {", g.genExpr(br.Cond))
		default:
			g.line("} else {")
		}
		g.indent++
		g.genStatements(br.Body.Statements)
		g.indent--
	}
	g.line("}")
}

// genSa lowers a `sa start..end => bind { body }` loop to a C for loop.
// Tol's only iteration form is a range (spec §4.3), so the bound expression
// must be a RangeExclusive/RangeInclusive — enforced by the analyzer
// before codegen ever sees this node.
func (g *Generator) genSa(stmt *ast.SaStmt) {
	var start, end ast.Expr
	cmp := "<"
	switch r := stmt.Iter.(type) {
	case *ast.RangeExclusive:
		start, end = r.Start, r.End
	case *ast.RangeInclusive:
		start, end = r.Start, r.End
		cmp = "<="
	default:
		return
	}
	name := stmt.Bind.Lexeme
	g.line("for (%s %s = %s; %s %s %s; %s++) {",
		toltype.CName(toltype.I32), name, g.genExpr(start), name, cmp, g.genExpr(end), name)
	g.indent++
	g.genStatements(stmt.Body.Statements)
	g.indent--
	g.line("}")
}
