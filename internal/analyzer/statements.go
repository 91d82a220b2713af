package analyzer

import (
	"github.com/wrkean/tolc/internal/ast"
	"github.com/wrkean/tolc/internal/symbols"
	"github.com/wrkean/tolc/internal/token"
	"github.com/wrkean/tolc/internal/toltype"
)

// analyzeBlockWithReturn analyzes body in a fresh scope with currentReturn
// set to retType, so every ibalik inside (including nested kung/sa blocks)
// is checked against the enclosing function's declared return type.
func (a *Analyzer) analyzeBlockWithReturn(body *ast.Block, retType toltype.Type) {
	prev := a.currentReturn
	a.currentReturn = retType
	a.analyzeBlock(body)
	a.currentReturn = prev
}

// analyzeBlock analyzes stmts in a fresh nested scope.
func (a *Analyzer) analyzeBlock(block *ast.Block) {
	a.Symbols.PushScope()
	for _, s := range block.Statements {
		a.analyzeStmt(s)
	}
	a.Symbols.PopScope()
}

func (a *Analyzer) analyzeStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Ang:
		a.analyzeAng(s)
	case *ast.Ibalik:
		a.analyzeIbalik(s)
	case *ast.ExprStmt:
		a.inferExpr(s.X)
	case *ast.Kung:
		a.analyzeKung(s)
	case *ast.SaStmt:
		a.analyzeSa(s)
	case *ast.Block:
		a.analyzeBlock(s)
	default:
		a.errorAt(token.Token{}, "hindi suportadong statement sa ganitong konteksto")
	}
}

// analyzeAng analyzes an `ang` binding: infer the rhs type, resolve any
// declared type annotation, and enforce assignment-compatibility between
// them (spec §4.4's `rhs ≼ lhs` rule) before declaring the binding.
func (a *Analyzer) analyzeAng(stmt *ast.Ang) {
	rhsType := a.inferExpr(stmt.Rhs)
	declared := rhsType
	if stmt.DeclaredType != nil {
		declared = a.resolveType(stmt.DeclaredType)
		if !toltype.AssignableTo(rhsType, declared) {
			a.errorAt(stmt.Name, "hindi tugma ang tipo: inaasahan ang '%s', nakuha ay '%s'", declared, rhsType)
		}
	} else if _, ok := rhsType.(toltype.UnsizedInt); ok {
		declared = toltype.I32
	} else if _, ok := rhsType.(toltype.UnsizedFloat); ok {
		declared = toltype.Lutang
	}
	sym := &symbols.Symbol{Name: stmt.Name.Lexeme, Kind: symbols.VarKind, Type: declared, Mutable: stmt.Mutable}
	if err := a.Symbols.Declare(sym); err != nil {
		a.errorAt(stmt.Name, "ulit na pagdedeklara ng '%s' sa parehong saklaw", stmt.Name.Lexeme)
	}
	a.recordType(stmt, declared)
}

func (a *Analyzer) analyzeIbalik(stmt *ast.Ibalik) {
	if stmt.Rhs == nil {
		if a.currentReturn != nil && !toltype.Equal(a.currentReturn, toltype.Wala) {
			a.errorAt(token.Token{}, "kailangan ng ibabalik na halaga ng tipong '%s'", a.currentReturn)
		}
		return
	}
	got := a.inferExpr(stmt.Rhs)
	if a.currentReturn != nil && !toltype.AssignableTo(got, a.currentReturn) {
		a.errorAt(token.Token{}, "hindi tugma ang ibabalik na tipo: inaasahan ang '%s', nakuha ay '%s'", a.currentReturn, got)
	}
}

func (a *Analyzer) analyzeKung(stmt *ast.Kung) {
	for _, br := range stmt.Branches {
		if br.Cond != nil {
			condType := a.inferExpr(br.Cond)
			if !toltype.Equal(condType, toltype.Bool) {
				a.errorAt(token.Token{}, "ang kondisyon ay dapat na 'bool', nakuha ay '%s'", condType)
			}
		}
		a.analyzeBlock(br.Body)
	}
}

// analyzeSa analyzes a `sa <range> => <bind> { ... }` loop: the iterator
// must be a range expression (Tol has no general iterable protocol, spec
// §4.3), and the bind variable is declared as an immutable i32 inside a
// fresh scope around the body.
func (a *Analyzer) analyzeSa(stmt *ast.SaStmt) {
	switch stmt.Iter.(type) {
	case *ast.RangeExclusive, *ast.RangeInclusive:
		a.inferExpr(stmt.Iter)
	default:
		a.errorAt(stmt.Bind, "ang 'sa' ay umaasa ng isang range na expression")
	}
	a.Symbols.PushScope()
	a.loopDepth++
	_ = a.Symbols.Declare(&symbols.Symbol{Name: stmt.Bind.Lexeme, Kind: symbols.VarKind, Type: toltype.I32, Mutable: false})
	for _, s := range stmt.Body.Statements {
		a.analyzeStmt(s)
	}
	a.loopDepth--
	a.Symbols.PopScope()
}
