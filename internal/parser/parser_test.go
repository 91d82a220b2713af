package parser_test

import (
	"testing"

	"github.com/wrkean/tolc/internal/ast"
	"github.com/wrkean/tolc/internal/lexer"
	"github.com/wrkean/tolc/internal/parser"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks := lexer.New(src).Tokenize()
	p := parser.New(toks)
	prog := p.ParseProgram()
	if len(p.Errors) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors)
	}
	return prog
}

func TestPrattPrecedence(t *testing.T) {
	prog := parseProgram(t, "ang x = 1 + 2 * 3;")
	ang := prog.Statements[0].(*ast.Ang)
	bin, ok := ang.Rhs.(*ast.Binary)
	if !ok || bin.Op.Lexeme != "+" {
		t.Fatalf("expected top-level '+', got %#v", ang.Rhs)
	}
	right, ok := bin.Right.(*ast.Binary)
	if !ok || right.Op.Lexeme != "*" {
		t.Fatalf("expected '2 * 3' grouped on the right, got %#v", bin.Right)
	}
}

func TestAssignmentRightAssociative(t *testing.T) {
	prog := parseProgram(t, "a = b = c;")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	outer, ok := stmt.X.(*ast.Assign)
	if !ok {
		t.Fatalf("expected Assign, got %#v", stmt.X)
	}
	if _, ok := outer.Right.(*ast.Assign); !ok {
		t.Fatalf("expected right-associative nested Assign, got %#v", outer.Right)
	}
}

func TestFunctionDeclaration(t *testing.T) {
	prog := parseProgram(t, "paraan sum(a: i32, b: i32) -> i32 { ibalik a; }")
	par := prog.Statements[0].(*ast.Par)
	if par.Name.Lexeme != "sum" || len(par.Params) != 2 {
		t.Fatalf("unexpected parse: %#v", par)
	}
}

func TestMethodDispatchShapePreservesMemberCall(t *testing.T) {
	prog := parseProgram(t, "ang r = p.area();")
	ang := prog.Statements[0].(*ast.Ang)
	call, ok := ang.Rhs.(*ast.FnCall)
	if !ok {
		t.Fatalf("expected FnCall, got %#v", ang.Rhs)
	}
	if _, ok := call.Callee.(*ast.MemberAccess); !ok {
		t.Fatalf("expected FnCall callee to be MemberAccess, got %#v", call.Callee)
	}
}

func TestStructLiteral(t *testing.T) {
	prog := parseProgram(t, "ang p = Point!(x: 1, y: 2);")
	ang := prog.Statements[0].(*ast.Ang)
	sl, ok := ang.Rhs.(*ast.StructLit)
	if !ok || sl.Callee.Lexeme != "Point" || len(sl.Fields) != 2 {
		t.Fatalf("unexpected struct literal parse: %#v", ang.Rhs)
	}
}

func TestKungChain(t *testing.T) {
	prog := parseProgram(t, "kung a { ibalik 1; } kungdi b { ibalik 2; } kungwala { ibalik 3; }")
	k := prog.Statements[0].(*ast.Kung)
	if len(k.Branches) != 3 {
		t.Fatalf("expected 3 branches, got %d", len(k.Branches))
	}
	if k.Branches[2].Cond != nil {
		t.Fatalf("expected kungwala branch to have a nil condition")
	}
}

func TestSaRangeLoop(t *testing.T) {
	prog := parseProgram(t, "sa 0..10 => i { ibalik i; }")
	sa := prog.Statements[0].(*ast.SaStmt)
	if _, ok := sa.Iter.(*ast.RangeExclusive); !ok {
		t.Fatalf("expected RangeExclusive iterator, got %#v", sa.Iter)
	}
	if sa.Bind.Lexeme != "i" {
		t.Fatalf("expected bind name 'i', got %q", sa.Bind.Lexeme)
	}
}

func TestMonotonicNodeIDs(t *testing.T) {
	toks := lexer.New("ang a = 1; ang b = 2;").Tokenize()
	p := parser.New(toks)
	prog := p.ParseProgram()
	seen := map[int]bool{}
	for _, s := range prog.Statements {
		id := s.NodeID()
		if seen[id] {
			t.Fatalf("duplicate node id %d", id)
		}
		seen[id] = true
	}
}

func TestParserRecoversAfterBadStatement(t *testing.T) {
	toks := lexer.New("ang = ; ang ok = 1;").Tokenize()
	p := parser.New(toks)
	prog := p.ParseProgram()
	if len(p.Errors) == 0 {
		t.Fatalf("expected at least one recorded diagnostic")
	}
	found := false
	for _, s := range prog.Statements {
		if ang, ok := s.(*ast.Ang); ok && ang.Name.Lexeme == "ok" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parser to recover and still parse the following statement")
	}
}
