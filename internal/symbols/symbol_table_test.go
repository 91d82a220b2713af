package symbols_test

import (
	"testing"

	"github.com/wrkean/tolc/internal/symbols"
	"github.com/wrkean/tolc/internal/toltype"
)

func TestNewTableStartsWithOneScope(t *testing.T) {
	st := symbols.New()
	if st.Depth() != 1 {
		t.Fatalf("expected a fresh table to start with depth 1, got %d", st.Depth())
	}
}

func TestPopNeverEmptiesTheStack(t *testing.T) {
	st := symbols.New()
	st.PopScope()
	st.PopScope()
	if st.Depth() != 1 {
		t.Fatalf("expected PopScope on the bottom scope to be a no-op, got depth %d", st.Depth())
	}
}

func TestDeclareAndLookupAcrossScopes(t *testing.T) {
	st := symbols.New()
	outer := &symbols.Symbol{Name: "x", Kind: symbols.VarKind, Type: toltype.I32}
	if err := st.Declare(outer); err != nil {
		t.Fatalf("unexpected error declaring x: %v", err)
	}

	st.PushScope()
	if _, ok := st.Lookup("x"); !ok {
		t.Fatalf("expected an inner scope to see an outer declaration")
	}
	inner := &symbols.Symbol{Name: "x", Kind: symbols.VarKind, Type: toltype.Bool}
	if err := st.Declare(inner); err != nil {
		t.Fatalf("unexpected error shadowing x in an inner scope: %v", err)
	}
	sym, _ := st.Lookup("x")
	if sym.Type != toltype.Bool {
		t.Fatalf("expected the inner shadow to win, got type %v", sym.Type)
	}

	st.PopScope()
	sym, _ = st.Lookup("x")
	if sym.Type != toltype.I32 {
		t.Fatalf("expected the outer binding to resurface after pop, got type %v", sym.Type)
	}
}

func TestDeclareRejectsSameScopeRedeclaration(t *testing.T) {
	st := symbols.New()
	a := &symbols.Symbol{Name: "x", Kind: symbols.VarKind, Type: toltype.I32}
	b := &symbols.Symbol{Name: "x", Kind: symbols.VarKind, Type: toltype.I32}
	if err := st.Declare(a); err != nil {
		t.Fatalf("unexpected error on first declare: %v", err)
	}
	if err := st.Declare(b); err == nil {
		t.Fatalf("expected an error redeclaring x in the same scope")
	}
}

func TestLookupMissingNameFails(t *testing.T) {
	st := symbols.New()
	if _, ok := st.Lookup("wala-dito"); ok {
		t.Fatalf("expected lookup of an undeclared name to fail")
	}
}

func TestDeclareTypeAndLookupType(t *testing.T) {
	st := symbols.New()
	info := symbols.NewTypeInfo(toltype.Bagay{Name: "Punto"})
	st.DeclareType("Punto", info)

	got, ok := st.LookupType("Punto")
	if !ok {
		t.Fatalf("expected to find the declared type Punto")
	}
	if got.Kind != (toltype.Bagay{Name: "Punto"}) {
		t.Fatalf("expected looked-up TypeInfo.Kind to be Bagay{Punto}, got %v", got.Kind)
	}
}

func TestTypeNamesInOrderPreservesFirstDeclarationOrder(t *testing.T) {
	st := symbols.New()
	st.DeclareType("B", symbols.NewTypeInfo(toltype.Bagay{Name: "B"}))
	st.DeclareType("A", symbols.NewTypeInfo(toltype.Bagay{Name: "A"}))
	st.DeclareType("B", symbols.NewTypeInfo(toltype.Bagay{Name: "B"})) // redeclare, shouldn't move order

	order := st.TypeNamesInOrder()
	if len(order) != 2 || order[0] != "B" || order[1] != "A" {
		t.Fatalf("expected order [B A], got %v", order)
	}
}

func TestNamesInScopeOnlyListsInnermost(t *testing.T) {
	st := symbols.New()
	_ = st.Declare(&symbols.Symbol{Name: "outer", Kind: symbols.VarKind, Type: toltype.I32})
	st.PushScope()
	_ = st.Declare(&symbols.Symbol{Name: "inner", Kind: symbols.VarKind, Type: toltype.I32})

	names := st.NamesInScope()
	if len(names) != 1 || names[0] != "inner" {
		t.Fatalf("expected NamesInScope to report only [inner], got %v", names)
	}
}
