package toltype_test

import (
	"testing"

	"github.com/wrkean/tolc/internal/toltype"
)

func ptrInt(n int) *int { return &n }

func TestIsIntegerAndIsFloat(t *testing.T) {
	if !toltype.IsInteger(toltype.I32) {
		t.Fatalf("expected i32 to be an integer")
	}
	if !toltype.IsInteger(toltype.UnsizedInt{}) {
		t.Fatalf("expected unsized int placeholder to count as integer")
	}
	if toltype.IsInteger(toltype.Lutang) {
		t.Fatalf("expected lutang not to be an integer")
	}
	if !toltype.IsFloat(toltype.Dobletang) {
		t.Fatalf("expected dobletang to be a float")
	}
	if toltype.IsFloat(toltype.Bool) {
		t.Fatalf("expected bool not to be a float")
	}
}

func TestEqual(t *testing.T) {
	if !toltype.Equal(toltype.I32, toltype.Primitive{Name: "i32"}) {
		t.Fatalf("expected equal primitives to compare equal")
	}
	if toltype.Equal(toltype.I32, toltype.I64) {
		t.Fatalf("expected distinct widths to compare unequal")
	}
	a := toltype.Array{Elem: toltype.I32, Length: ptrInt(3)}
	b := toltype.Array{Elem: toltype.I32, Length: ptrInt(3)}
	if !toltype.Equal(a, b) {
		t.Fatalf("expected same-length arrays of the same element to be equal")
	}
	c := toltype.Array{Elem: toltype.I32, Length: ptrInt(4)}
	if toltype.Equal(a, c) {
		t.Fatalf("expected different-length arrays to compare unequal")
	}
	if !toltype.Equal(toltype.Bagay{Name: "Punto"}, toltype.Bagay{Name: "Punto"}) {
		t.Fatalf("expected same-named bagay types to be equal")
	}
}

func TestAssignableToUnsizedLiterals(t *testing.T) {
	if !toltype.AssignableTo(toltype.UnsizedInt{}, toltype.I64) {
		t.Fatalf("expected an unsized int literal to be assignable to any integer width")
	}
	if !toltype.AssignableTo(toltype.UnsizedFloat{}, toltype.Lutang) {
		t.Fatalf("expected an unsized float literal to be assignable to any float width")
	}
	if toltype.AssignableTo(toltype.UnsizedInt{}, toltype.Bool) {
		t.Fatalf("expected an unsized int literal not to be assignable to bool")
	}
}

func TestAssignableToBagayAndUnknownIdentifier(t *testing.T) {
	rhs := toltype.Bagay{Name: "Punto"}
	lhs := toltype.UnknownIdentifier{Name: "Punto"}
	if !toltype.AssignableTo(rhs, lhs) {
		t.Fatalf("expected a resolved bagay to be assignable to its own unresolved identifier")
	}
	if !toltype.AssignableTo(lhs, rhs) {
		t.Fatalf("expected assignability to hold symmetrically for matching names")
	}
	other := toltype.UnknownIdentifier{Name: "Iba"}
	if toltype.AssignableTo(rhs, other) {
		t.Fatalf("expected mismatched names not to be assignable")
	}
}

func TestAssignableToArrays(t *testing.T) {
	fixed3 := toltype.Array{Elem: toltype.I32, Length: ptrInt(3)}
	fixed5 := toltype.Array{Elem: toltype.I32, Length: ptrInt(5)}
	unsized := toltype.Array{Elem: toltype.I32}

	if !toltype.AssignableTo(fixed3, fixed5) {
		t.Fatalf("expected a shorter fixed array to be assignable to a longer one")
	}
	if toltype.AssignableTo(fixed5, fixed3) {
		t.Fatalf("expected a longer fixed array not to be assignable to a shorter one")
	}
	if !toltype.AssignableTo(fixed3, unsized) {
		t.Fatalf("expected a fixed array to be assignable to an unsized array slot")
	}
	if toltype.AssignableTo(unsized, fixed3) {
		t.Fatalf("expected an unsized array not to be assignable to a fixed-length slot")
	}
}

func TestArithmeticCompatible(t *testing.T) {
	if !toltype.ArithmeticCompatible(toltype.I32, toltype.I64) {
		t.Fatalf("expected mixed integer widths to be arithmetic-compatible")
	}
	if !toltype.ArithmeticCompatible(toltype.Lutang, toltype.Dobletang) {
		t.Fatalf("expected mixed float widths to be arithmetic-compatible")
	}
	if toltype.ArithmeticCompatible(toltype.I32, toltype.Lutang) {
		t.Fatalf("expected an integer and a float not to be arithmetic-compatible")
	}
}

func TestStringers(t *testing.T) {
	cases := map[toltype.Type]string{
		toltype.Array{Elem: toltype.I32, Length: ptrInt(3)}: "[3]i32",
		toltype.Array{Elem: toltype.I32}:                    "[]i32",
		toltype.Pointer{Elem: toltype.Bagay{Name: "Punto"}}: "*Punto",
		toltype.MutablePointer{Elem: toltype.I32}:           "*maiba i32",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}
