// Package toltype implements TolType, the tagged-variant type system
// consumed by the analyzer and codegen (spec §3, §4.4, §4.5).
package toltype

import "fmt"

// Type is any TolType variant. Each concrete type is a distinct struct so
// type-switches at call sites read like pattern matches.
type Type interface {
	String() string
	isType()
}

// Primitive covers the fixed-width integer/float kinds plus bool/kar/wala.
type Primitive struct{ Name string }

func (p Primitive) String() string { return p.Name }
func (Primitive) isType()          {}

// UnsizedInt/UnsizedFloat are transient inference placeholders for untyped
// numeric literals, resolved during binding analysis (spec §4.4).
type UnsizedInt struct{}

func (UnsizedInt) String() string { return "{integer}" }
func (UnsizedInt) isType()        {}

type UnsizedFloat struct{}

func (UnsizedFloat) String() string { return "{float}" }
func (UnsizedFloat) isType()        {}

// Bagay is a user-declared record type, named.
type Bagay struct{ Name string }

func (b Bagay) String() string { return b.Name }
func (Bagay) isType()          {}

// Array is a fixed-length-optional array type. Length is nil when unknown.
type Array struct {
	Elem   Type
	Length *int
}

func (a Array) String() string {
	if a.Length != nil {
		return fmt.Sprintf("[%d]%s", *a.Length, a.Elem)
	}
	return fmt.Sprintf("[]%s", a.Elem)
}
func (Array) isType() {}

// Pointer / MutablePointer are raw references.
type Pointer struct{ Elem Type }

func (p Pointer) String() string { return "*" + p.Elem.String() }
func (Pointer) isType()          {}

type MutablePointer struct{ Elem Type }

func (p MutablePointer) String() string { return "*maiba " + p.Elem.String() }
func (MutablePointer) isType()          {}

// UnknownIdentifier is an unresolved type reference produced by the
// parser; the analyzer resolves it against the type table.
type UnknownIdentifier struct{ Name string }

func (u UnknownIdentifier) String() string { return u.Name }
func (UnknownIdentifier) isType()          {}

// AkoType is the "self" marker on method parameters, replaced during impl
// analysis: the `ako` parameter becomes a mutable pointer to the enclosing
// type, and any other AkoType occurrence becomes the enclosing type itself.
type AkoType struct{}

func (AkoType) String() string { return "ako" }
func (AkoType) isType()        {}

// Unknown marks inference not yet performed.
type Unknown struct{}

func (Unknown) String() string { return "<unknown>" }
func (Unknown) isType()        {}

// Well-known primitive instances, shared so equality checks can compare by
// value rather than constructing fresh structs everywhere.
var (
	I8        = Primitive{"i8"}
	I16       = Primitive{"i16"}
	I32       = Primitive{"i32"}
	I64       = Primitive{"i64"}
	Isukat    = Primitive{"isukat"}
	U8        = Primitive{"u8"}
	U16       = Primitive{"u16"}
	U32       = Primitive{"u32"}
	U64       = Primitive{"u64"}
	Usukat    = Primitive{"usukat"}
	Lutang    = Primitive{"lutang"}
	Dobletang = Primitive{"dobletang"}
	Bool      = Primitive{"bool"}
	Kar       = Primitive{"kar"}
	Wala      = Primitive{"wala"}
)

// ByName maps a primitive type's source keyword to its Type value.
var ByName = map[string]Primitive{
	"i8": I8, "i16": I16, "i32": I32, "i64": I64, "isukat": Isukat,
	"u8": U8, "u16": U16, "u32": U32, "u64": U64, "usukat": Usukat,
	"lutang": Lutang, "dobletang": Dobletang,
	"bool": Bool, "kar": Kar, "wala": Wala,
}

var signedWidths = map[string]bool{"i8": true, "i16": true, "i32": true, "i64": true, "isukat": true}
var unsignedWidths = map[string]bool{"u8": true, "u16": true, "u32": true, "u64": true, "usukat": true}
var floatWidths = map[string]bool{"lutang": true, "dobletang": true}

// IsInteger reports whether t is a signed or unsigned integer primitive,
// or the untyped-integer placeholder.
func IsInteger(t Type) bool {
	if _, ok := t.(UnsizedInt); ok {
		return true
	}
	p, ok := t.(Primitive)
	return ok && (signedWidths[p.Name] || unsignedWidths[p.Name])
}

// IsFloat reports whether t is a float primitive or the untyped-float
// placeholder.
func IsFloat(t Type) bool {
	if _, ok := t.(UnsizedFloat); ok {
		return true
	}
	p, ok := t.(Primitive)
	return ok && floatWidths[p.Name]
}

// Equal reports structural equality between two TolTypes.
func Equal(a, b Type) bool {
	switch av := a.(type) {
	case Primitive:
		bv, ok := b.(Primitive)
		return ok && av.Name == bv.Name
	case Bagay:
		bv, ok := b.(Bagay)
		return ok && av.Name == bv.Name
	case UnknownIdentifier:
		bv, ok := b.(UnknownIdentifier)
		return ok && av.Name == bv.Name
	case Array:
		bv, ok := b.(Array)
		if !ok || !Equal(av.Elem, bv.Elem) {
			return false
		}
		if av.Length == nil || bv.Length == nil {
			return av.Length == bv.Length
		}
		return *av.Length == *bv.Length
	case Pointer:
		bv, ok := b.(Pointer)
		return ok && Equal(av.Elem, bv.Elem)
	case MutablePointer:
		bv, ok := b.(MutablePointer)
		return ok && Equal(av.Elem, bv.Elem)
	case UnsizedInt:
		_, ok := b.(UnsizedInt)
		return ok
	case UnsizedFloat:
		_, ok := b.(UnsizedFloat)
		return ok
	case AkoType:
		_, ok := b.(AkoType)
		return ok
	case Unknown:
		_, ok := b.(Unknown)
		return ok
	default:
		return false
	}
}

// AssignableTo implements the `rhs ≼ lhs` assignment-compatibility rule
// from spec §4.4.
func AssignableTo(rhs, lhs Type) bool {
	if Equal(rhs, lhs) {
		return true
	}
	if _, ok := rhs.(UnsizedInt); ok && IsInteger(lhs) {
		return true
	}
	if _, ok := rhs.(UnsizedFloat); ok && IsFloat(lhs) {
		return true
	}
	if rb, ok := rhs.(Bagay); ok {
		if lu, ok := lhs.(UnknownIdentifier); ok {
			return rb.Name == lu.Name
		}
	}
	if ru, ok := rhs.(UnknownIdentifier); ok {
		if lb, ok := lhs.(Bagay); ok {
			return ru.Name == lb.Name
		}
	}
	if ra, ok := rhs.(Array); ok {
		if la, ok := lhs.(Array); ok {
			if !AssignableTo(ra.Elem, la.Elem) {
				return false
			}
			switch {
			case ra.Length == nil && la.Length == nil:
				return true
			case la.Length == nil:
				return ra.Length == nil || *ra.Length > 0
			case ra.Length == nil:
				return false
			default:
				return *ra.Length <= *la.Length
			}
		}
	}
	return false
}

// ArithmeticCompatible implements the `+ - * /` compatibility rule from
// spec §4.4: both operands integer, or both float, any width mix
// permitted. The result type is the left operand's.
func ArithmeticCompatible(left, right Type) bool {
	if IsInteger(left) && IsInteger(right) {
		return true
	}
	if IsFloat(left) && IsFloat(right) {
		return true
	}
	return false
}
