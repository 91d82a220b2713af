// Package analyzer implements the two-pass semantic analyzer: forward
// declaration of record types and top-level function/method signatures,
// then full scoping, type resolution, and compatibility checking over
// every statement and expression (spec §4.4).
package analyzer

import (
	"github.com/wrkean/tolc/internal/ast"
	"github.com/wrkean/tolc/internal/config"
	"github.com/wrkean/tolc/internal/diagnostics"
	"github.com/wrkean/tolc/internal/symbols"
	"github.com/wrkean/tolc/internal/toltype"
)

// Analyzer walks a parsed Program, populating a SymbolTable and two side
// tables codegen needs: InferredTypes (per-node-id result of type
// inference) and DeclaredArrayTypes (every distinct array shape, in first-
// encounter order, so codegen can emit one C struct definition per shape
// before it is first used).
type Analyzer struct {
	Symbols            *symbols.SymbolTable
	InferredTypes      map[int]toltype.Type
	DeclaredArrayTypes []toltype.Array
	Errors             []*diagnostics.Diagnostic
	HasError           bool

	declaredArraySeen map[string]bool
	currentReceiver   toltype.Type // non-nil while analyzing an itupad method body
	currentReturn     toltype.Type // declared return type of the enclosing paraan/method
	loopDepth         int
}

// New creates an Analyzer with a fresh SymbolTable seeded with every
// primitive type, in config.PrimitiveTypeOrder (original_source's
// declare_primitive_types sequence).
func New() *Analyzer {
	a := &Analyzer{
		Symbols:           symbols.New(),
		InferredTypes:     make(map[int]toltype.Type),
		declaredArraySeen: make(map[string]bool),
	}
	for _, name := range config.PrimitiveTypeOrder {
		a.Symbols.DeclareType(name, symbols.NewTypeInfo(toltype.ByName[name]))
	}
	return a
}

// Analyze runs the two passes over prog: forward declarations, then full
// body analysis. It never panics on malformed input — every failure is
// recorded as a Diagnostic and analysis continues so later stages see the
// full error set in one run (spec §5).
func (a *Analyzer) Analyze(prog *ast.Program) {
	a.forwardDeclareRecords(prog)
	a.forwardDeclareSignatures(prog)
	for _, stmt := range prog.Statements {
		a.analyzeTopLevel(stmt)
	}
}

// recordType stores the inferred type of node n, keyed by its unique id.
func (a *Analyzer) recordType(n ast.Node, t toltype.Type) toltype.Type {
	a.InferredTypes[n.NodeID()] = t
	return t
}

// recordArrayShape remembers arr the first time a given element+length
// combination is seen, in encounter order (spec §4.5's
// declared_array_types, consumed by codegen's DEFINE_TOL_ARRAY_STRUCT
// emission).
func (a *Analyzer) recordArrayShape(arr toltype.Array) {
	key := arr.String()
	if a.declaredArraySeen[key] {
		return
	}
	a.declaredArraySeen[key] = true
	a.DeclaredArrayTypes = append(a.DeclaredArrayTypes, arr)
}

// resolveType resolves a parser-produced TolType against the type table:
// UnknownIdentifier becomes Bagay if a matching record was declared,
// Array/Pointer/MutablePointer element types are resolved recursively, and
// Array resolution also registers the shape via recordArrayShape. AkoType
// is left untouched here — it is substituted separately once the
// enclosing receiver type is known (substituteAko).
func (a *Analyzer) resolveType(t toltype.Type) toltype.Type {
	switch v := t.(type) {
	case toltype.UnknownIdentifier:
		if info, ok := a.Symbols.LookupType(v.Name); ok {
			return info.Kind
		}
		return t
	case toltype.Array:
		resolved := toltype.Array{Elem: a.resolveType(v.Elem), Length: v.Length}
		a.recordArrayShape(resolved)
		return resolved
	case toltype.Pointer:
		return toltype.Pointer{Elem: a.resolveType(v.Elem)}
	case toltype.MutablePointer:
		return toltype.MutablePointer{Elem: a.resolveType(v.Elem)}
	default:
		return t
	}
}

// substituteAko replaces every AkoType occurrence in t with receiver,
// recursing through Array/Pointer/MutablePointer so `*ako` and `[]ako`
// parameter shapes resolve too.
func substituteAko(t toltype.Type, receiver toltype.Type) toltype.Type {
	switch v := t.(type) {
	case toltype.AkoType:
		return receiver
	case toltype.Array:
		return toltype.Array{Elem: substituteAko(v.Elem, receiver), Length: v.Length}
	case toltype.Pointer:
		return toltype.Pointer{Elem: substituteAko(v.Elem, receiver)}
	case toltype.MutablePointer:
		return toltype.MutablePointer{Elem: substituteAko(v.Elem, receiver)}
	default:
		return t
	}
}
