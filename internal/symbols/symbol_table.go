// Package symbols implements Symbol, TypeInfo, and the scope-stack
// SymbolTable used by the analyzer for name resolution (spec §3, §4.4).
package symbols

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/wrkean/tolc/internal/toltype"
)

// Kind distinguishes the four Symbol variants (spec §3).
type Kind int

const (
	VarKind Kind = iota
	ParaanKind
	MethodKind
	BagayKind
)

// Symbol is a named entity declared in some scope.
type Symbol struct {
	Name       string
	Kind       Kind
	Mutable    bool           // Var only
	Type       toltype.Type   // Var: its type. Paraan/Method: return type.
	ParamTypes []toltype.Type // Paraan/Method only
	IsStatic   bool           // Method only
}

// TypeInfo is the per-named-type record the analyzer populates: its kind
// (the TolType it denotes), instance members, and static members.
type TypeInfo struct {
	Kind          toltype.Type
	Members       map[string]*Symbol
	StaticMembers map[string]*Symbol
}

func NewTypeInfo(kind toltype.Type) *TypeInfo {
	return &TypeInfo{
		Kind:          kind,
		Members:       make(map[string]*Symbol),
		StaticMembers: make(map[string]*Symbol),
	}
}

// SymbolTable is a non-empty stack of scope maps (spec §3's Module
// invariant); the bottom scope holds top-level declarations. Primitive
// types are kept in the type table below, not in a scope, and the
// intrinsics are not declared as symbols at all. It
// also owns the type table, keyed by type name, since record/primitive
// types share the same declaration-scoping rules as values do not: type
// names live in a single flat table, not the scope stack.
type SymbolTable struct {
	scopes    []map[string]*Symbol
	types     map[string]*TypeInfo
	typeOrder []string // first-declaration order, for deterministic iteration
}

// New creates a SymbolTable with a single (bottom) scope.
func New() *SymbolTable {
	return &SymbolTable{
		scopes: []map[string]*Symbol{make(map[string]*Symbol)},
		types:  make(map[string]*TypeInfo),
	}
}

// PushScope enters a new, empty innermost scope.
func (st *SymbolTable) PushScope() {
	st.scopes = append(st.scopes, make(map[string]*Symbol))
}

// PopScope exits the innermost scope. Never pops the bottom scope.
func (st *SymbolTable) PopScope() {
	if len(st.scopes) <= 1 {
		return
	}
	st.scopes = st.scopes[:len(st.scopes)-1]
}

// Depth returns the number of active scopes, for callers that need to
// assert symmetric push/pop (e.g. on every analyzer exit path).
func (st *SymbolTable) Depth() int { return len(st.scopes) }

// Declare inserts sym into the innermost scope. It fails if the innermost
// scope already contains the name (spec §4.4's redeclaration rule; shadowing
// across scopes is permitted, only same-scope redeclaration is rejected).
func (st *SymbolTable) Declare(sym *Symbol) error {
	top := st.scopes[len(st.scopes)-1]
	if _, exists := top[sym.Name]; exists {
		return fmt.Errorf("already declared in scope: %s", sym.Name)
	}
	top[sym.Name] = sym
	return nil
}

// Lookup searches scopes from innermost to outermost.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if sym, ok := st.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// NamesInScope lists every name declared in the innermost scope in sorted
// order, extracting the keys with golang.org/x/exp/maps.
func (st *SymbolTable) NamesInScope() []string {
	top := st.scopes[len(st.scopes)-1]
	names := maps.Keys(top)
	sort.Strings(names)
	return names
}

// DeclareType registers a new TypeInfo, recording first-declaration order.
func (st *SymbolTable) DeclareType(name string, info *TypeInfo) {
	if _, exists := st.types[name]; !exists {
		st.typeOrder = append(st.typeOrder, name)
	}
	st.types[name] = info
}

// LookupType resolves a type name against the type table.
func (st *SymbolTable) LookupType(name string) (*TypeInfo, bool) {
	info, ok := st.types[name]
	return info, ok
}

// TypeNamesInOrder returns declared type names in first-declaration order
// (primitive seeding order, then bagay declarations as encountered).
func (st *SymbolTable) TypeNamesInOrder() []string {
	out := make([]string, len(st.typeOrder))
	copy(out, st.typeOrder)
	return out
}
