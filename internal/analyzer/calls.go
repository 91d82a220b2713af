package analyzer

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/wrkean/tolc/internal/ast"
	"github.com/wrkean/tolc/internal/symbols"
	"github.com/wrkean/tolc/internal/toltype"
)

// inferCall checks a call expression. Three shapes are accepted for Callee:
// a bare Identifier naming a top-level paraan, a MemberAccess naming an
// instance method dispatched on its receiver (spec §4.5's method-call
// lowering is keyed on this same FnCall{Callee: MemberAccess} shape), or a
// ScopeResolution `Type::method` naming a static method.
func (a *Analyzer) inferCall(call *ast.FnCall) toltype.Type {
	switch callee := call.Callee.(type) {
	case *ast.Identifier:
		return a.inferParaanCall(call, callee)
	case *ast.MemberAccess:
		return a.inferMethodCall(call, callee)
	case *ast.ScopeResolution:
		a.inferScopeResolution(callee)
		if ident, ok := callee.Left.(*ast.Identifier); ok {
			if info, ok := a.Symbols.LookupType(ident.Tok.Lexeme); ok {
				if sym, ok := info.StaticMembers[callee.Field.Lexeme]; ok {
					a.checkArgs(call, sym)
					return a.recordType(call, sym.Type)
				}
			}
		}
		for _, arg := range call.Args {
			a.inferExpr(arg)
		}
		return a.recordType(call, toltype.Unknown{})
	default:
		a.errorAt(exprTok(call.Callee), "hindi maaaring tawagin ang expression na ito")
		for _, arg := range call.Args {
			a.inferExpr(arg)
		}
		return a.recordType(call, toltype.Unknown{})
	}
}

func (a *Analyzer) inferParaanCall(call *ast.FnCall, callee *ast.Identifier) toltype.Type {
	sym, ok := a.Symbols.Lookup(callee.Tok.Lexeme)
	if !ok || sym.Kind != symbols.ParaanKind {
		a.errorAt(callee.Tok, "hindi kilalang paraan: '%s'", callee.Tok.Lexeme)
		for _, arg := range call.Args {
			a.inferExpr(arg)
		}
		return a.recordType(call, toltype.Unknown{})
	}
	a.checkArgs(call, sym)
	return a.recordType(call, sym.Type)
}

// inferMethodCall analyzes `recv.method(args)`: the receiver's type is
// inferred first, then method is looked up in that type's Members table.
func (a *Analyzer) inferMethodCall(call *ast.FnCall, callee *ast.MemberAccess) toltype.Type {
	recvType := a.inferExpr(callee.Left)
	info, ok := a.lookupTypeInfo(recvType)
	if !ok {
		a.errorAt(callee.Member, "walang tipo ng field/paraan na pwedeng hanapan dito")
		for _, arg := range call.Args {
			a.inferExpr(arg)
		}
		return a.recordType(call, toltype.Unknown{})
	}
	sym, ok := info.Members[callee.Member.Lexeme]
	if !ok || sym.Kind != symbols.MethodKind {
		a.errorAt(callee.Member, "ang tipong '%s' ay walang paraan na '%s'", info.Kind, callee.Member.Lexeme)
		for _, arg := range call.Args {
			a.inferExpr(arg)
		}
		return a.recordType(call, toltype.Unknown{})
	}
	a.recordType(callee, sym.Type)
	a.checkArgs(call, sym)
	return a.recordType(call, sym.Type)
}

// checkArgs compares call's argument count and types against sym's
// registered ParamTypes. The receiver (`ako`) slot, if any, is not part of
// call.Args — it is the already-analyzed method-call receiver — so this
// only ever compares against the non-ako suffix of ParamTypes.
func (a *Analyzer) checkArgs(call *ast.FnCall, sym *symbols.Symbol) {
	params := sym.ParamTypes
	if sym.Kind == symbols.MethodKind && !sym.IsStatic && len(params) > 0 {
		params = params[1:]
	}
	argTypes := make([]toltype.Type, len(call.Args))
	for i, arg := range call.Args {
		argTypes[i] = a.inferExpr(arg)
	}
	if len(argTypes) != len(params) {
		a.errorAt(exprTok(call.Callee), "mali ang bilang ng argumento: inaasahan ang %d, nakuha ay %d", len(params), len(argTypes))
		return
	}
	for i, pt := range params {
		if !toltype.AssignableTo(argTypes[i], pt) {
			a.errorAt(exprTok(call.Args[i]), "hindi tugmang tipo ng argumento %d: inaasahan ang '%s', nakuha ay '%s'", i+1, pt, argTypes[i])
		}
	}
}

// inferMemberAccess handles a plain field read `recv.field` (not part of a
// call expression — inferCall intercepts the method-call shape above).
func (a *Analyzer) inferMemberAccess(ma *ast.MemberAccess) toltype.Type {
	recvType := a.inferExpr(ma.Left)
	info, ok := a.lookupTypeInfo(recvType)
	if !ok {
		a.errorAt(ma.Member, "walang field na pwedeng hanapin dito")
		return a.recordType(ma, toltype.Unknown{})
	}
	sym, ok := info.Members[ma.Member.Lexeme]
	if !ok {
		a.errorAt(ma.Member, "ang tipong '%s' ay walang field na '%s'", info.Kind, ma.Member.Lexeme)
		return a.recordType(ma, toltype.Unknown{})
	}
	return a.recordType(ma, sym.Type)
}

// inferScopeResolution handles `Type::field`, the static-member access
// path (inferCall also calls it when the scope-resolution expression is
// itself the callee of a FnCall, then checks the static method's arguments).
func (a *Analyzer) inferScopeResolution(sr *ast.ScopeResolution) toltype.Type {
	ident, ok := sr.Left.(*ast.Identifier)
	if !ok {
		a.errorAt(sr.Field, "ang '::' ay umaasa ng pangalan ng tipo sa kaliwa")
		return a.recordType(sr, toltype.Unknown{})
	}
	info, ok := a.Symbols.LookupType(ident.Tok.Lexeme)
	if !ok {
		a.errorAt(ident.Tok, "hindi kilalang tipo: '%s'", ident.Tok.Lexeme)
		return a.recordType(sr, toltype.Unknown{})
	}
	sym, ok := info.StaticMembers[sr.Field.Lexeme]
	if !ok {
		a.errorAt(sr.Field, "ang tipong '%s' ay walang static na miyembrong '%s'", info.Kind, sr.Field.Lexeme)
		return a.recordType(sr, toltype.Unknown{})
	}
	return a.recordType(sr, sym.Type)
}

// lookupTypeInfo resolves t (directly, or through one level of pointer
// indirection, since `.`/`::` auto-dereference per spec §4.4) to its
// TypeInfo.
func (a *Analyzer) lookupTypeInfo(t toltype.Type) (*symbols.TypeInfo, bool) {
	switch v := t.(type) {
	case toltype.Bagay:
		return a.Symbols.LookupType(v.Name)
	case toltype.Pointer:
		return a.lookupTypeInfo(v.Elem)
	case toltype.MutablePointer:
		return a.lookupTypeInfo(v.Elem)
	default:
		return nil, false
	}
}

// inferStructLit checks a `Type!(field: value, ...)` struct literal
// against Type's declared field set: every field must be present exactly
// once, every value must be assignment-compatible with its field's type.
func (a *Analyzer) inferStructLit(lit *ast.StructLit) toltype.Type {
	info, ok := a.Symbols.LookupType(lit.Callee.Lexeme)
	if !ok {
		a.errorAt(lit.Callee, "hindi kilalang tipo: '%s'", lit.Callee.Lexeme)
		for _, f := range lit.Fields {
			a.inferExpr(f.Value)
		}
		return a.recordType(lit, toltype.Unknown{})
	}
	seen := make(map[string]bool)
	for _, f := range lit.Fields {
		valType := a.inferExpr(f.Value)
		sym, ok := info.Members[f.Name.Lexeme]
		if !ok {
			a.errorAt(f.Name, "ang tipong '%s' ay walang field na '%s'", info.Kind, f.Name.Lexeme)
			continue
		}
		if seen[f.Name.Lexeme] {
			a.errorAt(f.Name, "ulit na field na '%s' sa struct literal", f.Name.Lexeme)
			continue
		}
		seen[f.Name.Lexeme] = true
		if !toltype.AssignableTo(valType, sym.Type) {
			a.errorAt(f.Name, "hindi tugmang tipo para sa field na '%s': inaasahan ang '%s', nakuha ay '%s'", f.Name.Lexeme, sym.Type, valType)
		}
	}
	missing := maps.Keys(info.Members)
	sort.Strings(missing)
	for _, name := range missing {
		if !seen[name] {
			a.errorAt(lit.Callee, "kulang ang field na '%s' sa struct literal ng '%s'", name, lit.Callee.Lexeme)
		}
	}
	return a.recordType(lit, info.Kind)
}
