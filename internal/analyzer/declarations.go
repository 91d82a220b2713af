package analyzer

import (
	"github.com/wrkean/tolc/internal/ast"
	"github.com/wrkean/tolc/internal/symbols"
	"github.com/wrkean/tolc/internal/toltype"
)

// forwardDeclareRecords is pass 1a: register an empty TypeInfo for every
// `bagay` before any field or signature is resolved, so mutually
// referencing records (A holding a *B field, B holding a *A field) both
// resolve (spec §4.4's two-pass requirement).
func (a *Analyzer) forwardDeclareRecords(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		decl, ok := stmt.(*ast.BagayDecl)
		if !ok {
			continue
		}
		if _, exists := a.Symbols.LookupType(decl.Name.Lexeme); exists {
			a.errorAt(decl.Name, "ulit na pagdedeklara ng tipong '%s'", decl.Name.Lexeme)
			continue
		}
		a.Symbols.DeclareType(decl.Name.Lexeme, symbols.NewTypeInfo(toltype.Bagay{Name: decl.Name.Lexeme}))
	}
}

// forwardDeclareSignatures is pass 1b: fill in each record's fields (now
// that every record name exists) and register every top-level paraan's and
// itupad method's signature, so bodies analyzed in pass 2 can call
// functions and methods regardless of textual order.
func (a *Analyzer) forwardDeclareSignatures(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		switch decl := stmt.(type) {
		case *ast.BagayDecl:
			info, _ := a.Symbols.LookupType(decl.Name.Lexeme)
			for _, f := range decl.Fields {
				ft := a.resolveType(f.Type)
				if _, dup := info.Members[f.Name.Lexeme]; dup {
					a.errorAt(f.Name, "ulit na field na '%s' sa bagay na '%s'", f.Name.Lexeme, decl.Name.Lexeme)
					continue
				}
				info.Members[f.Name.Lexeme] = &symbols.Symbol{Name: f.Name.Lexeme, Kind: symbols.VarKind, Type: ft, Mutable: true}
			}
		case *ast.Par:
			sym := &symbols.Symbol{
				Name:       decl.Name.Lexeme,
				Kind:       symbols.ParaanKind,
				Type:       a.resolveType(decl.ReturnType),
				ParamTypes: a.resolveParamTypes(decl.Params, nil),
			}
			if err := a.Symbols.Declare(sym); err != nil {
				a.errorAt(decl.Name, "ulit na pagdedeklara ng paraan na '%s'", decl.Name.Lexeme)
			}
		case *ast.ItupadDecl:
			info, ok := a.Symbols.LookupType(decl.ForType.Lexeme)
			if !ok {
				a.errorAt(decl.ForType, "hindi kilalang tipo sa itupad: '%s'", decl.ForType.Lexeme)
				continue
			}
			for _, m := range decl.Methods {
				sym := &symbols.Symbol{
					Name:       m.Name.Lexeme,
					Kind:       symbols.MethodKind,
					Type:       substituteAko(a.resolveType(m.ReturnType), info.Kind),
					ParamTypes: a.resolveParamTypes(m.Params, info.Kind),
					IsStatic:   m.IsStatic,
				}
				target := info.Members
				if m.IsStatic {
					target = info.StaticMembers
				}
				if _, dup := target[m.Name.Lexeme]; dup {
					a.errorAt(m.Name, "ulit na paraan na '%s' para sa tipong '%s'", m.Name.Lexeme, decl.ForType.Lexeme)
					continue
				}
				target[m.Name.Lexeme] = sym
			}
		}
	}
}

// resolveParamTypes resolves every parameter's declared type. The reserved
// `ako` parameter resolves to a mutable pointer to the enclosing record
// (matching the `<Type>* ako` receiver codegen emits for every instance
// method), not the bare record type.
func (a *Analyzer) resolveParamTypes(params []ast.Param, receiver toltype.Type) []toltype.Type {
	out := make([]toltype.Type, len(params))
	for i, p := range params {
		if p.Ako {
			if receiver == nil {
				a.errorAt(p.Name, "ang 'ako' ay maaari lamang gamitin sa loob ng itupad")
				out[i] = toltype.Unknown{}
				continue
			}
			out[i] = toltype.MutablePointer{Elem: receiver}
			continue
		}
		out[i] = a.resolveType(p.Type)
	}
	return out
}

// analyzeTopLevel dispatches a module-level statement: record declarations
// were already fully handled in the forward-declare passes, function and
// method bodies are analyzed here (pass 2), and any other statement kind
// (ang/ibalik/kung/sa/expression) is analyzed directly against the bottom
// scope, letting a Tol file carry top-level script statements alongside
// its declarations.
func (a *Analyzer) analyzeTopLevel(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BagayDecl:
		// fields already resolved in forwardDeclareSignatures.
	case *ast.Par:
		a.analyzePar(s)
	case *ast.ItupadDecl:
		a.analyzeItupad(s)
	default:
		a.analyzeStmt(stmt)
	}
}

func (a *Analyzer) analyzePar(decl *ast.Par) {
	a.Symbols.PushScope()
	defer a.Symbols.PopScope()
	for _, p := range decl.Params {
		a.declareParam(p, nil)
	}
	retType := a.resolveType(decl.ReturnType)
	a.analyzeBlockWithReturn(decl.Body, retType)
}

func (a *Analyzer) analyzeItupad(decl *ast.ItupadDecl) {
	info, ok := a.Symbols.LookupType(decl.ForType.Lexeme)
	if !ok {
		return // already reported in forwardDeclareSignatures
	}
	prevReceiver := a.currentReceiver
	a.currentReceiver = info.Kind
	for _, m := range decl.Methods {
		a.Symbols.PushScope()
		for _, p := range m.Params {
			a.declareParam(p, info.Kind)
		}
		retType := substituteAko(a.resolveType(m.ReturnType), info.Kind)
		a.analyzeBlockWithReturn(m.Body, retType)
		a.Symbols.PopScope()
	}
	a.currentReceiver = prevReceiver
}

// declareParam declares a parameter binding in the innermost scope. The
// reserved `ako` parameter is bound as a mutable pointer to receiver, since
// every instance method receives its receiver by address (codegen emits
// `<Type>* ako`). Like every parameter, the `ako` binding itself is not
// `maiba`, so checkLValue rejects an assignment such as `ako.x = v`.
func (a *Analyzer) declareParam(p ast.Param, receiver toltype.Type) {
	t := a.resolveType(p.Type)
	if p.Ako {
		if receiver == nil {
			a.errorAt(p.Name, "ang 'ako' ay maaari lamang gamitin sa loob ng itupad")
			t = toltype.Unknown{}
		} else {
			t = toltype.MutablePointer{Elem: receiver}
		}
	}
	sym := &symbols.Symbol{Name: p.Name.Lexeme, Kind: symbols.VarKind, Type: t, Mutable: false}
	if err := a.Symbols.Declare(sym); err != nil {
		a.errorAt(p.Name, "ulit na parameter na '%s'", p.Name.Lexeme)
	}
}
