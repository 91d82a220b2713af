package analyzer

import (
	"github.com/wrkean/tolc/internal/ast"
	"github.com/wrkean/tolc/internal/config"
	"github.com/wrkean/tolc/internal/token"
	"github.com/wrkean/tolc/internal/toltype"
)

// exprTok finds a concrete token to position a diagnostic at, walking down
// to the nearest literal/identifier/operator token a node actually owns.
func exprTok(e ast.Expr) token.Token {
	switch v := e.(type) {
	case *ast.IntLit:
		return v.Tok
	case *ast.FloatLit:
		return v.Tok
	case *ast.StringLit:
		return v.Tok
	case *ast.ByteStringLit:
		return v.Tok
	case *ast.Identifier:
		return v.Tok
	case *ast.Binary:
		return v.Op
	case *ast.Assign:
		return exprTok(v.Left)
	case *ast.FnCall:
		return exprTok(v.Callee)
	case *ast.MagicFnCall:
		return v.Name
	case *ast.MemberAccess:
		return v.Member
	case *ast.ScopeResolution:
		return v.Field
	case *ast.StructLit:
		return v.Callee
	case *ast.ArrayLit:
		if len(v.Elements) > 0 {
			return exprTok(v.Elements[0])
		}
	case *ast.RangeExclusive:
		return exprTok(v.Start)
	case *ast.RangeInclusive:
		return exprTok(v.Start)
	case *ast.AddressOf:
		return exprTok(v.Operand)
	case *ast.MutableAddressOf:
		return exprTok(v.Operand)
	case *ast.Deref:
		return exprTok(v.Operand)
	}
	return token.Token{}
}

var comparisonOps = map[string]bool{"==": true, "!=": true, ">": true, ">=": true, "<": true, "<=": true}

// inferExpr computes e's TolType, recording it in InferredTypes and
// reporting every compatibility violation it finds along the way (spec
// §4.4). It always returns a usable (possibly Unknown) type so callers can
// keep analyzing sibling expressions after an error.
func (a *Analyzer) inferExpr(e ast.Expr) toltype.Type {
	switch v := e.(type) {
	case *ast.IntLit:
		return a.recordType(v, toltype.UnsizedInt{})
	case *ast.FloatLit:
		return a.recordType(v, toltype.UnsizedFloat{})
	case *ast.StringLit:
		return a.recordType(v, toltype.Pointer{Elem: toltype.Kar})
	case *ast.ByteStringLit:
		n := len([]byte(v.Tok.Lexeme))
		if s, ok := v.Tok.Literal.(string); ok {
			n = len([]byte(s))
		}
		result := toltype.Array{Elem: toltype.U8, Length: &n}
		a.recordArrayShape(result)
		return a.recordType(v, result)
	case *ast.Identifier:
		return a.inferIdentifier(v)
	case *ast.Binary:
		return a.inferBinary(v)
	case *ast.Assign:
		return a.inferAssign(v)
	case *ast.FnCall:
		return a.inferCall(v)
	case *ast.MagicFnCall:
		return a.inferMagicCall(v)
	case *ast.MemberAccess:
		return a.inferMemberAccess(v)
	case *ast.ScopeResolution:
		return a.inferScopeResolution(v)
	case *ast.StructLit:
		return a.inferStructLit(v)
	case *ast.ArrayLit:
		return a.inferArrayLit(v)
	case *ast.RangeExclusive:
		a.checkRangeBound(v.Start)
		a.checkRangeBound(v.End)
		return a.recordType(v, toltype.Unknown{})
	case *ast.RangeInclusive:
		a.checkRangeBound(v.Start)
		a.checkRangeBound(v.End)
		return a.recordType(v, toltype.Unknown{})
	case *ast.AddressOf:
		inner := a.inferExpr(v.Operand)
		return a.recordType(v, toltype.Pointer{Elem: inner})
	case *ast.MutableAddressOf:
		inner := a.inferExpr(v.Operand)
		a.checkLValue(v.Operand)
		return a.recordType(v, toltype.MutablePointer{Elem: inner})
	case *ast.Deref:
		inner := a.inferExpr(v.Operand)
		switch p := inner.(type) {
		case toltype.Pointer:
			return a.recordType(v, p.Elem)
		case toltype.MutablePointer:
			return a.recordType(v, p.Elem)
		default:
			a.errorAt(exprTok(v), "hindi maaaring i-deref ang tipong '%s'", inner)
			return a.recordType(v, toltype.Unknown{})
		}
	default:
		return toltype.Unknown{}
	}
}

func (a *Analyzer) checkRangeBound(e ast.Expr) {
	t := a.inferExpr(e)
	if !toltype.IsInteger(t) {
		a.errorAt(exprTok(e), "ang hangganan ng range ay dapat na integer, nakuha ay '%s'", t)
	}
}

func (a *Analyzer) inferIdentifier(id *ast.Identifier) toltype.Type {
	sym, ok := a.Symbols.Lookup(id.Tok.Lexeme)
	if !ok {
		a.errorAt(id.Tok, "hindi kilalang pangalan: '%s'", id.Tok.Lexeme)
		return a.recordType(id, toltype.Unknown{})
	}
	return a.recordType(id, sym.Type)
}

func (a *Analyzer) inferBinary(b *ast.Binary) toltype.Type {
	left := a.inferExpr(b.Left)
	right := a.inferExpr(b.Right)
	if comparisonOps[b.Op.Lexeme] {
		if !toltype.ArithmeticCompatible(left, right) && !toltype.Equal(left, right) {
			a.errorAt(b.Op, "hindi maaaring ikumpara ang '%s' at '%s'", left, right)
		}
		return a.recordType(b, toltype.Bool)
	}
	if !toltype.ArithmeticCompatible(left, right) {
		a.errorAt(b.Op, "hindi tugmang mga tipo para sa operator na '%s': '%s' at '%s'", b.Op.Lexeme, left, right)
		return a.recordType(b, toltype.Unknown{})
	}
	return a.recordType(b, left)
}

func (a *Analyzer) inferAssign(as *ast.Assign) toltype.Type {
	a.checkLValue(as.Left)
	lt := a.inferExpr(as.Left)
	rt := a.inferExpr(as.Right)
	if !toltype.AssignableTo(rt, lt) {
		a.errorAt(exprTok(as), "hindi maaaring itakda ang '%s' sa isang baryableng tipong '%s'", rt, lt)
	}
	return a.recordType(as, lt)
}

// checkLValue enforces that as.Left denotes a mutable binding: a plain
// `maiba` variable, a field access on one, or a dereferenced mutable
// pointer (spec §4.4's l-value/mutability rule).
func (a *Analyzer) checkLValue(e ast.Expr) {
	switch v := e.(type) {
	case *ast.Identifier:
		sym, ok := a.Symbols.Lookup(v.Tok.Lexeme)
		if ok && !sym.Mutable {
			a.errorAt(v.Tok, "hindi maaaring baguhin ang di-'maiba' na baryableng '%s'", v.Tok.Lexeme)
		}
	case *ast.MemberAccess:
		a.checkLValue(v.Left)
	case *ast.Deref:
		t := a.inferExpr(v.Operand)
		if _, ok := t.(toltype.MutablePointer); !ok {
			a.errorAt(exprTok(v), "hindi maaaring baguhin sa pamamagitan ng hindi 'maiba' na pointer")
		}
	default:
		a.errorAt(exprTok(e), "hindi valid na l-value")
	}
}

func (a *Analyzer) inferArrayLit(arr *ast.ArrayLit) toltype.Type {
	if len(arr.Elements) == 0 {
		n := 0
		result := toltype.Array{Elem: toltype.Unknown{}, Length: &n}
		a.recordArrayShape(result)
		return a.recordType(arr, result)
	}
	elemType := a.inferExpr(arr.Elements[0])
	for _, el := range arr.Elements[1:] {
		t := a.inferExpr(el)
		if !toltype.AssignableTo(t, elemType) {
			a.errorAt(exprTok(el), "hindi tugmang tipo ng elemento sa array literal: '%s'", t)
		}
	}
	n := len(arr.Elements)
	result := toltype.Array{Elem: elemType, Length: &n}
	a.recordArrayShape(result)
	return a.recordType(arr, result)
}

// inferMagicCall type-checks a call to one of the three compiler
// intrinsics (spec §4.4's magic-function table); arity and argument types
// are otherwise unconstrained since print/println accept any TolType.
func (a *Analyzer) inferMagicCall(call *ast.MagicFnCall) toltype.Type {
	for _, arg := range call.Args {
		a.inferExpr(arg)
	}
	switch call.Name.Lexeme {
	case config.PrintIntrinsic, config.PrintlnIntrinsic:
		return a.recordType(call, toltype.Wala)
	case config.AlisIntrinsic:
		if len(call.Args) != 1 {
			a.errorAt(call.Name, "ang @%s ay umaasa ng eksaktong 1 argumento", call.Name.Lexeme)
		}
		return a.recordType(call, toltype.Wala)
	default:
		a.errorAt(call.Name, "hindi kilalang magic function na '@%s'", call.Name.Lexeme)
		return a.recordType(call, toltype.Unknown{})
	}
}
