package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wrkean/tolc/internal/ast"
	"github.com/wrkean/tolc/internal/config"
	"github.com/wrkean/tolc/internal/toltype"
)

// genExpr lowers e to a C expression string. It never needs to report an
// error — every expression reaching codegen already survived analysis —
// so an unrecognized shape falls back to a literal "0" rather than
// panicking, keeping code generation total over a well-formed AST.
func (g *Generator) genExpr(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.IntLit:
		return v.Tok.Lexeme
	case *ast.FloatLit:
		return v.Tok.Lexeme
	case *ast.StringLit:
		return strconv.Quote(v.Tok.Lexeme)
	case *ast.ByteStringLit:
		return g.genByteStringLit(v)
	case *ast.Identifier:
		if v.Tok.Lexeme == config.MainFunctionName {
			return config.MainFunctionCName
		}
		return v.Tok.Lexeme
	case *ast.Binary:
		return fmt.Sprintf("(%s %s %s)", g.genExpr(v.Left), v.Op.Lexeme, g.genExpr(v.Right))
	case *ast.Assign:
		return fmt.Sprintf("(%s = %s)", g.genExpr(v.Left), g.genExpr(v.Right))
	case *ast.FnCall:
		return g.genCall(v)
	case *ast.MagicFnCall:
		return g.genMagicCall(v)
	case *ast.MemberAccess:
		return g.genMemberAccess(v)
	case *ast.ScopeResolution:
		ident, _ := v.Left.(*ast.Identifier)
		name := ""
		if ident != nil {
			name = ident.Tok.Lexeme
		}
		return fmt.Sprintf("%s_%s", name, v.Field.Lexeme)
	case *ast.StructLit:
		return g.genStructLit(v)
	case *ast.ArrayLit:
		return g.genArrayLit(v)
	case *ast.AddressOf:
		return "(&" + g.genExpr(v.Operand) + ")"
	case *ast.MutableAddressOf:
		return "(&" + g.genExpr(v.Operand) + ")"
	case *ast.Deref:
		return "(*" + g.genExpr(v.Operand) + ")"
	default:
		return "0"
	}
}

// genCall lowers either a plain `name(args)` paraan call or a
// `recv.method(args)` method call, the latter keyed on the same
// FnCall{Callee: MemberAccess} shape the parser builds (spec §4.5).
func (g *Generator) genCall(call *ast.FnCall) string {
	args := make([]string, len(call.Args))
	for i, a := range call.Args {
		args[i] = g.genExpr(a)
	}

	if ma, ok := call.Callee.(*ast.MemberAccess); ok {
		recvType := g.typeOf(ma.Left)
		typeName := bagayName(recvType)
		recvExpr := g.genExpr(ma.Left)
		if !isPointer(recvType) {
			recvExpr = "(&" + recvExpr + ")"
		}
		allArgs := append([]string{recvExpr}, args...)
		return fmt.Sprintf("%s_%s(%s)", typeName, ma.Member.Lexeme, strings.Join(allArgs, ", "))
	}

	name := g.genExpr(call.Callee)
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

func bagayName(t toltype.Type) string {
	switch v := t.(type) {
	case toltype.Bagay:
		return v.Name
	case toltype.Pointer:
		return bagayName(v.Elem)
	case toltype.MutablePointer:
		return bagayName(v.Elem)
	default:
		return t.String()
	}
}

func isPointer(t toltype.Type) bool {
	switch t.(type) {
	case toltype.Pointer, toltype.MutablePointer:
		return true
	default:
		return false
	}
}

// genMagicCall lowers the three compiler intrinsics (spec §4.4/§4.5):
// print/println pick a printf conversion from the argument's TolType,
// alis lowers to free().
func (g *Generator) genMagicCall(call *ast.MagicFnCall) string {
	switch call.Name.Lexeme {
	case config.PrintIntrinsic, config.PrintlnIntrinsic:
		if len(call.Args) == 0 {
			return `printf("")`
		}
		arg := call.Args[0]
		spec := formatSpecifier(g.typeOf(arg))
		nl := ""
		if call.Name.Lexeme == config.PrintlnIntrinsic {
			nl = `\n`
		}
		return fmt.Sprintf(`printf("%s%s", %s)`, spec, nl, g.genExpr(arg))
	case config.AlisIntrinsic:
		if len(call.Args) == 0 {
			return "/* @alis: walang argumento */"
		}
		return fmt.Sprintf("free(%s)", g.genExpr(call.Args[0]))
	default:
		return "0"
	}
}

func formatSpecifier(t toltype.Type) string {
	switch {
	case toltype.IsFloat(t):
		return "%f"
	case toltype.Equal(t, toltype.Bool):
		return "%d"
	case toltype.Equal(t, toltype.Kar):
		return "%c"
	case toltype.IsInteger(t):
		return "%lld"
	default:
		if _, ok := t.(toltype.Pointer); ok {
			return "%s"
		}
		return "%p"
	}
}

// genMemberAccess lowers a plain field read, choosing `.` or `->` based on
// whether the receiver's resolved type is a pointer (spec §4.4's
// auto-deref rule for `.`).
func (g *Generator) genMemberAccess(ma *ast.MemberAccess) string {
	recvType := g.typeOf(ma.Left)
	op := "."
	if isPointer(recvType) {
		op = "->"
	}
	return fmt.Sprintf("(%s%s%s)", g.genExpr(ma.Left), op, ma.Member.Lexeme)
}

func (g *Generator) genStructLit(lit *ast.StructLit) string {
	parts := make([]string, len(lit.Fields))
	for i, f := range lit.Fields {
		parts[i] = fmt.Sprintf(".%s = %s", f.Name.Lexeme, g.genExpr(f.Value))
	}
	return fmt.Sprintf("(%s){ %s }", lit.Callee.Lexeme, strings.Join(parts, ", "))
}

func (g *Generator) genArrayLit(lit *ast.ArrayLit) string {
	parts := make([]string, len(lit.Elements))
	for i, el := range lit.Elements {
		parts[i] = g.genExpr(el)
	}
	return fmt.Sprintf("(%s){ .data = { %s }, .length = %d }", g.cNameOf(lit), strings.Join(parts, ", "), len(lit.Elements))
}

func (g *Generator) genByteStringLit(lit *ast.ByteStringLit) string {
	s, _ := lit.Tok.Literal.(string)
	if s == "" {
		s = lit.Tok.Lexeme
	}
	bytes := []byte(s)
	parts := make([]string, len(bytes))
	for i, b := range bytes {
		parts[i] = strconv.Itoa(int(b))
	}
	return fmt.Sprintf("(%s){ .data = { %s }, .length = %d }", g.cNameOf(lit), strings.Join(parts, ", "), len(bytes))
}
