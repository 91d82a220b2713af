// Package codegen lowers an analyzed Tol AST to a single C translation
// unit (spec §4.5), handed by cmd/tolc to gcc. It performs no checking of
// its own — every type error was already caught by internal/analyzer —
// and instead focuses purely on the TolType->C lowering table and the
// statement/expression shape translations spec §4.5 names.
package codegen

import (
	"fmt"
	"strings"

	"github.com/wrkean/tolc/internal/ast"
	"github.com/wrkean/tolc/internal/config"
	"github.com/wrkean/tolc/internal/symbols"
	"github.com/wrkean/tolc/internal/toltype"
)

// Generator builds the output translation unit in a single pass over the
// AST, consulting the analyzer's InferredTypes side table rather than
// re-inferring anything.
type Generator struct {
	prog   *ast.Program
	syms   *symbols.SymbolTable
	types  map[int]toltype.Type
	arrays []toltype.Array

	sb     strings.Builder
	indent int
}

// New builds a Generator from a Module's already-analyzed state.
func New(prog *ast.Program, syms *symbols.SymbolTable, types map[int]toltype.Type, arrays []toltype.Array) *Generator {
	return &Generator{prog: prog, syms: syms, types: types, arrays: arrays}
}

func (g *Generator) line(format string, args ...interface{}) {
	g.sb.WriteString(strings.Repeat("    ", g.indent))
	fmt.Fprintf(&g.sb, format, args...)
	g.sb.WriteString("\n")
}

// Generate returns the complete translation unit text.
func (g *Generator) Generate() string {
	g.genHeader()
	g.genArrayStructs()
	g.genRecordTypedefs()

	var mainFn *ast.Par
	for _, stmt := range g.prog.Statements {
		switch s := stmt.(type) {
		case *ast.Par:
			if s.Name.Lexeme == config.MainFunctionName {
				mainFn = s
			}
			g.genFunction(s)
		case *ast.ItupadDecl:
			g.genItupad(s)
		}
	}
	g.genEntryPoint(mainFn)
	return g.sb.String()
}

func (g *Generator) genHeader() {
	g.line("// generated by tolc; do not edit by hand")
	g.line("#include <stdint.h>")
	g.line("#include <stddef.h>")
	g.line("#include <stdbool.h>")
	g.line("#include <stdio.h>")
	g.line("#include <stdlib.h>")
	g.line("#include <string.h>")
	g.line("")
	g.line("#define DEFINE_TOL_ARRAY_STRUCT(name, elem, len) \\")
	g.line("    typedef struct { elem data[len > 0 ? len : 1]; size_t length; } name")
	g.line("")
}

// genArrayStructs emits one struct definition per distinct array shape
// encountered during analysis, in first-encounter order (spec §4.5).
func (g *Generator) genArrayStructs() {
	for _, arr := range g.arrays {
		length := 0
		if arr.Length != nil {
			length = *arr.Length
		}
		g.line("DEFINE_TOL_ARRAY_STRUCT(%s, %s, %d);", toltype.CName(arr), toltype.CName(arr.Elem), length)
	}
	if len(g.arrays) > 0 {
		g.line("")
	}
}

// genRecordTypedefs emits a C struct for every `bagay` declaration, in the
// order they were declared.
func (g *Generator) genRecordTypedefs() {
	for _, stmt := range g.prog.Statements {
		decl, ok := stmt.(*ast.BagayDecl)
		if !ok {
			continue
		}
		g.line("typedef struct %s {", decl.Name.Lexeme)
		g.indent++
		for _, f := range decl.Fields {
			g.line("%s %s;", toltype.CName(g.resolveField(decl.Name.Lexeme, f.Name.Lexeme)), f.Name.Lexeme)
		}
		g.indent--
		g.line("} %s;", decl.Name.Lexeme)
		g.line("")
	}
}

// resolveField looks the field's resolved type up via the type table
// (populated by the analyzer), falling back to toltype.Unknown{} (lowered
// as void) if the record or field was never registered (should not happen
// for a module that reached codegen, since that requires HasError == false).
func (g *Generator) resolveField(typeName, fieldName string) toltype.Type {
	if info, ok := g.syms.LookupType(typeName); ok {
		if sym, ok := info.Members[fieldName]; ok {
			return sym.Type
		}
	}
	return toltype.Unknown{}
}

func (g *Generator) cNameOf(n ast.Node) string {
	if t, ok := g.types[n.NodeID()]; ok {
		return toltype.CName(t)
	}
	return "void"
}

func (g *Generator) typeOf(n ast.Node) toltype.Type {
	if t, ok := g.types[n.NodeID()]; ok {
		return t
	}
	return toltype.Unknown{}
}

// genFunction emits a top-level `paraan` as a plain C function. The
// reserved entry point `una` is renamed to config.MainFunctionCName so it
// never collides with the synthesized C `main` genEntryPoint emits.
func (g *Generator) genFunction(fn *ast.Par) {
	name := fn.Name.Lexeme
	if name == config.MainFunctionName {
		name = config.MainFunctionCName
	}
	g.line("%s %s(%s) {", toltype.CName(fn.ReturnType), name, g.genParamList(fn.Params, ""))
	g.indent++
	g.genStatements(fn.Body.Statements)
	g.indent--
	g.line("}")
	g.line("")
}

// genItupad lowers every method of an impl block to a free C function
// named <Type>_<method>, matching the FnCall{Callee: MemberAccess} call
// sites genExpr emits for `recv.method(args)` (spec §4.5).
func (g *Generator) genItupad(decl *ast.ItupadDecl) {
	typeName := decl.ForType.Lexeme
	for _, m := range decl.Methods {
		cName := typeName + "_" + m.Name.Lexeme
		receiver := ""
		if !m.IsStatic {
			receiver = typeName + "* ako"
		}
		g.line("%s %s(%s) {", toltype.CName(m.ReturnType), cName, g.genParamList(m.Params, receiver))
		g.indent++
		g.genStatements(m.Body.Statements)
		g.indent--
		g.line("}")
		g.line("")
	}
}

// genParamList renders a C parameter list; leading is an already-formatted
// receiver parameter (empty for static methods and plain functions), and
// the reserved `ako` entry in params is skipped since leading covers it.
func (g *Generator) genParamList(params []ast.Param, leading string) string {
	var parts []string
	if leading != "" {
		parts = append(parts, leading)
	}
	for _, p := range params {
		if p.Ako {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", toltype.CName(p.Type), p.Name.Lexeme))
	}
	if len(parts) == 0 {
		return "void"
	}
	return strings.Join(parts, ", ")
}

// genEntryPoint emits a C `main` that calls the lowered `una` function, if
// the module declared one. A module with no `una` (e.g. a library-only
// file processed for its side tables only) produces no `main`.
func (g *Generator) genEntryPoint(mainFn *ast.Par) {
	if mainFn == nil {
		return
	}
	g.line("int main(void) {")
	g.indent++
	if toltype.Equal(mainFn.ReturnType, toltype.Wala) {
		g.line("%s();", config.MainFunctionCName)
		g.line("return 0;")
	} else {
		g.line("return (int)%s();", config.MainFunctionCName)
	}
	g.indent--
	g.line("}")
}
