// Package module owns the Module struct spec §2 describes: the shared
// state every compilation stage reads and mutates, plus the fixed,
// sequential Lexer -> Parser -> Analyzer -> CodeGenerator orchestration
// that replaces the teacher's generic, pluggable Processor/Pipeline
// abstraction (DESIGN.md) with the single fixed stage order Tol requires.
package module

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wrkean/tolc/internal/analyzer"
	"github.com/wrkean/tolc/internal/ast"
	"github.com/wrkean/tolc/internal/codegen"
	"github.com/wrkean/tolc/internal/diagnostics"
	"github.com/wrkean/tolc/internal/lexer"
	"github.com/wrkean/tolc/internal/parser"
	"github.com/wrkean/tolc/internal/symbols"
	"github.com/wrkean/tolc/internal/token"
	"github.com/wrkean/tolc/internal/toltype"
)

// Module is one compilation unit: a single .tol source file carried
// through every stage. Tol has no multi-file imports (spec's Non-goals),
// so a Module is the compiler's entire unit of work.
type Module struct {
	Source string
	Path   string

	// BuildID namespaces this compilation's generated artifacts
	// (build/<BuildID>/...), so concurrent or repeated invocations over
	// the same source path never collide.
	BuildID string

	Tokens []token.Token
	AST    *ast.Program

	Symbols            *symbols.SymbolTable
	InferredTypes      map[int]toltype.Type
	DeclaredArrayTypes []toltype.Array

	Diagnostics []*diagnostics.Diagnostic
	HasError    bool

	GeneratedC string
}

// New creates a Module for the given source text and its originating
// path, tagging it with a fresh build id.
func New(path, source string) *Module {
	return &Module{
		Source:  source,
		Path:    path,
		BuildID: uuid.NewString(),
	}
}

// Compile runs every stage in strict order, short-circuiting as soon as a
// stage reports an error (spec §5's "codegen never runs over a module with
// HasError set" invariant, grounded on original_source/lib.rs::compile's
// `if !analyzer.has_error()` gate).
func (m *Module) Compile() error {
	lx := lexer.New(m.Source)
	m.Tokens = lx.Tokenize()
	m.Diagnostics = append(m.Diagnostics, lx.Errors...)
	if len(lx.Errors) > 0 {
		m.HasError = true
		return fmt.Errorf("lexical errors in %s", m.Path)
	}

	p := parser.New(m.Tokens)
	m.AST = p.ParseProgram()
	m.Diagnostics = append(m.Diagnostics, p.Errors...)
	if p.HasError {
		m.HasError = true
		return fmt.Errorf("syntax errors in %s", m.Path)
	}

	az := analyzer.New()
	az.Analyze(m.AST)
	m.Symbols = az.Symbols
	m.InferredTypes = az.InferredTypes
	m.DeclaredArrayTypes = az.DeclaredArrayTypes
	m.Diagnostics = append(m.Diagnostics, az.Errors...)
	if az.HasError {
		m.HasError = true
		return fmt.Errorf("semantic errors in %s", m.Path)
	}

	gen := codegen.New(m.AST, m.Symbols, m.InferredTypes, m.DeclaredArrayTypes)
	m.GeneratedC = gen.Generate()
	return nil
}
