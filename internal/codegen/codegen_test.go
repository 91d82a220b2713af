package codegen_test

import (
	"strings"
	"testing"

	"github.com/wrkean/tolc/internal/analyzer"
	"github.com/wrkean/tolc/internal/codegen"
	"github.com/wrkean/tolc/internal/lexer"
	"github.com/wrkean/tolc/internal/parser"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	toks := lexer.New(src).Tokenize()
	p := parser.New(toks)
	prog := p.ParseProgram()
	if len(p.Errors) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors)
	}
	a := analyzer.New()
	a.Analyze(prog)
	if a.HasError {
		t.Fatalf("unexpected analysis errors for %q: %v", src, a.Errors)
	}
	g := codegen.New(prog, a.Symbols, a.InferredTypes, a.DeclaredArrayTypes)
	return g.Generate()
}

func TestMainFunctionRenamedAndWrapped(t *testing.T) {
	out := generate(t, `paraan una() -> wala { ibalik; }`)
	if !strings.Contains(out, "wala "+"__TOL_main__(void)") && !strings.Contains(out, "void __TOL_main__(void)") {
		t.Fatalf("expected lowered entry point function, got:\n%s", out)
	}
	if !strings.Contains(out, "int main(void) {") {
		t.Fatalf("expected synthesized C main, got:\n%s", out)
	}
	if !strings.Contains(out, "__TOL_main__();") {
		t.Fatalf("expected main to call __TOL_main__, got:\n%s", out)
	}
}

func TestRecordLoweredToStruct(t *testing.T) {
	out := generate(t, `bagay Punto { x: i32, y: i32 }`)
	if !strings.Contains(out, "typedef struct Punto {") || !strings.Contains(out, "} Punto;") {
		t.Fatalf("expected a Punto struct typedef, got:\n%s", out)
	}
	if !strings.Contains(out, "int32_t x;") {
		t.Fatalf("expected a lowered int32_t field, got:\n%s", out)
	}
}

func TestMethodLoweredToFreeFunctionWithReceiver(t *testing.T) {
	out := generate(t, `
		bagay Punto { x: i32, y: i32 }
		itupad Punto {
			paraan area(ako) -> i32 { ibalik ako.x * ako.y; }
		}
	`)
	if !strings.Contains(out, "Punto_area(Punto* ako)") {
		t.Fatalf("expected a Punto_area free function taking a Punto* receiver, got:\n%s", out)
	}
	if !strings.Contains(out, "((ako->x) * (ako->y))") {
		t.Fatalf("expected pointer member access lowered with ->, got:\n%s", out)
	}
}

func TestMethodCallLoweredToFreeFunctionCall(t *testing.T) {
	out := generate(t, `
		bagay Punto { x: i32, y: i32 }
		itupad Punto {
			paraan area(ako) -> i32 { ibalik ako.x * ako.y; }
		}
		paraan una() -> wala {
			ang p = Punto!(x: 1, y: 2);
			ang a = p.area();
		}
	`)
	if !strings.Contains(out, "Punto_area((&p))") {
		t.Fatalf("expected a Punto_area call taking the address of p, got:\n%s", out)
	}
}

func TestArrayShapeEmitsDefineMacroCall(t *testing.T) {
	out := generate(t, `ang xs: [3] i32 = [1, 2, 3];`)
	if !strings.Contains(out, "DEFINE_TOL_ARRAY_STRUCT(TOL_Array_int32_t, int32_t, 3);") {
		t.Fatalf("expected a DEFINE_TOL_ARRAY_STRUCT invocation for the array shape, got:\n%s", out)
	}
}

func TestSaRangeLoweredToForLoop(t *testing.T) {
	out := generate(t, `
		paraan una() -> wala {
			sa 0..10 => i {
				@println(i);
			}
		}
	`)
	if !strings.Contains(out, "for (int32_t i = 0; i < 10; i++) {") {
		t.Fatalf("expected a lowered C for loop, got:\n%s", out)
	}
}
