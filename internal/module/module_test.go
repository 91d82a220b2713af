package module_test

import (
	"strings"
	"testing"

	"github.com/wrkean/tolc/internal/module"
)

func TestCompileEndToEnd(t *testing.T) {
	src := `
		bagay Punto {
			x: i32,
			y: i32,
		}

		itupad Punto {
			paraan area(ako) -> i32 {
				ibalik ako.x * ako.y;
			}
		}

		paraan una() -> wala {
			ang p = Punto!(x: 3, y: 4);
			ang a = p.area();
			@println(a);
		}
	`
	m := module.New("halimbawa.tol", src)
	if err := m.Compile(); err != nil {
		t.Fatalf("unexpected compile error: %v (diagnostics: %v)", err, m.Diagnostics)
	}
	if m.HasError {
		t.Fatalf("unexpected HasError with diagnostics: %v", m.Diagnostics)
	}
	if !strings.Contains(m.GeneratedC, "typedef struct Punto") {
		t.Fatalf("expected generated C to define Punto, got:\n%s", m.GeneratedC)
	}
	if !strings.Contains(m.GeneratedC, "int main(void)") {
		t.Fatalf("expected a synthesized C main, got:\n%s", m.GeneratedC)
	}
	if m.BuildID == "" {
		t.Fatalf("expected a non-empty BuildID")
	}
}

func TestCompileStopsAtFirstFailingStage(t *testing.T) {
	m := module.New("bad.tol", "ang x = ;")
	if err := m.Compile(); err == nil {
		t.Fatalf("expected a compile error for malformed input")
	}
	if m.GeneratedC != "" {
		t.Fatalf("expected codegen to be skipped after a parse error")
	}
	if !m.HasError {
		t.Fatalf("expected HasError to be set")
	}
}

func TestCompileReportsSemanticErrorsWithoutCodegen(t *testing.T) {
	m := module.New("type_error.tol", "ang x: bool = 1 + 2;")
	if err := m.Compile(); err == nil {
		t.Fatalf("expected a compile error for an assignment-incompatible binding")
	}
	if m.GeneratedC != "" {
		t.Fatalf("expected codegen to be skipped after a semantic error")
	}
}
