package diagnostics_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wrkean/tolc/internal/diagnostics"
)

func TestDisplayPlainNonTTYHasNoEscapeCodes(t *testing.T) {
	d := diagnostics.Newf(diagnostics.Error, 3, 7, "hindi tugmang tipo: %s", "i32")
	var buf bytes.Buffer
	d.Display(&buf, "halimbawa.tol")

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI escapes when writing to a non-tty buffer, got:\n%s", out)
	}
	if !strings.Contains(out, "ERROR") || !strings.Contains(out, "[3:7]") {
		t.Fatalf("expected severity tag and position in output, got:\n%s", out)
	}
	if !strings.Contains(out, "hindi tugmang tipo: i32") {
		t.Fatalf("expected the formatted message in output, got:\n%s", out)
	}
}

func TestSeverityTags(t *testing.T) {
	cases := map[diagnostics.Severity]string{
		diagnostics.Error:   "ERROR",
		diagnostics.Warning: "BABALA",
		diagnostics.Info:    "INPORMASYON",
	}
	for sev, want := range cases {
		var buf bytes.Buffer
		diagnostics.New(sev, "x", 1, 1).Display(&buf, "f.tol")
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected tag %q in output for severity %v, got:\n%s", want, sev, buf.String())
		}
	}
}

func TestWithHelpAndWithNoteAppendAndChain(t *testing.T) {
	d := diagnostics.New(diagnostics.Warning, "hindi ginamit na variable", 2, 1).
		WithHelp("alisin ang deklarasyon kung hindi kailangan").
		WithNote("ito ay babala lamang")

	var buf bytes.Buffer
	d.Display(&buf, "f.tol")
	out := buf.String()
	if !strings.Contains(out, "tulong: alisin ang deklarasyon kung hindi kailangan") {
		t.Fatalf("expected help line in output, got:\n%s", out)
	}
	if !strings.Contains(out, "tala: ito ay babala lamang") {
		t.Fatalf("expected note line in output, got:\n%s", out)
	}
}

func TestInternalMarksCompilerBug(t *testing.T) {
	d := diagnostics.Internal(1, 1, "hindi inaasahang node type %T", 0)
	if d.Severity != diagnostics.Error {
		t.Fatalf("expected Internal diagnostics to be errors")
	}
	if len(d.Helps) == 0 || !strings.Contains(d.Helps[0], "bug sa compiler") {
		t.Fatalf("expected an internal-bug help line, got %v", d.Helps)
	}
}

func TestDisplayAllPreservesOrder(t *testing.T) {
	diags := []*diagnostics.Diagnostic{
		diagnostics.New(diagnostics.Error, "una", 1, 1),
		diagnostics.New(diagnostics.Error, "pangalawa", 2, 1),
	}
	var buf bytes.Buffer
	diagnostics.DisplayAll(&buf, "f.tol", diags)
	out := buf.String()
	if strings.Index(out, "una") > strings.Index(out, "pangalawa") {
		t.Fatalf("expected diagnostics to display in insertion order, got:\n%s", out)
	}
}
