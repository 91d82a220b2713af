package analyzer

import (
	"github.com/wrkean/tolc/internal/diagnostics"
	"github.com/wrkean/tolc/internal/token"
)

// errorAt records an Error-severity diagnostic positioned at tok and sets
// HasError, gating codegen (spec §5's stage-order invariant).
func (a *Analyzer) errorAt(tok token.Token, format string, args ...interface{}) *diagnostics.Diagnostic {
	d := diagnostics.Newf(diagnostics.Error, tok.Line, tok.Column, format, args...)
	a.Errors = append(a.Errors, d)
	a.HasError = true
	return d
}

// warnAt records a Warning-severity diagnostic without affecting HasError.
func (a *Analyzer) warnAt(tok token.Token, format string, args ...interface{}) *diagnostics.Diagnostic {
	d := diagnostics.Newf(diagnostics.Warning, tok.Line, tok.Column, format, args...)
	a.Errors = append(a.Errors, d)
	return d
}
