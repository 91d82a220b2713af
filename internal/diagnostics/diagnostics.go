// Package diagnostics carries the compiler's structured error/warning
// messages. A Diagnostic owns no state beyond its own fields; every stage
// constructs, accumulates, and displays them the same way.
package diagnostics

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
)

// Severity is a Diagnostic's level.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) tag() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "BABALA"
	case Info:
		return "INPORMASYON"
	default:
		return "ERROR"
	}
}

func (s Severity) ansi() string {
	switch s {
	case Error:
		return "\x1b[1;31m"
	case Warning:
		return "\x1b[1;33m"
	case Info:
		return "\x1b[1;36m"
	default:
		return ""
	}
}

// Diagnostic is a single structured compiler message: a severity, a primary
// message, a 1-based source position, and ordered help/note lines appended
// after construction.
type Diagnostic struct {
	Severity Severity
	Message  string
	Line     int
	Column   int
	Helps    []string
	Notes    []string
}

// New constructs a Diagnostic at the given severity and position.
func New(severity Severity, message string, line, column int) *Diagnostic {
	return &Diagnostic{Severity: severity, Message: message, Line: line, Column: column}
}

// Newf is New with a fmt.Sprintf-formatted message.
func Newf(severity Severity, line, column int, format string, args ...interface{}) *Diagnostic {
	return New(severity, fmt.Sprintf(format, args...), line, column)
}

// Internal reports an invariant violation inside the compiler itself rather
// than a malformed-input condition; it is still a Diagnostic (never a bare
// panic) so every stage keeps a single error-reporting path.
func Internal(line, column int, format string, args ...interface{}) *Diagnostic {
	d := Newf(Error, line, column, "internal na error: "+format, args...)
	d.Helps = append(d.Helps, "ito ay bug sa compiler mismo, hindi sa source")
	return d
}

// WithHelp appends a help line and returns the receiver, for chaining at
// the construction site.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Helps = append(d.Helps, help)
	return d
}

// WithNote appends a note line and returns the receiver.
func (d *Diagnostic) WithNote(note string) *Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// Display writes the diagnostic to w using the canonical form of sourcePath
// as the header. Color is applied to the severity tag only when w is a
// terminal (checked via isatty), so a non-tty capture stays byte-identical
// to the plain rendering.
func (d *Diagnostic) Display(w io.Writer, sourcePath string) {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	canonical, err := filepath.Abs(sourcePath)
	if err != nil {
		canonical = sourcePath
	}

	fmt.Fprintf(w, "--> %s (%s)\n", sourcePath, canonical)

	tag := d.Severity.tag()
	if color {
		fmt.Fprintf(w, "%s%s\x1b[0m [%d:%d]: %s\n", d.Severity.ansi(), tag, d.Line, d.Column, d.Message)
	} else {
		fmt.Fprintf(w, "%s [%d:%d]: %s\n", tag, d.Line, d.Column, d.Message)
	}
	for _, h := range d.Helps {
		fmt.Fprintf(w, "  tulong: %s\n", h)
	}
	for _, n := range d.Notes {
		fmt.Fprintf(w, "  tala: %s\n", n)
	}
}

// DisplayAll displays each diagnostic in order; insertion order is source
// encounter order (spec §5).
func DisplayAll(w io.Writer, sourcePath string, diags []*Diagnostic) {
	for _, d := range diags {
		d.Display(w, sourcePath)
	}
}
