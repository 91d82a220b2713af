// Command tolc compiles a single Tol source file to a native executable:
// lex, parse, analyze, emit C, then hand the translation unit to gcc.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"

	"github.com/wrkean/tolc/internal/config"
	"github.com/wrkean/tolc/internal/diagnostics"
	"github.com/wrkean/tolc/internal/historylog"
	"github.com/wrkean/tolc/internal/module"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("tolc", flag.ContinueOnError)
	showTokens := fs.Bool("tokens", false, "i-print ang token stream bago mag-parse")
	outPath := fs.String("o", "", "path ng output binary (default: pangalan ng source nang walang extension)")
	keepC := fs.Bool("keep-c", false, "huwag burahin ang nabuong .c file pagkatapos mag-compile")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	sourcePath, err := getSource(fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	start := time.Now()
	out := os.Stdout
	useColor := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())

	src, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Nabigong makuha ang path %s: %v\n", sourcePath, err)
		return 1
	}

	m := module.New(sourcePath, string(src))

	_ = os.MkdirAll("build", 0o755)
	log, logErr := historylog.Open(filepath.Join("build", ".tolc-history.sqlite"))
	if logErr == nil {
		defer log.Close()
	}

	compileErr := m.Compile()
	elapsed := time.Since(start)

	if *showTokens {
		dumpTokens(out, m)
	}

	if log != nil {
		stage := "done"
		if compileErr != nil {
			stage = stageOf(compileErr)
		}
		_ = log.Append(historylog.Entry{
			BuildID:    m.BuildID,
			SourcePath: sourcePath,
			StartedAt:  start,
			Elapsed:    elapsed,
			Stage:      stage,
			ErrorCount: len(m.Diagnostics),
			Succeeded:  compileErr == nil,
		})
	}

	if len(m.Diagnostics) > 0 {
		diagnostics.DisplayAll(os.Stderr, sourcePath, m.Diagnostics)
	}
	if compileErr != nil {
		fmt.Fprintf(os.Stderr, "nabigo ang compilation (%d error): %v\n", len(m.Diagnostics), compileErr)
		return 1
	}

	buildDir := filepath.Join("build", m.BuildID)
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "nabigong likhain ang build dir: %v\n", err)
		return 1
	}
	cPath := filepath.Join(buildDir, "generated.c")
	if err := os.WriteFile(cPath, []byte(m.GeneratedC), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "nabigong isulat ang nabuong C: %v\n", err)
		return 1
	}
	if !*keepC {
		defer os.Remove(cPath)
	}

	binPath := *outPath
	if binPath == "" {
		binPath = strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	}
	if err := formatIfAvailable(cPath); err != nil && useColor {
		fmt.Fprintf(out, "\x1b[1;33mBABALA\x1b[0m: clang-format: %v\n", err)
	}
	if err := compileC(cPath, binPath); err != nil {
		fmt.Fprintf(os.Stderr, "nabigo ang gcc: %v\n", err)
		return 1
	}

	size := int64(len(m.GeneratedC))
	report := fmt.Sprintf("%s (%s na C source, %s)", binPath, humanize.Bytes(uint64(size)), humanize.RelTime(start, start.Add(elapsed), "", "lumipas"))
	if useColor {
		fmt.Fprintf(out, "\x1b[1;32mTAGUMPAY\x1b[0m: %s\n", report)
	} else {
		fmt.Fprintf(out, "TAGUMPAY: %s\n", report)
	}
	return 0
}

func stageOf(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "lexical"):
		return "lexer"
	case strings.Contains(msg, "syntax"):
		return "parser"
	case strings.Contains(msg, "semantic"):
		return "analyzer"
	default:
		return "codegen"
	}
}

// getSource validates the single positional source-file argument,
// grounded on original_source/lib.rs::get_source's usage/error messages.
func getSource(positional []string) (string, error) {
	if len(positional) != 1 {
		return "", fmt.Errorf("Paggamit: tolc <pangalan_ng_source_file>")
	}
	path := positional[0]
	if !hasSourceExtension(path) {
		return "", fmt.Errorf("Nabigong makuha ang path %s: dapat magtapos sa %s", path, config.SourceFileExt)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("Nabigong makuha ang path %s: %v", path, err)
	}
	return path, nil
}

func hasSourceExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range config.SourceFileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// dumpTokens prints the token stream, one per line, the way
// original_source/lib.rs::compile does unconditionally; tolc gates it
// behind -tokens instead.
func dumpTokens(w *os.File, m *module.Module) {
	fmt.Fprintln(w, "-- tokens --")
	for _, tok := range m.Tokens {
		fmt.Fprintln(w, tok.String())
	}
}

func formatIfAvailable(cPath string) error {
	bin, err := exec.LookPath("clang-format")
	if err != nil {
		return nil // optional tool; silently skip
	}
	cmd := exec.Command(bin, "-i", cPath)
	return runSubprocess(cmd)
}

func compileC(cPath, binPath string) error {
	cmd := exec.Command("gcc", "-std=c11", "-O2", "-o", binPath, cPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return runSubprocess(cmd)
}

// runSubprocess starts cmd, immediately moves it into its own process
// group via golang.org/x/sys/unix's Setpgid, and waits for completion — so
// an interrupted tolc run can signal the whole group instead of leaving an
// orphaned gcc or clang-format behind it.
func runSubprocess(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	if err := unix.Setpgid(cmd.Process.Pid, cmd.Process.Pid); err != nil {
		// best-effort: some sandboxes deny this; the subprocess still runs
		// in tolc's own group, it just won't be isolated for signaling.
		_ = err
	}
	return cmd.Wait()
}
