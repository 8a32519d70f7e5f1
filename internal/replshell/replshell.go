// Package replshell implements SLU-C's interactive shell: a line-oriented
// REPL that accumulates declarations and statements into one growing
// "main" function, re-running the whole program on every line and
// showing only the output the newest line produced.
package replshell

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/sluc-lang/sluc/internal/config"
	"github.com/sluc-lang/sluc/internal/evaluator"
	"github.com/sluc-lang/sluc/internal/lexer"
	"github.com/sluc-lang/sluc/internal/parser"
	"github.com/sluc-lang/sluc/internal/token"
	"github.com/sluc-lang/sluc/internal/typecheck"
)

var (
	blueColor   = color.New(color.FgBlue)
	greenColor  = color.New(color.FgGreen)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
)

// disableColorIfNotTTY turns every package-level color off when out is not
// a terminal, so piped or redirected REPL sessions get plain text.
func disableColorIfNotTTY(out io.Writer) {
	f, ok := out.(interface{ Fd() uintptr })
	if !ok || !isatty.IsTerminal(f.Fd()) {
		color.NoColor = true
	}
}

// Shell is an interactive SLU-C session. Accepted lines are partitioned
// into declarations and statements and replayed, in order, as the body of
// a single synthetic "main" on every line — the reference implementation
// this interpreter is patterned on has no notion of incremental
// compilation, so re-running the accumulated session is the simplest
// faithful way to keep earlier bindings visible to later lines.
type Shell struct {
	declLines []string
	stmtLines []string
	prevLen   int
}

// New returns an empty Shell.
func New() *Shell {
	return &Shell{}
}

// Run starts the read-eval-print loop against out, reading lines until
// EOF, a readline error, or the user types ".exit".
func (sh *Shell) Run(out io.Writer) error {
	disableColorIfNotTTY(out)
	sh.printBanner(out)

	rl, err := readline.New(config.ReplPrompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		sh.evalLine(out, line)
	}
}

func (sh *Shell) printBanner(out io.Writer) {
	blueColor.Fprintln(out, config.SeparatorLine)
	greenColor.Fprintln(out, strings.TrimLeft(config.Banner, "\n"))
	blueColor.Fprintln(out, config.SeparatorLine)
	yellowColor.Fprintf(out, "sluc %s\n", config.Version)
	cyanColor.Fprintln(out, "Type a declaration, assignment, or expression statement.")
	cyanColor.Fprintln(out, "Type '.exit' to quit.")
	blueColor.Fprintln(out, config.SeparatorLine)
}

// isDeclarationLine reports whether line opens with a type keyword, the
// only way SLU-C's grammar recognizes a declaration.
func isDeclarationLine(line string) bool {
	l, err := lexer.New(line)
	if err != nil {
		return false
	}
	return l.Peek(0).Kind == token.KEYWORD && l.Peek(0).IsType()
}

// evalLine classifies line, appends it to the accumulated session, and
// re-runs the whole session. A line that fails to lex, parse, or
// typecheck is reported but not retained, so one bad line never poisons
// the rest of the session. Recovers from evaluator panics the way file
// execution does not need to, since a REPL must survive a bad line and
// keep prompting.
func (sh *Shell) evalLine(out io.Writer, line string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(out, "ERROR: internal error: %v\n", r)
		}
	}()

	declLines, stmtLines := sh.declLines, sh.stmtLines
	if isDeclarationLine(line) {
		declLines = append(append([]string{}, declLines...), line)
	} else {
		stmtLines = append(append([]string{}, stmtLines...), line)
	}

	source := buildSource(declLines, stmtLines)

	l, err := lexer.New(source)
	if err != nil {
		redColor.Fprintln(out, err.Error())
		return
	}
	prog, err := parser.ParseProgram(l)
	if err != nil {
		redColor.Fprintln(out, err.Error())
		return
	}
	if err := typecheck.Check(prog); err != nil {
		redColor.Fprintln(out, err.Error())
		return
	}

	var buf bytes.Buffer
	runErr := evaluator.Evaluate(prog, &buf)

	produced := buf.String()
	if len(produced) >= sh.prevLen {
		fmt.Fprint(out, produced[sh.prevLen:])
	}
	if runErr != nil {
		redColor.Fprintln(out, runErr.Error())
		return
	}

	sh.declLines, sh.stmtLines = declLines, stmtLines
	sh.prevLen = len(produced)
}

func buildSource(declLines, stmtLines []string) string {
	var b strings.Builder
	b.WriteString("int main() {\n")
	for _, d := range declLines {
		b.WriteString(d)
		b.WriteByte('\n')
	}
	for _, s := range stmtLines {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String()
}
