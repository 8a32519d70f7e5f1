package evaluator

import (
	"io"

	"github.com/sluc-lang/sluc/internal/ast"
)

// Evaluate is the convenience entry point used by both the pipeline stage
// and the REPL: build an Evaluator for program and run its main function.
func Evaluate(program *ast.Program, out io.Writer) error {
	return New(program, out).Run()
}
