package pipeline

import "github.com/sluc-lang/sluc/internal/ast"

// Context carries state between pipeline stages: source text in, tokens,
// then a parsed and typechecked Program, then whatever the evaluator
// stage chooses to record, accumulating diagnostics along the way.
type Context struct {
	SourceCode string
	FilePath   string

	Tokens  TokenStream
	Program *ast.Program

	// ExitCode is not written by any stage (SLU-C has no exit builtin), so
	// it stays 0.
	ExitCode int

	Errors []error
}

// NewContext returns a Context ready for the lexer stage.
func NewContext(source, filePath string) *Context {
	return &Context{SourceCode: source, FilePath: filePath}
}

// Failed reports whether any stage has recorded an error.
func (c *Context) Failed() bool {
	return len(c.Errors) > 0
}
