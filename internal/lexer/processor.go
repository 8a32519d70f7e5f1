package lexer

import "github.com/sluc-lang/sluc/internal/pipeline"

// Stage adapts Lexer to the pipeline.Processor interface: it tokenizes
// ctx.SourceCode in full and hands the resulting stream to the next stage.
type Stage struct{}

func (Stage) Process(ctx *pipeline.Context) *pipeline.Context {
	l, err := New(ctx.SourceCode)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Tokens = l
	return ctx
}

var _ pipeline.Processor = Stage{}
