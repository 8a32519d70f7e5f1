package parser

import "github.com/sluc-lang/sluc/internal/pipeline"

// Stage adapts ParseProgram to the pipeline.Processor interface.
type Stage struct{}

func (Stage) Process(ctx *pipeline.Context) *pipeline.Context {
	program, err := ParseProgram(ctx.Tokens)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Program = program
	return ctx
}

var _ pipeline.Processor = Stage{}
