package evaluator

import (
	"os"

	"github.com/sluc-lang/sluc/internal/pipeline"
)

// Stage adapts Evaluate to the pipeline.Processor interface, writing
// program output to os.Stdout.
type Stage struct{}

func (Stage) Process(ctx *pipeline.Context) *pipeline.Context {
	if err := Evaluate(ctx.Program, os.Stdout); err != nil {
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}

var _ pipeline.Processor = Stage{}
