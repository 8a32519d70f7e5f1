package pipeline

// Pipeline is an ordered sequence of Processor stages.
type Pipeline struct {
	stages []Processor
}

// New builds a Pipeline from stages, run in the given order.
func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run executes every stage in order, stopping early once a stage has
// recorded an error: SLU-C's error policy is "first error aborts", so
// there is no value in letting the parser run against a context whose
// lexer already failed.
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
		if ctx.Failed() {
			return ctx
		}
	}
	return ctx
}
