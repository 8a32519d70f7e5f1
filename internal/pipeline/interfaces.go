package pipeline

import "github.com/sluc-lang/sluc/internal/token"

// Processor is one stage of the pipeline: lexing, parsing, typechecking,
// or evaluation. Each stage reads what earlier stages produced off ctx
// and, on success, writes its own contribution; on failure it appends to
// ctx.Errors and leaves later fields unset.
type Processor interface {
	Process(ctx *Context) *Context
}

// TokenStream is the contract the parser needs from whatever tokenized
// the source: one-token-and-beyond lookahead without consuming, and
// consuming advance.
type TokenStream interface {
	Next() token.Token
	Peek(n int) token.Token
}
