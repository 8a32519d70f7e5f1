// Package parser implements SLU-C's recursive-descent parser. Each
// production in the grammar has a corresponding method, named after the
// production, so the control flow mirrors the grammar directly:
//
//	Program     -> { FunctionDef }
//	FunctionDef -> Type id '(' Params ')' '{' Declarations Stmts '}'
//	Expression  -> Conjunction { '||' Conjunction }
//	Conjunction -> Equality { '&&' Equality }
//	Equality    -> Relation [ ('==' | '!=') Relation ]
//	Relation    -> Addition [ ('<' | '<=' | '>' | '>=') Addition ]
//	Addition    -> Term { ('+' | '-') Term }
//	Term        -> Factor { ('*' | '/' | '%') Factor }
//	Factor      -> [ '-' | '!' ] Primary
//	Primary     -> '(' Expression ')' | id | id '(' Args ')' | literal
//
// Parsing also performs the semantic checks the grammar cannot express on
// its own: duplicate declarations, references before assignment, and
// resolving every identifier to a frame slot.
package parser

import (
	"fmt"

	"github.com/sluc-lang/sluc/internal/ast"
	"github.com/sluc-lang/sluc/internal/diagnostics"
	"github.com/sluc-lang/sluc/internal/pipeline"
	"github.com/sluc-lang/sluc/internal/symbols"
	"github.com/sluc-lang/sluc/internal/token"
)

// Parser consumes a pipeline.TokenStream and builds an *ast.Program, or
// returns the first diagnostic it encounters.
type Parser struct {
	stream pipeline.TokenStream
	cur    token.Token

	sigs *symbols.Signatures
	// decls is the symbol table of the function currently being parsed.
	decls *symbols.Table
}

// New returns a Parser positioned at the first token of stream.
func New(stream pipeline.TokenStream) *Parser {
	p := &Parser{stream: stream, sigs: symbols.NewSignatures()}
	p.cur = p.stream.Next()
	return p
}

func (p *Parser) advance() token.Token {
	tok := p.cur
	p.cur = p.stream.Next()
	return tok
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return diagnostics.Syntax(p.cur.Line, fmt.Sprintf(format, args...))
}

// expect consumes the current token if it has the given kind, otherwise
// returns a SyntaxError naming what was missing.
func (p *Parser) expect(kind token.Kind, what string) (token.Token, error) {
	if p.cur.Kind != kind {
		return token.Token{}, p.errorf("Missing %s", what)
	}
	return p.advance(), nil
}

// ParseProgram parses the entire token stream into a Program. Function
// calls are not resolved against the function table here — a callee may
// be defined later in the file — that resolution happens in typecheck,
// once every function's signature is known.
func ParseProgram(stream pipeline.TokenStream) (*ast.Program, error) {
	p := New(stream)
	return p.Program()
}

// Program -> { FunctionDef }
func (p *Parser) Program() (*ast.Program, error) {
	var fns []*ast.FunctionDef
	for p.cur.Kind != token.EOF {
		fn, err := p.FunctionDef()
		if err != nil {
			return nil, err
		}
		if !p.sigs.Declare(symbols.Signature{
			Name:       fn.Name,
			ParamTypes: paramTypes(fn.Params),
			ReturnType: fn.ReturnType,
		}) {
			return nil, diagnostics.DuplicateReference(fn.Line(), fmt.Sprintf("Function %s already defined", fn.Name))
		}
		fns = append(fns, fn)
	}

	// Move "main", if present, to index 0. Unlike the reference this was
	// distilled from, this never drops a function: every parsed function
	// survives reordering.
	for i, fn := range fns {
		if fn.Name == "main" {
			fns[0], fns[i] = fns[i], fns[0]
			break
		}
	}
	return &ast.Program{Functions: fns}, nil
}

func paramTypes(params []*ast.Param) []ast.Type {
	out := make([]ast.Type, len(params))
	for i, pm := range params {
		out[i] = pm.Type
	}
	return out
}

// FunctionDef -> Type id '(' Params ')' '{' Declarations Stmts '}'
func (p *Parser) FunctionDef() (*ast.FunctionDef, error) {
	line := p.cur.Line
	retType, err := p.typeToken()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.ID, "function name")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LPAREN, "left parenthesis"); err != nil {
		return nil, err
	}

	p.decls = symbols.New()
	var params []*ast.Param
	// A parameter list starts with a type (or a misspelled one); anything
	// else falls through to the right-parenthesis check below.
	if p.cur.IsType() || p.cur.Kind == token.ID {
		for {
			pt, err := p.typeToken()
			if err != nil {
				return nil, err
			}
			pnTok, err := p.expect(token.ID, "parameter name")
			if err != nil {
				return nil, err
			}
			slot, ok := p.decls.Declare(pnTok.Lexeme, pt)
			if !ok {
				return nil, diagnostics.DuplicateReference(pnTok.Line, fmt.Sprintf("Parameter %s already declared", pnTok.Lexeme))
			}
			param := &ast.Param{Type: pt, Name: pnTok.Lexeme, Slot: slot}
			param.LineNo = pnTok.Line
			params = append(params, param)
			if p.cur.Kind != token.COMMA {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN, "right parenthesis"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE, "left brace"); err != nil {
		return nil, err
	}

	decls, err := p.Declarations()
	if err != nil {
		return nil, err
	}
	body, err := p.Stmts()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE, "right brace"); err != nil {
		return nil, err
	}

	fn := &ast.FunctionDef{
		ReturnType: retType,
		Name:       nameTok.Lexeme,
		Params:     params,
		Decls:      decls,
		Body:       body,
		FrameSize:  p.decls.Len(),
	}
	fn.LineNo = line
	return fn, nil
}

// Declarations -> { Type id ';' }
// A declaration is recognized by lookahead: a type keyword starts one,
// anything else ends the declarations block and is left for Stmts.
func (p *Parser) Declarations() ([]*ast.Decl, error) {
	var decls []*ast.Decl
	for p.cur.IsType() {
		line := p.cur.Line
		dt, err := p.typeToken()
		if err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.ID, "identifier in declaration")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMI, "semicolon"); err != nil {
			return nil, err
		}
		slot, ok := p.decls.Declare(nameTok.Lexeme, dt)
		if !ok {
			return nil, diagnostics.DuplicateReference(line, fmt.Sprintf("%s already declared", nameTok.Lexeme))
		}
		decl := &ast.Decl{Type: dt, Name: nameTok.Lexeme, Slot: slot}
		decl.LineNo = line
		decls = append(decls, decl)
	}
	return decls, nil
}

func (p *Parser) typeToken() (ast.Type, error) {
	if !p.cur.IsType() {
		return ast.Unresolved, diagnostics.InvalidType(p.cur.Line, fmt.Sprintf("%s is not a valid type", p.cur.Lexeme))
	}
	tok := p.advance()
	switch tok.Lexeme {
	case "int":
		return ast.IntType, nil
	case "float":
		return ast.FloatType, nil
	case "bool":
		return ast.BoolType, nil
	case "string":
		return ast.StringType, nil
	default:
		return ast.Unresolved, diagnostics.InvalidType(tok.Line, fmt.Sprintf("%s is not a valid type", tok.Lexeme))
	}
}

// resolveIdent validates that name was declared earlier in the current
// function, raising ReferenceBeforeAssignmentError otherwise, and returns
// its symbol (type and frame slot).
func (p *Parser) resolveIdent(name string, line int) (symbols.Symbol, error) {
	sym, ok := p.decls.Lookup(name)
	if !ok {
		return symbols.Symbol{}, diagnostics.ReferenceBeforeAssignment(line, fmt.Sprintf("%s referenced before assignment", name))
	}
	return sym, nil
}
