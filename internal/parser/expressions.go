package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sluc-lang/sluc/internal/ast"
	"github.com/sluc-lang/sluc/internal/diagnostics"
	"github.com/sluc-lang/sluc/internal/token"
)

// Expression -> Conjunction { '||' Conjunction }
func (p *Parser) Expression() (ast.Expr, error) {
	left, err := p.Conjunction()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.OR {
		line := p.advance().Line
		right, err := p.Conjunction()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(line, ast.OpOr, left, right)
	}
	return left, nil
}

// Conjunction -> Equality { '&&' Equality }
func (p *Parser) Conjunction() (ast.Expr, error) {
	left, err := p.Equality()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.AND {
		line := p.advance().Line
		right, err := p.Equality()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(line, ast.OpAnd, left, right)
	}
	return left, nil
}

// Equality -> Relation [ ('==' | '!=') Relation ]
// Non-associative: at most one equality operator per expression.
func (p *Parser) Equality() (ast.Expr, error) {
	left, err := p.Relation()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == token.EQ || p.cur.Kind == token.NEQ {
		op := ast.OpEq
		if p.cur.Kind == token.NEQ {
			op = ast.OpNeq
		}
		line := p.advance().Line
		right, err := p.Relation()
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryExpr(line, op, left, right), nil
	}
	return left, nil
}

// Relation -> Addition [ ('<' | '<=' | '>' | '>=') Addition ]
// Non-associative: at most one relational operator per expression.
func (p *Parser) Relation() (ast.Expr, error) {
	left, err := p.Addition()
	if err != nil {
		return nil, err
	}
	var op ast.BinaryOp
	switch p.cur.Kind {
	case token.LT:
		op = ast.OpLt
	case token.LTE:
		op = ast.OpLte
	case token.GT:
		op = ast.OpGt
	case token.GTE:
		op = ast.OpGte
	default:
		return left, nil
	}
	line := p.advance().Line
	right, err := p.Addition()
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryExpr(line, op, left, right), nil
}

// Addition -> Term { ('+' | '-') Term }
func (p *Parser) Addition() (ast.Expr, error) {
	left, err := p.Term()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.PLUS || p.cur.Kind == token.MINUS {
		op := ast.OpAdd
		if p.cur.Kind == token.MINUS {
			op = ast.OpSub
		}
		line := p.advance().Line
		right, err := p.Term()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(line, op, left, right)
	}
	return left, nil
}

// Term -> Factor { ('*' | '/' | '%') Factor }
func (p *Parser) Term() (ast.Expr, error) {
	left, err := p.Factor()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.STAR || p.cur.Kind == token.SLASH || p.cur.Kind == token.PERCENT {
		var op ast.BinaryOp
		switch p.cur.Kind {
		case token.STAR:
			op = ast.OpMul
		case token.SLASH:
			op = ast.OpDiv
		default:
			op = ast.OpMod
		}
		line := p.advance().Line
		right, err := p.Factor()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(line, op, left, right)
	}
	return left, nil
}

// Factor -> [ '-' | '!' ] Primary
func (p *Parser) Factor() (ast.Expr, error) {
	switch p.cur.Kind {
	case token.MINUS:
		line := p.advance().Line
		operand, err := p.Primary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(line, ast.OpNeg, operand), nil
	case token.NOT:
		line := p.advance().Line
		operand, err := p.Primary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(line, ast.OpNot, operand), nil
	default:
		return p.Primary()
	}
}

// Primary -> '(' Expression ')' | id | id '(' Args ')' | intlit | floatlit
//          | 'true' | 'false' | stringlit
func (p *Parser) Primary() (ast.Expr, error) {
	tok := p.cur
	switch tok.Kind {
	case token.LPAREN:
		p.advance()
		expr, err := p.Expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "right parenthesis"); err != nil {
			return nil, err
		}
		return expr, nil

	case token.INTLIT:
		p.advance()
		v, err := strconv.ParseInt(strings.ReplaceAll(tok.Lexeme, "_", ""), 10, 64)
		if err != nil {
			return nil, diagnostics.Syntax(tok.Line, fmt.Sprintf("Invalid integer literal %s", tok.Lexeme))
		}
		return ast.NewIntLit(tok.Line, v), nil

	case token.FLOATLIT:
		p.advance()
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok.Lexeme, "_", ""), 64)
		if err != nil {
			return nil, diagnostics.Syntax(tok.Line, fmt.Sprintf("Invalid float literal %s", tok.Lexeme))
		}
		return ast.NewFloatLit(tok.Line, v), nil

	case token.STRINGLIT:
		p.advance()
		return ast.NewStringLit(tok.Line, unquote(tok.Lexeme)), nil

	case token.KEYWORD:
		if tok.Lexeme == "true" || tok.Lexeme == "false" {
			p.advance()
			return ast.NewBoolLit(tok.Line, tok.Lexeme == "true"), nil
		}
		return nil, diagnostics.Syntax(tok.Line, fmt.Sprintf("Unexpected token %s", tok.Lexeme))

	case token.ID:
		p.advance()
		if p.cur.Kind == token.LPAREN {
			args, err := p.Args()
			if err != nil {
				return nil, err
			}
			return ast.NewCallExpr(tok.Line, tok.Lexeme, args), nil
		}
		sym, err := p.resolveIdent(tok.Lexeme, tok.Line)
		if err != nil {
			return nil, err
		}
		id := ast.NewIdent(tok.Line, tok.Lexeme)
		id.Slot = sym.Slot
		id.ResolvedType = sym.Type
		return id, nil

	default:
		return nil, diagnostics.Syntax(tok.Line, fmt.Sprintf("Unexpected token %s", tok.Lexeme))
	}
}

// Args -> '(' [ Expression { ',' Expression } ] ')'
// Assumes the callee identifier has already been consumed; consumes the
// parenthesized argument list.
func (p *Parser) Args() ([]ast.Expr, error) {
	if _, err := p.expect(token.LPAREN, "left parenthesis"); err != nil {
		return nil, err
	}
	var args []ast.Expr
	if p.cur.Kind != token.RPAREN {
		for {
			arg, err := p.Expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur.Kind != token.COMMA {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN, "right parenthesis"); err != nil {
		return nil, err
	}
	return args, nil
}

// unquote strips the surrounding double quotes a STRINGLIT token always
// carries (the lexer never emits one without them).
func unquote(lexeme string) string {
	if len(lexeme) >= 2 {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}
