package parser

import (
	"fmt"

	"github.com/sluc-lang/sluc/internal/ast"
	"github.com/sluc-lang/sluc/internal/diagnostics"
	"github.com/sluc-lang/sluc/internal/token"
)

// Stmts -> { Stmt }
// Runs until the closing brace (or EOF) is reached; any other token that
// cannot start a statement is a SyntaxError from Stmt.
func (p *Parser) Stmts() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		stmt, err := p.Stmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// Block -> '{' Stmts '}'
func (p *Parser) Block() ([]ast.Stmt, error) {
	if _, err := p.expect(token.LBRACE, "left brace"); err != nil {
		return nil, err
	}
	stmts, err := p.Stmts()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE, "right brace"); err != nil {
		return nil, err
	}
	return stmts, nil
}

// Stmt -> Assignment | IfStmt | WhileStmt | ReturnStmt | PrintStmt | CallStmt
func (p *Parser) Stmt() (ast.Stmt, error) {
	switch {
	case p.cur.Kind == token.KEYWORD && p.cur.Lexeme == "if":
		return p.IfStmt()
	case p.cur.Kind == token.KEYWORD && p.cur.Lexeme == "while":
		return p.WhileStmt()
	case p.cur.Kind == token.KEYWORD && p.cur.Lexeme == "return":
		return p.ReturnStmt()
	case p.cur.Kind == token.KEYWORD && p.cur.Lexeme == "print":
		return p.PrintStmt()
	case p.cur.Kind == token.ID:
		return p.AssignOrCallStmt()
	default:
		return nil, diagnostics.Syntax(p.cur.Line, fmt.Sprintf("Unexpected token %s", p.cur.Lexeme))
	}
}

// Assignment -> id '=' Expression ';'
// CallStmt   -> id '(' Args ')' ';'
// Disambiguated by one token of lookahead after the identifier.
func (p *Parser) AssignOrCallStmt() (ast.Stmt, error) {
	nameTok := p.advance()

	if p.cur.Kind == token.LPAREN {
		args, err := p.Args()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMI, "semicolon"); err != nil {
			return nil, err
		}
		call := ast.NewCallExpr(nameTok.Line, nameTok.Lexeme, args)
		return ast.NewCallStmt(nameTok.Line, call), nil
	}

	sym, err := p.resolveIdent(nameTok.Lexeme, nameTok.Line)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN, "assignment operator"); err != nil {
		return nil, err
	}
	value, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI, "semicolon"); err != nil {
		return nil, err
	}
	stmt := ast.NewAssignStmt(nameTok.Line, nameTok.Lexeme, value)
	stmt.Slot = sym.Slot
	stmt.DeclaredType = sym.Type
	return stmt, nil
}

// IfStmt -> 'if' '(' Expression ')' Block [ 'else' Block ]
func (p *Parser) IfStmt() (ast.Stmt, error) {
	line := p.advance().Line // 'if'
	if _, err := p.expect(token.LPAREN, "left parenthesis"); err != nil {
		return nil, err
	}
	cond, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "right parenthesis"); err != nil {
		return nil, err
	}
	thenBlock, err := p.Block()
	if err != nil {
		return nil, err
	}
	var elseBlock []ast.Stmt
	if p.cur.Kind == token.KEYWORD && p.cur.Lexeme == "else" {
		p.advance()
		elseBlock, err = p.Block()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfStmt(line, cond, thenBlock, elseBlock), nil
}

// WhileStmt -> 'while' '(' Expression ')' Block
func (p *Parser) WhileStmt() (ast.Stmt, error) {
	line := p.advance().Line // 'while'
	if _, err := p.expect(token.LPAREN, "left parenthesis"); err != nil {
		return nil, err
	}
	cond, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "right parenthesis"); err != nil {
		return nil, err
	}
	body, err := p.Block()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStmt(line, cond, body), nil
}

// ReturnStmt -> 'return' [ Expression ] ';'
func (p *Parser) ReturnStmt() (ast.Stmt, error) {
	line := p.advance().Line // 'return'
	if p.cur.Kind == token.SEMI {
		p.advance()
		return ast.NewReturnStmt(line, nil), nil
	}
	value, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI, "semicolon"); err != nil {
		return nil, err
	}
	return ast.NewReturnStmt(line, value), nil
}

// PrintStmt -> 'print' '(' [ PrintArg { ',' PrintArg } ] ')' ';'
func (p *Parser) PrintStmt() (ast.Stmt, error) {
	line := p.advance().Line // 'print'
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
	if _, err := p.expect(token.SEMI, "semicolon"); err != nil {
		return nil, err
	}
	return ast.NewPrintStmt(line, args), nil
}
