// Package prettyprinter reconstructs SLU-C source text from a parsed
// Program, and renders a plain-text tree dump of the AST for debugging.
// Re-parsing the printer's output is expected to produce an AST
// structurally equivalent to the one it was built from.
package prettyprinter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/sluc-lang/sluc/internal/ast"
)

// operatorPrecedence ranks every binary operator so Print can decide
// whether a child expression needs parenthesizing to preserve the
// original grouping once round-tripped back through the parser.
var operatorPrecedence = map[ast.BinaryOp]int{
	ast.OpOr:  1,
	ast.OpAnd: 2,
	ast.OpEq:  3, ast.OpNeq: 3,
	ast.OpLt: 4, ast.OpLte: 4, ast.OpGt: 4, ast.OpGte: 4,
	ast.OpAdd: 5, ast.OpSub: 5,
	ast.OpMul: 6, ast.OpDiv: 6, ast.OpMod: 6,
}

// CodePrinter accumulates reconstructed SLU-C source text.
type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

// NewCodePrinter returns an empty CodePrinter.
func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders program as SLU-C source text.
func Print(program *ast.Program) string {
	cp := NewCodePrinter()
	for i, fn := range program.Functions {
		if i > 0 {
			cp.buf.WriteString("\n")
		}
		cp.printFunction(fn)
	}
	return cp.buf.String()
}

func (cp *CodePrinter) writeIndent() {
	for i := 0; i < cp.indent; i++ {
		cp.buf.WriteString("    ")
	}
}

func (cp *CodePrinter) printFunction(fn *ast.FunctionDef) {
	cp.buf.WriteString(fmt.Sprintf("%s %s(", fn.ReturnType, fn.Name))
	for i, p := range fn.Params {
		if i > 0 {
			cp.buf.WriteString(", ")
		}
		cp.buf.WriteString(fmt.Sprintf("%s %s", p.Type, p.Name))
	}
	cp.buf.WriteString(") {\n")
	cp.indent++
	for _, d := range fn.Decls {
		cp.writeIndent()
		cp.buf.WriteString(fmt.Sprintf("%s %s;\n", d.Type, d.Name))
	}
	cp.printStmts(fn.Body)
	cp.indent--
	cp.buf.WriteString("}\n")
}

func (cp *CodePrinter) printStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		cp.printStmt(s)
	}
}

func (cp *CodePrinter) printStmt(stmt ast.Stmt) {
	cp.writeIndent()
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		cp.buf.WriteString(fmt.Sprintf("%s = %s;\n", s.Target, cp.expr(s.Value, 0)))

	case *ast.PrintStmt:
		cp.buf.WriteString("print(")
		for i, a := range s.Args {
			if i > 0 {
				cp.buf.WriteString(", ")
			}
			cp.buf.WriteString(cp.expr(a, 0))
		}
		cp.buf.WriteString(");\n")

	case *ast.IfStmt:
		cp.buf.WriteString(fmt.Sprintf("if (%s) {\n", cp.expr(s.Cond, 0)))
		cp.indent++
		cp.printStmts(s.Then)
		cp.indent--
		cp.writeIndent()
		if len(s.Else) > 0 {
			cp.buf.WriteString("} else {\n")
			cp.indent++
			cp.printStmts(s.Else)
			cp.indent--
			cp.writeIndent()
		}
		cp.buf.WriteString("}\n")

	case *ast.WhileStmt:
		cp.buf.WriteString(fmt.Sprintf("while (%s) {\n", cp.expr(s.Cond, 0)))
		cp.indent++
		cp.printStmts(s.Body)
		cp.indent--
		cp.writeIndent()
		cp.buf.WriteString("}\n")

	case *ast.ReturnStmt:
		if s.Value == nil {
			cp.buf.WriteString("return;\n")
		} else {
			cp.buf.WriteString(fmt.Sprintf("return %s;\n", cp.expr(s.Value, 0)))
		}

	case *ast.CallStmt:
		cp.buf.WriteString(cp.expr(s.Call, 0) + ";\n")
	}
}

// expr renders an expression, parenthesizing it if its own precedence is
// lower than parentPrec (the precedence of the operator it is an operand
// of).
func (cp *CodePrinter) expr(e ast.Expr, parentPrec int) string {
	switch n := e.(type) {
	case *ast.IntLit:
		return fmt.Sprintf("%d", n.Value)
	case *ast.FloatLit:
		// Shortest exact form, always with a '.' or exponent so it re-lexes
		// as a float literal rather than an integer.
		s := strconv.FormatFloat(n.Value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case *ast.BoolLit:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.StringLit:
		// Value is the literal's text between the quotes, unescaped.
		return `"` + n.Value + `"`
	case *ast.Ident:
		return n.Name
	case *ast.UnaryExpr:
		return n.Op.String() + cp.expr(n.Operand, 7)
	case *ast.CallExpr:
		s := n.Callee + "("
		for i, a := range n.Args {
			if i > 0 {
				s += ", "
			}
			s += cp.expr(a, 0)
		}
		return s + ")"
	case *ast.BinaryExpr:
		prec := operatorPrecedence[n.Op]
		leftPrec := prec
		if prec == 3 || prec == 4 {
			// Equality and relational operators are non-associative, so a
			// left operand at the same level is parenthesized too.
			leftPrec = prec + 1
		}
		rendered := fmt.Sprintf("%s %s %s", cp.expr(n.Left, leftPrec), n.Op, cp.expr(n.Right, prec+1))
		if prec < parentPrec {
			return "(" + rendered + ")"
		}
		return rendered
	default:
		return "<?>"
	}
}
