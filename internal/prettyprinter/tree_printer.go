package prettyprinter

import (
	"fmt"
	"strings"

	"github.com/sluc-lang/sluc/internal/ast"
)

// Dump renders program as an indented debug tree, the backing
// implementation for the "sluc ast --tree" flag.
func Dump(program *ast.Program) string {
	var b strings.Builder
	for _, fn := range program.Functions {
		dumpFunction(&b, fn, 0)
	}
	return b.String()
}

func dumpLine(b *strings.Builder, depth int, format string, args ...interface{}) {
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, format, args...)
	b.WriteString("\n")
}

func dumpFunction(b *strings.Builder, fn *ast.FunctionDef, depth int) {
	dumpLine(b, depth, "FunctionDef %s -> %s", fn.Name, fn.ReturnType)
	for _, p := range fn.Params {
		dumpLine(b, depth+1, "Param %s %s (slot %d)", p.Type, p.Name, p.Slot)
	}
	for _, d := range fn.Decls {
		dumpLine(b, depth+1, "Decl %s %s (slot %d)", d.Type, d.Name, d.Slot)
	}
	for _, s := range fn.Body {
		dumpStmt(b, s, depth+1)
	}
}

func dumpStmt(b *strings.Builder, stmt ast.Stmt, depth int) {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		dumpLine(b, depth, "Assign %s (slot %d)", s.Target, s.Slot)
		dumpExpr(b, s.Value, depth+1)
	case *ast.PrintStmt:
		dumpLine(b, depth, "Print")
		for _, a := range s.Args {
			dumpExpr(b, a, depth+1)
		}
	case *ast.IfStmt:
		dumpLine(b, depth, "If")
		dumpExpr(b, s.Cond, depth+1)
		dumpLine(b, depth, "Then")
		for _, t := range s.Then {
			dumpStmt(b, t, depth+1)
		}
		if len(s.Else) > 0 {
			dumpLine(b, depth, "Else")
			for _, e := range s.Else {
				dumpStmt(b, e, depth+1)
			}
		}
	case *ast.WhileStmt:
		dumpLine(b, depth, "While")
		dumpExpr(b, s.Cond, depth+1)
		for _, t := range s.Body {
			dumpStmt(b, t, depth+1)
		}
	case *ast.ReturnStmt:
		dumpLine(b, depth, "Return")
		if s.Value != nil {
			dumpExpr(b, s.Value, depth+1)
		}
	case *ast.CallStmt:
		dumpLine(b, depth, "CallStmt")
		dumpExpr(b, s.Call, depth+1)
	}
}

func dumpExpr(b *strings.Builder, expr ast.Expr, depth int) {
	switch e := expr.(type) {
	case *ast.IntLit:
		dumpLine(b, depth, "IntLit %d", e.Value)
	case *ast.FloatLit:
		dumpLine(b, depth, "FloatLit %g", e.Value)
	case *ast.BoolLit:
		dumpLine(b, depth, "BoolLit %t", e.Value)
	case *ast.StringLit:
		dumpLine(b, depth, "StringLit %q", e.Value)
	case *ast.Ident:
		dumpLine(b, depth, "Ident %s (slot %d, %s)", e.Name, e.Slot, e.ResolvedType)
	case *ast.UnaryExpr:
		dumpLine(b, depth, "UnaryExpr %s", e.Op)
		dumpExpr(b, e.Operand, depth+1)
	case *ast.BinaryExpr:
		dumpLine(b, depth, "BinaryExpr %s -> %s", e.Op, e.ResolvedType)
		dumpExpr(b, e.Left, depth+1)
		dumpExpr(b, e.Right, depth+1)
	case *ast.CallExpr:
		dumpLine(b, depth, "CallExpr %s", e.Callee)
		for _, a := range e.Args {
			dumpExpr(b, a, depth+1)
		}
	}
}
