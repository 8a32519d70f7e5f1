package evaluator

import (
	"fmt"

	"github.com/sluc-lang/sluc/internal/ast"
	"github.com/sluc-lang/sluc/internal/diagnostics"
)

func (e *Evaluator) execStmts(stmts []ast.Stmt, frame *Frame) (control, error) {
	for _, s := range stmts {
		ctrl, err := e.execStmt(s, frame)
		if err != nil {
			return control{}, err
		}
		if ctrl.kind == controlReturn {
			return ctrl, nil
		}
	}
	return control{}, nil
}

func (e *Evaluator) execStmt(stmt ast.Stmt, frame *Frame) (control, error) {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		v, err := e.eval(s.Value, frame)
		if err != nil {
			return control{}, err
		}
		frame.Set(s.Slot, coerce(v, s.DeclaredType))
		return control{}, nil

	case *ast.PrintStmt:
		for _, arg := range s.Args {
			v, err := e.eval(arg, frame)
			if err != nil {
				return control{}, err
			}
			fmt.Fprintln(e.Out, v.Inspect())
		}
		return control{}, nil

	case *ast.IfStmt:
		cond, err := e.eval(s.Cond, frame)
		if err != nil {
			return control{}, err
		}
		if cond.Bool {
			return e.execStmts(s.Then, frame)
		}
		return e.execStmts(s.Else, frame)

	case *ast.WhileStmt:
		for {
			cond, err := e.eval(s.Cond, frame)
			if err != nil {
				return control{}, err
			}
			if !cond.Bool {
				return control{}, nil
			}
			ctrl, err := e.execStmts(s.Body, frame)
			if err != nil {
				return control{}, err
			}
			if ctrl.kind == controlReturn {
				return ctrl, nil
			}
		}

	case *ast.ReturnStmt:
		if s.Value == nil {
			return control{kind: controlReturn, value: Unset}, nil
		}
		v, err := e.eval(s.Value, frame)
		if err != nil {
			return control{}, err
		}
		return control{kind: controlReturn, value: v}, nil

	case *ast.CallStmt:
		_, err := e.evalCall(s.Call, frame)
		return control{}, err

	default:
		return control{}, diagnostics.Runtime(stmt.Line(), fmt.Sprintf("unhandled statement %T", stmt))
	}
}
