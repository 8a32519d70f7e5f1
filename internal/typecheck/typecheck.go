// Package typecheck runs a standalone pass over a parsed Program before
// evaluation begins, resolving every expression's type and validating
// every operator use, assignment, call, and control-flow condition
// against SLU-C's typing rules.
//
// This is a deliberate departure from the reference implementation this
// language was distilled from, which interleaved type checking with
// evaluation: a statement's operands were evaluated once to run the
// program and a second time, inside typecheck, purely to learn their
// type, which let print statements run their side effects before a type
// error later in the same statement was ever discovered. Running this
// pass first means a type error anywhere in main aborts the program
// before a single print has reached the output.
package typecheck

import (
	"fmt"

	"github.com/sluc-lang/sluc/internal/ast"
	"github.com/sluc-lang/sluc/internal/diagnostics"
	"github.com/sluc-lang/sluc/internal/pipeline"
	"github.com/sluc-lang/sluc/internal/symbols"
)

// Checker validates one Program against the global function signature
// table built from it.
type Checker struct {
	sigs *symbols.Signatures
}

// Check resolves and validates every function in program, returning the
// first diagnostic encountered. On success every Expr in program has a
// non-Unresolved ResolvedType and the evaluator can trust it.
func Check(program *ast.Program) error {
	c := &Checker{sigs: symbols.NewSignatures()}
	for _, fn := range program.Functions {
		c.sigs.Declare(symbols.Signature{
			Name:       fn.Name,
			ParamTypes: paramTypes(fn.Params),
			ReturnType: fn.ReturnType,
		})
	}
	for _, fn := range program.Functions {
		if err := c.checkFunction(fn); err != nil {
			return err
		}
	}
	return nil
}

func paramTypes(params []*ast.Param) []ast.Type {
	out := make([]ast.Type, len(params))
	for i, p := range params {
		out[i] = p.Type
	}
	return out
}

func (c *Checker) checkFunction(fn *ast.FunctionDef) error {
	return c.checkStmts(fn.Body)
}

func (c *Checker) checkStmts(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := c.checkStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		rhsType, err := c.checkExpr(s.Value)
		if err != nil {
			return err
		}
		// int<->float is freely convertible (implicit widening/narrowing);
		// bool and string may only be assigned their own type.
		if !assignable(s.DeclaredType, rhsType) {
			return diagnostics.InvalidType(s.Line(), fmt.Sprintf("cannot assign %s to %s %s", rhsType, s.DeclaredType, s.Target))
		}
		return nil

	case *ast.PrintStmt:
		for _, arg := range s.Args {
			if _, err := c.checkExpr(arg); err != nil {
				return err
			}
		}
		return nil

	case *ast.IfStmt:
		condType, err := c.checkExpr(s.Cond)
		if err != nil {
			return err
		}
		if condType != ast.BoolType {
			return diagnostics.InvalidType(s.Line(), "if condition must be bool")
		}
		if err := c.checkStmts(s.Then); err != nil {
			return err
		}
		return c.checkStmts(s.Else)

	case *ast.WhileStmt:
		condType, err := c.checkExpr(s.Cond)
		if err != nil {
			return err
		}
		if condType != ast.BoolType {
			return diagnostics.InvalidType(s.Line(), "while condition must be bool")
		}
		return c.checkStmts(s.Body)

	case *ast.ReturnStmt:
		if s.Value == nil {
			return nil
		}
		_, err := c.checkExpr(s.Value)
		return err

	case *ast.CallStmt:
		_, err := c.checkExpr(s.Call)
		return err

	default:
		return diagnostics.Runtime(stmt.Line(), fmt.Sprintf("unhandled statement %T", stmt))
	}
}

// checkExpr resolves expr's type, validating every operator and call
// along the way, and annotates the node's ResolvedType field.
func (c *Checker) checkExpr(expr ast.Expr) (ast.Type, error) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return ast.IntType, nil
	case *ast.FloatLit:
		return ast.FloatType, nil
	case *ast.BoolLit:
		return ast.BoolType, nil
	case *ast.StringLit:
		return ast.StringType, nil
	case *ast.Ident:
		return e.ResolvedType, nil

	case *ast.UnaryExpr:
		operandType, err := c.checkExpr(e.Operand)
		if err != nil {
			return ast.Unresolved, err
		}
		switch e.Op {
		case ast.OpNeg:
			if !isNumeric(operandType) {
				return ast.Unresolved, diagnostics.InvalidType(e.Line(), "unary - requires a numeric operand")
			}
			e.ResolvedType = operandType
		case ast.OpNot:
			if operandType != ast.BoolType {
				return ast.Unresolved, diagnostics.InvalidType(e.Line(), "unary ! requires a bool operand")
			}
			e.ResolvedType = ast.BoolType
		}
		return e.ResolvedType, nil

	case *ast.BinaryExpr:
		return c.checkBinary(e)

	case *ast.CallExpr:
		sig, ok := c.sigs.Lookup(e.Callee)
		if !ok {
			return ast.Unresolved, diagnostics.ReferenceBeforeAssignment(e.Line(), fmt.Sprintf("%s referenced before assignment", e.Callee))
		}
		if len(e.Args) != len(sig.ParamTypes) {
			return ast.Unresolved, diagnostics.InvalidType(e.Line(), fmt.Sprintf("%s expects %d arguments, got %d", e.Callee, len(sig.ParamTypes), len(e.Args)))
		}
		for i, arg := range e.Args {
			argType, err := c.checkExpr(arg)
			if err != nil {
				return ast.Unresolved, err
			}
			want := sig.ParamTypes[i]
			if !assignable(want, argType) {
				return ast.Unresolved, diagnostics.InvalidType(arg.Line(), fmt.Sprintf("argument %d to %s has wrong type", i+1, e.Callee))
			}
		}
		e.ResolvedType = sig.ReturnType
		return e.ResolvedType, nil

	default:
		return ast.Unresolved, diagnostics.Runtime(expr.Line(), fmt.Sprintf("unhandled expression %T", expr))
	}
}

func (c *Checker) checkBinary(e *ast.BinaryExpr) (ast.Type, error) {
	leftType, err := c.checkExpr(e.Left)
	if err != nil {
		return ast.Unresolved, err
	}
	rightType, err := c.checkExpr(e.Right)
	if err != nil {
		return ast.Unresolved, err
	}

	switch e.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		if !isNumeric(leftType) || !isNumeric(rightType) {
			return ast.Unresolved, diagnostics.InvalidType(e.Line(), fmt.Sprintf("operator %s requires numeric operands", e.Op))
		}
		if leftType == ast.FloatType || rightType == ast.FloatType {
			e.ResolvedType = ast.FloatType
		} else {
			e.ResolvedType = ast.IntType
		}
		return e.ResolvedType, nil

	case ast.OpEq, ast.OpNeq:
		if !comparable(leftType, rightType) {
			return ast.Unresolved, diagnostics.InvalidType(e.Line(), fmt.Sprintf("operator %s cannot compare %s and %s", e.Op, leftType, rightType))
		}
		e.ResolvedType = ast.BoolType
		return e.ResolvedType, nil

	case ast.OpLt, ast.OpLte, ast.OpGt, ast.OpGte:
		if !isNumeric(leftType) || !isNumeric(rightType) {
			return ast.Unresolved, diagnostics.InvalidType(e.Line(), fmt.Sprintf("operator %s requires numeric operands", e.Op))
		}
		e.ResolvedType = ast.BoolType
		return e.ResolvedType, nil

	case ast.OpAnd, ast.OpOr:
		if leftType != ast.BoolType || rightType != ast.BoolType {
			return ast.Unresolved, diagnostics.InvalidType(e.Line(), fmt.Sprintf("operator %s requires bool operands", e.Op))
		}
		e.ResolvedType = ast.BoolType
		return e.ResolvedType, nil

	default:
		return ast.Unresolved, diagnostics.Runtime(e.Line(), "unhandled binary operator")
	}
}

func isNumeric(t ast.Type) bool {
	return t == ast.IntType || t == ast.FloatType
}

// comparable mirrors the arithmetic typing rule: bool only compares with
// bool, string only with string, int and float freely compare with each
// other.
func comparable(a, b ast.Type) bool {
	if a == ast.BoolType || b == ast.BoolType {
		return a == b
	}
	if a == ast.StringType || b == ast.StringType {
		return a == b
	}
	return isNumeric(a) && isNumeric(b)
}

// assignable reports whether a value of type src may be assigned to, or
// passed where, a destination of type dst: bool and string require an
// exact match, int and float are mutually convertible.
func assignable(dst, src ast.Type) bool {
	if dst == src {
		return true
	}
	return isNumeric(dst) && isNumeric(src)
}

// Stage adapts Check to the pipeline.Processor interface.
type Stage struct{}

func (Stage) Process(ctx *pipeline.Context) *pipeline.Context {
	if err := Check(ctx.Program); err != nil {
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}

var _ pipeline.Processor = Stage{}
