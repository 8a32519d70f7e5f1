package evaluator

import (
	"fmt"
	"math"

	"github.com/sluc-lang/sluc/internal/ast"
	"github.com/sluc-lang/sluc/internal/diagnostics"
)

// eval evaluates a single, already-typechecked expression against frame.
func (e *Evaluator) eval(expr ast.Expr, frame *Frame) (Value, error) {
	switch n := expr.(type) {
	case *ast.IntLit:
		return IntValue(n.Value), nil
	case *ast.FloatLit:
		return FloatValue(n.Value), nil
	case *ast.BoolLit:
		return BoolValue(n.Value), nil
	case *ast.StringLit:
		return StringValue(n.Value), nil

	case *ast.Ident:
		v := frame.Get(n.Slot)
		if v.IsUnset() {
			return Value{}, diagnostics.Runtime(n.Line(), fmt.Sprintf("%s used before being assigned a value", n.Name))
		}
		return v, nil

	case *ast.UnaryExpr:
		return e.evalUnary(n, frame)

	case *ast.BinaryExpr:
		return e.evalBinary(n, frame)

	case *ast.CallExpr:
		return e.evalCall(n, frame)

	default:
		return Value{}, diagnostics.Runtime(expr.Line(), fmt.Sprintf("unhandled expression %T", expr))
	}
}

func (e *Evaluator) evalUnary(n *ast.UnaryExpr, frame *Frame) (Value, error) {
	v, err := e.eval(n.Operand, frame)
	if err != nil {
		return Value{}, err
	}
	switch n.Op {
	case ast.OpNeg:
		if v.Type == ast.FloatType {
			return FloatValue(-v.Float), nil
		}
		return IntValue(-v.Int), nil
	case ast.OpNot:
		return BoolValue(!v.Bool), nil
	default:
		return Value{}, diagnostics.Runtime(n.Line(), "unhandled unary operator")
	}
}

// evalBinary evaluates both operands unconditionally before combining
// them, including for && and ||: per the language's design notes, logical
// operators in SLU-C are not short-circuiting.
func (e *Evaluator) evalBinary(n *ast.BinaryExpr, frame *Frame) (Value, error) {
	left, err := e.eval(n.Left, frame)
	if err != nil {
		return Value{}, err
	}
	right, err := e.eval(n.Right, frame)
	if err != nil {
		return Value{}, err
	}

	switch n.Op {
	case ast.OpAdd:
		return arith(left, right, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }), nil
	case ast.OpSub:
		return arith(left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }), nil
	case ast.OpMul:
		return arith(left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }), nil
	case ast.OpDiv:
		if n.ResolvedType == ast.IntType && right.Int == 0 {
			return Value{}, diagnostics.Runtime(n.Line(), "division by zero")
		}
		if n.ResolvedType == ast.FloatType && asFloat(right) == 0 {
			return Value{}, diagnostics.Runtime(n.Line(), "division by zero")
		}
		// Integer division truncates toward zero, matching Go's native
		// int division; this is intentional, not a bug: SLU-C defines
		// int/int as integer division (7/2 == 3).
		return arith(left, right, func(a, b int64) int64 { return a / b }, func(a, b float64) float64 { return a / b }), nil
	case ast.OpMod:
		if asFloat(right) == 0 {
			return Value{}, diagnostics.Runtime(n.Line(), "division by zero")
		}
		return arith(left, right, func(a, b int64) int64 { return a % b }, math.Mod), nil

	case ast.OpEq:
		return BoolValue(valuesEqual(left, right)), nil
	case ast.OpNeq:
		return BoolValue(!valuesEqual(left, right)), nil
	case ast.OpLt:
		return BoolValue(numericLess(left, right)), nil
	case ast.OpLte:
		return BoolValue(numericLess(left, right) || valuesEqual(left, right)), nil
	case ast.OpGt:
		return BoolValue(!numericLess(left, right) && !valuesEqual(left, right)), nil
	case ast.OpGte:
		return BoolValue(!numericLess(left, right)), nil

	case ast.OpAnd:
		return BoolValue(left.Bool && right.Bool), nil
	case ast.OpOr:
		return BoolValue(left.Bool || right.Bool), nil

	default:
		return Value{}, diagnostics.Runtime(n.Line(), "unhandled binary operator")
	}
}

// arith applies intFn or floatFn depending on whether either operand is a
// float, per the typing rule: the result is float if either operand is
// float, else int.
func arith(left, right Value, intFn func(int64, int64) int64, floatFn func(float64, float64) float64) Value {
	if left.Type == ast.FloatType || right.Type == ast.FloatType {
		return FloatValue(floatFn(asFloat(left), asFloat(right)))
	}
	return IntValue(intFn(left.Int, right.Int))
}

func asFloat(v Value) float64 {
	if v.Type == ast.FloatType {
		return v.Float
	}
	return float64(v.Int)
}

func valuesEqual(left, right Value) bool {
	switch {
	case left.Type == ast.StringType || right.Type == ast.StringType:
		return left.String == right.String
	case left.Type == ast.BoolType || right.Type == ast.BoolType:
		return left.Bool == right.Bool
	default:
		return asFloat(left) == asFloat(right)
	}
}

func numericLess(left, right Value) bool {
	return asFloat(left) < asFloat(right)
}

// evalCall resolves the callee by name, evaluates its arguments left to
// right, and invokes it through a fresh Frame.
func (e *Evaluator) evalCall(call *ast.CallExpr, frame *Frame) (Value, error) {
	fn, ok := e.byName[call.Callee]
	if !ok {
		return Value{}, diagnostics.Runtime(call.Line(), fmt.Sprintf("call to undefined function %s", call.Callee))
	}
	args := make([]Value, len(call.Args))
	for i, a := range call.Args {
		v, err := e.eval(a, frame)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	return e.call(fn, args)
}
