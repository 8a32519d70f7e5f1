// Package evaluator tree-walks a typechecked *ast.Program and executes
// its entry function, "main". It trusts every ResolvedType annotation the
// typecheck pass left behind and never re-derives a type at runtime.
package evaluator

import (
	"io"

	"github.com/sluc-lang/sluc/internal/ast"
	"github.com/sluc-lang/sluc/internal/diagnostics"
)

// Evaluator runs one Program against an output writer. Functions are
// dispatched by name through a map built once at construction, replacing
// the reference implementation's linear scan over the function list on
// every call.
type Evaluator struct {
	Out    io.Writer
	byName map[string]*ast.FunctionDef
}

// New returns an Evaluator ready to Run program, writing print output to
// out.
func New(program *ast.Program, out io.Writer) *Evaluator {
	e := &Evaluator{Out: out, byName: make(map[string]*ast.FunctionDef, len(program.Functions))}
	for _, fn := range program.Functions {
		e.byName[fn.Name] = fn
	}
	return e
}

// Run resolves and executes "main". A Program with no function literally
// named "main" is a RuntimeError raised here, before anything executes —
// never a silent attempt to run whichever function ended up first in the
// list.
func (e *Evaluator) Run() error {
	main, ok := e.byName["main"]
	if !ok {
		return diagnostics.Runtime(0, "no function named main")
	}
	_, err := e.call(main, nil)
	return err
}

// control is the sentinel an executing statement list returns to its
// caller: either no return was hit yet (controlNone), or a return was hit
// (controlReturn, carrying the value — Unset for a bare "return;").
type controlKind int

const (
	controlNone controlKind = iota
	controlReturn
)

type control struct {
	kind  controlKind
	value Value
}

// call binds args positionally into a fresh Frame and executes fn's body.
// The first Return encountered in execution order yields the call's
// result; falling off the end of the body yields Unset (no value).
func (e *Evaluator) call(fn *ast.FunctionDef, args []Value) (Value, error) {
	frame := NewFrame(fn.FrameSize)
	for i, p := range fn.Params {
		if i < len(args) {
			frame.Set(p.Slot, coerce(args[i], p.Type))
		}
	}
	ctrl, err := e.execStmts(fn.Body, frame)
	if err != nil {
		return Value{}, err
	}
	if ctrl.kind == controlReturn {
		return ctrl.value, nil
	}
	return Unset, nil
}

// coerce converts an int<->float value to the declared slot type; bool
// and string values pass through unchanged (typecheck has already
// guaranteed they match).
func coerce(v Value, declared ast.Type) Value {
	if v.Type == declared {
		return v
	}
	switch declared {
	case ast.FloatType:
		if v.Type == ast.IntType {
			return FloatValue(float64(v.Int))
		}
	case ast.IntType:
		if v.Type == ast.FloatType {
			return IntValue(int64(v.Float))
		}
	}
	return v
}
