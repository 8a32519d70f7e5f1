package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sluc-lang/sluc/internal/ast"
)

// Value is the tagged union every SLU-C runtime value satisfies: exactly
// one of Int, Float, Bool, String holds meaningful data, selected by Type.
// Unset (the zero Value, Type == ast.Unresolved) represents a declared
// but never-assigned local.
type Value struct {
	Type   ast.Type
	Int    int64
	Float  float64
	Bool   bool
	String string
}

// Unset is the value every parameter slot and local slot starts with.
var Unset = Value{}

func IntValue(v int64) Value      { return Value{Type: ast.IntType, Int: v} }
func FloatValue(v float64) Value  { return Value{Type: ast.FloatType, Float: v} }
func BoolValue(v bool) Value      { return Value{Type: ast.BoolType, Bool: v} }
func StringValue(v string) Value  { return Value{Type: ast.StringType, String: v} }

// IsUnset reports whether v is a never-assigned slot.
func (v Value) IsUnset() bool {
	return v.Type == ast.Unresolved
}

// Inspect renders v the way "print" does: no quotes around strings, "true"
// / "false" for bool, and formatFloat's form for floats.
func (v Value) Inspect() string {
	switch v.Type {
	case ast.IntType:
		return strconv.FormatInt(v.Int, 10)
	case ast.FloatType:
		return formatFloat(v.Float)
	case ast.BoolType:
		if v.Bool {
			return "true"
		}
		return "false"
	case ast.StringType:
		return v.String
	default:
		return "<unset>"
	}
}

// Describe renders v with its type for debugging, e.g. "int(3)".
func (v Value) Describe() string {
	return fmt.Sprintf("%s(%s)", v.Type, v.Inspect())
}

// formatFloat renders f in its shortest exact form, adding ".0" when that
// form has no '.' or exponent, so an integer-valued float like 150.0
// prints as "150.0" rather than "150". Very large or very small
// magnitudes print in exponent form (1e+21, 1e-07).
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
