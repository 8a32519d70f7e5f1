// Package diagnostics implements the closed taxonomy of errors SLU-C's
// pipeline stages can raise. Every diagnostic renders as
// "ERROR: <message> on line <n>", the wire format the interpreter prints
// to stderr and the format its tests assert against.
package diagnostics

import "fmt"

// Kind is the closed set of SLU-C error categories. No stage constructs a
// diagnostic outside this list.
type Kind int

const (
	SyntaxErrorKind Kind = iota
	InvalidTypeErrorKind
	DuplicateReferenceErrorKind
	ReferenceBeforeAssignmentErrorKind
	RuntimeErrorKind
)

func (k Kind) String() string {
	switch k {
	case SyntaxErrorKind:
		return "SyntaxError"
	case InvalidTypeErrorKind:
		return "InvalidTypeError"
	case DuplicateReferenceErrorKind:
		return "DuplicateReferenceError"
	case ReferenceBeforeAssignmentErrorKind:
		return "ReferenceBeforeAssignmentError"
	case RuntimeErrorKind:
		return "RuntimeError"
	default:
		return "UnknownError"
	}
}

// Error is the single concrete error type every pipeline stage returns.
// It satisfies the standard error interface; callers needing the kind for
// something other than display type-assert against *Error.
type Error struct {
	Kind    Kind
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ERROR: %s on line %d", e.Message, e.Line)
}

func newError(kind Kind, line int, message string) *Error {
	return &Error{Kind: kind, Line: line, Message: message}
}

// Syntax reports a grammar violation: a missing delimiter, an unexpected
// token, or any other structural parse failure.
func Syntax(line int, message string) *Error {
	return newError(SyntaxErrorKind, line, message)
}

// InvalidType reports a type-keyword or operator-typing violation.
func InvalidType(line int, message string) *Error {
	return newError(InvalidTypeErrorKind, line, message)
}

// DuplicateReference reports a name declared twice in a scope where SLU-C
// requires uniqueness (parameters and declarations within one function).
func DuplicateReference(line int, message string) *Error {
	return newError(DuplicateReferenceErrorKind, line, message)
}

// ReferenceBeforeAssignment reports use of a name that parsing could not
// prove was declared earlier in the same function (and that is not itself
// a known function name).
func ReferenceBeforeAssignment(line int, message string) *Error {
	return newError(ReferenceBeforeAssignmentErrorKind, line, message)
}

// Runtime reports a failure discovered only while evaluating a
// well-formed, well-typed program (e.g. reading an Unset value, or
// calling an undefined function).
func Runtime(line int, message string) *Error {
	return newError(RuntimeErrorKind, line, message)
}
