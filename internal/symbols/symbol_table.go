// Package symbols tracks per-function declarations during parsing so the
// parser can reject duplicate declarations and references that occur
// before their declaration, and can resolve each identifier to a frame
// slot the evaluator indexes directly.
package symbols

import "github.com/sluc-lang/sluc/internal/ast"

// Symbol is one parameter or local declaration visible within a function.
type Symbol struct {
	Name string
	Type ast.Type
	Slot int
}

// Table is the symbol table for a single function body: every parameter
// and every declared local, keyed by name, plus the slot each was
// assigned (0..N-1, parameters first in declaration order, then locals).
type Table struct {
	order []string
	byName map[string]Symbol
}

// New returns an empty Table.
func New() *Table {
	return &Table{byName: make(map[string]Symbol)}
}

// Declare adds name to the table at the next available slot. It reports
// false if name is already declared in this table (the caller raises
// DuplicateReferenceError).
func (t *Table) Declare(name string, typ ast.Type) (slot int, ok bool) {
	if _, exists := t.byName[name]; exists {
		return 0, false
	}
	slot = len(t.order)
	t.byName[name] = Symbol{Name: name, Type: typ, Slot: slot}
	t.order = append(t.order, name)
	return slot, true
}

// Lookup reports the Symbol for name and whether it was declared.
func (t *Table) Lookup(name string) (Symbol, bool) {
	sym, ok := t.byName[name]
	return sym, ok
}

// Len returns the number of declared symbols, i.e. the frame size needed
// to hold every parameter and local this table tracks.
func (t *Table) Len() int {
	return len(t.order)
}

// Signature records a known function's name, parameter types, and return
// type. Typecheck uses it to resolve call expressions and validate
// argument counts independent of declaration order in the source file;
// the parser uses it only to reject a second function of the same name.
type Signature struct {
	Name       string
	ParamTypes []ast.Type
	ReturnType ast.Type
}

// Signatures is the global table of every function defined in a program.
// Typecheck fills it in a first pass over the parsed function list, before
// checking any body, so calls to functions defined later in the file
// resolve; the parser fills its own table as each function is parsed.
type Signatures struct {
	byName map[string]Signature
}

// NewSignatures returns an empty Signatures table.
func NewSignatures() *Signatures {
	return &Signatures{byName: make(map[string]Signature)}
}

// Declare adds sig. It reports false if a function with this name was
// already declared (the caller raises DuplicateReferenceError).
func (s *Signatures) Declare(sig Signature) bool {
	if _, exists := s.byName[sig.Name]; exists {
		return false
	}
	s.byName[sig.Name] = sig
	return true
}

// Lookup reports the Signature for name and whether it exists.
func (s *Signatures) Lookup(name string) (Signature, bool) {
	sig, ok := s.byName[name]
	return sig, ok
}
