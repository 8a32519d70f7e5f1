package symbols_test

import (
	"testing"

	"github.com/sluc-lang/sluc/internal/ast"
	"github.com/sluc-lang/sluc/internal/symbols"
)

func TestDeclareAssignsSequentialSlots(t *testing.T) {
	tbl := symbols.New()
	slot0, ok := tbl.Declare("a", ast.IntType)
	if !ok || slot0 != 0 {
		t.Fatalf("got (%d, %v), want (0, true)", slot0, ok)
	}
	slot1, ok := tbl.Declare("b", ast.FloatType)
	if !ok || slot1 != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", slot1, ok)
	}
	if tbl.Len() != 2 {
		t.Fatalf("got Len() %d, want 2", tbl.Len())
	}
}

func TestDeclareRejectsDuplicateName(t *testing.T) {
	tbl := symbols.New()
	tbl.Declare("a", ast.IntType)
	if _, ok := tbl.Declare("a", ast.FloatType); ok {
		t.Fatal("expected duplicate declaration to be rejected")
	}
}

func TestLookupUnknownNameFails(t *testing.T) {
	tbl := symbols.New()
	if _, ok := tbl.Lookup("missing"); ok {
		t.Fatal("expected lookup of undeclared name to fail")
	}
}

func TestSignaturesRejectDuplicateFunctionName(t *testing.T) {
	sigs := symbols.NewSignatures()
	sig := symbols.Signature{Name: "f", ParamTypes: nil, ReturnType: ast.IntType}
	if !sigs.Declare(sig) {
		t.Fatal("expected first declaration to succeed")
	}
	if sigs.Declare(sig) {
		t.Fatal("expected second declaration of the same name to fail")
	}
	got, ok := sigs.Lookup("f")
	if !ok || got.ReturnType != ast.IntType {
		t.Fatalf("got (%+v, %v), want matching signature", got, ok)
	}
}
