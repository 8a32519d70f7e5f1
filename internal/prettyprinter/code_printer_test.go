package prettyprinter_test

import (
	"testing"

	"github.com/sluc-lang/sluc/internal/lexer"
	"github.com/sluc-lang/sluc/internal/parser"
	"github.com/sluc-lang/sluc/internal/prettyprinter"
)

// TestRoundTrip parses a program, prints it back to source, and
// re-parses the printed text: the resulting AST must describe the same
// function shape, the external-collaborator property the printer exists
// to satisfy.
func TestRoundTrip(t *testing.T) {
	src := `int fact(int n) {
    int result;
    result = 1;
    while (n > 1) {
        result = result * n;
        n = n - 1;
    }
    return result;
}
int main() {
    print(fact(5));
}
`
	l, err := lexer.New(src)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	prog, err := parser.ParseProgram(l)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	printed := prettyprinter.Print(prog)

	l2, err := lexer.New(printed)
	if err != nil {
		t.Fatalf("lex error on printed output: %v\n--- output ---\n%s", err, printed)
	}
	reparsed, err := parser.ParseProgram(l2)
	if err != nil {
		t.Fatalf("parse error on printed output: %v\n--- output ---\n%s", err, printed)
	}

	if len(reparsed.Functions) != len(prog.Functions) {
		t.Fatalf("got %d functions after round trip, want %d", len(reparsed.Functions), len(prog.Functions))
	}
	for i, fn := range prog.Functions {
		if reparsed.Functions[i].Name != fn.Name {
			t.Fatalf("function %d: got name %s, want %s", i, reparsed.Functions[i].Name, fn.Name)
		}
		if len(reparsed.Functions[i].Body) != len(fn.Body) {
			t.Fatalf("function %s: got %d statements after round trip, want %d", fn.Name, len(reparsed.Functions[i].Body), len(fn.Body))
		}
	}
}
