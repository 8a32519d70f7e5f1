package typecheck_test

import (
	"testing"

	"github.com/sluc-lang/sluc/internal/lexer"
	"github.com/sluc-lang/sluc/internal/parser"
	"github.com/sluc-lang/sluc/internal/typecheck"
)

func check(t *testing.T, src string) error {
	t.Helper()
	l, err := lexer.New(src)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	prog, err := parser.ParseProgram(l)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return typecheck.Check(prog)
}

func TestIntFloatMixedArithmeticIsAllowed(t *testing.T) {
	src := `int main() {
    float x;
    x = 1 + 2.5;
}
`
	if err := check(t, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBoolArithmeticIsRejected(t *testing.T) {
	src := `int main() {
    bool b;
    b = true;
    b = b + b;
}
`
	err := check(t, src)
	if err == nil {
		t.Fatal("expected a type error")
	}
}

func TestIfConditionMustBeBool(t *testing.T) {
	src := `int main() {
    int n;
    n = 1;
    if (n) {
        print(n);
    }
}
`
	if err := check(t, src); err == nil {
		t.Fatal("expected a type error for a non-bool condition")
	}
}

func TestCallArgumentCountMismatchIsRejected(t *testing.T) {
	src := `int add(int a, int b) {
    return a + b;
}
int main() {
    print(add(1));
}
`
	if err := check(t, src); err == nil {
		t.Fatal("expected a type error for wrong argument count")
	}
}

func TestForwardReferencedCallIsAccepted(t *testing.T) {
	src := `int main() {
    print(helper(2));
}
int helper(int n) {
    return n * n;
}
`
	if err := check(t, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStringEqualityIsAllowed(t *testing.T) {
	src := `int main() {
    string s;
    s = "hi";
    print(s == "hi");
}
`
	if err := check(t, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
