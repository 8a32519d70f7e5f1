package replshell

import (
	"bytes"
	"testing"
)

func TestIsDeclarationLineDistinguishesDeclsFromStatements(t *testing.T) {
	cases := map[string]bool{
		"int x;":     true,
		"float y;":   true,
		"x = 1;":     false,
		"print(x);":  false,
		"while true": false,
	}
	for line, want := range cases {
		if got := isDeclarationLine(line); got != want {
			t.Errorf("isDeclarationLine(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestBuildSourceWrapsDeclsThenStmtsInMain(t *testing.T) {
	src := buildSource([]string{"int x;"}, []string{"x = 1;", "print(x);"})
	want := "int main() {\nint x;\nx = 1;\nprint(x);\n}\n"
	if src != want {
		t.Fatalf("got %q, want %q", src, want)
	}
}

func TestEvalLineAccumulatesSessionState(t *testing.T) {
	sh := New()
	var out bytes.Buffer

	sh.evalLine(&out, "int x;")
	sh.evalLine(&out, "x = 21;")
	sh.evalLine(&out, "print(x * 2);")

	if out.String() != "42\n" {
		t.Fatalf("got output %q, want %q", out.String(), "42\n")
	}
}

func TestEvalLineReportsErrorsWithoutPoisoningSession(t *testing.T) {
	sh := New()
	var out bytes.Buffer

	sh.evalLine(&out, "int x;")
	sh.evalLine(&out, "x = 1;")
	sh.evalLine(&out, "y = 2;") // y was never declared: ReferenceBeforeAssignmentError
	out.Reset()
	sh.evalLine(&out, "print(x);")

	if out.String() != "1\n" {
		t.Fatalf("got output %q, want %q", out.String(), "1\n")
	}
}
