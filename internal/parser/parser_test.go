package parser_test

import (
	"testing"

	"github.com/sluc-lang/sluc/internal/ast"
	"github.com/sluc-lang/sluc/internal/lexer"
	"github.com/sluc-lang/sluc/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	l, err := lexer.New(src)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	prog, err := parser.ParseProgram(l)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog
}

func TestParseMinimalMain(t *testing.T) {
	src := `int main() {
		print("hi");
	}`
	prog := mustParse(t, src)
	if len(prog.Functions) != 1 {
		t.Fatalf("got %d functions, want 1", len(prog.Functions))
	}
	if prog.Functions[0].Name != "main" {
		t.Fatalf("got function %s, want main", prog.Functions[0].Name)
	}
}

func TestMainReorderedToIndexZero(t *testing.T) {
	src := `int helper() {
		return 1;
	}
	int main() {
		return helper();
	}`
	prog := mustParse(t, src)
	if len(prog.Functions) != 2 {
		t.Fatalf("got %d functions, want 2", len(prog.Functions))
	}
	if prog.Functions[0].Name != "main" {
		t.Fatalf("main not moved to index 0, got %s", prog.Functions[0].Name)
	}
	if prog.Functions[1].Name != "helper" {
		t.Fatalf("helper dropped by reordering, got %s", prog.Functions[1].Name)
	}
}

func TestDeclarationsAndAssignment(t *testing.T) {
	src := `int main() {
		int x;
		x = 5;
		return x;
	}`
	prog := mustParse(t, src)
	fn := prog.Functions[0]
	if len(fn.Decls) != 1 || fn.Decls[0].Name != "x" {
		t.Fatalf("expected one decl named x, got %+v", fn.Decls)
	}
	if fn.FrameSize != 1 {
		t.Fatalf("got frame size %d, want 1", fn.FrameSize)
	}
}

func TestDuplicateParameterIsRejected(t *testing.T) {
	src := `int main(int x, int x) {
		return x;
	}`
	l, _ := lexer.New(src)
	if _, err := parser.ParseProgram(l); err == nil {
		t.Fatal("expected DuplicateReferenceError, got nil")
	}
}

func TestDuplicateDeclarationIsRejected(t *testing.T) {
	src := `int main() {
		int x;
		int x;
		return x;
	}`
	l, _ := lexer.New(src)
	if _, err := parser.ParseProgram(l); err == nil {
		t.Fatal("expected DuplicateReferenceError, got nil")
	}
}

func TestReferenceBeforeAssignmentIsRejected(t *testing.T) {
	src := `int main() {
		return y;
	}`
	l, _ := lexer.New(src)
	if _, err := parser.ParseProgram(l); err == nil {
		t.Fatal("expected ReferenceBeforeAssignmentError, got nil")
	}
}

func TestInvalidTypeIsRejected(t *testing.T) {
	src := `banana main() {
		return 1;
	}`
	l, _ := lexer.New(src)
	if _, err := parser.ParseProgram(l); err == nil {
		t.Fatal("expected InvalidTypeError, got nil")
	}
}

func TestMissingRightParenIsSyntaxError(t *testing.T) {
	src := `int main( {
		return 1;
	}`
	l, _ := lexer.New(src)
	if _, err := parser.ParseProgram(l); err == nil {
		t.Fatal("expected SyntaxError, got nil")
	}
}

func TestIfElseAndWhile(t *testing.T) {
	src := `int main() {
		int i;
		i = 0;
		while (i < 3) {
			if (i == 1) {
				print("one");
			} else {
				print("not one");
			}
			i = i + 1;
		}
		return i;
	}`
	prog := mustParse(t, src)
	if len(prog.Functions[0].Body) != 3 {
		t.Fatalf("got %d top-level statements, want 3", len(prog.Functions[0].Body))
	}
	while, ok := prog.Functions[0].Body[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected WhileStmt, got %T", prog.Functions[0].Body[1])
	}
	if len(while.Body) != 2 {
		t.Fatalf("got %d statements in while body, want 2", len(while.Body))
	}
}

func TestCallStatementAndCallExpression(t *testing.T) {
	src := `int double(int n) {
		return n * 2;
	}
	int main() {
		double(4);
		print(double(5));
		return 0;
	}`
	prog := mustParse(t, src)
	main := prog.Functions[0]
	if _, ok := main.Body[0].(*ast.CallStmt); !ok {
		t.Fatalf("expected CallStmt, got %T", main.Body[0])
	}
}
