package lexer_test

import (
	"testing"

	"github.com/sluc-lang/sluc/internal/lexer"
	"github.com/sluc-lang/sluc/internal/token"
)

func kinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	l, err := lexer.New(src)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	var out []token.Kind
	for {
		tok := l.Next()
		out = append(out, tok.Kind)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func TestTokenizeDeclarationAndAssignment(t *testing.T) {
	got := kinds(t, "int x;\nx = 5;")
	want := []token.Kind{
		token.KEYWORD, token.ID, token.SEMI,
		token.ID, token.ASSIGN, token.INTLIT, token.SEMI,
		token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestTokenizeMultiCharOperators(t *testing.T) {
	got := kinds(t, "a == b && c != d || !e <= f >= g")
	want := []token.Kind{
		token.ID, token.EQ, token.ID, token.AND, token.ID, token.NEQ, token.ID,
		token.OR, token.NOT, token.ID, token.LTE, token.ID, token.GTE, token.ID,
		token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestLineCommentIsDropped(t *testing.T) {
	got := kinds(t, "int x; // a comment\nx = 1;")
	want := []token.Kind{
		token.KEYWORD, token.ID, token.SEMI,
		token.ID, token.ASSIGN, token.INTLIT, token.SEMI,
		token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("comment leaked a token: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("comment leaked a token: got %v, want %v", got, want)
		}
	}
}

func TestStringLiteralKeepsQuotes(t *testing.T) {
	l, err := lexer.New(`print("hello");`)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	l.Next() // print
	l.Next() // (
	str := l.Next()
	if str.Kind != token.STRINGLIT {
		t.Fatalf("got kind %v, want STRINGLIT", str.Kind)
	}
	if str.Lexeme != `"hello"` {
		t.Fatalf("got lexeme %q", str.Lexeme)
	}
}

func TestLineNumbersTrackPhysicalLines(t *testing.T) {
	l, err := lexer.New("int x;\n\nx = 1;")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	var last token.Token
	for {
		tok := l.Next()
		if tok.Kind == token.EOF {
			break
		}
		last = tok
	}
	if last.Line != 3 {
		t.Fatalf("got line %d for last token, want 3", last.Line)
	}
}

func TestUnrecognizedFragmentIsSyntaxError(t *testing.T) {
	if _, err := lexer.New("int x; x = 5 @ 2;"); err == nil {
		t.Fatal("expected a SyntaxError for an unrecognized character, got nil")
	}
}

func TestScientificNotationLexesAsFloat(t *testing.T) {
	cases := []string{"1e2", "1E2", "1e+2", "1_0e2", "1e2_0", ".5e2", "1.5e2"}
	for _, src := range cases {
		l, err := lexer.New(src + ";")
		if err != nil {
			t.Fatalf("%q: unexpected lex error: %v", src, err)
		}
		tok := l.Next()
		if tok.Kind != token.FLOATLIT {
			t.Fatalf("%q: got kind %v, want FLOATLIT", src, tok.Kind)
		}
	}
}
