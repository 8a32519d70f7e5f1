package diagnostics_test

import (
	"testing"

	"github.com/sluc-lang/sluc/internal/diagnostics"
)

func TestErrorMessageFormat(t *testing.T) {
	err := diagnostics.Syntax(12, "Missing semicolon")
	want := "ERROR: Missing semicolon on line 12"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestConstructorsSetKind(t *testing.T) {
	cases := []struct {
		name string
		err  *diagnostics.Error
		kind diagnostics.Kind
	}{
		{"Syntax", diagnostics.Syntax(1, "x"), diagnostics.SyntaxErrorKind},
		{"InvalidType", diagnostics.InvalidType(1, "x"), diagnostics.InvalidTypeErrorKind},
		{"DuplicateReference", diagnostics.DuplicateReference(1, "x"), diagnostics.DuplicateReferenceErrorKind},
		{"ReferenceBeforeAssignment", diagnostics.ReferenceBeforeAssignment(1, "x"), diagnostics.ReferenceBeforeAssignmentErrorKind},
		{"Runtime", diagnostics.Runtime(1, "x"), diagnostics.RuntimeErrorKind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Kind != tc.kind {
				t.Fatalf("got kind %v, want %v", tc.err.Kind, tc.kind)
			}
		})
	}
}
