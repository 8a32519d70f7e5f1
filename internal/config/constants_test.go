package config_test

import (
	"strings"
	"testing"

	"github.com/sluc-lang/sluc/internal/config"
)

func TestEntryFunctionNameMatchesGrammar(t *testing.T) {
	if config.EntryFunctionName != "main" {
		t.Fatalf("got %q, want %q", config.EntryFunctionName, "main")
	}
}

func TestSourceFileExtHasLeadingDot(t *testing.T) {
	if !strings.HasPrefix(config.SourceFileExt, ".") {
		t.Fatalf("got %q, want a leading dot", config.SourceFileExt)
	}
}
