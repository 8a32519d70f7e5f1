package main

import (
	"path/filepath"
	"testing"
)

func TestDefaultHistoryPathIsUnderAppSubdirectory(t *testing.T) {
	path := defaultHistoryPath()
	if filepath.Base(filepath.Dir(path)) != "sluc" && filepath.Base(path) != "sluc_history.db" {
		t.Fatalf("got %q, want a path ending in a sluc/ directory or the history db filename", path)
	}
}

func TestRootCmdRegistersEverySubcommand(t *testing.T) {
	root := rootCmd()
	want := map[string]bool{"run": false, "tokens": false, "ast": false, "repl": false, "history": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}
