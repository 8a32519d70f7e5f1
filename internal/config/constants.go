// Package config is SLU-C's single source of truth for constants shared
// across the CLI, REPL, and history store: naming, file extensions, and
// display metadata.
package config

const (
	// SourceFileExt is the canonical extension for SLU-C source files.
	SourceFileExt = ".sluc"

	// EntryFunctionName is the name the evaluator resolves as a program's
	// entry point.
	EntryFunctionName = "main"

	// AppName is the CLI's command name and the name of the history
	// database's directory under the user's config directory.
	AppName = "sluc"

	// Version is the interpreter's reported version string.
	Version = "0.1.0"

	// HistoryDBFileName is the default SQLite file the history store
	// opens relative to the user's config directory.
	HistoryDBFileName = "sluc_history.db"

	// ReplPrompt is shown at the start of every REPL input line.
	ReplPrompt = "sluc> "
)

// Banner is the REPL's startup banner, grounded on the same
// figlet-style-ASCII-plus-separator convention used elsewhere in the
// retrieval pack's REPLs.
const Banner = `
  ____  _     _   _        ____
 / ___|| |   | | | |      / ___|
 \___ \| |   | | | |_____| |
  ___) | |___| |_| |_____| |___
 |____/|_____|\___/       \____|
`

// SeparatorLine is printed above and below the banner.
const SeparatorLine = "--------------------------------------------------"
