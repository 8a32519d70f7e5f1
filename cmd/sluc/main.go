package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sluc-lang/sluc/internal/config"
	"github.com/sluc-lang/sluc/internal/evaluator"
	"github.com/sluc-lang/sluc/internal/history"
	"github.com/sluc-lang/sluc/internal/lexer"
	"github.com/sluc-lang/sluc/internal/parser"
	"github.com/sluc-lang/sluc/internal/pipeline"
	"github.com/sluc-lang/sluc/internal/prettyprinter"
	"github.com/sluc-lang/sluc/internal/replshell"
	"github.com/sluc-lang/sluc/internal/token"
	"github.com/sluc-lang/sluc/internal/typecheck"
)

var (
	noColor    bool
	verbose    bool
	historyDB  string
	treeFormat bool
)

func main() {
	// Catch panics the way an interpreter front end must: a bug in this
	// tool should never leave the terminal in a broken state or dump a Go
	// stack trace at a user who just mistyped a source file.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     config.AppName,
		Short:   "sluc runs and inspects SLU-C programs",
		Version: config.Version,
		// "sluc <file>" runs the file, the same as "sluc run <file>".
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runFile(args[0])
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
				color.NoColor = true
			}
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print each pipeline stage as it runs")
	root.PersistentFlags().StringVar(&historyDB, "history-db", defaultHistoryPath(), "path to the run history database")

	root.AddCommand(runCmd(), tokensCmd(), astCmd(), replCmd(), historyCmd())
	return root
}

func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return config.HistoryDBFileName
	}
	return filepath.Join(dir, config.AppName, config.HistoryDBFileName)
}

// runCmd is sluc's default action: execute a source file through the full
// lexer -> parser -> typecheck -> evaluator pipeline, recording the
// outcome in the history store.
func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a SLU-C source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
	return cmd
}

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	start := time.Now()
	ctx := pipeline.NewContext(string(source), absPath)
	stages := []pipeline.Processor{lexer.Stage{}, parser.Stage{}, typecheck.Stage{}, evaluator.Stage{}}

	for _, stage := range stages {
		if verbose {
			fmt.Fprintf(os.Stderr, "%T\n", stage)
		}
		ctx = stage.Process(ctx)
		if ctx.Failed() {
			break
		}
	}
	duration := time.Since(start)

	var runErr error
	if ctx.Failed() {
		runErr = ctx.Errors[0]
	}
	recordHistory(absPath, runErr, duration)

	if runErr != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, runErr.Error())
		return runErr
	}
	return nil
}

func recordHistory(path string, runErr error, duration time.Duration) {
	store, err := history.Open(historyDB)
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "history: %v\n", err)
		}
		return
	}
	defer store.Close()
	if _, err := store.Record(path, runErr, duration); err != nil && verbose {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
	}
}

// tokensCmd dumps the token stream a file lexes to, one token per line.
func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream for a SLU-C source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			l, err := lexer.New(string(source))
			if err != nil {
				color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
				return err
			}
			for _, tok := range l.All() {
				printToken(tok)
			}
			return nil
		},
	}
}

func printToken(tok token.Token) {
	fmt.Printf("%4d  %-10s %q\n", tok.Line, tok.Kind, tok.Lexeme)
}

// astCmd parses a file and prints either its reconstructed source (the
// default) or a debug tree (--tree).
func astCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the parsed AST for a SLU-C source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			l, err := lexer.New(string(source))
			if err != nil {
				color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
				return err
			}
			prog, err := parser.ParseProgram(l)
			if err != nil {
				color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
				return err
			}
			if err := typecheck.Check(prog); err != nil {
				color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
				return err
			}
			if treeFormat {
				fmt.Print(prettyprinter.Dump(prog))
			} else {
				fmt.Print(prettyprinter.Print(prog))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&treeFormat, "tree", false, "print an indented debug tree instead of reconstructed source")
	return cmd
}

// replCmd starts the interactive shell.
func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive SLU-C session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return replshell.New().Run(os.Stdout)
		},
	}
}

// historyCmd lists recently recorded runs.
func historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently run SLU-C files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(historyDB)
			if err != nil {
				return err
			}
			defer store.Close()
			records, err := store.Recent(limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}
			fmt.Print(history.FormatTable(records))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to show")
	return cmd
}
