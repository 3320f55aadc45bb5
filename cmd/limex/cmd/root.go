// Package cmd implements the limex command-line tool: lex/parse/eval/repl
// subcommands built on top of the library root package, in the teacher's
// cobra-based cmd/<tool>/cmd layout.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Shared by lex/parse/eval: the one inline-expression flag, registered
// separately on each subcommand but writing to this single package var,
// mirroring the teacher's evalExpr convention (cmd/dwscript/cmd/run.go).
var evalExpr string

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "limex",
	Short: "LIMEX expression lexer, parser and evaluator",
	Long: `limex tokenizes, parses and evaluates LIMEX expressions: a small,
Unicode-rich expression language over variables, named collections, and a
user-extensible table of named callables.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{with .Name}}{{printf \"%%s \" .}}{{end}}{{printf \"version %%s\" .Version}}\nCommit: %s\n", GitCommit))
}

func readSource(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e/--eval for inline source")
}
