package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bpmn-os/limex"
	"github.com/bpmn-os/limex/value"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read-eval-print loop over LIMEX expressions",
	Long: `Read one LIMEX expression per line from stdin, evaluate it, and print its
result. Variables persist across lines in one in-memory store, so

  x := 3
  x * 2

behaves like a running calculator: the second line sees x bound to 3 from
the first.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	return repl(os.Stdin, os.Stdout)
}

func repl(in io.Reader, out io.Writer) error {
	store := map[string]value.Float64{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		expr, err := limex.NewFloat64(line)
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
			continue
		}

		names := expr.Variables()
		vars := make([]value.Float64, len(names))
		for i, name := range names {
			vars[i] = store[name]
		}

		result, err := expr.Evaluate(vars, nil)
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
			continue
		}

		if name, ok := expr.Target(); ok {
			store[name] = result
			fmt.Fprintf(out, "%s = %s\n", name, result.String())
			continue
		}
		fmt.Fprintln(out, result.String())
	}
	return scanner.Err()
}
