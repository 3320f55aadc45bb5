package cmd

import (
	"fmt"
	"strings"

	"github.com/bpmn-os/limex"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the built AST for a LIMEX expression",
	Long: `Lex and build a LIMEX expression, then print its AST in prefix form,
along with the variable/collection names it refers to.

Examples:
  limex parse script.limex
  limex parse -e "z -= sqrt(x^2 + y^2)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline source instead of reading from file")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	expr, err := limex.NewFloat64(source)
	if err != nil {
		return err
	}

	fmt.Println(expr.String())
	if vars := expr.Variables(); len(vars) > 0 {
		fmt.Printf("variables: %s\n", strings.Join(vars, ", "))
	}
	if colls := expr.Collections(); len(colls) > 0 {
		fmt.Printf("collections: %s\n", strings.Join(colls, ", "))
	}
	if name, ok := expr.Target(); ok {
		fmt.Printf("target: %s\n", name)
	}
	return nil
}
